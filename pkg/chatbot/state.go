package chatbot

import "time"

// Config holds the chat policy knobs.
type Config struct {
	RateLimit        int
	RateWindow       time.Duration
	CacheExpiry      time.Duration
	MemoryLength     int
	MaxMessageLength int
	InferenceTimeout time.Duration
}

// DefaultConfig returns the stock chat policy.
func DefaultConfig() Config {
	return Config{
		RateLimit:        DefaultRateLimit,
		RateWindow:       defaultRateWindow,
		CacheExpiry:      DefaultCacheExpiry,
		MemoryLength:     DefaultMemoryLength,
		MaxMessageLength: 500,
		InferenceTimeout: 30 * time.Second,
	}
}

// State is the process-wide chat state. Each part guards itself with its
// own mutex.
type State struct {
	Limiter *RateLimiter
	Cache   *ResponseCache
	Memory  *ConversationMemory
}

// NewState builds empty chat state for cfg.
func NewState(cfg Config, now func() time.Time) *State {
	return &State{
		Limiter: NewRateLimiter(cfg.RateLimit, cfg.RateWindow, now),
		Cache:   NewResponseCache(cfg.CacheExpiry, now),
		Memory:  NewConversationMemory(cfg.MemoryLength),
	}
}
