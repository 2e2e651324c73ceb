package chatbot

import (
	"sync"
	"time"
)

const (
	// DefaultRateLimit is the number of chat calls a client may make per window.
	DefaultRateLimit = 10

	defaultRateWindow = time.Minute
)

// RateLimiter enforces a per-client sliding-window limit.
//
// It keeps the admitted timestamps of each client and prunes stale ones on
// every call, so memory stays bounded to O(limit) per active client. Clients
// idle for a whole window are dropped by a sweep that runs at most once per
// window. RateLimiter is safe for concurrent use.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	now       func() time.Time
	counters  map[string][]time.Time
	lastSweep time.Time
}

// NewRateLimiter returns a limiter admitting at most limit calls per client
// within window. Non-positive values fall back to the defaults.
func NewRateLimiter(limit int, window time.Duration, now func() time.Time) *RateLimiter {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if window <= 0 {
		window = defaultRateWindow
	}
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		limit:    limit,
		window:   window,
		now:      now,
		counters: make(map[string][]time.Time),
	}
}

// prune drops timestamps that fell out of the window. Callers hold mu.
func (r *RateLimiter) prune(clientID string, now time.Time) []time.Time {
	cutoff := now.Add(-r.window)
	existing := r.counters[clientID]
	valid := existing[:0]
	for _, t := range existing {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	return valid
}

// store keeps valid as the window of clientID, forgetting empty windows.
// Callers hold mu.
func (r *RateLimiter) store(clientID string, valid []time.Time) {
	if len(valid) == 0 {
		delete(r.counters, clientID)
		return
	}
	r.counters[clientID] = valid
}

// sweep forgets clients whose newest call left the window. Callers hold mu.
func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.window {
		return
	}
	r.lastSweep = now
	cutoff := now.Add(-r.window)
	for id, ts := range r.counters {
		if len(ts) == 0 || !ts[len(ts)-1].After(cutoff) {
			delete(r.counters, id)
		}
	}
}

// Admit records a call for clientID or returns ErrRateLimited without
// recording anything.
func (r *RateLimiter) Admit(clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)
	valid := r.prune(clientID, now)

	if len(valid) >= r.limit {
		r.store(clientID, valid)
		return ErrRateLimited
	}

	r.counters[clientID] = append(valid, now)
	return nil
}

// Remaining returns how many calls clientID can still make in the window.
func (r *RateLimiter) Remaining(clientID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	valid := r.prune(clientID, r.now())
	r.store(clientID, valid)

	rem := r.limit - len(valid)
	if rem < 0 {
		return 0
	}
	return rem
}

// RetryAfter reports how long clientID must wait before the oldest admitted
// call leaves the window. Zero means a call would be admitted now.
func (r *RateLimiter) RetryAfter(clientID string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	valid := r.prune(clientID, now)
	r.store(clientID, valid)
	if len(valid) < r.limit {
		return 0
	}
	return valid[0].Add(r.window).Sub(now)
}

// Clients returns how many clients currently hold a window.
func (r *RateLimiter) Clients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.counters)
}

// Window returns the sliding window length.
func (r *RateLimiter) Window() time.Duration { return r.window }
