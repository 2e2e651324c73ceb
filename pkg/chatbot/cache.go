package chatbot

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// DefaultCacheExpiry is how long a cached reply stays valid.
const DefaultCacheExpiry = 24 * time.Hour

// CacheEntry is one cached reply.
type CacheEntry struct {
	Reply     string
	CreatedAt time.Time
}

// CacheStats summarises the cache contents.
type CacheStats struct {
	TotalCached      int     `json:"total_cached"`
	ValidCache       int     `json:"valid_cache"`
	ExpiredCache     int     `json:"expired_cache"`
	CacheExpiryHours float64 `json:"cache_expiry_hours"`
}

// ResponseCache maps message fingerprints to replies. Entries expire lazily
// on lookup; the cache has no capacity bound.
type ResponseCache struct {
	mu      sync.Mutex
	expiry  time.Duration
	now     func() time.Time
	entries map[string]CacheEntry
}

// NewResponseCache creates an empty cache.
func NewResponseCache(expiry time.Duration, now func() time.Time) *ResponseCache {
	if expiry <= 0 {
		expiry = DefaultCacheExpiry
	}
	if now == nil {
		now = time.Now
	}
	return &ResponseCache{
		expiry:  expiry,
		now:     now,
		entries: make(map[string]CacheEntry),
	}
}

// Fingerprint is the md5 hex digest of the lower-cased, trimmed message.
func Fingerprint(message string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(message))))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached reply for message. An expired entry is removed
// and reported as a miss.
func (c *ResponseCache) Lookup(message string) (string, bool) {
	key := Fingerprint(message)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(entry.CreatedAt) >= c.expiry {
		delete(c.entries, key)
		return "", false
	}
	return entry.Reply, true
}

// Store replaces any entry for message with reply stamped now.
func (c *ResponseCache) Store(message, reply string) {
	key := Fingerprint(message)

	c.mu.Lock()
	c.entries[key] = CacheEntry{Reply: reply, CreatedAt: c.now()}
	c.mu.Unlock()
}

// Stats counts valid and expired entries without evicting anything.
func (c *ResponseCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	stats := CacheStats{
		TotalCached:      len(c.entries),
		CacheExpiryHours: c.expiry.Hours(),
	}
	for _, e := range c.entries {
		if now.Sub(e.CreatedAt) < c.expiry {
			stats.ValidCache++
		}
	}
	stats.ExpiredCache = stats.TotalCached - stats.ValidCache
	return stats
}

// Len returns the number of stored entries, expired ones included.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
