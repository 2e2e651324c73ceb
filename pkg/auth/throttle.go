package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginThrottle limits login attempts per client with a token bucket.
type LoginThrottle struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewLoginThrottle allows perMinute sustained attempts with the given burst.
func NewLoginThrottle(perMinute float64, burst int) *LoginThrottle {
	if burst < 1 {
		burst = 1
	}
	return &LoginThrottle{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(perMinute / 60),
		burst:    burst,
	}
}

func (lt *LoginThrottle) limiter(clientID string) *rate.Limiter {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	l, ok := lt.limiters[clientID]
	if !ok {
		l = rate.NewLimiter(lt.rate, lt.burst)
		lt.limiters[clientID] = l
	}
	return l
}

// Allow consumes one attempt. When refused it returns how long to wait.
func (lt *LoginThrottle) Allow(clientID string) (bool, time.Duration) {
	l := lt.limiter(clientID)
	if l.Allow() {
		return true, 0
	}

	r := l.Reserve()
	delay := r.Delay()
	r.Cancel()
	return false, delay
}
