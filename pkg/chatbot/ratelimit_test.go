package chatbot

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AdmitsUpToLimit(t *testing.T) {
	clock := newFakeClock()
	rl := NewRateLimiter(10, time.Minute, clock.Now)

	for i := 0; i < 10; i++ {
		require.NoError(t, rl.Admit("1.2.3.4"), "call %d", i+1)
		clock.Advance(time.Second)
	}
	assert.ErrorIs(t, rl.Admit("1.2.3.4"), ErrRateLimited)
	assert.Equal(t, 0, rl.Remaining("1.2.3.4"))

	// Other clients are independent.
	assert.NoError(t, rl.Admit("5.6.7.8"))
}

func TestRateLimiter_RejectionDoesNotRecord(t *testing.T) {
	clock := newFakeClock()
	rl := NewRateLimiter(2, time.Minute, clock.Now)

	require.NoError(t, rl.Admit("c"))
	require.NoError(t, rl.Admit("c"))
	for i := 0; i < 5; i++ {
		require.ErrorIs(t, rl.Admit("c"), ErrRateLimited)
	}

	// Only the two admitted calls count, so both expire together.
	clock.Advance(time.Minute + time.Millisecond)
	assert.Equal(t, 2, rl.Remaining("c"))
	assert.NoError(t, rl.Admit("c"))
}

func TestRateLimiter_SlidingWindow(t *testing.T) {
	clock := newFakeClock()
	rl := NewRateLimiter(3, time.Minute, clock.Now)

	require.NoError(t, rl.Admit("c"))
	clock.Advance(30 * time.Second)
	require.NoError(t, rl.Admit("c"))
	require.NoError(t, rl.Admit("c"))
	require.ErrorIs(t, rl.Admit("c"), ErrRateLimited)

	assert.Equal(t, 30*time.Second, rl.RetryAfter("c"))

	clock.Advance(30*time.Second + time.Millisecond)
	assert.Equal(t, 1, rl.Remaining("c"))
	assert.Zero(t, rl.RetryAfter("c"))
	assert.NoError(t, rl.Admit("c"))
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(0, 0, nil)
	assert.Equal(t, DefaultRateLimit, rl.Remaining("x"))
	assert.Equal(t, time.Minute, rl.Window())
}

func TestRateLimiter_Concurrent(t *testing.T) {
	rl := NewRateLimiter(50, time.Minute, nil)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Admit("shared") == nil {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, admitted)
}

func TestRateLimiter_ForgetsIdleClients(t *testing.T) {
	clock := newFakeClock()
	rl := NewRateLimiter(10, time.Minute, clock.Now)

	for i := 0; i < 100; i++ {
		require.NoError(t, rl.Admit(fmt.Sprintf("10.0.%d.%d", i/256, i%256)))
	}
	assert.Equal(t, 100, rl.Clients())

	assert.Zero(t, rl.RetryAfter("never-seen"))
	assert.Equal(t, 100, rl.Clients(), "queries do not create windows")

	clock.Advance(time.Minute + time.Millisecond)
	assert.Zero(t, rl.RetryAfter("10.0.0.1"))
	assert.Equal(t, 99, rl.Clients(), "an emptied window is dropped on access")

	require.NoError(t, rl.Admit("fresh"))
	assert.Equal(t, 1, rl.Clients(), "idle clients are swept once a window has passed")
}
