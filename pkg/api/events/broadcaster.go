// Package events fans out admin-facing domain events (new messages, content
// edits, document uploads) to in-process subscribers such as the websocket
// feed.
package events

import (
	"sync"
	"sync/atomic"
	"time"
)

// Event is the payload delivered to subscribers.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// Broadcaster delivers events to subscribers without blocking publishers.
// A subscriber whose buffer is full misses the event.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	closed      bool
	now         func() time.Time
	dropped     atomic.Int64
}

// NewBroadcaster creates a broadcaster instance.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[chan Event]struct{}),
		now:         time.Now,
	}
}

// Subscribe registers a buffered channel. After Close it returns a closed
// channel.
func (b *Broadcaster) Subscribe(buffer int) chan Event {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broadcaster) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; !ok {
		return
	}
	delete(b.subscribers, ch)
	close(ch)
}

// Broadcast delivers event to every subscriber.
func (b *Broadcaster) Broadcast(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now().UTC()
	}

	// Sends happen under the read lock so Unsubscribe cannot close a channel mid-send.
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
		}
	}
}

// Publish broadcasts a typed event. It satisfies portfolio.EventPublisher.
func (b *Broadcaster) Publish(eventType string, payload any) {
	b.Broadcast(Event{Type: eventType, Payload: payload})
}

// Subscribers returns the number of live subscriptions.
func (b *Broadcaster) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped returns how many deliveries were skipped because a subscriber
// was full.
func (b *Broadcaster) Dropped() int64 { return b.dropped.Load() }

// Close closes all subscriber channels. Later publishes are discarded.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, ch)
	}
}
