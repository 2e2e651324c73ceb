package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
		return Event{}
	}
}

func TestBroadcaster_PublishStampsTime(t *testing.T) {
	b := NewBroadcaster()
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.FixedZone("X", 3600))
	b.now = func() time.Time { return fixed }

	ch := b.Subscribe(1)
	b.Publish("message.created", map[string]any{"id": 1})

	ev := receive(t, ch)
	assert.Equal(t, "message.created", ev.Type)
	assert.Equal(t, fixed.UTC(), ev.Timestamp)
	assert.Equal(t, map[string]any{"id": 1}, ev.Payload)
}

func TestBroadcaster_FansOutToAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	a, c := b.Subscribe(1), b.Subscribe(1)
	assert.Equal(t, 2, b.Subscribers())

	b.Publish("content.changed", nil)

	assert.Equal(t, "content.changed", receive(t, a).Type)
	assert.Equal(t, "content.changed", receive(t, c).Type)
}

func TestBroadcaster_FullSubscriberDrops(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe(1)

	b.Publish("one", nil)
	b.Publish("two", nil)

	assert.Equal(t, "one", receive(t, ch).Type)
	assert.Equal(t, int64(1), b.Dropped())
}

func TestBroadcaster_UnsubscribeAndClose(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe(1)
	b.Unsubscribe(ch)
	b.Unsubscribe(ch)

	_, ok := <-ch
	assert.False(t, ok)

	other := b.Subscribe(1)
	b.Close()
	_, ok = <-other
	assert.False(t, ok)
	assert.Zero(t, b.Subscribers())

	late := b.Subscribe(1)
	_, ok = <-late
	assert.False(t, ok)
	assert.NotPanics(t, func() { b.Publish("after-close", nil) })
}
