package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextWithTimeout(t *testing.T, sub *Subscription) (Event, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return sub.Next(ctx)
}

func TestBrokerDeliversToSubscribers(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe("run-1", 10)
	defer sub.Close()

	b.Publish(Event{ID: 1, RunID: "run-1", Type: EventTypeSupervisorStarted})
	b.Publish(Event{ID: 2, RunID: "run-2", Type: EventTypeSupervisorStarted}) // different run

	evt, err := nextWithTimeout(t, sub)
	require.NoError(t, err)
	assert.Equal(t, int64(1), evt.ID)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = sub.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBrokerSubscriberCount(t *testing.T) {
	b := NewBroker()
	assert.Equal(t, 0, b.SubscriberCount("run-1"))

	s1 := b.Subscribe("run-1", 10)
	s2 := b.Subscribe("run-1", 10)
	assert.Equal(t, 2, b.SubscriberCount("run-1"))

	s1.Close()
	assert.Equal(t, 1, b.SubscriberCount("run-1"))
	s2.Close()
	assert.Equal(t, 0, b.SubscriberCount("run-1"))
}

func TestSubscriptionCloseTerminatesNext(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe("run-1", 10)

	done := make(chan error, 1)
	go func() {
		_, err := sub.Next(context.Background())
		done <- err
	}()

	sub.Close()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrSubscriptionClosed)
	case <-time.After(time.Second):
		t.Fatal("Next did not return after Close")
	}

	// Publish after close is a no-op.
	b.Publish(Event{ID: 9, RunID: "run-1", Type: EventTypeSupervisorStarted})
	sub.Close() // idempotent
}

func TestSubscriptionEvictsOldestTokenFirst(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe("run-1", 3)
	defer sub.Close()

	b.Publish(Event{ID: 1, RunID: "run-1", Type: EventTypeSupervisorToken})
	b.Publish(Event{ID: 2, RunID: "run-1", Type: EventTypeWorkerSpawned})
	b.Publish(Event{ID: 3, RunID: "run-1", Type: EventTypeSupervisorToken})
	// Queue full: the oldest token (id 1) is evicted, not the worker event.
	b.Publish(Event{ID: 4, RunID: "run-1", Type: EventTypeWorkerComplete})

	var ids []int64
	for i := 0; i < 3; i++ {
		evt, err := nextWithTimeout(t, sub)
		require.NoError(t, err)
		ids = append(ids, evt.ID)
	}
	assert.Equal(t, []int64{2, 3, 4}, ids)
}

func TestSubscriptionOverflowsWhenNothingEvictable(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe("run-1", 2)
	defer sub.Close()

	b.Publish(Event{ID: 1, RunID: "run-1", Type: EventTypeWorkerSpawned})
	b.Publish(Event{ID: 2, RunID: "run-1", Type: EventTypeWorkerStarted})
	// Full of non-token events: this one flips the subscription to overflow.
	b.Publish(Event{ID: 3, RunID: "run-1", Type: EventTypeWorkerComplete})

	// Queued events drain before the overflow is reported.
	evt, err := nextWithTimeout(t, sub)
	require.NoError(t, err)
	assert.Equal(t, int64(1), evt.ID)
	evt, err = nextWithTimeout(t, sub)
	require.NoError(t, err)
	assert.Equal(t, int64(2), evt.ID)

	_, err = nextWithTimeout(t, sub)
	assert.ErrorIs(t, err, ErrSubscriptionOverflow)
}

func TestRunChannel(t *testing.T) {
	assert.Equal(t, "run:abc-123", RunChannel("abc-123"))
}
