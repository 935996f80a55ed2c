package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// listenTimeout bounds how long a LISTEN command may block when the first
// subscriber for a run attaches. Without this, a stalled connection would
// block the subscribing request indefinitely.
const listenTimeout = 10 * time.Second

// Subscription terminal conditions.
var (
	// ErrSubscriptionClosed is returned by Next after Close.
	ErrSubscriptionClosed = errors.New("subscription closed")
	// ErrSubscriptionOverflow is returned by Next once the queue filled
	// up with events that may not be dropped. The durable log still has
	// everything; the caller reconnects and replays from its last id.
	ErrSubscriptionOverflow = errors.New("subscription queue overflowed")
)

// RemoteListener is implemented by the Postgres NOTIFY listener. The
// broker keeps the run's channel LISTENed while it has local subscribers.
type RemoteListener interface {
	Listen(ctx context.Context, channel string) error
	Unlisten(ctx context.Context, channel string) error
}

// Broker is the in-process fanout for run events. Each process has one.
// Publish delivers to every live subscriber of the event's run; delivery
// is best-effort and never blocks the publisher.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{} // run_id → subscriptions

	listenerMu sync.RWMutex
	listener   RemoteListener
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[*Subscription]struct{})}
}

// SetListener attaches the NOTIFY listener for cross-replica fanout.
// Called once during startup, Postgres deployments only.
func (b *Broker) SetListener(l RemoteListener) {
	b.listenerMu.Lock()
	defer b.listenerMu.Unlock()
	b.listener = l
}

// Subscribe registers a live subscriber for a run's events. queueSize
// bounds the subscriber's pending queue; when it fills, the oldest
// supervisor_token event is evicted first, and if none remain the
// subscription overflows (see Subscription.Next).
//
// The first subscriber for a run starts a Postgres LISTEN on the run's
// channel. LISTEN failure degrades to local-only fanout: single-process
// deployments are unaffected, and multi-replica readers still converge
// through replay.
func (b *Broker) Subscribe(runID string, queueSize int) *Subscription {
	sub := &Subscription{
		broker: b,
		runID:  runID,
		limit:  queueSize,
		notify: make(chan struct{}, 1),
	}

	b.mu.Lock()
	set, ok := b.subs[runID]
	if !ok {
		set = make(map[*Subscription]struct{})
		b.subs[runID] = set
	}
	first := len(set) == 0
	set[sub] = struct{}{}
	b.mu.Unlock()

	if first {
		b.listenerMu.RLock()
		l := b.listener
		b.listenerMu.RUnlock()
		if l != nil {
			ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Listen(ctx, RunChannel(runID)); err != nil {
				slog.Error("Failed to LISTEN on run channel", "run_id", runID, "error", err)
			}
		}
	}

	return sub
}

// Publish delivers an event to all live subscribers of its run.
func (b *Broker) Publish(evt Event) {
	b.mu.RLock()
	set := b.subs[evt.RunID]
	targets := make([]*Subscription, 0, len(set))
	for sub := range set {
		targets = append(targets, sub)
	}
	b.mu.RUnlock()

	for _, sub := range targets {
		sub.push(evt)
	}
}

// SubscriberCount returns the number of live subscribers for a run.
func (b *Broker) SubscriberCount(runID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[runID])
}

// unsubscribe removes a subscription; the last one for a run stops the
// Postgres LISTEN. The UNLISTEN goroutine re-checks for resubscription
// first so a rapid close/reopen cycle does not drop the LISTEN.
func (b *Broker) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	set, ok := b.subs[sub.runID]
	if ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(b.subs, sub.runID)
		} else {
			ok = false
		}
	}
	b.mu.Unlock()

	if !ok {
		return
	}

	b.listenerMu.RLock()
	l := b.listener
	b.listenerMu.RUnlock()
	if l == nil {
		return
	}
	runID := sub.runID
	go func() {
		b.mu.RLock()
		_, resubscribed := b.subs[runID]
		b.mu.RUnlock()
		if resubscribed {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
		defer cancel()
		if err := l.Unlisten(ctx, RunChannel(runID)); err != nil {
			slog.Error("Failed to UNLISTEN run channel", "run_id", runID, "error", err)
		}
	}()
}

// Subscription is one subscriber's bounded live queue.
type Subscription struct {
	broker *Broker
	runID  string

	mu       sync.Mutex
	queue    []Event
	limit    int
	overflow bool
	closed   bool
	notify   chan struct{}
}

// RunID returns the run this subscription follows.
func (s *Subscription) RunID() string {
	return s.runID
}

// Next blocks until an event is available, the subscription terminates,
// or ctx is done. Queued events are drained before a terminal condition
// is reported.
func (s *Subscription) Next(ctx context.Context) (Event, error) {
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			evt := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return evt, nil
		}
		if s.overflow {
			s.mu.Unlock()
			return Event{}, ErrSubscriptionOverflow
		}
		if s.closed {
			s.mu.Unlock()
			return Event{}, ErrSubscriptionClosed
		}
		s.mu.Unlock()

		select {
		case <-s.notify:
		case <-ctx.Done():
			return Event{}, ctx.Err()
		}
	}
}

// Close detaches the subscription from the broker. Idempotent.
func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.signal()
	s.mu.Unlock()

	s.broker.unsubscribe(s)
}

// push appends an event, evicting the oldest token event when full.
// Non-token events are never dropped: a full queue with nothing evictable
// flips the subscription into overflow.
func (s *Subscription) push(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.overflow {
		return
	}
	if len(s.queue) >= s.limit {
		if !s.evictOldestToken() {
			s.overflow = true
			s.signal()
			return
		}
	}
	s.queue = append(s.queue, evt)
	s.signal()
}

func (s *Subscription) evictOldestToken() bool {
	for i := range s.queue {
		if s.queue[i].Type == EventTypeSupervisorToken {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Subscription) signal() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}
