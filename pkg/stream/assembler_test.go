package stream

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/pkg/events"
)

type fakeSource struct {
	mu   sync.Mutex
	rows []events.Event
}

func (f *fakeSource) add(evt events.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, evt)
}

func (f *fakeSource) GetAfter(_ context.Context, runID string, afterID int64, includeTokens bool) ([]events.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []events.Event
	for _, evt := range f.rows {
		if evt.RunID != runID || evt.ID <= afterID {
			continue
		}
		if !includeTokens && evt.Type == events.EventTypeSupervisorToken {
			continue
		}
		out = append(out, evt)
	}
	return out, nil
}

type streamResult struct {
	ids []int64
	err error
}

// runStream collects emitted event ids in the background. onEmit, when
// non-nil, observes each event before it is recorded.
func runStream(a *Assembler, runID string, opts Options, onEmit func(events.Event)) (<-chan streamResult, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan streamResult, 1)
	go func() {
		var ids []int64
		err := a.Stream(ctx, runID, opts, func(evt events.Event) error {
			if onEmit != nil {
				onEmit(evt)
			}
			ids = append(ids, evt.ID)
			return nil
		})
		done <- streamResult{ids: ids, err: err}
	}()
	return done, cancel
}

func waitResult(t *testing.T, done <-chan streamResult) streamResult {
	t.Helper()
	select {
	case res := <-done:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not terminate")
		return streamResult{}
	}
}

func closeEvent(id int64, runID string) events.Event {
	return events.Event{ID: id, RunID: runID, Type: events.EventTypeStreamControl,
		Payload: map[string]any{"action": events.StreamActionClose}}
}

func TestStreamReplayThenLiveTail(t *testing.T) {
	source := &fakeSource{}
	broker := events.NewBroker()
	a := NewAssembler(source, broker, Config{})

	for i := int64(1); i <= 3; i++ {
		source.add(events.Event{ID: i, RunID: "run-1", Type: events.EventTypeSupervisorStarted, Payload: map[string]any{}})
	}

	first := make(chan struct{})
	var once sync.Once
	done, cancel := runStream(a, "run-1", Options{IncludeTokens: true}, func(events.Event) {
		once.Do(func() { close(first) })
	})
	defer cancel()

	<-first // subscription registered, replay underway
	live := events.Event{ID: 4, RunID: "run-1", Type: events.EventTypeWorkerSpawned, Payload: map[string]any{}}
	source.add(live)
	broker.Publish(live)
	closing := closeEvent(5, "run-1")
	source.add(closing)
	broker.Publish(closing)

	res := waitResult(t, done)
	require.NoError(t, res.err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, res.ids)
}

func TestStreamDedupesReplayLiveOverlap(t *testing.T) {
	source := &fakeSource{}
	broker := events.NewBroker()
	a := NewAssembler(source, broker, Config{})

	e1 := events.Event{ID: 1, RunID: "run-1", Type: events.EventTypeSupervisorStarted, Payload: map[string]any{}}
	e2 := events.Event{ID: 2, RunID: "run-1", Type: events.EventTypeWorkerSpawned, Payload: map[string]any{}}
	source.add(e1)
	source.add(e2)

	first := make(chan struct{})
	var once sync.Once
	done, cancel := runStream(a, "run-1", Options{IncludeTokens: true}, func(events.Event) {
		once.Do(func() { close(first) })
	})
	defer cancel()

	<-first
	// The same events arrive through the live queue too.
	broker.Publish(e1)
	broker.Publish(e2)
	closing := closeEvent(3, "run-1")
	source.add(closing)
	broker.Publish(closing)

	res := waitResult(t, done)
	require.NoError(t, res.err)
	assert.Equal(t, []int64{1, 2, 3}, res.ids, "duplicates must be suppressed")
}

func TestStreamCloseBarrierOnIdSeen(t *testing.T) {
	source := &fakeSource{}
	broker := events.NewBroker()
	a := NewAssembler(source, broker, Config{})

	source.add(events.Event{ID: 10, RunID: "run-1", Type: events.EventTypeSupervisorStarted, Payload: map[string]any{}})
	source.add(closeEvent(57, "run-1"))

	done, cancel := runStream(a, "run-1", Options{IncludeTokens: true}, nil)
	defer cancel()

	res := waitResult(t, done)
	require.NoError(t, res.err)
	// The close event itself is the last thing the client consumes.
	assert.Equal(t, []int64{10, 57}, res.ids)

	// Events with smaller ids arriving after the barrier do not reopen
	// the stream.
	broker.Publish(events.Event{ID: 55, RunID: "run-1", Type: events.EventTypeWorkerComplete, Payload: map[string]any{}})
}

func TestStreamResumesAfterLastEventID(t *testing.T) {
	source := &fakeSource{}
	broker := events.NewBroker()
	a := NewAssembler(source, broker, Config{})

	for i := int64(1); i <= 4; i++ {
		source.add(events.Event{ID: i, RunID: "run-1", Type: events.EventTypeSupervisorStarted, Payload: map[string]any{}})
	}
	source.add(closeEvent(5, "run-1"))

	done, cancel := runStream(a, "run-1", Options{LastEventID: 3, IncludeTokens: true}, nil)
	defer cancel()

	res := waitResult(t, done)
	require.NoError(t, res.err)
	assert.Equal(t, []int64{4, 5}, res.ids)
}

func TestStreamExcludesTokens(t *testing.T) {
	source := &fakeSource{}
	broker := events.NewBroker()
	a := NewAssembler(source, broker, Config{})

	source.add(events.Event{ID: 1, RunID: "run-1", Type: events.EventTypeSupervisorStarted, Payload: map[string]any{}})
	source.add(events.Event{ID: 2, RunID: "run-1", Type: events.EventTypeSupervisorToken, Payload: map[string]any{"token": "x"}})
	source.add(events.Event{ID: 3, RunID: "run-1", Type: events.EventTypeSupervisorComplete, Payload: map[string]any{}})
	source.add(closeEvent(4, "run-1"))

	done, cancel := runStream(a, "run-1", Options{IncludeTokens: false}, nil)
	defer cancel()

	res := waitResult(t, done)
	require.NoError(t, res.err)
	assert.Equal(t, []int64{1, 3, 4}, res.ids)
}

func TestStreamHeuristicCloseForLegacyRuns(t *testing.T) {
	source := &fakeSource{}
	broker := events.NewBroker()
	a := NewAssembler(source, broker, Config{HeuristicDelay: 50 * time.Millisecond})

	source.add(events.Event{ID: 1, RunID: "run-1", Type: events.EventTypeSupervisorStarted, Payload: map[string]any{}})
	source.add(events.Event{ID: 2, RunID: "run-1", Type: events.EventTypeSupervisorComplete, Payload: map[string]any{}})

	done, cancel := runStream(a, "run-1", Options{IncludeTokens: true}, nil)
	defer cancel()

	res := waitResult(t, done)
	require.NoError(t, res.err)
	assert.Equal(t, []int64{1, 2}, res.ids)
}

func TestStreamOverflowTellsClientToReconnect(t *testing.T) {
	source := &fakeSource{}
	broker := events.NewBroker()
	a := NewAssembler(source, broker, Config{QueueSize: 2})

	gate := make(chan struct{})
	var once sync.Once
	emitted := make(chan struct{})
	done, cancel := runStream(a, "run-1", Options{IncludeTokens: true}, func(evt events.Event) {
		if evt.ID == 1 {
			once.Do(func() { close(emitted) })
			<-gate // hold the client while the queue fills
		}
	})
	defer cancel()

	// Wait for the subscription to be live, then stall the client on the
	// first event while three more non-droppable events pile up.
	require.Eventually(t, func() bool { return broker.SubscriberCount("run-1") == 1 },
		time.Second, 10*time.Millisecond)
	broker.Publish(events.Event{ID: 1, RunID: "run-1", Type: events.EventTypeWorkerSpawned, Payload: map[string]any{}})
	<-emitted
	broker.Publish(events.Event{ID: 2, RunID: "run-1", Type: events.EventTypeWorkerStarted, Payload: map[string]any{}})
	broker.Publish(events.Event{ID: 3, RunID: "run-1", Type: events.EventTypeWorkerComplete, Payload: map[string]any{}})
	broker.Publish(events.Event{ID: 4, RunID: "run-1", Type: events.EventTypeSupervisorComplete, Payload: map[string]any{}})
	close(gate)

	res := waitResult(t, done)
	assert.ErrorIs(t, res.err, events.ErrSubscriptionOverflow)
	assert.Equal(t, []int64{1, 2, 3}, res.ids, "queued events drain before the overflow is reported")
}

func TestKeepOpenTTLCap(t *testing.T) {
	a := NewAssembler(&fakeSource{}, events.NewBroker(), Config{KeepOpenMaxTTL: 300 * time.Second})

	assert.Equal(t, time.Second, a.keepOpenTTL(map[string]any{"ttl_ms": float64(1000)}))
	assert.Equal(t, 300*time.Second, a.keepOpenTTL(map[string]any{"ttl_ms": float64(1e9)}))
	assert.Equal(t, 300*time.Second, a.keepOpenTTL(map[string]any{}))
}
