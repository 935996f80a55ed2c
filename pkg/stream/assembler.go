// Package stream assembles a run's durable event log and its live fanout
// into one ordered, deduplicated sequence for SSE clients.
package stream

import (
	"context"
	"errors"
	"time"

	"github.com/swarmlet/swarmlet/pkg/events"
)

// Defaults applied by NewAssembler when the config leaves them zero.
const (
	defaultQueueSize      = 1000
	defaultKeepOpenMaxTTL = 300 * time.Second
	defaultHeuristicDelay = 30 * time.Second
)

// EventSource is the replay side of the stream. Implemented by
// events.Store.
type EventSource interface {
	GetAfter(ctx context.Context, runID string, afterID int64, includeTokens bool) ([]events.Event, error)
}

// Config tunes the assembler.
type Config struct {
	// QueueSize bounds each subscriber's live queue.
	QueueSize int
	// KeepOpenMaxTTL caps the lease a keep_open control event may request.
	KeepOpenMaxTTL time.Duration
	// HeuristicDelay is the idle period after a terminal event before a
	// run without an explicit close barrier is closed.
	HeuristicDelay time.Duration
}

// Assembler turns the event store plus the live broker into client-facing
// streams.
type Assembler struct {
	source EventSource
	broker *events.Broker
	cfg    Config
}

// NewAssembler creates an Assembler over the store and broker.
func NewAssembler(source EventSource, broker *events.Broker, cfg Config) *Assembler {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.KeepOpenMaxTTL <= 0 || cfg.KeepOpenMaxTTL > defaultKeepOpenMaxTTL {
		cfg.KeepOpenMaxTTL = defaultKeepOpenMaxTTL
	}
	if cfg.HeuristicDelay <= 0 {
		cfg.HeuristicDelay = defaultHeuristicDelay
	}
	return &Assembler{source: source, broker: broker, cfg: cfg}
}

// Options select what one stream delivers.
type Options struct {
	// LastEventID resumes after this id (0 streams from the beginning).
	LastEventID int64
	// IncludeTokens controls whether supervisor_token events are replayed
	// and tailed.
	IncludeTokens bool
}

// Stream delivers the run's events to emit, in strictly increasing id
// order with duplicates suppressed, until the close barrier is reached.
//
// The live subscription is registered before replay so no committed event
// can fall between the two. Replay then drains the store until quiescent;
// events that raced into the live queue during replay are deduplicated by
// id. Returns nil on a clean close, events.ErrSubscriptionOverflow when
// the client fell too far behind (reconnect with Last-Event-ID), or the
// emit/context error.
func (a *Assembler) Stream(ctx context.Context, runID string, opts Options, emit func(events.Event) error) error {
	sub := a.broker.Subscribe(runID, a.cfg.QueueSize)
	defer sub.Close()

	st := &streamState{lastSent: opts.LastEventID, lastEventAt: time.Now()}

	// Replay until quiescent.
	for {
		batch, err := a.source.GetAfter(ctx, runID, st.lastSent, opts.IncludeTokens)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			break
		}
		for _, evt := range batch {
			if err := a.deliver(st, evt, opts, emit); err != nil {
				return err
			}
			if st.closed {
				return nil
			}
		}
	}

	// Live tail.
	for {
		waitCtx := ctx
		cancel := context.CancelFunc(func() {})
		deadline, armed := a.closeDeadline(st)
		if armed {
			waitCtx, cancel = context.WithDeadline(ctx, deadline)
		}

		evt, err := sub.Next(waitCtx)
		cancel()
		switch {
		case err == nil:
			if evt.ID <= st.lastSent {
				continue // duplicate of replay
			}
			if err := a.deliver(st, evt, opts, emit); err != nil {
				return err
			}
			if st.closed {
				return nil
			}
		case errors.Is(err, events.ErrSubscriptionOverflow):
			return events.ErrSubscriptionOverflow
		case errors.Is(err, events.ErrSubscriptionClosed):
			return nil
		case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
			// Heuristic close fired. One last store check for anything the
			// live queue never saw, then finish.
			batch, ferr := a.source.GetAfter(ctx, runID, st.lastSent, opts.IncludeTokens)
			if ferr != nil {
				return ferr
			}
			if len(batch) == 0 {
				return nil
			}
			for _, evt := range batch {
				if err := a.deliver(st, evt, opts, emit); err != nil {
					return err
				}
				if st.closed {
					return nil
				}
			}
		default:
			return err
		}
	}
}

// streamState tracks one stream's progress.
type streamState struct {
	lastSent      int64
	lastEventAt   time.Time
	terminalSeen  bool
	sawControl    bool
	keepOpenUntil time.Time
	closed        bool
}

// deliver applies one event to the stream state and emits it.
func (a *Assembler) deliver(st *streamState, evt events.Event, opts Options, emit func(events.Event) error) error {
	st.lastEventAt = time.Now()
	if evt.ID > st.lastSent {
		st.lastSent = evt.ID
	}

	switch evt.Type {
	case events.EventTypeSupervisorToken:
		if !opts.IncludeTokens {
			return nil
		}
	case events.EventTypeSupervisorComplete, events.EventTypeSupervisorFailed:
		st.terminalSeen = true
	case events.EventTypeStreamControl:
		st.sawControl = true
		action, _ := evt.Payload["action"].(string)
		switch action {
		case events.StreamActionClose:
			// The close barrier: the client must consume this event's id,
			// so it is emitted before the stream finishes.
			st.closed = true
		case events.StreamActionKeepOpen:
			st.keepOpenUntil = time.Now().Add(a.keepOpenTTL(evt.Payload))
		}
	}

	return emit(evt)
}

// keepOpenTTL reads ttl_ms from a keep_open payload, capped at the
// configured maximum.
func (a *Assembler) keepOpenTTL(payload map[string]any) time.Duration {
	ttl := a.cfg.KeepOpenMaxTTL
	if raw, ok := payload["ttl_ms"].(float64); ok && raw > 0 {
		requested := time.Duration(raw) * time.Millisecond
		if requested < ttl {
			ttl = requested
		}
	}
	return ttl
}

// closeDeadline decides whether the heuristic close is armed and when it
// fires. It only applies once a terminal event was seen without a close
// barrier: either the run predates control events entirely, or its
// keep_open lease has a bounded extension.
func (a *Assembler) closeDeadline(st *streamState) (time.Time, bool) {
	if st.closed || !st.terminalSeen {
		return time.Time{}, false
	}
	if !st.sawControl {
		return st.lastEventAt.Add(a.cfg.HeuristicDelay), true
	}
	if !st.keepOpenUntil.IsZero() {
		// Control-aware run: the explicit close is authoritative, but an
		// expired keep_open lease must not hold the stream forever if the
		// engine died before closing it.
		deadline := st.keepOpenUntil
		if idle := st.lastEventAt.Add(a.cfg.HeuristicDelay); idle.After(deadline) {
			deadline = idle
		}
		return deadline, true
	}
	return time.Time{}, false
}
