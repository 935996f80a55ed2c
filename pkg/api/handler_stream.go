package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmlet/swarmlet/pkg/events"
	"github.com/swarmlet/swarmlet/pkg/models"
	"github.com/swarmlet/swarmlet/pkg/stream"
)

// streamRunHandler handles GET /api/runs/:id/events as Server-Sent
// Events. The stream replays from Last-Event-ID (header or query param,
// header wins) and tails live until the run's close barrier. Comment
// heartbeats keep intermediaries from reaping idle connections.
func (s *Server) streamRunHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	// Ownership gate before any streaming starts.
	r, err := s.runs.GetRun(ctx, ownerID(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	opts := stream.Options{
		IncludeTokens: c.QueryParam("include_tokens") == "true",
	}
	lastIDRaw := c.Request().Header.Get("Last-Event-ID")
	if lastIDRaw == "" {
		lastIDRaw = c.QueryParam("last_event_id")
	}
	if lastIDRaw != "" {
		id, err := strconv.ParseInt(lastIDRaw, 10, 64)
		if err != nil || id < 0 {
			return c.JSON(http.StatusBadRequest,
				models.Failure(models.ErrorTypeValidation, "last event id must be a non-negative integer"))
		}
		opts.LastEventID = id
	}

	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)

	w, err := newSSEWriter(c.Response())
	if err != nil {
		return err
	}

	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	go s.runHeartbeat(hbCtx, w)

	err = s.streams.Stream(ctx, r.ID, opts, func(evt events.Event) error {
		return w.writeEvent(evt)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, events.ErrSubscriptionOverflow):
		// The client fell too far behind the live queue. Tell it to
		// reconnect; Last-Event-ID resumes replay from the store.
		_ = w.writeNotice("stream overflow; reconnect with Last-Event-ID to resume")
		return nil
	case ctx.Err() != nil:
		return nil // client went away
	default:
		return err
	}
}

// runHeartbeat emits SSE comments at the configured interval until the
// stream ends.
func (s *Server) runHeartbeat(ctx context.Context, w *sseWriter) {
	interval := s.heartbeat
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.writeComment("heartbeat"); err != nil {
				return
			}
		}
	}
}

// sseWriter serialises events onto one response stream. Event writes and
// heartbeats come from different goroutines; the mutex keeps frames whole.
type sseWriter struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
}

func newSSEWriter(w http.ResponseWriter) (*sseWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, errors.New("response writer does not support streaming")
	}
	return &sseWriter{w: w, flusher: flusher}, nil
}

// writeEvent emits one event frame. The SSE id is the durable event id,
// so browsers resend it as Last-Event-ID on reconnect without any client
// code.
func (w *sseWriter) writeEvent(evt events.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event %d: %w", evt.ID, err)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := fmt.Fprintf(w.w, "id: %d\nevent: %s\ndata: %s\n\n", evt.ID, evt.Type, data); err != nil {
		return err
	}
	w.flusher.Flush()
	return nil
}

// writeNotice emits an out-of-band notice frame. Notices carry no id:
// they are not part of the durable timeline and must not disturb the
// client's resume position.
func (w *sseWriter) writeNotice(message string) error {
	data, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := fmt.Fprintf(w.w, "event: notice\ndata: %s\n\n", data); err != nil {
		return err
	}
	w.flusher.Flush()
	return nil
}

// writeComment emits an SSE comment line, invisible to EventSource
// clients.
func (w *sseWriter) writeComment(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := fmt.Fprintf(w.w, ": %s\n\n", text); err != nil {
		return err
	}
	w.flusher.Flush()
	return nil
}
