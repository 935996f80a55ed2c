package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/pkg/events"
)

func streamEvent(id int64, eventType string, payload map[string]any) events.Event {
	return events.Event{
		ID:        id,
		RunID:     "run-1",
		OwnerID:   testOwner,
		Type:      eventType,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

func doStream(ts *testServer, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)
	return rec
}

func TestStreamRunDeliversEvents(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", testOwner, run.StatusRunning)
	ts.streams.events = []events.Event{
		streamEvent(1, events.EventTypeSupervisorStarted, map[string]any{"task": "t"}),
		streamEvent(2, events.EventTypeSupervisorComplete, map[string]any{"result": "done"}),
		streamEvent(3, events.EventTypeStreamControl, map[string]any{"action": "close"}),
	}

	rec := doStream(ts, "/api/runs/run-1/events", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "id: 1\nevent: supervisor_started\n")
	assert.Contains(t, body, "id: 3\nevent: stream_control\n")
	assert.Contains(t, body, `"result":"done"`)
}

func TestStreamRunResumeFromHeader(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", testOwner, run.StatusRunning)

	doStream(ts, "/api/runs/run-1/events?last_event_id=3", map[string]string{"Last-Event-ID": "7"})

	// The header is what browsers resend automatically; it wins over the
	// query param.
	assert.Equal(t, int64(7), ts.streams.opts.LastEventID)
}

func TestStreamRunResumeFromQueryParam(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", testOwner, run.StatusRunning)

	doStream(ts, "/api/runs/run-1/events?last_event_id=3", nil)

	assert.Equal(t, int64(3), ts.streams.opts.LastEventID)
}

func TestStreamRunIncludeTokens(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", testOwner, run.StatusRunning)

	doStream(ts, "/api/runs/run-1/events?include_tokens=true", nil)
	assert.True(t, ts.streams.opts.IncludeTokens)

	doStream(ts, "/api/runs/run-1/events", nil)
	assert.False(t, ts.streams.opts.IncludeTokens)
}

func TestStreamRunBadLastEventID(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", testOwner, run.StatusRunning)

	rec := doStream(ts, "/api/runs/run-1/events?last_event_id=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStreamRunUnknownRun(t *testing.T) {
	ts := newTestServer(t)

	rec := doStream(ts, "/api/runs/missing/events", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStreamRunOverflowNotice(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", testOwner, run.StatusRunning)
	ts.streams.events = []events.Event{
		streamEvent(1, events.EventTypeSupervisorStarted, nil),
	}
	ts.streams.err = events.ErrSubscriptionOverflow

	rec := doStream(ts, "/api/runs/run-1/events", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "event: notice\n")
	assert.Contains(t, body, "reconnect with Last-Event-ID")
	// The notice must not carry an id that would shift the resume point.
	noticeBlock := body[strings.Index(body, "event: notice"):]
	assert.NotContains(t, noticeBlock, "id:")
}
