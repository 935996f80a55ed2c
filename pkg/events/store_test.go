package events

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const runEventsDDL = `CREATE TABLE run_events (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id     TEXT NOT NULL,
    owner_id   TEXT NOT NULL,
    event_type TEXT NOT NULL,
    payload    TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

func newTestStore(t *testing.T) (*Store, *Broker) {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(runEventsDDL)
	require.NoError(t, err)

	broker := NewBroker()
	return NewStore(db, false, broker), broker
}

func TestAppendAssignsMonotoneIDs(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id1, err := store.Append(ctx, "run-1", "alice", EventTypeSupervisorStarted, map[string]any{"task": "check disk"})
	require.NoError(t, err)
	id2, err := store.Append(ctx, "run-1", "alice", EventTypeSupervisorToken, map[string]any{"token": "The"})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)
}

func TestAppendRejectsInvalidPayload(t *testing.T) {
	store, broker := newTestStore(t)
	sub := broker.Subscribe("run-1", 10)
	defer sub.Close()

	_, err := store.Append(context.Background(), "run-1", "alice", EventTypeSupervisorStarted,
		map[string]any{"bad": make(chan int)})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	// Nothing persisted, nothing published.
	n, err := store.CountForRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAppendFansOutAfterCommit(t *testing.T) {
	store, broker := newTestStore(t)
	sub := broker.Subscribe("run-1", 10)
	defer sub.Close()

	id, err := store.Append(context.Background(), "run-1", "alice", EventTypeWorkerSpawned,
		map[string]any{"job_id": "j-1"})
	require.NoError(t, err)

	evt, err := nextWithTimeout(t, sub)
	require.NoError(t, err)
	assert.Equal(t, id, evt.ID)
	assert.Equal(t, EventTypeWorkerSpawned, evt.Type)
	assert.Equal(t, "j-1", evt.Payload["job_id"])
}

func TestGetAfterOrderingAndTokenFilter(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, "run-1", "alice", EventTypeSupervisorStarted, map[string]any{})
	require.NoError(t, err)
	_, err = store.Append(ctx, "run-1", "alice", EventTypeSupervisorToken, map[string]any{"token": "a"})
	require.NoError(t, err)
	_, err = store.Append(ctx, "run-1", "alice", EventTypeSupervisorComplete, map[string]any{})
	require.NoError(t, err)
	_, err = store.Append(ctx, "run-2", "alice", EventTypeSupervisorStarted, map[string]any{})
	require.NoError(t, err)

	all, err := store.GetAfter(ctx, "run-1", 0, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].ID, all[i-1].ID)
	}

	noTokens, err := store.GetAfter(ctx, "run-1", 0, false)
	require.NoError(t, err)
	require.Len(t, noTokens, 2)
	for _, evt := range noTokens {
		assert.NotEqual(t, EventTypeSupervisorToken, evt.Type)
	}

	// afterID excludes everything at or below it.
	tail, err := store.GetAfter(ctx, "run-1", all[1].ID, true)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, all[2].ID, tail[0].ID)
}

func TestLatestEventID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	latest, err := store.LatestEventID(ctx, "run-1")
	require.NoError(t, err)
	assert.Zero(t, latest)

	id, err := store.Append(ctx, "run-1", "alice", EventTypeSupervisorStarted, map[string]any{})
	require.NoError(t, err)

	latest, err = store.LatestEventID(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, id, latest)
}

func TestGetByID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, err := store.Append(ctx, "run-1", "alice", EventTypeWorkerComplete, map[string]any{"exit_code": float64(0)})
	require.NoError(t, err)

	evt, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "run-1", evt.RunID)
	assert.Equal(t, EventTypeWorkerComplete, evt.Type)

	_, err = store.GetByID(ctx, id+999)
	assert.Error(t, err)
}

func TestDeleteForRun(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Append(ctx, "run-1", "alice", EventTypeSupervisorToken, map[string]any{})
		require.NoError(t, err)
	}
	n, err := store.DeleteForRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	count, err := store.CountForRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBuildNotifyPayloadTruncation(t *testing.T) {
	small, err := buildNotifyPayload(7, "run-1", EventTypeWorkerComplete, []byte(`{"ok":true}`))
	require.NoError(t, err)
	assert.Contains(t, small, `"ok":true`)

	big := make([]byte, notifyLimitBytes+100)
	for i := range big {
		big[i] = 'x'
	}
	truncated, err := buildNotifyPayload(7, "run-1", EventTypeWorkerComplete,
		[]byte(`{"out":"`+string(big)+`"}`))
	require.NoError(t, err)
	assert.Contains(t, truncated, `"truncated":true`)
	assert.Contains(t, truncated, `"event_id":7`)
	assert.LessOrEqual(t, len(truncated), notifyLimitBytes)
}
