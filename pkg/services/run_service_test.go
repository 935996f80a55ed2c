package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent/run"
)

func TestCreateRunSeedsThread(t *testing.T) {
	client := newTestClient(t)
	runs := NewRunService(client)
	threads := NewThreadService(client)
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "check disk usage on the build hosts")
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, r.Status)
	assert.NotEmpty(t, r.ThreadID)
	assert.NotEmpty(t, r.TraceID)

	msgs, err := threads.GetMessages(ctx, r.ThreadID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "user", msgs[0].Role)
	assert.Equal(t, "check disk usage on the build hosts", msgs[0].Content)
}

func TestCreateRunOnExistingThread(t *testing.T) {
	client := newTestClient(t)
	runs := NewRunService(client)
	threads := NewThreadService(client)
	ctx := context.Background()

	first, err := runs.CreateRun(ctx, "owner-1", "", "first task")
	require.NoError(t, err)
	second, err := runs.CreateRun(ctx, "owner-1", first.ThreadID, "follow-up task")
	require.NoError(t, err)
	assert.Equal(t, first.ThreadID, second.ThreadID)

	// A follow-up run appends its task as the next user turn, so the
	// engine's first LLM call actually carries it.
	msgs, err := threads.GetMessages(ctx, first.ThreadID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", msgs[1].Role)
	assert.Equal(t, "follow-up task", msgs[1].Content)
}

func TestCreateRunRejectsForeignThread(t *testing.T) {
	client := newTestClient(t)
	runs := NewRunService(client)
	threads := NewThreadService(client)
	ctx := context.Background()

	first, err := runs.CreateRun(ctx, "owner-a", "", "owner a's private task")
	require.NoError(t, err)

	// Another tenant naming the thread id must get the same answer as
	// for a thread that does not exist.
	_, err = runs.CreateRun(ctx, "owner-b", first.ThreadID, "hijack attempt")
	assert.ErrorIs(t, err, ErrNotFound)

	// Nothing leaked into owner a's conversation.
	msgs, err := threads.GetMessages(ctx, first.ThreadID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "owner a's private task", msgs[0].Content)
}

func TestCreateRunUnknownThreadIsNotFound(t *testing.T) {
	runs := NewRunService(newTestClient(t))

	_, err := runs.CreateRun(context.Background(), "owner-1", "no-such-thread", "task")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRunRequiresTask(t *testing.T) {
	runs := NewRunService(newTestClient(t))

	_, err := runs.CreateRun(context.Background(), "owner-1", "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetRunIsOwnerScoped(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "task")
	require.NoError(t, err)

	got, err := runs.GetRun(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	_, err = runs.GetRun(ctx, "owner-2", r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRunsNewestFirst(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	for _, task := range []string{"a", "b", "c"} {
		_, err := runs.CreateRun(ctx, "owner-1", "", task)
		require.NoError(t, err)
	}
	_, err := runs.CreateRun(ctx, "owner-2", "", "other owner")
	require.NoError(t, err)

	list, err := runs.ListRuns(ctx, "owner-1", 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, r := range list {
		assert.Equal(t, "owner-1", r.OwnerID)
	}
}

func TestMarkRunningOnlyFromPending(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "task")
	require.NoError(t, err)

	ok, err := runs.MarkRunning(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second attempt loses: the run is no longer pending.
	ok, err = runs.MarkRunning(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := runs.GetRun(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, got.Status)
	assert.NotNil(t, got.StartedAt)
}

func TestMarkRunningLosesToCancel(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "task")
	require.NoError(t, err)
	require.NoError(t, runs.Cancel(ctx, "owner-1", r.ID))

	ok, err := runs.MarkRunning(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, ok, "a run cancelled before pickup must not start")
}

func TestEnsureWaitingIsIdempotentWhileSuspended(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "task")
	require.NoError(t, err)
	_, err = runs.MarkRunning(ctx, r.ID)
	require.NoError(t, err)

	// A step that fans out several workers suspends once per spawn.
	for i := 0; i < 3; i++ {
		ok, err := runs.EnsureWaiting(ctx, r.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	status, err := runs.Status(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusWaiting, status)
}

func TestEnsureWaitingRejectsCancelled(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "task")
	require.NoError(t, err)
	_, err = runs.MarkRunning(ctx, r.ID)
	require.NoError(t, err)
	require.NoError(t, runs.Cancel(ctx, "owner-1", r.ID))

	ok, err := runs.EnsureWaiting(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	status, err := runs.Status(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, status)
}

func TestTryResumeSingleWinner(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "task")
	require.NoError(t, err)
	_, err = runs.MarkRunning(ctx, r.ID)
	require.NoError(t, err)
	_, err = runs.EnsureWaiting(ctx, r.ID)
	require.NoError(t, err)

	// Several workers finish at once; exactly one resume wins.
	const attempts = 8
	var wg sync.WaitGroup
	wins := make(chan bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := runs.TryResume(ctx, r.ID)
			require.NoError(t, err)
			wins <- ok
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for ok := range wins {
		if ok {
			won++
		}
	}
	assert.Equal(t, 1, won)
}

func TestCompleteGuardsTerminalStates(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "task")
	require.NoError(t, err)
	_, err = runs.MarkRunning(ctx, r.ID)
	require.NoError(t, err)

	ok, err := runs.Complete(ctx, r.ID, run.StatusSuccess, "")
	require.NoError(t, err)
	assert.True(t, ok)

	// A late failure report must not overwrite the success.
	ok, err = runs.Complete(ctx, r.ID, run.StatusFailed, "late error")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := runs.GetRun(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusSuccess, got.Status)
	assert.NotNil(t, got.FinishedAt)
}

func TestCompleteFailedStoresError(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "task")
	require.NoError(t, err)

	ok, err := runs.Complete(ctx, r.ID, run.StatusFailed, "llm gateway unreachable")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := runs.GetRun(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, got.Status)
	require.NotNil(t, got.Error)
	assert.Equal(t, "llm gateway unreachable", *got.Error)
}

func TestCancelIsAbsorbing(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "task")
	require.NoError(t, err)
	require.NoError(t, runs.Cancel(ctx, "owner-1", r.ID))

	// Cancel again: idempotent.
	require.NoError(t, runs.Cancel(ctx, "owner-1", r.ID))

	// A completion racing the cancel is a no-op.
	ok, err := runs.Complete(ctx, r.ID, run.StatusSuccess, "")
	require.NoError(t, err)
	assert.False(t, ok)

	status, err := runs.Status(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, status)
}

func TestCancelUnknownRunIsNotFound(t *testing.T) {
	runs := NewRunService(newTestClient(t))

	err := runs.Cancel(context.Background(), "owner-1", "no-such-run")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelIsOwnerScoped(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "task")
	require.NoError(t, err)

	err = runs.Cancel(ctx, "owner-2", r.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	status, err := runs.Status(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, status)
}

func TestAddUsageAccumulates(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, "owner-1", "", "task")
	require.NoError(t, err)

	require.NoError(t, runs.AddUsage(ctx, r.ID, 120, 0.004, 1))
	require.NoError(t, runs.AddUsage(ctx, r.ID, 80, 0.002, 1))

	got, err := runs.GetRun(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, got.TotalTokens)
	assert.InDelta(t, 0.006, got.TotalCost, 1e-9)
	assert.Equal(t, 2, got.Steps)
}
