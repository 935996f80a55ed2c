package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/ent/workerjob"
	"github.com/swarmlet/swarmlet/pkg/supervisor"
	"github.com/swarmlet/swarmlet/pkg/transport"
)

// A cancel landing while a worker is in flight must win: the worker's
// result is still recorded on the job, but the run never resumes.
func TestCancelWhileWorkerInFlight(t *testing.T) {
	app := NewTestApp(t)
	runner := app.RegisterRunner("build-host", []string{"exec.full"})
	app.Hub.SetResult(transport.JobResult{ExitCode: 0, Stdout: "late result\n"}, nil)
	app.Hub.Block()

	app.LLM.ScriptToolCall("call-1", supervisor.SpawnWorkerToolName,
		spawnArgs(runner.ID, "slow check", "sleep 60"))

	r := app.SubmitRun("run a slow check")
	app.WaitStatus(r.ID, run.StatusWaiting, 10*time.Second)

	ctx := context.Background()
	require.NoError(t, app.Runs.Cancel(ctx, testOwner, r.ID))
	app.Hub.Release()

	// The dispatcher still drives the job to its terminal state.
	require.Eventually(t, func() bool {
		jobs, err := app.Workers.ListForRun(ctx, r.ID)
		require.NoError(t, err)
		return len(jobs) == 1 && jobs[0].Status == workerjob.StatusSuccess
	}, 10*time.Second, 25*time.Millisecond)

	// But the resume is skipped: the run stays cancelled and the model
	// is never called again.
	time.Sleep(200 * time.Millisecond)
	status, err := app.Runs.Status(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, status)
	assert.Len(t, app.LLM.Calls(), 1)
}

func TestCancelBeforeStartSkipsLoop(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	r, err := app.Runs.CreateRun(ctx, testOwner, "", "never runs")
	require.NoError(t, err)
	require.NoError(t, app.Runs.Cancel(ctx, testOwner, r.ID))

	// StartRun on a cancelled run is a silent no-op.
	require.NoError(t, app.Engine.StartRun(ctx, r))
	time.Sleep(100 * time.Millisecond)

	status, err := app.Runs.Status(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, status)
	assert.Empty(t, app.LLM.Calls())
}
