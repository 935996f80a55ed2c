package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/ent/workerjob"
	"github.com/swarmlet/swarmlet/pkg/events"
	"github.com/swarmlet/swarmlet/pkg/supervisor"
	"github.com/swarmlet/swarmlet/pkg/transport"
)

func spawnArgs(runnerID, task, command string) string {
	return fmt.Sprintf(`{"runner_id":%q,"task":%q,"command":%q}`, runnerID, task, command)
}

func TestWorkerRoundTrip(t *testing.T) {
	app := NewTestApp(t)
	runner := app.RegisterRunner("build-host", []string{"exec.full"})
	app.Hub.SetResult(transport.JobResult{ExitCode: 0, Stdout: "4\n", DurationMS: 12}, nil)

	app.LLM.ScriptToolCall("call-1", supervisor.SpawnWorkerToolName,
		spawnArgs(runner.ID, "count cpus", "nproc"))
	app.LLM.ScriptAnswer("The host has 4 CPUs.")

	r := app.SubmitRun("how many cpus does the build host have?")
	app.WaitStatus(r.ID, run.StatusSuccess, 10*time.Second)

	ctx := context.Background()
	jobs, err := app.Workers.ListForRun(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, workerjob.StatusSuccess, jobs[0].Status)
	assert.Equal(t, "4", jobs[0].Result)
	assert.Equal(t, "nproc", jobs[0].Command)

	// The resume appended the worker's result before the second LLM call.
	has, err := app.Threads.HasToolResult(ctx, r.ThreadID, "call-1")
	require.NoError(t, err)
	assert.True(t, has)

	calls := app.LLM.Calls()
	require.Len(t, calls, 2)
	lastMsg := calls[1].Messages[len(calls[1].Messages)-1]
	assert.Equal(t, "tool", lastMsg.Role)

	types := eventTypes(app.CollectEvents(r.ID, false))
	assert.Equal(t, []string{
		events.EventTypeSupervisorStarted,
		events.EventTypeWorkerSpawned,
		events.EventTypeWorkerStarted,
		events.EventTypeWorkerComplete,
		events.EventTypeSupervisorComplete,
		events.EventTypeStreamControl,
	}, types)

	dispatched := app.Hub.Dispatched()
	require.Len(t, dispatched, 1)
	assert.Equal(t, "nproc", dispatched[0].Command)
}

func TestWorkerFailureFeedsBackIntoRun(t *testing.T) {
	app := NewTestApp(t)
	runner := app.RegisterRunner("build-host", []string{"exec.full"})
	app.Hub.SetResult(transport.JobResult{ExitCode: 2, Stderr: "nproc: not found\n"}, nil)

	app.LLM.ScriptToolCall("call-1", supervisor.SpawnWorkerToolName,
		spawnArgs(runner.ID, "count cpus", "nproc"))
	app.LLM.ScriptAnswer("The command is unavailable on that host.")

	r := app.SubmitRun("how many cpus?")
	app.WaitStatus(r.ID, run.StatusSuccess, 10*time.Second)

	jobs, err := app.Workers.ListForRun(context.Background(), r.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, workerjob.StatusFailed, jobs[0].Status)
	assert.Equal(t, "command exited with code 2", jobs[0].Error)

	types := eventTypes(app.CollectEvents(r.ID, false))
	assert.Contains(t, types, events.EventTypeWorkerFailed)
	assert.Contains(t, types, events.EventTypeSupervisorComplete)
}

func TestSpawnRejectedByCapabilities(t *testing.T) {
	app := NewTestApp(t)
	runner := app.RegisterRunner("readonly-host", []string{"exec.readonly"})

	app.LLM.ScriptToolCall("call-1", supervisor.SpawnWorkerToolName,
		spawnArgs(runner.ID, "clean tmp", "rm -rf /tmp/cache"))
	app.LLM.ScriptAnswer("That host only allows read-only commands.")

	r := app.SubmitRun("clean the cache")
	app.WaitStatus(r.ID, run.StatusSuccess, 10*time.Second)

	// The rejected spawn never became a job; the model saw the failure
	// as a tool result and answered in the next step.
	jobs, err := app.Workers.ListForRun(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	types := eventTypes(app.CollectEvents(r.ID, false))
	assert.Contains(t, types, events.EventTypeSupervisorToolFailed)
}
