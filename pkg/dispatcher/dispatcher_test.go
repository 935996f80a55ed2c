package dispatcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/workerjob"
	"github.com/swarmlet/swarmlet/pkg/events"
	"github.com/swarmlet/swarmlet/pkg/masking"
	"github.com/swarmlet/swarmlet/pkg/models"
	"github.com/swarmlet/swarmlet/pkg/services"
	"github.com/swarmlet/swarmlet/pkg/transport"
)

type fakeRuns struct {
	mu       sync.Mutex
	waiting  bool
	suspends int
}

func (f *fakeRuns) EnsureWaiting(_ context.Context, _ string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suspends++
	return f.waiting, nil
}

type completedJob struct {
	status   workerjob.Status
	result   string
	summary  string
	errMsg   string
	exitCode *int
}

type fakeJobs struct {
	mu        sync.Mutex
	created   []*ent.WorkerJob
	running   []string
	completed map[string]completedJob
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{completed: make(map[string]completedJob)}
}

func (f *fakeJobs) CreateJob(_ context.Context, ownerID, runID, toolCallID, runnerID, task, command string, timeoutSecs int) (*ent.WorkerJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := &ent.WorkerJob{
		ID:              "job-1",
		OwnerID:         ownerID,
		SupervisorRunID: runID,
		ToolCallID:      toolCallID,
		RunnerID:        runnerID,
		Task:            task,
		Command:         command,
		TimeoutSecs:     timeoutSecs,
		Status:          workerjob.StatusQueued,
	}
	f.created = append(f.created, job)
	return job, nil
}

func (f *fakeJobs) MarkRunning(_ context.Context, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running = append(f.running, jobID)
	return nil
}

func (f *fakeJobs) CompleteJob(_ context.Context, jobID string, status workerjob.Status, result, summary, errMsg string, exitCode *int) (*ent.WorkerJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed[jobID] = completedJob{status: status, result: result, summary: summary, errMsg: errMsg, exitCode: exitCode}
	return &ent.WorkerJob{ID: jobID, Status: status, Summary: summary, Result: result, Error: errMsg}, nil
}

func (f *fakeJobs) get(jobID string) (completedJob, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.completed[jobID]
	return c, ok
}

type fakeRunners struct {
	runner *ent.Runner
	err    error
}

func (f *fakeRunners) GetRunner(_ context.Context, _, _ string) (*ent.Runner, error) {
	return f.runner, f.err
}

type fakeHub struct {
	online bool
	result transport.JobResult
	err    error

	mu         sync.Mutex
	dispatched []transport.JobRequest
}

func (f *fakeHub) IsOnline(_, _ string) bool { return f.online }

func (f *fakeHub) Dispatch(_ context.Context, _, _ string, job transport.JobRequest) (transport.JobResult, error) {
	f.mu.Lock()
	f.dispatched = append(f.dispatched, job)
	f.mu.Unlock()
	return f.result, f.err
}

type recordedEvent struct {
	eventType string
	payload   map[string]any
}

type fakeSink struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeSink) Append(_ context.Context, _, _, eventType string, payload map[string]any) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{eventType: eventType, payload: payload})
	return int64(len(f.events)), nil
}

func (f *fakeSink) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.eventType
	}
	return out
}

type fakeResumer struct {
	resumed chan *ent.WorkerJob
}

func (f *fakeResumer) ResumeAfterWorker(_ context.Context, job *ent.WorkerJob) error {
	f.resumed <- job
	return nil
}

type dispatcherFixture struct {
	runs    *fakeRuns
	jobs    *fakeJobs
	runners *fakeRunners
	hub     *fakeHub
	sink    *fakeSink
	resumer *fakeResumer
	d       *Dispatcher
}

func newFixture() *dispatcherFixture {
	f := &dispatcherFixture{
		runs:    &fakeRuns{waiting: true},
		jobs:    newFakeJobs(),
		runners: &fakeRunners{runner: &ent.Runner{ID: "runner-1", OwnerID: "owner-1", Capabilities: []string{"exec.full"}}},
		hub:     &fakeHub{online: true},
		sink:    &fakeSink{},
		resumer: &fakeResumer{resumed: make(chan *ent.WorkerJob, 1)},
	}
	// Threshold above any test payload so the summarizer never calls out.
	f.d = New(f.runs, f.jobs, f.runners, f.hub, f.sink, NewSummarizer(nil, 1<<20, 150), masking.NewService())
	f.d.SetResumer(f.resumer)
	return f
}

func (f *dispatcherFixture) waitResume(t *testing.T) *ent.WorkerJob {
	t.Helper()
	select {
	case job := <-f.resumer.resumed:
		return job
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for resume")
		return nil
	}
}

func spawnReq() SpawnRequest {
	return SpawnRequest{
		OwnerID:     "owner-1",
		RunID:       "run-1",
		ToolCallID:  "call-1",
		RunnerID:    "runner-1",
		Task:        "check disk usage",
		Command:     "df -h",
		TimeoutSecs: 30,
	}
}

func TestSpawnWorkerSuccess(t *testing.T) {
	f := newFixture()
	f.hub.result = transport.JobResult{JobID: "job-1", ExitCode: 0, Stdout: "Filesystem ok\n", DurationMS: 42}

	job, err := f.d.SpawnWorker(context.Background(), spawnReq())
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)

	resumed := f.waitResume(t)
	assert.Equal(t, workerjob.StatusSuccess, resumed.Status)

	done, ok := f.jobs.get("job-1")
	require.True(t, ok)
	assert.Equal(t, workerjob.StatusSuccess, done.status)
	assert.Equal(t, "Filesystem ok", done.result)
	assert.Equal(t, "Filesystem ok", done.summary)
	require.NotNil(t, done.exitCode)
	assert.Equal(t, 0, *done.exitCode)

	assert.Equal(t, []string{
		events.EventTypeWorkerSpawned,
		events.EventTypeWorkerStarted,
		events.EventTypeWorkerComplete,
	}, f.sink.types())
	assert.Equal(t, 1, f.runs.suspends)

	require.Len(t, f.hub.dispatched, 1)
	assert.Equal(t, "df -h", f.hub.dispatched[0].Command)
	assert.Equal(t, 30, f.hub.dispatched[0].TimeoutSecs)
}

func TestSpawnWorkerMasksCredentials(t *testing.T) {
	f := newFixture()
	f.hub.result = transport.JobResult{
		JobID:    "job-1",
		ExitCode: 0,
		Stdout:   "connected via postgres://app:supersecretpw@db:5432/prod\n",
	}

	_, err := f.d.SpawnWorker(context.Background(), spawnReq())
	require.NoError(t, err)
	f.waitResume(t)

	done, ok := f.jobs.get("job-1")
	require.True(t, ok)
	assert.NotContains(t, done.result, "supersecretpw")
	assert.Contains(t, done.result, "postgres://***MASKED***@db:5432/prod")
}

func TestSpawnWorkerValidationRejected(t *testing.T) {
	f := newFixture()
	f.runners.runner.Capabilities = []string{"exec.readonly"}

	req := spawnReq()
	req.Command = "rm -rf /tmp/x"
	_, err := f.d.SpawnWorker(context.Background(), req)
	require.Error(t, err)

	var domainErr *models.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.ErrorTypeValidation, domainErr.Type)
	assert.Empty(t, f.jobs.created, "rejected command must never be persisted")
	assert.Empty(t, f.sink.types())
}

func TestSpawnWorkerUnknownRunner(t *testing.T) {
	f := newFixture()
	f.runners.runner = nil
	f.runners.err = services.ErrNotFound

	_, err := f.d.SpawnWorker(context.Background(), spawnReq())
	var domainErr *models.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.ErrorTypeNotFound, domainErr.Type)
}

func TestSpawnWorkerRunNotRunning(t *testing.T) {
	f := newFixture()
	f.runs.waiting = false

	_, err := f.d.SpawnWorker(context.Background(), spawnReq())
	require.Error(t, err)

	done, ok := f.jobs.get("job-1")
	require.True(t, ok)
	assert.Equal(t, workerjob.StatusCancelled, done.status)
	assert.Empty(t, f.hub.dispatched, "a spawn losing the suspend race must not dispatch")
	assert.Empty(t, f.sink.types())
}

func TestSpawnWorkerRunnerOffline(t *testing.T) {
	f := newFixture()
	f.hub.online = false

	_, err := f.d.SpawnWorker(context.Background(), spawnReq())
	require.NoError(t, err)

	f.waitResume(t)
	done, _ := f.jobs.get("job-1")
	assert.Equal(t, workerjob.StatusFailed, done.status)
	assert.Equal(t, "runner offline", done.errMsg)
	assert.Equal(t, []string{
		events.EventTypeWorkerSpawned,
		events.EventTypeWorkerFailed,
	}, f.sink.types())
}

func TestSpawnWorkerDispatchTimeout(t *testing.T) {
	f := newFixture()
	f.hub.err = transport.ErrDispatchTimeout

	_, err := f.d.SpawnWorker(context.Background(), spawnReq())
	require.NoError(t, err)

	f.waitResume(t)
	done, _ := f.jobs.get("job-1")
	assert.Equal(t, workerjob.StatusTimeout, done.status)
	assert.Equal(t, "timed out", done.errMsg)
}

func TestSpawnWorkerConnectionLostIsFailure(t *testing.T) {
	f := newFixture()
	f.hub.err = transport.ErrConnectionLost

	_, err := f.d.SpawnWorker(context.Background(), spawnReq())
	require.NoError(t, err)

	f.waitResume(t)
	done, _ := f.jobs.get("job-1")
	assert.Equal(t, workerjob.StatusFailed, done.status)
	assert.Equal(t, "connection lost", done.errMsg)
}

func TestSpawnWorkerNonZeroExit(t *testing.T) {
	f := newFixture()
	f.hub.result = transport.JobResult{JobID: "job-1", ExitCode: 2, Stdout: "partial", Stderr: "df: /mnt: no such device"}

	_, err := f.d.SpawnWorker(context.Background(), spawnReq())
	require.NoError(t, err)

	f.waitResume(t)
	done, _ := f.jobs.get("job-1")
	assert.Equal(t, workerjob.StatusFailed, done.status)
	assert.Equal(t, "command exited with code 2", done.errMsg)
	assert.Contains(t, done.result, "partial")
	assert.Contains(t, done.result, "--- stderr ---")
	require.NotNil(t, done.exitCode)
	assert.Equal(t, 2, *done.exitCode)

	types := f.sink.types()
	require.Len(t, types, 3)
	assert.Equal(t, events.EventTypeWorkerFailed, types[2])
}

func TestSpawnWorkerDefaultTimeout(t *testing.T) {
	f := newFixture()
	f.hub.result = transport.JobResult{JobID: "job-1", ExitCode: 0, Stdout: "ok"}

	req := spawnReq()
	req.TimeoutSecs = 0
	_, err := f.d.SpawnWorker(context.Background(), req)
	require.NoError(t, err)

	f.waitResume(t)
	require.Len(t, f.hub.dispatched, 1)
	assert.Equal(t, defaultJobTimeoutSecs, f.hub.dispatched[0].TimeoutSecs)
}

func TestDispatchErrorMessageMapping(t *testing.T) {
	assert.Equal(t, "runner offline", dispatchErrorMessage(transport.ErrRunnerOffline))
	assert.Equal(t, "runner is busy", dispatchErrorMessage(transport.ErrRunnerBusy))
	assert.Equal(t, "timed out", dispatchErrorMessage(transport.ErrDispatchTimeout))
	assert.Equal(t, "connection lost", dispatchErrorMessage(transport.ErrConnectionLost))
	assert.Equal(t, "boom", dispatchErrorMessage(errors.New("boom")))
}

func TestCommandPreview(t *testing.T) {
	assert.Equal(t, "df -h", commandPreview("df -h"))
	assert.Equal(t, "line one", commandPreview("line one\nline two"))

	long := ""
	for len(long) < 200 {
		long += "x"
	}
	preview := commandPreview(long)
	assert.Len(t, []rune(preview), commandPreviewMax+1)
	assert.Contains(t, preview, "…")
}
