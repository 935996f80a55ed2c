package supervisor

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/ent/workerjob"
	"github.com/swarmlet/swarmlet/pkg/config"
	"github.com/swarmlet/swarmlet/pkg/dispatcher"
	"github.com/swarmlet/swarmlet/pkg/events"
	"github.com/swarmlet/swarmlet/pkg/llm"
)

type memRun struct {
	status run.Status
	steps  int
	tokens int
	errMsg string
}

type fakeRunStore struct {
	mu   sync.Mutex
	runs map[string]*memRun
}

func newFakeRunStore() *fakeRunStore {
	return &fakeRunStore{runs: map[string]*memRun{}}
}

func (f *fakeRunStore) add(runID string, status run.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs[runID] = &memRun{status: status}
}

func (f *fakeRunStore) GetRun(_ context.Context, ownerID, runID string) (*ent.Run, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.runs[runID]
	return &ent.Run{ID: runID, OwnerID: ownerID, ThreadID: "thread-1", Status: r.status, Steps: r.steps}, nil
}

func (f *fakeRunStore) cas(runID string, from []run.Status, to run.Status) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.runs[runID]
	for _, s := range from {
		if r.status == s {
			r.status = to
			return true
		}
	}
	return false
}

func (f *fakeRunStore) MarkRunning(_ context.Context, runID string) (bool, error) {
	return f.cas(runID, []run.Status{run.StatusPending}, run.StatusRunning), nil
}

func (f *fakeRunStore) TryResume(_ context.Context, runID string) (bool, error) {
	return f.cas(runID, []run.Status{run.StatusWaiting}, run.StatusRunning), nil
}

func (f *fakeRunStore) EnsureWaiting(_ context.Context, runID string) (bool, error) {
	return f.cas(runID, []run.Status{run.StatusRunning, run.StatusWaiting}, run.StatusWaiting), nil
}

func (f *fakeRunStore) Complete(_ context.Context, runID string, status run.Status, errMsg string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.runs[runID]
	switch r.status {
	case run.StatusSuccess, run.StatusFailed, run.StatusCancelled:
		return false, nil
	}
	r.status = status
	r.errMsg = errMsg
	return true, nil
}

func (f *fakeRunStore) AddUsage(_ context.Context, runID string, tokens int, _ float64, steps int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs[runID].tokens += tokens
	f.runs[runID].steps += steps
	return nil
}

func (f *fakeRunStore) Status(_ context.Context, runID string) (run.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs[runID].status, nil
}

type fakeThreadStore struct {
	mu   sync.Mutex
	msgs []*ent.ThreadMessage
}

func (f *fakeThreadStore) GetMessages(_ context.Context, _ string) ([]*ent.ThreadMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*ent.ThreadMessage, len(f.msgs))
	copy(out, f.msgs)
	return out, nil
}

func (f *fakeThreadStore) AppendAssistantMessage(_ context.Context, threadID, content string, toolCalls []map[string]interface{}) (*ent.ThreadMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := &ent.ThreadMessage{ThreadID: threadID, Role: "assistant", Content: content, ToolCalls: toolCalls}
	f.msgs = append(f.msgs, msg)
	return msg, nil
}

func (f *fakeThreadStore) AppendToolResult(_ context.Context, threadID, toolCallID, toolName, content string) (*ent.ThreadMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := &ent.ThreadMessage{ThreadID: threadID, Role: "tool", ToolCallID: toolCallID, ToolName: toolName, Content: content}
	f.msgs = append(f.msgs, msg)
	return msg, nil
}

func (f *fakeThreadStore) HasToolResult(_ context.Context, _, toolCallID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.msgs {
		if m.Role == "tool" && m.ToolCallID == toolCallID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeThreadStore) toolResults() []*ent.ThreadMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.ThreadMessage
	for _, m := range f.msgs {
		if m.Role == "tool" {
			out = append(out, m)
		}
	}
	return out
}

type fakeJobSource struct {
	mu     sync.Mutex
	jobs   map[string]*ent.WorkerJob
	active int
	counts int

	// afterFirstCount, when set, runs once after the first CountActive
	// returns. Tests use it to land a worker completion in the window
	// between the engine's count and its suspend.
	afterFirstCount func()
}

func newFakeJobSource() *fakeJobSource {
	return &fakeJobSource{jobs: map[string]*ent.WorkerJob{}}
}

func (f *fakeJobSource) GetRunJob(_ context.Context, _, jobID string) (*ent.WorkerJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job %s not found", jobID)
	}
	return job, nil
}

func (f *fakeJobSource) CountActive(_ context.Context, _ string) (int, error) {
	f.mu.Lock()
	n := f.active
	f.counts++
	hook := f.afterFirstCount
	if f.counts > 1 {
		hook = nil
	}
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return n, nil
}

func (f *fakeJobSource) setActive(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = n
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

func (f *fakeSink) find(eventType string) (map[string]any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.eventType == eventType {
			return e.payload, true
		}
	}
	return nil, false
}

type fakeSpawner struct {
	runs *fakeRunStore

	mu       sync.Mutex
	requests []dispatcher.SpawnRequest
	err      error
}

func (f *fakeSpawner) SpawnWorker(ctx context.Context, req dispatcher.SpawnRequest) (*ent.WorkerJob, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	err := f.err
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	// Mirror the dispatcher: a successful spawn suspends the run.
	if _, err := f.runs.EnsureWaiting(ctx, req.RunID); err != nil {
		return nil, err
	}
	return &ent.WorkerJob{ID: "job-1", SupervisorRunID: req.RunID, Status: workerjob.StatusQueued}, nil
}

// scriptedLLM replays one chunk script per Generate call; the last
// script repeats once the list is exhausted.
type scriptedLLM struct {
	mu      sync.Mutex
	scripts [][]llm.Chunk
	calls   int
}

func (s *scriptedLLM) Generate(_ context.Context, _ *llm.GenerateInput) (<-chan llm.Chunk, error) {
	s.mu.Lock()
	idx := s.calls
	if idx >= len(s.scripts) {
		idx = len(s.scripts) - 1
	}
	script := s.scripts[idx]
	s.calls++
	s.mu.Unlock()

	ch := make(chan llm.Chunk, len(script))
	for _, c := range script {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

type engineFixture struct {
	runs    *fakeRunStore
	threads *fakeThreadStore
	jobs    *fakeJobSource
	sink    *fakeSink
	spawner *fakeSpawner
	llm     *scriptedLLM
	engine  *Engine
}

func newEngineFixture(t *testing.T, cfg config.SupervisorConfig, scripts ...[]llm.Chunk) *engineFixture {
	t.Helper()
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = 10
	}
	if cfg.StepTimeout == 0 {
		cfg.StepTimeout = 5 * time.Second
	}
	if cfg.EvidenceBudgetBytes == 0 {
		cfg.EvidenceBudgetBytes = 32000
	}
	f := &engineFixture{
		runs:    newFakeRunStore(),
		threads: &fakeThreadStore{},
		jobs:    newFakeJobSource(),
		sink:    &fakeSink{},
		llm:     &scriptedLLM{scripts: scripts},
	}
	f.spawner = &fakeSpawner{runs: f.runs}
	f.engine = NewEngine(cfg, f.runs, f.threads, f.jobs, f.llm, f.sink, f.spawner, &CurrentTimeTool{})
	t.Cleanup(f.engine.Close)
	return f
}

func (f *engineFixture) seedRun(t *testing.T, status run.Status) *ent.Run {
	t.Helper()
	f.runs.add("run-1", status)
	f.threads.msgs = append(f.threads.msgs, &ent.ThreadMessage{ThreadID: "thread-1", Role: "user", Content: "check the fleet"})
	return &ent.Run{ID: "run-1", OwnerID: "owner-1", ThreadID: "thread-1", Status: status, Task: "check the fleet"}
}

func (f *engineFixture) waitStatus(t *testing.T, want run.Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		s, _ := f.runs.Status(context.Background(), "run-1")
		return s == want
	}, 3*time.Second, 10*time.Millisecond, "run never reached %s", want)
}

func answerScript(text string) []llm.Chunk {
	return []llm.Chunk{
		&llm.TextChunk{Content: text},
		&llm.UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}
}

func toolCallScript(callID, name, args string) []llm.Chunk {
	return []llm.Chunk{&llm.ToolCallChunk{CallID: callID, Name: name, Arguments: args}}
}

func TestRunCompletesWithAnswer(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{}, answerScript("All hosts healthy."))
	r := f.seedRun(t, run.StatusPending)

	require.NoError(t, f.engine.StartRun(context.Background(), r))
	f.waitStatus(t, run.StatusSuccess)

	types := f.sink.types()
	assert.Contains(t, types, events.EventTypeSupervisorStarted)
	assert.Contains(t, types, events.EventTypeSupervisorToken)
	assert.Contains(t, types, events.EventTypeSupervisorComplete)

	payload, ok := f.sink.find(events.EventTypeStreamControl)
	require.True(t, ok, "finishing a run must set the close barrier")
	assert.Equal(t, events.StreamActionClose, payload["action"])

	complete, _ := f.sink.find(events.EventTypeSupervisorComplete)
	assert.Equal(t, "All hosts healthy.", complete["result"])
}

func TestStartRunSkipsNonPending(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{}, answerScript("unused"))
	r := f.seedRun(t, run.StatusCancelled)

	require.NoError(t, f.engine.StartRun(context.Background(), r))
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, f.sink.types())
}

func TestLocalToolRoundTrip(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{},
		toolCallScript("call-1", "current_time", "{}"),
		answerScript("It is late."),
	)
	r := f.seedRun(t, run.StatusPending)

	require.NoError(t, f.engine.StartRun(context.Background(), r))
	f.waitStatus(t, run.StatusSuccess)

	types := f.sink.types()
	assert.Contains(t, types, events.EventTypeSupervisorToolStarted)
	assert.Contains(t, types, events.EventTypeSupervisorToolCompleted)

	results := f.threads.toolResults()
	require.Len(t, results, 1)
	assert.Equal(t, "call-1", results[0].ToolCallID)
	assert.Equal(t, "current_time", results[0].ToolName)
}

func TestUnknownToolFailsCallNotRun(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{},
		toolCallScript("call-1", "launch_missiles", "{}"),
		answerScript("Could not do that."),
	)
	r := f.seedRun(t, run.StatusPending)

	require.NoError(t, f.engine.StartRun(context.Background(), r))
	f.waitStatus(t, run.StatusSuccess)

	payload, ok := f.sink.find(events.EventTypeSupervisorToolFailed)
	require.True(t, ok)
	assert.Contains(t, payload["error"], "unknown tool")
}

func TestStepLimitFailsRun(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{MaxSteps: 2},
		toolCallScript("call-1", "current_time", "{}"),
	)
	r := f.seedRun(t, run.StatusPending)

	require.NoError(t, f.engine.StartRun(context.Background(), r))
	f.waitStatus(t, run.StatusFailed)

	payload, ok := f.sink.find(events.EventTypeSupervisorFailed)
	require.True(t, ok)
	assert.Equal(t, "step_limit", payload["reason"])
}

func TestLLMErrorFailsRun(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{},
		[]llm.Chunk{&llm.ErrorChunk{Message: "provider exploded"}},
	)
	r := f.seedRun(t, run.StatusPending)

	require.NoError(t, f.engine.StartRun(context.Background(), r))
	f.waitStatus(t, run.StatusFailed)

	payload, ok := f.sink.find(events.EventTypeSupervisorFailed)
	require.True(t, ok)
	assert.Contains(t, payload["error"], "provider exploded")
}

func TestSpawnWorkerSuspendsRun(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{},
		toolCallScript("call-1", SpawnWorkerToolName,
			`{"runner_id":"runner-1","task":"disk check","command":"df -h","timeout_secs":30}`),
	)
	r := f.seedRun(t, run.StatusPending)

	require.NoError(t, f.engine.StartRun(context.Background(), r))
	f.waitStatus(t, run.StatusWaiting)

	f.spawner.mu.Lock()
	defer f.spawner.mu.Unlock()
	require.Len(t, f.spawner.requests, 1)
	req := f.spawner.requests[0]
	assert.Equal(t, "runner-1", req.RunnerID)
	assert.Equal(t, "df -h", req.Command)
	assert.Equal(t, "call-1", req.ToolCallID)
	assert.Equal(t, 30, req.TimeoutSecs)
}

func TestSpawnWorkerBadArgsContinues(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{},
		toolCallScript("call-1", SpawnWorkerToolName, `{"task":"no runner"}`),
		answerScript("Giving up."),
	)
	r := f.seedRun(t, run.StatusPending)

	require.NoError(t, f.engine.StartRun(context.Background(), r))
	f.waitStatus(t, run.StatusSuccess)

	results := f.threads.toolResults()
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Content, "spawn failed")
	f.spawner.mu.Lock()
	defer f.spawner.mu.Unlock()
	assert.Empty(t, f.spawner.requests)
}

func TestResumeAfterWorkerWinnerReentersLoop(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{}, answerScript("Done with the result."))
	f.seedRun(t, run.StatusWaiting)

	job := &ent.WorkerJob{
		ID:              "job-1",
		OwnerID:         "owner-1",
		SupervisorRunID: "run-1",
		RunnerID:        "runner-1",
		ToolCallID:      "call-1",
		Status:          workerjob.StatusSuccess,
		Summary:         "40% disk used",
	}
	require.NoError(t, f.engine.ResumeAfterWorker(context.Background(), job))
	f.waitStatus(t, run.StatusSuccess)

	results := f.threads.toolResults()
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Content, "40% disk used")
	assert.Contains(t, results[0].Content, EvidenceMarker("run-1", "job-1", "runner-1"))
}

func TestDoubleResumeSecondSkips(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{}, answerScript("Done."))
	f.seedRun(t, run.StatusWaiting)

	job := &ent.WorkerJob{
		ID:              "job-1",
		OwnerID:         "owner-1",
		SupervisorRunID: "run-1",
		RunnerID:        "runner-1",
		ToolCallID:      "call-1",
		Status:          workerjob.StatusSuccess,
		Summary:         "ok",
	}
	require.NoError(t, f.engine.ResumeAfterWorker(context.Background(), job))
	require.NoError(t, f.engine.ResumeAfterWorker(context.Background(), job))
	f.waitStatus(t, run.StatusSuccess)

	assert.Len(t, f.threads.toolResults(), 1, "replayed resume must not duplicate the tool result")
}

func TestResumeOnCancelledRunIsNoOp(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{}, answerScript("unused"))
	f.seedRun(t, run.StatusCancelled)

	job := &ent.WorkerJob{
		ID:              "job-1",
		OwnerID:         "owner-1",
		SupervisorRunID: "run-1",
		RunnerID:        "runner-1",
		ToolCallID:      "call-1",
		Status:          workerjob.StatusSuccess,
		Summary:         "late result",
	}
	require.NoError(t, f.engine.ResumeAfterWorker(context.Background(), job))
	time.Sleep(50 * time.Millisecond)

	status, _ := f.runs.Status(context.Background(), "run-1")
	assert.Equal(t, run.StatusCancelled, status)
	assert.Empty(t, f.threads.toolResults())
}

func TestAnswerWithActiveWorkersSuspends(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{}, answerScript("Early answer."))
	r := f.seedRun(t, run.StatusPending)
	f.jobs.active = 1

	require.NoError(t, f.engine.StartRun(context.Background(), r))
	f.waitStatus(t, run.StatusWaiting)

	payload, ok := f.sink.find(events.EventTypeStreamControl)
	require.True(t, ok)
	assert.Equal(t, events.StreamActionKeepOpen, payload["action"])
	assert.Equal(t, 1, payload["pending_workers"])
	_, completed := f.sink.find(events.EventTypeSupervisorComplete)
	assert.False(t, completed, "a run with live workers must not complete")
}

func TestAnswerRacingFinalWorkerCompletion(t *testing.T) {
	f := newEngineFixture(t, config.SupervisorConfig{},
		answerScript("Early answer."),
		answerScript("All workers accounted for."),
	)
	r := f.seedRun(t, run.StatusPending)
	f.jobs.active = 1

	job := &ent.WorkerJob{
		ID:              "job-1",
		OwnerID:         "owner-1",
		SupervisorRunID: "run-1",
		RunnerID:        "runner-1",
		ToolCallID:      "call-1",
		Status:          workerjob.StatusSuccess,
		Summary:         "checks passed",
	}
	// The last worker finishes right after the engine counted it as
	// active: its resume fires while the run is still RUNNING and loses
	// the CAS. The engine must claim that wakeup itself instead of
	// parking the run with nothing left to wake it.
	f.jobs.afterFirstCount = func() {
		f.jobs.setActive(0)
		require.NoError(t, f.engine.ResumeAfterWorker(context.Background(), job))
	}

	require.NoError(t, f.engine.StartRun(context.Background(), r))
	f.waitStatus(t, run.StatusSuccess)

	results := f.threads.toolResults()
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Content, "checks passed")
	_, completed := f.sink.find(events.EventTypeSupervisorComplete)
	assert.True(t, completed)
}

func TestResumeContentMarksTimeoutAsFailure(t *testing.T) {
	job := &ent.WorkerJob{
		ID:              "job-1",
		SupervisorRunID: "run-1",
		RunnerID:        "runner-1",
		Status:          workerjob.StatusTimeout,
		Error:           "timed out",
	}
	content := resumeContent(job)
	assert.Contains(t, content, "Worker failed: timed out")
	assert.Contains(t, content, EvidenceMarker("run-1", "job-1", "runner-1"))
}
