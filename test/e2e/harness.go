// Package e2e wires the full orchestrator stack — services, event log,
// dispatcher, supervisor engine, stream assembler — against a real
// PostgreSQL database, with a scripted LLM and an in-process fake runner
// standing in for the two external systems.
package e2e

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/pkg/config"
	"github.com/swarmlet/swarmlet/pkg/database"
	"github.com/swarmlet/swarmlet/pkg/dispatcher"
	"github.com/swarmlet/swarmlet/pkg/events"
	"github.com/swarmlet/swarmlet/pkg/masking"
	"github.com/swarmlet/swarmlet/pkg/services"
	"github.com/swarmlet/swarmlet/pkg/stream"
	"github.com/swarmlet/swarmlet/pkg/supervisor"
	"github.com/swarmlet/swarmlet/pkg/transport"
	testdb "github.com/swarmlet/swarmlet/test/database"
)

const testOwner = "owner-e2e"

// TestApp is one in-process orchestrator replica.
type TestApp struct {
	t *testing.T

	DB        *database.Client
	Runs      *services.RunService
	Threads   *services.ThreadService
	Workers   *services.WorkerService
	Runners   *services.RunnerService
	Broker    *events.Broker
	Events    *events.Store
	LLM       *ScriptedLLM
	Hub       *FakeRunnerHub
	Engine    *supervisor.Engine
	Assembler *stream.Assembler
}

// NewTestApp assembles a replica on a fresh per-test schema.
func NewTestApp(t *testing.T) *TestApp {
	return NewTestAppOn(t, testdb.NewTestClient(t))
}

// NewTestAppOn assembles a replica on an existing database client, so
// multi-replica tests can share one schema.
func NewTestAppOn(t *testing.T, client *database.Client) *TestApp {
	t.Helper()

	app := &TestApp{
		t:       t,
		DB:      client,
		Runs:    services.NewRunService(client.Client),
		Threads: services.NewThreadService(client.Client),
		Workers: services.NewWorkerService(client.Client),
		Runners: services.NewRunnerService(client.Client),
		Broker:  events.NewBroker(),
		LLM:     NewScriptedLLM(),
		Hub:     NewFakeRunnerHub(),
	}
	app.Events = events.NewStore(client.DB(), client.IsPostgres(), app.Broker)

	summarizer := dispatcher.NewSummarizer(app.LLM, 1<<20, 150)
	disp := dispatcher.New(app.Runs, app.Workers, app.Runners, app.Hub, app.Events, summarizer, masking.NewService())

	cfg := config.SupervisorConfig{
		MaxSteps:            10,
		StepTimeout:         30 * time.Second,
		SummaryMaxChars:     150,
		EvidenceBudgetBytes: 32000,
	}
	app.Engine = supervisor.NewEngine(cfg, app.Runs, app.Threads, app.Workers, app.LLM, app.Events, disp)
	disp.SetResumer(app.Engine)
	t.Cleanup(app.Engine.Close)

	app.Assembler = stream.NewAssembler(app.Events, app.Broker, stream.Config{
		QueueSize:      1000,
		KeepOpenMaxTTL: 2 * time.Second,
		HeuristicDelay: 2 * time.Second,
	})
	return app
}

// SubmitRun creates a run and starts its supervisor loop.
func (app *TestApp) SubmitRun(task string) *ent.Run {
	app.t.Helper()
	ctx := context.Background()

	r, err := app.Runs.CreateRun(ctx, testOwner, "", task)
	require.NoError(app.t, err)
	require.NoError(app.t, app.Engine.StartRun(ctx, r))
	return r
}

// RegisterRunner enrolls a runner for the test owner.
func (app *TestApp) RegisterRunner(name string, capabilities []string) *ent.Runner {
	app.t.Helper()
	token, _ := app.Runners.CreateEnrollToken(testOwner)
	r, _, err := app.Runners.Register(context.Background(), token, name, capabilities)
	require.NoError(app.t, err)
	return r
}

// WaitStatus polls until the run reaches the wanted status or the
// deadline passes.
func (app *TestApp) WaitStatus(runID string, want run.Status, timeout time.Duration) {
	app.t.Helper()
	ctx := context.Background()
	deadline := time.Now().Add(timeout)
	for {
		status, err := app.Runs.Status(ctx, runID)
		require.NoError(app.t, err)
		if status == want {
			return
		}
		if time.Now().After(deadline) {
			app.t.Fatalf("run %s stuck in %s, wanted %s", runID, status, want)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// CollectEvents streams the run from the beginning until the close
// barrier and returns everything delivered.
func (app *TestApp) CollectEvents(runID string, includeTokens bool) []events.Event {
	app.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var got []events.Event
	err := app.Assembler.Stream(ctx, runID, stream.Options{IncludeTokens: includeTokens}, func(evt events.Event) error {
		got = append(got, evt)
		return nil
	})
	require.NoError(app.t, err)
	return got
}

// eventTypes flattens a delivery for order assertions.
func eventTypes(evts []events.Event) []string {
	out := make([]string, len(evts))
	for i, e := range evts {
		out[i] = e.Type
	}
	return out
}

// FakeRunnerHub implements the dispatcher's transport with canned
// results, standing in for the WebSocket hub.
type FakeRunnerHub struct {
	mu         sync.Mutex
	online     bool
	result     transport.JobResult
	err        error
	gate       chan struct{}
	dispatched []transport.JobRequest
}

// NewFakeRunnerHub creates a hub with every runner online.
func NewFakeRunnerHub() *FakeRunnerHub {
	return &FakeRunnerHub{online: true}
}

// SetOnline toggles runner presence.
func (h *FakeRunnerHub) SetOnline(online bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.online = online
}

// SetResult sets the canned dispatch outcome.
func (h *FakeRunnerHub) SetResult(result transport.JobResult, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.result, h.err = result, err
}

// Block makes the next Dispatch wait until Release.
func (h *FakeRunnerHub) Block() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gate = make(chan struct{})
}

// Release unblocks a blocked Dispatch.
func (h *FakeRunnerHub) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.gate != nil {
		close(h.gate)
		h.gate = nil
	}
}

// Dispatched returns the jobs sent so far.
func (h *FakeRunnerHub) Dispatched() []transport.JobRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]transport.JobRequest(nil), h.dispatched...)
}

func (h *FakeRunnerHub) IsOnline(ownerID, runnerID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.online
}

func (h *FakeRunnerHub) Dispatch(ctx context.Context, ownerID, runnerID string, job transport.JobRequest) (transport.JobResult, error) {
	h.mu.Lock()
	gate := h.gate
	h.dispatched = append(h.dispatched, job)
	result, err := h.result, h.err
	h.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return transport.JobResult{}, ctx.Err()
		}
	}
	if err != nil {
		return transport.JobResult{}, err
	}
	result.JobID = job.JobID
	return result, nil
}
