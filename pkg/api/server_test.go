package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/ent/workerjob"
	"github.com/swarmlet/swarmlet/pkg/config"
	"github.com/swarmlet/swarmlet/pkg/events"
	"github.com/swarmlet/swarmlet/pkg/services"
	"github.com/swarmlet/swarmlet/pkg/stream"
)

const (
	testToken = "static-test-token"
	testOwner = "owner-1"
)

type fakeRunService struct {
	runs      map[string]*ent.Run
	created   []*ent.Run
	cancelled []string
	err       error
}

func (f *fakeRunService) CreateRun(_ context.Context, ownerID, threadID, task string) (*ent.Run, error) {
	if f.err != nil {
		return nil, f.err
	}
	if threadID == "" {
		threadID = "thread-new"
	}
	r := &ent.Run{
		ID:        "run-created",
		OwnerID:   ownerID,
		ThreadID:  threadID,
		Task:      task,
		Status:    run.StatusPending,
		CreatedAt: time.Now(),
	}
	f.created = append(f.created, r)
	return r, nil
}

func (f *fakeRunService) GetRun(_ context.Context, ownerID, runID string) (*ent.Run, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.runs[runID]
	if !ok || r.OwnerID != ownerID {
		return nil, services.ErrNotFound
	}
	return r, nil
}

func (f *fakeRunService) ListRuns(_ context.Context, ownerID string, _ int) ([]*ent.Run, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*ent.Run
	for _, r := range f.runs {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRunService) Cancel(_ context.Context, ownerID, runID string) error {
	if f.err != nil {
		return f.err
	}
	if _, err := f.GetRun(context.Background(), ownerID, runID); err != nil {
		return err
	}
	f.cancelled = append(f.cancelled, runID)
	return nil
}

type fakeJobService struct {
	jobs map[string]*ent.WorkerJob
}

func (f *fakeJobService) GetJob(_ context.Context, ownerID, jobID string) (*ent.WorkerJob, error) {
	j, ok := f.jobs[jobID]
	if !ok || j.OwnerID != ownerID {
		return nil, services.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobService) ListForRun(_ context.Context, runID string) ([]*ent.WorkerJob, error) {
	var out []*ent.WorkerJob
	for _, j := range f.jobs {
		if j.SupervisorRunID == runID {
			out = append(out, j)
		}
	}
	return out, nil
}

type fakeEngine struct {
	started []string
	err     error
}

func (f *fakeEngine) StartRun(_ context.Context, r *ent.Run) error {
	if f.err != nil {
		return f.err
	}
	f.started = append(f.started, r.ID)
	return nil
}

type fakeStreamer struct {
	events []events.Event
	err    error
	opts   stream.Options
}

func (f *fakeStreamer) Stream(_ context.Context, _ string, opts stream.Options, emit func(events.Event) error) error {
	f.opts = opts
	for _, evt := range f.events {
		if err := emit(evt); err != nil {
			return err
		}
	}
	return f.err
}

type fakeTokenService struct {
	tokens  map[string]*ent.DeviceToken // plaintext → record
	revoked []string
}

func (f *fakeTokenService) Create(_ context.Context, ownerID, deviceID string) (*ent.DeviceToken, string, error) {
	return &ent.DeviceToken{ID: "tok-1", OwnerID: ownerID, DeviceID: deviceID, CreatedAt: time.Now()}, "sdt_plain", nil
}

func (f *fakeTokenService) List(_ context.Context, ownerID string) ([]*ent.DeviceToken, error) {
	var out []*ent.DeviceToken
	for _, t := range f.tokens {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTokenService) Revoke(_ context.Context, ownerID, tokenID string) error {
	for _, t := range f.tokens {
		if t.ID == tokenID && t.OwnerID == ownerID {
			f.revoked = append(f.revoked, tokenID)
			return nil
		}
	}
	return services.ErrNotFound
}

func (f *fakeTokenService) Validate(_ context.Context, plaintext string) (*ent.DeviceToken, error) {
	t, ok := f.tokens[plaintext]
	if !ok {
		return nil, services.ErrInvalidCredentials
	}
	return t, nil
}

type fakeRunnerService struct {
	runners map[string]*ent.Runner
	revoked []string
}

func (f *fakeRunnerService) CreateEnrollToken(string) (string, time.Time) {
	return "ser_enroll", time.Now().Add(10 * time.Minute)
}

func (f *fakeRunnerService) Register(_ context.Context, enrollToken, name string, capabilities []string) (*ent.Runner, string, error) {
	if enrollToken != "ser_enroll" {
		return nil, "", services.ErrEnrollTokenInvalid
	}
	if capabilities == nil {
		capabilities = []string{}
	}
	return &ent.Runner{
		ID:           "runner-new",
		OwnerID:      testOwner,
		Name:         name,
		Capabilities: capabilities,
		CreatedAt:    time.Now(),
	}, "srs_secret", nil
}

func (f *fakeRunnerService) GetRunner(_ context.Context, ownerID, runnerID string) (*ent.Runner, error) {
	r, ok := f.runners[runnerID]
	if !ok || r.OwnerID != ownerID {
		return nil, services.ErrNotFound
	}
	return r, nil
}

func (f *fakeRunnerService) ListRunners(_ context.Context, ownerID string) ([]*ent.Runner, error) {
	var out []*ent.Runner
	for _, r := range f.runners {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRunnerService) UpdateCapabilities(ctx context.Context, ownerID, runnerID string, capabilities []string) (*ent.Runner, error) {
	r, err := f.GetRunner(ctx, ownerID, runnerID)
	if err != nil {
		return nil, err
	}
	r.Capabilities = capabilities
	return r, nil
}

func (f *fakeRunnerService) Revoke(ctx context.Context, ownerID, runnerID string) error {
	if _, err := f.GetRunner(ctx, ownerID, runnerID); err != nil {
		return err
	}
	f.revoked = append(f.revoked, runnerID)
	return nil
}

type testServer struct {
	*Server
	runs    *fakeRunService
	jobs    *fakeJobService
	engine  *fakeEngine
	streams *fakeStreamer
	tokens  *fakeTokenService
	runners *fakeRunnerService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:      "127.0.0.1",
			Port:      8080,
			APITokens: map[string]string{testToken: testOwner},
		},
		Stream: config.StreamConfig{HeartbeatInterval: time.Minute},
	}
	ts := &testServer{
		runs:    &fakeRunService{runs: map[string]*ent.Run{}},
		jobs:    &fakeJobService{jobs: map[string]*ent.WorkerJob{}},
		engine:  &fakeEngine{},
		streams: &fakeStreamer{},
		tokens:  &fakeTokenService{tokens: map[string]*ent.DeviceToken{}},
		runners: &fakeRunnerService{runners: map[string]*ent.Runner{}},
	}
	ts.Server = NewServer(cfg, Deps{
		Runs:    ts.runs,
		Jobs:    ts.jobs,
		Runners: ts.runners,
		Tokens:  ts.tokens,
		Engine:  ts.engine,
		Streams: ts.streams,
	})
	return ts
}

func (ts *testServer) seedRun(id, owner string, status run.Status) *ent.Run {
	r := &ent.Run{
		ID:        id,
		OwnerID:   owner,
		ThreadID:  "thread-" + id,
		Task:      "inspect the cluster",
		Status:    status,
		CreatedAt: time.Now(),
	}
	ts.runs.runs[id] = r
	return r
}

func (ts *testServer) seedJob(id, runID, owner string) *ent.WorkerJob {
	j := &ent.WorkerJob{
		ID:              id,
		OwnerID:         owner,
		SupervisorRunID: runID,
		ToolCallID:      "call-1",
		Task:            "list pods",
		Command:         "kubectl get pods",
		Status:          workerjob.StatusSuccess,
		TimeoutSecs:     120,
		CreatedAt:       time.Now(),
	}
	ts.jobs.jobs[id] = j
	return j
}

// doJSON performs an authenticated request and decodes the envelope body.
func (ts *testServer) doJSON(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestRouteAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/runs"},
		{http.MethodGet, "/api/runs"},
		{http.MethodGet, "/api/runs/run-1"},
		{http.MethodGet, "/api/runs/run-1/events"},
		{http.MethodGet, "/api/devices/tokens"},
		{http.MethodGet, "/api/runners"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		rec := httptest.NewRecorder()
		ts.Handler().ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestHealthNoAuth(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "healthy", resp.Status)
}
