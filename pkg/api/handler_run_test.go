package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent/run"
)

func TestCreateRun(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.doJSON(t, http.MethodPost, "/api/runs", `{"task":"check disk usage on prod"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["ok"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "run-created", data["id"])
	assert.Equal(t, "pending", data["status"])

	// The engine was handed the run before the response was written.
	require.Len(t, ts.engine.started, 1)
	assert.Equal(t, "run-created", ts.engine.started[0])

	// The owner comes from the bearer token, not the body.
	require.Len(t, ts.runs.created, 1)
	assert.Equal(t, testOwner, ts.runs.created[0].OwnerID)
}

func TestCreateRunValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty task", body: `{"task":""}`},
		{name: "missing task", body: `{}`},
		{name: "malformed json", body: `{"task":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := ts.doJSON(t, http.MethodPost, "/api/runs", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, false, body["ok"])
			assert.Equal(t, "validation_error", body["error_type"])
		})
	}
	assert.Empty(t, ts.engine.started, "no run should start on validation failure")
}

func TestGetRun(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", testOwner, run.StatusRunning)

	rec, body := ts.doJSON(t, http.MethodGet, "/api/runs/run-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "run-1", data["id"])
	assert.Equal(t, "running", data["status"])
}

func TestGetRunCrossOwnerIsNotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", "someone-else", run.StatusRunning)

	rec, body := ts.doJSON(t, http.MethodGet, "/api/runs/run-1", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", body["error_type"])
}

func TestListRuns(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", testOwner, run.StatusSuccess)
	ts.seedRun("run-2", "someone-else", run.StatusSuccess)

	rec, body := ts.doJSON(t, http.MethodGet, "/api/runs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].([]any)
	require.Len(t, data, 1, "only the caller's runs are listed")
}

func TestListRunsLimitValidation(t *testing.T) {
	ts := newTestServer(t)

	for _, limit := range []string{"0", "-1", "201", "abc"} {
		rec, _ := ts.doJSON(t, http.MethodGet, "/api/runs?limit="+limit, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func TestCancelRun(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", testOwner, run.StatusRunning)

	rec, body := ts.doJSON(t, http.MethodPost, "/api/runs/run-1/cancel", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, []string{"run-1"}, ts.runs.cancelled)
}

func TestListRunJobs(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", testOwner, run.StatusWaiting)
	ts.seedJob("job-1", "run-1", testOwner)
	ts.seedJob("job-2", "other-run", testOwner)

	rec, body := ts.doJSON(t, http.MethodGet, "/api/runs/run-1/jobs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	job := data[0].(map[string]any)
	assert.Equal(t, "job-1", job["id"])
	assert.Equal(t, "kubectl get pods", job["command"])
}

func TestListRunJobsRequiresRunOwnership(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRun("run-1", "someone-else", run.StatusWaiting)
	ts.seedJob("job-1", "run-1", "someone-else")

	rec, _ := ts.doJSON(t, http.MethodGet, "/api/runs/run-1/jobs", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetJob(t *testing.T) {
	ts := newTestServer(t)
	ts.seedJob("job-1", "run-1", testOwner)

	rec, body := ts.doJSON(t, http.MethodGet, "/api/jobs/job-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "job-1", data["id"])
	assert.Equal(t, "run-1", data["run_id"])
}
