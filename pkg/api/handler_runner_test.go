package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/runner"
)

func (ts *testServer) seedRunner(id, owner string) *ent.Runner {
	r := &ent.Runner{
		ID:           id,
		OwnerID:      owner,
		Name:         "build-box",
		Capabilities: []string{"exec.readonly"},
		Status:       runner.StatusOffline,
		CreatedAt:    time.Now(),
	}
	ts.runners.runners[id] = r
	return r
}

func TestCreateEnrollToken(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.doJSON(t, http.MethodPost, "/api/runners/enroll-token", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "ser_enroll", data["token"])
	assert.NotEmpty(t, data["expires_at"])
}

func TestRegisterRunner(t *testing.T) {
	ts := newTestServer(t)

	// Registration carries no bearer token; the enroll token is the credential.
	rec, body := ts.doJSON(t, http.MethodPost, "/api/runners/register",
		`{"enroll_token":"ser_enroll","name":"build-box","capabilities":["exec.readonly"]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "srs_secret", data["secret"])
	runnerData := data["runner"].(map[string]any)
	assert.Equal(t, "build-box", runnerData["name"])
}

func TestRegisterRunnerBadEnrollToken(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.doJSON(t, http.MethodPost, "/api/runners/register",
		`{"enroll_token":"expired","name":"build-box"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_credentials", body["error_type"])
}

func TestRegisterRunnerValidation(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.doJSON(t, http.MethodPost, "/api/runners/register", `{"name":"build-box"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = ts.doJSON(t, http.MethodPost, "/api/runners/register", `{"enroll_token":"ser_enroll"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAndGetRunners(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRunner("runner-1", testOwner)
	ts.seedRunner("runner-2", "someone-else")

	rec, body := ts.doJSON(t, http.MethodGet, "/api/runners", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, body["data"].([]any), 1)

	rec, body = ts.doJSON(t, http.MethodGet, "/api/runners/runner-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "build-box", data["name"])

	// No secret material in any runner response.
	assert.NotContains(t, rec.Body.String(), "auth_secret")

	rec, _ = ts.doJSON(t, http.MethodGet, "/api/runners/runner-2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateRunnerCapabilities(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRunner("runner-1", testOwner)

	rec, body := ts.doJSON(t, http.MethodPut, "/api/runners/runner-1/capabilities",
		`{"capabilities":["exec.full","docker"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, []any{"exec.full", "docker"}, data["capabilities"])
}

func TestRevokeRunner(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRunner("runner-1", testOwner)

	rec, _ := ts.doJSON(t, http.MethodDelete, "/api/runners/runner-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"runner-1"}, ts.runners.revoked)
}
