package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent"
)

func TestCreateDeviceToken(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.doJSON(t, http.MethodPost, "/api/devices/tokens", `{"device_id":"laptop"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "sdt_plain", data["plaintext"])
	token := data["token"].(map[string]any)
	assert.Equal(t, "laptop", token["device_id"])
}

func TestCreateDeviceTokenValidation(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.doJSON(t, http.MethodPost, "/api/devices/tokens", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", body["error_type"])
}

func TestListDeviceTokens(t *testing.T) {
	ts := newTestServer(t)
	ts.tokens.tokens["sdt_mine"] = &ent.DeviceToken{
		ID: "tok-1", OwnerID: testOwner, DeviceID: "laptop", CreatedAt: time.Now(),
	}
	ts.tokens.tokens["sdt_theirs"] = &ent.DeviceToken{
		ID: "tok-2", OwnerID: "someone-else", DeviceID: "phone", CreatedAt: time.Now(),
	}

	rec, body := ts.doJSON(t, http.MethodGet, "/api/devices/tokens", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	// Hashes and plaintext never appear in list responses.
	assert.NotContains(t, rec.Body.String(), "sdt_mine")
	assert.NotContains(t, rec.Body.String(), "token_hash")
}

func TestRevokeDeviceToken(t *testing.T) {
	ts := newTestServer(t)
	ts.tokens.tokens["sdt_mine"] = &ent.DeviceToken{
		ID: "tok-1", OwnerID: testOwner, DeviceID: "laptop", CreatedAt: time.Now(),
	}

	rec, _ := ts.doJSON(t, http.MethodDelete, "/api/devices/tokens/tok-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"tok-1"}, ts.tokens.revoked)

	rec, body := ts.doJSON(t, http.MethodDelete, "/api/devices/tokens/unknown", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", body["error_type"])
}

func TestDeviceTokenAuth(t *testing.T) {
	ts := newTestServer(t)
	ts.tokens.tokens["sdt_valid"] = &ent.DeviceToken{
		ID: "tok-1", OwnerID: testOwner, DeviceID: "laptop", CreatedAt: time.Now(),
	}
	ts.seedRun("run-1", testOwner, "running")

	req, rec := authlessRequest(http.MethodGet, "/api/runs/run-1")
	req.Header.Set("X-Device-Token", "sdt_valid")
	ts.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, rec = authlessRequest(http.MethodGet, "/api/runs/run-1")
	req.Header.Set("X-Device-Token", "sdt_bogus")
	ts.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
