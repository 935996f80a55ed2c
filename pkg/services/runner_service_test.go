package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/runner"
)

func registerTestRunner(t *testing.T, s *RunnerService, ownerID, name string, caps []string) (*ent.Runner, string) {
	t.Helper()
	token, _ := s.CreateEnrollToken(ownerID)
	r, secret, err := s.Register(context.Background(), token, name, caps)
	require.NoError(t, err)
	return r, secret
}

func TestRegisterRunner(t *testing.T) {
	s := NewRunnerService(newTestClient(t))

	r, secret := registerTestRunner(t, s, "owner-1", "build-host-1", []string{"exec.readonly"})

	assert.Equal(t, "owner-1", r.OwnerID)
	assert.Equal(t, runner.StatusOffline, r.Status)
	assert.Equal(t, []string{"exec.readonly"}, r.Capabilities)
	assert.True(t, len(secret) > 20)
	assert.NotContains(t, r.AuthSecretHash, secret, "plaintext secret must never be stored")
}

func TestEnrollTokenSingleUse(t *testing.T) {
	s := NewRunnerService(newTestClient(t))
	ctx := context.Background()

	token, expires := s.CreateEnrollToken("owner-1")
	assert.True(t, expires.After(time.Now()))

	_, _, err := s.Register(ctx, token, "host-a", nil)
	require.NoError(t, err)

	_, _, err = s.Register(ctx, token, "host-b", nil)
	assert.ErrorIs(t, err, ErrEnrollTokenInvalid)
}

func TestRegisterRejectsBogusToken(t *testing.T) {
	s := NewRunnerService(newTestClient(t))

	_, _, err := s.Register(context.Background(), "ser_bogus", "host", nil)
	assert.ErrorIs(t, err, ErrEnrollTokenInvalid)
}

func TestRegisterRequiresName(t *testing.T) {
	s := NewRunnerService(newTestClient(t))
	token, _ := s.CreateEnrollToken("owner-1")

	_, _, err := s.Register(context.Background(), token, "", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetRunnerIsOwnerScoped(t *testing.T) {
	s := NewRunnerService(newTestClient(t))
	ctx := context.Background()
	r, _ := registerTestRunner(t, s, "owner-1", "host", nil)

	got, err := s.GetRunner(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	_, err = s.GetRunner(ctx, "owner-2", r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifySecret(t *testing.T) {
	s := NewRunnerService(newTestClient(t))
	ctx := context.Background()
	r, secret := registerTestRunner(t, s, "owner-1", "host", []string{"exec.full"})

	info, err := s.VerifySecret(ctx, r.ID, secret)
	require.NoError(t, err)
	assert.Equal(t, r.ID, info.RunnerID)
	assert.Equal(t, "owner-1", info.OwnerID)
	assert.Equal(t, []string{"exec.full"}, info.Capabilities)

	_, err = s.VerifySecret(ctx, r.ID, "srs_wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.VerifySecret(ctx, "no-such-runner", secret)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifySecretRejectsRevoked(t *testing.T) {
	s := NewRunnerService(newTestClient(t))
	ctx := context.Background()
	r, secret := registerTestRunner(t, s, "owner-1", "host", nil)

	require.NoError(t, s.Revoke(ctx, "owner-1", r.ID))

	_, err := s.VerifySecret(ctx, r.ID, secret)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRevokeTwiceIsAlreadyRevoked(t *testing.T) {
	s := NewRunnerService(newTestClient(t))
	ctx := context.Background()
	r, _ := registerTestRunner(t, s, "owner-1", "host", nil)

	require.NoError(t, s.Revoke(ctx, "owner-1", r.ID))
	assert.ErrorIs(t, s.Revoke(ctx, "owner-1", r.ID), ErrAlreadyRevoked)
}

func TestUpdateCapabilities(t *testing.T) {
	s := NewRunnerService(newTestClient(t))
	ctx := context.Background()
	r, _ := registerTestRunner(t, s, "owner-1", "host", []string{"exec.readonly"})

	updated, err := s.UpdateCapabilities(ctx, "owner-1", r.ID, []string{"exec.readonly", "exec.full"})
	require.NoError(t, err)
	assert.Equal(t, []string{"exec.readonly", "exec.full"}, updated.Capabilities)

	updated, err = s.UpdateCapabilities(ctx, "owner-1", r.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, updated.Capabilities)
}

func TestRunnerStatusTransitions(t *testing.T) {
	s := NewRunnerService(newTestClient(t))
	ctx := context.Background()
	r, _ := registerTestRunner(t, s, "owner-1", "host", nil)

	require.NoError(t, s.MarkOnline(ctx, r.ID, map[string]any{"os": "linux"}))
	got, err := s.GetRunner(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, runner.StatusOnline, got.Status)
	assert.NotNil(t, got.LastSeenAt)
	assert.Equal(t, "linux", got.Metadata["os"])

	require.NoError(t, s.MarkOffline(ctx, r.ID))
	got, err = s.GetRunner(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, runner.StatusOffline, got.Status)
}

func TestMarkOfflinePreservesRevoked(t *testing.T) {
	s := NewRunnerService(newTestClient(t))
	ctx := context.Background()
	r, _ := registerTestRunner(t, s, "owner-1", "host", nil)

	require.NoError(t, s.Revoke(ctx, "owner-1", r.ID))
	require.NoError(t, s.MarkOffline(ctx, r.ID))

	got, err := s.GetRunner(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, runner.StatusRevoked, got.Status)
}

func TestMarkAllOffline(t *testing.T) {
	s := NewRunnerService(newTestClient(t))
	ctx := context.Background()

	a, _ := registerTestRunner(t, s, "owner-1", "host-a", nil)
	b, _ := registerTestRunner(t, s, "owner-1", "host-b", nil)
	require.NoError(t, s.MarkOnline(ctx, a.ID, nil))
	require.NoError(t, s.MarkOnline(ctx, b.ID, nil))

	n, err := s.MarkAllOffline(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{a.ID, b.ID} {
		got, err := s.GetRunner(ctx, "owner-1", id)
		require.NoError(t, err)
		assert.Equal(t, runner.StatusOffline, got.Status)
	}
}
