package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTokenReturnsPlaintextOnce(t *testing.T) {
	s := NewTokenService(newTestClient(t))

	tok, plaintext, err := s.Create(context.Background(), "owner-1", "laptop")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plaintext, "sdt_"))
	assert.Equal(t, "laptop", tok.DeviceID)
	assert.NotEqual(t, plaintext, tok.TokenHash)
	assert.Len(t, tok.TokenHash, 64)
}

func TestCreateTokenRequiresDeviceID(t *testing.T) {
	s := NewTokenService(newTestClient(t))

	_, _, err := s.Create(context.Background(), "owner-1", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateToken(t *testing.T) {
	s := NewTokenService(newTestClient(t))
	ctx := context.Background()

	created, plaintext, err := s.Create(ctx, "owner-1", "laptop")
	require.NoError(t, err)

	tok, err := s.Validate(ctx, plaintext)
	require.NoError(t, err)
	assert.Equal(t, created.ID, tok.ID)
	assert.Equal(t, "owner-1", tok.OwnerID)

	_, err = s.Validate(ctx, "sdt_not-a-real-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateStampsLastUsed(t *testing.T) {
	s := NewTokenService(newTestClient(t))
	ctx := context.Background()

	_, plaintext, err := s.Create(ctx, "owner-1", "laptop")
	require.NoError(t, err)

	tok, err := s.Validate(ctx, plaintext)
	require.NoError(t, err)

	list, err := s.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, tok.ID, list[0].ID)
	assert.NotNil(t, list[0].LastUsedAt)
}

func TestValidateRejectsRevoked(t *testing.T) {
	s := NewTokenService(newTestClient(t))
	ctx := context.Background()

	created, plaintext, err := s.Create(ctx, "owner-1", "laptop")
	require.NoError(t, err)
	require.NoError(t, s.Revoke(ctx, "owner-1", created.ID))

	_, err = s.Validate(ctx, plaintext)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRevokeToken(t *testing.T) {
	s := NewTokenService(newTestClient(t))
	ctx := context.Background()

	created, _, err := s.Create(ctx, "owner-1", "laptop")
	require.NoError(t, err)

	require.NoError(t, s.Revoke(ctx, "owner-1", created.ID))
	assert.ErrorIs(t, s.Revoke(ctx, "owner-1", created.ID), ErrAlreadyRevoked)

	// Someone else's token is invisible.
	assert.ErrorIs(t, s.Revoke(ctx, "owner-2", created.ID), ErrNotFound)
}
