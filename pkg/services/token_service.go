package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/devicetoken"
)

// deviceTokenPrefix identifies swarmlet device tokens at a glance
// (and in secret scanners).
const deviceTokenPrefix = "sdt"

// TokenService manages device tokens: long-lived credentials a device
// (CLI, runner host tooling) presents on REST calls. The plaintext is
// returned exactly once at creation; only the SHA-256 is stored.
type TokenService struct {
	client *ent.Client
}

// NewTokenService creates a new TokenService.
func NewTokenService(client *ent.Client) *TokenService {
	return &TokenService{client: client}
}

// Create issues a token for the owner's device and returns the record
// plus the plaintext.
func (s *TokenService) Create(ctx context.Context, ownerID, deviceID string) (*ent.DeviceToken, string, error) {
	if deviceID == "" {
		return nil, "", fmt.Errorf("%w: device_id is required", ErrInvalidInput)
	}

	plaintext := randomToken(deviceTokenPrefix)
	tok, err := s.client.DeviceToken.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetDeviceID(deviceID).
		SetTokenHash(hashSecret(plaintext)).
		Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create device token: %w", err)
	}
	return tok, plaintext, nil
}

// Validate authenticates a presented token. The lookup is by hash; the
// comparison is constant-time, with a dummy comparison on miss so timing
// does not leak token existence. A valid use stamps last_used_at.
func (s *TokenService) Validate(ctx context.Context, plaintext string) (*ent.DeviceToken, error) {
	presented := hashSecret(plaintext)

	tok, err := s.client.DeviceToken.Query().
		Where(devicetoken.TokenHashEQ(presented)).
		Only(ctx)
	if err != nil {
		subtle.ConstantTimeCompare([]byte(presented), []byte(dummyHash))
		if ent.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to query device token: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(presented), []byte(tok.TokenHash)) != 1 {
		return nil, ErrInvalidCredentials
	}
	if tok.RevokedAt != nil {
		return nil, ErrInvalidCredentials
	}

	// Best-effort usage stamp; auth does not fail on it.
	if err := tok.Update().SetLastUsedAt(time.Now()).Exec(ctx); err != nil {
		slog.Warn("Failed to stamp device token usage", "token_id", tok.ID, "error", err)
	}
	return tok, nil
}

// List returns an owner's tokens, newest first.
func (s *TokenService) List(ctx context.Context, ownerID string) ([]*ent.DeviceToken, error) {
	tokens, err := s.client.DeviceToken.Query().
		Where(devicetoken.OwnerIDEQ(ownerID)).
		Order(ent.Desc(devicetoken.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	return tokens, nil
}

// Revoke disables a token. Revoking twice is ErrAlreadyRevoked.
func (s *TokenService) Revoke(ctx context.Context, ownerID, tokenID string) error {
	tok, err := s.client.DeviceToken.Query().
		Where(devicetoken.IDEQ(tokenID), devicetoken.OwnerIDEQ(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to query device token: %w", err)
	}
	if tok.RevokedAt != nil {
		return ErrAlreadyRevoked
	}
	if err := tok.Update().SetRevokedAt(time.Now()).Exec(ctx); err != nil {
		return fmt.Errorf("failed to revoke device token: %w", err)
	}
	return nil
}
