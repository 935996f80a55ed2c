package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/runner"
	"github.com/swarmlet/swarmlet/pkg/transport"
)

// enrollTokenTTL is how long an enrollment token stays redeemable.
const enrollTokenTTL = 10 * time.Minute

// dummyHash keeps secret verification constant-time when the runner id
// itself is unknown.
const dummyHash = "0000000000000000000000000000000000000000000000000000000000000000"

type enrollToken struct {
	ownerID   string
	expiresAt time.Time
}

// RunnerService manages runner registration, credentials, and status.
// It implements transport.RunnerDirectory for the WebSocket hub.
type RunnerService struct {
	client *ent.Client

	// Enrollment tokens are short-lived and single-use; they only need
	// to survive until the runner redeems them, so they live in memory.
	enrollMu     sync.Mutex
	enrollTokens map[string]enrollToken
}

// NewRunnerService creates a new RunnerService.
func NewRunnerService(client *ent.Client) *RunnerService {
	return &RunnerService{
		client:       client,
		enrollTokens: make(map[string]enrollToken),
	}
}

// CreateEnrollToken issues a one-time registration token for the owner.
func (s *RunnerService) CreateEnrollToken(ownerID string) (string, time.Time) {
	token := randomToken("ser")
	expires := time.Now().Add(enrollTokenTTL)

	s.enrollMu.Lock()
	defer s.enrollMu.Unlock()
	// Opportunistic sweep so the map does not accumulate dead tokens.
	for t, e := range s.enrollTokens {
		if time.Now().After(e.expiresAt) {
			delete(s.enrollTokens, t)
		}
	}
	s.enrollTokens[token] = enrollToken{ownerID: ownerID, expiresAt: expires}
	return token, expires
}

// consumeEnrollToken redeems a token exactly once.
func (s *RunnerService) consumeEnrollToken(token string) (string, error) {
	s.enrollMu.Lock()
	defer s.enrollMu.Unlock()
	e, ok := s.enrollTokens[token]
	if !ok {
		return "", ErrEnrollTokenInvalid
	}
	delete(s.enrollTokens, token)
	if time.Now().After(e.expiresAt) {
		return "", ErrEnrollTokenInvalid
	}
	return e.ownerID, nil
}

// Register redeems an enrollment token and creates the runner. The
// returned secret is shown exactly once; only its SHA-256 is stored.
func (s *RunnerService) Register(ctx context.Context, enrollToken, name string, capabilities []string) (*ent.Runner, string, error) {
	if name == "" {
		return nil, "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	ownerID, err := s.consumeEnrollToken(enrollToken)
	if err != nil {
		return nil, "", err
	}

	secret := randomToken("srs")
	if capabilities == nil {
		capabilities = []string{}
	}

	r, err := s.client.Runner.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetName(name).
		SetAuthSecretHash(hashSecret(secret)).
		SetCapabilities(capabilities).
		SetStatus(runner.StatusOffline).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, "", ErrAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create runner: %w", err)
	}
	return r, secret, nil
}

// GetRunner fetches an owner's runner. Someone else's is ErrNotFound.
func (s *RunnerService) GetRunner(ctx context.Context, ownerID, runnerID string) (*ent.Runner, error) {
	r, err := s.client.Runner.Query().
		Where(runner.IDEQ(runnerID), runner.OwnerIDEQ(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query runner: %w", err)
	}
	return r, nil
}

// ListRunners returns all of an owner's runners.
func (s *RunnerService) ListRunners(ctx context.Context, ownerID string) ([]*ent.Runner, error) {
	runners, err := s.client.Runner.Query().
		Where(runner.OwnerIDEQ(ownerID)).
		Order(ent.Asc(runner.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runners: %w", err)
	}
	return runners, nil
}

// UpdateCapabilities replaces an owner's runner capability set.
func (s *RunnerService) UpdateCapabilities(ctx context.Context, ownerID, runnerID string, capabilities []string) (*ent.Runner, error) {
	r, err := s.GetRunner(ctx, ownerID, runnerID)
	if err != nil {
		return nil, err
	}
	if capabilities == nil {
		capabilities = []string{}
	}
	r, err = r.Update().SetCapabilities(capabilities).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update runner capabilities: %w", err)
	}
	return r, nil
}

// Revoke permanently disables a runner. Revoked runners reject all
// future connects; revocation of a revoked runner is ErrAlreadyRevoked.
func (s *RunnerService) Revoke(ctx context.Context, ownerID, runnerID string) error {
	r, err := s.GetRunner(ctx, ownerID, runnerID)
	if err != nil {
		return err
	}
	if r.Status == runner.StatusRevoked {
		return ErrAlreadyRevoked
	}
	err = r.Update().
		SetStatus(runner.StatusRevoked).
		SetRevokedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke runner: %w", err)
	}
	return nil
}

// VerifySecret authenticates a hello frame: SHA-256 of the presented
// secret compared in constant time against the stored hash, with a dummy
// comparison when the runner is unknown so timing does not leak
// existence. Revoked runners always fail.
func (s *RunnerService) VerifySecret(ctx context.Context, runnerID, secret string) (transport.RunnerInfo, error) {
	presented := hashSecret(secret)

	r, err := s.client.Runner.Query().Where(runner.IDEQ(runnerID)).Only(ctx)
	if err != nil {
		subtle.ConstantTimeCompare([]byte(presented), []byte(dummyHash))
		if ent.IsNotFound(err) {
			return transport.RunnerInfo{}, ErrInvalidCredentials
		}
		return transport.RunnerInfo{}, fmt.Errorf("failed to query runner: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(presented), []byte(r.AuthSecretHash)) != 1 {
		return transport.RunnerInfo{}, ErrInvalidCredentials
	}
	if r.Status == runner.StatusRevoked {
		return transport.RunnerInfo{}, ErrInvalidCredentials
	}

	return transport.RunnerInfo{
		RunnerID:     r.ID,
		OwnerID:      r.OwnerID,
		Capabilities: r.Capabilities,
	}, nil
}

// MarkOnline flags the runner online, stamps last_seen_at, and merges
// hello metadata.
func (s *RunnerService) MarkOnline(ctx context.Context, runnerID string, metadata map[string]any) error {
	upd := s.client.Runner.Update().
		Where(runner.IDEQ(runnerID)).
		SetStatus(runner.StatusOnline).
		SetLastSeenAt(time.Now())
	if len(metadata) > 0 {
		upd.SetMetadata(metadata)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark runner online: %w", err)
	}
	return nil
}

// MarkOffline flags the runner offline. Revoked stays revoked.
func (s *RunnerService) MarkOffline(ctx context.Context, runnerID string) error {
	err := s.client.Runner.Update().
		Where(runner.IDEQ(runnerID), runner.StatusEQ(runner.StatusOnline)).
		SetStatus(runner.StatusOffline).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark runner offline: %w", err)
	}
	return nil
}

// TouchHeartbeat refreshes last_seen_at.
func (s *RunnerService) TouchHeartbeat(ctx context.Context, runnerID string) error {
	err := s.client.Runner.Update().
		Where(runner.IDEQ(runnerID)).
		SetLastSeenAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update runner heartbeat: %w", err)
	}
	return nil
}

// MarkAllOffline flips every online runner offline. Run at startup:
// no connection can have survived a restart.
func (s *RunnerService) MarkAllOffline(ctx context.Context) (int, error) {
	n, err := s.client.Runner.Update().
		Where(runner.StatusEQ(runner.StatusOnline)).
		SetStatus(runner.StatusOffline).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark runners offline: %w", err)
	}
	return n, nil
}

// hashSecret is the storage form of runner secrets and device tokens:
// hex-encoded SHA-256.
func hashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// randomToken builds "{prefix}_{32 random url-safe bytes}".
func randomToken(prefix string) string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return prefix + "_" + base64.RawURLEncoding.EncodeToString(buf)
}
