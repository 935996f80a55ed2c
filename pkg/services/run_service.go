// Package services is the persistence layer over the ent client: runs,
// threads, worker jobs, runners, and device tokens, all owner-scoped.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/ent/thread"
)

// RunService manages run lifecycle and the status transitions the
// supervisor engine depends on.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun persists a pending run for the owner and appends the task
// to the thread as the next user message. With an empty threadID a
// fresh thread is created; a non-empty threadID must name one of the
// owner's threads or ErrNotFound is returned.
func (s *RunService) CreateRun(ctx context.Context, ownerID, threadID, task string) (*ent.Run, error) {
	if task == "" {
		return nil, fmt.Errorf("%w: task is required", ErrInvalidInput)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if threadID == "" {
		threadID = uuid.New().String()
		_, err = tx.Thread.Create().
			SetID(threadID).
			SetOwnerID(ownerID).
			SetTitle(truncateTitle(task)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create thread: %w", err)
		}
	} else {
		// A continuation must target the caller's own thread; anything
		// else is indistinguishable from a thread that does not exist.
		exists, qerr := tx.Thread.Query().
			Where(thread.IDEQ(threadID), thread.OwnerIDEQ(ownerID)).
			Exist(ctx)
		if qerr != nil {
			return nil, fmt.Errorf("failed to query thread: %w", qerr)
		}
		if !exists {
			return nil, ErrNotFound
		}
	}

	// The task is the next user turn, on fresh and continuation threads
	// alike.
	_, err = tx.ThreadMessage.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetRole("user").
		SetContent(task).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed thread message: %w", err)
	}

	r, err := tx.Run.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetThreadID(threadID).
		SetTraceID(uuid.New().String()).
		SetStatus(run.StatusPending).
		SetTask(task).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run creation: %w", err)
	}
	return r, nil
}

// GetRun fetches an owner's run. Someone else's run is ErrNotFound.
func (s *RunService) GetRun(ctx context.Context, ownerID, runID string) (*ent.Run, error) {
	r, err := s.client.Run.Query().
		Where(run.IDEQ(runID), run.OwnerIDEQ(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	return r, nil
}

// ListRuns returns an owner's runs, newest first.
func (s *RunService) ListRuns(ctx context.Context, ownerID string, limit int) ([]*ent.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	runs, err := s.client.Run.Query().
		Where(run.OwnerIDEQ(ownerID)).
		Order(ent.Desc(run.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// MarkRunning transitions PENDING→RUNNING and stamps started_at.
// Returns false when the run was not pending (already started, or
// cancelled before pickup).
func (s *RunService) MarkRunning(ctx context.Context, runID string) (bool, error) {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusPending)).
		SetStatus(run.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark run running: %w", err)
	}
	return n > 0, nil
}

// EnsureWaiting suspends the run on a spawned worker. WAITING→WAITING is
// a no-op success so a step that fans out several workers can suspend
// once per spawn; a run that left the pair (cancelled, terminal) reports
// false.
func (s *RunService) EnsureWaiting(ctx context.Context, runID string) (bool, error) {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusIn(run.StatusRunning, run.StatusWaiting)).
		SetStatus(run.StatusWaiting).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark run waiting: %w", err)
	}
	return n > 0, nil
}

// TryResume is the at-most-one-resume conditional update: WAITING→RUNNING.
// Exactly one concurrent caller sees true; everyone else (including
// crash-recovery replays) sees false and must skip.
func (s *RunService) TryResume(ctx context.Context, runID string) (bool, error) {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusWaiting)).
		SetStatus(run.StatusRunning).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to resume run: %w", err)
	}
	return n > 0, nil
}

// Complete sets a terminal status with finished_at. errMsg is stored for
// failed runs. Cancelled runs are absorbing: a completion attempt on one
// is a no-op reporting false.
func (s *RunService) Complete(ctx context.Context, runID string, status run.Status, errMsg string) (bool, error) {
	upd := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusNotIn(run.StatusCancelled, run.StatusSuccess, run.StatusFailed)).
		SetStatus(status).
		SetFinishedAt(time.Now())
	if errMsg != "" {
		upd.SetError(errMsg)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to complete run: %w", err)
	}
	return n > 0, nil
}

// Cancel marks the run CANCELLED unless it already reached a terminal
// status. Owner-scoped.
func (s *RunService) Cancel(ctx context.Context, ownerID, runID string) error {
	n, err := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.OwnerIDEQ(ownerID),
			run.StatusIn(run.StatusPending, run.StatusRunning, run.StatusWaiting),
		).
		SetStatus(run.StatusCancelled).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel run: %w", err)
	}
	if n == 0 {
		// Either it does not exist for this owner, or it is already
		// terminal. Distinguish so the API can 404 correctly.
		if _, err := s.GetRun(ctx, ownerID, runID); err != nil {
			return err
		}
		return nil // already terminal: cancel is idempotent
	}
	return nil
}

// AddUsage accumulates token/cost/step counters onto the run.
func (s *RunService) AddUsage(ctx context.Context, runID string, tokens int, cost float64, steps int) error {
	err := s.client.Run.Update().
		Where(run.IDEQ(runID)).
		AddTotalTokens(tokens).
		AddTotalCost(cost).
		AddSteps(steps).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record run usage: %w", err)
	}
	return nil
}

// Status returns just the run's current status, unscoped. Internal
// callers (dispatcher, engine) use it after they already own the run.
func (s *RunService) Status(ctx context.Context, runID string) (run.Status, error) {
	r, err := s.client.Run.Query().Where(run.IDEQ(runID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to query run status: %w", err)
	}
	return r.Status, nil
}

func truncateTitle(task string) string {
	const max = 80
	if len(task) <= max {
		return task
	}
	return task[:max]
}
