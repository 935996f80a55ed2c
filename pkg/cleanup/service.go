// Package cleanup enforces data retention: failing runs that outlived
// their maximum lifetime and purging event logs of long-finished runs.
// Both operations are idempotent and safe to run from multiple replicas;
// they execute as scheduled queue jobs, so exactly one replica runs each
// fire.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/pkg/config"
	"github.com/swarmlet/swarmlet/pkg/events"
)

// EventLog is the slice of the event store retention needs.
type EventLog interface {
	Append(ctx context.Context, runID, ownerID, eventType string, payload map[string]any) (int64, error)
	DeleteForRun(ctx context.Context, runID string) (int64, error)
}

// Service applies the retention policies.
type Service struct {
	cfg    config.RetentionConfig
	client *ent.Client
	log    EventLog
}

// NewService creates a cleanup service.
func NewService(cfg config.RetentionConfig, client *ent.Client, log EventLog) *Service {
	return &Service{cfg: cfg, client: client, log: log}
}

// FailStaleRuns fails every run that has been non-terminal longer than
// the configured maximum lifetime. Each run gets a terminal event and a
// close barrier so any attached stream finishes instead of waiting
// forever on a run whose engine is gone.
func (s *Service) FailStaleRuns(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.RunMaxLifetime)
	stale, err := s.client.Run.Query().
		Where(
			run.StatusIn(run.StatusPending, run.StatusRunning, run.StatusWaiting),
			run.CreatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale runs: %w", err)
	}

	failed := 0
	for _, r := range stale {
		// Conditional update: a run that reached a terminal state since the
		// query is left alone.
		n, err := s.client.Run.Update().
			Where(
				run.IDEQ(r.ID),
				run.StatusIn(run.StatusPending, run.StatusRunning, run.StatusWaiting),
			).
			SetStatus(run.StatusFailed).
			SetError("run exceeded maximum lifetime").
			SetFinishedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return failed, fmt.Errorf("failed to fail stale run %s: %w", r.ID, err)
		}
		if n == 0 {
			continue
		}
		failed++

		if _, err := s.log.Append(ctx, r.ID, r.OwnerID, events.EventTypeSupervisorFailed,
			map[string]any{"error": "run exceeded maximum lifetime"}); err != nil {
			slog.Warn("Failed to append failure event for stale run", "run_id", r.ID, "error", err)
		}
		if _, err := s.log.Append(ctx, r.ID, r.OwnerID, events.EventTypeStreamControl,
			map[string]any{"action": events.StreamActionClose, "reason": "run_finished"}); err != nil {
			slog.Warn("Failed to append close barrier for stale run", "run_id", r.ID, "error", err)
		}
		slog.Info("Failed stale run", "run_id", r.ID, "created_at", r.CreatedAt)
	}
	return failed, nil
}

// PurgeOldRunEvents deletes the event logs of runs that finished before
// the event TTL. The run rows themselves stay; only their timelines go.
func (s *Service) PurgeOldRunEvents(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.cfg.EventTTL)
	old, err := s.client.Run.Query().
		Where(
			run.StatusIn(run.StatusSuccess, run.StatusFailed, run.StatusCancelled),
			run.FinishedAtNotNil(),
			run.FinishedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired runs: %w", err)
	}

	var deleted int64
	for _, r := range old {
		n, err := s.log.DeleteForRun(ctx, r.ID)
		if err != nil {
			return deleted, fmt.Errorf("failed to purge events for run %s: %w", r.ID, err)
		}
		deleted += n
	}
	if deleted > 0 {
		slog.Info("Purged expired run events", "events", deleted, "runs", len(old))
	}
	return deleted, nil
}
