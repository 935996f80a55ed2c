package queue

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Store is the raw-SQL persistence for queue items. Claims and
// heartbeats are conditional updates; ent's builder cannot express the
// locked-subselect claim, so this package talks to the database
// directly, in both dialects.
type Store struct {
	db         *sql.DB
	isPostgres bool
}

// NewStore creates a queue store over the shared database handle.
func NewStore(db *sql.DB, isPostgres bool) *Store {
	return &Store{db: db, isPostgres: isPostgres}
}

// Enqueue inserts one fire of a job. The dedupe key makes this
// idempotent: a duplicate insert (another replica backfilling the same
// fire) is silently a success, reported as enqueued=false.
func (s *Store) Enqueue(ctx context.Context, jobID string, scheduledFor time.Time, maxAttempts int) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO queue_items (job_id, scheduled_for, dedupe_key, status, attempts, max_attempts, created_at)
		VALUES (?, ?, ?, ?, 0, ?, ?)
		ON CONFLICT (dedupe_key) DO NOTHING`),
		jobID, scheduledFor.UTC(), DedupeKey(jobID, scheduledFor), StatusQueued, maxAttempts, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to enqueue %s: %w", jobID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read enqueue result: %w", err)
	}
	return n > 0, nil
}

// Claim atomically takes the oldest eligible item for owner: queued
// items whose time has come, plus claimed/running items whose lease
// expired, both only while attempts remain. FIFO by (scheduled_for, id).
// On Postgres the subselect locks with SKIP LOCKED so concurrent
// replicas never fight over a row; on SQLite the single writer lock
// gives the same guarantee.
func (s *Store) Claim(ctx context.Context, owner string, lease time.Duration) (*Item, error) {
	now := time.Now().UTC()
	sub := `
		SELECT id FROM queue_items
		WHERE ((status = 'queued' AND scheduled_for <= ?)
		   OR (status IN ('claimed', 'running') AND lease_until IS NOT NULL AND lease_until <= ?))
		  AND attempts < max_attempts
		ORDER BY scheduled_for, id
		LIMIT 1`
	if s.isPostgres {
		sub += `
		FOR UPDATE SKIP LOCKED`
	}

	row := s.db.QueryRowContext(ctx, s.rebind(`
		UPDATE queue_items
		SET status = 'claimed', worker_owner = ?, lease_until = ?, heartbeat_at = ?, attempts = attempts + 1
		WHERE id = (`+sub+`)
		RETURNING id, job_id, scheduled_for, dedupe_key, status, attempts, max_attempts`),
		owner, now.Add(lease), now, now, now)

	var item Item
	err := row.Scan(&item.ID, &item.JobID, &item.ScheduledFor, &item.DedupeKey, &item.Status, &item.Attempts, &item.MaxAttempts)
	if err == sql.ErrNoRows {
		return nil, ErrNoItemsAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim queue item: %w", err)
	}
	return &item, nil
}

// MarkRunning flips a claim to running before the handler starts. False
// means the claim is gone (lease expired and reclaimed in between).
func (s *Store) MarkRunning(ctx context.Context, itemID int64, owner string) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE queue_items SET status = 'running'
		WHERE id = ? AND worker_owner = ? AND status = 'claimed'`),
		itemID, owner)
	if err != nil {
		return false, fmt.Errorf("failed to mark queue item running: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Heartbeat extends the lease. The condition is strict: the row must
// still be running and still be ours. Zero rows is ErrLeaseLost and the
// caller must abort its task; a twin may already be executing it.
func (s *Store) Heartbeat(ctx context.Context, itemID int64, owner string, lease time.Duration) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE queue_items SET heartbeat_at = ?, lease_until = ?
		WHERE id = ? AND status = 'running' AND worker_owner = ?`),
		now, now.Add(lease), itemID, owner)
	if err != nil {
		return fmt.Errorf("failed to heartbeat queue item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLeaseLost
	}
	return nil
}

// Succeed records a terminal success, still owner-conditional.
func (s *Store) Succeed(ctx context.Context, itemID int64, owner string) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE queue_items SET status = 'success', finished_at = ?
		WHERE id = ? AND worker_owner = ?`),
		time.Now().UTC(), itemID, owner)
	if err != nil {
		return fmt.Errorf("failed to finish queue item: %w", err)
	}
	return nil
}

// Fail records a failed attempt. Retryable failures go back to queued
// after the backoff delay; exhausted or permanent ones dead-letter with
// the last error preserved.
func (s *Store) Fail(ctx context.Context, item *Item, owner, lastError string, permanent bool) error {
	now := time.Now().UTC()
	switch {
	case permanent:
		_, err := s.db.ExecContext(ctx, s.rebind(`
			UPDATE queue_items SET status = 'failed', finished_at = ?, last_error = ?
			WHERE id = ? AND worker_owner = ?`),
			now, lastError, item.ID, owner)
		if err != nil {
			return fmt.Errorf("failed to dead-letter queue item: %w", err)
		}
	case item.Attempts >= item.MaxAttempts:
		_, err := s.db.ExecContext(ctx, s.rebind(`
			UPDATE queue_items SET status = 'dead', finished_at = ?, last_error = ?
			WHERE id = ? AND worker_owner = ?`),
			now, lastError, item.ID, owner)
		if err != nil {
			return fmt.Errorf("failed to dead-letter queue item: %w", err)
		}
	default:
		_, err := s.db.ExecContext(ctx, s.rebind(`
			UPDATE queue_items
			SET status = 'queued', scheduled_for = ?, last_error = ?, worker_owner = NULL, lease_until = NULL, heartbeat_at = NULL
			WHERE id = ? AND worker_owner = ?`),
			now.Add(RetryDelay(item.Attempts)), lastError, item.ID, owner)
		if err != nil {
			return fmt.Errorf("failed to requeue queue item: %w", err)
		}
	}
	return nil
}

// Sweep reclaims claimed/running items whose lease expired without a
// terminal status: the owning process died mid-task. Exhausted items
// dead-letter; the rest requeue for immediate pickup. Returns
// (requeued, deadLettered).
func (s *Store) Sweep(ctx context.Context) (int64, int64, error) {
	now := time.Now().UTC()

	deadRes, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE queue_items
		SET status = 'dead', finished_at = ?, last_error = 'lease expired'
		WHERE status IN ('claimed', 'running')
		  AND (lease_until IS NULL OR lease_until <= ?)
		  AND attempts >= max_attempts`),
		now, now)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sweep exhausted queue items: %w", err)
	}
	dead, _ := deadRes.RowsAffected()

	requeueRes, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE queue_items
		SET status = 'queued', worker_owner = NULL, lease_until = NULL, heartbeat_at = NULL
		WHERE status IN ('claimed', 'running')
		  AND (lease_until IS NULL OR lease_until <= ?)
		  AND attempts < max_attempts`),
		now)
	if err != nil {
		return 0, dead, fmt.Errorf("failed to sweep expired queue items: %w", err)
	}
	requeued, _ := requeueRes.RowsAffected()

	return requeued, dead, nil
}

// ReleaseOwned requeues everything a given owner still holds. Run at
// startup: claims from a previous incarnation of this process cannot be
// live anymore, and waiting out their leases just delays the work.
func (s *Store) ReleaseOwned(ctx context.Context, owner string) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE queue_items
		SET status = 'queued', worker_owner = NULL, lease_until = NULL, heartbeat_at = NULL
		WHERE status IN ('claimed', 'running') AND worker_owner = ?`),
		owner)
	if err != nil {
		return 0, fmt.Errorf("failed to release owned queue items: %w", err)
	}
	return res.RowsAffected()
}

// Depth counts items waiting to run. Used by health reporting.
func (s *Store) Depth(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM queue_items WHERE status = 'queued'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued items: %w", err)
	}
	return n, nil
}

// rebind converts ? placeholders to $N for Postgres.
func (s *Store) rebind(query string) string {
	if !s.isPostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
