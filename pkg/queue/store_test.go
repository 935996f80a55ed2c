package queue

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const queueItemsDDL = `
CREATE TABLE queue_items (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    job_id        TEXT NOT NULL,
    scheduled_for TIMESTAMP NOT NULL,
    dedupe_key    TEXT NOT NULL UNIQUE,
    status        TEXT NOT NULL DEFAULT 'queued',
    attempts      INTEGER NOT NULL DEFAULT 0,
    max_attempts  INTEGER NOT NULL DEFAULT 3,
    lease_until   TIMESTAMP,
    worker_owner  TEXT,
    heartbeat_at  TIMESTAMP,
    last_error    TEXT,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    finished_at   TIMESTAMP
);
CREATE INDEX idx_queue_items_status_sched ON queue_items (status, scheduled_for);`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(queueItemsDDL)
	require.NoError(t, err)
	return NewStore(db, false)
}

func itemStatus(t *testing.T, s *Store, id int64) string {
	t.Helper()
	var status string
	require.NoError(t, s.db.QueryRow(`SELECT status FROM queue_items WHERE id = ?`, id).Scan(&status))
	return status
}

func TestEnqueueDeduplicates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	fire := time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC)

	first, err := s.Enqueue(ctx, "digest", fire, 3)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := s.Enqueue(ctx, "digest", fire, 3)
	require.NoError(t, err)
	assert.False(t, second, "a duplicate fire must be a silent success")

	depth, err := s.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}

func TestClaimFIFO(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	_, err := s.Enqueue(ctx, "late", base.Add(10*time.Minute), 3)
	require.NoError(t, err)
	_, err = s.Enqueue(ctx, "early", base, 3)
	require.NoError(t, err)

	item, err := s.Claim(ctx, "host:1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "early", item.JobID)
	assert.Equal(t, StatusClaimed, item.Status)
	assert.Equal(t, 1, item.Attempts)

	item, err = s.Claim(ctx, "host:1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "late", item.JobID)

	_, err = s.Claim(ctx, "host:1", time.Minute)
	assert.ErrorIs(t, err, ErrNoItemsAvailable)
}

func TestClaimIgnoresFutureItems(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, "future", time.Now().Add(time.Hour), 3)
	require.NoError(t, err)

	_, err = s.Claim(ctx, "host:1", time.Minute)
	assert.ErrorIs(t, err, ErrNoItemsAvailable)
}

func TestClaimReclaimsExpiredLease(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, "job", time.Now().Add(-time.Minute), 3)
	require.NoError(t, err)

	// First owner claims with an already-expired lease.
	item, err := s.Claim(ctx, "dead-host:1", -time.Second)
	require.NoError(t, err)

	reclaimed, err := s.Claim(ctx, "live-host:2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, item.ID, reclaimed.ID)
	assert.Equal(t, 2, reclaimed.Attempts)
}

func TestClaimRespectsMaxAttempts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, "job", time.Now().Add(-time.Minute), 1)
	require.NoError(t, err)

	_, err = s.Claim(ctx, "host:1", -time.Second)
	require.NoError(t, err)

	// Attempts are exhausted; the expired lease is not reclaimable.
	_, err = s.Claim(ctx, "host:2", time.Minute)
	assert.ErrorIs(t, err, ErrNoItemsAvailable)
}

func TestMarkRunningAndHeartbeat(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, "job", time.Now().Add(-time.Minute), 3)
	require.NoError(t, err)
	item, err := s.Claim(ctx, "host:1", time.Minute)
	require.NoError(t, err)

	// Heartbeat before running: the claim is not running yet.
	assert.ErrorIs(t, s.Heartbeat(ctx, item.ID, "host:1", time.Minute), ErrLeaseLost)

	ok, err := s.MarkRunning(ctx, item.ID, "host:1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, s.Heartbeat(ctx, item.ID, "host:1", time.Minute))
	assert.ErrorIs(t, s.Heartbeat(ctx, item.ID, "other-host:9", time.Minute), ErrLeaseLost)

	// MarkRunning again is a no-op: status already left claimed.
	ok, err = s.MarkRunning(ctx, item.ID, "host:1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFailRequeuesWithBackoff(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, "job", time.Now().Add(-time.Minute), 3)
	require.NoError(t, err)
	item, err := s.Claim(ctx, "host:1", time.Minute)
	require.NoError(t, err)

	require.NoError(t, s.Fail(ctx, item, "host:1", "transient", false))
	assert.Equal(t, StatusQueued, itemStatus(t, s, item.ID))

	// The retry is in the future; it is not claimable yet.
	_, err = s.Claim(ctx, "host:1", time.Minute)
	assert.ErrorIs(t, err, ErrNoItemsAvailable)

	var scheduledFor time.Time
	require.NoError(t, s.db.QueryRow(`SELECT scheduled_for FROM queue_items WHERE id = ?`, item.ID).Scan(&scheduledFor))
	assert.Greater(t, time.Until(scheduledFor), 30*time.Second)
}

func TestFailDeadLettersOnExhaustion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, "job", time.Now().Add(-time.Minute), 1)
	require.NoError(t, err)
	item, err := s.Claim(ctx, "host:1", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, item.Attempts)

	require.NoError(t, s.Fail(ctx, item, "host:1", "still broken", false))
	assert.Equal(t, StatusDead, itemStatus(t, s, item.ID))

	var lastError string
	require.NoError(t, s.db.QueryRow(`SELECT last_error FROM queue_items WHERE id = ?`, item.ID).Scan(&lastError))
	assert.Equal(t, "still broken", lastError)
}

func TestFailPermanent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, "job", time.Now().Add(-time.Minute), 5)
	require.NoError(t, err)
	item, err := s.Claim(ctx, "host:1", time.Minute)
	require.NoError(t, err)

	require.NoError(t, s.Fail(ctx, item, "host:1", "bad config", true))
	assert.Equal(t, StatusFailed, itemStatus(t, s, item.ID))
}

func TestSweepReclaimsExpiredLeases(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, "retryable", time.Now().Add(-time.Minute), 3)
	require.NoError(t, err)
	_, err = s.Enqueue(ctx, "exhausted", time.Now().Add(-time.Minute), 1)
	require.NoError(t, err)

	a, err := s.Claim(ctx, "dead-host:1", -time.Second)
	require.NoError(t, err)
	b, err := s.Claim(ctx, "dead-host:1", -time.Second)
	require.NoError(t, err)
	_, err = s.MarkRunning(ctx, a.ID, "dead-host:1")
	require.NoError(t, err)
	_, err = s.MarkRunning(ctx, b.ID, "dead-host:1")
	require.NoError(t, err)

	requeued, dead, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), requeued)
	assert.Equal(t, int64(1), dead)

	byJob := map[string]string{}
	for _, item := range []*Item{a, b} {
		byJob[item.JobID] = itemStatus(t, s, item.ID)
	}
	assert.Equal(t, StatusQueued, byJob["retryable"])
	assert.Equal(t, StatusDead, byJob["exhausted"])
}

func TestSweepLeavesLiveLeases(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, "job", time.Now().Add(-time.Minute), 3)
	require.NoError(t, err)
	item, err := s.Claim(ctx, "host:1", time.Hour)
	require.NoError(t, err)

	requeued, dead, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, requeued)
	assert.Zero(t, dead)
	assert.Equal(t, StatusClaimed, itemStatus(t, s, item.ID))
}

func TestReleaseOwned(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, "mine", time.Now().Add(-time.Minute), 3)
	require.NoError(t, err)
	_, err = s.Enqueue(ctx, "theirs", time.Now().Add(-time.Minute), 3)
	require.NoError(t, err)

	mine, err := s.Claim(ctx, "me:1", time.Hour)
	require.NoError(t, err)
	theirs, err := s.Claim(ctx, "them:2", time.Hour)
	require.NoError(t, err)

	n, err := s.ReleaseOwned(ctx, "me:1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, StatusQueued, itemStatus(t, s, mine.ID))
	assert.Equal(t, StatusClaimed, itemStatus(t, s, theirs.ID))
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 60*time.Second, RetryDelay(1))
	assert.Equal(t, 120*time.Second, RetryDelay(2))
	assert.Equal(t, 240*time.Second, RetryDelay(3))
	assert.Equal(t, time.Hour, RetryDelay(7))
	assert.Equal(t, time.Hour, RetryDelay(50))
}

func TestDedupeKey(t *testing.T) {
	fire := time.Date(2026, 8, 24, 6, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	assert.Equal(t, "digest:20260824T043000Z", DedupeKey("digest", fire))
}
