package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/pkg/config"
)

func fastConfig() config.QueueConfig {
	return config.QueueConfig{
		Workers:                 1,
		PollInterval:            10 * time.Millisecond,
		PollIntervalJitter:      0,
		LeaseDuration:           30 * time.Second,
		SweepInterval:           time.Hour,
		MaxAttempts:             3,
		BackfillWindow:          24 * time.Hour,
		GracefulShutdownTimeout: 5 * time.Second,
	}
}

func TestRegisterRejectsBadSpec(t *testing.T) {
	p := NewPool(newTestStore(t), fastConfig())
	assert.Error(t, p.Register("bad", "not a cron spec", func(context.Context, *Item) error { return nil }))
	assert.NoError(t, p.Register("ok", "0 6 * * *", func(context.Context, *Item) error { return nil }))
	assert.Error(t, p.Register("ok", "0 6 * * *", func(context.Context, *Item) error { return nil }),
		"duplicate registration must be rejected")
}

func TestOwnerIdentity(t *testing.T) {
	p := NewPool(newTestStore(t), fastConfig())
	assert.Regexp(t, `^.+:\d+$`, p.Owner())
}

func TestLastFireBefore(t *testing.T) {
	hourly, err := cron.ParseStandard("0 * * * *")
	require.NoError(t, err)

	until := time.Date(2026, 8, 24, 6, 30, 0, 0, time.UTC)

	// Window covers several fires: only the most recent one counts.
	got := lastFireBefore(hourly, until.Add(-5*time.Hour), until)
	assert.Equal(t, time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC), got)

	// Window with no fire in it.
	got = lastFireBefore(hourly, until.Add(-time.Minute), until)
	assert.True(t, got.IsZero())
}

func TestPoolExecutesQueuedItem(t *testing.T) {
	store := newTestStore(t)
	p := NewPool(store, fastConfig())

	var runs atomic.Int32
	require.NoError(t, p.Register("digest", "0 6 * * *", func(_ context.Context, item *Item) error {
		runs.Add(1)
		assert.Equal(t, "digest", item.JobID)
		return nil
	}))

	fire := time.Now().Add(-time.Minute)
	_, err := store.Enqueue(context.Background(), "digest", fire, 3)
	require.NoError(t, err)

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 3*time.Second, 10*time.Millisecond)

	var status string
	require.Eventually(t, func() bool {
		require.NoError(t, store.db.QueryRow(
			`SELECT status FROM queue_items WHERE dedupe_key = ?`, DedupeKey("digest", fire)).Scan(&status))
		return status == StatusSuccess
	}, 3*time.Second, 10*time.Millisecond)
}

func TestPoolRequeuesFailedItem(t *testing.T) {
	store := newTestStore(t)
	p := NewPool(store, fastConfig())

	var runs atomic.Int32
	require.NoError(t, p.Register("flaky", "0 6 * * *", func(context.Context, *Item) error {
		runs.Add(1)
		return errors.New("transient failure")
	}))

	fire := time.Now().Add(-time.Minute)
	_, err := store.Enqueue(context.Background(), "flaky", fire, 3)
	require.NoError(t, err)

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 3*time.Second, 10*time.Millisecond)

	// Requeued with backoff: still queued, one attempt consumed, not
	// immediately reclaimed.
	require.Eventually(t, func() bool {
		var status string
		var attempts int
		require.NoError(t, store.db.QueryRow(
			`SELECT status, attempts FROM queue_items WHERE dedupe_key = ?`,
			DedupeKey("flaky", fire)).Scan(&status, &attempts))
		return status == StatusQueued && attempts == 1
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestPoolDeadLettersUnregisteredJob(t *testing.T) {
	store := newTestStore(t)
	p := NewPool(store, fastConfig())
	require.NoError(t, p.Register("known", "0 6 * * *", func(context.Context, *Item) error { return nil }))

	fire := time.Now().Add(-time.Minute)
	_, err := store.Enqueue(context.Background(), "removed-job", fire, 3)
	require.NoError(t, err)

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	require.Eventually(t, func() bool {
		var status string
		require.NoError(t, store.db.QueryRow(
			`SELECT status FROM queue_items WHERE dedupe_key = ?`,
			DedupeKey("removed-job", fire)).Scan(&status))
		return status == StatusFailed
	}, 3*time.Second, 10*time.Millisecond)
}

func TestPoolBackfillsMissedFire(t *testing.T) {
	store := newTestStore(t)
	cfg := fastConfig()
	p := NewPool(store, cfg)

	var gotScheduled atomic.Value
	require.NoError(t, p.Register("hourly", "0 * * * *", func(_ context.Context, item *Item) error {
		gotScheduled.Store(item.ScheduledFor.UTC())
		return nil
	}))

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	require.Eventually(t, func() bool { return gotScheduled.Load() != nil }, 3*time.Second, 10*time.Millisecond)

	// The backfilled fire is the schedule's most recent miss, not an
	// older one from deeper in the window.
	hourly, err := cron.ParseStandard("0 * * * *")
	require.NoError(t, err)
	now := time.Now()
	fired := gotScheduled.Load().(time.Time)
	expected := lastFireBefore(hourly, now.Add(-cfg.BackfillWindow), now).UTC()
	assert.WithinDuration(t, expected, fired, time.Second)

	// Exactly one backfill: the rest of the window's misses are skipped.
	var count int
	require.NoError(t, store.db.QueryRow(`SELECT COUNT(*) FROM queue_items WHERE job_id = 'hourly'`).Scan(&count))
	assert.Equal(t, 1, count)
}
