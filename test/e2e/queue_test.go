package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/pkg/queue"
	testdb "github.com/swarmlet/swarmlet/test/database"
)

// Two replicas polling the same queue: a claimed item must be invisible
// to the other replica, and dedupe must absorb a twin's enqueue.
func TestQueueClaimAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	storeA := queue.NewStore(shared.NewClient(t).DB(), true)
	storeB := queue.NewStore(shared.NewClient(t).DB(), true)
	ctx := context.Background()

	fire := time.Now().UTC().Truncate(time.Minute)
	inserted, err := storeA.Enqueue(ctx, "nightly-report", fire, 3)
	require.NoError(t, err)
	assert.True(t, inserted)

	// Replica B schedules the same fire: the dedupe key absorbs it.
	inserted, err = storeB.Enqueue(ctx, "nightly-report", fire, 3)
	require.NoError(t, err)
	assert.False(t, inserted)

	item, err := storeA.Claim(ctx, "replica-a:1", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "nightly-report", item.JobID)

	// The lease hides the item from replica B.
	stolen, err := storeB.Claim(ctx, "replica-b:1", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, stolen)

	// Only the lease owner can finish it.
	ok, err := storeB.MarkRunning(ctx, item.ID, "replica-b:1")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = storeA.MarkRunning(ctx, item.ID, "replica-a:1")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, storeA.Succeed(ctx, item.ID, "replica-a:1"))

	depth, err := storeB.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
}

// A replica dying mid-task leaves a claimed item behind; the other
// replica's startup release makes it claimable again.
func TestQueueReleaseOwnedOnRestart(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	store := queue.NewStore(shared.NewClient(t).DB(), true)
	ctx := context.Background()

	_, err := store.Enqueue(ctx, "stale-run-sweep", time.Now().UTC(), 3)
	require.NoError(t, err)

	item, err := store.Claim(ctx, "replica-a:1", time.Hour)
	require.NoError(t, err)
	require.NotNil(t, item)

	// Same owner identity restarts: its stale claims are released.
	released, err := store.ReleaseOwned(ctx, "replica-a:1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), released)

	item, err = store.Claim(ctx, "replica-a:1", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "stale-run-sweep", item.JobID)
}
