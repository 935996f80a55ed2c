package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/pkg/events"
	testdb "github.com/swarmlet/swarmlet/test/database"
)

// Two replicas share one schema. An event appended on replica A must
// reach a subscriber on replica B through PostgreSQL NOTIFY/LISTEN.
func TestEventFanoutAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	brokerA := events.NewBroker()
	storeA := events.NewStore(clientA.DB(), true, brokerA)

	brokerB := events.NewBroker()
	storeB := events.NewStore(clientB.DB(), true, brokerB)
	listenerB := events.NewNotifyListener(shared.ConnString(), brokerB, storeB)
	require.NoError(t, listenerB.Start(ctx))
	brokerB.SetListener(listenerB)
	t.Cleanup(func() { listenerB.Stop(context.Background()) })

	sub := brokerB.Subscribe("run-fanout", 100)
	defer sub.Close()

	// The LISTEN registration is asynchronous; give it a moment before
	// the first append.
	time.Sleep(500 * time.Millisecond)

	id, err := storeA.Append(ctx, "run-fanout", "owner-1", events.EventTypeSupervisorComplete,
		map[string]any{"result": "done"})
	require.NoError(t, err)

	recvCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	evt, err := sub.Next(recvCtx)
	require.NoError(t, err)
	assert.Equal(t, id, evt.ID)
	assert.Equal(t, events.EventTypeSupervisorComplete, evt.Type)
	assert.Equal(t, "done", evt.Payload["result"])
}

// An oversized payload does not fit in a NOTIFY frame; the listener must
// refetch it from the store so remote subscribers still get the full event.
func TestOversizedEventRefetchedOnRemoteReplica(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	storeA := events.NewStore(clientA.DB(), true, events.NewBroker())

	brokerB := events.NewBroker()
	storeB := events.NewStore(clientB.DB(), true, brokerB)
	listenerB := events.NewNotifyListener(shared.ConnString(), brokerB, storeB)
	require.NoError(t, listenerB.Start(ctx))
	brokerB.SetListener(listenerB)
	t.Cleanup(func() { listenerB.Stop(context.Background()) })

	sub := brokerB.Subscribe("run-big", 100)
	defer sub.Close()
	time.Sleep(500 * time.Millisecond)

	big := make([]byte, 16_000)
	for i := range big {
		big[i] = 'x'
	}
	id, err := storeA.Append(ctx, "run-big", "owner-1", events.EventTypeWorkerComplete,
		map[string]any{"summary": string(big)})
	require.NoError(t, err)

	recvCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	evt, err := sub.Next(recvCtx)
	require.NoError(t, err)
	assert.Equal(t, id, evt.ID)
	assert.Len(t, evt.Payload["summary"], 16_000)
}
