package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/pkg/events"
	"github.com/swarmlet/swarmlet/pkg/stream"
)

func TestRunCompletesWithDirectAnswer(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.ScriptAnswer("All clear: nothing to do.")

	r := app.SubmitRun("is everything fine?")
	app.WaitStatus(r.ID, run.StatusSuccess, 10*time.Second)

	got, err := app.Runs.GetRun(context.Background(), testOwner, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.TotalTokens)
	assert.Equal(t, 1, got.Steps)
	assert.NotNil(t, got.FinishedAt)

	evts := app.CollectEvents(r.ID, true)
	assert.Equal(t, []string{
		events.EventTypeSupervisorStarted,
		events.EventTypeSupervisorToken,
		events.EventTypeSupervisorComplete,
		events.EventTypeStreamControl,
	}, eventTypes(evts))

	last := evts[len(evts)-1]
	assert.Equal(t, events.StreamActionClose, last.Payload["action"])

	// Token events are filtered out unless asked for.
	filtered := app.CollectEvents(r.ID, false)
	for _, evt := range filtered {
		assert.NotEqual(t, events.EventTypeSupervisorToken, evt.Type)
	}
}

func TestRunFailsOnLLMError(t *testing.T) {
	app := NewTestApp(t)
	// No script: the first Generate yields an error chunk.

	r := app.SubmitRun("doomed task")
	app.WaitStatus(r.ID, run.StatusFailed, 10*time.Second)

	got, err := app.Runs.GetRun(context.Background(), testOwner, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Error)
	assert.Contains(t, *got.Error, "script exhausted")

	evts := app.CollectEvents(r.ID, false)
	types := eventTypes(evts)
	assert.Contains(t, types, events.EventTypeSupervisorFailed)
	assert.Equal(t, events.EventTypeStreamControl, types[len(types)-1])
}

func TestStreamResumesAfterLastEventID(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.ScriptAnswer("done")

	r := app.SubmitRun("short task")
	app.WaitStatus(r.ID, run.StatusSuccess, 10*time.Second)

	full := app.CollectEvents(r.ID, false)
	require.True(t, len(full) >= 2)

	// Reconnect after the first event: only the tail is replayed.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var tail []events.Event
	err := app.Assembler.Stream(ctx, r.ID, stream.Options{LastEventID: full[0].ID}, func(evt events.Event) error {
		tail = append(tail, evt)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, len(full)-1, len(tail))
	assert.Equal(t, full[1].ID, tail[0].ID)
}
