package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessagesStableOrderWithinTick(t *testing.T) {
	client := newTestClient(t)
	threads := NewThreadService(client)
	ctx := context.Background()

	// Two appends landing on the same timestamp tick; inserted out of
	// id order so insertion artifacts cannot mask an unstable sort.
	tick := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"msg-b", "msg-a"} {
		_, err := client.ThreadMessage.Create().
			SetID(id).
			SetThreadID("thread-1").
			SetRole("user").
			SetContent(id).
			SetCreatedAt(tick).
			Save(ctx)
		require.NoError(t, err)
	}

	for i := 0; i < 3; i++ {
		msgs, err := threads.GetMessages(ctx, "thread-1")
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "msg-a", msgs[0].ID)
		assert.Equal(t, "msg-b", msgs[1].ID)
	}
}

func TestHasToolResultMatchesOnlyToolRole(t *testing.T) {
	client := newTestClient(t)
	threads := NewThreadService(client)
	ctx := context.Background()

	_, err := threads.AppendAssistantMessage(ctx, "thread-1", "checking",
		[]map[string]interface{}{{"id": "call-1", "name": "spawn_worker", "arguments": "{}"}})
	require.NoError(t, err)

	has, err := threads.HasToolResult(ctx, "thread-1", "call-1")
	require.NoError(t, err)
	assert.False(t, has, "the assistant's tool call is not a tool result")

	_, err = threads.AppendToolResult(ctx, "thread-1", "call-1", "spawn_worker", "done")
	require.NoError(t, err)

	has, err = threads.HasToolResult(ctx, "thread-1", "call-1")
	require.NoError(t, err)
	assert.True(t, has)
}
