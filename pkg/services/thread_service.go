package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/thread"
	"github.com/swarmlet/swarmlet/ent/threadmessage"
)

// ThreadService manages conversation threads and their message history.
// The thread is the supervisor's durable loop state: suspending at a
// spawned worker persists nothing beyond the messages already here.
type ThreadService struct {
	client *ent.Client
}

// NewThreadService creates a new ThreadService.
func NewThreadService(client *ent.Client) *ThreadService {
	return &ThreadService{client: client}
}

// GetThread fetches an owner's thread. Someone else's is ErrNotFound.
func (s *ThreadService) GetThread(ctx context.Context, ownerID, threadID string) (*ent.Thread, error) {
	t, err := s.client.Thread.Query().
		Where(thread.IDEQ(threadID), thread.OwnerIDEQ(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query thread: %w", err)
	}
	return t, nil
}

// AppendMessage adds one message to a thread.
func (s *ThreadService) AppendMessage(ctx context.Context, threadID, role, content string) (*ent.ThreadMessage, error) {
	msg, err := s.client.ThreadMessage.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetRole(role).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return msg, nil
}

// AppendAssistantMessage adds an assistant message carrying tool calls.
func (s *ThreadService) AppendAssistantMessage(ctx context.Context, threadID, content string, toolCalls []map[string]interface{}) (*ent.ThreadMessage, error) {
	builder := s.client.ThreadMessage.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetRole("assistant").
		SetContent(content)
	if len(toolCalls) > 0 {
		builder.SetToolCalls(toolCalls)
	}
	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append assistant message: %w", err)
	}
	return msg, nil
}

// AppendToolResult adds a tool-result message linked to the originating
// tool call.
func (s *ThreadService) AppendToolResult(ctx context.Context, threadID, toolCallID, toolName, content string) (*ent.ThreadMessage, error) {
	msg, err := s.client.ThreadMessage.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetRole("tool").
		SetToolCallID(toolCallID).
		SetToolName(toolName).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append tool result: %w", err)
	}
	return msg, nil
}

// GetMessages returns a thread's messages in creation order. The id
// tiebreaker keeps the order stable when two appends land on the same
// timestamp tick.
func (s *ThreadService) GetMessages(ctx context.Context, threadID string) ([]*ent.ThreadMessage, error) {
	msgs, err := s.client.ThreadMessage.Query().
		Where(threadmessage.ThreadIDEQ(threadID)).
		Order(ent.Asc(threadmessage.FieldCreatedAt), ent.Asc(threadmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query thread messages: %w", err)
	}
	return msgs, nil
}

// HasToolResult reports whether the thread already has a tool-result
// message for the given tool call. Resume replays use it to stay
// idempotent.
func (s *ThreadService) HasToolResult(ctx context.Context, threadID, toolCallID string) (bool, error) {
	exists, err := s.client.ThreadMessage.Query().
		Where(
			threadmessage.ThreadIDEQ(threadID),
			threadmessage.ToolCallIDEQ(toolCallID),
			threadmessage.RoleEQ("tool"),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check tool result: %w", err)
	}
	return exists, nil
}
