package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThreadMessage holds the schema definition for one message in a Thread.
// Tool-result messages reference the spawning LLM tool call by tool_call_id
// (a string, never a pointer) so the history survives restarts intact.
type ThreadMessage struct {
	ent.Schema
}

// Fields of the ThreadMessage.
func (ThreadMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("role").
			Comment("system, user, assistant, or tool"),
		field.Text("content"),
		field.String("tool_call_id").
			Optional().
			Comment("Set on tool-result messages"),
		field.String("tool_name").
			Optional(),
		field.JSON("tool_calls", []map[string]interface{}{}).
			Optional().
			Comment("Set on assistant messages that requested tool calls"),
		field.Bool("processed").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ThreadMessage.
func (ThreadMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "created_at"),
		index.Fields("tool_call_id"),
	}
}
