package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for one supervisor execution.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable().
			Comment("Owning user; every query filters on this"),
		field.String("thread_id").
			Comment("Conversation the run belongs to"),
		field.String("trace_id").
			Optional(),
		field.Enum("status").
			Values("pending", "running", "waiting", "success", "failed", "cancelled").
			Default("pending"),
		field.Text("task").
			Comment("Natural-language task submitted by the user"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
		field.Int("total_tokens").
			Default(0),
		field.Float("total_cost").
			Default(0),
		field.Int("steps").
			Default(0).
			Comment("Supervisor loop iterations consumed so far"),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("thread_id"),
		index.Fields("status"),
		index.Fields("owner_id", "created_at"),
	}
}
