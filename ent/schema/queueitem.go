package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueItem holds the schema definition for one scheduled job execution.
// Claim, heartbeat, and sweeping run through dialect-specific SQL in
// pkg/queue; this schema exists for codegen of the read paths and to keep
// the table in the same migration set as everything else.
type QueueItem struct {
	ent.Schema
}

// Fields of the QueueItem.
func (QueueItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable().
			Comment("Config identifier of the scheduled job"),
		field.Time("scheduled_for").
			Immutable(),
		field.String("dedupe_key").
			Unique().
			Immutable().
			Comment("job_id:scheduled_for — makes concurrent backfill safe"),
		field.String("status").
			Default("queued").
			Comment("queued, claimed, running, success, failed, dead"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Time("lease_until").
			Optional().
			Nillable(),
		field.String("worker_owner").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the QueueItem.
func (QueueItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "scheduled_for"),
		index.Fields("job_id"),
	}
}
