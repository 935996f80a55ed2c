package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkerJob holds the schema definition for one delegated sub-task
// executed on a remote runner on behalf of a supervisor run.
type WorkerJob struct {
	ent.Schema
}

// Fields of the WorkerJob.
func (WorkerJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("supervisor_run_id").
			Immutable(),
		field.String("tool_call_id").
			Immutable().
			Comment("The LLM tool call that spawned this job"),
		field.Text("task"),
		field.Text("command").
			Comment("Validated shell command dispatched to the runner"),
		field.Enum("status").
			Values("queued", "running", "success", "failed", "timeout", "cancelled").
			Default("queued"),
		field.String("runner_id").
			Optional(),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Text("result").
			Optional(),
		field.String("summary").
			Optional(),
		field.String("error").
			Optional(),
		field.Int("exit_code").
			Optional().
			Nillable(),
		field.Int("timeout_secs").
			Default(120),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WorkerJob.
func (WorkerJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("supervisor_run_id"),
		index.Fields("owner_id", "status"),
		index.Fields("supervisor_run_id", "status"),
	}
}
