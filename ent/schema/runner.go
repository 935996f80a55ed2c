package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Runner holds the schema definition for a user-owned execution target.
// The auth secret is never stored in plaintext; connects are validated by
// constant-time comparison against the SHA-256 hash.
type Runner struct {
	ent.Schema
}

// Fields of the Runner.
func (Runner) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("runner_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("name"),
		field.String("auth_secret_hash").
			Sensitive(),
		field.JSON("capabilities", []string{}).
			Default([]string{}).
			Comment("exec.readonly, exec.full, docker, ..."),
		field.Enum("status").
			Values("online", "offline", "revoked").
			Default("offline"),
		field.Time("last_seen_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("hostname, platform, agent version; merged on hello"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("revoked_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Runner.
func (Runner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("owner_id", "name").
			Unique(),
		index.Fields("status"),
	}
}
