package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeviceToken holds the schema definition for per-device API tokens.
// Only the SHA-256 hash is stored; the plaintext is returned exactly once
// at creation time.
type DeviceToken struct {
	ent.Schema
}

// Fields of the DeviceToken.
func (DeviceToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("token_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("device_id"),
		field.String("token_hash").
			Unique().
			Sensitive(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
		field.Time("revoked_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the DeviceToken.
func (DeviceToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
