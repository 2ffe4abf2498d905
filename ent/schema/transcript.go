package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Transcript stores one conversation turn. The clarification dialogue
// writes a session per project creation.
type Transcript struct {
	ent.Schema
}

func (Transcript) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Int("turn_idx"),
		field.String("role").
			NotEmpty().
			Comment("user or assistant"),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Transcript) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "turn_idx").Unique(),
	}
}
