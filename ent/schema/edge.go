package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Edge is a directed prerequisite relation between two nodes of the same
// project, keyed by the nodes' original ids.
type Edge struct {
	ent.Schema
}

func (Edge) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_id").
			NotEmpty(),
		field.String("source").
			NotEmpty().
			Comment("original_id of the prerequisite node"),
		field.String("target").
			NotEmpty().
			Comment("original_id of the dependent node"),
		field.Float("confidence").
			Default(1.0),
		field.String("rationale").
			Default(""),
	}
}

func (Edge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("project_id", "source", "target").Unique(),
	}
}
