package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Node is a single concept in a project's prerequisite graph.
// original_id is the id assigned by the research step; it is the key the
// rest of the system (edges, eligibility, mastery updates) addresses
// nodes by.
type Node struct {
	ent.Schema
}

func (Node) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("project_id").
			NotEmpty(),
		field.String("original_id").
			NotEmpty().
			Comment("Stable id from the research graph payload"),
		field.String("label").
			NotEmpty(),
		field.String("summary").
			Default(""),
		field.Strings("objectives").
			Optional().
			Comment("Learning objectives from the research bundle, 5-7 per concept"),
		field.Int("position").
			Default(0).
			Comment("Insertion order within the payload; eligibility tie-break"),
		field.Float("mastery").
			Default(0).
			Comment("Learner mastery in [0,1]; written by mastery updates"),
	}
}

func (Node) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("project_id", "original_id").Unique(),
	}
}
