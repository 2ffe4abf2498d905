package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Project is one committed curriculum: a resolved topic plus the research
// artifacts (report file, footnotes, raw graph payload) it produced.
// Immutable after creation; only node mastery changes afterwards.
type Project struct {
	ent.Schema
}

func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("topic").
			NotEmpty().
			Comment("Resolved topic the research ran against"),
		field.String("report_path").
			Default("").
			Comment("Filesystem path of the generated markdown report"),
		field.String("graph_json").
			Default("").
			Comment("Raw graph payload as returned by research, for display/export"),
		field.String("footnotes_json").
			Default("").
			Comment("Serialized citation records, in report order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
