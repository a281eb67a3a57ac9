package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Discussion is a thread scoped to a (skill, module) pair.
type Discussion struct {
	ent.Schema
}

func (Discussion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("skill_id").
			NotEmpty().
			Immutable(),
		field.String("module_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("user_name").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("content").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Discussion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("replies", Reply.Type),
	}
}

func (Discussion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
		index.Fields("module_id"),
	}
}
