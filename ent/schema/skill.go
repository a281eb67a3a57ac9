package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Skill is one learning track from the catalog. Content fields are written
// once at seed time; only the modules' status changes afterwards.
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.String("category").
			NotEmpty(),
		field.String("difficulty").
			Default("beginner"),
		field.Int("estimated_weeks").
			Default(0),
	}
}

func (Skill) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("modules", Module.Type),
	}
}

func (Skill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
	}
}
