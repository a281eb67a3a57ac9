package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Badge is an earned achievement. Rows are append-only and immutable; the
// unique (owner, name, type) index enforces the one-badge-per-milestone
// invariant at the database level.
type Badge struct {
	ent.Schema
}

func (Badge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty().
			Immutable(),
		field.String("description").
			Immutable(),
		field.String("badge_type").
			NotEmpty().
			Immutable().
			Comment("streak, completion, mastery, or special"),
		field.String("tier").
			Optional().
			Immutable().
			Comment("bronze, silver, or gold; empty for untiered badges"),
		field.Time("date_earned").
			Default(time.Now).
			Immutable(),
	}
}

func (Badge) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("badges").
			Unique().
			Required(),
	}
}

func (Badge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "badge_type").
			Edges("owner").
			Unique(),
	}
}
