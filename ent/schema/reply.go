package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Reply is one answer within a discussion thread. Replies are append-only
// and ordered by creation time.
type Reply struct {
	ent.Schema
}

func (Reply) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("user_name").
			NotEmpty(),
		field.String("content").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Reply) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("discussion", Discussion.Type).
			Ref("replies").
			Unique().
			Required(),
	}
}
