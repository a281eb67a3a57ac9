package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Session is the persisted current-user reference. At most one row exists;
// login replaces it and logout deletes it.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now),
	}
}
