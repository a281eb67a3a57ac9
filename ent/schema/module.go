package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/nishantk77/skillpath-ascend-together/internal/catalog"
)

// Module is the smallest unit of learning content. Status is the only
// field mutated after seeding; resources are stored as a JSON blob since
// they are read-only reference data.
type Module struct {
	ent.Schema
}

func (Module) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.Int("week").
			Default(1).
			Positive(),
		field.String("status").
			Default(string(catalog.StatusNotStarted)),
		field.JSON("resources", []catalog.Resource{}).
			Optional(),
		field.Int("estimated_hours").
			Default(0),
		field.Int("xp_reward").
			Default(0).
			NonNegative(),
	}
}

func (Module) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("skill", Skill.Type).
			Ref("modules").
			Unique().
			Required(),
	}
}

func (Module) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("week"),
	}
}
