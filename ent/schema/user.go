package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is the learner record: identity, profile preferences, and the
// gamification counters (XP, streaks, completed modules).
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("password_hash").
			Sensitive().
			Default(""),
		field.String("role").
			Default("learner").
			Comment("admin, learner, or curator"),
		field.Int("xp").
			Default(0).
			NonNegative(),
		field.Strings("interests").
			Optional(),
		field.Int("weekly_time").
			Default(0).
			Comment("Hours per week the learner plans to spend"),
		field.Strings("goals").
			Optional(),
		field.Time("join_date").
			Default(time.Now).
			Immutable(),
		field.Time("last_login_date").
			Optional().
			Nillable(),
		field.Int("current_streak").
			Default(0).
			NonNegative(),
		field.Int("longest_streak").
			Default(0).
			NonNegative(),
		field.Int("completed_modules").
			Default(0).
			NonNegative(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("badges", Badge.Type),
	}
}
