// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BadgesColumns holds the columns for the "badges" table.
	BadgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "badge_type", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString, Nullable: true},
		{Name: "date_earned", Type: field.TypeTime},
		{Name: "user_badges", Type: field.TypeString},
	}
	// BadgesTable holds the schema information for the "badges" table.
	BadgesTable = &schema.Table{
		Name:       "badges",
		Columns:    BadgesColumns,
		PrimaryKey: []*schema.Column{BadgesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "badges_users_badges",
				Columns:    []*schema.Column{BadgesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "badge_name_badge_type_user_badges",
				Unique:  true,
				Columns: []*schema.Column{BadgesColumns[1], BadgesColumns[3], BadgesColumns[6]},
			},
		},
	}
	// BadgeEventsColumns holds the columns for the "badge_events" table.
	BadgeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "badge_name", Type: field.TypeString},
		{Name: "badge_type", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString, Nullable: true},
	}
	// BadgeEventsTable holds the schema information for the "badge_events" table.
	BadgeEventsTable = &schema.Table{
		Name:       "badge_events",
		Columns:    BadgeEventsColumns,
		PrimaryKey: []*schema.Column{BadgeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badgeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[1]},
			},
			{
				Name:    "badgeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[2]},
			},
			{
				Name:    "badgeevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[3]},
			},
			{
				Name:    "badgeevent_badge_type",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[5]},
			},
		},
	}
	// DiscussionsColumns holds the columns for the "discussions" table.
	DiscussionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "user_name", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DiscussionsTable holds the schema information for the "discussions" table.
	DiscussionsTable = &schema.Table{
		Name:       "discussions",
		Columns:    DiscussionsColumns,
		PrimaryKey: []*schema.Column{DiscussionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "discussion_skill_id",
				Unique:  false,
				Columns: []*schema.Column{DiscussionsColumns[1]},
			},
			{
				Name:    "discussion_module_id",
				Unique:  false,
				Columns: []*schema.Column{DiscussionsColumns[2]},
			},
		},
	}
	// ModulesColumns holds the columns for the "modules" table.
	ModulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "week", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeString, Default: "not-started"},
		{Name: "resources", Type: field.TypeJSON, Nullable: true},
		{Name: "estimated_hours", Type: field.TypeInt, Default: 0},
		{Name: "xp_reward", Type: field.TypeInt, Default: 0},
		{Name: "skill_modules", Type: field.TypeString},
	}
	// ModulesTable holds the schema information for the "modules" table.
	ModulesTable = &schema.Table{
		Name:       "modules",
		Columns:    ModulesColumns,
		PrimaryKey: []*schema.Column{ModulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "modules_skills_modules",
				Columns:    []*schema.Column{ModulesColumns[8]},
				RefColumns: []*schema.Column{SkillsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "module_status",
				Unique:  false,
				Columns: []*schema.Column{ModulesColumns[4]},
			},
			{
				Name:    "module_week",
				Unique:  false,
				Columns: []*schema.Column{ModulesColumns[3]},
			},
		},
	}
	// RepliesColumns holds the columns for the "replies" table.
	RepliesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "user_name", Type: field.TypeString},
		{Name: "content", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "discussion_replies", Type: field.TypeString},
	}
	// RepliesTable holds the schema information for the "replies" table.
	RepliesTable = &schema.Table{
		Name:       "replies",
		Columns:    RepliesColumns,
		PrimaryKey: []*schema.Column{RepliesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "replies_discussions_replies",
				Columns:    []*schema.Column{RepliesColumns[5]},
				RefColumns: []*schema.Column{DiscussionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: "beginner"},
		{Name: "estimated_weeks", Type: field.TypeInt, Default: 0},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skill_category",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString, Default: ""},
		{Name: "role", Type: field.TypeString, Default: "learner"},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "interests", Type: field.TypeJSON, Nullable: true},
		{Name: "weekly_time", Type: field.TypeInt, Default: 0},
		{Name: "goals", Type: field.TypeJSON, Nullable: true},
		{Name: "join_date", Type: field.TypeTime},
		{Name: "last_login_date", Type: field.TypeTime, Nullable: true},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "longest_streak", Type: field.TypeInt, Default: 0},
		{Name: "completed_modules", Type: field.TypeInt, Default: 0},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// XpEventsColumns holds the columns for the "xp_events" table.
	XpEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString, Nullable: true},
		{Name: "module_id", Type: field.TypeString, Nullable: true},
	}
	// XpEventsTable holds the schema information for the "xp_events" table.
	XpEventsTable = &schema.Table{
		Name:       "xp_events",
		Columns:    XpEventsColumns,
		PrimaryKey: []*schema.Column{XpEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "xpevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[1]},
			},
			{
				Name:    "xpevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[2]},
			},
			{
				Name:    "xpevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BadgesTable,
		BadgeEventsTable,
		DiscussionsTable,
		ModulesTable,
		RepliesTable,
		SessionsTable,
		SkillsTable,
		UsersTable,
		XpEventsTable,
	}
)

func init() {
	BadgesTable.ForeignKeys[0].RefTable = UsersTable
	ModulesTable.ForeignKeys[0].RefTable = SkillsTable
	RepliesTable.ForeignKeys[0].RefTable = DiscussionsTable
}
