// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldXp holds the string denoting the xp field in the database.
	FieldXp = "xp"
	// FieldInterests holds the string denoting the interests field in the database.
	FieldInterests = "interests"
	// FieldWeeklyTime holds the string denoting the weekly_time field in the database.
	FieldWeeklyTime = "weekly_time"
	// FieldGoals holds the string denoting the goals field in the database.
	FieldGoals = "goals"
	// FieldJoinDate holds the string denoting the join_date field in the database.
	FieldJoinDate = "join_date"
	// FieldLastLoginDate holds the string denoting the last_login_date field in the database.
	FieldLastLoginDate = "last_login_date"
	// FieldCurrentStreak holds the string denoting the current_streak field in the database.
	FieldCurrentStreak = "current_streak"
	// FieldLongestStreak holds the string denoting the longest_streak field in the database.
	FieldLongestStreak = "longest_streak"
	// FieldCompletedModules holds the string denoting the completed_modules field in the database.
	FieldCompletedModules = "completed_modules"
	// EdgeBadges holds the string denoting the badges edge name in mutations.
	EdgeBadges = "badges"
	// Table holds the table name of the user in the database.
	Table = "users"
	// BadgesTable is the table that holds the badges relation/edge.
	BadgesTable = "badges"
	// BadgesInverseTable is the table name for the Badge entity.
	// It exists in this package in order to avoid circular dependency with the "badge" package.
	BadgesInverseTable = "badges"
	// BadgesColumn is the table column denoting the badges relation/edge.
	BadgesColumn = "user_badges"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldPasswordHash,
	FieldRole,
	FieldXp,
	FieldInterests,
	FieldWeeklyTime,
	FieldGoals,
	FieldJoinDate,
	FieldLastLoginDate,
	FieldCurrentStreak,
	FieldLongestStreak,
	FieldCompletedModules,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultPasswordHash holds the default value on creation for the "password_hash" field.
	DefaultPasswordHash string
	// DefaultRole holds the default value on creation for the "role" field.
	DefaultRole string
	// DefaultXp holds the default value on creation for the "xp" field.
	DefaultXp int
	// XpValidator is a validator for the "xp" field. It is called by the builders before save.
	XpValidator func(int) error
	// DefaultWeeklyTime holds the default value on creation for the "weekly_time" field.
	DefaultWeeklyTime int
	// DefaultJoinDate holds the default value on creation for the "join_date" field.
	DefaultJoinDate func() time.Time
	// DefaultCurrentStreak holds the default value on creation for the "current_streak" field.
	DefaultCurrentStreak int
	// CurrentStreakValidator is a validator for the "current_streak" field. It is called by the builders before save.
	CurrentStreakValidator func(int) error
	// DefaultLongestStreak holds the default value on creation for the "longest_streak" field.
	DefaultLongestStreak int
	// LongestStreakValidator is a validator for the "longest_streak" field. It is called by the builders before save.
	LongestStreakValidator func(int) error
	// DefaultCompletedModules holds the default value on creation for the "completed_modules" field.
	DefaultCompletedModules int
	// CompletedModulesValidator is a validator for the "completed_modules" field. It is called by the builders before save.
	CompletedModulesValidator func(int) error
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByXp orders the results by the xp field.
func ByXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXp, opts...).ToFunc()
}

// ByWeeklyTime orders the results by the weekly_time field.
func ByWeeklyTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeeklyTime, opts...).ToFunc()
}

// ByJoinDate orders the results by the join_date field.
func ByJoinDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJoinDate, opts...).ToFunc()
}

// ByLastLoginDate orders the results by the last_login_date field.
func ByLastLoginDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLoginDate, opts...).ToFunc()
}

// ByCurrentStreak orders the results by the current_streak field.
func ByCurrentStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreak, opts...).ToFunc()
}

// ByLongestStreak orders the results by the longest_streak field.
func ByLongestStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongestStreak, opts...).ToFunc()
}

// ByCompletedModules orders the results by the completed_modules field.
func ByCompletedModules(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedModules, opts...).ToFunc()
}

// ByBadgesCount orders the results by badges count.
func ByBadgesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBadgesStep(), opts...)
	}
}

// ByBadges orders the results by badges terms.
func ByBadges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBadgesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBadgesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BadgesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BadgesTable, BadgesColumn),
	)
}
