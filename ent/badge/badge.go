// Code generated by ent, DO NOT EDIT.

package badge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the badge type in the database.
	Label = "badge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldBadgeType holds the string denoting the badge_type field in the database.
	FieldBadgeType = "badge_type"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldDateEarned holds the string denoting the date_earned field in the database.
	FieldDateEarned = "date_earned"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// Table holds the table name of the badge in the database.
	Table = "badges"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "badges"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "user_badges"
)

// Columns holds all SQL columns for badge fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldBadgeType,
	FieldTier,
	FieldDateEarned,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "badges"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"user_badges",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// BadgeTypeValidator is a validator for the "badge_type" field. It is called by the builders before save.
	BadgeTypeValidator func(string) error
	// DefaultDateEarned holds the default value on creation for the "date_earned" field.
	DefaultDateEarned func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Badge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByBadgeType orders the results by the badge_type field.
func ByBadgeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeType, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByDateEarned orders the results by the date_earned field.
func ByDateEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateEarned, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
