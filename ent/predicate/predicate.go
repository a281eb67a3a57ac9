// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Badge is the predicate function for badge builders.
type Badge func(*sql.Selector)

// BadgeEvent is the predicate function for badgeevent builders.
type BadgeEvent func(*sql.Selector)

// Discussion is the predicate function for discussion builders.
type Discussion func(*sql.Selector)

// Module is the predicate function for module builders.
type Module func(*sql.Selector)

// Reply is the predicate function for reply builders.
type Reply func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// XPEvent is the predicate function for xpevent builders.
type XPEvent func(*sql.Selector)
