// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nishantk77/skillpath-ascend-together/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRole, v))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldXp, v))
}

// WeeklyTime applies equality check predicate on the "weekly_time" field. It's identical to WeeklyTimeEQ.
func WeeklyTime(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldWeeklyTime, v))
}

// JoinDate applies equality check predicate on the "join_date" field. It's identical to JoinDateEQ.
func JoinDate(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldJoinDate, v))
}

// LastLoginDate applies equality check predicate on the "last_login_date" field. It's identical to LastLoginDateEQ.
func LastLoginDate(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginDate, v))
}

// CurrentStreak applies equality check predicate on the "current_streak" field. It's identical to CurrentStreakEQ.
func CurrentStreak(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCurrentStreak, v))
}

// LongestStreak applies equality check predicate on the "longest_streak" field. It's identical to LongestStreakEQ.
func LongestStreak(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLongestStreak, v))
}

// CompletedModules applies equality check predicate on the "completed_modules" field. It's identical to CompletedModulesEQ.
func CompletedModules(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCompletedModules, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPasswordHash, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldRole, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldXp, v))
}

// InterestsIsNil applies the IsNil predicate on the "interests" field.
func InterestsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldInterests))
}

// InterestsNotNil applies the NotNil predicate on the "interests" field.
func InterestsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldInterests))
}

// WeeklyTimeEQ applies the EQ predicate on the "weekly_time" field.
func WeeklyTimeEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldWeeklyTime, v))
}

// WeeklyTimeNEQ applies the NEQ predicate on the "weekly_time" field.
func WeeklyTimeNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldWeeklyTime, v))
}

// WeeklyTimeIn applies the In predicate on the "weekly_time" field.
func WeeklyTimeIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldWeeklyTime, vs...))
}

// WeeklyTimeNotIn applies the NotIn predicate on the "weekly_time" field.
func WeeklyTimeNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldWeeklyTime, vs...))
}

// WeeklyTimeGT applies the GT predicate on the "weekly_time" field.
func WeeklyTimeGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldWeeklyTime, v))
}

// WeeklyTimeGTE applies the GTE predicate on the "weekly_time" field.
func WeeklyTimeGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldWeeklyTime, v))
}

// WeeklyTimeLT applies the LT predicate on the "weekly_time" field.
func WeeklyTimeLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldWeeklyTime, v))
}

// WeeklyTimeLTE applies the LTE predicate on the "weekly_time" field.
func WeeklyTimeLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldWeeklyTime, v))
}

// GoalsIsNil applies the IsNil predicate on the "goals" field.
func GoalsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldGoals))
}

// GoalsNotNil applies the NotNil predicate on the "goals" field.
func GoalsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldGoals))
}

// JoinDateEQ applies the EQ predicate on the "join_date" field.
func JoinDateEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldJoinDate, v))
}

// JoinDateNEQ applies the NEQ predicate on the "join_date" field.
func JoinDateNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldJoinDate, v))
}

// JoinDateIn applies the In predicate on the "join_date" field.
func JoinDateIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldJoinDate, vs...))
}

// JoinDateNotIn applies the NotIn predicate on the "join_date" field.
func JoinDateNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldJoinDate, vs...))
}

// JoinDateGT applies the GT predicate on the "join_date" field.
func JoinDateGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldJoinDate, v))
}

// JoinDateGTE applies the GTE predicate on the "join_date" field.
func JoinDateGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldJoinDate, v))
}

// JoinDateLT applies the LT predicate on the "join_date" field.
func JoinDateLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldJoinDate, v))
}

// JoinDateLTE applies the LTE predicate on the "join_date" field.
func JoinDateLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldJoinDate, v))
}

// LastLoginDateEQ applies the EQ predicate on the "last_login_date" field.
func LastLoginDateEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginDate, v))
}

// LastLoginDateNEQ applies the NEQ predicate on the "last_login_date" field.
func LastLoginDateNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastLoginDate, v))
}

// LastLoginDateIn applies the In predicate on the "last_login_date" field.
func LastLoginDateIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastLoginDate, vs...))
}

// LastLoginDateNotIn applies the NotIn predicate on the "last_login_date" field.
func LastLoginDateNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastLoginDate, vs...))
}

// LastLoginDateGT applies the GT predicate on the "last_login_date" field.
func LastLoginDateGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastLoginDate, v))
}

// LastLoginDateGTE applies the GTE predicate on the "last_login_date" field.
func LastLoginDateGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastLoginDate, v))
}

// LastLoginDateLT applies the LT predicate on the "last_login_date" field.
func LastLoginDateLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastLoginDate, v))
}

// LastLoginDateLTE applies the LTE predicate on the "last_login_date" field.
func LastLoginDateLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastLoginDate, v))
}

// LastLoginDateIsNil applies the IsNil predicate on the "last_login_date" field.
func LastLoginDateIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastLoginDate))
}

// LastLoginDateNotNil applies the NotNil predicate on the "last_login_date" field.
func LastLoginDateNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastLoginDate))
}

// CurrentStreakEQ applies the EQ predicate on the "current_streak" field.
func CurrentStreakEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCurrentStreak, v))
}

// CurrentStreakNEQ applies the NEQ predicate on the "current_streak" field.
func CurrentStreakNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCurrentStreak, v))
}

// CurrentStreakIn applies the In predicate on the "current_streak" field.
func CurrentStreakIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldCurrentStreak, vs...))
}

// CurrentStreakNotIn applies the NotIn predicate on the "current_streak" field.
func CurrentStreakNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCurrentStreak, vs...))
}

// CurrentStreakGT applies the GT predicate on the "current_streak" field.
func CurrentStreakGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldCurrentStreak, v))
}

// CurrentStreakGTE applies the GTE predicate on the "current_streak" field.
func CurrentStreakGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCurrentStreak, v))
}

// CurrentStreakLT applies the LT predicate on the "current_streak" field.
func CurrentStreakLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldCurrentStreak, v))
}

// CurrentStreakLTE applies the LTE predicate on the "current_streak" field.
func CurrentStreakLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCurrentStreak, v))
}

// LongestStreakEQ applies the EQ predicate on the "longest_streak" field.
func LongestStreakEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLongestStreak, v))
}

// LongestStreakNEQ applies the NEQ predicate on the "longest_streak" field.
func LongestStreakNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLongestStreak, v))
}

// LongestStreakIn applies the In predicate on the "longest_streak" field.
func LongestStreakIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldLongestStreak, vs...))
}

// LongestStreakNotIn applies the NotIn predicate on the "longest_streak" field.
func LongestStreakNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLongestStreak, vs...))
}

// LongestStreakGT applies the GT predicate on the "longest_streak" field.
func LongestStreakGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldLongestStreak, v))
}

// LongestStreakGTE applies the GTE predicate on the "longest_streak" field.
func LongestStreakGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLongestStreak, v))
}

// LongestStreakLT applies the LT predicate on the "longest_streak" field.
func LongestStreakLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldLongestStreak, v))
}

// LongestStreakLTE applies the LTE predicate on the "longest_streak" field.
func LongestStreakLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLongestStreak, v))
}

// CompletedModulesEQ applies the EQ predicate on the "completed_modules" field.
func CompletedModulesEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCompletedModules, v))
}

// CompletedModulesNEQ applies the NEQ predicate on the "completed_modules" field.
func CompletedModulesNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCompletedModules, v))
}

// CompletedModulesIn applies the In predicate on the "completed_modules" field.
func CompletedModulesIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldCompletedModules, vs...))
}

// CompletedModulesNotIn applies the NotIn predicate on the "completed_modules" field.
func CompletedModulesNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCompletedModules, vs...))
}

// CompletedModulesGT applies the GT predicate on the "completed_modules" field.
func CompletedModulesGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldCompletedModules, v))
}

// CompletedModulesGTE applies the GTE predicate on the "completed_modules" field.
func CompletedModulesGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCompletedModules, v))
}

// CompletedModulesLT applies the LT predicate on the "completed_modules" field.
func CompletedModulesLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldCompletedModules, v))
}

// CompletedModulesLTE applies the LTE predicate on the "completed_modules" field.
func CompletedModulesLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCompletedModules, v))
}

// HasBadges applies the HasEdge predicate on the "badges" edge.
func HasBadges() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BadgesTable, BadgesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBadgesWith applies the HasEdge predicate on the "badges" edge with a given conditions (other predicates).
func HasBadgesWith(preds ...predicate.Badge) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newBadgesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
