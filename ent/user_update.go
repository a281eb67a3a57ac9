// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/nishantk77/skillpath-ascend-together/ent/badge"
	"github.com/nishantk77/skillpath-ascend-together/ent/predicate"
	"github.com/nishantk77/skillpath-ascend-together/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdate) SetPasswordHash(v string) *UserUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v string) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *string) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *UserUpdate) SetXp(v int) *UserUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *UserUpdate) SetNillableXp(v *int) *UserUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *UserUpdate) AddXp(v int) *UserUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetInterests sets the "interests" field.
func (_u *UserUpdate) SetInterests(v []string) *UserUpdate {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *UserUpdate) AppendInterests(v []string) *UserUpdate {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *UserUpdate) ClearInterests() *UserUpdate {
	_u.mutation.ClearInterests()
	return _u
}

// SetWeeklyTime sets the "weekly_time" field.
func (_u *UserUpdate) SetWeeklyTime(v int) *UserUpdate {
	_u.mutation.ResetWeeklyTime()
	_u.mutation.SetWeeklyTime(v)
	return _u
}

// SetNillableWeeklyTime sets the "weekly_time" field if the given value is not nil.
func (_u *UserUpdate) SetNillableWeeklyTime(v *int) *UserUpdate {
	if v != nil {
		_u.SetWeeklyTime(*v)
	}
	return _u
}

// AddWeeklyTime adds value to the "weekly_time" field.
func (_u *UserUpdate) AddWeeklyTime(v int) *UserUpdate {
	_u.mutation.AddWeeklyTime(v)
	return _u
}

// SetGoals sets the "goals" field.
func (_u *UserUpdate) SetGoals(v []string) *UserUpdate {
	_u.mutation.SetGoals(v)
	return _u
}

// AppendGoals appends value to the "goals" field.
func (_u *UserUpdate) AppendGoals(v []string) *UserUpdate {
	_u.mutation.AppendGoals(v)
	return _u
}

// ClearGoals clears the value of the "goals" field.
func (_u *UserUpdate) ClearGoals() *UserUpdate {
	_u.mutation.ClearGoals()
	return _u
}

// SetLastLoginDate sets the "last_login_date" field.
func (_u *UserUpdate) SetLastLoginDate(v time.Time) *UserUpdate {
	_u.mutation.SetLastLoginDate(v)
	return _u
}

// SetNillableLastLoginDate sets the "last_login_date" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLoginDate(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastLoginDate(*v)
	}
	return _u
}

// ClearLastLoginDate clears the value of the "last_login_date" field.
func (_u *UserUpdate) ClearLastLoginDate() *UserUpdate {
	_u.mutation.ClearLastLoginDate()
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *UserUpdate) SetCurrentStreak(v int) *UserUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCurrentStreak(v *int) *UserUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *UserUpdate) AddCurrentStreak(v int) *UserUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *UserUpdate) SetLongestStreak(v int) *UserUpdate {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLongestStreak(v *int) *UserUpdate {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *UserUpdate) AddLongestStreak(v int) *UserUpdate {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetCompletedModules sets the "completed_modules" field.
func (_u *UserUpdate) SetCompletedModules(v int) *UserUpdate {
	_u.mutation.ResetCompletedModules()
	_u.mutation.SetCompletedModules(v)
	return _u
}

// SetNillableCompletedModules sets the "completed_modules" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCompletedModules(v *int) *UserUpdate {
	if v != nil {
		_u.SetCompletedModules(*v)
	}
	return _u
}

// AddCompletedModules adds value to the "completed_modules" field.
func (_u *UserUpdate) AddCompletedModules(v int) *UserUpdate {
	_u.mutation.AddCompletedModules(v)
	return _u
}

// AddBadgeIDs adds the "badges" edge to the Badge entity by IDs.
func (_u *UserUpdate) AddBadgeIDs(ids ...string) *UserUpdate {
	_u.mutation.AddBadgeIDs(ids...)
	return _u
}

// AddBadges adds the "badges" edges to the Badge entity.
func (_u *UserUpdate) AddBadges(v ...*Badge) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBadgeIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearBadges clears all "badges" edges to the Badge entity.
func (_u *UserUpdate) ClearBadges() *UserUpdate {
	_u.mutation.ClearBadges()
	return _u
}

// RemoveBadgeIDs removes the "badges" edge to Badge entities by IDs.
func (_u *UserUpdate) RemoveBadgeIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveBadgeIDs(ids...)
	return _u
}

// RemoveBadges removes "badges" edges to Badge entities.
func (_u *UserUpdate) RemoveBadges(v ...*Badge) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBadgeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := user.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "User.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := user.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "User.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreak(); ok {
		if err := user.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "User.longest_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedModules(); ok {
		if err := user.CompletedModulesValidator(v); err != nil {
			return &ValidationError{Name: "completed_modules", err: fmt.Errorf(`ent: validator failed for field "User.completed_modules": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(user.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(user.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(user.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(user.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeeklyTime(); ok {
		_spec.SetField(user.FieldWeeklyTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyTime(); ok {
		_spec.AddField(user.FieldWeeklyTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Goals(); ok {
		_spec.SetField(user.FieldGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldGoals, value)
		})
	}
	if _u.mutation.GoalsCleared() {
		_spec.ClearField(user.FieldGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastLoginDate(); ok {
		_spec.SetField(user.FieldLastLoginDate, field.TypeTime, value)
	}
	if _u.mutation.LastLoginDateCleared() {
		_spec.ClearField(user.FieldLastLoginDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(user.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(user.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(user.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(user.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedModules(); ok {
		_spec.SetField(user.FieldCompletedModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedModules(); ok {
		_spec.AddField(user.FieldCompletedModules, field.TypeInt, value)
	}
	if _u.mutation.BadgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BadgesTable,
			Columns: []string{user.BadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badge.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBadgesIDs(); len(nodes) > 0 && !_u.mutation.BadgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BadgesTable,
			Columns: []string{user.BadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BadgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BadgesTable,
			Columns: []string{user.BadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdateOne) SetPasswordHash(v string) *UserUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v string) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *UserUpdateOne) SetXp(v int) *UserUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableXp(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *UserUpdateOne) AddXp(v int) *UserUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetInterests sets the "interests" field.
func (_u *UserUpdateOne) SetInterests(v []string) *UserUpdateOne {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *UserUpdateOne) AppendInterests(v []string) *UserUpdateOne {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *UserUpdateOne) ClearInterests() *UserUpdateOne {
	_u.mutation.ClearInterests()
	return _u
}

// SetWeeklyTime sets the "weekly_time" field.
func (_u *UserUpdateOne) SetWeeklyTime(v int) *UserUpdateOne {
	_u.mutation.ResetWeeklyTime()
	_u.mutation.SetWeeklyTime(v)
	return _u
}

// SetNillableWeeklyTime sets the "weekly_time" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableWeeklyTime(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetWeeklyTime(*v)
	}
	return _u
}

// AddWeeklyTime adds value to the "weekly_time" field.
func (_u *UserUpdateOne) AddWeeklyTime(v int) *UserUpdateOne {
	_u.mutation.AddWeeklyTime(v)
	return _u
}

// SetGoals sets the "goals" field.
func (_u *UserUpdateOne) SetGoals(v []string) *UserUpdateOne {
	_u.mutation.SetGoals(v)
	return _u
}

// AppendGoals appends value to the "goals" field.
func (_u *UserUpdateOne) AppendGoals(v []string) *UserUpdateOne {
	_u.mutation.AppendGoals(v)
	return _u
}

// ClearGoals clears the value of the "goals" field.
func (_u *UserUpdateOne) ClearGoals() *UserUpdateOne {
	_u.mutation.ClearGoals()
	return _u
}

// SetLastLoginDate sets the "last_login_date" field.
func (_u *UserUpdateOne) SetLastLoginDate(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastLoginDate(v)
	return _u
}

// SetNillableLastLoginDate sets the "last_login_date" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLoginDate(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastLoginDate(*v)
	}
	return _u
}

// ClearLastLoginDate clears the value of the "last_login_date" field.
func (_u *UserUpdateOne) ClearLastLoginDate() *UserUpdateOne {
	_u.mutation.ClearLastLoginDate()
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *UserUpdateOne) SetCurrentStreak(v int) *UserUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCurrentStreak(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *UserUpdateOne) AddCurrentStreak(v int) *UserUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *UserUpdateOne) SetLongestStreak(v int) *UserUpdateOne {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLongestStreak(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *UserUpdateOne) AddLongestStreak(v int) *UserUpdateOne {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetCompletedModules sets the "completed_modules" field.
func (_u *UserUpdateOne) SetCompletedModules(v int) *UserUpdateOne {
	_u.mutation.ResetCompletedModules()
	_u.mutation.SetCompletedModules(v)
	return _u
}

// SetNillableCompletedModules sets the "completed_modules" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCompletedModules(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetCompletedModules(*v)
	}
	return _u
}

// AddCompletedModules adds value to the "completed_modules" field.
func (_u *UserUpdateOne) AddCompletedModules(v int) *UserUpdateOne {
	_u.mutation.AddCompletedModules(v)
	return _u
}

// AddBadgeIDs adds the "badges" edge to the Badge entity by IDs.
func (_u *UserUpdateOne) AddBadgeIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddBadgeIDs(ids...)
	return _u
}

// AddBadges adds the "badges" edges to the Badge entity.
func (_u *UserUpdateOne) AddBadges(v ...*Badge) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBadgeIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearBadges clears all "badges" edges to the Badge entity.
func (_u *UserUpdateOne) ClearBadges() *UserUpdateOne {
	_u.mutation.ClearBadges()
	return _u
}

// RemoveBadgeIDs removes the "badges" edge to Badge entities by IDs.
func (_u *UserUpdateOne) RemoveBadgeIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveBadgeIDs(ids...)
	return _u
}

// RemoveBadges removes "badges" edges to Badge entities.
func (_u *UserUpdateOne) RemoveBadges(v ...*Badge) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBadgeIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := user.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "User.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := user.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "User.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreak(); ok {
		if err := user.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "User.longest_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedModules(); ok {
		if err := user.CompletedModulesValidator(v); err != nil {
			return &ValidationError{Name: "completed_modules", err: fmt.Errorf(`ent: validator failed for field "User.completed_modules": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(user.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(user.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(user.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(user.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeeklyTime(); ok {
		_spec.SetField(user.FieldWeeklyTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyTime(); ok {
		_spec.AddField(user.FieldWeeklyTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Goals(); ok {
		_spec.SetField(user.FieldGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldGoals, value)
		})
	}
	if _u.mutation.GoalsCleared() {
		_spec.ClearField(user.FieldGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastLoginDate(); ok {
		_spec.SetField(user.FieldLastLoginDate, field.TypeTime, value)
	}
	if _u.mutation.LastLoginDateCleared() {
		_spec.ClearField(user.FieldLastLoginDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(user.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(user.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(user.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(user.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedModules(); ok {
		_spec.SetField(user.FieldCompletedModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedModules(); ok {
		_spec.AddField(user.FieldCompletedModules, field.TypeInt, value)
	}
	if _u.mutation.BadgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BadgesTable,
			Columns: []string{user.BadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badge.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBadgesIDs(); len(nodes) > 0 && !_u.mutation.BadgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BadgesTable,
			Columns: []string{user.BadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BadgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BadgesTable,
			Columns: []string{user.BadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
