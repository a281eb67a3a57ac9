// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nishantk77/skillpath-ascend-together/ent/badge"
	"github.com/nishantk77/skillpath-ascend-together/ent/user"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *UserCreate) SetName(v string) *UserCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *UserCreate) SetEmail(v string) *UserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *UserCreate) SetPasswordHash(v string) *UserCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_c *UserCreate) SetNillablePasswordHash(v *string) *UserCreate {
	if v != nil {
		_c.SetPasswordHash(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *UserCreate) SetRole(v string) *UserCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *UserCreate) SetNillableRole(v *string) *UserCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetXp sets the "xp" field.
func (_c *UserCreate) SetXp(v int) *UserCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *UserCreate) SetNillableXp(v *int) *UserCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetInterests sets the "interests" field.
func (_c *UserCreate) SetInterests(v []string) *UserCreate {
	_c.mutation.SetInterests(v)
	return _c
}

// SetWeeklyTime sets the "weekly_time" field.
func (_c *UserCreate) SetWeeklyTime(v int) *UserCreate {
	_c.mutation.SetWeeklyTime(v)
	return _c
}

// SetNillableWeeklyTime sets the "weekly_time" field if the given value is not nil.
func (_c *UserCreate) SetNillableWeeklyTime(v *int) *UserCreate {
	if v != nil {
		_c.SetWeeklyTime(*v)
	}
	return _c
}

// SetGoals sets the "goals" field.
func (_c *UserCreate) SetGoals(v []string) *UserCreate {
	_c.mutation.SetGoals(v)
	return _c
}

// SetJoinDate sets the "join_date" field.
func (_c *UserCreate) SetJoinDate(v time.Time) *UserCreate {
	_c.mutation.SetJoinDate(v)
	return _c
}

// SetNillableJoinDate sets the "join_date" field if the given value is not nil.
func (_c *UserCreate) SetNillableJoinDate(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetJoinDate(*v)
	}
	return _c
}

// SetLastLoginDate sets the "last_login_date" field.
func (_c *UserCreate) SetLastLoginDate(v time.Time) *UserCreate {
	_c.mutation.SetLastLoginDate(v)
	return _c
}

// SetNillableLastLoginDate sets the "last_login_date" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastLoginDate(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetLastLoginDate(*v)
	}
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *UserCreate) SetCurrentStreak(v int) *UserCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *UserCreate) SetNillableCurrentStreak(v *int) *UserCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetLongestStreak sets the "longest_streak" field.
func (_c *UserCreate) SetLongestStreak(v int) *UserCreate {
	_c.mutation.SetLongestStreak(v)
	return _c
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_c *UserCreate) SetNillableLongestStreak(v *int) *UserCreate {
	if v != nil {
		_c.SetLongestStreak(*v)
	}
	return _c
}

// SetCompletedModules sets the "completed_modules" field.
func (_c *UserCreate) SetCompletedModules(v int) *UserCreate {
	_c.mutation.SetCompletedModules(v)
	return _c
}

// SetNillableCompletedModules sets the "completed_modules" field if the given value is not nil.
func (_c *UserCreate) SetNillableCompletedModules(v *int) *UserCreate {
	if v != nil {
		_c.SetCompletedModules(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v string) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddBadgeIDs adds the "badges" edge to the Badge entity by IDs.
func (_c *UserCreate) AddBadgeIDs(ids ...string) *UserCreate {
	_c.mutation.AddBadgeIDs(ids...)
	return _c
}

// AddBadges adds the "badges" edges to the Badge entity.
func (_c *UserCreate) AddBadges(v ...*Badge) *UserCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBadgeIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.PasswordHash(); !ok {
		v := user.DefaultPasswordHash
		_c.mutation.SetPasswordHash(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := user.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.Xp(); !ok {
		v := user.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.WeeklyTime(); !ok {
		v := user.DefaultWeeklyTime
		_c.mutation.SetWeeklyTime(v)
	}
	if _, ok := _c.mutation.JoinDate(); !ok {
		v := user.DefaultJoinDate()
		_c.mutation.SetJoinDate(v)
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := user.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		v := user.DefaultLongestStreak
		_c.mutation.SetLongestStreak(v)
	}
	if _, ok := _c.mutation.CompletedModules(); !ok {
		v := user.DefaultCompletedModules
		_c.mutation.SetCompletedModules(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "User.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "User.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`ent: missing required field "User.password_hash"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "User.role"`)}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "User.xp"`)}
	}
	if v, ok := _c.mutation.Xp(); ok {
		if err := user.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "User.xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeeklyTime(); !ok {
		return &ValidationError{Name: "weekly_time", err: errors.New(`ent: missing required field "User.weekly_time"`)}
	}
	if _, ok := _c.mutation.JoinDate(); !ok {
		return &ValidationError{Name: "join_date", err: errors.New(`ent: missing required field "User.join_date"`)}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "User.current_streak"`)}
	}
	if v, ok := _c.mutation.CurrentStreak(); ok {
		if err := user.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "User.current_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		return &ValidationError{Name: "longest_streak", err: errors.New(`ent: missing required field "User.longest_streak"`)}
	}
	if v, ok := _c.mutation.LongestStreak(); ok {
		if err := user.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "User.longest_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedModules(); !ok {
		return &ValidationError{Name: "completed_modules", err: errors.New(`ent: missing required field "User.completed_modules"`)}
	}
	if v, ok := _c.mutation.CompletedModules(); ok {
		if err := user.CompletedModulesValidator(v); err != nil {
			return &ValidationError{Name: "completed_modules", err: fmt.Errorf(`ent: validator failed for field "User.completed_modules": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := user.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "User.id": %w`, err)}
		}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected User.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(user.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.Interests(); ok {
		_spec.SetField(user.FieldInterests, field.TypeJSON, value)
		_node.Interests = value
	}
	if value, ok := _c.mutation.WeeklyTime(); ok {
		_spec.SetField(user.FieldWeeklyTime, field.TypeInt, value)
		_node.WeeklyTime = value
	}
	if value, ok := _c.mutation.Goals(); ok {
		_spec.SetField(user.FieldGoals, field.TypeJSON, value)
		_node.Goals = value
	}
	if value, ok := _c.mutation.JoinDate(); ok {
		_spec.SetField(user.FieldJoinDate, field.TypeTime, value)
		_node.JoinDate = value
	}
	if value, ok := _c.mutation.LastLoginDate(); ok {
		_spec.SetField(user.FieldLastLoginDate, field.TypeTime, value)
		_node.LastLoginDate = &value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(user.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.LongestStreak(); ok {
		_spec.SetField(user.FieldLongestStreak, field.TypeInt, value)
		_node.LongestStreak = value
	}
	if value, ok := _c.mutation.CompletedModules(); ok {
		_spec.SetField(user.FieldCompletedModules, field.TypeInt, value)
		_node.CompletedModules = value
	}
	if nodes := _c.mutation.BadgesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
