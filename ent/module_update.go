// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/nishantk77/skillpath-ascend-together/ent/module"
	"github.com/nishantk77/skillpath-ascend-together/ent/predicate"
	"github.com/nishantk77/skillpath-ascend-together/ent/skill"
	"github.com/nishantk77/skillpath-ascend-together/internal/catalog"
)

// ModuleUpdate is the builder for updating Module entities.
type ModuleUpdate struct {
	config
	hooks    []Hook
	mutation *ModuleMutation
}

// Where appends a list predicates to the ModuleUpdate builder.
func (_u *ModuleUpdate) Where(ps ...predicate.Module) *ModuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ModuleUpdate) SetTitle(v string) *ModuleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableTitle(v *string) *ModuleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ModuleUpdate) SetDescription(v string) *ModuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableDescription(v *string) *ModuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *ModuleUpdate) SetWeek(v int) *ModuleUpdate {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableWeek(v *int) *ModuleUpdate {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *ModuleUpdate) AddWeek(v int) *ModuleUpdate {
	_u.mutation.AddWeek(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModuleUpdate) SetStatus(v string) *ModuleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableStatus(v *string) *ModuleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResources sets the "resources" field.
func (_u *ModuleUpdate) SetResources(v []catalog.Resource) *ModuleUpdate {
	_u.mutation.SetResources(v)
	return _u
}

// AppendResources appends value to the "resources" field.
func (_u *ModuleUpdate) AppendResources(v []catalog.Resource) *ModuleUpdate {
	_u.mutation.AppendResources(v)
	return _u
}

// ClearResources clears the value of the "resources" field.
func (_u *ModuleUpdate) ClearResources() *ModuleUpdate {
	_u.mutation.ClearResources()
	return _u
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_u *ModuleUpdate) SetEstimatedHours(v int) *ModuleUpdate {
	_u.mutation.ResetEstimatedHours()
	_u.mutation.SetEstimatedHours(v)
	return _u
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableEstimatedHours(v *int) *ModuleUpdate {
	if v != nil {
		_u.SetEstimatedHours(*v)
	}
	return _u
}

// AddEstimatedHours adds value to the "estimated_hours" field.
func (_u *ModuleUpdate) AddEstimatedHours(v int) *ModuleUpdate {
	_u.mutation.AddEstimatedHours(v)
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *ModuleUpdate) SetXpReward(v int) *ModuleUpdate {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableXpReward(v *int) *ModuleUpdate {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *ModuleUpdate) AddXpReward(v int) *ModuleUpdate {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetSkillID sets the "skill" edge to the Skill entity by ID.
func (_u *ModuleUpdate) SetSkillID(id string) *ModuleUpdate {
	_u.mutation.SetSkillID(id)
	return _u
}

// SetSkill sets the "skill" edge to the Skill entity.
func (_u *ModuleUpdate) SetSkill(v *Skill) *ModuleUpdate {
	return _u.SetSkillID(v.ID)
}

// Mutation returns the ModuleMutation object of the builder.
func (_u *ModuleUpdate) Mutation() *ModuleMutation {
	return _u.mutation
}

// ClearSkill clears the "skill" edge to the Skill entity.
func (_u *ModuleUpdate) ClearSkill() *ModuleUpdate {
	_u.mutation.ClearSkill()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := module.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Module.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Week(); ok {
		if err := module.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "Module.week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpReward(); ok {
		if err := module.XpRewardValidator(v); err != nil {
			return &ValidationError{Name: "xp_reward", err: fmt.Errorf(`ent: validator failed for field "Module.xp_reward": %w`, err)}
		}
	}
	if _u.mutation.SkillCleared() && len(_u.mutation.SkillIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Module.skill"`)
	}
	return nil
}

func (_u *ModuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(module.Table, module.Columns, sqlgraph.NewFieldSpec(module.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(module.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(module.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(module.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(module.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(module.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resources(); ok {
		_spec.SetField(module.FieldResources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, module.FieldResources, value)
		})
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(module.FieldResources, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedHours(); ok {
		_spec.SetField(module.FieldEstimatedHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedHours(); ok {
		_spec.AddField(module.FieldEstimatedHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(module.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(module.FieldXpReward, field.TypeInt, value)
	}
	if _u.mutation.SkillCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   module.SkillTable,
			Columns: []string{module.SkillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SkillIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   module.SkillTable,
			Columns: []string{module.SkillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{module.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModuleUpdateOne is the builder for updating a single Module entity.
type ModuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModuleMutation
}

// SetTitle sets the "title" field.
func (_u *ModuleUpdateOne) SetTitle(v string) *ModuleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableTitle(v *string) *ModuleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ModuleUpdateOne) SetDescription(v string) *ModuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableDescription(v *string) *ModuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *ModuleUpdateOne) SetWeek(v int) *ModuleUpdateOne {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableWeek(v *int) *ModuleUpdateOne {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *ModuleUpdateOne) AddWeek(v int) *ModuleUpdateOne {
	_u.mutation.AddWeek(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModuleUpdateOne) SetStatus(v string) *ModuleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableStatus(v *string) *ModuleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResources sets the "resources" field.
func (_u *ModuleUpdateOne) SetResources(v []catalog.Resource) *ModuleUpdateOne {
	_u.mutation.SetResources(v)
	return _u
}

// AppendResources appends value to the "resources" field.
func (_u *ModuleUpdateOne) AppendResources(v []catalog.Resource) *ModuleUpdateOne {
	_u.mutation.AppendResources(v)
	return _u
}

// ClearResources clears the value of the "resources" field.
func (_u *ModuleUpdateOne) ClearResources() *ModuleUpdateOne {
	_u.mutation.ClearResources()
	return _u
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_u *ModuleUpdateOne) SetEstimatedHours(v int) *ModuleUpdateOne {
	_u.mutation.ResetEstimatedHours()
	_u.mutation.SetEstimatedHours(v)
	return _u
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableEstimatedHours(v *int) *ModuleUpdateOne {
	if v != nil {
		_u.SetEstimatedHours(*v)
	}
	return _u
}

// AddEstimatedHours adds value to the "estimated_hours" field.
func (_u *ModuleUpdateOne) AddEstimatedHours(v int) *ModuleUpdateOne {
	_u.mutation.AddEstimatedHours(v)
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *ModuleUpdateOne) SetXpReward(v int) *ModuleUpdateOne {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableXpReward(v *int) *ModuleUpdateOne {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *ModuleUpdateOne) AddXpReward(v int) *ModuleUpdateOne {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetSkillID sets the "skill" edge to the Skill entity by ID.
func (_u *ModuleUpdateOne) SetSkillID(id string) *ModuleUpdateOne {
	_u.mutation.SetSkillID(id)
	return _u
}

// SetSkill sets the "skill" edge to the Skill entity.
func (_u *ModuleUpdateOne) SetSkill(v *Skill) *ModuleUpdateOne {
	return _u.SetSkillID(v.ID)
}

// Mutation returns the ModuleMutation object of the builder.
func (_u *ModuleUpdateOne) Mutation() *ModuleMutation {
	return _u.mutation
}

// ClearSkill clears the "skill" edge to the Skill entity.
func (_u *ModuleUpdateOne) ClearSkill() *ModuleUpdateOne {
	_u.mutation.ClearSkill()
	return _u
}

// Where appends a list predicates to the ModuleUpdate builder.
func (_u *ModuleUpdateOne) Where(ps ...predicate.Module) *ModuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModuleUpdateOne) Select(field string, fields ...string) *ModuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Module entity.
func (_u *ModuleUpdateOne) Save(ctx context.Context) (*Module, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleUpdateOne) SaveX(ctx context.Context) *Module {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := module.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Module.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Week(); ok {
		if err := module.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "Module.week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpReward(); ok {
		if err := module.XpRewardValidator(v); err != nil {
			return &ValidationError{Name: "xp_reward", err: fmt.Errorf(`ent: validator failed for field "Module.xp_reward": %w`, err)}
		}
	}
	if _u.mutation.SkillCleared() && len(_u.mutation.SkillIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Module.skill"`)
	}
	return nil
}

func (_u *ModuleUpdateOne) sqlSave(ctx context.Context) (_node *Module, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(module.Table, module.Columns, sqlgraph.NewFieldSpec(module.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Module.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, module.FieldID)
		for _, f := range fields {
			if !module.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != module.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(module.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(module.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(module.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(module.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(module.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resources(); ok {
		_spec.SetField(module.FieldResources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, module.FieldResources, value)
		})
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(module.FieldResources, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedHours(); ok {
		_spec.SetField(module.FieldEstimatedHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedHours(); ok {
		_spec.AddField(module.FieldEstimatedHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(module.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(module.FieldXpReward, field.TypeInt, value)
	}
	if _u.mutation.SkillCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   module.SkillTable,
			Columns: []string{module.SkillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SkillIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   module.SkillTable,
			Columns: []string{module.SkillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Module{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{module.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
