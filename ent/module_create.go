// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nishantk77/skillpath-ascend-together/ent/module"
	"github.com/nishantk77/skillpath-ascend-together/ent/skill"
	"github.com/nishantk77/skillpath-ascend-together/internal/catalog"
)

// ModuleCreate is the builder for creating a Module entity.
type ModuleCreate struct {
	config
	mutation *ModuleMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ModuleCreate) SetTitle(v string) *ModuleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ModuleCreate) SetDescription(v string) *ModuleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ModuleCreate) SetNillableDescription(v *string) *ModuleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetWeek sets the "week" field.
func (_c *ModuleCreate) SetWeek(v int) *ModuleCreate {
	_c.mutation.SetWeek(v)
	return _c
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_c *ModuleCreate) SetNillableWeek(v *int) *ModuleCreate {
	if v != nil {
		_c.SetWeek(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ModuleCreate) SetStatus(v string) *ModuleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ModuleCreate) SetNillableStatus(v *string) *ModuleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResources sets the "resources" field.
func (_c *ModuleCreate) SetResources(v []catalog.Resource) *ModuleCreate {
	_c.mutation.SetResources(v)
	return _c
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_c *ModuleCreate) SetEstimatedHours(v int) *ModuleCreate {
	_c.mutation.SetEstimatedHours(v)
	return _c
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_c *ModuleCreate) SetNillableEstimatedHours(v *int) *ModuleCreate {
	if v != nil {
		_c.SetEstimatedHours(*v)
	}
	return _c
}

// SetXpReward sets the "xp_reward" field.
func (_c *ModuleCreate) SetXpReward(v int) *ModuleCreate {
	_c.mutation.SetXpReward(v)
	return _c
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_c *ModuleCreate) SetNillableXpReward(v *int) *ModuleCreate {
	if v != nil {
		_c.SetXpReward(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModuleCreate) SetID(v string) *ModuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSkillID sets the "skill" edge to the Skill entity by ID.
func (_c *ModuleCreate) SetSkillID(id string) *ModuleCreate {
	_c.mutation.SetSkillID(id)
	return _c
}

// SetSkill sets the "skill" edge to the Skill entity.
func (_c *ModuleCreate) SetSkill(v *Skill) *ModuleCreate {
	return _c.SetSkillID(v.ID)
}

// Mutation returns the ModuleMutation object of the builder.
func (_c *ModuleCreate) Mutation() *ModuleMutation {
	return _c.mutation
}

// Save creates the Module in the database.
func (_c *ModuleCreate) Save(ctx context.Context) (*Module, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModuleCreate) SaveX(ctx context.Context) *Module {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModuleCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := module.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Week(); !ok {
		v := module.DefaultWeek
		_c.mutation.SetWeek(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := module.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EstimatedHours(); !ok {
		v := module.DefaultEstimatedHours
		_c.mutation.SetEstimatedHours(v)
	}
	if _, ok := _c.mutation.XpReward(); !ok {
		v := module.DefaultXpReward
		_c.mutation.SetXpReward(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModuleCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Module.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := module.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Module.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Module.description"`)}
	}
	if _, ok := _c.mutation.Week(); !ok {
		return &ValidationError{Name: "week", err: errors.New(`ent: missing required field "Module.week"`)}
	}
	if v, ok := _c.mutation.Week(); ok {
		if err := module.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "Module.week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Module.status"`)}
	}
	if _, ok := _c.mutation.EstimatedHours(); !ok {
		return &ValidationError{Name: "estimated_hours", err: errors.New(`ent: missing required field "Module.estimated_hours"`)}
	}
	if _, ok := _c.mutation.XpReward(); !ok {
		return &ValidationError{Name: "xp_reward", err: errors.New(`ent: missing required field "Module.xp_reward"`)}
	}
	if v, ok := _c.mutation.XpReward(); ok {
		if err := module.XpRewardValidator(v); err != nil {
			return &ValidationError{Name: "xp_reward", err: fmt.Errorf(`ent: validator failed for field "Module.xp_reward": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := module.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Module.id": %w`, err)}
		}
	}
	if len(_c.mutation.SkillIDs()) == 0 {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required edge "Module.skill"`)}
	}
	return nil
}

func (_c *ModuleCreate) sqlSave(ctx context.Context) (*Module, error) {
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
			return nil, fmt.Errorf("unexpected Module.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModuleCreate) createSpec() (*Module, *sqlgraph.CreateSpec) {
	var (
		_node = &Module{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(module.Table, sqlgraph.NewFieldSpec(module.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(module.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(module.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Week(); ok {
		_spec.SetField(module.FieldWeek, field.TypeInt, value)
		_node.Week = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(module.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Resources(); ok {
		_spec.SetField(module.FieldResources, field.TypeJSON, value)
		_node.Resources = value
	}
	if value, ok := _c.mutation.EstimatedHours(); ok {
		_spec.SetField(module.FieldEstimatedHours, field.TypeInt, value)
		_node.EstimatedHours = value
	}
	if value, ok := _c.mutation.XpReward(); ok {
		_spec.SetField(module.FieldXpReward, field.TypeInt, value)
		_node.XpReward = value
	}
	if nodes := _c.mutation.SkillIDs(); len(nodes) > 0 {
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
		_node.skill_modules = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ModuleCreateBulk is the builder for creating many Module entities in bulk.
type ModuleCreateBulk struct {
	config
	err      error
	builders []*ModuleCreate
}

// Save creates the Module entities in the database.
func (_c *ModuleCreateBulk) Save(ctx context.Context) ([]*Module, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Module, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModuleMutation)
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
func (_c *ModuleCreateBulk) SaveX(ctx context.Context) []*Module {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
