// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nishantk77/skillpath-ascend-together/ent/discussion"
	"github.com/nishantk77/skillpath-ascend-together/ent/reply"
)

// DiscussionCreate is the builder for creating a Discussion entity.
type DiscussionCreate struct {
	config
	mutation *DiscussionMutation
	hooks    []Hook
}

// SetSkillID sets the "skill_id" field.
func (_c *DiscussionCreate) SetSkillID(v string) *DiscussionCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *DiscussionCreate) SetModuleID(v string) *DiscussionCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DiscussionCreate) SetUserID(v string) *DiscussionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUserName sets the "user_name" field.
func (_c *DiscussionCreate) SetUserName(v string) *DiscussionCreate {
	_c.mutation.SetUserName(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DiscussionCreate) SetTitle(v string) *DiscussionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *DiscussionCreate) SetContent(v string) *DiscussionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiscussionCreate) SetCreatedAt(v time.Time) *DiscussionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableCreatedAt(v *time.Time) *DiscussionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiscussionCreate) SetID(v string) *DiscussionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddReplyIDs adds the "replies" edge to the Reply entity by IDs.
func (_c *DiscussionCreate) AddReplyIDs(ids ...string) *DiscussionCreate {
	_c.mutation.AddReplyIDs(ids...)
	return _c
}

// AddReplies adds the "replies" edges to the Reply entity.
func (_c *DiscussionCreate) AddReplies(v ...*Reply) *DiscussionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReplyIDs(ids...)
}

// Mutation returns the DiscussionMutation object of the builder.
func (_c *DiscussionCreate) Mutation() *DiscussionMutation {
	return _c.mutation
}

// Save creates the Discussion in the database.
func (_c *DiscussionCreate) Save(ctx context.Context) (*Discussion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiscussionCreate) SaveX(ctx context.Context) *Discussion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscussionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscussionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiscussionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := discussion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiscussionCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "Discussion.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := discussion.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Discussion.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "Discussion.module_id"`)}
	}
	if v, ok := _c.mutation.ModuleID(); ok {
		if err := discussion.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "Discussion.module_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Discussion.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := discussion.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Discussion.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserName(); !ok {
		return &ValidationError{Name: "user_name", err: errors.New(`ent: missing required field "Discussion.user_name"`)}
	}
	if v, ok := _c.mutation.UserName(); ok {
		if err := discussion.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "Discussion.user_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Discussion.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := discussion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Discussion.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Discussion.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := discussion.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Discussion.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Discussion.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := discussion.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Discussion.id": %w`, err)}
		}
	}
	return nil
}

func (_c *DiscussionCreate) sqlSave(ctx context.Context) (*Discussion, error) {
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
			return nil, fmt.Errorf("unexpected Discussion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiscussionCreate) createSpec() (*Discussion, *sqlgraph.CreateSpec) {
	var (
		_node = &Discussion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(discussion.Table, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(discussion.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(discussion.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(discussion.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.UserName(); ok {
		_spec.SetField(discussion.FieldUserName, field.TypeString, value)
		_node.UserName = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(discussion.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(discussion.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(discussion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RepliesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.RepliesTable,
			Columns: []string{discussion.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reply.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DiscussionCreateBulk is the builder for creating many Discussion entities in bulk.
type DiscussionCreateBulk struct {
	config
	err      error
	builders []*DiscussionCreate
}

// Save creates the Discussion entities in the database.
func (_c *DiscussionCreateBulk) Save(ctx context.Context) ([]*Discussion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Discussion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiscussionMutation)
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
func (_c *DiscussionCreateBulk) SaveX(ctx context.Context) []*Discussion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscussionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscussionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
