// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nishantk77/skillpath-ascend-together/ent/discussion"
	"github.com/nishantk77/skillpath-ascend-together/ent/predicate"
	"github.com/nishantk77/skillpath-ascend-together/ent/reply"
)

// ReplyUpdate is the builder for updating Reply entities.
type ReplyUpdate struct {
	config
	hooks    []Hook
	mutation *ReplyMutation
}

// Where appends a list predicates to the ReplyUpdate builder.
func (_u *ReplyUpdate) Where(ps ...predicate.Reply) *ReplyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *ReplyUpdate) SetUserName(v string) *ReplyUpdate {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *ReplyUpdate) SetNillableUserName(v *string) *ReplyUpdate {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReplyUpdate) SetContent(v string) *ReplyUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReplyUpdate) SetNillableContent(v *string) *ReplyUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetDiscussionID sets the "discussion" edge to the Discussion entity by ID.
func (_u *ReplyUpdate) SetDiscussionID(id string) *ReplyUpdate {
	_u.mutation.SetDiscussionID(id)
	return _u
}

// SetDiscussion sets the "discussion" edge to the Discussion entity.
func (_u *ReplyUpdate) SetDiscussion(v *Discussion) *ReplyUpdate {
	return _u.SetDiscussionID(v.ID)
}

// Mutation returns the ReplyMutation object of the builder.
func (_u *ReplyUpdate) Mutation() *ReplyMutation {
	return _u.mutation
}

// ClearDiscussion clears the "discussion" edge to the Discussion entity.
func (_u *ReplyUpdate) ClearDiscussion() *ReplyUpdate {
	_u.mutation.ClearDiscussion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReplyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReplyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReplyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReplyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReplyUpdate) check() error {
	if v, ok := _u.mutation.UserName(); ok {
		if err := reply.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "Reply.user_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := reply.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Reply.content": %w`, err)}
		}
	}
	if _u.mutation.DiscussionCleared() && len(_u.mutation.DiscussionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reply.discussion"`)
	}
	return nil
}

func (_u *ReplyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reply.Table, reply.Columns, sqlgraph.NewFieldSpec(reply.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(reply.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(reply.FieldContent, field.TypeString, value)
	}
	if _u.mutation.DiscussionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reply.DiscussionTable,
			Columns: []string{reply.DiscussionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiscussionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reply.DiscussionTable,
			Columns: []string{reply.DiscussionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reply.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReplyUpdateOne is the builder for updating a single Reply entity.
type ReplyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReplyMutation
}

// SetUserName sets the "user_name" field.
func (_u *ReplyUpdateOne) SetUserName(v string) *ReplyUpdateOne {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *ReplyUpdateOne) SetNillableUserName(v *string) *ReplyUpdateOne {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReplyUpdateOne) SetContent(v string) *ReplyUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReplyUpdateOne) SetNillableContent(v *string) *ReplyUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetDiscussionID sets the "discussion" edge to the Discussion entity by ID.
func (_u *ReplyUpdateOne) SetDiscussionID(id string) *ReplyUpdateOne {
	_u.mutation.SetDiscussionID(id)
	return _u
}

// SetDiscussion sets the "discussion" edge to the Discussion entity.
func (_u *ReplyUpdateOne) SetDiscussion(v *Discussion) *ReplyUpdateOne {
	return _u.SetDiscussionID(v.ID)
}

// Mutation returns the ReplyMutation object of the builder.
func (_u *ReplyUpdateOne) Mutation() *ReplyMutation {
	return _u.mutation
}

// ClearDiscussion clears the "discussion" edge to the Discussion entity.
func (_u *ReplyUpdateOne) ClearDiscussion() *ReplyUpdateOne {
	_u.mutation.ClearDiscussion()
	return _u
}

// Where appends a list predicates to the ReplyUpdate builder.
func (_u *ReplyUpdateOne) Where(ps ...predicate.Reply) *ReplyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReplyUpdateOne) Select(field string, fields ...string) *ReplyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reply entity.
func (_u *ReplyUpdateOne) Save(ctx context.Context) (*Reply, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReplyUpdateOne) SaveX(ctx context.Context) *Reply {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReplyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReplyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReplyUpdateOne) check() error {
	if v, ok := _u.mutation.UserName(); ok {
		if err := reply.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "Reply.user_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := reply.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Reply.content": %w`, err)}
		}
	}
	if _u.mutation.DiscussionCleared() && len(_u.mutation.DiscussionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reply.discussion"`)
	}
	return nil
}

func (_u *ReplyUpdateOne) sqlSave(ctx context.Context) (_node *Reply, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reply.Table, reply.Columns, sqlgraph.NewFieldSpec(reply.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reply.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reply.FieldID)
		for _, f := range fields {
			if !reply.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reply.FieldID {
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
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(reply.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(reply.FieldContent, field.TypeString, value)
	}
	if _u.mutation.DiscussionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reply.DiscussionTable,
			Columns: []string{reply.DiscussionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiscussionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reply.DiscussionTable,
			Columns: []string{reply.DiscussionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Reply{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reply.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
