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

// DiscussionUpdate is the builder for updating Discussion entities.
type DiscussionUpdate struct {
	config
	hooks    []Hook
	mutation *DiscussionMutation
}

// Where appends a list predicates to the DiscussionUpdate builder.
func (_u *DiscussionUpdate) Where(ps ...predicate.Discussion) *DiscussionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *DiscussionUpdate) SetUserName(v string) *DiscussionUpdate {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableUserName(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DiscussionUpdate) SetTitle(v string) *DiscussionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableTitle(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DiscussionUpdate) SetContent(v string) *DiscussionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableContent(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// AddReplyIDs adds the "replies" edge to the Reply entity by IDs.
func (_u *DiscussionUpdate) AddReplyIDs(ids ...string) *DiscussionUpdate {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the Reply entity.
func (_u *DiscussionUpdate) AddReplies(v ...*Reply) *DiscussionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// Mutation returns the DiscussionMutation object of the builder.
func (_u *DiscussionUpdate) Mutation() *DiscussionMutation {
	return _u.mutation
}

// ClearReplies clears all "replies" edges to the Reply entity.
func (_u *DiscussionUpdate) ClearReplies() *DiscussionUpdate {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to Reply entities by IDs.
func (_u *DiscussionUpdate) RemoveReplyIDs(ids ...string) *DiscussionUpdate {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to Reply entities.
func (_u *DiscussionUpdate) RemoveReplies(v ...*Reply) *DiscussionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiscussionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscussionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiscussionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscussionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscussionUpdate) check() error {
	if v, ok := _u.mutation.UserName(); ok {
		if err := discussion.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "Discussion.user_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := discussion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Discussion.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := discussion.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Discussion.content": %w`, err)}
		}
	}
	return nil
}

func (_u *DiscussionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discussion.Table, discussion.Columns, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(discussion.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(discussion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(discussion.FieldContent, field.TypeString, value)
	}
	if _u.mutation.RepliesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discussion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiscussionUpdateOne is the builder for updating a single Discussion entity.
type DiscussionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiscussionMutation
}

// SetUserName sets the "user_name" field.
func (_u *DiscussionUpdateOne) SetUserName(v string) *DiscussionUpdateOne {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableUserName(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DiscussionUpdateOne) SetTitle(v string) *DiscussionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableTitle(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DiscussionUpdateOne) SetContent(v string) *DiscussionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableContent(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// AddReplyIDs adds the "replies" edge to the Reply entity by IDs.
func (_u *DiscussionUpdateOne) AddReplyIDs(ids ...string) *DiscussionUpdateOne {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the Reply entity.
func (_u *DiscussionUpdateOne) AddReplies(v ...*Reply) *DiscussionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// Mutation returns the DiscussionMutation object of the builder.
func (_u *DiscussionUpdateOne) Mutation() *DiscussionMutation {
	return _u.mutation
}

// ClearReplies clears all "replies" edges to the Reply entity.
func (_u *DiscussionUpdateOne) ClearReplies() *DiscussionUpdateOne {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to Reply entities by IDs.
func (_u *DiscussionUpdateOne) RemoveReplyIDs(ids ...string) *DiscussionUpdateOne {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to Reply entities.
func (_u *DiscussionUpdateOne) RemoveReplies(v ...*Reply) *DiscussionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// Where appends a list predicates to the DiscussionUpdate builder.
func (_u *DiscussionUpdateOne) Where(ps ...predicate.Discussion) *DiscussionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiscussionUpdateOne) Select(field string, fields ...string) *DiscussionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Discussion entity.
func (_u *DiscussionUpdateOne) Save(ctx context.Context) (*Discussion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscussionUpdateOne) SaveX(ctx context.Context) *Discussion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiscussionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscussionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscussionUpdateOne) check() error {
	if v, ok := _u.mutation.UserName(); ok {
		if err := discussion.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "Discussion.user_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := discussion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Discussion.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := discussion.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Discussion.content": %w`, err)}
		}
	}
	return nil
}

func (_u *DiscussionUpdateOne) sqlSave(ctx context.Context) (_node *Discussion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discussion.Table, discussion.Columns, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Discussion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, discussion.FieldID)
		for _, f := range fields {
			if !discussion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != discussion.FieldID {
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
		_spec.SetField(discussion.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(discussion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(discussion.FieldContent, field.TypeString, value)
	}
	if _u.mutation.RepliesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Discussion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discussion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
