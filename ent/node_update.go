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
	"github.com/abhisek/autodidact/ent/node"
	"github.com/abhisek/autodidact/ent/predicate"
)

// NodeUpdate is the builder for updating Node entities.
type NodeUpdate struct {
	config
	hooks    []Hook
	mutation *NodeMutation
}

// Where appends a list predicates to the NodeUpdate builder.
func (_u *NodeUpdate) Where(ps ...predicate.Node) *NodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *NodeUpdate) SetProjectID(v string) *NodeUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableProjectID(v *string) *NodeUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetOriginalID sets the "original_id" field.
func (_u *NodeUpdate) SetOriginalID(v string) *NodeUpdate {
	_u.mutation.SetOriginalID(v)
	return _u
}

// SetNillableOriginalID sets the "original_id" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableOriginalID(v *string) *NodeUpdate {
	if v != nil {
		_u.SetOriginalID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *NodeUpdate) SetLabel(v string) *NodeUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableLabel(v *string) *NodeUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *NodeUpdate) SetSummary(v string) *NodeUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableSummary(v *string) *NodeUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetObjectives sets the "objectives" field.
func (_u *NodeUpdate) SetObjectives(v []string) *NodeUpdate {
	_u.mutation.SetObjectives(v)
	return _u
}

// AppendObjectives appends value to the "objectives" field.
func (_u *NodeUpdate) AppendObjectives(v []string) *NodeUpdate {
	_u.mutation.AppendObjectives(v)
	return _u
}

// ClearObjectives clears the value of the "objectives" field.
func (_u *NodeUpdate) ClearObjectives() *NodeUpdate {
	_u.mutation.ClearObjectives()
	return _u
}

// SetPosition sets the "position" field.
func (_u *NodeUpdate) SetPosition(v int) *NodeUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *NodeUpdate) SetNillablePosition(v *int) *NodeUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *NodeUpdate) AddPosition(v int) *NodeUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *NodeUpdate) SetMastery(v float64) *NodeUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableMastery(v *float64) *NodeUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *NodeUpdate) AddMastery(v float64) *NodeUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// Mutation returns the NodeMutation object of the builder.
func (_u *NodeUpdate) Mutation() *NodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeUpdate) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := node.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "Node.project_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalID(); ok {
		if err := node.OriginalIDValidator(v); err != nil {
			return &ValidationError{Name: "original_id", err: fmt.Errorf(`ent: validator failed for field "Node.original_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := node.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Node.label": %w`, err)}
		}
	}
	return nil
}

func (_u *NodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(node.Table, node.Columns, sqlgraph.NewFieldSpec(node.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(node.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalID(); ok {
		_spec.SetField(node.FieldOriginalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(node.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(node.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Objectives(); ok {
		_spec.SetField(node.FieldObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, node.FieldObjectives, value)
		})
	}
	if _u.mutation.ObjectivesCleared() {
		_spec.ClearField(node.FieldObjectives, field.TypeJSON)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(node.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(node.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(node.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(node.FieldMastery, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{node.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NodeUpdateOne is the builder for updating a single Node entity.
type NodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NodeMutation
}

// SetProjectID sets the "project_id" field.
func (_u *NodeUpdateOne) SetProjectID(v string) *NodeUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableProjectID(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetOriginalID sets the "original_id" field.
func (_u *NodeUpdateOne) SetOriginalID(v string) *NodeUpdateOne {
	_u.mutation.SetOriginalID(v)
	return _u
}

// SetNillableOriginalID sets the "original_id" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableOriginalID(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetOriginalID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *NodeUpdateOne) SetLabel(v string) *NodeUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableLabel(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *NodeUpdateOne) SetSummary(v string) *NodeUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableSummary(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetObjectives sets the "objectives" field.
func (_u *NodeUpdateOne) SetObjectives(v []string) *NodeUpdateOne {
	_u.mutation.SetObjectives(v)
	return _u
}

// AppendObjectives appends value to the "objectives" field.
func (_u *NodeUpdateOne) AppendObjectives(v []string) *NodeUpdateOne {
	_u.mutation.AppendObjectives(v)
	return _u
}

// ClearObjectives clears the value of the "objectives" field.
func (_u *NodeUpdateOne) ClearObjectives() *NodeUpdateOne {
	_u.mutation.ClearObjectives()
	return _u
}

// SetPosition sets the "position" field.
func (_u *NodeUpdateOne) SetPosition(v int) *NodeUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillablePosition(v *int) *NodeUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *NodeUpdateOne) AddPosition(v int) *NodeUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *NodeUpdateOne) SetMastery(v float64) *NodeUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableMastery(v *float64) *NodeUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *NodeUpdateOne) AddMastery(v float64) *NodeUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// Mutation returns the NodeMutation object of the builder.
func (_u *NodeUpdateOne) Mutation() *NodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the NodeUpdate builder.
func (_u *NodeUpdateOne) Where(ps ...predicate.Node) *NodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NodeUpdateOne) Select(field string, fields ...string) *NodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Node entity.
func (_u *NodeUpdateOne) Save(ctx context.Context) (*Node, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeUpdateOne) SaveX(ctx context.Context) *Node {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeUpdateOne) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := node.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "Node.project_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalID(); ok {
		if err := node.OriginalIDValidator(v); err != nil {
			return &ValidationError{Name: "original_id", err: fmt.Errorf(`ent: validator failed for field "Node.original_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := node.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Node.label": %w`, err)}
		}
	}
	return nil
}

func (_u *NodeUpdateOne) sqlSave(ctx context.Context) (_node *Node, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(node.Table, node.Columns, sqlgraph.NewFieldSpec(node.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Node.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, node.FieldID)
		for _, f := range fields {
			if !node.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != node.FieldID {
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
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(node.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalID(); ok {
		_spec.SetField(node.FieldOriginalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(node.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(node.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Objectives(); ok {
		_spec.SetField(node.FieldObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, node.FieldObjectives, value)
		})
	}
	if _u.mutation.ObjectivesCleared() {
		_spec.ClearField(node.FieldObjectives, field.TypeJSON)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(node.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(node.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(node.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(node.FieldMastery, field.TypeFloat64, value)
	}
	_node = &Node{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{node.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
