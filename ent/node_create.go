// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/autodidact/ent/node"
)

// NodeCreate is the builder for creating a Node entity.
type NodeCreate struct {
	config
	mutation *NodeMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *NodeCreate) SetProjectID(v string) *NodeCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetOriginalID sets the "original_id" field.
func (_c *NodeCreate) SetOriginalID(v string) *NodeCreate {
	_c.mutation.SetOriginalID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *NodeCreate) SetLabel(v string) *NodeCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *NodeCreate) SetSummary(v string) *NodeCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *NodeCreate) SetNillableSummary(v *string) *NodeCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetObjectives sets the "objectives" field.
func (_c *NodeCreate) SetObjectives(v []string) *NodeCreate {
	_c.mutation.SetObjectives(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *NodeCreate) SetPosition(v int) *NodeCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *NodeCreate) SetNillablePosition(v *int) *NodeCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *NodeCreate) SetMastery(v float64) *NodeCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *NodeCreate) SetNillableMastery(v *float64) *NodeCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NodeCreate) SetID(v string) *NodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NodeCreate) SetNillableID(v *string) *NodeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the NodeMutation object of the builder.
func (_c *NodeCreate) Mutation() *NodeMutation {
	return _c.mutation
}

// Save creates the Node in the database.
func (_c *NodeCreate) Save(ctx context.Context) (*Node, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NodeCreate) SaveX(ctx context.Context) *Node {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NodeCreate) defaults() {
	if _, ok := _c.mutation.Summary(); !ok {
		v := node.DefaultSummary
		_c.mutation.SetSummary(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := node.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		v := node.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := node.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NodeCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Node.project_id"`)}
	}
	if v, ok := _c.mutation.ProjectID(); ok {
		if err := node.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "Node.project_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalID(); !ok {
		return &ValidationError{Name: "original_id", err: errors.New(`ent: missing required field "Node.original_id"`)}
	}
	if v, ok := _c.mutation.OriginalID(); ok {
		if err := node.OriginalIDValidator(v); err != nil {
			return &ValidationError{Name: "original_id", err: fmt.Errorf(`ent: validator failed for field "Node.original_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "Node.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := node.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Node.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Node.summary"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Node.position"`)}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "Node.mastery"`)}
	}
	return nil
}

func (_c *NodeCreate) sqlSave(ctx context.Context) (*Node, error) {
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
			return nil, fmt.Errorf("unexpected Node.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NodeCreate) createSpec() (*Node, *sqlgraph.CreateSpec) {
	var (
		_node = &Node{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(node.Table, sqlgraph.NewFieldSpec(node.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(node.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.OriginalID(); ok {
		_spec.SetField(node.FieldOriginalID, field.TypeString, value)
		_node.OriginalID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(node.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(node.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Objectives(); ok {
		_spec.SetField(node.FieldObjectives, field.TypeJSON, value)
		_node.Objectives = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(node.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(node.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	return _node, _spec
}

// NodeCreateBulk is the builder for creating many Node entities in bulk.
type NodeCreateBulk struct {
	config
	err      error
	builders []*NodeCreate
}

// Save creates the Node entities in the database.
func (_c *NodeCreateBulk) Save(ctx context.Context) ([]*Node, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Node, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NodeMutation)
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
func (_c *NodeCreateBulk) SaveX(ctx context.Context) []*Node {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
