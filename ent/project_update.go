// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/autodidact/ent/predicate"
	"github.com/abhisek/autodidact/ent/project"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ProjectUpdate) SetTopic(v string) *ProjectUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableTopic(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetReportPath sets the "report_path" field.
func (_u *ProjectUpdate) SetReportPath(v string) *ProjectUpdate {
	_u.mutation.SetReportPath(v)
	return _u
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableReportPath(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetReportPath(*v)
	}
	return _u
}

// SetGraphJSON sets the "graph_json" field.
func (_u *ProjectUpdate) SetGraphJSON(v string) *ProjectUpdate {
	_u.mutation.SetGraphJSON(v)
	return _u
}

// SetNillableGraphJSON sets the "graph_json" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableGraphJSON(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetGraphJSON(*v)
	}
	return _u
}

// SetFootnotesJSON sets the "footnotes_json" field.
func (_u *ProjectUpdate) SetFootnotesJSON(v string) *ProjectUpdate {
	_u.mutation.SetFootnotesJSON(v)
	return _u
}

// SetNillableFootnotesJSON sets the "footnotes_json" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableFootnotesJSON(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetFootnotesJSON(*v)
	}
	return _u
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := project.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Project.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(project.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReportPath(); ok {
		_spec.SetField(project.FieldReportPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.GraphJSON(); ok {
		_spec.SetField(project.FieldGraphJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.FootnotesJSON(); ok {
		_spec.SetField(project.FieldFootnotesJSON, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetTopic sets the "topic" field.
func (_u *ProjectUpdateOne) SetTopic(v string) *ProjectUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableTopic(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetReportPath sets the "report_path" field.
func (_u *ProjectUpdateOne) SetReportPath(v string) *ProjectUpdateOne {
	_u.mutation.SetReportPath(v)
	return _u
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableReportPath(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetReportPath(*v)
	}
	return _u
}

// SetGraphJSON sets the "graph_json" field.
func (_u *ProjectUpdateOne) SetGraphJSON(v string) *ProjectUpdateOne {
	_u.mutation.SetGraphJSON(v)
	return _u
}

// SetNillableGraphJSON sets the "graph_json" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableGraphJSON(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetGraphJSON(*v)
	}
	return _u
}

// SetFootnotesJSON sets the "footnotes_json" field.
func (_u *ProjectUpdateOne) SetFootnotesJSON(v string) *ProjectUpdateOne {
	_u.mutation.SetFootnotesJSON(v)
	return _u
}

// SetNillableFootnotesJSON sets the "footnotes_json" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableFootnotesJSON(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetFootnotesJSON(*v)
	}
	return _u
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := project.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Project.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(project.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReportPath(); ok {
		_spec.SetField(project.FieldReportPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.GraphJSON(); ok {
		_spec.SetField(project.FieldGraphJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.FootnotesJSON(); ok {
		_spec.SetField(project.FieldFootnotesJSON, field.TypeString, value)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
