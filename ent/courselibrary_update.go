// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jcmontoya/omnilearn/ent/courselibrary"
	"github.com/jcmontoya/omnilearn/ent/predicate"
)

// CourseLibraryUpdate is the builder for updating CourseLibrary entities.
type CourseLibraryUpdate struct {
	config
	hooks    []Hook
	mutation *CourseLibraryMutation
}

// Where appends a list predicates to the CourseLibraryUpdate builder.
func (_u *CourseLibraryUpdate) Where(ps ...predicate.CourseLibrary) *CourseLibraryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CourseLibraryUpdate) SetPayload(v []byte) *CourseLibraryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the CourseLibraryMutation object of the builder.
func (_u *CourseLibraryUpdate) Mutation() *CourseLibraryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseLibraryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseLibraryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseLibraryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseLibraryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CourseLibraryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(courselibrary.Table, courselibrary.Columns, sqlgraph.NewFieldSpec(courselibrary.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(courselibrary.FieldPayload, field.TypeBytes, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courselibrary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseLibraryUpdateOne is the builder for updating a single CourseLibrary entity.
type CourseLibraryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseLibraryMutation
}

// SetPayload sets the "payload" field.
func (_u *CourseLibraryUpdateOne) SetPayload(v []byte) *CourseLibraryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the CourseLibraryMutation object of the builder.
func (_u *CourseLibraryUpdateOne) Mutation() *CourseLibraryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseLibraryUpdate builder.
func (_u *CourseLibraryUpdateOne) Where(ps ...predicate.CourseLibrary) *CourseLibraryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseLibraryUpdateOne) Select(field string, fields ...string) *CourseLibraryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseLibrary entity.
func (_u *CourseLibraryUpdateOne) Save(ctx context.Context) (*CourseLibrary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseLibraryUpdateOne) SaveX(ctx context.Context) *CourseLibrary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseLibraryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseLibraryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CourseLibraryUpdateOne) sqlSave(ctx context.Context) (_node *CourseLibrary, err error) {
	_spec := sqlgraph.NewUpdateSpec(courselibrary.Table, courselibrary.Columns, sqlgraph.NewFieldSpec(courselibrary.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseLibrary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courselibrary.FieldID)
		for _, f := range fields {
			if !courselibrary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != courselibrary.FieldID {
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
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(courselibrary.FieldPayload, field.TypeBytes, value)
	}
	_node = &CourseLibrary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courselibrary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
