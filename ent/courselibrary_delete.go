// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jcmontoya/omnilearn/ent/courselibrary"
	"github.com/jcmontoya/omnilearn/ent/predicate"
)

// CourseLibraryDelete is the builder for deleting a CourseLibrary entity.
type CourseLibraryDelete struct {
	config
	hooks    []Hook
	mutation *CourseLibraryMutation
}

// Where appends a list predicates to the CourseLibraryDelete builder.
func (_d *CourseLibraryDelete) Where(ps ...predicate.CourseLibrary) *CourseLibraryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CourseLibraryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CourseLibraryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CourseLibraryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(courselibrary.Table, sqlgraph.NewFieldSpec(courselibrary.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CourseLibraryDeleteOne is the builder for deleting a single CourseLibrary entity.
type CourseLibraryDeleteOne struct {
	_d *CourseLibraryDelete
}

// Where appends a list predicates to the CourseLibraryDelete builder.
func (_d *CourseLibraryDeleteOne) Where(ps ...predicate.CourseLibrary) *CourseLibraryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CourseLibraryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{courselibrary.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CourseLibraryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
