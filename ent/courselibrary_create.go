// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jcmontoya/omnilearn/ent/courselibrary"
)

// CourseLibraryCreate is the builder for creating a CourseLibrary entity.
type CourseLibraryCreate struct {
	config
	mutation *CourseLibraryMutation
	hooks    []Hook
}

// SetPayload sets the "payload" field.
func (_c *CourseLibraryCreate) SetPayload(v []byte) *CourseLibraryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSavedAt sets the "saved_at" field.
func (_c *CourseLibraryCreate) SetSavedAt(v time.Time) *CourseLibraryCreate {
	_c.mutation.SetSavedAt(v)
	return _c
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_c *CourseLibraryCreate) SetNillableSavedAt(v *time.Time) *CourseLibraryCreate {
	if v != nil {
		_c.SetSavedAt(*v)
	}
	return _c
}

// Mutation returns the CourseLibraryMutation object of the builder.
func (_c *CourseLibraryCreate) Mutation() *CourseLibraryMutation {
	return _c.mutation
}

// Save creates the CourseLibrary in the database.
func (_c *CourseLibraryCreate) Save(ctx context.Context) (*CourseLibrary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseLibraryCreate) SaveX(ctx context.Context) *CourseLibrary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseLibraryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseLibraryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseLibraryCreate) defaults() {
	if _, ok := _c.mutation.SavedAt(); !ok {
		v := courselibrary.DefaultSavedAt()
		_c.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseLibraryCreate) check() error {
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "CourseLibrary.payload"`)}
	}
	if _, ok := _c.mutation.SavedAt(); !ok {
		return &ValidationError{Name: "saved_at", err: errors.New(`ent: missing required field "CourseLibrary.saved_at"`)}
	}
	return nil
}

func (_c *CourseLibraryCreate) sqlSave(ctx context.Context) (*CourseLibrary, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CourseLibraryCreate) createSpec() (*CourseLibrary, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseLibrary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(courselibrary.Table, sqlgraph.NewFieldSpec(courselibrary.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(courselibrary.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.SavedAt(); ok {
		_spec.SetField(courselibrary.FieldSavedAt, field.TypeTime, value)
		_node.SavedAt = value
	}
	return _node, _spec
}

// CourseLibraryCreateBulk is the builder for creating many CourseLibrary entities in bulk.
type CourseLibraryCreateBulk struct {
	config
	err      error
	builders []*CourseLibraryCreate
}

// Save creates the CourseLibrary entities in the database.
func (_c *CourseLibraryCreateBulk) Save(ctx context.Context) ([]*CourseLibrary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseLibrary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseLibraryMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *CourseLibraryCreateBulk) SaveX(ctx context.Context) []*CourseLibrary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseLibraryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseLibraryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
