// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dibiaa/fms-tracker/gen/ent/holiday"
)

// HolidayCreate is the builder for creating a Holiday entity.
type HolidayCreate struct {
	config
	mutation *HolidayMutation
	hooks    []Hook
}

// SetHolidayDate sets the "holiday_date" field.
func (_c *HolidayCreate) SetHolidayDate(v time.Time) *HolidayCreate {
	_c.mutation.SetHolidayDate(v)
	return _c
}

// SetName sets the "name" field.
func (_c *HolidayCreate) SetName(v string) *HolidayCreate {
	_c.mutation.SetName(v)
	return _c
}

// Mutation returns the HolidayMutation object of the builder.
func (_c *HolidayCreate) Mutation() *HolidayMutation {
	return _c.mutation
}

// Save creates the Holiday in the database.
func (_c *HolidayCreate) Save(ctx context.Context) (*Holiday, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HolidayCreate) SaveX(ctx context.Context) *Holiday {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HolidayCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HolidayCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HolidayCreate) check() error {
	if _, ok := _c.mutation.HolidayDate(); !ok {
		return &ValidationError{Name: "holiday_date", err: errors.New(`ent: missing required field "Holiday.holiday_date"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Holiday.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := holiday.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Holiday.name": %w`, err)}
		}
	}
	return nil
}

func (_c *HolidayCreate) sqlSave(ctx context.Context) (*Holiday, error) {
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

func (_c *HolidayCreate) createSpec() (*Holiday, *sqlgraph.CreateSpec) {
	var (
		_node = &Holiday{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(holiday.Table, sqlgraph.NewFieldSpec(holiday.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.HolidayDate(); ok {
		_spec.SetField(holiday.FieldHolidayDate, field.TypeTime, value)
		_node.HolidayDate = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(holiday.FieldName, field.TypeString, value)
		_node.Name = value
	}
	return _node, _spec
}

// HolidayCreateBulk is the builder for creating many Holiday entities in bulk.
type HolidayCreateBulk struct {
	config
	err      error
	builders []*HolidayCreate
}

// Save creates the Holiday entities in the database.
func (_c *HolidayCreateBulk) Save(ctx context.Context) ([]*Holiday, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Holiday, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HolidayMutation)
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
func (_c *HolidayCreateBulk) SaveX(ctx context.Context) []*Holiday {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HolidayCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HolidayCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
