// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dibiaa/fms-tracker/gen/ent/stepconfig"
)

// StepConfigCreate is the builder for creating a StepConfig entity.
type StepConfigCreate struct {
	config
	mutation *StepConfigMutation
	hooks    []Hook
}

// SetStep sets the "step" field.
func (_c *StepConfigCreate) SetStep(v int) *StepConfigCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *StepConfigCreate) SetStepName(v string) *StepConfigCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetDoerEmails sets the "doer_emails" field.
func (_c *StepConfigCreate) SetDoerEmails(v string) *StepConfigCreate {
	_c.mutation.SetDoerEmails(v)
	return _c
}

// SetNillableDoerEmails sets the "doer_emails" field if the given value is not nil.
func (_c *StepConfigCreate) SetNillableDoerEmails(v *string) *StepConfigCreate {
	if v != nil {
		_c.SetDoerEmails(*v)
	}
	return _c
}

// SetVisibleColumns sets the "visible_columns" field.
func (_c *StepConfigCreate) SetVisibleColumns(v string) *StepConfigCreate {
	_c.mutation.SetVisibleColumns(v)
	return _c
}

// SetNillableVisibleColumns sets the "visible_columns" field if the given value is not nil.
func (_c *StepConfigCreate) SetNillableVisibleColumns(v *string) *StepConfigCreate {
	if v != nil {
		_c.SetVisibleColumns(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StepConfigCreate) SetUpdatedAt(v time.Time) *StepConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StepConfigCreate) SetNillableUpdatedAt(v *time.Time) *StepConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the StepConfigMutation object of the builder.
func (_c *StepConfigCreate) Mutation() *StepConfigMutation {
	return _c.mutation
}

// Save creates the StepConfig in the database.
func (_c *StepConfigCreate) Save(ctx context.Context) (*StepConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepConfigCreate) SaveX(ctx context.Context) *StepConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepConfigCreate) defaults() {
	if _, ok := _c.mutation.DoerEmails(); !ok {
		v := stepconfig.DefaultDoerEmails
		_c.mutation.SetDoerEmails(v)
	}
	if _, ok := _c.mutation.VisibleColumns(); !ok {
		v := stepconfig.DefaultVisibleColumns
		_c.mutation.SetVisibleColumns(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stepconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepConfigCreate) check() error {
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "StepConfig.step"`)}
	}
	if v, ok := _c.mutation.Step(); ok {
		if err := stepconfig.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "StepConfig.step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepName(); !ok {
		return &ValidationError{Name: "step_name", err: errors.New(`ent: missing required field "StepConfig.step_name"`)}
	}
	if v, ok := _c.mutation.StepName(); ok {
		if err := stepconfig.StepNameValidator(v); err != nil {
			return &ValidationError{Name: "step_name", err: fmt.Errorf(`ent: validator failed for field "StepConfig.step_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DoerEmails(); !ok {
		return &ValidationError{Name: "doer_emails", err: errors.New(`ent: missing required field "StepConfig.doer_emails"`)}
	}
	if _, ok := _c.mutation.VisibleColumns(); !ok {
		return &ValidationError{Name: "visible_columns", err: errors.New(`ent: missing required field "StepConfig.visible_columns"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StepConfig.updated_at"`)}
	}
	return nil
}

func (_c *StepConfigCreate) sqlSave(ctx context.Context) (*StepConfig, error) {
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

func (_c *StepConfigCreate) createSpec() (*StepConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &StepConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepconfig.Table, sqlgraph.NewFieldSpec(stepconfig.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(stepconfig.FieldStep, field.TypeInt, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(stepconfig.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.DoerEmails(); ok {
		_spec.SetField(stepconfig.FieldDoerEmails, field.TypeString, value)
		_node.DoerEmails = value
	}
	if value, ok := _c.mutation.VisibleColumns(); ok {
		_spec.SetField(stepconfig.FieldVisibleColumns, field.TypeString, value)
		_node.VisibleColumns = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stepconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StepConfigCreateBulk is the builder for creating many StepConfig entities in bulk.
type StepConfigCreateBulk struct {
	config
	err      error
	builders []*StepConfigCreate
}

// Save creates the StepConfig entities in the database.
func (_c *StepConfigCreateBulk) Save(ctx context.Context) ([]*StepConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepConfigMutation)
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
func (_c *StepConfigCreateBulk) SaveX(ctx context.Context) []*StepConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
