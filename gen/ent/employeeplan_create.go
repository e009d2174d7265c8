// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dibiaa/fms-tracker/gen/ent/employeeplan"
	"github.com/google/uuid"
)

// EmployeePlanCreate is the builder for creating a EmployeePlan entity.
type EmployeePlanCreate struct {
	config
	mutation *EmployeePlanMutation
	hooks    []Hook
}

// SetEmployeeEmail sets the "employee_email" field.
func (_c *EmployeePlanCreate) SetEmployeeEmail(v string) *EmployeePlanCreate {
	_c.mutation.SetEmployeeEmail(v)
	return _c
}

// SetPlanDate sets the "plan_date" field.
func (_c *EmployeePlanCreate) SetPlanDate(v time.Time) *EmployeePlanCreate {
	_c.mutation.SetPlanDate(v)
	return _c
}

// SetPlannedCount sets the "planned_count" field.
func (_c *EmployeePlanCreate) SetPlannedCount(v int) *EmployeePlanCreate {
	_c.mutation.SetPlannedCount(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EmployeePlanCreate) SetID(v uuid.UUID) *EmployeePlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmployeePlanCreate) SetNillableID(v *uuid.UUID) *EmployeePlanCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EmployeePlanMutation object of the builder.
func (_c *EmployeePlanCreate) Mutation() *EmployeePlanMutation {
	return _c.mutation
}

// Save creates the EmployeePlan in the database.
func (_c *EmployeePlanCreate) Save(ctx context.Context) (*EmployeePlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmployeePlanCreate) SaveX(ctx context.Context) *EmployeePlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmployeePlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmployeePlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmployeePlanCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := employeeplan.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmployeePlanCreate) check() error {
	if _, ok := _c.mutation.EmployeeEmail(); !ok {
		return &ValidationError{Name: "employee_email", err: errors.New(`ent: missing required field "EmployeePlan.employee_email"`)}
	}
	if v, ok := _c.mutation.EmployeeEmail(); ok {
		if err := employeeplan.EmployeeEmailValidator(v); err != nil {
			return &ValidationError{Name: "employee_email", err: fmt.Errorf(`ent: validator failed for field "EmployeePlan.employee_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanDate(); !ok {
		return &ValidationError{Name: "plan_date", err: errors.New(`ent: missing required field "EmployeePlan.plan_date"`)}
	}
	if _, ok := _c.mutation.PlannedCount(); !ok {
		return &ValidationError{Name: "planned_count", err: errors.New(`ent: missing required field "EmployeePlan.planned_count"`)}
	}
	if v, ok := _c.mutation.PlannedCount(); ok {
		if err := employeeplan.PlannedCountValidator(v); err != nil {
			return &ValidationError{Name: "planned_count", err: fmt.Errorf(`ent: validator failed for field "EmployeePlan.planned_count": %w`, err)}
		}
	}
	return nil
}

func (_c *EmployeePlanCreate) sqlSave(ctx context.Context) (*EmployeePlan, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmployeePlanCreate) createSpec() (*EmployeePlan, *sqlgraph.CreateSpec) {
	var (
		_node = &EmployeePlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(employeeplan.Table, sqlgraph.NewFieldSpec(employeeplan.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EmployeeEmail(); ok {
		_spec.SetField(employeeplan.FieldEmployeeEmail, field.TypeString, value)
		_node.EmployeeEmail = value
	}
	if value, ok := _c.mutation.PlanDate(); ok {
		_spec.SetField(employeeplan.FieldPlanDate, field.TypeTime, value)
		_node.PlanDate = value
	}
	if value, ok := _c.mutation.PlannedCount(); ok {
		_spec.SetField(employeeplan.FieldPlannedCount, field.TypeInt, value)
		_node.PlannedCount = value
	}
	return _node, _spec
}

// EmployeePlanCreateBulk is the builder for creating many EmployeePlan entities in bulk.
type EmployeePlanCreateBulk struct {
	config
	err      error
	builders []*EmployeePlanCreate
}

// Save creates the EmployeePlan entities in the database.
func (_c *EmployeePlanCreateBulk) Save(ctx context.Context) ([]*EmployeePlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmployeePlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmployeePlanMutation)
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
func (_c *EmployeePlanCreateBulk) SaveX(ctx context.Context) []*EmployeePlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmployeePlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmployeePlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
