// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dibiaa/fms-tracker/gen/ent/checklisttask"
	"github.com/google/uuid"
)

// ChecklistTaskCreate is the builder for creating a ChecklistTask entity.
type ChecklistTaskCreate struct {
	config
	mutation *ChecklistTaskMutation
	hooks    []Hook
}

// SetUID sets the "uid" field.
func (_c *ChecklistTaskCreate) SetUID(v string) *ChecklistTaskCreate {
	_c.mutation.SetUID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ChecklistTaskCreate) SetDescription(v string) *ChecklistTaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetEmployeeEmail sets the "employee_email" field.
func (_c *ChecklistTaskCreate) SetEmployeeEmail(v string) *ChecklistTaskCreate {
	_c.mutation.SetEmployeeEmail(v)
	return _c
}

// SetEmployeeName sets the "employee_name" field.
func (_c *ChecklistTaskCreate) SetEmployeeName(v string) *ChecklistTaskCreate {
	_c.mutation.SetEmployeeName(v)
	return _c
}

// SetNillableEmployeeName sets the "employee_name" field if the given value is not nil.
func (_c *ChecklistTaskCreate) SetNillableEmployeeName(v *string) *ChecklistTaskCreate {
	if v != nil {
		_c.SetEmployeeName(*v)
	}
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *ChecklistTaskCreate) SetFrequency(v string) *ChecklistTaskCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *ChecklistTaskCreate) SetNillableFrequency(v *string) *ChecklistTaskCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetTargetDate sets the "target_date" field.
func (_c *ChecklistTaskCreate) SetTargetDate(v time.Time) *ChecklistTaskCreate {
	_c.mutation.SetTargetDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ChecklistTaskCreate) SetStatus(v string) *ChecklistTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ChecklistTaskCreate) SetNillableStatus(v *string) *ChecklistTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ChecklistTaskCreate) SetCompletedAt(v time.Time) *ChecklistTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ChecklistTaskCreate) SetNillableCompletedAt(v *time.Time) *ChecklistTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChecklistTaskCreate) SetID(v uuid.UUID) *ChecklistTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChecklistTaskCreate) SetNillableID(v *uuid.UUID) *ChecklistTaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ChecklistTaskMutation object of the builder.
func (_c *ChecklistTaskCreate) Mutation() *ChecklistTaskMutation {
	return _c.mutation
}

// Save creates the ChecklistTask in the database.
func (_c *ChecklistTaskCreate) Save(ctx context.Context) (*ChecklistTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChecklistTaskCreate) SaveX(ctx context.Context) *ChecklistTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChecklistTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChecklistTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChecklistTaskCreate) defaults() {
	if _, ok := _c.mutation.EmployeeName(); !ok {
		v := checklisttask.DefaultEmployeeName
		_c.mutation.SetEmployeeName(v)
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		v := checklisttask.DefaultFrequency
		_c.mutation.SetFrequency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := checklisttask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := checklisttask.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChecklistTaskCreate) check() error {
	if _, ok := _c.mutation.UID(); !ok {
		return &ValidationError{Name: "uid", err: errors.New(`ent: missing required field "ChecklistTask.uid"`)}
	}
	if v, ok := _c.mutation.UID(); ok {
		if err := checklisttask.UIDValidator(v); err != nil {
			return &ValidationError{Name: "uid", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.uid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ChecklistTask.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := checklisttask.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmployeeEmail(); !ok {
		return &ValidationError{Name: "employee_email", err: errors.New(`ent: missing required field "ChecklistTask.employee_email"`)}
	}
	if v, ok := _c.mutation.EmployeeEmail(); ok {
		if err := checklisttask.EmployeeEmailValidator(v); err != nil {
			return &ValidationError{Name: "employee_email", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.employee_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmployeeName(); !ok {
		return &ValidationError{Name: "employee_name", err: errors.New(`ent: missing required field "ChecklistTask.employee_name"`)}
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		return &ValidationError{Name: "frequency", err: errors.New(`ent: missing required field "ChecklistTask.frequency"`)}
	}
	if _, ok := _c.mutation.TargetDate(); !ok {
		return &ValidationError{Name: "target_date", err: errors.New(`ent: missing required field "ChecklistTask.target_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ChecklistTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := checklisttask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ChecklistTaskCreate) sqlSave(ctx context.Context) (*ChecklistTask, error) {
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

func (_c *ChecklistTaskCreate) createSpec() (*ChecklistTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ChecklistTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checklisttask.Table, sqlgraph.NewFieldSpec(checklisttask.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UID(); ok {
		_spec.SetField(checklisttask.FieldUID, field.TypeString, value)
		_node.UID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(checklisttask.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.EmployeeEmail(); ok {
		_spec.SetField(checklisttask.FieldEmployeeEmail, field.TypeString, value)
		_node.EmployeeEmail = value
	}
	if value, ok := _c.mutation.EmployeeName(); ok {
		_spec.SetField(checklisttask.FieldEmployeeName, field.TypeString, value)
		_node.EmployeeName = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(checklisttask.FieldFrequency, field.TypeString, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.TargetDate(); ok {
		_spec.SetField(checklisttask.FieldTargetDate, field.TypeTime, value)
		_node.TargetDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(checklisttask.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(checklisttask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// ChecklistTaskCreateBulk is the builder for creating many ChecklistTask entities in bulk.
type ChecklistTaskCreateBulk struct {
	config
	err      error
	builders []*ChecklistTaskCreate
}

// Save creates the ChecklistTask entities in the database.
func (_c *ChecklistTaskCreateBulk) Save(ctx context.Context) ([]*ChecklistTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChecklistTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChecklistTaskMutation)
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
func (_c *ChecklistTaskCreateBulk) SaveX(ctx context.Context) []*ChecklistTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChecklistTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChecklistTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
