// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dibiaa/fms-tracker/gen/ent/jobrecord"
	"github.com/dibiaa/fms-tracker/gen/ent/steptask"
	"github.com/google/uuid"
)

// StepTaskCreate is the builder for creating a StepTask entity.
type StepTaskCreate struct {
	config
	mutation *StepTaskMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *StepTaskCreate) SetJobID(v uuid.UUID) *StepTaskCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStep sets the "step" field.
func (_c *StepTaskCreate) SetStep(v int) *StepTaskCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetPlanDate sets the "plan_date" field.
func (_c *StepTaskCreate) SetPlanDate(v time.Time) *StepTaskCreate {
	_c.mutation.SetPlanDate(v)
	return _c
}

// SetNillablePlanDate sets the "plan_date" field if the given value is not nil.
func (_c *StepTaskCreate) SetNillablePlanDate(v *time.Time) *StepTaskCreate {
	if v != nil {
		_c.SetPlanDate(*v)
	}
	return _c
}

// SetActualDate sets the "actual_date" field.
func (_c *StepTaskCreate) SetActualDate(v time.Time) *StepTaskCreate {
	_c.mutation.SetActualDate(v)
	return _c
}

// SetNillableActualDate sets the "actual_date" field if the given value is not nil.
func (_c *StepTaskCreate) SetNillableActualDate(v *time.Time) *StepTaskCreate {
	if v != nil {
		_c.SetActualDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepTaskCreate) SetStatus(v string) *StepTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StepTaskCreate) SetNillableStatus(v *string) *StepTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDelayReason sets the "delay_reason" field.
func (_c *StepTaskCreate) SetDelayReason(v string) *StepTaskCreate {
	_c.mutation.SetDelayReason(v)
	return _c
}

// SetNillableDelayReason sets the "delay_reason" field if the given value is not nil.
func (_c *StepTaskCreate) SetNillableDelayReason(v *string) *StepTaskCreate {
	if v != nil {
		_c.SetDelayReason(*v)
	}
	return _c
}

// SetWorkerName sets the "worker_name" field.
func (_c *StepTaskCreate) SetWorkerName(v string) *StepTaskCreate {
	_c.mutation.SetWorkerName(v)
	return _c
}

// SetNillableWorkerName sets the "worker_name" field if the given value is not nil.
func (_c *StepTaskCreate) SetNillableWorkerName(v *string) *StepTaskCreate {
	if v != nil {
		_c.SetWorkerName(*v)
	}
	return _c
}

// SetCompletedQty sets the "completed_qty" field.
func (_c *StepTaskCreate) SetCompletedQty(v int) *StepTaskCreate {
	_c.mutation.SetCompletedQty(v)
	return _c
}

// SetNillableCompletedQty sets the "completed_qty" field if the given value is not nil.
func (_c *StepTaskCreate) SetNillableCompletedQty(v *int) *StepTaskCreate {
	if v != nil {
		_c.SetCompletedQty(*v)
	}
	return _c
}

// SetDelayHours sets the "delay_hours" field.
func (_c *StepTaskCreate) SetDelayHours(v float64) *StepTaskCreate {
	_c.mutation.SetDelayHours(v)
	return _c
}

// SetNillableDelayHours sets the "delay_hours" field if the given value is not nil.
func (_c *StepTaskCreate) SetNillableDelayHours(v *float64) *StepTaskCreate {
	if v != nil {
		_c.SetDelayHours(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepTaskCreate) SetCreatedAt(v time.Time) *StepTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepTaskCreate) SetNillableCreatedAt(v *time.Time) *StepTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StepTaskCreate) SetUpdatedAt(v time.Time) *StepTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StepTaskCreate) SetNillableUpdatedAt(v *time.Time) *StepTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepTaskCreate) SetID(v uuid.UUID) *StepTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StepTaskCreate) SetNillableID(v *uuid.UUID) *StepTaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the JobRecord entity.
func (_c *StepTaskCreate) SetJob(v *JobRecord) *StepTaskCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the StepTaskMutation object of the builder.
func (_c *StepTaskCreate) Mutation() *StepTaskMutation {
	return _c.mutation
}

// Save creates the StepTask in the database.
func (_c *StepTaskCreate) Save(ctx context.Context) (*StepTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepTaskCreate) SaveX(ctx context.Context) *StepTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := steptask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DelayReason(); !ok {
		v := steptask.DefaultDelayReason
		_c.mutation.SetDelayReason(v)
	}
	if _, ok := _c.mutation.WorkerName(); !ok {
		v := steptask.DefaultWorkerName
		_c.mutation.SetWorkerName(v)
	}
	if _, ok := _c.mutation.CompletedQty(); !ok {
		v := steptask.DefaultCompletedQty
		_c.mutation.SetCompletedQty(v)
	}
	if _, ok := _c.mutation.DelayHours(); !ok {
		v := steptask.DefaultDelayHours
		_c.mutation.SetDelayHours(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := steptask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := steptask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := steptask.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepTaskCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "StepTask.job_id"`)}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "StepTask.step"`)}
	}
	if v, ok := _c.mutation.Step(); ok {
		if err := steptask.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "StepTask.step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StepTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := steptask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DelayReason(); !ok {
		return &ValidationError{Name: "delay_reason", err: errors.New(`ent: missing required field "StepTask.delay_reason"`)}
	}
	if _, ok := _c.mutation.WorkerName(); !ok {
		return &ValidationError{Name: "worker_name", err: errors.New(`ent: missing required field "StepTask.worker_name"`)}
	}
	if _, ok := _c.mutation.CompletedQty(); !ok {
		return &ValidationError{Name: "completed_qty", err: errors.New(`ent: missing required field "StepTask.completed_qty"`)}
	}
	if _, ok := _c.mutation.DelayHours(); !ok {
		return &ValidationError{Name: "delay_hours", err: errors.New(`ent: missing required field "StepTask.delay_hours"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StepTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StepTask.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "StepTask.job"`)}
	}
	return nil
}

func (_c *StepTaskCreate) sqlSave(ctx context.Context) (*StepTask, error) {
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

func (_c *StepTaskCreate) createSpec() (*StepTask, *sqlgraph.CreateSpec) {
	var (
		_node = &StepTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(steptask.Table, sqlgraph.NewFieldSpec(steptask.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(steptask.FieldStep, field.TypeInt, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.PlanDate(); ok {
		_spec.SetField(steptask.FieldPlanDate, field.TypeTime, value)
		_node.PlanDate = &value
	}
	if value, ok := _c.mutation.ActualDate(); ok {
		_spec.SetField(steptask.FieldActualDate, field.TypeTime, value)
		_node.ActualDate = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(steptask.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DelayReason(); ok {
		_spec.SetField(steptask.FieldDelayReason, field.TypeString, value)
		_node.DelayReason = value
	}
	if value, ok := _c.mutation.WorkerName(); ok {
		_spec.SetField(steptask.FieldWorkerName, field.TypeString, value)
		_node.WorkerName = value
	}
	if value, ok := _c.mutation.CompletedQty(); ok {
		_spec.SetField(steptask.FieldCompletedQty, field.TypeInt, value)
		_node.CompletedQty = value
	}
	if value, ok := _c.mutation.DelayHours(); ok {
		_spec.SetField(steptask.FieldDelayHours, field.TypeFloat64, value)
		_node.DelayHours = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(steptask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(steptask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   steptask.JobTable,
			Columns: []string{steptask.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StepTaskCreateBulk is the builder for creating many StepTask entities in bulk.
type StepTaskCreateBulk struct {
	config
	err      error
	builders []*StepTaskCreate
}

// Save creates the StepTask entities in the database.
func (_c *StepTaskCreateBulk) Save(ctx context.Context) ([]*StepTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepTaskMutation)
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
func (_c *StepTaskCreateBulk) SaveX(ctx context.Context) []*StepTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
