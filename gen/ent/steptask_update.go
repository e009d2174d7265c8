// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dibiaa/fms-tracker/gen/ent/jobrecord"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
	"github.com/dibiaa/fms-tracker/gen/ent/steptask"
	"github.com/google/uuid"
)

// StepTaskUpdate is the builder for updating StepTask entities.
type StepTaskUpdate struct {
	config
	hooks    []Hook
	mutation *StepTaskMutation
}

// Where appends a list predicates to the StepTaskUpdate builder.
func (_u *StepTaskUpdate) Where(ps ...predicate.StepTask) *StepTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *StepTaskUpdate) SetJobID(v uuid.UUID) *StepTaskUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *StepTaskUpdate) SetNillableJobID(v *uuid.UUID) *StepTaskUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *StepTaskUpdate) SetStep(v int) *StepTaskUpdate {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *StepTaskUpdate) SetNillableStep(v *int) *StepTaskUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *StepTaskUpdate) AddStep(v int) *StepTaskUpdate {
	_u.mutation.AddStep(v)
	return _u
}

// SetPlanDate sets the "plan_date" field.
func (_u *StepTaskUpdate) SetPlanDate(v time.Time) *StepTaskUpdate {
	_u.mutation.SetPlanDate(v)
	return _u
}

// SetNillablePlanDate sets the "plan_date" field if the given value is not nil.
func (_u *StepTaskUpdate) SetNillablePlanDate(v *time.Time) *StepTaskUpdate {
	if v != nil {
		_u.SetPlanDate(*v)
	}
	return _u
}

// ClearPlanDate clears the value of the "plan_date" field.
func (_u *StepTaskUpdate) ClearPlanDate() *StepTaskUpdate {
	_u.mutation.ClearPlanDate()
	return _u
}

// SetActualDate sets the "actual_date" field.
func (_u *StepTaskUpdate) SetActualDate(v time.Time) *StepTaskUpdate {
	_u.mutation.SetActualDate(v)
	return _u
}

// SetNillableActualDate sets the "actual_date" field if the given value is not nil.
func (_u *StepTaskUpdate) SetNillableActualDate(v *time.Time) *StepTaskUpdate {
	if v != nil {
		_u.SetActualDate(*v)
	}
	return _u
}

// ClearActualDate clears the value of the "actual_date" field.
func (_u *StepTaskUpdate) ClearActualDate() *StepTaskUpdate {
	_u.mutation.ClearActualDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepTaskUpdate) SetStatus(v string) *StepTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepTaskUpdate) SetNillableStatus(v *string) *StepTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDelayReason sets the "delay_reason" field.
func (_u *StepTaskUpdate) SetDelayReason(v string) *StepTaskUpdate {
	_u.mutation.SetDelayReason(v)
	return _u
}

// SetNillableDelayReason sets the "delay_reason" field if the given value is not nil.
func (_u *StepTaskUpdate) SetNillableDelayReason(v *string) *StepTaskUpdate {
	if v != nil {
		_u.SetDelayReason(*v)
	}
	return _u
}

// SetWorkerName sets the "worker_name" field.
func (_u *StepTaskUpdate) SetWorkerName(v string) *StepTaskUpdate {
	_u.mutation.SetWorkerName(v)
	return _u
}

// SetNillableWorkerName sets the "worker_name" field if the given value is not nil.
func (_u *StepTaskUpdate) SetNillableWorkerName(v *string) *StepTaskUpdate {
	if v != nil {
		_u.SetWorkerName(*v)
	}
	return _u
}

// SetCompletedQty sets the "completed_qty" field.
func (_u *StepTaskUpdate) SetCompletedQty(v int) *StepTaskUpdate {
	_u.mutation.ResetCompletedQty()
	_u.mutation.SetCompletedQty(v)
	return _u
}

// SetNillableCompletedQty sets the "completed_qty" field if the given value is not nil.
func (_u *StepTaskUpdate) SetNillableCompletedQty(v *int) *StepTaskUpdate {
	if v != nil {
		_u.SetCompletedQty(*v)
	}
	return _u
}

// AddCompletedQty adds value to the "completed_qty" field.
func (_u *StepTaskUpdate) AddCompletedQty(v int) *StepTaskUpdate {
	_u.mutation.AddCompletedQty(v)
	return _u
}

// SetDelayHours sets the "delay_hours" field.
func (_u *StepTaskUpdate) SetDelayHours(v float64) *StepTaskUpdate {
	_u.mutation.ResetDelayHours()
	_u.mutation.SetDelayHours(v)
	return _u
}

// SetNillableDelayHours sets the "delay_hours" field if the given value is not nil.
func (_u *StepTaskUpdate) SetNillableDelayHours(v *float64) *StepTaskUpdate {
	if v != nil {
		_u.SetDelayHours(*v)
	}
	return _u
}

// AddDelayHours adds value to the "delay_hours" field.
func (_u *StepTaskUpdate) AddDelayHours(v float64) *StepTaskUpdate {
	_u.mutation.AddDelayHours(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StepTaskUpdate) SetCreatedAt(v time.Time) *StepTaskUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StepTaskUpdate) SetNillableCreatedAt(v *time.Time) *StepTaskUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StepTaskUpdate) SetUpdatedAt(v time.Time) *StepTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the JobRecord entity.
func (_u *StepTaskUpdate) SetJob(v *JobRecord) *StepTaskUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the StepTaskMutation object of the builder.
func (_u *StepTaskUpdate) Mutation() *StepTaskMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the JobRecord entity.
func (_u *StepTaskUpdate) ClearJob() *StepTaskUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StepTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := steptask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepTaskUpdate) check() error {
	if v, ok := _u.mutation.Step(); ok {
		if err := steptask.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "StepTask.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := steptask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepTask.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepTask.job"`)
	}
	return nil
}

func (_u *StepTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(steptask.Table, steptask.Columns, sqlgraph.NewFieldSpec(steptask.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(steptask.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(steptask.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanDate(); ok {
		_spec.SetField(steptask.FieldPlanDate, field.TypeTime, value)
	}
	if _u.mutation.PlanDateCleared() {
		_spec.ClearField(steptask.FieldPlanDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ActualDate(); ok {
		_spec.SetField(steptask.FieldActualDate, field.TypeTime, value)
	}
	if _u.mutation.ActualDateCleared() {
		_spec.ClearField(steptask.FieldActualDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(steptask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DelayReason(); ok {
		_spec.SetField(steptask.FieldDelayReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkerName(); ok {
		_spec.SetField(steptask.FieldWorkerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedQty(); ok {
		_spec.SetField(steptask.FieldCompletedQty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedQty(); ok {
		_spec.AddField(steptask.FieldCompletedQty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DelayHours(); ok {
		_spec.SetField(steptask.FieldDelayHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDelayHours(); ok {
		_spec.AddField(steptask.FieldDelayHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(steptask.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(steptask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{steptask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepTaskUpdateOne is the builder for updating a single StepTask entity.
type StepTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepTaskMutation
}

// SetJobID sets the "job_id" field.
func (_u *StepTaskUpdateOne) SetJobID(v uuid.UUID) *StepTaskUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *StepTaskUpdateOne) SetNillableJobID(v *uuid.UUID) *StepTaskUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *StepTaskUpdateOne) SetStep(v int) *StepTaskUpdateOne {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *StepTaskUpdateOne) SetNillableStep(v *int) *StepTaskUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *StepTaskUpdateOne) AddStep(v int) *StepTaskUpdateOne {
	_u.mutation.AddStep(v)
	return _u
}

// SetPlanDate sets the "plan_date" field.
func (_u *StepTaskUpdateOne) SetPlanDate(v time.Time) *StepTaskUpdateOne {
	_u.mutation.SetPlanDate(v)
	return _u
}

// SetNillablePlanDate sets the "plan_date" field if the given value is not nil.
func (_u *StepTaskUpdateOne) SetNillablePlanDate(v *time.Time) *StepTaskUpdateOne {
	if v != nil {
		_u.SetPlanDate(*v)
	}
	return _u
}

// ClearPlanDate clears the value of the "plan_date" field.
func (_u *StepTaskUpdateOne) ClearPlanDate() *StepTaskUpdateOne {
	_u.mutation.ClearPlanDate()
	return _u
}

// SetActualDate sets the "actual_date" field.
func (_u *StepTaskUpdateOne) SetActualDate(v time.Time) *StepTaskUpdateOne {
	_u.mutation.SetActualDate(v)
	return _u
}

// SetNillableActualDate sets the "actual_date" field if the given value is not nil.
func (_u *StepTaskUpdateOne) SetNillableActualDate(v *time.Time) *StepTaskUpdateOne {
	if v != nil {
		_u.SetActualDate(*v)
	}
	return _u
}

// ClearActualDate clears the value of the "actual_date" field.
func (_u *StepTaskUpdateOne) ClearActualDate() *StepTaskUpdateOne {
	_u.mutation.ClearActualDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepTaskUpdateOne) SetStatus(v string) *StepTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepTaskUpdateOne) SetNillableStatus(v *string) *StepTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDelayReason sets the "delay_reason" field.
func (_u *StepTaskUpdateOne) SetDelayReason(v string) *StepTaskUpdateOne {
	_u.mutation.SetDelayReason(v)
	return _u
}

// SetNillableDelayReason sets the "delay_reason" field if the given value is not nil.
func (_u *StepTaskUpdateOne) SetNillableDelayReason(v *string) *StepTaskUpdateOne {
	if v != nil {
		_u.SetDelayReason(*v)
	}
	return _u
}

// SetWorkerName sets the "worker_name" field.
func (_u *StepTaskUpdateOne) SetWorkerName(v string) *StepTaskUpdateOne {
	_u.mutation.SetWorkerName(v)
	return _u
}

// SetNillableWorkerName sets the "worker_name" field if the given value is not nil.
func (_u *StepTaskUpdateOne) SetNillableWorkerName(v *string) *StepTaskUpdateOne {
	if v != nil {
		_u.SetWorkerName(*v)
	}
	return _u
}

// SetCompletedQty sets the "completed_qty" field.
func (_u *StepTaskUpdateOne) SetCompletedQty(v int) *StepTaskUpdateOne {
	_u.mutation.ResetCompletedQty()
	_u.mutation.SetCompletedQty(v)
	return _u
}

// SetNillableCompletedQty sets the "completed_qty" field if the given value is not nil.
func (_u *StepTaskUpdateOne) SetNillableCompletedQty(v *int) *StepTaskUpdateOne {
	if v != nil {
		_u.SetCompletedQty(*v)
	}
	return _u
}

// AddCompletedQty adds value to the "completed_qty" field.
func (_u *StepTaskUpdateOne) AddCompletedQty(v int) *StepTaskUpdateOne {
	_u.mutation.AddCompletedQty(v)
	return _u
}

// SetDelayHours sets the "delay_hours" field.
func (_u *StepTaskUpdateOne) SetDelayHours(v float64) *StepTaskUpdateOne {
	_u.mutation.ResetDelayHours()
	_u.mutation.SetDelayHours(v)
	return _u
}

// SetNillableDelayHours sets the "delay_hours" field if the given value is not nil.
func (_u *StepTaskUpdateOne) SetNillableDelayHours(v *float64) *StepTaskUpdateOne {
	if v != nil {
		_u.SetDelayHours(*v)
	}
	return _u
}

// AddDelayHours adds value to the "delay_hours" field.
func (_u *StepTaskUpdateOne) AddDelayHours(v float64) *StepTaskUpdateOne {
	_u.mutation.AddDelayHours(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StepTaskUpdateOne) SetCreatedAt(v time.Time) *StepTaskUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StepTaskUpdateOne) SetNillableCreatedAt(v *time.Time) *StepTaskUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StepTaskUpdateOne) SetUpdatedAt(v time.Time) *StepTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the JobRecord entity.
func (_u *StepTaskUpdateOne) SetJob(v *JobRecord) *StepTaskUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the StepTaskMutation object of the builder.
func (_u *StepTaskUpdateOne) Mutation() *StepTaskMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the JobRecord entity.
func (_u *StepTaskUpdateOne) ClearJob() *StepTaskUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the StepTaskUpdate builder.
func (_u *StepTaskUpdateOne) Where(ps ...predicate.StepTask) *StepTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepTaskUpdateOne) Select(field string, fields ...string) *StepTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepTask entity.
func (_u *StepTaskUpdateOne) Save(ctx context.Context) (*StepTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepTaskUpdateOne) SaveX(ctx context.Context) *StepTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StepTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := steptask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Step(); ok {
		if err := steptask.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "StepTask.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := steptask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepTask.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepTask.job"`)
	}
	return nil
}

func (_u *StepTaskUpdateOne) sqlSave(ctx context.Context) (_node *StepTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(steptask.Table, steptask.Columns, sqlgraph.NewFieldSpec(steptask.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, steptask.FieldID)
		for _, f := range fields {
			if !steptask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != steptask.FieldID {
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
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(steptask.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(steptask.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanDate(); ok {
		_spec.SetField(steptask.FieldPlanDate, field.TypeTime, value)
	}
	if _u.mutation.PlanDateCleared() {
		_spec.ClearField(steptask.FieldPlanDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ActualDate(); ok {
		_spec.SetField(steptask.FieldActualDate, field.TypeTime, value)
	}
	if _u.mutation.ActualDateCleared() {
		_spec.ClearField(steptask.FieldActualDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(steptask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DelayReason(); ok {
		_spec.SetField(steptask.FieldDelayReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkerName(); ok {
		_spec.SetField(steptask.FieldWorkerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedQty(); ok {
		_spec.SetField(steptask.FieldCompletedQty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedQty(); ok {
		_spec.AddField(steptask.FieldCompletedQty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DelayHours(); ok {
		_spec.SetField(steptask.FieldDelayHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDelayHours(); ok {
		_spec.AddField(steptask.FieldDelayHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(steptask.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(steptask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StepTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{steptask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
