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
	"github.com/dibiaa/fms-tracker/gen/ent/employeeplan"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
)

// EmployeePlanUpdate is the builder for updating EmployeePlan entities.
type EmployeePlanUpdate struct {
	config
	hooks    []Hook
	mutation *EmployeePlanMutation
}

// Where appends a list predicates to the EmployeePlanUpdate builder.
func (_u *EmployeePlanUpdate) Where(ps ...predicate.EmployeePlan) *EmployeePlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmployeeEmail sets the "employee_email" field.
func (_u *EmployeePlanUpdate) SetEmployeeEmail(v string) *EmployeePlanUpdate {
	_u.mutation.SetEmployeeEmail(v)
	return _u
}

// SetNillableEmployeeEmail sets the "employee_email" field if the given value is not nil.
func (_u *EmployeePlanUpdate) SetNillableEmployeeEmail(v *string) *EmployeePlanUpdate {
	if v != nil {
		_u.SetEmployeeEmail(*v)
	}
	return _u
}

// SetPlanDate sets the "plan_date" field.
func (_u *EmployeePlanUpdate) SetPlanDate(v time.Time) *EmployeePlanUpdate {
	_u.mutation.SetPlanDate(v)
	return _u
}

// SetNillablePlanDate sets the "plan_date" field if the given value is not nil.
func (_u *EmployeePlanUpdate) SetNillablePlanDate(v *time.Time) *EmployeePlanUpdate {
	if v != nil {
		_u.SetPlanDate(*v)
	}
	return _u
}

// SetPlannedCount sets the "planned_count" field.
func (_u *EmployeePlanUpdate) SetPlannedCount(v int) *EmployeePlanUpdate {
	_u.mutation.ResetPlannedCount()
	_u.mutation.SetPlannedCount(v)
	return _u
}

// SetNillablePlannedCount sets the "planned_count" field if the given value is not nil.
func (_u *EmployeePlanUpdate) SetNillablePlannedCount(v *int) *EmployeePlanUpdate {
	if v != nil {
		_u.SetPlannedCount(*v)
	}
	return _u
}

// AddPlannedCount adds value to the "planned_count" field.
func (_u *EmployeePlanUpdate) AddPlannedCount(v int) *EmployeePlanUpdate {
	_u.mutation.AddPlannedCount(v)
	return _u
}

// Mutation returns the EmployeePlanMutation object of the builder.
func (_u *EmployeePlanUpdate) Mutation() *EmployeePlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmployeePlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmployeePlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmployeePlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmployeePlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmployeePlanUpdate) check() error {
	if v, ok := _u.mutation.EmployeeEmail(); ok {
		if err := employeeplan.EmployeeEmailValidator(v); err != nil {
			return &ValidationError{Name: "employee_email", err: fmt.Errorf(`ent: validator failed for field "EmployeePlan.employee_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlannedCount(); ok {
		if err := employeeplan.PlannedCountValidator(v); err != nil {
			return &ValidationError{Name: "planned_count", err: fmt.Errorf(`ent: validator failed for field "EmployeePlan.planned_count": %w`, err)}
		}
	}
	return nil
}

func (_u *EmployeePlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(employeeplan.Table, employeeplan.Columns, sqlgraph.NewFieldSpec(employeeplan.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmployeeEmail(); ok {
		_spec.SetField(employeeplan.FieldEmployeeEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanDate(); ok {
		_spec.SetField(employeeplan.FieldPlanDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PlannedCount(); ok {
		_spec.SetField(employeeplan.FieldPlannedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedCount(); ok {
		_spec.AddField(employeeplan.FieldPlannedCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{employeeplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmployeePlanUpdateOne is the builder for updating a single EmployeePlan entity.
type EmployeePlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmployeePlanMutation
}

// SetEmployeeEmail sets the "employee_email" field.
func (_u *EmployeePlanUpdateOne) SetEmployeeEmail(v string) *EmployeePlanUpdateOne {
	_u.mutation.SetEmployeeEmail(v)
	return _u
}

// SetNillableEmployeeEmail sets the "employee_email" field if the given value is not nil.
func (_u *EmployeePlanUpdateOne) SetNillableEmployeeEmail(v *string) *EmployeePlanUpdateOne {
	if v != nil {
		_u.SetEmployeeEmail(*v)
	}
	return _u
}

// SetPlanDate sets the "plan_date" field.
func (_u *EmployeePlanUpdateOne) SetPlanDate(v time.Time) *EmployeePlanUpdateOne {
	_u.mutation.SetPlanDate(v)
	return _u
}

// SetNillablePlanDate sets the "plan_date" field if the given value is not nil.
func (_u *EmployeePlanUpdateOne) SetNillablePlanDate(v *time.Time) *EmployeePlanUpdateOne {
	if v != nil {
		_u.SetPlanDate(*v)
	}
	return _u
}

// SetPlannedCount sets the "planned_count" field.
func (_u *EmployeePlanUpdateOne) SetPlannedCount(v int) *EmployeePlanUpdateOne {
	_u.mutation.ResetPlannedCount()
	_u.mutation.SetPlannedCount(v)
	return _u
}

// SetNillablePlannedCount sets the "planned_count" field if the given value is not nil.
func (_u *EmployeePlanUpdateOne) SetNillablePlannedCount(v *int) *EmployeePlanUpdateOne {
	if v != nil {
		_u.SetPlannedCount(*v)
	}
	return _u
}

// AddPlannedCount adds value to the "planned_count" field.
func (_u *EmployeePlanUpdateOne) AddPlannedCount(v int) *EmployeePlanUpdateOne {
	_u.mutation.AddPlannedCount(v)
	return _u
}

// Mutation returns the EmployeePlanMutation object of the builder.
func (_u *EmployeePlanUpdateOne) Mutation() *EmployeePlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmployeePlanUpdate builder.
func (_u *EmployeePlanUpdateOne) Where(ps ...predicate.EmployeePlan) *EmployeePlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmployeePlanUpdateOne) Select(field string, fields ...string) *EmployeePlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmployeePlan entity.
func (_u *EmployeePlanUpdateOne) Save(ctx context.Context) (*EmployeePlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmployeePlanUpdateOne) SaveX(ctx context.Context) *EmployeePlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmployeePlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmployeePlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmployeePlanUpdateOne) check() error {
	if v, ok := _u.mutation.EmployeeEmail(); ok {
		if err := employeeplan.EmployeeEmailValidator(v); err != nil {
			return &ValidationError{Name: "employee_email", err: fmt.Errorf(`ent: validator failed for field "EmployeePlan.employee_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlannedCount(); ok {
		if err := employeeplan.PlannedCountValidator(v); err != nil {
			return &ValidationError{Name: "planned_count", err: fmt.Errorf(`ent: validator failed for field "EmployeePlan.planned_count": %w`, err)}
		}
	}
	return nil
}

func (_u *EmployeePlanUpdateOne) sqlSave(ctx context.Context) (_node *EmployeePlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(employeeplan.Table, employeeplan.Columns, sqlgraph.NewFieldSpec(employeeplan.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmployeePlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, employeeplan.FieldID)
		for _, f := range fields {
			if !employeeplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != employeeplan.FieldID {
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
	if value, ok := _u.mutation.EmployeeEmail(); ok {
		_spec.SetField(employeeplan.FieldEmployeeEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanDate(); ok {
		_spec.SetField(employeeplan.FieldPlanDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PlannedCount(); ok {
		_spec.SetField(employeeplan.FieldPlannedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedCount(); ok {
		_spec.AddField(employeeplan.FieldPlannedCount, field.TypeInt, value)
	}
	_node = &EmployeePlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{employeeplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
