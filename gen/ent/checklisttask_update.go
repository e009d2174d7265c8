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
	"github.com/dibiaa/fms-tracker/gen/ent/checklisttask"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
)

// ChecklistTaskUpdate is the builder for updating ChecklistTask entities.
type ChecklistTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ChecklistTaskMutation
}

// Where appends a list predicates to the ChecklistTaskUpdate builder.
func (_u *ChecklistTaskUpdate) Where(ps ...predicate.ChecklistTask) *ChecklistTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUID sets the "uid" field.
func (_u *ChecklistTaskUpdate) SetUID(v string) *ChecklistTaskUpdate {
	_u.mutation.SetUID(v)
	return _u
}

// SetNillableUID sets the "uid" field if the given value is not nil.
func (_u *ChecklistTaskUpdate) SetNillableUID(v *string) *ChecklistTaskUpdate {
	if v != nil {
		_u.SetUID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChecklistTaskUpdate) SetDescription(v string) *ChecklistTaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChecklistTaskUpdate) SetNillableDescription(v *string) *ChecklistTaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEmployeeEmail sets the "employee_email" field.
func (_u *ChecklistTaskUpdate) SetEmployeeEmail(v string) *ChecklistTaskUpdate {
	_u.mutation.SetEmployeeEmail(v)
	return _u
}

// SetNillableEmployeeEmail sets the "employee_email" field if the given value is not nil.
func (_u *ChecklistTaskUpdate) SetNillableEmployeeEmail(v *string) *ChecklistTaskUpdate {
	if v != nil {
		_u.SetEmployeeEmail(*v)
	}
	return _u
}

// SetEmployeeName sets the "employee_name" field.
func (_u *ChecklistTaskUpdate) SetEmployeeName(v string) *ChecklistTaskUpdate {
	_u.mutation.SetEmployeeName(v)
	return _u
}

// SetNillableEmployeeName sets the "employee_name" field if the given value is not nil.
func (_u *ChecklistTaskUpdate) SetNillableEmployeeName(v *string) *ChecklistTaskUpdate {
	if v != nil {
		_u.SetEmployeeName(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *ChecklistTaskUpdate) SetFrequency(v string) *ChecklistTaskUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *ChecklistTaskUpdate) SetNillableFrequency(v *string) *ChecklistTaskUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *ChecklistTaskUpdate) SetTargetDate(v time.Time) *ChecklistTaskUpdate {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *ChecklistTaskUpdate) SetNillableTargetDate(v *time.Time) *ChecklistTaskUpdate {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChecklistTaskUpdate) SetStatus(v string) *ChecklistTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChecklistTaskUpdate) SetNillableStatus(v *string) *ChecklistTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ChecklistTaskUpdate) SetCompletedAt(v time.Time) *ChecklistTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ChecklistTaskUpdate) SetNillableCompletedAt(v *time.Time) *ChecklistTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ChecklistTaskUpdate) ClearCompletedAt() *ChecklistTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ChecklistTaskMutation object of the builder.
func (_u *ChecklistTaskUpdate) Mutation() *ChecklistTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChecklistTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChecklistTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChecklistTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChecklistTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChecklistTaskUpdate) check() error {
	if v, ok := _u.mutation.UID(); ok {
		if err := checklisttask.UIDValidator(v); err != nil {
			return &ValidationError{Name: "uid", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.uid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := checklisttask.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmployeeEmail(); ok {
		if err := checklisttask.EmployeeEmailValidator(v); err != nil {
			return &ValidationError{Name: "employee_email", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.employee_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := checklisttask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ChecklistTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checklisttask.Table, checklisttask.Columns, sqlgraph.NewFieldSpec(checklisttask.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UID(); ok {
		_spec.SetField(checklisttask.FieldUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(checklisttask.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmployeeEmail(); ok {
		_spec.SetField(checklisttask.FieldEmployeeEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmployeeName(); ok {
		_spec.SetField(checklisttask.FieldEmployeeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(checklisttask.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(checklisttask.FieldTargetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(checklisttask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(checklisttask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(checklisttask.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checklisttask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChecklistTaskUpdateOne is the builder for updating a single ChecklistTask entity.
type ChecklistTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChecklistTaskMutation
}

// SetUID sets the "uid" field.
func (_u *ChecklistTaskUpdateOne) SetUID(v string) *ChecklistTaskUpdateOne {
	_u.mutation.SetUID(v)
	return _u
}

// SetNillableUID sets the "uid" field if the given value is not nil.
func (_u *ChecklistTaskUpdateOne) SetNillableUID(v *string) *ChecklistTaskUpdateOne {
	if v != nil {
		_u.SetUID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChecklistTaskUpdateOne) SetDescription(v string) *ChecklistTaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChecklistTaskUpdateOne) SetNillableDescription(v *string) *ChecklistTaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEmployeeEmail sets the "employee_email" field.
func (_u *ChecklistTaskUpdateOne) SetEmployeeEmail(v string) *ChecklistTaskUpdateOne {
	_u.mutation.SetEmployeeEmail(v)
	return _u
}

// SetNillableEmployeeEmail sets the "employee_email" field if the given value is not nil.
func (_u *ChecklistTaskUpdateOne) SetNillableEmployeeEmail(v *string) *ChecklistTaskUpdateOne {
	if v != nil {
		_u.SetEmployeeEmail(*v)
	}
	return _u
}

// SetEmployeeName sets the "employee_name" field.
func (_u *ChecklistTaskUpdateOne) SetEmployeeName(v string) *ChecklistTaskUpdateOne {
	_u.mutation.SetEmployeeName(v)
	return _u
}

// SetNillableEmployeeName sets the "employee_name" field if the given value is not nil.
func (_u *ChecklistTaskUpdateOne) SetNillableEmployeeName(v *string) *ChecklistTaskUpdateOne {
	if v != nil {
		_u.SetEmployeeName(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *ChecklistTaskUpdateOne) SetFrequency(v string) *ChecklistTaskUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *ChecklistTaskUpdateOne) SetNillableFrequency(v *string) *ChecklistTaskUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *ChecklistTaskUpdateOne) SetTargetDate(v time.Time) *ChecklistTaskUpdateOne {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *ChecklistTaskUpdateOne) SetNillableTargetDate(v *time.Time) *ChecklistTaskUpdateOne {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChecklistTaskUpdateOne) SetStatus(v string) *ChecklistTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChecklistTaskUpdateOne) SetNillableStatus(v *string) *ChecklistTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ChecklistTaskUpdateOne) SetCompletedAt(v time.Time) *ChecklistTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ChecklistTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *ChecklistTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ChecklistTaskUpdateOne) ClearCompletedAt() *ChecklistTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ChecklistTaskMutation object of the builder.
func (_u *ChecklistTaskUpdateOne) Mutation() *ChecklistTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChecklistTaskUpdate builder.
func (_u *ChecklistTaskUpdateOne) Where(ps ...predicate.ChecklistTask) *ChecklistTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChecklistTaskUpdateOne) Select(field string, fields ...string) *ChecklistTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChecklistTask entity.
func (_u *ChecklistTaskUpdateOne) Save(ctx context.Context) (*ChecklistTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChecklistTaskUpdateOne) SaveX(ctx context.Context) *ChecklistTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChecklistTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChecklistTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChecklistTaskUpdateOne) check() error {
	if v, ok := _u.mutation.UID(); ok {
		if err := checklisttask.UIDValidator(v); err != nil {
			return &ValidationError{Name: "uid", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.uid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := checklisttask.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmployeeEmail(); ok {
		if err := checklisttask.EmployeeEmailValidator(v); err != nil {
			return &ValidationError{Name: "employee_email", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.employee_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := checklisttask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChecklistTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ChecklistTaskUpdateOne) sqlSave(ctx context.Context) (_node *ChecklistTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checklisttask.Table, checklisttask.Columns, sqlgraph.NewFieldSpec(checklisttask.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChecklistTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checklisttask.FieldID)
		for _, f := range fields {
			if !checklisttask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checklisttask.FieldID {
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
	if value, ok := _u.mutation.UID(); ok {
		_spec.SetField(checklisttask.FieldUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(checklisttask.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmployeeEmail(); ok {
		_spec.SetField(checklisttask.FieldEmployeeEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmployeeName(); ok {
		_spec.SetField(checklisttask.FieldEmployeeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(checklisttask.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(checklisttask.FieldTargetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(checklisttask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(checklisttask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(checklisttask.FieldCompletedAt, field.TypeTime)
	}
	_node = &ChecklistTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checklisttask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
