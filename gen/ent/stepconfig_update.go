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
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
	"github.com/dibiaa/fms-tracker/gen/ent/stepconfig"
)

// StepConfigUpdate is the builder for updating StepConfig entities.
type StepConfigUpdate struct {
	config
	hooks    []Hook
	mutation *StepConfigMutation
}

// Where appends a list predicates to the StepConfigUpdate builder.
func (_u *StepConfigUpdate) Where(ps ...predicate.StepConfig) *StepConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStep sets the "step" field.
func (_u *StepConfigUpdate) SetStep(v int) *StepConfigUpdate {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *StepConfigUpdate) SetNillableStep(v *int) *StepConfigUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *StepConfigUpdate) AddStep(v int) *StepConfigUpdate {
	_u.mutation.AddStep(v)
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *StepConfigUpdate) SetStepName(v string) *StepConfigUpdate {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *StepConfigUpdate) SetNillableStepName(v *string) *StepConfigUpdate {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetDoerEmails sets the "doer_emails" field.
func (_u *StepConfigUpdate) SetDoerEmails(v string) *StepConfigUpdate {
	_u.mutation.SetDoerEmails(v)
	return _u
}

// SetNillableDoerEmails sets the "doer_emails" field if the given value is not nil.
func (_u *StepConfigUpdate) SetNillableDoerEmails(v *string) *StepConfigUpdate {
	if v != nil {
		_u.SetDoerEmails(*v)
	}
	return _u
}

// SetVisibleColumns sets the "visible_columns" field.
func (_u *StepConfigUpdate) SetVisibleColumns(v string) *StepConfigUpdate {
	_u.mutation.SetVisibleColumns(v)
	return _u
}

// SetNillableVisibleColumns sets the "visible_columns" field if the given value is not nil.
func (_u *StepConfigUpdate) SetNillableVisibleColumns(v *string) *StepConfigUpdate {
	if v != nil {
		_u.SetVisibleColumns(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StepConfigUpdate) SetUpdatedAt(v time.Time) *StepConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StepConfigMutation object of the builder.
func (_u *StepConfigUpdate) Mutation() *StepConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StepConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stepconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepConfigUpdate) check() error {
	if v, ok := _u.mutation.Step(); ok {
		if err := stepconfig.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "StepConfig.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepName(); ok {
		if err := stepconfig.StepNameValidator(v); err != nil {
			return &ValidationError{Name: "step_name", err: fmt.Errorf(`ent: validator failed for field "StepConfig.step_name": %w`, err)}
		}
	}
	return nil
}

func (_u *StepConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepconfig.Table, stepconfig.Columns, sqlgraph.NewFieldSpec(stepconfig.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(stepconfig.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(stepconfig.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(stepconfig.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoerEmails(); ok {
		_spec.SetField(stepconfig.FieldDoerEmails, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisibleColumns(); ok {
		_spec.SetField(stepconfig.FieldVisibleColumns, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stepconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepConfigUpdateOne is the builder for updating a single StepConfig entity.
type StepConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepConfigMutation
}

// SetStep sets the "step" field.
func (_u *StepConfigUpdateOne) SetStep(v int) *StepConfigUpdateOne {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *StepConfigUpdateOne) SetNillableStep(v *int) *StepConfigUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *StepConfigUpdateOne) AddStep(v int) *StepConfigUpdateOne {
	_u.mutation.AddStep(v)
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *StepConfigUpdateOne) SetStepName(v string) *StepConfigUpdateOne {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *StepConfigUpdateOne) SetNillableStepName(v *string) *StepConfigUpdateOne {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetDoerEmails sets the "doer_emails" field.
func (_u *StepConfigUpdateOne) SetDoerEmails(v string) *StepConfigUpdateOne {
	_u.mutation.SetDoerEmails(v)
	return _u
}

// SetNillableDoerEmails sets the "doer_emails" field if the given value is not nil.
func (_u *StepConfigUpdateOne) SetNillableDoerEmails(v *string) *StepConfigUpdateOne {
	if v != nil {
		_u.SetDoerEmails(*v)
	}
	return _u
}

// SetVisibleColumns sets the "visible_columns" field.
func (_u *StepConfigUpdateOne) SetVisibleColumns(v string) *StepConfigUpdateOne {
	_u.mutation.SetVisibleColumns(v)
	return _u
}

// SetNillableVisibleColumns sets the "visible_columns" field if the given value is not nil.
func (_u *StepConfigUpdateOne) SetNillableVisibleColumns(v *string) *StepConfigUpdateOne {
	if v != nil {
		_u.SetVisibleColumns(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StepConfigUpdateOne) SetUpdatedAt(v time.Time) *StepConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StepConfigMutation object of the builder.
func (_u *StepConfigUpdateOne) Mutation() *StepConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepConfigUpdate builder.
func (_u *StepConfigUpdateOne) Where(ps ...predicate.StepConfig) *StepConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepConfigUpdateOne) Select(field string, fields ...string) *StepConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepConfig entity.
func (_u *StepConfigUpdateOne) Save(ctx context.Context) (*StepConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepConfigUpdateOne) SaveX(ctx context.Context) *StepConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StepConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stepconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepConfigUpdateOne) check() error {
	if v, ok := _u.mutation.Step(); ok {
		if err := stepconfig.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "StepConfig.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepName(); ok {
		if err := stepconfig.StepNameValidator(v); err != nil {
			return &ValidationError{Name: "step_name", err: fmt.Errorf(`ent: validator failed for field "StepConfig.step_name": %w`, err)}
		}
	}
	return nil
}

func (_u *StepConfigUpdateOne) sqlSave(ctx context.Context) (_node *StepConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepconfig.Table, stepconfig.Columns, sqlgraph.NewFieldSpec(stepconfig.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepconfig.FieldID)
		for _, f := range fields {
			if !stepconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepconfig.FieldID {
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
		_spec.SetField(stepconfig.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(stepconfig.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(stepconfig.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoerEmails(); ok {
		_spec.SetField(stepconfig.FieldDoerEmails, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisibleColumns(); ok {
		_spec.SetField(stepconfig.FieldVisibleColumns, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stepconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StepConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
