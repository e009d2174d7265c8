// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dibiaa/fms-tracker/gen/ent/checklisttask"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
)

// ChecklistTaskDelete is the builder for deleting a ChecklistTask entity.
type ChecklistTaskDelete struct {
	config
	hooks    []Hook
	mutation *ChecklistTaskMutation
}

// Where appends a list predicates to the ChecklistTaskDelete builder.
func (_d *ChecklistTaskDelete) Where(ps ...predicate.ChecklistTask) *ChecklistTaskDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChecklistTaskDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChecklistTaskDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChecklistTaskDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(checklisttask.Table, sqlgraph.NewFieldSpec(checklisttask.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ChecklistTaskDeleteOne is the builder for deleting a single ChecklistTask entity.
type ChecklistTaskDeleteOne struct {
	_d *ChecklistTaskDelete
}

// Where appends a list predicates to the ChecklistTaskDelete builder.
func (_d *ChecklistTaskDeleteOne) Where(ps ...predicate.ChecklistTask) *ChecklistTaskDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChecklistTaskDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{checklisttask.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChecklistTaskDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
