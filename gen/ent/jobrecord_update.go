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

// JobRecordUpdate is the builder for updating JobRecord entities.
type JobRecordUpdate struct {
	config
	hooks    []Hook
	mutation *JobRecordMutation
}

// Where appends a list predicates to the JobRecordUpdate builder.
func (_u *JobRecordUpdate) Where(ps ...predicate.JobRecord) *JobRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *JobRecordUpdate) SetRowIndex(v int) *JobRecordUpdate {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableRowIndex(v *int) *JobRecordUpdate {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *JobRecordUpdate) AddRowIndex(v int) *JobRecordUpdate {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetSourceDate sets the "source_date" field.
func (_u *JobRecordUpdate) SetSourceDate(v time.Time) *JobRecordUpdate {
	_u.mutation.SetSourceDate(v)
	return _u
}

// SetNillableSourceDate sets the "source_date" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableSourceDate(v *time.Time) *JobRecordUpdate {
	if v != nil {
		_u.SetSourceDate(*v)
	}
	return _u
}

// ClearSourceDate clears the value of the "source_date" field.
func (_u *JobRecordUpdate) ClearSourceDate() *JobRecordUpdate {
	_u.mutation.ClearSourceDate()
	return _u
}

// SetOtdType sets the "otd_type" field.
func (_u *JobRecordUpdate) SetOtdType(v string) *JobRecordUpdate {
	_u.mutation.SetOtdType(v)
	return _u
}

// SetNillableOtdType sets the "otd_type" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableOtdType(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetOtdType(*v)
	}
	return _u
}

// SetJobNumber sets the "job_number" field.
func (_u *JobRecordUpdate) SetJobNumber(v string) *JobRecordUpdate {
	_u.mutation.SetJobNumber(v)
	return _u
}

// SetNillableJobNumber sets the "job_number" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableJobNumber(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetJobNumber(*v)
	}
	return _u
}

// SetOrderBy sets the "order_by" field.
func (_u *JobRecordUpdate) SetOrderBy(v string) *JobRecordUpdate {
	_u.mutation.SetOrderBy(v)
	return _u
}

// SetNillableOrderBy sets the "order_by" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableOrderBy(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetOrderBy(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *JobRecordUpdate) SetCompanyName(v string) *JobRecordUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableCompanyName(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetBoxType sets the "box_type" field.
func (_u *JobRecordUpdate) SetBoxType(v string) *JobRecordUpdate {
	_u.mutation.SetBoxType(v)
	return _u
}

// SetNillableBoxType sets the "box_type" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableBoxType(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetBoxType(*v)
	}
	return _u
}

// SetBoxStyle sets the "box_style" field.
func (_u *JobRecordUpdate) SetBoxStyle(v string) *JobRecordUpdate {
	_u.mutation.SetBoxStyle(v)
	return _u
}

// SetNillableBoxStyle sets the "box_style" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableBoxStyle(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetBoxStyle(*v)
	}
	return _u
}

// SetBoxColor sets the "box_color" field.
func (_u *JobRecordUpdate) SetBoxColor(v string) *JobRecordUpdate {
	_u.mutation.SetBoxColor(v)
	return _u
}

// SetNillableBoxColor sets the "box_color" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableBoxColor(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetBoxColor(*v)
	}
	return _u
}

// SetPrintingType sets the "printing_type" field.
func (_u *JobRecordUpdate) SetPrintingType(v string) *JobRecordUpdate {
	_u.mutation.SetPrintingType(v)
	return _u
}

// SetNillablePrintingType sets the "printing_type" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillablePrintingType(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetPrintingType(*v)
	}
	return _u
}

// SetPrintingColor sets the "printing_color" field.
func (_u *JobRecordUpdate) SetPrintingColor(v string) *JobRecordUpdate {
	_u.mutation.SetPrintingColor(v)
	return _u
}

// SetNillablePrintingColor sets the "printing_color" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillablePrintingColor(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetPrintingColor(*v)
	}
	return _u
}

// SetSpecification sets the "specification" field.
func (_u *JobRecordUpdate) SetSpecification(v string) *JobRecordUpdate {
	_u.mutation.SetSpecification(v)
	return _u
}

// SetNillableSpecification sets the "specification" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableSpecification(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetSpecification(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *JobRecordUpdate) SetCity(v string) *JobRecordUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableCity(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *JobRecordUpdate) SetQuantity(v int) *JobRecordUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableQuantity(v *int) *JobRecordUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *JobRecordUpdate) AddQuantity(v int) *JobRecordUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetLeadTime sets the "lead_time" field.
func (_u *JobRecordUpdate) SetLeadTime(v time.Time) *JobRecordUpdate {
	_u.mutation.SetLeadTime(v)
	return _u
}

// SetNillableLeadTime sets the "lead_time" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableLeadTime(v *time.Time) *JobRecordUpdate {
	if v != nil {
		_u.SetLeadTime(*v)
	}
	return _u
}

// ClearLeadTime clears the value of the "lead_time" field.
func (_u *JobRecordUpdate) ClearLeadTime() *JobRecordUpdate {
	_u.mutation.ClearLeadTime()
	return _u
}

// SetRepeatNew sets the "repeat_new" field.
func (_u *JobRecordUpdate) SetRepeatNew(v string) *JobRecordUpdate {
	_u.mutation.SetRepeatNew(v)
	return _u
}

// SetNillableRepeatNew sets the "repeat_new" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableRepeatNew(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetRepeatNew(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobRecordUpdate) SetCreatedAt(v time.Time) *JobRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableCreatedAt(v *time.Time) *JobRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobRecordUpdate) SetUpdatedAt(v time.Time) *JobRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the StepTask entity by IDs.
func (_u *JobRecordUpdate) AddTaskIDs(ids ...uuid.UUID) *JobRecordUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the StepTask entity.
func (_u *JobRecordUpdate) AddTasks(v ...*StepTask) *JobRecordUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the JobRecordMutation object of the builder.
func (_u *JobRecordUpdate) Mutation() *JobRecordMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the StepTask entity.
func (_u *JobRecordUpdate) ClearTasks() *JobRecordUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to StepTask entities by IDs.
func (_u *JobRecordUpdate) RemoveTaskIDs(ids ...uuid.UUID) *JobRecordUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to StepTask entities.
func (_u *JobRecordUpdate) RemoveTasks(v ...*StepTask) *JobRecordUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRecordUpdate) check() error {
	if v, ok := _u.mutation.RowIndex(); ok {
		if err := jobrecord.RowIndexValidator(v); err != nil {
			return &ValidationError{Name: "row_index", err: fmt.Errorf(`ent: validator failed for field "JobRecord.row_index": %w`, err)}
		}
	}
	return nil
}

func (_u *JobRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrecord.Table, jobrecord.Columns, sqlgraph.NewFieldSpec(jobrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(jobrecord.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(jobrecord.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceDate(); ok {
		_spec.SetField(jobrecord.FieldSourceDate, field.TypeTime, value)
	}
	if _u.mutation.SourceDateCleared() {
		_spec.ClearField(jobrecord.FieldSourceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.OtdType(); ok {
		_spec.SetField(jobrecord.FieldOtdType, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobNumber(); ok {
		_spec.SetField(jobrecord.FieldJobNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderBy(); ok {
		_spec.SetField(jobrecord.FieldOrderBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(jobrecord.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoxType(); ok {
		_spec.SetField(jobrecord.FieldBoxType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoxStyle(); ok {
		_spec.SetField(jobrecord.FieldBoxStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoxColor(); ok {
		_spec.SetField(jobrecord.FieldBoxColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrintingType(); ok {
		_spec.SetField(jobrecord.FieldPrintingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrintingColor(); ok {
		_spec.SetField(jobrecord.FieldPrintingColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specification(); ok {
		_spec.SetField(jobrecord.FieldSpecification, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(jobrecord.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(jobrecord.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(jobrecord.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeadTime(); ok {
		_spec.SetField(jobrecord.FieldLeadTime, field.TypeTime, value)
	}
	if _u.mutation.LeadTimeCleared() {
		_spec.ClearField(jobrecord.FieldLeadTime, field.TypeTime)
	}
	if value, ok := _u.mutation.RepeatNew(); ok {
		_spec.SetField(jobrecord.FieldRepeatNew, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(jobrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrecord.TasksTable,
			Columns: []string{jobrecord.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steptask.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrecord.TasksTable,
			Columns: []string{jobrecord.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steptask.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrecord.TasksTable,
			Columns: []string{jobrecord.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steptask.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobRecordUpdateOne is the builder for updating a single JobRecord entity.
type JobRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobRecordMutation
}

// SetRowIndex sets the "row_index" field.
func (_u *JobRecordUpdateOne) SetRowIndex(v int) *JobRecordUpdateOne {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableRowIndex(v *int) *JobRecordUpdateOne {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *JobRecordUpdateOne) AddRowIndex(v int) *JobRecordUpdateOne {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetSourceDate sets the "source_date" field.
func (_u *JobRecordUpdateOne) SetSourceDate(v time.Time) *JobRecordUpdateOne {
	_u.mutation.SetSourceDate(v)
	return _u
}

// SetNillableSourceDate sets the "source_date" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableSourceDate(v *time.Time) *JobRecordUpdateOne {
	if v != nil {
		_u.SetSourceDate(*v)
	}
	return _u
}

// ClearSourceDate clears the value of the "source_date" field.
func (_u *JobRecordUpdateOne) ClearSourceDate() *JobRecordUpdateOne {
	_u.mutation.ClearSourceDate()
	return _u
}

// SetOtdType sets the "otd_type" field.
func (_u *JobRecordUpdateOne) SetOtdType(v string) *JobRecordUpdateOne {
	_u.mutation.SetOtdType(v)
	return _u
}

// SetNillableOtdType sets the "otd_type" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableOtdType(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetOtdType(*v)
	}
	return _u
}

// SetJobNumber sets the "job_number" field.
func (_u *JobRecordUpdateOne) SetJobNumber(v string) *JobRecordUpdateOne {
	_u.mutation.SetJobNumber(v)
	return _u
}

// SetNillableJobNumber sets the "job_number" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableJobNumber(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetJobNumber(*v)
	}
	return _u
}

// SetOrderBy sets the "order_by" field.
func (_u *JobRecordUpdateOne) SetOrderBy(v string) *JobRecordUpdateOne {
	_u.mutation.SetOrderBy(v)
	return _u
}

// SetNillableOrderBy sets the "order_by" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableOrderBy(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetOrderBy(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *JobRecordUpdateOne) SetCompanyName(v string) *JobRecordUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableCompanyName(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetBoxType sets the "box_type" field.
func (_u *JobRecordUpdateOne) SetBoxType(v string) *JobRecordUpdateOne {
	_u.mutation.SetBoxType(v)
	return _u
}

// SetNillableBoxType sets the "box_type" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableBoxType(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetBoxType(*v)
	}
	return _u
}

// SetBoxStyle sets the "box_style" field.
func (_u *JobRecordUpdateOne) SetBoxStyle(v string) *JobRecordUpdateOne {
	_u.mutation.SetBoxStyle(v)
	return _u
}

// SetNillableBoxStyle sets the "box_style" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableBoxStyle(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetBoxStyle(*v)
	}
	return _u
}

// SetBoxColor sets the "box_color" field.
func (_u *JobRecordUpdateOne) SetBoxColor(v string) *JobRecordUpdateOne {
	_u.mutation.SetBoxColor(v)
	return _u
}

// SetNillableBoxColor sets the "box_color" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableBoxColor(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetBoxColor(*v)
	}
	return _u
}

// SetPrintingType sets the "printing_type" field.
func (_u *JobRecordUpdateOne) SetPrintingType(v string) *JobRecordUpdateOne {
	_u.mutation.SetPrintingType(v)
	return _u
}

// SetNillablePrintingType sets the "printing_type" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillablePrintingType(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetPrintingType(*v)
	}
	return _u
}

// SetPrintingColor sets the "printing_color" field.
func (_u *JobRecordUpdateOne) SetPrintingColor(v string) *JobRecordUpdateOne {
	_u.mutation.SetPrintingColor(v)
	return _u
}

// SetNillablePrintingColor sets the "printing_color" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillablePrintingColor(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetPrintingColor(*v)
	}
	return _u
}

// SetSpecification sets the "specification" field.
func (_u *JobRecordUpdateOne) SetSpecification(v string) *JobRecordUpdateOne {
	_u.mutation.SetSpecification(v)
	return _u
}

// SetNillableSpecification sets the "specification" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableSpecification(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetSpecification(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *JobRecordUpdateOne) SetCity(v string) *JobRecordUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableCity(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *JobRecordUpdateOne) SetQuantity(v int) *JobRecordUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableQuantity(v *int) *JobRecordUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *JobRecordUpdateOne) AddQuantity(v int) *JobRecordUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetLeadTime sets the "lead_time" field.
func (_u *JobRecordUpdateOne) SetLeadTime(v time.Time) *JobRecordUpdateOne {
	_u.mutation.SetLeadTime(v)
	return _u
}

// SetNillableLeadTime sets the "lead_time" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableLeadTime(v *time.Time) *JobRecordUpdateOne {
	if v != nil {
		_u.SetLeadTime(*v)
	}
	return _u
}

// ClearLeadTime clears the value of the "lead_time" field.
func (_u *JobRecordUpdateOne) ClearLeadTime() *JobRecordUpdateOne {
	_u.mutation.ClearLeadTime()
	return _u
}

// SetRepeatNew sets the "repeat_new" field.
func (_u *JobRecordUpdateOne) SetRepeatNew(v string) *JobRecordUpdateOne {
	_u.mutation.SetRepeatNew(v)
	return _u
}

// SetNillableRepeatNew sets the "repeat_new" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableRepeatNew(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetRepeatNew(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobRecordUpdateOne) SetCreatedAt(v time.Time) *JobRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *JobRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobRecordUpdateOne) SetUpdatedAt(v time.Time) *JobRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the StepTask entity by IDs.
func (_u *JobRecordUpdateOne) AddTaskIDs(ids ...uuid.UUID) *JobRecordUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the StepTask entity.
func (_u *JobRecordUpdateOne) AddTasks(v ...*StepTask) *JobRecordUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the JobRecordMutation object of the builder.
func (_u *JobRecordUpdateOne) Mutation() *JobRecordMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the StepTask entity.
func (_u *JobRecordUpdateOne) ClearTasks() *JobRecordUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to StepTask entities by IDs.
func (_u *JobRecordUpdateOne) RemoveTaskIDs(ids ...uuid.UUID) *JobRecordUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to StepTask entities.
func (_u *JobRecordUpdateOne) RemoveTasks(v ...*StepTask) *JobRecordUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the JobRecordUpdate builder.
func (_u *JobRecordUpdateOne) Where(ps ...predicate.JobRecord) *JobRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobRecordUpdateOne) Select(field string, fields ...string) *JobRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobRecord entity.
func (_u *JobRecordUpdateOne) Save(ctx context.Context) (*JobRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRecordUpdateOne) SaveX(ctx context.Context) *JobRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRecordUpdateOne) check() error {
	if v, ok := _u.mutation.RowIndex(); ok {
		if err := jobrecord.RowIndexValidator(v); err != nil {
			return &ValidationError{Name: "row_index", err: fmt.Errorf(`ent: validator failed for field "JobRecord.row_index": %w`, err)}
		}
	}
	return nil
}

func (_u *JobRecordUpdateOne) sqlSave(ctx context.Context) (_node *JobRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrecord.Table, jobrecord.Columns, sqlgraph.NewFieldSpec(jobrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobrecord.FieldID)
		for _, f := range fields {
			if !jobrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobrecord.FieldID {
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
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(jobrecord.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(jobrecord.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceDate(); ok {
		_spec.SetField(jobrecord.FieldSourceDate, field.TypeTime, value)
	}
	if _u.mutation.SourceDateCleared() {
		_spec.ClearField(jobrecord.FieldSourceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.OtdType(); ok {
		_spec.SetField(jobrecord.FieldOtdType, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobNumber(); ok {
		_spec.SetField(jobrecord.FieldJobNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderBy(); ok {
		_spec.SetField(jobrecord.FieldOrderBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(jobrecord.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoxType(); ok {
		_spec.SetField(jobrecord.FieldBoxType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoxStyle(); ok {
		_spec.SetField(jobrecord.FieldBoxStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoxColor(); ok {
		_spec.SetField(jobrecord.FieldBoxColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrintingType(); ok {
		_spec.SetField(jobrecord.FieldPrintingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrintingColor(); ok {
		_spec.SetField(jobrecord.FieldPrintingColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specification(); ok {
		_spec.SetField(jobrecord.FieldSpecification, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(jobrecord.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(jobrecord.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(jobrecord.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeadTime(); ok {
		_spec.SetField(jobrecord.FieldLeadTime, field.TypeTime, value)
	}
	if _u.mutation.LeadTimeCleared() {
		_spec.ClearField(jobrecord.FieldLeadTime, field.TypeTime)
	}
	if value, ok := _u.mutation.RepeatNew(); ok {
		_spec.SetField(jobrecord.FieldRepeatNew, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(jobrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrecord.TasksTable,
			Columns: []string{jobrecord.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steptask.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrecord.TasksTable,
			Columns: []string{jobrecord.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steptask.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrecord.TasksTable,
			Columns: []string{jobrecord.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steptask.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
