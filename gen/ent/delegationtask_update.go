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
	"github.com/dibiaa/fms-tracker/gen/ent/delegationtask"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
	"github.com/dibiaa/fms-tracker/gen/ent/taskcomment"
	"github.com/google/uuid"
)

// DelegationTaskUpdate is the builder for updating DelegationTask entities.
type DelegationTaskUpdate struct {
	config
	hooks    []Hook
	mutation *DelegationTaskMutation
}

// Where appends a list predicates to the DelegationTaskUpdate builder.
func (_u *DelegationTaskUpdate) Where(ps ...predicate.DelegationTask) *DelegationTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskUID sets the "task_uid" field.
func (_u *DelegationTaskUpdate) SetTaskUID(v string) *DelegationTaskUpdate {
	_u.mutation.SetTaskUID(v)
	return _u
}

// SetNillableTaskUID sets the "task_uid" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableTaskUID(v *string) *DelegationTaskUpdate {
	if v != nil {
		_u.SetTaskUID(*v)
	}
	return _u
}

// SetEmployeeName sets the "employee_name" field.
func (_u *DelegationTaskUpdate) SetEmployeeName(v string) *DelegationTaskUpdate {
	_u.mutation.SetEmployeeName(v)
	return _u
}

// SetNillableEmployeeName sets the "employee_name" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableEmployeeName(v *string) *DelegationTaskUpdate {
	if v != nil {
		_u.SetEmployeeName(*v)
	}
	return _u
}

// SetAssignedToEmail sets the "assigned_to_email" field.
func (_u *DelegationTaskUpdate) SetAssignedToEmail(v string) *DelegationTaskUpdate {
	_u.mutation.SetAssignedToEmail(v)
	return _u
}

// SetNillableAssignedToEmail sets the "assigned_to_email" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableAssignedToEmail(v *string) *DelegationTaskUpdate {
	if v != nil {
		_u.SetAssignedToEmail(*v)
	}
	return _u
}

// SetApproverEmail sets the "approver_email" field.
func (_u *DelegationTaskUpdate) SetApproverEmail(v string) *DelegationTaskUpdate {
	_u.mutation.SetApproverEmail(v)
	return _u
}

// SetNillableApproverEmail sets the "approver_email" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableApproverEmail(v *string) *DelegationTaskUpdate {
	if v != nil {
		_u.SetApproverEmail(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DelegationTaskUpdate) SetDescription(v string) *DelegationTaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableDescription(v *string) *DelegationTaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *DelegationTaskUpdate) SetTargetDate(v time.Time) *DelegationTaskUpdate {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableTargetDate(v *time.Time) *DelegationTaskUpdate {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *DelegationTaskUpdate) SetPriority(v string) *DelegationTaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillablePriority(v *string) *DelegationTaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetApprovalNeeded sets the "approval_needed" field.
func (_u *DelegationTaskUpdate) SetApprovalNeeded(v bool) *DelegationTaskUpdate {
	_u.mutation.SetApprovalNeeded(v)
	return _u
}

// SetNillableApprovalNeeded sets the "approval_needed" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableApprovalNeeded(v *bool) *DelegationTaskUpdate {
	if v != nil {
		_u.SetApprovalNeeded(*v)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *DelegationTaskUpdate) SetAssignedBy(v string) *DelegationTaskUpdate {
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableAssignedBy(v *string) *DelegationTaskUpdate {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *DelegationTaskUpdate) SetRemarks(v string) *DelegationTaskUpdate {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableRemarks(v *string) *DelegationTaskUpdate {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DelegationTaskUpdate) SetStatus(v string) *DelegationTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableStatus(v *string) *DelegationTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPreviousStatus sets the "previous_status" field.
func (_u *DelegationTaskUpdate) SetPreviousStatus(v string) *DelegationTaskUpdate {
	_u.mutation.SetPreviousStatus(v)
	return _u
}

// SetNillablePreviousStatus sets the "previous_status" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillablePreviousStatus(v *string) *DelegationTaskUpdate {
	if v != nil {
		_u.SetPreviousStatus(*v)
	}
	return _u
}

// SetRevisedDateRequest sets the "revised_date_request" field.
func (_u *DelegationTaskUpdate) SetRevisedDateRequest(v time.Time) *DelegationTaskUpdate {
	_u.mutation.SetRevisedDateRequest(v)
	return _u
}

// SetNillableRevisedDateRequest sets the "revised_date_request" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableRevisedDateRequest(v *time.Time) *DelegationTaskUpdate {
	if v != nil {
		_u.SetRevisedDateRequest(*v)
	}
	return _u
}

// ClearRevisedDateRequest clears the value of the "revised_date_request" field.
func (_u *DelegationTaskUpdate) ClearRevisedDateRequest() *DelegationTaskUpdate {
	_u.mutation.ClearRevisedDateRequest()
	return _u
}

// SetRevisionRemarks sets the "revision_remarks" field.
func (_u *DelegationTaskUpdate) SetRevisionRemarks(v string) *DelegationTaskUpdate {
	_u.mutation.SetRevisionRemarks(v)
	return _u
}

// SetNillableRevisionRemarks sets the "revision_remarks" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableRevisionRemarks(v *string) *DelegationTaskUpdate {
	if v != nil {
		_u.SetRevisionRemarks(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DelegationTaskUpdate) SetCreatedAt(v time.Time) *DelegationTaskUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DelegationTaskUpdate) SetNillableCreatedAt(v *time.Time) *DelegationTaskUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddCommentIDs adds the "comments" edge to the TaskComment entity by IDs.
func (_u *DelegationTaskUpdate) AddCommentIDs(ids ...uuid.UUID) *DelegationTaskUpdate {
	_u.mutation.AddCommentIDs(ids...)
	return _u
}

// AddComments adds the "comments" edges to the TaskComment entity.
func (_u *DelegationTaskUpdate) AddComments(v ...*TaskComment) *DelegationTaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommentIDs(ids...)
}

// Mutation returns the DelegationTaskMutation object of the builder.
func (_u *DelegationTaskUpdate) Mutation() *DelegationTaskMutation {
	return _u.mutation
}

// ClearComments clears all "comments" edges to the TaskComment entity.
func (_u *DelegationTaskUpdate) ClearComments() *DelegationTaskUpdate {
	_u.mutation.ClearComments()
	return _u
}

// RemoveCommentIDs removes the "comments" edge to TaskComment entities by IDs.
func (_u *DelegationTaskUpdate) RemoveCommentIDs(ids ...uuid.UUID) *DelegationTaskUpdate {
	_u.mutation.RemoveCommentIDs(ids...)
	return _u
}

// RemoveComments removes "comments" edges to TaskComment entities.
func (_u *DelegationTaskUpdate) RemoveComments(v ...*TaskComment) *DelegationTaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DelegationTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DelegationTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DelegationTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DelegationTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DelegationTaskUpdate) check() error {
	if v, ok := _u.mutation.TaskUID(); ok {
		if err := delegationtask.TaskUIDValidator(v); err != nil {
			return &ValidationError{Name: "task_uid", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.task_uid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedToEmail(); ok {
		if err := delegationtask.AssignedToEmailValidator(v); err != nil {
			return &ValidationError{Name: "assigned_to_email", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.assigned_to_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := delegationtask.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := delegationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DelegationTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(delegationtask.Table, delegationtask.Columns, sqlgraph.NewFieldSpec(delegationtask.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskUID(); ok {
		_spec.SetField(delegationtask.FieldTaskUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmployeeName(); ok {
		_spec.SetField(delegationtask.FieldEmployeeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedToEmail(); ok {
		_spec.SetField(delegationtask.FieldAssignedToEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApproverEmail(); ok {
		_spec.SetField(delegationtask.FieldApproverEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(delegationtask.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(delegationtask.FieldTargetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(delegationtask.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApprovalNeeded(); ok {
		_spec.SetField(delegationtask.FieldApprovalNeeded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(delegationtask.FieldAssignedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(delegationtask.FieldRemarks, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(delegationtask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousStatus(); ok {
		_spec.SetField(delegationtask.FieldPreviousStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RevisedDateRequest(); ok {
		_spec.SetField(delegationtask.FieldRevisedDateRequest, field.TypeTime, value)
	}
	if _u.mutation.RevisedDateRequestCleared() {
		_spec.ClearField(delegationtask.FieldRevisedDateRequest, field.TypeTime)
	}
	if value, ok := _u.mutation.RevisionRemarks(); ok {
		_spec.SetField(delegationtask.FieldRevisionRemarks, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(delegationtask.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   delegationtask.CommentsTable,
			Columns: []string{delegationtask.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskcomment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommentsIDs(); len(nodes) > 0 && !_u.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   delegationtask.CommentsTable,
			Columns: []string{delegationtask.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskcomment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   delegationtask.CommentsTable,
			Columns: []string{delegationtask.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskcomment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{delegationtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DelegationTaskUpdateOne is the builder for updating a single DelegationTask entity.
type DelegationTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DelegationTaskMutation
}

// SetTaskUID sets the "task_uid" field.
func (_u *DelegationTaskUpdateOne) SetTaskUID(v string) *DelegationTaskUpdateOne {
	_u.mutation.SetTaskUID(v)
	return _u
}

// SetNillableTaskUID sets the "task_uid" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableTaskUID(v *string) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetTaskUID(*v)
	}
	return _u
}

// SetEmployeeName sets the "employee_name" field.
func (_u *DelegationTaskUpdateOne) SetEmployeeName(v string) *DelegationTaskUpdateOne {
	_u.mutation.SetEmployeeName(v)
	return _u
}

// SetNillableEmployeeName sets the "employee_name" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableEmployeeName(v *string) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetEmployeeName(*v)
	}
	return _u
}

// SetAssignedToEmail sets the "assigned_to_email" field.
func (_u *DelegationTaskUpdateOne) SetAssignedToEmail(v string) *DelegationTaskUpdateOne {
	_u.mutation.SetAssignedToEmail(v)
	return _u
}

// SetNillableAssignedToEmail sets the "assigned_to_email" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableAssignedToEmail(v *string) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetAssignedToEmail(*v)
	}
	return _u
}

// SetApproverEmail sets the "approver_email" field.
func (_u *DelegationTaskUpdateOne) SetApproverEmail(v string) *DelegationTaskUpdateOne {
	_u.mutation.SetApproverEmail(v)
	return _u
}

// SetNillableApproverEmail sets the "approver_email" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableApproverEmail(v *string) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetApproverEmail(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DelegationTaskUpdateOne) SetDescription(v string) *DelegationTaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableDescription(v *string) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *DelegationTaskUpdateOne) SetTargetDate(v time.Time) *DelegationTaskUpdateOne {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableTargetDate(v *time.Time) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *DelegationTaskUpdateOne) SetPriority(v string) *DelegationTaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillablePriority(v *string) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetApprovalNeeded sets the "approval_needed" field.
func (_u *DelegationTaskUpdateOne) SetApprovalNeeded(v bool) *DelegationTaskUpdateOne {
	_u.mutation.SetApprovalNeeded(v)
	return _u
}

// SetNillableApprovalNeeded sets the "approval_needed" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableApprovalNeeded(v *bool) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetApprovalNeeded(*v)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *DelegationTaskUpdateOne) SetAssignedBy(v string) *DelegationTaskUpdateOne {
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableAssignedBy(v *string) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *DelegationTaskUpdateOne) SetRemarks(v string) *DelegationTaskUpdateOne {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableRemarks(v *string) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DelegationTaskUpdateOne) SetStatus(v string) *DelegationTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableStatus(v *string) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPreviousStatus sets the "previous_status" field.
func (_u *DelegationTaskUpdateOne) SetPreviousStatus(v string) *DelegationTaskUpdateOne {
	_u.mutation.SetPreviousStatus(v)
	return _u
}

// SetNillablePreviousStatus sets the "previous_status" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillablePreviousStatus(v *string) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetPreviousStatus(*v)
	}
	return _u
}

// SetRevisedDateRequest sets the "revised_date_request" field.
func (_u *DelegationTaskUpdateOne) SetRevisedDateRequest(v time.Time) *DelegationTaskUpdateOne {
	_u.mutation.SetRevisedDateRequest(v)
	return _u
}

// SetNillableRevisedDateRequest sets the "revised_date_request" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableRevisedDateRequest(v *time.Time) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetRevisedDateRequest(*v)
	}
	return _u
}

// ClearRevisedDateRequest clears the value of the "revised_date_request" field.
func (_u *DelegationTaskUpdateOne) ClearRevisedDateRequest() *DelegationTaskUpdateOne {
	_u.mutation.ClearRevisedDateRequest()
	return _u
}

// SetRevisionRemarks sets the "revision_remarks" field.
func (_u *DelegationTaskUpdateOne) SetRevisionRemarks(v string) *DelegationTaskUpdateOne {
	_u.mutation.SetRevisionRemarks(v)
	return _u
}

// SetNillableRevisionRemarks sets the "revision_remarks" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableRevisionRemarks(v *string) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetRevisionRemarks(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DelegationTaskUpdateOne) SetCreatedAt(v time.Time) *DelegationTaskUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DelegationTaskUpdateOne) SetNillableCreatedAt(v *time.Time) *DelegationTaskUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddCommentIDs adds the "comments" edge to the TaskComment entity by IDs.
func (_u *DelegationTaskUpdateOne) AddCommentIDs(ids ...uuid.UUID) *DelegationTaskUpdateOne {
	_u.mutation.AddCommentIDs(ids...)
	return _u
}

// AddComments adds the "comments" edges to the TaskComment entity.
func (_u *DelegationTaskUpdateOne) AddComments(v ...*TaskComment) *DelegationTaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommentIDs(ids...)
}

// Mutation returns the DelegationTaskMutation object of the builder.
func (_u *DelegationTaskUpdateOne) Mutation() *DelegationTaskMutation {
	return _u.mutation
}

// ClearComments clears all "comments" edges to the TaskComment entity.
func (_u *DelegationTaskUpdateOne) ClearComments() *DelegationTaskUpdateOne {
	_u.mutation.ClearComments()
	return _u
}

// RemoveCommentIDs removes the "comments" edge to TaskComment entities by IDs.
func (_u *DelegationTaskUpdateOne) RemoveCommentIDs(ids ...uuid.UUID) *DelegationTaskUpdateOne {
	_u.mutation.RemoveCommentIDs(ids...)
	return _u
}

// RemoveComments removes "comments" edges to TaskComment entities.
func (_u *DelegationTaskUpdateOne) RemoveComments(v ...*TaskComment) *DelegationTaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommentIDs(ids...)
}

// Where appends a list predicates to the DelegationTaskUpdate builder.
func (_u *DelegationTaskUpdateOne) Where(ps ...predicate.DelegationTask) *DelegationTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DelegationTaskUpdateOne) Select(field string, fields ...string) *DelegationTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DelegationTask entity.
func (_u *DelegationTaskUpdateOne) Save(ctx context.Context) (*DelegationTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DelegationTaskUpdateOne) SaveX(ctx context.Context) *DelegationTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DelegationTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DelegationTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DelegationTaskUpdateOne) check() error {
	if v, ok := _u.mutation.TaskUID(); ok {
		if err := delegationtask.TaskUIDValidator(v); err != nil {
			return &ValidationError{Name: "task_uid", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.task_uid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedToEmail(); ok {
		if err := delegationtask.AssignedToEmailValidator(v); err != nil {
			return &ValidationError{Name: "assigned_to_email", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.assigned_to_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := delegationtask.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := delegationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DelegationTaskUpdateOne) sqlSave(ctx context.Context) (_node *DelegationTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(delegationtask.Table, delegationtask.Columns, sqlgraph.NewFieldSpec(delegationtask.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DelegationTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, delegationtask.FieldID)
		for _, f := range fields {
			if !delegationtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != delegationtask.FieldID {
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
	if value, ok := _u.mutation.TaskUID(); ok {
		_spec.SetField(delegationtask.FieldTaskUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmployeeName(); ok {
		_spec.SetField(delegationtask.FieldEmployeeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedToEmail(); ok {
		_spec.SetField(delegationtask.FieldAssignedToEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApproverEmail(); ok {
		_spec.SetField(delegationtask.FieldApproverEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(delegationtask.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(delegationtask.FieldTargetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(delegationtask.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApprovalNeeded(); ok {
		_spec.SetField(delegationtask.FieldApprovalNeeded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(delegationtask.FieldAssignedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(delegationtask.FieldRemarks, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(delegationtask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousStatus(); ok {
		_spec.SetField(delegationtask.FieldPreviousStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RevisedDateRequest(); ok {
		_spec.SetField(delegationtask.FieldRevisedDateRequest, field.TypeTime, value)
	}
	if _u.mutation.RevisedDateRequestCleared() {
		_spec.ClearField(delegationtask.FieldRevisedDateRequest, field.TypeTime)
	}
	if value, ok := _u.mutation.RevisionRemarks(); ok {
		_spec.SetField(delegationtask.FieldRevisionRemarks, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(delegationtask.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   delegationtask.CommentsTable,
			Columns: []string{delegationtask.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskcomment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommentsIDs(); len(nodes) > 0 && !_u.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   delegationtask.CommentsTable,
			Columns: []string{delegationtask.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskcomment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   delegationtask.CommentsTable,
			Columns: []string{delegationtask.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskcomment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DelegationTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{delegationtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
