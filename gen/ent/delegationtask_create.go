// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dibiaa/fms-tracker/gen/ent/delegationtask"
	"github.com/dibiaa/fms-tracker/gen/ent/taskcomment"
	"github.com/google/uuid"
)

// DelegationTaskCreate is the builder for creating a DelegationTask entity.
type DelegationTaskCreate struct {
	config
	mutation *DelegationTaskMutation
	hooks    []Hook
}

// SetTaskUID sets the "task_uid" field.
func (_c *DelegationTaskCreate) SetTaskUID(v string) *DelegationTaskCreate {
	_c.mutation.SetTaskUID(v)
	return _c
}

// SetEmployeeName sets the "employee_name" field.
func (_c *DelegationTaskCreate) SetEmployeeName(v string) *DelegationTaskCreate {
	_c.mutation.SetEmployeeName(v)
	return _c
}

// SetNillableEmployeeName sets the "employee_name" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillableEmployeeName(v *string) *DelegationTaskCreate {
	if v != nil {
		_c.SetEmployeeName(*v)
	}
	return _c
}

// SetAssignedToEmail sets the "assigned_to_email" field.
func (_c *DelegationTaskCreate) SetAssignedToEmail(v string) *DelegationTaskCreate {
	_c.mutation.SetAssignedToEmail(v)
	return _c
}

// SetApproverEmail sets the "approver_email" field.
func (_c *DelegationTaskCreate) SetApproverEmail(v string) *DelegationTaskCreate {
	_c.mutation.SetApproverEmail(v)
	return _c
}

// SetNillableApproverEmail sets the "approver_email" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillableApproverEmail(v *string) *DelegationTaskCreate {
	if v != nil {
		_c.SetApproverEmail(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *DelegationTaskCreate) SetDescription(v string) *DelegationTaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetTargetDate sets the "target_date" field.
func (_c *DelegationTaskCreate) SetTargetDate(v time.Time) *DelegationTaskCreate {
	_c.mutation.SetTargetDate(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *DelegationTaskCreate) SetPriority(v string) *DelegationTaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillablePriority(v *string) *DelegationTaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetApprovalNeeded sets the "approval_needed" field.
func (_c *DelegationTaskCreate) SetApprovalNeeded(v bool) *DelegationTaskCreate {
	_c.mutation.SetApprovalNeeded(v)
	return _c
}

// SetNillableApprovalNeeded sets the "approval_needed" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillableApprovalNeeded(v *bool) *DelegationTaskCreate {
	if v != nil {
		_c.SetApprovalNeeded(*v)
	}
	return _c
}

// SetAssignedBy sets the "assigned_by" field.
func (_c *DelegationTaskCreate) SetAssignedBy(v string) *DelegationTaskCreate {
	_c.mutation.SetAssignedBy(v)
	return _c
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillableAssignedBy(v *string) *DelegationTaskCreate {
	if v != nil {
		_c.SetAssignedBy(*v)
	}
	return _c
}

// SetRemarks sets the "remarks" field.
func (_c *DelegationTaskCreate) SetRemarks(v string) *DelegationTaskCreate {
	_c.mutation.SetRemarks(v)
	return _c
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillableRemarks(v *string) *DelegationTaskCreate {
	if v != nil {
		_c.SetRemarks(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DelegationTaskCreate) SetStatus(v string) *DelegationTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillableStatus(v *string) *DelegationTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPreviousStatus sets the "previous_status" field.
func (_c *DelegationTaskCreate) SetPreviousStatus(v string) *DelegationTaskCreate {
	_c.mutation.SetPreviousStatus(v)
	return _c
}

// SetNillablePreviousStatus sets the "previous_status" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillablePreviousStatus(v *string) *DelegationTaskCreate {
	if v != nil {
		_c.SetPreviousStatus(*v)
	}
	return _c
}

// SetRevisedDateRequest sets the "revised_date_request" field.
func (_c *DelegationTaskCreate) SetRevisedDateRequest(v time.Time) *DelegationTaskCreate {
	_c.mutation.SetRevisedDateRequest(v)
	return _c
}

// SetNillableRevisedDateRequest sets the "revised_date_request" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillableRevisedDateRequest(v *time.Time) *DelegationTaskCreate {
	if v != nil {
		_c.SetRevisedDateRequest(*v)
	}
	return _c
}

// SetRevisionRemarks sets the "revision_remarks" field.
func (_c *DelegationTaskCreate) SetRevisionRemarks(v string) *DelegationTaskCreate {
	_c.mutation.SetRevisionRemarks(v)
	return _c
}

// SetNillableRevisionRemarks sets the "revision_remarks" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillableRevisionRemarks(v *string) *DelegationTaskCreate {
	if v != nil {
		_c.SetRevisionRemarks(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DelegationTaskCreate) SetCreatedAt(v time.Time) *DelegationTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillableCreatedAt(v *time.Time) *DelegationTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DelegationTaskCreate) SetID(v uuid.UUID) *DelegationTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DelegationTaskCreate) SetNillableID(v *uuid.UUID) *DelegationTaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddCommentIDs adds the "comments" edge to the TaskComment entity by IDs.
func (_c *DelegationTaskCreate) AddCommentIDs(ids ...uuid.UUID) *DelegationTaskCreate {
	_c.mutation.AddCommentIDs(ids...)
	return _c
}

// AddComments adds the "comments" edges to the TaskComment entity.
func (_c *DelegationTaskCreate) AddComments(v ...*TaskComment) *DelegationTaskCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommentIDs(ids...)
}

// Mutation returns the DelegationTaskMutation object of the builder.
func (_c *DelegationTaskCreate) Mutation() *DelegationTaskMutation {
	return _c.mutation
}

// Save creates the DelegationTask in the database.
func (_c *DelegationTaskCreate) Save(ctx context.Context) (*DelegationTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DelegationTaskCreate) SaveX(ctx context.Context) *DelegationTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DelegationTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DelegationTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DelegationTaskCreate) defaults() {
	if _, ok := _c.mutation.EmployeeName(); !ok {
		v := delegationtask.DefaultEmployeeName
		_c.mutation.SetEmployeeName(v)
	}
	if _, ok := _c.mutation.ApproverEmail(); !ok {
		v := delegationtask.DefaultApproverEmail
		_c.mutation.SetApproverEmail(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := delegationtask.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.ApprovalNeeded(); !ok {
		v := delegationtask.DefaultApprovalNeeded
		_c.mutation.SetApprovalNeeded(v)
	}
	if _, ok := _c.mutation.AssignedBy(); !ok {
		v := delegationtask.DefaultAssignedBy
		_c.mutation.SetAssignedBy(v)
	}
	if _, ok := _c.mutation.Remarks(); !ok {
		v := delegationtask.DefaultRemarks
		_c.mutation.SetRemarks(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := delegationtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PreviousStatus(); !ok {
		v := delegationtask.DefaultPreviousStatus
		_c.mutation.SetPreviousStatus(v)
	}
	if _, ok := _c.mutation.RevisionRemarks(); !ok {
		v := delegationtask.DefaultRevisionRemarks
		_c.mutation.SetRevisionRemarks(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := delegationtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := delegationtask.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DelegationTaskCreate) check() error {
	if _, ok := _c.mutation.TaskUID(); !ok {
		return &ValidationError{Name: "task_uid", err: errors.New(`ent: missing required field "DelegationTask.task_uid"`)}
	}
	if v, ok := _c.mutation.TaskUID(); ok {
		if err := delegationtask.TaskUIDValidator(v); err != nil {
			return &ValidationError{Name: "task_uid", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.task_uid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmployeeName(); !ok {
		return &ValidationError{Name: "employee_name", err: errors.New(`ent: missing required field "DelegationTask.employee_name"`)}
	}
	if _, ok := _c.mutation.AssignedToEmail(); !ok {
		return &ValidationError{Name: "assigned_to_email", err: errors.New(`ent: missing required field "DelegationTask.assigned_to_email"`)}
	}
	if v, ok := _c.mutation.AssignedToEmail(); ok {
		if err := delegationtask.AssignedToEmailValidator(v); err != nil {
			return &ValidationError{Name: "assigned_to_email", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.assigned_to_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApproverEmail(); !ok {
		return &ValidationError{Name: "approver_email", err: errors.New(`ent: missing required field "DelegationTask.approver_email"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "DelegationTask.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := delegationtask.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetDate(); !ok {
		return &ValidationError{Name: "target_date", err: errors.New(`ent: missing required field "DelegationTask.target_date"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "DelegationTask.priority"`)}
	}
	if _, ok := _c.mutation.ApprovalNeeded(); !ok {
		return &ValidationError{Name: "approval_needed", err: errors.New(`ent: missing required field "DelegationTask.approval_needed"`)}
	}
	if _, ok := _c.mutation.AssignedBy(); !ok {
		return &ValidationError{Name: "assigned_by", err: errors.New(`ent: missing required field "DelegationTask.assigned_by"`)}
	}
	if _, ok := _c.mutation.Remarks(); !ok {
		return &ValidationError{Name: "remarks", err: errors.New(`ent: missing required field "DelegationTask.remarks"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DelegationTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := delegationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DelegationTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreviousStatus(); !ok {
		return &ValidationError{Name: "previous_status", err: errors.New(`ent: missing required field "DelegationTask.previous_status"`)}
	}
	if _, ok := _c.mutation.RevisionRemarks(); !ok {
		return &ValidationError{Name: "revision_remarks", err: errors.New(`ent: missing required field "DelegationTask.revision_remarks"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DelegationTask.created_at"`)}
	}
	return nil
}

func (_c *DelegationTaskCreate) sqlSave(ctx context.Context) (*DelegationTask, error) {
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

func (_c *DelegationTaskCreate) createSpec() (*DelegationTask, *sqlgraph.CreateSpec) {
	var (
		_node = &DelegationTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(delegationtask.Table, sqlgraph.NewFieldSpec(delegationtask.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TaskUID(); ok {
		_spec.SetField(delegationtask.FieldTaskUID, field.TypeString, value)
		_node.TaskUID = value
	}
	if value, ok := _c.mutation.EmployeeName(); ok {
		_spec.SetField(delegationtask.FieldEmployeeName, field.TypeString, value)
		_node.EmployeeName = value
	}
	if value, ok := _c.mutation.AssignedToEmail(); ok {
		_spec.SetField(delegationtask.FieldAssignedToEmail, field.TypeString, value)
		_node.AssignedToEmail = value
	}
	if value, ok := _c.mutation.ApproverEmail(); ok {
		_spec.SetField(delegationtask.FieldApproverEmail, field.TypeString, value)
		_node.ApproverEmail = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(delegationtask.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TargetDate(); ok {
		_spec.SetField(delegationtask.FieldTargetDate, field.TypeTime, value)
		_node.TargetDate = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(delegationtask.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.ApprovalNeeded(); ok {
		_spec.SetField(delegationtask.FieldApprovalNeeded, field.TypeBool, value)
		_node.ApprovalNeeded = value
	}
	if value, ok := _c.mutation.AssignedBy(); ok {
		_spec.SetField(delegationtask.FieldAssignedBy, field.TypeString, value)
		_node.AssignedBy = value
	}
	if value, ok := _c.mutation.Remarks(); ok {
		_spec.SetField(delegationtask.FieldRemarks, field.TypeString, value)
		_node.Remarks = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(delegationtask.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PreviousStatus(); ok {
		_spec.SetField(delegationtask.FieldPreviousStatus, field.TypeString, value)
		_node.PreviousStatus = value
	}
	if value, ok := _c.mutation.RevisedDateRequest(); ok {
		_spec.SetField(delegationtask.FieldRevisedDateRequest, field.TypeTime, value)
		_node.RevisedDateRequest = &value
	}
	if value, ok := _c.mutation.RevisionRemarks(); ok {
		_spec.SetField(delegationtask.FieldRevisionRemarks, field.TypeString, value)
		_node.RevisionRemarks = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(delegationtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CommentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DelegationTaskCreateBulk is the builder for creating many DelegationTask entities in bulk.
type DelegationTaskCreateBulk struct {
	config
	err      error
	builders []*DelegationTaskCreate
}

// Save creates the DelegationTask entities in the database.
func (_c *DelegationTaskCreateBulk) Save(ctx context.Context) ([]*DelegationTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DelegationTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DelegationTaskMutation)
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
func (_c *DelegationTaskCreateBulk) SaveX(ctx context.Context) []*DelegationTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DelegationTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DelegationTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
