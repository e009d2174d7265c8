// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/checklisttask"
	"github.com/dibiaa/fms-tracker/gen/ent/delegationtask"
	"github.com/dibiaa/fms-tracker/gen/ent/employeeplan"
	"github.com/dibiaa/fms-tracker/gen/ent/holiday"
	"github.com/dibiaa/fms-tracker/gen/ent/jobrecord"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
	"github.com/dibiaa/fms-tracker/gen/ent/stepconfig"
	"github.com/dibiaa/fms-tracker/gen/ent/steptask"
	"github.com/dibiaa/fms-tracker/gen/ent/taskcomment"
	"github.com/dibiaa/fms-tracker/gen/ent/user"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChecklistTask  = "ChecklistTask"
	TypeDelegationTask = "DelegationTask"
	TypeEmployeePlan   = "EmployeePlan"
	TypeHoliday        = "Holiday"
	TypeJobRecord      = "JobRecord"
	TypeStepConfig     = "StepConfig"
	TypeStepTask       = "StepTask"
	TypeTaskComment    = "TaskComment"
	TypeUser           = "User"
)

// ChecklistTaskMutation represents an operation that mutates the ChecklistTask nodes in the graph.
type ChecklistTaskMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	uid            *string
	description    *string
	employee_email *string
	employee_name  *string
	frequency      *string
	target_date    *time.Time
	status         *string
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ChecklistTask, error)
	predicates     []predicate.ChecklistTask
}

var _ ent.Mutation = (*ChecklistTaskMutation)(nil)

// checklisttaskOption allows management of the mutation configuration using functional options.
type checklisttaskOption func(*ChecklistTaskMutation)

// newChecklistTaskMutation creates new mutation for the ChecklistTask entity.
func newChecklistTaskMutation(c config, op Op, opts ...checklisttaskOption) *ChecklistTaskMutation {
	m := &ChecklistTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeChecklistTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChecklistTaskID sets the ID field of the mutation.
func withChecklistTaskID(id uuid.UUID) checklisttaskOption {
	return func(m *ChecklistTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ChecklistTask
		)
		m.oldValue = func(ctx context.Context) (*ChecklistTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChecklistTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChecklistTask sets the old ChecklistTask of the mutation.
func withChecklistTask(node *ChecklistTask) checklisttaskOption {
	return func(m *ChecklistTaskMutation) {
		m.oldValue = func(context.Context) (*ChecklistTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChecklistTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChecklistTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChecklistTask entities.
func (m *ChecklistTaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChecklistTaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChecklistTaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChecklistTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUID sets the "uid" field.
func (m *ChecklistTaskMutation) SetUID(s string) {
	m.uid = &s
}

// UID returns the value of the "uid" field in the mutation.
func (m *ChecklistTaskMutation) UID() (r string, exists bool) {
	v := m.uid
	if v == nil {
		return
	}
	return *v, true
}

// OldUID returns the old "uid" field's value of the ChecklistTask entity.
// If the ChecklistTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistTaskMutation) OldUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUID: %w", err)
	}
	return oldValue.UID, nil
}

// ResetUID resets all changes to the "uid" field.
func (m *ChecklistTaskMutation) ResetUID() {
	m.uid = nil
}

// SetDescription sets the "description" field.
func (m *ChecklistTaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ChecklistTaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ChecklistTask entity.
// If the ChecklistTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistTaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ChecklistTaskMutation) ResetDescription() {
	m.description = nil
}

// SetEmployeeEmail sets the "employee_email" field.
func (m *ChecklistTaskMutation) SetEmployeeEmail(s string) {
	m.employee_email = &s
}

// EmployeeEmail returns the value of the "employee_email" field in the mutation.
func (m *ChecklistTaskMutation) EmployeeEmail() (r string, exists bool) {
	v := m.employee_email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeEmail returns the old "employee_email" field's value of the ChecklistTask entity.
// If the ChecklistTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistTaskMutation) OldEmployeeEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeEmail: %w", err)
	}
	return oldValue.EmployeeEmail, nil
}

// ResetEmployeeEmail resets all changes to the "employee_email" field.
func (m *ChecklistTaskMutation) ResetEmployeeEmail() {
	m.employee_email = nil
}

// SetEmployeeName sets the "employee_name" field.
func (m *ChecklistTaskMutation) SetEmployeeName(s string) {
	m.employee_name = &s
}

// EmployeeName returns the value of the "employee_name" field in the mutation.
func (m *ChecklistTaskMutation) EmployeeName() (r string, exists bool) {
	v := m.employee_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeName returns the old "employee_name" field's value of the ChecklistTask entity.
// If the ChecklistTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistTaskMutation) OldEmployeeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeName: %w", err)
	}
	return oldValue.EmployeeName, nil
}

// ResetEmployeeName resets all changes to the "employee_name" field.
func (m *ChecklistTaskMutation) ResetEmployeeName() {
	m.employee_name = nil
}

// SetFrequency sets the "frequency" field.
func (m *ChecklistTaskMutation) SetFrequency(s string) {
	m.frequency = &s
}

// Frequency returns the value of the "frequency" field in the mutation.
func (m *ChecklistTaskMutation) Frequency() (r string, exists bool) {
	v := m.frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequency returns the old "frequency" field's value of the ChecklistTask entity.
// If the ChecklistTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistTaskMutation) OldFrequency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequency: %w", err)
	}
	return oldValue.Frequency, nil
}

// ResetFrequency resets all changes to the "frequency" field.
func (m *ChecklistTaskMutation) ResetFrequency() {
	m.frequency = nil
}

// SetTargetDate sets the "target_date" field.
func (m *ChecklistTaskMutation) SetTargetDate(t time.Time) {
	m.target_date = &t
}

// TargetDate returns the value of the "target_date" field in the mutation.
func (m *ChecklistTaskMutation) TargetDate() (r time.Time, exists bool) {
	v := m.target_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetDate returns the old "target_date" field's value of the ChecklistTask entity.
// If the ChecklistTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistTaskMutation) OldTargetDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetDate: %w", err)
	}
	return oldValue.TargetDate, nil
}

// ResetTargetDate resets all changes to the "target_date" field.
func (m *ChecklistTaskMutation) ResetTargetDate() {
	m.target_date = nil
}

// SetStatus sets the "status" field.
func (m *ChecklistTaskMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ChecklistTaskMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ChecklistTask entity.
// If the ChecklistTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistTaskMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ChecklistTaskMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ChecklistTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ChecklistTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ChecklistTask entity.
// If the ChecklistTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ChecklistTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[checklisttask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ChecklistTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[checklisttask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ChecklistTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, checklisttask.FieldCompletedAt)
}

// Where appends a list predicates to the ChecklistTaskMutation builder.
func (m *ChecklistTaskMutation) Where(ps ...predicate.ChecklistTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChecklistTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChecklistTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChecklistTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChecklistTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChecklistTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChecklistTask).
func (m *ChecklistTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChecklistTaskMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.uid != nil {
		fields = append(fields, checklisttask.FieldUID)
	}
	if m.description != nil {
		fields = append(fields, checklisttask.FieldDescription)
	}
	if m.employee_email != nil {
		fields = append(fields, checklisttask.FieldEmployeeEmail)
	}
	if m.employee_name != nil {
		fields = append(fields, checklisttask.FieldEmployeeName)
	}
	if m.frequency != nil {
		fields = append(fields, checklisttask.FieldFrequency)
	}
	if m.target_date != nil {
		fields = append(fields, checklisttask.FieldTargetDate)
	}
	if m.status != nil {
		fields = append(fields, checklisttask.FieldStatus)
	}
	if m.completed_at != nil {
		fields = append(fields, checklisttask.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChecklistTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checklisttask.FieldUID:
		return m.UID()
	case checklisttask.FieldDescription:
		return m.Description()
	case checklisttask.FieldEmployeeEmail:
		return m.EmployeeEmail()
	case checklisttask.FieldEmployeeName:
		return m.EmployeeName()
	case checklisttask.FieldFrequency:
		return m.Frequency()
	case checklisttask.FieldTargetDate:
		return m.TargetDate()
	case checklisttask.FieldStatus:
		return m.Status()
	case checklisttask.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChecklistTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checklisttask.FieldUID:
		return m.OldUID(ctx)
	case checklisttask.FieldDescription:
		return m.OldDescription(ctx)
	case checklisttask.FieldEmployeeEmail:
		return m.OldEmployeeEmail(ctx)
	case checklisttask.FieldEmployeeName:
		return m.OldEmployeeName(ctx)
	case checklisttask.FieldFrequency:
		return m.OldFrequency(ctx)
	case checklisttask.FieldTargetDate:
		return m.OldTargetDate(ctx)
	case checklisttask.FieldStatus:
		return m.OldStatus(ctx)
	case checklisttask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChecklistTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChecklistTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checklisttask.FieldUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUID(v)
		return nil
	case checklisttask.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case checklisttask.FieldEmployeeEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeEmail(v)
		return nil
	case checklisttask.FieldEmployeeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeName(v)
		return nil
	case checklisttask.FieldFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequency(v)
		return nil
	case checklisttask.FieldTargetDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetDate(v)
		return nil
	case checklisttask.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case checklisttask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChecklistTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChecklistTaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChecklistTaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChecklistTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChecklistTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChecklistTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checklisttask.FieldCompletedAt) {
		fields = append(fields, checklisttask.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChecklistTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChecklistTaskMutation) ClearField(name string) error {
	switch name {
	case checklisttask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ChecklistTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChecklistTaskMutation) ResetField(name string) error {
	switch name {
	case checklisttask.FieldUID:
		m.ResetUID()
		return nil
	case checklisttask.FieldDescription:
		m.ResetDescription()
		return nil
	case checklisttask.FieldEmployeeEmail:
		m.ResetEmployeeEmail()
		return nil
	case checklisttask.FieldEmployeeName:
		m.ResetEmployeeName()
		return nil
	case checklisttask.FieldFrequency:
		m.ResetFrequency()
		return nil
	case checklisttask.FieldTargetDate:
		m.ResetTargetDate()
		return nil
	case checklisttask.FieldStatus:
		m.ResetStatus()
		return nil
	case checklisttask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ChecklistTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChecklistTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChecklistTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChecklistTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChecklistTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChecklistTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChecklistTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChecklistTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChecklistTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChecklistTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChecklistTask edge %s", name)
}

// DelegationTaskMutation represents an operation that mutates the DelegationTask nodes in the graph.
type DelegationTaskMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	task_uid             *string
	employee_name        *string
	assigned_to_email    *string
	approver_email       *string
	description          *string
	target_date          *time.Time
	priority             *string
	approval_needed      *bool
	assigned_by          *string
	remarks              *string
	status               *string
	previous_status      *string
	revised_date_request *time.Time
	revision_remarks     *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	comments             map[uuid.UUID]struct{}
	removedcomments      map[uuid.UUID]struct{}
	clearedcomments      bool
	done                 bool
	oldValue             func(context.Context) (*DelegationTask, error)
	predicates           []predicate.DelegationTask
}

var _ ent.Mutation = (*DelegationTaskMutation)(nil)

// delegationtaskOption allows management of the mutation configuration using functional options.
type delegationtaskOption func(*DelegationTaskMutation)

// newDelegationTaskMutation creates new mutation for the DelegationTask entity.
func newDelegationTaskMutation(c config, op Op, opts ...delegationtaskOption) *DelegationTaskMutation {
	m := &DelegationTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeDelegationTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDelegationTaskID sets the ID field of the mutation.
func withDelegationTaskID(id uuid.UUID) delegationtaskOption {
	return func(m *DelegationTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *DelegationTask
		)
		m.oldValue = func(ctx context.Context) (*DelegationTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DelegationTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDelegationTask sets the old DelegationTask of the mutation.
func withDelegationTask(node *DelegationTask) delegationtaskOption {
	return func(m *DelegationTaskMutation) {
		m.oldValue = func(context.Context) (*DelegationTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DelegationTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DelegationTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DelegationTask entities.
func (m *DelegationTaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DelegationTaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DelegationTaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DelegationTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskUID sets the "task_uid" field.
func (m *DelegationTaskMutation) SetTaskUID(s string) {
	m.task_uid = &s
}

// TaskUID returns the value of the "task_uid" field in the mutation.
func (m *DelegationTaskMutation) TaskUID() (r string, exists bool) {
	v := m.task_uid
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskUID returns the old "task_uid" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldTaskUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskUID: %w", err)
	}
	return oldValue.TaskUID, nil
}

// ResetTaskUID resets all changes to the "task_uid" field.
func (m *DelegationTaskMutation) ResetTaskUID() {
	m.task_uid = nil
}

// SetEmployeeName sets the "employee_name" field.
func (m *DelegationTaskMutation) SetEmployeeName(s string) {
	m.employee_name = &s
}

// EmployeeName returns the value of the "employee_name" field in the mutation.
func (m *DelegationTaskMutation) EmployeeName() (r string, exists bool) {
	v := m.employee_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeName returns the old "employee_name" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldEmployeeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeName: %w", err)
	}
	return oldValue.EmployeeName, nil
}

// ResetEmployeeName resets all changes to the "employee_name" field.
func (m *DelegationTaskMutation) ResetEmployeeName() {
	m.employee_name = nil
}

// SetAssignedToEmail sets the "assigned_to_email" field.
func (m *DelegationTaskMutation) SetAssignedToEmail(s string) {
	m.assigned_to_email = &s
}

// AssignedToEmail returns the value of the "assigned_to_email" field in the mutation.
func (m *DelegationTaskMutation) AssignedToEmail() (r string, exists bool) {
	v := m.assigned_to_email
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedToEmail returns the old "assigned_to_email" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldAssignedToEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedToEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedToEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedToEmail: %w", err)
	}
	return oldValue.AssignedToEmail, nil
}

// ResetAssignedToEmail resets all changes to the "assigned_to_email" field.
func (m *DelegationTaskMutation) ResetAssignedToEmail() {
	m.assigned_to_email = nil
}

// SetApproverEmail sets the "approver_email" field.
func (m *DelegationTaskMutation) SetApproverEmail(s string) {
	m.approver_email = &s
}

// ApproverEmail returns the value of the "approver_email" field in the mutation.
func (m *DelegationTaskMutation) ApproverEmail() (r string, exists bool) {
	v := m.approver_email
	if v == nil {
		return
	}
	return *v, true
}

// OldApproverEmail returns the old "approver_email" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldApproverEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApproverEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApproverEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApproverEmail: %w", err)
	}
	return oldValue.ApproverEmail, nil
}

// ResetApproverEmail resets all changes to the "approver_email" field.
func (m *DelegationTaskMutation) ResetApproverEmail() {
	m.approver_email = nil
}

// SetDescription sets the "description" field.
func (m *DelegationTaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DelegationTaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *DelegationTaskMutation) ResetDescription() {
	m.description = nil
}

// SetTargetDate sets the "target_date" field.
func (m *DelegationTaskMutation) SetTargetDate(t time.Time) {
	m.target_date = &t
}

// TargetDate returns the value of the "target_date" field in the mutation.
func (m *DelegationTaskMutation) TargetDate() (r time.Time, exists bool) {
	v := m.target_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetDate returns the old "target_date" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldTargetDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetDate: %w", err)
	}
	return oldValue.TargetDate, nil
}

// ResetTargetDate resets all changes to the "target_date" field.
func (m *DelegationTaskMutation) ResetTargetDate() {
	m.target_date = nil
}

// SetPriority sets the "priority" field.
func (m *DelegationTaskMutation) SetPriority(s string) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *DelegationTaskMutation) Priority() (r string, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *DelegationTaskMutation) ResetPriority() {
	m.priority = nil
}

// SetApprovalNeeded sets the "approval_needed" field.
func (m *DelegationTaskMutation) SetApprovalNeeded(b bool) {
	m.approval_needed = &b
}

// ApprovalNeeded returns the value of the "approval_needed" field in the mutation.
func (m *DelegationTaskMutation) ApprovalNeeded() (r bool, exists bool) {
	v := m.approval_needed
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalNeeded returns the old "approval_needed" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldApprovalNeeded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalNeeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalNeeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalNeeded: %w", err)
	}
	return oldValue.ApprovalNeeded, nil
}

// ResetApprovalNeeded resets all changes to the "approval_needed" field.
func (m *DelegationTaskMutation) ResetApprovalNeeded() {
	m.approval_needed = nil
}

// SetAssignedBy sets the "assigned_by" field.
func (m *DelegationTaskMutation) SetAssignedBy(s string) {
	m.assigned_by = &s
}

// AssignedBy returns the value of the "assigned_by" field in the mutation.
func (m *DelegationTaskMutation) AssignedBy() (r string, exists bool) {
	v := m.assigned_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedBy returns the old "assigned_by" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldAssignedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedBy: %w", err)
	}
	return oldValue.AssignedBy, nil
}

// ResetAssignedBy resets all changes to the "assigned_by" field.
func (m *DelegationTaskMutation) ResetAssignedBy() {
	m.assigned_by = nil
}

// SetRemarks sets the "remarks" field.
func (m *DelegationTaskMutation) SetRemarks(s string) {
	m.remarks = &s
}

// Remarks returns the value of the "remarks" field in the mutation.
func (m *DelegationTaskMutation) Remarks() (r string, exists bool) {
	v := m.remarks
	if v == nil {
		return
	}
	return *v, true
}

// OldRemarks returns the old "remarks" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldRemarks(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemarks: %w", err)
	}
	return oldValue.Remarks, nil
}

// ResetRemarks resets all changes to the "remarks" field.
func (m *DelegationTaskMutation) ResetRemarks() {
	m.remarks = nil
}

// SetStatus sets the "status" field.
func (m *DelegationTaskMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DelegationTaskMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DelegationTaskMutation) ResetStatus() {
	m.status = nil
}

// SetPreviousStatus sets the "previous_status" field.
func (m *DelegationTaskMutation) SetPreviousStatus(s string) {
	m.previous_status = &s
}

// PreviousStatus returns the value of the "previous_status" field in the mutation.
func (m *DelegationTaskMutation) PreviousStatus() (r string, exists bool) {
	v := m.previous_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousStatus returns the old "previous_status" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldPreviousStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousStatus: %w", err)
	}
	return oldValue.PreviousStatus, nil
}

// ResetPreviousStatus resets all changes to the "previous_status" field.
func (m *DelegationTaskMutation) ResetPreviousStatus() {
	m.previous_status = nil
}

// SetRevisedDateRequest sets the "revised_date_request" field.
func (m *DelegationTaskMutation) SetRevisedDateRequest(t time.Time) {
	m.revised_date_request = &t
}

// RevisedDateRequest returns the value of the "revised_date_request" field in the mutation.
func (m *DelegationTaskMutation) RevisedDateRequest() (r time.Time, exists bool) {
	v := m.revised_date_request
	if v == nil {
		return
	}
	return *v, true
}

// OldRevisedDateRequest returns the old "revised_date_request" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldRevisedDateRequest(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevisedDateRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevisedDateRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevisedDateRequest: %w", err)
	}
	return oldValue.RevisedDateRequest, nil
}

// ClearRevisedDateRequest clears the value of the "revised_date_request" field.
func (m *DelegationTaskMutation) ClearRevisedDateRequest() {
	m.revised_date_request = nil
	m.clearedFields[delegationtask.FieldRevisedDateRequest] = struct{}{}
}

// RevisedDateRequestCleared returns if the "revised_date_request" field was cleared in this mutation.
func (m *DelegationTaskMutation) RevisedDateRequestCleared() bool {
	_, ok := m.clearedFields[delegationtask.FieldRevisedDateRequest]
	return ok
}

// ResetRevisedDateRequest resets all changes to the "revised_date_request" field.
func (m *DelegationTaskMutation) ResetRevisedDateRequest() {
	m.revised_date_request = nil
	delete(m.clearedFields, delegationtask.FieldRevisedDateRequest)
}

// SetRevisionRemarks sets the "revision_remarks" field.
func (m *DelegationTaskMutation) SetRevisionRemarks(s string) {
	m.revision_remarks = &s
}

// RevisionRemarks returns the value of the "revision_remarks" field in the mutation.
func (m *DelegationTaskMutation) RevisionRemarks() (r string, exists bool) {
	v := m.revision_remarks
	if v == nil {
		return
	}
	return *v, true
}

// OldRevisionRemarks returns the old "revision_remarks" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldRevisionRemarks(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevisionRemarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevisionRemarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevisionRemarks: %w", err)
	}
	return oldValue.RevisionRemarks, nil
}

// ResetRevisionRemarks resets all changes to the "revision_remarks" field.
func (m *DelegationTaskMutation) ResetRevisionRemarks() {
	m.revision_remarks = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DelegationTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DelegationTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DelegationTask entity.
// If the DelegationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DelegationTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddCommentIDs adds the "comments" edge to the TaskComment entity by ids.
func (m *DelegationTaskMutation) AddCommentIDs(ids ...uuid.UUID) {
	if m.comments == nil {
		m.comments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.comments[ids[i]] = struct{}{}
	}
}

// ClearComments clears the "comments" edge to the TaskComment entity.
func (m *DelegationTaskMutation) ClearComments() {
	m.clearedcomments = true
}

// CommentsCleared reports if the "comments" edge to the TaskComment entity was cleared.
func (m *DelegationTaskMutation) CommentsCleared() bool {
	return m.clearedcomments
}

// RemoveCommentIDs removes the "comments" edge to the TaskComment entity by IDs.
func (m *DelegationTaskMutation) RemoveCommentIDs(ids ...uuid.UUID) {
	if m.removedcomments == nil {
		m.removedcomments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.comments, ids[i])
		m.removedcomments[ids[i]] = struct{}{}
	}
}

// RemovedComments returns the removed IDs of the "comments" edge to the TaskComment entity.
func (m *DelegationTaskMutation) RemovedCommentsIDs() (ids []uuid.UUID) {
	for id := range m.removedcomments {
		ids = append(ids, id)
	}
	return
}

// CommentsIDs returns the "comments" edge IDs in the mutation.
func (m *DelegationTaskMutation) CommentsIDs() (ids []uuid.UUID) {
	for id := range m.comments {
		ids = append(ids, id)
	}
	return
}

// ResetComments resets all changes to the "comments" edge.
func (m *DelegationTaskMutation) ResetComments() {
	m.comments = nil
	m.clearedcomments = false
	m.removedcomments = nil
}

// Where appends a list predicates to the DelegationTaskMutation builder.
func (m *DelegationTaskMutation) Where(ps ...predicate.DelegationTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DelegationTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DelegationTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DelegationTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DelegationTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DelegationTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DelegationTask).
func (m *DelegationTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DelegationTaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.task_uid != nil {
		fields = append(fields, delegationtask.FieldTaskUID)
	}
	if m.employee_name != nil {
		fields = append(fields, delegationtask.FieldEmployeeName)
	}
	if m.assigned_to_email != nil {
		fields = append(fields, delegationtask.FieldAssignedToEmail)
	}
	if m.approver_email != nil {
		fields = append(fields, delegationtask.FieldApproverEmail)
	}
	if m.description != nil {
		fields = append(fields, delegationtask.FieldDescription)
	}
	if m.target_date != nil {
		fields = append(fields, delegationtask.FieldTargetDate)
	}
	if m.priority != nil {
		fields = append(fields, delegationtask.FieldPriority)
	}
	if m.approval_needed != nil {
		fields = append(fields, delegationtask.FieldApprovalNeeded)
	}
	if m.assigned_by != nil {
		fields = append(fields, delegationtask.FieldAssignedBy)
	}
	if m.remarks != nil {
		fields = append(fields, delegationtask.FieldRemarks)
	}
	if m.status != nil {
		fields = append(fields, delegationtask.FieldStatus)
	}
	if m.previous_status != nil {
		fields = append(fields, delegationtask.FieldPreviousStatus)
	}
	if m.revised_date_request != nil {
		fields = append(fields, delegationtask.FieldRevisedDateRequest)
	}
	if m.revision_remarks != nil {
		fields = append(fields, delegationtask.FieldRevisionRemarks)
	}
	if m.created_at != nil {
		fields = append(fields, delegationtask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DelegationTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case delegationtask.FieldTaskUID:
		return m.TaskUID()
	case delegationtask.FieldEmployeeName:
		return m.EmployeeName()
	case delegationtask.FieldAssignedToEmail:
		return m.AssignedToEmail()
	case delegationtask.FieldApproverEmail:
		return m.ApproverEmail()
	case delegationtask.FieldDescription:
		return m.Description()
	case delegationtask.FieldTargetDate:
		return m.TargetDate()
	case delegationtask.FieldPriority:
		return m.Priority()
	case delegationtask.FieldApprovalNeeded:
		return m.ApprovalNeeded()
	case delegationtask.FieldAssignedBy:
		return m.AssignedBy()
	case delegationtask.FieldRemarks:
		return m.Remarks()
	case delegationtask.FieldStatus:
		return m.Status()
	case delegationtask.FieldPreviousStatus:
		return m.PreviousStatus()
	case delegationtask.FieldRevisedDateRequest:
		return m.RevisedDateRequest()
	case delegationtask.FieldRevisionRemarks:
		return m.RevisionRemarks()
	case delegationtask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DelegationTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case delegationtask.FieldTaskUID:
		return m.OldTaskUID(ctx)
	case delegationtask.FieldEmployeeName:
		return m.OldEmployeeName(ctx)
	case delegationtask.FieldAssignedToEmail:
		return m.OldAssignedToEmail(ctx)
	case delegationtask.FieldApproverEmail:
		return m.OldApproverEmail(ctx)
	case delegationtask.FieldDescription:
		return m.OldDescription(ctx)
	case delegationtask.FieldTargetDate:
		return m.OldTargetDate(ctx)
	case delegationtask.FieldPriority:
		return m.OldPriority(ctx)
	case delegationtask.FieldApprovalNeeded:
		return m.OldApprovalNeeded(ctx)
	case delegationtask.FieldAssignedBy:
		return m.OldAssignedBy(ctx)
	case delegationtask.FieldRemarks:
		return m.OldRemarks(ctx)
	case delegationtask.FieldStatus:
		return m.OldStatus(ctx)
	case delegationtask.FieldPreviousStatus:
		return m.OldPreviousStatus(ctx)
	case delegationtask.FieldRevisedDateRequest:
		return m.OldRevisedDateRequest(ctx)
	case delegationtask.FieldRevisionRemarks:
		return m.OldRevisionRemarks(ctx)
	case delegationtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DelegationTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DelegationTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case delegationtask.FieldTaskUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskUID(v)
		return nil
	case delegationtask.FieldEmployeeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeName(v)
		return nil
	case delegationtask.FieldAssignedToEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedToEmail(v)
		return nil
	case delegationtask.FieldApproverEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApproverEmail(v)
		return nil
	case delegationtask.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case delegationtask.FieldTargetDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetDate(v)
		return nil
	case delegationtask.FieldPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case delegationtask.FieldApprovalNeeded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalNeeded(v)
		return nil
	case delegationtask.FieldAssignedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedBy(v)
		return nil
	case delegationtask.FieldRemarks:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemarks(v)
		return nil
	case delegationtask.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case delegationtask.FieldPreviousStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousStatus(v)
		return nil
	case delegationtask.FieldRevisedDateRequest:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevisedDateRequest(v)
		return nil
	case delegationtask.FieldRevisionRemarks:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevisionRemarks(v)
		return nil
	case delegationtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DelegationTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DelegationTaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DelegationTaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DelegationTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DelegationTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DelegationTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(delegationtask.FieldRevisedDateRequest) {
		fields = append(fields, delegationtask.FieldRevisedDateRequest)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DelegationTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DelegationTaskMutation) ClearField(name string) error {
	switch name {
	case delegationtask.FieldRevisedDateRequest:
		m.ClearRevisedDateRequest()
		return nil
	}
	return fmt.Errorf("unknown DelegationTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DelegationTaskMutation) ResetField(name string) error {
	switch name {
	case delegationtask.FieldTaskUID:
		m.ResetTaskUID()
		return nil
	case delegationtask.FieldEmployeeName:
		m.ResetEmployeeName()
		return nil
	case delegationtask.FieldAssignedToEmail:
		m.ResetAssignedToEmail()
		return nil
	case delegationtask.FieldApproverEmail:
		m.ResetApproverEmail()
		return nil
	case delegationtask.FieldDescription:
		m.ResetDescription()
		return nil
	case delegationtask.FieldTargetDate:
		m.ResetTargetDate()
		return nil
	case delegationtask.FieldPriority:
		m.ResetPriority()
		return nil
	case delegationtask.FieldApprovalNeeded:
		m.ResetApprovalNeeded()
		return nil
	case delegationtask.FieldAssignedBy:
		m.ResetAssignedBy()
		return nil
	case delegationtask.FieldRemarks:
		m.ResetRemarks()
		return nil
	case delegationtask.FieldStatus:
		m.ResetStatus()
		return nil
	case delegationtask.FieldPreviousStatus:
		m.ResetPreviousStatus()
		return nil
	case delegationtask.FieldRevisedDateRequest:
		m.ResetRevisedDateRequest()
		return nil
	case delegationtask.FieldRevisionRemarks:
		m.ResetRevisionRemarks()
		return nil
	case delegationtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DelegationTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DelegationTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.comments != nil {
		edges = append(edges, delegationtask.EdgeComments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DelegationTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case delegationtask.EdgeComments:
		ids := make([]ent.Value, 0, len(m.comments))
		for id := range m.comments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DelegationTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcomments != nil {
		edges = append(edges, delegationtask.EdgeComments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DelegationTaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case delegationtask.EdgeComments:
		ids := make([]ent.Value, 0, len(m.removedcomments))
		for id := range m.removedcomments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DelegationTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcomments {
		edges = append(edges, delegationtask.EdgeComments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DelegationTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case delegationtask.EdgeComments:
		return m.clearedcomments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DelegationTaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DelegationTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DelegationTaskMutation) ResetEdge(name string) error {
	switch name {
	case delegationtask.EdgeComments:
		m.ResetComments()
		return nil
	}
	return fmt.Errorf("unknown DelegationTask edge %s", name)
}

// EmployeePlanMutation represents an operation that mutates the EmployeePlan nodes in the graph.
type EmployeePlanMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	employee_email   *string
	plan_date        *time.Time
	planned_count    *int
	addplanned_count *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*EmployeePlan, error)
	predicates       []predicate.EmployeePlan
}

var _ ent.Mutation = (*EmployeePlanMutation)(nil)

// employeeplanOption allows management of the mutation configuration using functional options.
type employeeplanOption func(*EmployeePlanMutation)

// newEmployeePlanMutation creates new mutation for the EmployeePlan entity.
func newEmployeePlanMutation(c config, op Op, opts ...employeeplanOption) *EmployeePlanMutation {
	m := &EmployeePlanMutation{
		config:        c,
		op:            op,
		typ:           TypeEmployeePlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmployeePlanID sets the ID field of the mutation.
func withEmployeePlanID(id uuid.UUID) employeeplanOption {
	return func(m *EmployeePlanMutation) {
		var (
			err   error
			once  sync.Once
			value *EmployeePlan
		)
		m.oldValue = func(ctx context.Context) (*EmployeePlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmployeePlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmployeePlan sets the old EmployeePlan of the mutation.
func withEmployeePlan(node *EmployeePlan) employeeplanOption {
	return func(m *EmployeePlanMutation) {
		m.oldValue = func(context.Context) (*EmployeePlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmployeePlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmployeePlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmployeePlan entities.
func (m *EmployeePlanMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmployeePlanMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmployeePlanMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmployeePlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmployeeEmail sets the "employee_email" field.
func (m *EmployeePlanMutation) SetEmployeeEmail(s string) {
	m.employee_email = &s
}

// EmployeeEmail returns the value of the "employee_email" field in the mutation.
func (m *EmployeePlanMutation) EmployeeEmail() (r string, exists bool) {
	v := m.employee_email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeEmail returns the old "employee_email" field's value of the EmployeePlan entity.
// If the EmployeePlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeePlanMutation) OldEmployeeEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeEmail: %w", err)
	}
	return oldValue.EmployeeEmail, nil
}

// ResetEmployeeEmail resets all changes to the "employee_email" field.
func (m *EmployeePlanMutation) ResetEmployeeEmail() {
	m.employee_email = nil
}

// SetPlanDate sets the "plan_date" field.
func (m *EmployeePlanMutation) SetPlanDate(t time.Time) {
	m.plan_date = &t
}

// PlanDate returns the value of the "plan_date" field in the mutation.
func (m *EmployeePlanMutation) PlanDate() (r time.Time, exists bool) {
	v := m.plan_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanDate returns the old "plan_date" field's value of the EmployeePlan entity.
// If the EmployeePlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeePlanMutation) OldPlanDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanDate: %w", err)
	}
	return oldValue.PlanDate, nil
}

// ResetPlanDate resets all changes to the "plan_date" field.
func (m *EmployeePlanMutation) ResetPlanDate() {
	m.plan_date = nil
}

// SetPlannedCount sets the "planned_count" field.
func (m *EmployeePlanMutation) SetPlannedCount(i int) {
	m.planned_count = &i
	m.addplanned_count = nil
}

// PlannedCount returns the value of the "planned_count" field in the mutation.
func (m *EmployeePlanMutation) PlannedCount() (r int, exists bool) {
	v := m.planned_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannedCount returns the old "planned_count" field's value of the EmployeePlan entity.
// If the EmployeePlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeePlanMutation) OldPlannedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannedCount: %w", err)
	}
	return oldValue.PlannedCount, nil
}

// AddPlannedCount adds i to the "planned_count" field.
func (m *EmployeePlanMutation) AddPlannedCount(i int) {
	if m.addplanned_count != nil {
		*m.addplanned_count += i
	} else {
		m.addplanned_count = &i
	}
}

// AddedPlannedCount returns the value that was added to the "planned_count" field in this mutation.
func (m *EmployeePlanMutation) AddedPlannedCount() (r int, exists bool) {
	v := m.addplanned_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlannedCount resets all changes to the "planned_count" field.
func (m *EmployeePlanMutation) ResetPlannedCount() {
	m.planned_count = nil
	m.addplanned_count = nil
}

// Where appends a list predicates to the EmployeePlanMutation builder.
func (m *EmployeePlanMutation) Where(ps ...predicate.EmployeePlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmployeePlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmployeePlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmployeePlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmployeePlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmployeePlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmployeePlan).
func (m *EmployeePlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmployeePlanMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.employee_email != nil {
		fields = append(fields, employeeplan.FieldEmployeeEmail)
	}
	if m.plan_date != nil {
		fields = append(fields, employeeplan.FieldPlanDate)
	}
	if m.planned_count != nil {
		fields = append(fields, employeeplan.FieldPlannedCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmployeePlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case employeeplan.FieldEmployeeEmail:
		return m.EmployeeEmail()
	case employeeplan.FieldPlanDate:
		return m.PlanDate()
	case employeeplan.FieldPlannedCount:
		return m.PlannedCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmployeePlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case employeeplan.FieldEmployeeEmail:
		return m.OldEmployeeEmail(ctx)
	case employeeplan.FieldPlanDate:
		return m.OldPlanDate(ctx)
	case employeeplan.FieldPlannedCount:
		return m.OldPlannedCount(ctx)
	}
	return nil, fmt.Errorf("unknown EmployeePlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmployeePlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case employeeplan.FieldEmployeeEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeEmail(v)
		return nil
	case employeeplan.FieldPlanDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanDate(v)
		return nil
	case employeeplan.FieldPlannedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannedCount(v)
		return nil
	}
	return fmt.Errorf("unknown EmployeePlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmployeePlanMutation) AddedFields() []string {
	var fields []string
	if m.addplanned_count != nil {
		fields = append(fields, employeeplan.FieldPlannedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmployeePlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case employeeplan.FieldPlannedCount:
		return m.AddedPlannedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmployeePlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case employeeplan.FieldPlannedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlannedCount(v)
		return nil
	}
	return fmt.Errorf("unknown EmployeePlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmployeePlanMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmployeePlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmployeePlanMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EmployeePlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmployeePlanMutation) ResetField(name string) error {
	switch name {
	case employeeplan.FieldEmployeeEmail:
		m.ResetEmployeeEmail()
		return nil
	case employeeplan.FieldPlanDate:
		m.ResetPlanDate()
		return nil
	case employeeplan.FieldPlannedCount:
		m.ResetPlannedCount()
		return nil
	}
	return fmt.Errorf("unknown EmployeePlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmployeePlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmployeePlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmployeePlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmployeePlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmployeePlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmployeePlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmployeePlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EmployeePlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmployeePlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EmployeePlan edge %s", name)
}

// HolidayMutation represents an operation that mutates the Holiday nodes in the graph.
type HolidayMutation struct {
	config
	op            Op
	typ           string
	id            *int
	holiday_date  *time.Time
	name          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Holiday, error)
	predicates    []predicate.Holiday
}

var _ ent.Mutation = (*HolidayMutation)(nil)

// holidayOption allows management of the mutation configuration using functional options.
type holidayOption func(*HolidayMutation)

// newHolidayMutation creates new mutation for the Holiday entity.
func newHolidayMutation(c config, op Op, opts ...holidayOption) *HolidayMutation {
	m := &HolidayMutation{
		config:        c,
		op:            op,
		typ:           TypeHoliday,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHolidayID sets the ID field of the mutation.
func withHolidayID(id int) holidayOption {
	return func(m *HolidayMutation) {
		var (
			err   error
			once  sync.Once
			value *Holiday
		)
		m.oldValue = func(ctx context.Context) (*Holiday, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Holiday.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHoliday sets the old Holiday of the mutation.
func withHoliday(node *Holiday) holidayOption {
	return func(m *HolidayMutation) {
		m.oldValue = func(context.Context) (*Holiday, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HolidayMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HolidayMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HolidayMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HolidayMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Holiday.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHolidayDate sets the "holiday_date" field.
func (m *HolidayMutation) SetHolidayDate(t time.Time) {
	m.holiday_date = &t
}

// HolidayDate returns the value of the "holiday_date" field in the mutation.
func (m *HolidayMutation) HolidayDate() (r time.Time, exists bool) {
	v := m.holiday_date
	if v == nil {
		return
	}
	return *v, true
}

// OldHolidayDate returns the old "holiday_date" field's value of the Holiday entity.
// If the Holiday object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HolidayMutation) OldHolidayDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHolidayDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHolidayDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHolidayDate: %w", err)
	}
	return oldValue.HolidayDate, nil
}

// ResetHolidayDate resets all changes to the "holiday_date" field.
func (m *HolidayMutation) ResetHolidayDate() {
	m.holiday_date = nil
}

// SetName sets the "name" field.
func (m *HolidayMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *HolidayMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Holiday entity.
// If the Holiday object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HolidayMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *HolidayMutation) ResetName() {
	m.name = nil
}

// Where appends a list predicates to the HolidayMutation builder.
func (m *HolidayMutation) Where(ps ...predicate.Holiday) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HolidayMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HolidayMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Holiday, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HolidayMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HolidayMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Holiday).
func (m *HolidayMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HolidayMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.holiday_date != nil {
		fields = append(fields, holiday.FieldHolidayDate)
	}
	if m.name != nil {
		fields = append(fields, holiday.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HolidayMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case holiday.FieldHolidayDate:
		return m.HolidayDate()
	case holiday.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HolidayMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case holiday.FieldHolidayDate:
		return m.OldHolidayDate(ctx)
	case holiday.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Holiday field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HolidayMutation) SetField(name string, value ent.Value) error {
	switch name {
	case holiday.FieldHolidayDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHolidayDate(v)
		return nil
	case holiday.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Holiday field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HolidayMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HolidayMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HolidayMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Holiday numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HolidayMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HolidayMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HolidayMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Holiday nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HolidayMutation) ResetField(name string) error {
	switch name {
	case holiday.FieldHolidayDate:
		m.ResetHolidayDate()
		return nil
	case holiday.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Holiday field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HolidayMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HolidayMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HolidayMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HolidayMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HolidayMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HolidayMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HolidayMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Holiday unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HolidayMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Holiday edge %s", name)
}

// JobRecordMutation represents an operation that mutates the JobRecord nodes in the graph.
type JobRecordMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	row_index      *int
	addrow_index   *int
	source_date    *time.Time
	otd_type       *string
	job_number     *string
	order_by       *string
	company_name   *string
	box_type       *string
	box_style      *string
	box_color      *string
	printing_type  *string
	printing_color *string
	specification  *string
	city           *string
	quantity       *int
	addquantity    *int
	lead_time      *time.Time
	repeat_new     *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	tasks          map[uuid.UUID]struct{}
	removedtasks   map[uuid.UUID]struct{}
	clearedtasks   bool
	done           bool
	oldValue       func(context.Context) (*JobRecord, error)
	predicates     []predicate.JobRecord
}

var _ ent.Mutation = (*JobRecordMutation)(nil)

// jobrecordOption allows management of the mutation configuration using functional options.
type jobrecordOption func(*JobRecordMutation)

// newJobRecordMutation creates new mutation for the JobRecord entity.
func newJobRecordMutation(c config, op Op, opts ...jobrecordOption) *JobRecordMutation {
	m := &JobRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeJobRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobRecordID sets the ID field of the mutation.
func withJobRecordID(id uuid.UUID) jobrecordOption {
	return func(m *JobRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *JobRecord
		)
		m.oldValue = func(ctx context.Context) (*JobRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobRecord sets the old JobRecord of the mutation.
func withJobRecord(node *JobRecord) jobrecordOption {
	return func(m *JobRecordMutation) {
		m.oldValue = func(context.Context) (*JobRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobRecord entities.
func (m *JobRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRowIndex sets the "row_index" field.
func (m *JobRecordMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *JobRecordMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *JobRecordMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *JobRecordMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *JobRecordMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetSourceDate sets the "source_date" field.
func (m *JobRecordMutation) SetSourceDate(t time.Time) {
	m.source_date = &t
}

// SourceDate returns the value of the "source_date" field in the mutation.
func (m *JobRecordMutation) SourceDate() (r time.Time, exists bool) {
	v := m.source_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDate returns the old "source_date" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldSourceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDate: %w", err)
	}
	return oldValue.SourceDate, nil
}

// ClearSourceDate clears the value of the "source_date" field.
func (m *JobRecordMutation) ClearSourceDate() {
	m.source_date = nil
	m.clearedFields[jobrecord.FieldSourceDate] = struct{}{}
}

// SourceDateCleared returns if the "source_date" field was cleared in this mutation.
func (m *JobRecordMutation) SourceDateCleared() bool {
	_, ok := m.clearedFields[jobrecord.FieldSourceDate]
	return ok
}

// ResetSourceDate resets all changes to the "source_date" field.
func (m *JobRecordMutation) ResetSourceDate() {
	m.source_date = nil
	delete(m.clearedFields, jobrecord.FieldSourceDate)
}

// SetOtdType sets the "otd_type" field.
func (m *JobRecordMutation) SetOtdType(s string) {
	m.otd_type = &s
}

// OtdType returns the value of the "otd_type" field in the mutation.
func (m *JobRecordMutation) OtdType() (r string, exists bool) {
	v := m.otd_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOtdType returns the old "otd_type" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldOtdType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOtdType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOtdType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOtdType: %w", err)
	}
	return oldValue.OtdType, nil
}

// ResetOtdType resets all changes to the "otd_type" field.
func (m *JobRecordMutation) ResetOtdType() {
	m.otd_type = nil
}

// SetJobNumber sets the "job_number" field.
func (m *JobRecordMutation) SetJobNumber(s string) {
	m.job_number = &s
}

// JobNumber returns the value of the "job_number" field in the mutation.
func (m *JobRecordMutation) JobNumber() (r string, exists bool) {
	v := m.job_number
	if v == nil {
		return
	}
	return *v, true
}

// OldJobNumber returns the old "job_number" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldJobNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobNumber: %w", err)
	}
	return oldValue.JobNumber, nil
}

// ResetJobNumber resets all changes to the "job_number" field.
func (m *JobRecordMutation) ResetJobNumber() {
	m.job_number = nil
}

// SetOrderBy sets the "order_by" field.
func (m *JobRecordMutation) SetOrderBy(s string) {
	m.order_by = &s
}

// OrderBy returns the value of the "order_by" field in the mutation.
func (m *JobRecordMutation) OrderBy() (r string, exists bool) {
	v := m.order_by
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderBy returns the old "order_by" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldOrderBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderBy: %w", err)
	}
	return oldValue.OrderBy, nil
}

// ResetOrderBy resets all changes to the "order_by" field.
func (m *JobRecordMutation) ResetOrderBy() {
	m.order_by = nil
}

// SetCompanyName sets the "company_name" field.
func (m *JobRecordMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *JobRecordMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *JobRecordMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetBoxType sets the "box_type" field.
func (m *JobRecordMutation) SetBoxType(s string) {
	m.box_type = &s
}

// BoxType returns the value of the "box_type" field in the mutation.
func (m *JobRecordMutation) BoxType() (r string, exists bool) {
	v := m.box_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxType returns the old "box_type" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldBoxType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxType: %w", err)
	}
	return oldValue.BoxType, nil
}

// ResetBoxType resets all changes to the "box_type" field.
func (m *JobRecordMutation) ResetBoxType() {
	m.box_type = nil
}

// SetBoxStyle sets the "box_style" field.
func (m *JobRecordMutation) SetBoxStyle(s string) {
	m.box_style = &s
}

// BoxStyle returns the value of the "box_style" field in the mutation.
func (m *JobRecordMutation) BoxStyle() (r string, exists bool) {
	v := m.box_style
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxStyle returns the old "box_style" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldBoxStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxStyle: %w", err)
	}
	return oldValue.BoxStyle, nil
}

// ResetBoxStyle resets all changes to the "box_style" field.
func (m *JobRecordMutation) ResetBoxStyle() {
	m.box_style = nil
}

// SetBoxColor sets the "box_color" field.
func (m *JobRecordMutation) SetBoxColor(s string) {
	m.box_color = &s
}

// BoxColor returns the value of the "box_color" field in the mutation.
func (m *JobRecordMutation) BoxColor() (r string, exists bool) {
	v := m.box_color
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxColor returns the old "box_color" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldBoxColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxColor: %w", err)
	}
	return oldValue.BoxColor, nil
}

// ResetBoxColor resets all changes to the "box_color" field.
func (m *JobRecordMutation) ResetBoxColor() {
	m.box_color = nil
}

// SetPrintingType sets the "printing_type" field.
func (m *JobRecordMutation) SetPrintingType(s string) {
	m.printing_type = &s
}

// PrintingType returns the value of the "printing_type" field in the mutation.
func (m *JobRecordMutation) PrintingType() (r string, exists bool) {
	v := m.printing_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPrintingType returns the old "printing_type" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldPrintingType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrintingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrintingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrintingType: %w", err)
	}
	return oldValue.PrintingType, nil
}

// ResetPrintingType resets all changes to the "printing_type" field.
func (m *JobRecordMutation) ResetPrintingType() {
	m.printing_type = nil
}

// SetPrintingColor sets the "printing_color" field.
func (m *JobRecordMutation) SetPrintingColor(s string) {
	m.printing_color = &s
}

// PrintingColor returns the value of the "printing_color" field in the mutation.
func (m *JobRecordMutation) PrintingColor() (r string, exists bool) {
	v := m.printing_color
	if v == nil {
		return
	}
	return *v, true
}

// OldPrintingColor returns the old "printing_color" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldPrintingColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrintingColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrintingColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrintingColor: %w", err)
	}
	return oldValue.PrintingColor, nil
}

// ResetPrintingColor resets all changes to the "printing_color" field.
func (m *JobRecordMutation) ResetPrintingColor() {
	m.printing_color = nil
}

// SetSpecification sets the "specification" field.
func (m *JobRecordMutation) SetSpecification(s string) {
	m.specification = &s
}

// Specification returns the value of the "specification" field in the mutation.
func (m *JobRecordMutation) Specification() (r string, exists bool) {
	v := m.specification
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecification returns the old "specification" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldSpecification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecification: %w", err)
	}
	return oldValue.Specification, nil
}

// ResetSpecification resets all changes to the "specification" field.
func (m *JobRecordMutation) ResetSpecification() {
	m.specification = nil
}

// SetCity sets the "city" field.
func (m *JobRecordMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *JobRecordMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *JobRecordMutation) ResetCity() {
	m.city = nil
}

// SetQuantity sets the "quantity" field.
func (m *JobRecordMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *JobRecordMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *JobRecordMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *JobRecordMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *JobRecordMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetLeadTime sets the "lead_time" field.
func (m *JobRecordMutation) SetLeadTime(t time.Time) {
	m.lead_time = &t
}

// LeadTime returns the value of the "lead_time" field in the mutation.
func (m *JobRecordMutation) LeadTime() (r time.Time, exists bool) {
	v := m.lead_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadTime returns the old "lead_time" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldLeadTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadTime: %w", err)
	}
	return oldValue.LeadTime, nil
}

// ClearLeadTime clears the value of the "lead_time" field.
func (m *JobRecordMutation) ClearLeadTime() {
	m.lead_time = nil
	m.clearedFields[jobrecord.FieldLeadTime] = struct{}{}
}

// LeadTimeCleared returns if the "lead_time" field was cleared in this mutation.
func (m *JobRecordMutation) LeadTimeCleared() bool {
	_, ok := m.clearedFields[jobrecord.FieldLeadTime]
	return ok
}

// ResetLeadTime resets all changes to the "lead_time" field.
func (m *JobRecordMutation) ResetLeadTime() {
	m.lead_time = nil
	delete(m.clearedFields, jobrecord.FieldLeadTime)
}

// SetRepeatNew sets the "repeat_new" field.
func (m *JobRecordMutation) SetRepeatNew(s string) {
	m.repeat_new = &s
}

// RepeatNew returns the value of the "repeat_new" field in the mutation.
func (m *JobRecordMutation) RepeatNew() (r string, exists bool) {
	v := m.repeat_new
	if v == nil {
		return
	}
	return *v, true
}

// OldRepeatNew returns the old "repeat_new" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldRepeatNew(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepeatNew is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepeatNew requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepeatNew: %w", err)
	}
	return oldValue.RepeatNew, nil
}

// ResetRepeatNew resets all changes to the "repeat_new" field.
func (m *JobRecordMutation) ResetRepeatNew() {
	m.repeat_new = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTaskIDs adds the "tasks" edge to the StepTask entity by ids.
func (m *JobRecordMutation) AddTaskIDs(ids ...uuid.UUID) {
	if m.tasks == nil {
		m.tasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the StepTask entity.
func (m *JobRecordMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the StepTask entity was cleared.
func (m *JobRecordMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the StepTask entity by IDs.
func (m *JobRecordMutation) RemoveTaskIDs(ids ...uuid.UUID) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the StepTask entity.
func (m *JobRecordMutation) RemovedTasksIDs() (ids []uuid.UUID) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *JobRecordMutation) TasksIDs() (ids []uuid.UUID) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *JobRecordMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the JobRecordMutation builder.
func (m *JobRecordMutation) Where(ps ...predicate.JobRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobRecord).
func (m *JobRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobRecordMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.row_index != nil {
		fields = append(fields, jobrecord.FieldRowIndex)
	}
	if m.source_date != nil {
		fields = append(fields, jobrecord.FieldSourceDate)
	}
	if m.otd_type != nil {
		fields = append(fields, jobrecord.FieldOtdType)
	}
	if m.job_number != nil {
		fields = append(fields, jobrecord.FieldJobNumber)
	}
	if m.order_by != nil {
		fields = append(fields, jobrecord.FieldOrderBy)
	}
	if m.company_name != nil {
		fields = append(fields, jobrecord.FieldCompanyName)
	}
	if m.box_type != nil {
		fields = append(fields, jobrecord.FieldBoxType)
	}
	if m.box_style != nil {
		fields = append(fields, jobrecord.FieldBoxStyle)
	}
	if m.box_color != nil {
		fields = append(fields, jobrecord.FieldBoxColor)
	}
	if m.printing_type != nil {
		fields = append(fields, jobrecord.FieldPrintingType)
	}
	if m.printing_color != nil {
		fields = append(fields, jobrecord.FieldPrintingColor)
	}
	if m.specification != nil {
		fields = append(fields, jobrecord.FieldSpecification)
	}
	if m.city != nil {
		fields = append(fields, jobrecord.FieldCity)
	}
	if m.quantity != nil {
		fields = append(fields, jobrecord.FieldQuantity)
	}
	if m.lead_time != nil {
		fields = append(fields, jobrecord.FieldLeadTime)
	}
	if m.repeat_new != nil {
		fields = append(fields, jobrecord.FieldRepeatNew)
	}
	if m.created_at != nil {
		fields = append(fields, jobrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, jobrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobrecord.FieldRowIndex:
		return m.RowIndex()
	case jobrecord.FieldSourceDate:
		return m.SourceDate()
	case jobrecord.FieldOtdType:
		return m.OtdType()
	case jobrecord.FieldJobNumber:
		return m.JobNumber()
	case jobrecord.FieldOrderBy:
		return m.OrderBy()
	case jobrecord.FieldCompanyName:
		return m.CompanyName()
	case jobrecord.FieldBoxType:
		return m.BoxType()
	case jobrecord.FieldBoxStyle:
		return m.BoxStyle()
	case jobrecord.FieldBoxColor:
		return m.BoxColor()
	case jobrecord.FieldPrintingType:
		return m.PrintingType()
	case jobrecord.FieldPrintingColor:
		return m.PrintingColor()
	case jobrecord.FieldSpecification:
		return m.Specification()
	case jobrecord.FieldCity:
		return m.City()
	case jobrecord.FieldQuantity:
		return m.Quantity()
	case jobrecord.FieldLeadTime:
		return m.LeadTime()
	case jobrecord.FieldRepeatNew:
		return m.RepeatNew()
	case jobrecord.FieldCreatedAt:
		return m.CreatedAt()
	case jobrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobrecord.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case jobrecord.FieldSourceDate:
		return m.OldSourceDate(ctx)
	case jobrecord.FieldOtdType:
		return m.OldOtdType(ctx)
	case jobrecord.FieldJobNumber:
		return m.OldJobNumber(ctx)
	case jobrecord.FieldOrderBy:
		return m.OldOrderBy(ctx)
	case jobrecord.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case jobrecord.FieldBoxType:
		return m.OldBoxType(ctx)
	case jobrecord.FieldBoxStyle:
		return m.OldBoxStyle(ctx)
	case jobrecord.FieldBoxColor:
		return m.OldBoxColor(ctx)
	case jobrecord.FieldPrintingType:
		return m.OldPrintingType(ctx)
	case jobrecord.FieldPrintingColor:
		return m.OldPrintingColor(ctx)
	case jobrecord.FieldSpecification:
		return m.OldSpecification(ctx)
	case jobrecord.FieldCity:
		return m.OldCity(ctx)
	case jobrecord.FieldQuantity:
		return m.OldQuantity(ctx)
	case jobrecord.FieldLeadTime:
		return m.OldLeadTime(ctx)
	case jobrecord.FieldRepeatNew:
		return m.OldRepeatNew(ctx)
	case jobrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case jobrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobrecord.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case jobrecord.FieldSourceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDate(v)
		return nil
	case jobrecord.FieldOtdType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOtdType(v)
		return nil
	case jobrecord.FieldJobNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobNumber(v)
		return nil
	case jobrecord.FieldOrderBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderBy(v)
		return nil
	case jobrecord.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case jobrecord.FieldBoxType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxType(v)
		return nil
	case jobrecord.FieldBoxStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxStyle(v)
		return nil
	case jobrecord.FieldBoxColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxColor(v)
		return nil
	case jobrecord.FieldPrintingType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrintingType(v)
		return nil
	case jobrecord.FieldPrintingColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrintingColor(v)
		return nil
	case jobrecord.FieldSpecification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecification(v)
		return nil
	case jobrecord.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case jobrecord.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case jobrecord.FieldLeadTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadTime(v)
		return nil
	case jobrecord.FieldRepeatNew:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepeatNew(v)
		return nil
	case jobrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case jobrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobRecordMutation) AddedFields() []string {
	var fields []string
	if m.addrow_index != nil {
		fields = append(fields, jobrecord.FieldRowIndex)
	}
	if m.addquantity != nil {
		fields = append(fields, jobrecord.FieldQuantity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobrecord.FieldRowIndex:
		return m.AddedRowIndex()
	case jobrecord.FieldQuantity:
		return m.AddedQuantity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobrecord.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	case jobrecord.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown JobRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobrecord.FieldSourceDate) {
		fields = append(fields, jobrecord.FieldSourceDate)
	}
	if m.FieldCleared(jobrecord.FieldLeadTime) {
		fields = append(fields, jobrecord.FieldLeadTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobRecordMutation) ClearField(name string) error {
	switch name {
	case jobrecord.FieldSourceDate:
		m.ClearSourceDate()
		return nil
	case jobrecord.FieldLeadTime:
		m.ClearLeadTime()
		return nil
	}
	return fmt.Errorf("unknown JobRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobRecordMutation) ResetField(name string) error {
	switch name {
	case jobrecord.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case jobrecord.FieldSourceDate:
		m.ResetSourceDate()
		return nil
	case jobrecord.FieldOtdType:
		m.ResetOtdType()
		return nil
	case jobrecord.FieldJobNumber:
		m.ResetJobNumber()
		return nil
	case jobrecord.FieldOrderBy:
		m.ResetOrderBy()
		return nil
	case jobrecord.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case jobrecord.FieldBoxType:
		m.ResetBoxType()
		return nil
	case jobrecord.FieldBoxStyle:
		m.ResetBoxStyle()
		return nil
	case jobrecord.FieldBoxColor:
		m.ResetBoxColor()
		return nil
	case jobrecord.FieldPrintingType:
		m.ResetPrintingType()
		return nil
	case jobrecord.FieldPrintingColor:
		m.ResetPrintingColor()
		return nil
	case jobrecord.FieldSpecification:
		m.ResetSpecification()
		return nil
	case jobrecord.FieldCity:
		m.ResetCity()
		return nil
	case jobrecord.FieldQuantity:
		m.ResetQuantity()
		return nil
	case jobrecord.FieldLeadTime:
		m.ResetLeadTime()
		return nil
	case jobrecord.FieldRepeatNew:
		m.ResetRepeatNew()
		return nil
	case jobrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case jobrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, jobrecord.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobrecord.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, jobrecord.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobRecordMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case jobrecord.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, jobrecord.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case jobrecord.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobRecordMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown JobRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobRecordMutation) ResetEdge(name string) error {
	switch name {
	case jobrecord.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown JobRecord edge %s", name)
}

// StepConfigMutation represents an operation that mutates the StepConfig nodes in the graph.
type StepConfigMutation struct {
	config
	op              Op
	typ             string
	id              *int
	step            *int
	addstep         *int
	step_name       *string
	doer_emails     *string
	visible_columns *string
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*StepConfig, error)
	predicates      []predicate.StepConfig
}

var _ ent.Mutation = (*StepConfigMutation)(nil)

// stepconfigOption allows management of the mutation configuration using functional options.
type stepconfigOption func(*StepConfigMutation)

// newStepConfigMutation creates new mutation for the StepConfig entity.
func newStepConfigMutation(c config, op Op, opts ...stepconfigOption) *StepConfigMutation {
	m := &StepConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeStepConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepConfigID sets the ID field of the mutation.
func withStepConfigID(id int) stepconfigOption {
	return func(m *StepConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *StepConfig
		)
		m.oldValue = func(ctx context.Context) (*StepConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepConfig sets the old StepConfig of the mutation.
func withStepConfig(node *StepConfig) stepconfigOption {
	return func(m *StepConfigMutation) {
		m.oldValue = func(context.Context) (*StepConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepConfigMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepConfigMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStep sets the "step" field.
func (m *StepConfigMutation) SetStep(i int) {
	m.step = &i
	m.addstep = nil
}

// Step returns the value of the "step" field in the mutation.
func (m *StepConfigMutation) Step() (r int, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the StepConfig entity.
// If the StepConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepConfigMutation) OldStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// AddStep adds i to the "step" field.
func (m *StepConfigMutation) AddStep(i int) {
	if m.addstep != nil {
		*m.addstep += i
	} else {
		m.addstep = &i
	}
}

// AddedStep returns the value that was added to the "step" field in this mutation.
func (m *StepConfigMutation) AddedStep() (r int, exists bool) {
	v := m.addstep
	if v == nil {
		return
	}
	return *v, true
}

// ResetStep resets all changes to the "step" field.
func (m *StepConfigMutation) ResetStep() {
	m.step = nil
	m.addstep = nil
}

// SetStepName sets the "step_name" field.
func (m *StepConfigMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *StepConfigMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the StepConfig entity.
// If the StepConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepConfigMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ResetStepName resets all changes to the "step_name" field.
func (m *StepConfigMutation) ResetStepName() {
	m.step_name = nil
}

// SetDoerEmails sets the "doer_emails" field.
func (m *StepConfigMutation) SetDoerEmails(s string) {
	m.doer_emails = &s
}

// DoerEmails returns the value of the "doer_emails" field in the mutation.
func (m *StepConfigMutation) DoerEmails() (r string, exists bool) {
	v := m.doer_emails
	if v == nil {
		return
	}
	return *v, true
}

// OldDoerEmails returns the old "doer_emails" field's value of the StepConfig entity.
// If the StepConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepConfigMutation) OldDoerEmails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoerEmails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoerEmails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoerEmails: %w", err)
	}
	return oldValue.DoerEmails, nil
}

// ResetDoerEmails resets all changes to the "doer_emails" field.
func (m *StepConfigMutation) ResetDoerEmails() {
	m.doer_emails = nil
}

// SetVisibleColumns sets the "visible_columns" field.
func (m *StepConfigMutation) SetVisibleColumns(s string) {
	m.visible_columns = &s
}

// VisibleColumns returns the value of the "visible_columns" field in the mutation.
func (m *StepConfigMutation) VisibleColumns() (r string, exists bool) {
	v := m.visible_columns
	if v == nil {
		return
	}
	return *v, true
}

// OldVisibleColumns returns the old "visible_columns" field's value of the StepConfig entity.
// If the StepConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepConfigMutation) OldVisibleColumns(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisibleColumns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisibleColumns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisibleColumns: %w", err)
	}
	return oldValue.VisibleColumns, nil
}

// ResetVisibleColumns resets all changes to the "visible_columns" field.
func (m *StepConfigMutation) ResetVisibleColumns() {
	m.visible_columns = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StepConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StepConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StepConfig entity.
// If the StepConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StepConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StepConfigMutation builder.
func (m *StepConfigMutation) Where(ps ...predicate.StepConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepConfig).
func (m *StepConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepConfigMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.step != nil {
		fields = append(fields, stepconfig.FieldStep)
	}
	if m.step_name != nil {
		fields = append(fields, stepconfig.FieldStepName)
	}
	if m.doer_emails != nil {
		fields = append(fields, stepconfig.FieldDoerEmails)
	}
	if m.visible_columns != nil {
		fields = append(fields, stepconfig.FieldVisibleColumns)
	}
	if m.updated_at != nil {
		fields = append(fields, stepconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepconfig.FieldStep:
		return m.Step()
	case stepconfig.FieldStepName:
		return m.StepName()
	case stepconfig.FieldDoerEmails:
		return m.DoerEmails()
	case stepconfig.FieldVisibleColumns:
		return m.VisibleColumns()
	case stepconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepconfig.FieldStep:
		return m.OldStep(ctx)
	case stepconfig.FieldStepName:
		return m.OldStepName(ctx)
	case stepconfig.FieldDoerEmails:
		return m.OldDoerEmails(ctx)
	case stepconfig.FieldVisibleColumns:
		return m.OldVisibleColumns(ctx)
	case stepconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StepConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepconfig.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case stepconfig.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case stepconfig.FieldDoerEmails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoerEmails(v)
		return nil
	case stepconfig.FieldVisibleColumns:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisibleColumns(v)
		return nil
	case stepconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StepConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepConfigMutation) AddedFields() []string {
	var fields []string
	if m.addstep != nil {
		fields = append(fields, stepconfig.FieldStep)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stepconfig.FieldStep:
		return m.AddedStep()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stepconfig.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStep(v)
		return nil
	}
	return fmt.Errorf("unknown StepConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepConfigMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepConfigMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StepConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepConfigMutation) ResetField(name string) error {
	switch name {
	case stepconfig.FieldStep:
		m.ResetStep()
		return nil
	case stepconfig.FieldStepName:
		m.ResetStepName()
		return nil
	case stepconfig.FieldDoerEmails:
		m.ResetDoerEmails()
		return nil
	case stepconfig.FieldVisibleColumns:
		m.ResetVisibleColumns()
		return nil
	case stepconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StepConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StepConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StepConfig edge %s", name)
}

// StepTaskMutation represents an operation that mutates the StepTask nodes in the graph.
type StepTaskMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	step             *int
	addstep          *int
	plan_date        *time.Time
	actual_date      *time.Time
	status           *string
	delay_reason     *string
	worker_name      *string
	completed_qty    *int
	addcompleted_qty *int
	delay_hours      *float64
	adddelay_hours   *float64
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	job              *uuid.UUID
	clearedjob       bool
	done             bool
	oldValue         func(context.Context) (*StepTask, error)
	predicates       []predicate.StepTask
}

var _ ent.Mutation = (*StepTaskMutation)(nil)

// steptaskOption allows management of the mutation configuration using functional options.
type steptaskOption func(*StepTaskMutation)

// newStepTaskMutation creates new mutation for the StepTask entity.
func newStepTaskMutation(c config, op Op, opts ...steptaskOption) *StepTaskMutation {
	m := &StepTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeStepTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepTaskID sets the ID field of the mutation.
func withStepTaskID(id uuid.UUID) steptaskOption {
	return func(m *StepTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *StepTask
		)
		m.oldValue = func(ctx context.Context) (*StepTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepTask sets the old StepTask of the mutation.
func withStepTask(node *StepTask) steptaskOption {
	return func(m *StepTaskMutation) {
		m.oldValue = func(context.Context) (*StepTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StepTask entities.
func (m *StepTaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepTaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepTaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *StepTaskMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *StepTaskMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the StepTask entity.
// If the StepTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepTaskMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *StepTaskMutation) ResetJobID() {
	m.job = nil
}

// SetStep sets the "step" field.
func (m *StepTaskMutation) SetStep(i int) {
	m.step = &i
	m.addstep = nil
}

// Step returns the value of the "step" field in the mutation.
func (m *StepTaskMutation) Step() (r int, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the StepTask entity.
// If the StepTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepTaskMutation) OldStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// AddStep adds i to the "step" field.
func (m *StepTaskMutation) AddStep(i int) {
	if m.addstep != nil {
		*m.addstep += i
	} else {
		m.addstep = &i
	}
}

// AddedStep returns the value that was added to the "step" field in this mutation.
func (m *StepTaskMutation) AddedStep() (r int, exists bool) {
	v := m.addstep
	if v == nil {
		return
	}
	return *v, true
}

// ResetStep resets all changes to the "step" field.
func (m *StepTaskMutation) ResetStep() {
	m.step = nil
	m.addstep = nil
}

// SetPlanDate sets the "plan_date" field.
func (m *StepTaskMutation) SetPlanDate(t time.Time) {
	m.plan_date = &t
}

// PlanDate returns the value of the "plan_date" field in the mutation.
func (m *StepTaskMutation) PlanDate() (r time.Time, exists bool) {
	v := m.plan_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanDate returns the old "plan_date" field's value of the StepTask entity.
// If the StepTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepTaskMutation) OldPlanDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanDate: %w", err)
	}
	return oldValue.PlanDate, nil
}

// ClearPlanDate clears the value of the "plan_date" field.
func (m *StepTaskMutation) ClearPlanDate() {
	m.plan_date = nil
	m.clearedFields[steptask.FieldPlanDate] = struct{}{}
}

// PlanDateCleared returns if the "plan_date" field was cleared in this mutation.
func (m *StepTaskMutation) PlanDateCleared() bool {
	_, ok := m.clearedFields[steptask.FieldPlanDate]
	return ok
}

// ResetPlanDate resets all changes to the "plan_date" field.
func (m *StepTaskMutation) ResetPlanDate() {
	m.plan_date = nil
	delete(m.clearedFields, steptask.FieldPlanDate)
}

// SetActualDate sets the "actual_date" field.
func (m *StepTaskMutation) SetActualDate(t time.Time) {
	m.actual_date = &t
}

// ActualDate returns the value of the "actual_date" field in the mutation.
func (m *StepTaskMutation) ActualDate() (r time.Time, exists bool) {
	v := m.actual_date
	if v == nil {
		return
	}
	return *v, true
}

// OldActualDate returns the old "actual_date" field's value of the StepTask entity.
// If the StepTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepTaskMutation) OldActualDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualDate: %w", err)
	}
	return oldValue.ActualDate, nil
}

// ClearActualDate clears the value of the "actual_date" field.
func (m *StepTaskMutation) ClearActualDate() {
	m.actual_date = nil
	m.clearedFields[steptask.FieldActualDate] = struct{}{}
}

// ActualDateCleared returns if the "actual_date" field was cleared in this mutation.
func (m *StepTaskMutation) ActualDateCleared() bool {
	_, ok := m.clearedFields[steptask.FieldActualDate]
	return ok
}

// ResetActualDate resets all changes to the "actual_date" field.
func (m *StepTaskMutation) ResetActualDate() {
	m.actual_date = nil
	delete(m.clearedFields, steptask.FieldActualDate)
}

// SetStatus sets the "status" field.
func (m *StepTaskMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepTaskMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StepTask entity.
// If the StepTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepTaskMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepTaskMutation) ResetStatus() {
	m.status = nil
}

// SetDelayReason sets the "delay_reason" field.
func (m *StepTaskMutation) SetDelayReason(s string) {
	m.delay_reason = &s
}

// DelayReason returns the value of the "delay_reason" field in the mutation.
func (m *StepTaskMutation) DelayReason() (r string, exists bool) {
	v := m.delay_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDelayReason returns the old "delay_reason" field's value of the StepTask entity.
// If the StepTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepTaskMutation) OldDelayReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelayReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelayReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelayReason: %w", err)
	}
	return oldValue.DelayReason, nil
}

// ResetDelayReason resets all changes to the "delay_reason" field.
func (m *StepTaskMutation) ResetDelayReason() {
	m.delay_reason = nil
}

// SetWorkerName sets the "worker_name" field.
func (m *StepTaskMutation) SetWorkerName(s string) {
	m.worker_name = &s
}

// WorkerName returns the value of the "worker_name" field in the mutation.
func (m *StepTaskMutation) WorkerName() (r string, exists bool) {
	v := m.worker_name
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerName returns the old "worker_name" field's value of the StepTask entity.
// If the StepTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepTaskMutation) OldWorkerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerName: %w", err)
	}
	return oldValue.WorkerName, nil
}

// ResetWorkerName resets all changes to the "worker_name" field.
func (m *StepTaskMutation) ResetWorkerName() {
	m.worker_name = nil
}

// SetCompletedQty sets the "completed_qty" field.
func (m *StepTaskMutation) SetCompletedQty(i int) {
	m.completed_qty = &i
	m.addcompleted_qty = nil
}

// CompletedQty returns the value of the "completed_qty" field in the mutation.
func (m *StepTaskMutation) CompletedQty() (r int, exists bool) {
	v := m.completed_qty
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedQty returns the old "completed_qty" field's value of the StepTask entity.
// If the StepTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepTaskMutation) OldCompletedQty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedQty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedQty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedQty: %w", err)
	}
	return oldValue.CompletedQty, nil
}

// AddCompletedQty adds i to the "completed_qty" field.
func (m *StepTaskMutation) AddCompletedQty(i int) {
	if m.addcompleted_qty != nil {
		*m.addcompleted_qty += i
	} else {
		m.addcompleted_qty = &i
	}
}

// AddedCompletedQty returns the value that was added to the "completed_qty" field in this mutation.
func (m *StepTaskMutation) AddedCompletedQty() (r int, exists bool) {
	v := m.addcompleted_qty
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedQty resets all changes to the "completed_qty" field.
func (m *StepTaskMutation) ResetCompletedQty() {
	m.completed_qty = nil
	m.addcompleted_qty = nil
}

// SetDelayHours sets the "delay_hours" field.
func (m *StepTaskMutation) SetDelayHours(f float64) {
	m.delay_hours = &f
	m.adddelay_hours = nil
}

// DelayHours returns the value of the "delay_hours" field in the mutation.
func (m *StepTaskMutation) DelayHours() (r float64, exists bool) {
	v := m.delay_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldDelayHours returns the old "delay_hours" field's value of the StepTask entity.
// If the StepTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepTaskMutation) OldDelayHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelayHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelayHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelayHours: %w", err)
	}
	return oldValue.DelayHours, nil
}

// AddDelayHours adds f to the "delay_hours" field.
func (m *StepTaskMutation) AddDelayHours(f float64) {
	if m.adddelay_hours != nil {
		*m.adddelay_hours += f
	} else {
		m.adddelay_hours = &f
	}
}

// AddedDelayHours returns the value that was added to the "delay_hours" field in this mutation.
func (m *StepTaskMutation) AddedDelayHours() (r float64, exists bool) {
	v := m.adddelay_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetDelayHours resets all changes to the "delay_hours" field.
func (m *StepTaskMutation) ResetDelayHours() {
	m.delay_hours = nil
	m.adddelay_hours = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StepTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StepTask entity.
// If the StepTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StepTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StepTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StepTask entity.
// If the StepTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StepTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the JobRecord entity.
func (m *StepTaskMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[steptask.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the JobRecord entity was cleared.
func (m *StepTaskMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *StepTaskMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *StepTaskMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the StepTaskMutation builder.
func (m *StepTaskMutation) Where(ps ...predicate.StepTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepTask).
func (m *StepTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepTaskMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.job != nil {
		fields = append(fields, steptask.FieldJobID)
	}
	if m.step != nil {
		fields = append(fields, steptask.FieldStep)
	}
	if m.plan_date != nil {
		fields = append(fields, steptask.FieldPlanDate)
	}
	if m.actual_date != nil {
		fields = append(fields, steptask.FieldActualDate)
	}
	if m.status != nil {
		fields = append(fields, steptask.FieldStatus)
	}
	if m.delay_reason != nil {
		fields = append(fields, steptask.FieldDelayReason)
	}
	if m.worker_name != nil {
		fields = append(fields, steptask.FieldWorkerName)
	}
	if m.completed_qty != nil {
		fields = append(fields, steptask.FieldCompletedQty)
	}
	if m.delay_hours != nil {
		fields = append(fields, steptask.FieldDelayHours)
	}
	if m.created_at != nil {
		fields = append(fields, steptask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, steptask.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case steptask.FieldJobID:
		return m.JobID()
	case steptask.FieldStep:
		return m.Step()
	case steptask.FieldPlanDate:
		return m.PlanDate()
	case steptask.FieldActualDate:
		return m.ActualDate()
	case steptask.FieldStatus:
		return m.Status()
	case steptask.FieldDelayReason:
		return m.DelayReason()
	case steptask.FieldWorkerName:
		return m.WorkerName()
	case steptask.FieldCompletedQty:
		return m.CompletedQty()
	case steptask.FieldDelayHours:
		return m.DelayHours()
	case steptask.FieldCreatedAt:
		return m.CreatedAt()
	case steptask.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case steptask.FieldJobID:
		return m.OldJobID(ctx)
	case steptask.FieldStep:
		return m.OldStep(ctx)
	case steptask.FieldPlanDate:
		return m.OldPlanDate(ctx)
	case steptask.FieldActualDate:
		return m.OldActualDate(ctx)
	case steptask.FieldStatus:
		return m.OldStatus(ctx)
	case steptask.FieldDelayReason:
		return m.OldDelayReason(ctx)
	case steptask.FieldWorkerName:
		return m.OldWorkerName(ctx)
	case steptask.FieldCompletedQty:
		return m.OldCompletedQty(ctx)
	case steptask.FieldDelayHours:
		return m.OldDelayHours(ctx)
	case steptask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case steptask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StepTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case steptask.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case steptask.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case steptask.FieldPlanDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanDate(v)
		return nil
	case steptask.FieldActualDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualDate(v)
		return nil
	case steptask.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case steptask.FieldDelayReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelayReason(v)
		return nil
	case steptask.FieldWorkerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerName(v)
		return nil
	case steptask.FieldCompletedQty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedQty(v)
		return nil
	case steptask.FieldDelayHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelayHours(v)
		return nil
	case steptask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case steptask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StepTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepTaskMutation) AddedFields() []string {
	var fields []string
	if m.addstep != nil {
		fields = append(fields, steptask.FieldStep)
	}
	if m.addcompleted_qty != nil {
		fields = append(fields, steptask.FieldCompletedQty)
	}
	if m.adddelay_hours != nil {
		fields = append(fields, steptask.FieldDelayHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case steptask.FieldStep:
		return m.AddedStep()
	case steptask.FieldCompletedQty:
		return m.AddedCompletedQty()
	case steptask.FieldDelayHours:
		return m.AddedDelayHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case steptask.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStep(v)
		return nil
	case steptask.FieldCompletedQty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedQty(v)
		return nil
	case steptask.FieldDelayHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelayHours(v)
		return nil
	}
	return fmt.Errorf("unknown StepTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(steptask.FieldPlanDate) {
		fields = append(fields, steptask.FieldPlanDate)
	}
	if m.FieldCleared(steptask.FieldActualDate) {
		fields = append(fields, steptask.FieldActualDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepTaskMutation) ClearField(name string) error {
	switch name {
	case steptask.FieldPlanDate:
		m.ClearPlanDate()
		return nil
	case steptask.FieldActualDate:
		m.ClearActualDate()
		return nil
	}
	return fmt.Errorf("unknown StepTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepTaskMutation) ResetField(name string) error {
	switch name {
	case steptask.FieldJobID:
		m.ResetJobID()
		return nil
	case steptask.FieldStep:
		m.ResetStep()
		return nil
	case steptask.FieldPlanDate:
		m.ResetPlanDate()
		return nil
	case steptask.FieldActualDate:
		m.ResetActualDate()
		return nil
	case steptask.FieldStatus:
		m.ResetStatus()
		return nil
	case steptask.FieldDelayReason:
		m.ResetDelayReason()
		return nil
	case steptask.FieldWorkerName:
		m.ResetWorkerName()
		return nil
	case steptask.FieldCompletedQty:
		m.ResetCompletedQty()
		return nil
	case steptask.FieldDelayHours:
		m.ResetDelayHours()
		return nil
	case steptask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case steptask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StepTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, steptask.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case steptask.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, steptask.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case steptask.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepTaskMutation) ClearEdge(name string) error {
	switch name {
	case steptask.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown StepTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepTaskMutation) ResetEdge(name string) error {
	switch name {
	case steptask.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown StepTask edge %s", name)
}

// TaskCommentMutation represents an operation that mutates the TaskComment nodes in the graph.
type TaskCommentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	user_name     *string
	comment       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *uuid.UUID
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*TaskComment, error)
	predicates    []predicate.TaskComment
}

var _ ent.Mutation = (*TaskCommentMutation)(nil)

// taskcommentOption allows management of the mutation configuration using functional options.
type taskcommentOption func(*TaskCommentMutation)

// newTaskCommentMutation creates new mutation for the TaskComment entity.
func newTaskCommentMutation(c config, op Op, opts ...taskcommentOption) *TaskCommentMutation {
	m := &TaskCommentMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskComment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskCommentID sets the ID field of the mutation.
func withTaskCommentID(id uuid.UUID) taskcommentOption {
	return func(m *TaskCommentMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskComment
		)
		m.oldValue = func(ctx context.Context) (*TaskComment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskComment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskComment sets the old TaskComment of the mutation.
func withTaskComment(node *TaskComment) taskcommentOption {
	return func(m *TaskCommentMutation) {
		m.oldValue = func(context.Context) (*TaskComment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskCommentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskCommentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskComment entities.
func (m *TaskCommentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskCommentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskCommentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskComment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskCommentMutation) SetTaskID(u uuid.UUID) {
	m.task = &u
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskCommentMutation) TaskID() (r uuid.UUID, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskComment entity.
// If the TaskComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskCommentMutation) OldTaskID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskCommentMutation) ResetTaskID() {
	m.task = nil
}

// SetUserName sets the "user_name" field.
func (m *TaskCommentMutation) SetUserName(s string) {
	m.user_name = &s
}

// UserName returns the value of the "user_name" field in the mutation.
func (m *TaskCommentMutation) UserName() (r string, exists bool) {
	v := m.user_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUserName returns the old "user_name" field's value of the TaskComment entity.
// If the TaskComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskCommentMutation) OldUserName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserName: %w", err)
	}
	return oldValue.UserName, nil
}

// ResetUserName resets all changes to the "user_name" field.
func (m *TaskCommentMutation) ResetUserName() {
	m.user_name = nil
}

// SetComment sets the "comment" field.
func (m *TaskCommentMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *TaskCommentMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the TaskComment entity.
// If the TaskComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskCommentMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ResetComment resets all changes to the "comment" field.
func (m *TaskCommentMutation) ResetComment() {
	m.comment = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskCommentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskCommentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskComment entity.
// If the TaskComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskCommentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskCommentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the DelegationTask entity.
func (m *TaskCommentMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskcomment.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the DelegationTask entity was cleared.
func (m *TaskCommentMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskCommentMutation) TaskIDs() (ids []uuid.UUID) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskCommentMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskCommentMutation builder.
func (m *TaskCommentMutation) Where(ps ...predicate.TaskComment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskCommentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskCommentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskComment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskCommentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskCommentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskComment).
func (m *TaskCommentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskCommentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.task != nil {
		fields = append(fields, taskcomment.FieldTaskID)
	}
	if m.user_name != nil {
		fields = append(fields, taskcomment.FieldUserName)
	}
	if m.comment != nil {
		fields = append(fields, taskcomment.FieldComment)
	}
	if m.created_at != nil {
		fields = append(fields, taskcomment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskCommentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskcomment.FieldTaskID:
		return m.TaskID()
	case taskcomment.FieldUserName:
		return m.UserName()
	case taskcomment.FieldComment:
		return m.Comment()
	case taskcomment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskCommentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskcomment.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskcomment.FieldUserName:
		return m.OldUserName(ctx)
	case taskcomment.FieldComment:
		return m.OldComment(ctx)
	case taskcomment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskComment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskCommentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskcomment.FieldTaskID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskcomment.FieldUserName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserName(v)
		return nil
	case taskcomment.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case taskcomment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskComment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskCommentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskCommentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskCommentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskComment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskCommentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskCommentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskCommentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskComment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskCommentMutation) ResetField(name string) error {
	switch name {
	case taskcomment.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskcomment.FieldUserName:
		m.ResetUserName()
		return nil
	case taskcomment.FieldComment:
		m.ResetComment()
		return nil
	case taskcomment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskComment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskCommentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskcomment.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskCommentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskcomment.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskCommentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskCommentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskCommentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskcomment.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskCommentMutation) EdgeCleared(name string) bool {
	switch name {
	case taskcomment.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskCommentMutation) ClearEdge(name string) error {
	switch name {
	case taskcomment.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskComment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskCommentMutation) ResetEdge(name string) error {
	switch name {
	case taskcomment.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskComment edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	role          *string
	department    *string
	email         *string
	mobile        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetDepartment sets the "department" field.
func (m *UserMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *UserMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ResetDepartment resets all changes to the "department" field.
func (m *UserMutation) ResetDepartment() {
	m.department = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetMobile sets the "mobile" field.
func (m *UserMutation) SetMobile(s string) {
	m.mobile = &s
}

// Mobile returns the value of the "mobile" field in the mutation.
func (m *UserMutation) Mobile() (r string, exists bool) {
	v := m.mobile
	if v == nil {
		return
	}
	return *v, true
}

// OldMobile returns the old "mobile" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldMobile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMobile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMobile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMobile: %w", err)
	}
	return oldValue.Mobile, nil
}

// ResetMobile resets all changes to the "mobile" field.
func (m *UserMutation) ResetMobile() {
	m.mobile = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.department != nil {
		fields = append(fields, user.FieldDepartment)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.mobile != nil {
		fields = append(fields, user.FieldMobile)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldRole:
		return m.Role()
	case user.FieldDepartment:
		return m.Department()
	case user.FieldEmail:
		return m.Email()
	case user.FieldMobile:
		return m.Mobile()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldDepartment:
		return m.OldDepartment(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldMobile:
		return m.OldMobile(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldMobile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMobile(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldDepartment:
		m.ResetDepartment()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldMobile:
		m.ResetMobile()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
