// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/delegationtask"
	"github.com/google/uuid"
)

// DelegationTask is the model entity for the DelegationTask schema.
type DelegationTask struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TaskUID holds the value of the "task_uid" field.
	TaskUID string `json:"task_uid,omitempty"`
	// EmployeeName holds the value of the "employee_name" field.
	EmployeeName string `json:"employee_name,omitempty"`
	// AssignedToEmail holds the value of the "assigned_to_email" field.
	AssignedToEmail string `json:"assigned_to_email,omitempty"`
	// ApproverEmail holds the value of the "approver_email" field.
	ApproverEmail string `json:"approver_email,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// TargetDate holds the value of the "target_date" field.
	TargetDate time.Time `json:"target_date,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority string `json:"priority,omitempty"`
	// ApprovalNeeded holds the value of the "approval_needed" field.
	ApprovalNeeded bool `json:"approval_needed,omitempty"`
	// AssignedBy holds the value of the "assigned_by" field.
	AssignedBy string `json:"assigned_by,omitempty"`
	// Remarks holds the value of the "remarks" field.
	Remarks string `json:"remarks,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// PreviousStatus holds the value of the "previous_status" field.
	PreviousStatus string `json:"previous_status,omitempty"`
	// RevisedDateRequest holds the value of the "revised_date_request" field.
	RevisedDateRequest *time.Time `json:"revised_date_request,omitempty"`
	// RevisionRemarks holds the value of the "revision_remarks" field.
	RevisionRemarks string `json:"revision_remarks,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DelegationTaskQuery when eager-loading is set.
	Edges        DelegationTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DelegationTaskEdges holds the relations/edges for other nodes in the graph.
type DelegationTaskEdges struct {
	// Comments holds the value of the comments edge.
	Comments []*TaskComment `json:"comments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CommentsOrErr returns the Comments value or an error if the edge
// was not loaded in eager-loading.
func (e DelegationTaskEdges) CommentsOrErr() ([]*TaskComment, error) {
	if e.loadedTypes[0] {
		return e.Comments, nil
	}
	return nil, &NotLoadedError{edge: "comments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DelegationTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case delegationtask.FieldApprovalNeeded:
			values[i] = new(sql.NullBool)
		case delegationtask.FieldTaskUID, delegationtask.FieldEmployeeName, delegationtask.FieldAssignedToEmail, delegationtask.FieldApproverEmail, delegationtask.FieldDescription, delegationtask.FieldPriority, delegationtask.FieldAssignedBy, delegationtask.FieldRemarks, delegationtask.FieldStatus, delegationtask.FieldPreviousStatus, delegationtask.FieldRevisionRemarks:
			values[i] = new(sql.NullString)
		case delegationtask.FieldTargetDate, delegationtask.FieldRevisedDateRequest, delegationtask.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case delegationtask.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DelegationTask fields.
func (_m *DelegationTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case delegationtask.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case delegationtask.FieldTaskUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_uid", values[i])
			} else if value.Valid {
				_m.TaskUID = value.String
			}
		case delegationtask.FieldEmployeeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employee_name", values[i])
			} else if value.Valid {
				_m.EmployeeName = value.String
			}
		case delegationtask.FieldAssignedToEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to_email", values[i])
			} else if value.Valid {
				_m.AssignedToEmail = value.String
			}
		case delegationtask.FieldApproverEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approver_email", values[i])
			} else if value.Valid {
				_m.ApproverEmail = value.String
			}
		case delegationtask.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case delegationtask.FieldTargetDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field target_date", values[i])
			} else if value.Valid {
				_m.TargetDate = value.Time
			}
		case delegationtask.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.String
			}
		case delegationtask.FieldApprovalNeeded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approval_needed", values[i])
			} else if value.Valid {
				_m.ApprovalNeeded = value.Bool
			}
		case delegationtask.FieldAssignedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_by", values[i])
			} else if value.Valid {
				_m.AssignedBy = value.String
			}
		case delegationtask.FieldRemarks:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remarks", values[i])
			} else if value.Valid {
				_m.Remarks = value.String
			}
		case delegationtask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case delegationtask.FieldPreviousStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field previous_status", values[i])
			} else if value.Valid {
				_m.PreviousStatus = value.String
			}
		case delegationtask.FieldRevisedDateRequest:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field revised_date_request", values[i])
			} else if value.Valid {
				_m.RevisedDateRequest = new(time.Time)
				*_m.RevisedDateRequest = value.Time
			}
		case delegationtask.FieldRevisionRemarks:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field revision_remarks", values[i])
			} else if value.Valid {
				_m.RevisionRemarks = value.String
			}
		case delegationtask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DelegationTask.
// This includes values selected through modifiers, order, etc.
func (_m *DelegationTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryComments queries the "comments" edge of the DelegationTask entity.
func (_m *DelegationTask) QueryComments() *TaskCommentQuery {
	return NewDelegationTaskClient(_m.config).QueryComments(_m)
}

// Update returns a builder for updating this DelegationTask.
// Note that you need to call DelegationTask.Unwrap() before calling this method if this DelegationTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DelegationTask) Update() *DelegationTaskUpdateOne {
	return NewDelegationTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DelegationTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DelegationTask) Unwrap() *DelegationTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DelegationTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DelegationTask) String() string {
	var builder strings.Builder
	builder.WriteString("DelegationTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_uid=")
	builder.WriteString(_m.TaskUID)
	builder.WriteString(", ")
	builder.WriteString("employee_name=")
	builder.WriteString(_m.EmployeeName)
	builder.WriteString(", ")
	builder.WriteString("assigned_to_email=")
	builder.WriteString(_m.AssignedToEmail)
	builder.WriteString(", ")
	builder.WriteString("approver_email=")
	builder.WriteString(_m.ApproverEmail)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("target_date=")
	builder.WriteString(_m.TargetDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(_m.Priority)
	builder.WriteString(", ")
	builder.WriteString("approval_needed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalNeeded))
	builder.WriteString(", ")
	builder.WriteString("assigned_by=")
	builder.WriteString(_m.AssignedBy)
	builder.WriteString(", ")
	builder.WriteString("remarks=")
	builder.WriteString(_m.Remarks)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("previous_status=")
	builder.WriteString(_m.PreviousStatus)
	builder.WriteString(", ")
	if v := _m.RevisedDateRequest; v != nil {
		builder.WriteString("revised_date_request=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("revision_remarks=")
	builder.WriteString(_m.RevisionRemarks)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DelegationTasks is a parsable slice of DelegationTask.
type DelegationTasks []*DelegationTask
