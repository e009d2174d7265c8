// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/checklisttask"
	"github.com/google/uuid"
)

// ChecklistTask is the model entity for the ChecklistTask schema.
type ChecklistTask struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UID holds the value of the "uid" field.
	UID string `json:"uid,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// EmployeeEmail holds the value of the "employee_email" field.
	EmployeeEmail string `json:"employee_email,omitempty"`
	// EmployeeName holds the value of the "employee_name" field.
	EmployeeName string `json:"employee_name,omitempty"`
	// Frequency holds the value of the "frequency" field.
	Frequency string `json:"frequency,omitempty"`
	// TargetDate holds the value of the "target_date" field.
	TargetDate time.Time `json:"target_date,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChecklistTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checklisttask.FieldUID, checklisttask.FieldDescription, checklisttask.FieldEmployeeEmail, checklisttask.FieldEmployeeName, checklisttask.FieldFrequency, checklisttask.FieldStatus:
			values[i] = new(sql.NullString)
		case checklisttask.FieldTargetDate, checklisttask.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case checklisttask.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChecklistTask fields.
func (_m *ChecklistTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checklisttask.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case checklisttask.FieldUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uid", values[i])
			} else if value.Valid {
				_m.UID = value.String
			}
		case checklisttask.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case checklisttask.FieldEmployeeEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employee_email", values[i])
			} else if value.Valid {
				_m.EmployeeEmail = value.String
			}
		case checklisttask.FieldEmployeeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employee_name", values[i])
			} else if value.Valid {
				_m.EmployeeName = value.String
			}
		case checklisttask.FieldFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field frequency", values[i])
			} else if value.Valid {
				_m.Frequency = value.String
			}
		case checklisttask.FieldTargetDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field target_date", values[i])
			} else if value.Valid {
				_m.TargetDate = value.Time
			}
		case checklisttask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case checklisttask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChecklistTask.
// This includes values selected through modifiers, order, etc.
func (_m *ChecklistTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChecklistTask.
// Note that you need to call ChecklistTask.Unwrap() before calling this method if this ChecklistTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChecklistTask) Update() *ChecklistTaskUpdateOne {
	return NewChecklistTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChecklistTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChecklistTask) Unwrap() *ChecklistTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChecklistTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChecklistTask) String() string {
	var builder strings.Builder
	builder.WriteString("ChecklistTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("uid=")
	builder.WriteString(_m.UID)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("employee_email=")
	builder.WriteString(_m.EmployeeEmail)
	builder.WriteString(", ")
	builder.WriteString("employee_name=")
	builder.WriteString(_m.EmployeeName)
	builder.WriteString(", ")
	builder.WriteString("frequency=")
	builder.WriteString(_m.Frequency)
	builder.WriteString(", ")
	builder.WriteString("target_date=")
	builder.WriteString(_m.TargetDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ChecklistTasks is a parsable slice of ChecklistTask.
type ChecklistTasks []*ChecklistTask
