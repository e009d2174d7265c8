// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/employeeplan"
	"github.com/google/uuid"
)

// EmployeePlan is the model entity for the EmployeePlan schema.
type EmployeePlan struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EmployeeEmail holds the value of the "employee_email" field.
	EmployeeEmail string `json:"employee_email,omitempty"`
	// PlanDate holds the value of the "plan_date" field.
	PlanDate time.Time `json:"plan_date,omitempty"`
	// PlannedCount holds the value of the "planned_count" field.
	PlannedCount int `json:"planned_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmployeePlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case employeeplan.FieldPlannedCount:
			values[i] = new(sql.NullInt64)
		case employeeplan.FieldEmployeeEmail:
			values[i] = new(sql.NullString)
		case employeeplan.FieldPlanDate:
			values[i] = new(sql.NullTime)
		case employeeplan.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmployeePlan fields.
func (_m *EmployeePlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case employeeplan.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case employeeplan.FieldEmployeeEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employee_email", values[i])
			} else if value.Valid {
				_m.EmployeeEmail = value.String
			}
		case employeeplan.FieldPlanDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field plan_date", values[i])
			} else if value.Valid {
				_m.PlanDate = value.Time
			}
		case employeeplan.FieldPlannedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field planned_count", values[i])
			} else if value.Valid {
				_m.PlannedCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmployeePlan.
// This includes values selected through modifiers, order, etc.
func (_m *EmployeePlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EmployeePlan.
// Note that you need to call EmployeePlan.Unwrap() before calling this method if this EmployeePlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmployeePlan) Update() *EmployeePlanUpdateOne {
	return NewEmployeePlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmployeePlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmployeePlan) Unwrap() *EmployeePlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmployeePlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmployeePlan) String() string {
	var builder strings.Builder
	builder.WriteString("EmployeePlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("employee_email=")
	builder.WriteString(_m.EmployeeEmail)
	builder.WriteString(", ")
	builder.WriteString("plan_date=")
	builder.WriteString(_m.PlanDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("planned_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlannedCount))
	builder.WriteByte(')')
	return builder.String()
}

// EmployeePlans is a parsable slice of EmployeePlan.
type EmployeePlans []*EmployeePlan
