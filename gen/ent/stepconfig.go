// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/stepconfig"
)

// StepConfig is the model entity for the StepConfig schema.
type StepConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Step holds the value of the "step" field.
	Step int `json:"step,omitempty"`
	// StepName holds the value of the "step_name" field.
	StepName string `json:"step_name,omitempty"`
	// DoerEmails holds the value of the "doer_emails" field.
	DoerEmails string `json:"doer_emails,omitempty"`
	// VisibleColumns holds the value of the "visible_columns" field.
	VisibleColumns string `json:"visible_columns,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepconfig.FieldID, stepconfig.FieldStep:
			values[i] = new(sql.NullInt64)
		case stepconfig.FieldStepName, stepconfig.FieldDoerEmails, stepconfig.FieldVisibleColumns:
			values[i] = new(sql.NullString)
		case stepconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepConfig fields.
func (_m *StepConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stepconfig.FieldStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step", values[i])
			} else if value.Valid {
				_m.Step = int(value.Int64)
			}
		case stepconfig.FieldStepName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_name", values[i])
			} else if value.Valid {
				_m.StepName = value.String
			}
		case stepconfig.FieldDoerEmails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doer_emails", values[i])
			} else if value.Valid {
				_m.DoerEmails = value.String
			}
		case stepconfig.FieldVisibleColumns:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visible_columns", values[i])
			} else if value.Valid {
				_m.VisibleColumns = value.String
			}
		case stepconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepConfig.
// This includes values selected through modifiers, order, etc.
func (_m *StepConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StepConfig.
// Note that you need to call StepConfig.Unwrap() before calling this method if this StepConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepConfig) Update() *StepConfigUpdateOne {
	return NewStepConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepConfig) Unwrap() *StepConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepConfig) String() string {
	var builder strings.Builder
	builder.WriteString("StepConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("step=")
	builder.WriteString(fmt.Sprintf("%v", _m.Step))
	builder.WriteString(", ")
	builder.WriteString("step_name=")
	builder.WriteString(_m.StepName)
	builder.WriteString(", ")
	builder.WriteString("doer_emails=")
	builder.WriteString(_m.DoerEmails)
	builder.WriteString(", ")
	builder.WriteString("visible_columns=")
	builder.WriteString(_m.VisibleColumns)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StepConfigs is a parsable slice of StepConfig.
type StepConfigs []*StepConfig
