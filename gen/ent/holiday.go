// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/holiday"
)

// Holiday is the model entity for the Holiday schema.
type Holiday struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// HolidayDate holds the value of the "holiday_date" field.
	HolidayDate time.Time `json:"holiday_date,omitempty"`
	// Name holds the value of the "name" field.
	Name         string `json:"name,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Holiday) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case holiday.FieldID:
			values[i] = new(sql.NullInt64)
		case holiday.FieldName:
			values[i] = new(sql.NullString)
		case holiday.FieldHolidayDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Holiday fields.
func (_m *Holiday) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case holiday.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case holiday.FieldHolidayDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field holiday_date", values[i])
			} else if value.Valid {
				_m.HolidayDate = value.Time
			}
		case holiday.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Holiday.
// This includes values selected through modifiers, order, etc.
func (_m *Holiday) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Holiday.
// Note that you need to call Holiday.Unwrap() before calling this method if this Holiday
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Holiday) Update() *HolidayUpdateOne {
	return NewHolidayClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Holiday entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Holiday) Unwrap() *Holiday {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Holiday is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Holiday) String() string {
	var builder strings.Builder
	builder.WriteString("Holiday(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("holiday_date=")
	builder.WriteString(_m.HolidayDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteByte(')')
	return builder.String()
}

// Holidays is a parsable slice of Holiday.
type Holidays []*Holiday
