// Code generated by ent, DO NOT EDIT.

package stepconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stepconfig type in the database.
	Label = "step_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStep holds the string denoting the step field in the database.
	FieldStep = "step"
	// FieldStepName holds the string denoting the step_name field in the database.
	FieldStepName = "step_name"
	// FieldDoerEmails holds the string denoting the doer_emails field in the database.
	FieldDoerEmails = "doer_emails"
	// FieldVisibleColumns holds the string denoting the visible_columns field in the database.
	FieldVisibleColumns = "visible_columns"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the stepconfig in the database.
	Table = "fms_step_config"
)

// Columns holds all SQL columns for stepconfig fields.
var Columns = []string{
	FieldID,
	FieldStep,
	FieldStepName,
	FieldDoerEmails,
	FieldVisibleColumns,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StepValidator is a validator for the "step" field. It is called by the builders before save.
	StepValidator func(int) error
	// StepNameValidator is a validator for the "step_name" field. It is called by the builders before save.
	StepNameValidator func(string) error
	// DefaultDoerEmails holds the default value on creation for the "doer_emails" field.
	DefaultDoerEmails string
	// DefaultVisibleColumns holds the default value on creation for the "visible_columns" field.
	DefaultVisibleColumns string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the StepConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStep orders the results by the step field.
func ByStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep, opts...).ToFunc()
}

// ByStepName orders the results by the step_name field.
func ByStepName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepName, opts...).ToFunc()
}

// ByDoerEmails orders the results by the doer_emails field.
func ByDoerEmails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoerEmails, opts...).ToFunc()
}

// ByVisibleColumns orders the results by the visible_columns field.
func ByVisibleColumns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisibleColumns, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
