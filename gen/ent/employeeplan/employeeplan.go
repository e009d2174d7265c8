// Code generated by ent, DO NOT EDIT.

package employeeplan

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the employeeplan type in the database.
	Label = "employee_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmployeeEmail holds the string denoting the employee_email field in the database.
	FieldEmployeeEmail = "employee_email"
	// FieldPlanDate holds the string denoting the plan_date field in the database.
	FieldPlanDate = "plan_date"
	// FieldPlannedCount holds the string denoting the planned_count field in the database.
	FieldPlannedCount = "planned_count"
	// Table holds the table name of the employeeplan in the database.
	Table = "employee_plans"
)

// Columns holds all SQL columns for employeeplan fields.
var Columns = []string{
	FieldID,
	FieldEmployeeEmail,
	FieldPlanDate,
	FieldPlannedCount,
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
	// EmployeeEmailValidator is a validator for the "employee_email" field. It is called by the builders before save.
	EmployeeEmailValidator func(string) error
	// PlannedCountValidator is a validator for the "planned_count" field. It is called by the builders before save.
	PlannedCountValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EmployeePlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmployeeEmail orders the results by the employee_email field.
func ByEmployeeEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployeeEmail, opts...).ToFunc()
}

// ByPlanDate orders the results by the plan_date field.
func ByPlanDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanDate, opts...).ToFunc()
}

// ByPlannedCount orders the results by the planned_count field.
func ByPlannedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlannedCount, opts...).ToFunc()
}
