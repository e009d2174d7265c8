// Code generated by ent, DO NOT EDIT.

package steptask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the steptask type in the database.
	Label = "step_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldStep holds the string denoting the step field in the database.
	FieldStep = "step"
	// FieldPlanDate holds the string denoting the plan_date field in the database.
	FieldPlanDate = "plan_date"
	// FieldActualDate holds the string denoting the actual_date field in the database.
	FieldActualDate = "actual_date"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDelayReason holds the string denoting the delay_reason field in the database.
	FieldDelayReason = "delay_reason"
	// FieldWorkerName holds the string denoting the worker_name field in the database.
	FieldWorkerName = "worker_name"
	// FieldCompletedQty holds the string denoting the completed_qty field in the database.
	FieldCompletedQty = "completed_qty"
	// FieldDelayHours holds the string denoting the delay_hours field in the database.
	FieldDelayHours = "delay_hours"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the steptask in the database.
	Table = "fms_step_tasks"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "fms_step_tasks"
	// JobInverseTable is the table name for the JobRecord entity.
	// It exists in this package in order to avoid circular dependency with the "jobrecord" package.
	JobInverseTable = "fms_job_records"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for steptask fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldStep,
	FieldPlanDate,
	FieldActualDate,
	FieldStatus,
	FieldDelayReason,
	FieldWorkerName,
	FieldCompletedQty,
	FieldDelayHours,
	FieldCreatedAt,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultDelayReason holds the default value on creation for the "delay_reason" field.
	DefaultDelayReason string
	// DefaultWorkerName holds the default value on creation for the "worker_name" field.
	DefaultWorkerName string
	// DefaultCompletedQty holds the default value on creation for the "completed_qty" field.
	DefaultCompletedQty int
	// DefaultDelayHours holds the default value on creation for the "delay_hours" field.
	DefaultDelayHours float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the StepTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByStep orders the results by the step field.
func ByStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep, opts...).ToFunc()
}

// ByPlanDate orders the results by the plan_date field.
func ByPlanDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanDate, opts...).ToFunc()
}

// ByActualDate orders the results by the actual_date field.
func ByActualDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualDate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDelayReason orders the results by the delay_reason field.
func ByDelayReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelayReason, opts...).ToFunc()
}

// ByWorkerName orders the results by the worker_name field.
func ByWorkerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerName, opts...).ToFunc()
}

// ByCompletedQty orders the results by the completed_qty field.
func ByCompletedQty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedQty, opts...).ToFunc()
}

// ByDelayHours orders the results by the delay_hours field.
func ByDelayHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelayHours, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
