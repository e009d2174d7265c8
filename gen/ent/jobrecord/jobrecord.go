// Code generated by ent, DO NOT EDIT.

package jobrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the jobrecord type in the database.
	Label = "job_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRowIndex holds the string denoting the row_index field in the database.
	FieldRowIndex = "row_index"
	// FieldSourceDate holds the string denoting the source_date field in the database.
	FieldSourceDate = "source_date"
	// FieldOtdType holds the string denoting the otd_type field in the database.
	FieldOtdType = "otd_type"
	// FieldJobNumber holds the string denoting the job_number field in the database.
	FieldJobNumber = "job_number"
	// FieldOrderBy holds the string denoting the order_by field in the database.
	FieldOrderBy = "order_by"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldBoxType holds the string denoting the box_type field in the database.
	FieldBoxType = "box_type"
	// FieldBoxStyle holds the string denoting the box_style field in the database.
	FieldBoxStyle = "box_style"
	// FieldBoxColor holds the string denoting the box_color field in the database.
	FieldBoxColor = "box_color"
	// FieldPrintingType holds the string denoting the printing_type field in the database.
	FieldPrintingType = "printing_type"
	// FieldPrintingColor holds the string denoting the printing_color field in the database.
	FieldPrintingColor = "printing_color"
	// FieldSpecification holds the string denoting the specification field in the database.
	FieldSpecification = "specification"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldLeadTime holds the string denoting the lead_time field in the database.
	FieldLeadTime = "lead_time"
	// FieldRepeatNew holds the string denoting the repeat_new field in the database.
	FieldRepeatNew = "repeat_new"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// Table holds the table name of the jobrecord in the database.
	Table = "fms_job_records"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "fms_step_tasks"
	// TasksInverseTable is the table name for the StepTask entity.
	// It exists in this package in order to avoid circular dependency with the "steptask" package.
	TasksInverseTable = "fms_step_tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "job_id"
)

// Columns holds all SQL columns for jobrecord fields.
var Columns = []string{
	FieldID,
	FieldRowIndex,
	FieldSourceDate,
	FieldOtdType,
	FieldJobNumber,
	FieldOrderBy,
	FieldCompanyName,
	FieldBoxType,
	FieldBoxStyle,
	FieldBoxColor,
	FieldPrintingType,
	FieldPrintingColor,
	FieldSpecification,
	FieldCity,
	FieldQuantity,
	FieldLeadTime,
	FieldRepeatNew,
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
	// RowIndexValidator is a validator for the "row_index" field. It is called by the builders before save.
	RowIndexValidator func(int) error
	// DefaultOtdType holds the default value on creation for the "otd_type" field.
	DefaultOtdType string
	// DefaultJobNumber holds the default value on creation for the "job_number" field.
	DefaultJobNumber string
	// DefaultOrderBy holds the default value on creation for the "order_by" field.
	DefaultOrderBy string
	// DefaultCompanyName holds the default value on creation for the "company_name" field.
	DefaultCompanyName string
	// DefaultBoxType holds the default value on creation for the "box_type" field.
	DefaultBoxType string
	// DefaultBoxStyle holds the default value on creation for the "box_style" field.
	DefaultBoxStyle string
	// DefaultBoxColor holds the default value on creation for the "box_color" field.
	DefaultBoxColor string
	// DefaultPrintingType holds the default value on creation for the "printing_type" field.
	DefaultPrintingType string
	// DefaultPrintingColor holds the default value on creation for the "printing_color" field.
	DefaultPrintingColor string
	// DefaultSpecification holds the default value on creation for the "specification" field.
	DefaultSpecification string
	// DefaultCity holds the default value on creation for the "city" field.
	DefaultCity string
	// DefaultQuantity holds the default value on creation for the "quantity" field.
	DefaultQuantity int
	// DefaultRepeatNew holds the default value on creation for the "repeat_new" field.
	DefaultRepeatNew string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the JobRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRowIndex orders the results by the row_index field.
func ByRowIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowIndex, opts...).ToFunc()
}

// BySourceDate orders the results by the source_date field.
func BySourceDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceDate, opts...).ToFunc()
}

// ByOtdType orders the results by the otd_type field.
func ByOtdType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOtdType, opts...).ToFunc()
}

// ByJobNumber orders the results by the job_number field.
func ByJobNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobNumber, opts...).ToFunc()
}

// ByOrderBy orders the results by the order_by field.
func ByOrderBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderBy, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByBoxType orders the results by the box_type field.
func ByBoxType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxType, opts...).ToFunc()
}

// ByBoxStyle orders the results by the box_style field.
func ByBoxStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxStyle, opts...).ToFunc()
}

// ByBoxColor orders the results by the box_color field.
func ByBoxColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxColor, opts...).ToFunc()
}

// ByPrintingType orders the results by the printing_type field.
func ByPrintingType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrintingType, opts...).ToFunc()
}

// ByPrintingColor orders the results by the printing_color field.
func ByPrintingColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrintingColor, opts...).ToFunc()
}

// BySpecification orders the results by the specification field.
func BySpecification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecification, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByLeadTime orders the results by the lead_time field.
func ByLeadTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadTime, opts...).ToFunc()
}

// ByRepeatNew orders the results by the repeat_new field.
func ByRepeatNew(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepeatNew, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
