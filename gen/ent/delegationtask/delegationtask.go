// Code generated by ent, DO NOT EDIT.

package delegationtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the delegationtask type in the database.
	Label = "delegation_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskUID holds the string denoting the task_uid field in the database.
	FieldTaskUID = "task_uid"
	// FieldEmployeeName holds the string denoting the employee_name field in the database.
	FieldEmployeeName = "employee_name"
	// FieldAssignedToEmail holds the string denoting the assigned_to_email field in the database.
	FieldAssignedToEmail = "assigned_to_email"
	// FieldApproverEmail holds the string denoting the approver_email field in the database.
	FieldApproverEmail = "approver_email"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTargetDate holds the string denoting the target_date field in the database.
	FieldTargetDate = "target_date"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldApprovalNeeded holds the string denoting the approval_needed field in the database.
	FieldApprovalNeeded = "approval_needed"
	// FieldAssignedBy holds the string denoting the assigned_by field in the database.
	FieldAssignedBy = "assigned_by"
	// FieldRemarks holds the string denoting the remarks field in the database.
	FieldRemarks = "remarks"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPreviousStatus holds the string denoting the previous_status field in the database.
	FieldPreviousStatus = "previous_status"
	// FieldRevisedDateRequest holds the string denoting the revised_date_request field in the database.
	FieldRevisedDateRequest = "revised_date_request"
	// FieldRevisionRemarks holds the string denoting the revision_remarks field in the database.
	FieldRevisionRemarks = "revision_remarks"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeComments holds the string denoting the comments edge name in mutations.
	EdgeComments = "comments"
	// Table holds the table name of the delegationtask in the database.
	Table = "tasks"
	// CommentsTable is the table that holds the comments relation/edge.
	CommentsTable = "task_comments"
	// CommentsInverseTable is the table name for the TaskComment entity.
	// It exists in this package in order to avoid circular dependency with the "taskcomment" package.
	CommentsInverseTable = "task_comments"
	// CommentsColumn is the table column denoting the comments relation/edge.
	CommentsColumn = "task_id"
)

// Columns holds all SQL columns for delegationtask fields.
var Columns = []string{
	FieldID,
	FieldTaskUID,
	FieldEmployeeName,
	FieldAssignedToEmail,
	FieldApproverEmail,
	FieldDescription,
	FieldTargetDate,
	FieldPriority,
	FieldApprovalNeeded,
	FieldAssignedBy,
	FieldRemarks,
	FieldStatus,
	FieldPreviousStatus,
	FieldRevisedDateRequest,
	FieldRevisionRemarks,
	FieldCreatedAt,
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
	// TaskUIDValidator is a validator for the "task_uid" field. It is called by the builders before save.
	TaskUIDValidator func(string) error
	// DefaultEmployeeName holds the default value on creation for the "employee_name" field.
	DefaultEmployeeName string
	// AssignedToEmailValidator is a validator for the "assigned_to_email" field. It is called by the builders before save.
	AssignedToEmailValidator func(string) error
	// DefaultApproverEmail holds the default value on creation for the "approver_email" field.
	DefaultApproverEmail string
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority string
	// DefaultApprovalNeeded holds the default value on creation for the "approval_needed" field.
	DefaultApprovalNeeded bool
	// DefaultAssignedBy holds the default value on creation for the "assigned_by" field.
	DefaultAssignedBy string
	// DefaultRemarks holds the default value on creation for the "remarks" field.
	DefaultRemarks string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultPreviousStatus holds the default value on creation for the "previous_status" field.
	DefaultPreviousStatus string
	// DefaultRevisionRemarks holds the default value on creation for the "revision_remarks" field.
	DefaultRevisionRemarks string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DelegationTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskUID orders the results by the task_uid field.
func ByTaskUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskUID, opts...).ToFunc()
}

// ByEmployeeName orders the results by the employee_name field.
func ByEmployeeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployeeName, opts...).ToFunc()
}

// ByAssignedToEmail orders the results by the assigned_to_email field.
func ByAssignedToEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedToEmail, opts...).ToFunc()
}

// ByApproverEmail orders the results by the approver_email field.
func ByApproverEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApproverEmail, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTargetDate orders the results by the target_date field.
func ByTargetDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetDate, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByApprovalNeeded orders the results by the approval_needed field.
func ByApprovalNeeded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalNeeded, opts...).ToFunc()
}

// ByAssignedBy orders the results by the assigned_by field.
func ByAssignedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedBy, opts...).ToFunc()
}

// ByRemarks orders the results by the remarks field.
func ByRemarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemarks, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPreviousStatus orders the results by the previous_status field.
func ByPreviousStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousStatus, opts...).ToFunc()
}

// ByRevisedDateRequest orders the results by the revised_date_request field.
func ByRevisedDateRequest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevisedDateRequest, opts...).ToFunc()
}

// ByRevisionRemarks orders the results by the revision_remarks field.
func ByRevisionRemarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevisionRemarks, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCommentsCount orders the results by comments count.
func ByCommentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCommentsStep(), opts...)
	}
}

// ByComments orders the results by comments terms.
func ByComments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCommentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CommentsTable, CommentsColumn),
	)
}
