// Code generated by ent, DO NOT EDIT.

package delegationtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldID, id))
}

// TaskUID applies equality check predicate on the "task_uid" field. It's identical to TaskUIDEQ.
func TaskUID(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldTaskUID, v))
}

// EmployeeName applies equality check predicate on the "employee_name" field. It's identical to EmployeeNameEQ.
func EmployeeName(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldEmployeeName, v))
}

// AssignedToEmail applies equality check predicate on the "assigned_to_email" field. It's identical to AssignedToEmailEQ.
func AssignedToEmail(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldAssignedToEmail, v))
}

// ApproverEmail applies equality check predicate on the "approver_email" field. It's identical to ApproverEmailEQ.
func ApproverEmail(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldApproverEmail, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldDescription, v))
}

// TargetDate applies equality check predicate on the "target_date" field. It's identical to TargetDateEQ.
func TargetDate(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldTargetDate, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldPriority, v))
}

// ApprovalNeeded applies equality check predicate on the "approval_needed" field. It's identical to ApprovalNeededEQ.
func ApprovalNeeded(v bool) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldApprovalNeeded, v))
}

// AssignedBy applies equality check predicate on the "assigned_by" field. It's identical to AssignedByEQ.
func AssignedBy(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldAssignedBy, v))
}

// Remarks applies equality check predicate on the "remarks" field. It's identical to RemarksEQ.
func Remarks(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldRemarks, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldStatus, v))
}

// PreviousStatus applies equality check predicate on the "previous_status" field. It's identical to PreviousStatusEQ.
func PreviousStatus(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldPreviousStatus, v))
}

// RevisedDateRequest applies equality check predicate on the "revised_date_request" field. It's identical to RevisedDateRequestEQ.
func RevisedDateRequest(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldRevisedDateRequest, v))
}

// RevisionRemarks applies equality check predicate on the "revision_remarks" field. It's identical to RevisionRemarksEQ.
func RevisionRemarks(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldRevisionRemarks, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskUIDEQ applies the EQ predicate on the "task_uid" field.
func TaskUIDEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldTaskUID, v))
}

// TaskUIDNEQ applies the NEQ predicate on the "task_uid" field.
func TaskUIDNEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldTaskUID, v))
}

// TaskUIDIn applies the In predicate on the "task_uid" field.
func TaskUIDIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldTaskUID, vs...))
}

// TaskUIDNotIn applies the NotIn predicate on the "task_uid" field.
func TaskUIDNotIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldTaskUID, vs...))
}

// TaskUIDGT applies the GT predicate on the "task_uid" field.
func TaskUIDGT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldTaskUID, v))
}

// TaskUIDGTE applies the GTE predicate on the "task_uid" field.
func TaskUIDGTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldTaskUID, v))
}

// TaskUIDLT applies the LT predicate on the "task_uid" field.
func TaskUIDLT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldTaskUID, v))
}

// TaskUIDLTE applies the LTE predicate on the "task_uid" field.
func TaskUIDLTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldTaskUID, v))
}

// TaskUIDContains applies the Contains predicate on the "task_uid" field.
func TaskUIDContains(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContains(FieldTaskUID, v))
}

// TaskUIDHasPrefix applies the HasPrefix predicate on the "task_uid" field.
func TaskUIDHasPrefix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasPrefix(FieldTaskUID, v))
}

// TaskUIDHasSuffix applies the HasSuffix predicate on the "task_uid" field.
func TaskUIDHasSuffix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasSuffix(FieldTaskUID, v))
}

// TaskUIDEqualFold applies the EqualFold predicate on the "task_uid" field.
func TaskUIDEqualFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEqualFold(FieldTaskUID, v))
}

// TaskUIDContainsFold applies the ContainsFold predicate on the "task_uid" field.
func TaskUIDContainsFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContainsFold(FieldTaskUID, v))
}

// EmployeeNameEQ applies the EQ predicate on the "employee_name" field.
func EmployeeNameEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldEmployeeName, v))
}

// EmployeeNameNEQ applies the NEQ predicate on the "employee_name" field.
func EmployeeNameNEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldEmployeeName, v))
}

// EmployeeNameIn applies the In predicate on the "employee_name" field.
func EmployeeNameIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldEmployeeName, vs...))
}

// EmployeeNameNotIn applies the NotIn predicate on the "employee_name" field.
func EmployeeNameNotIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldEmployeeName, vs...))
}

// EmployeeNameGT applies the GT predicate on the "employee_name" field.
func EmployeeNameGT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldEmployeeName, v))
}

// EmployeeNameGTE applies the GTE predicate on the "employee_name" field.
func EmployeeNameGTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldEmployeeName, v))
}

// EmployeeNameLT applies the LT predicate on the "employee_name" field.
func EmployeeNameLT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldEmployeeName, v))
}

// EmployeeNameLTE applies the LTE predicate on the "employee_name" field.
func EmployeeNameLTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldEmployeeName, v))
}

// EmployeeNameContains applies the Contains predicate on the "employee_name" field.
func EmployeeNameContains(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContains(FieldEmployeeName, v))
}

// EmployeeNameHasPrefix applies the HasPrefix predicate on the "employee_name" field.
func EmployeeNameHasPrefix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasPrefix(FieldEmployeeName, v))
}

// EmployeeNameHasSuffix applies the HasSuffix predicate on the "employee_name" field.
func EmployeeNameHasSuffix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasSuffix(FieldEmployeeName, v))
}

// EmployeeNameEqualFold applies the EqualFold predicate on the "employee_name" field.
func EmployeeNameEqualFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEqualFold(FieldEmployeeName, v))
}

// EmployeeNameContainsFold applies the ContainsFold predicate on the "employee_name" field.
func EmployeeNameContainsFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContainsFold(FieldEmployeeName, v))
}

// AssignedToEmailEQ applies the EQ predicate on the "assigned_to_email" field.
func AssignedToEmailEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldAssignedToEmail, v))
}

// AssignedToEmailNEQ applies the NEQ predicate on the "assigned_to_email" field.
func AssignedToEmailNEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldAssignedToEmail, v))
}

// AssignedToEmailIn applies the In predicate on the "assigned_to_email" field.
func AssignedToEmailIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldAssignedToEmail, vs...))
}

// AssignedToEmailNotIn applies the NotIn predicate on the "assigned_to_email" field.
func AssignedToEmailNotIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldAssignedToEmail, vs...))
}

// AssignedToEmailGT applies the GT predicate on the "assigned_to_email" field.
func AssignedToEmailGT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldAssignedToEmail, v))
}

// AssignedToEmailGTE applies the GTE predicate on the "assigned_to_email" field.
func AssignedToEmailGTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldAssignedToEmail, v))
}

// AssignedToEmailLT applies the LT predicate on the "assigned_to_email" field.
func AssignedToEmailLT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldAssignedToEmail, v))
}

// AssignedToEmailLTE applies the LTE predicate on the "assigned_to_email" field.
func AssignedToEmailLTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldAssignedToEmail, v))
}

// AssignedToEmailContains applies the Contains predicate on the "assigned_to_email" field.
func AssignedToEmailContains(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContains(FieldAssignedToEmail, v))
}

// AssignedToEmailHasPrefix applies the HasPrefix predicate on the "assigned_to_email" field.
func AssignedToEmailHasPrefix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasPrefix(FieldAssignedToEmail, v))
}

// AssignedToEmailHasSuffix applies the HasSuffix predicate on the "assigned_to_email" field.
func AssignedToEmailHasSuffix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasSuffix(FieldAssignedToEmail, v))
}

// AssignedToEmailEqualFold applies the EqualFold predicate on the "assigned_to_email" field.
func AssignedToEmailEqualFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEqualFold(FieldAssignedToEmail, v))
}

// AssignedToEmailContainsFold applies the ContainsFold predicate on the "assigned_to_email" field.
func AssignedToEmailContainsFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContainsFold(FieldAssignedToEmail, v))
}

// ApproverEmailEQ applies the EQ predicate on the "approver_email" field.
func ApproverEmailEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldApproverEmail, v))
}

// ApproverEmailNEQ applies the NEQ predicate on the "approver_email" field.
func ApproverEmailNEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldApproverEmail, v))
}

// ApproverEmailIn applies the In predicate on the "approver_email" field.
func ApproverEmailIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldApproverEmail, vs...))
}

// ApproverEmailNotIn applies the NotIn predicate on the "approver_email" field.
func ApproverEmailNotIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldApproverEmail, vs...))
}

// ApproverEmailGT applies the GT predicate on the "approver_email" field.
func ApproverEmailGT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldApproverEmail, v))
}

// ApproverEmailGTE applies the GTE predicate on the "approver_email" field.
func ApproverEmailGTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldApproverEmail, v))
}

// ApproverEmailLT applies the LT predicate on the "approver_email" field.
func ApproverEmailLT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldApproverEmail, v))
}

// ApproverEmailLTE applies the LTE predicate on the "approver_email" field.
func ApproverEmailLTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldApproverEmail, v))
}

// ApproverEmailContains applies the Contains predicate on the "approver_email" field.
func ApproverEmailContains(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContains(FieldApproverEmail, v))
}

// ApproverEmailHasPrefix applies the HasPrefix predicate on the "approver_email" field.
func ApproverEmailHasPrefix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasPrefix(FieldApproverEmail, v))
}

// ApproverEmailHasSuffix applies the HasSuffix predicate on the "approver_email" field.
func ApproverEmailHasSuffix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasSuffix(FieldApproverEmail, v))
}

// ApproverEmailEqualFold applies the EqualFold predicate on the "approver_email" field.
func ApproverEmailEqualFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEqualFold(FieldApproverEmail, v))
}

// ApproverEmailContainsFold applies the ContainsFold predicate on the "approver_email" field.
func ApproverEmailContainsFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContainsFold(FieldApproverEmail, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContainsFold(FieldDescription, v))
}

// TargetDateEQ applies the EQ predicate on the "target_date" field.
func TargetDateEQ(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldTargetDate, v))
}

// TargetDateNEQ applies the NEQ predicate on the "target_date" field.
func TargetDateNEQ(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldTargetDate, v))
}

// TargetDateIn applies the In predicate on the "target_date" field.
func TargetDateIn(vs ...time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldTargetDate, vs...))
}

// TargetDateNotIn applies the NotIn predicate on the "target_date" field.
func TargetDateNotIn(vs ...time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldTargetDate, vs...))
}

// TargetDateGT applies the GT predicate on the "target_date" field.
func TargetDateGT(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldTargetDate, v))
}

// TargetDateGTE applies the GTE predicate on the "target_date" field.
func TargetDateGTE(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldTargetDate, v))
}

// TargetDateLT applies the LT predicate on the "target_date" field.
func TargetDateLT(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldTargetDate, v))
}

// TargetDateLTE applies the LTE predicate on the "target_date" field.
func TargetDateLTE(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldTargetDate, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldPriority, v))
}

// PriorityContains applies the Contains predicate on the "priority" field.
func PriorityContains(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContains(FieldPriority, v))
}

// PriorityHasPrefix applies the HasPrefix predicate on the "priority" field.
func PriorityHasPrefix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasPrefix(FieldPriority, v))
}

// PriorityHasSuffix applies the HasSuffix predicate on the "priority" field.
func PriorityHasSuffix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasSuffix(FieldPriority, v))
}

// PriorityEqualFold applies the EqualFold predicate on the "priority" field.
func PriorityEqualFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEqualFold(FieldPriority, v))
}

// PriorityContainsFold applies the ContainsFold predicate on the "priority" field.
func PriorityContainsFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContainsFold(FieldPriority, v))
}

// ApprovalNeededEQ applies the EQ predicate on the "approval_needed" field.
func ApprovalNeededEQ(v bool) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldApprovalNeeded, v))
}

// ApprovalNeededNEQ applies the NEQ predicate on the "approval_needed" field.
func ApprovalNeededNEQ(v bool) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldApprovalNeeded, v))
}

// AssignedByEQ applies the EQ predicate on the "assigned_by" field.
func AssignedByEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldAssignedBy, v))
}

// AssignedByNEQ applies the NEQ predicate on the "assigned_by" field.
func AssignedByNEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldAssignedBy, v))
}

// AssignedByIn applies the In predicate on the "assigned_by" field.
func AssignedByIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldAssignedBy, vs...))
}

// AssignedByNotIn applies the NotIn predicate on the "assigned_by" field.
func AssignedByNotIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldAssignedBy, vs...))
}

// AssignedByGT applies the GT predicate on the "assigned_by" field.
func AssignedByGT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldAssignedBy, v))
}

// AssignedByGTE applies the GTE predicate on the "assigned_by" field.
func AssignedByGTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldAssignedBy, v))
}

// AssignedByLT applies the LT predicate on the "assigned_by" field.
func AssignedByLT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldAssignedBy, v))
}

// AssignedByLTE applies the LTE predicate on the "assigned_by" field.
func AssignedByLTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldAssignedBy, v))
}

// AssignedByContains applies the Contains predicate on the "assigned_by" field.
func AssignedByContains(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContains(FieldAssignedBy, v))
}

// AssignedByHasPrefix applies the HasPrefix predicate on the "assigned_by" field.
func AssignedByHasPrefix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasPrefix(FieldAssignedBy, v))
}

// AssignedByHasSuffix applies the HasSuffix predicate on the "assigned_by" field.
func AssignedByHasSuffix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasSuffix(FieldAssignedBy, v))
}

// AssignedByEqualFold applies the EqualFold predicate on the "assigned_by" field.
func AssignedByEqualFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEqualFold(FieldAssignedBy, v))
}

// AssignedByContainsFold applies the ContainsFold predicate on the "assigned_by" field.
func AssignedByContainsFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContainsFold(FieldAssignedBy, v))
}

// RemarksEQ applies the EQ predicate on the "remarks" field.
func RemarksEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldRemarks, v))
}

// RemarksNEQ applies the NEQ predicate on the "remarks" field.
func RemarksNEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldRemarks, v))
}

// RemarksIn applies the In predicate on the "remarks" field.
func RemarksIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldRemarks, vs...))
}

// RemarksNotIn applies the NotIn predicate on the "remarks" field.
func RemarksNotIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldRemarks, vs...))
}

// RemarksGT applies the GT predicate on the "remarks" field.
func RemarksGT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldRemarks, v))
}

// RemarksGTE applies the GTE predicate on the "remarks" field.
func RemarksGTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldRemarks, v))
}

// RemarksLT applies the LT predicate on the "remarks" field.
func RemarksLT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldRemarks, v))
}

// RemarksLTE applies the LTE predicate on the "remarks" field.
func RemarksLTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldRemarks, v))
}

// RemarksContains applies the Contains predicate on the "remarks" field.
func RemarksContains(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContains(FieldRemarks, v))
}

// RemarksHasPrefix applies the HasPrefix predicate on the "remarks" field.
func RemarksHasPrefix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasPrefix(FieldRemarks, v))
}

// RemarksHasSuffix applies the HasSuffix predicate on the "remarks" field.
func RemarksHasSuffix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasSuffix(FieldRemarks, v))
}

// RemarksEqualFold applies the EqualFold predicate on the "remarks" field.
func RemarksEqualFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEqualFold(FieldRemarks, v))
}

// RemarksContainsFold applies the ContainsFold predicate on the "remarks" field.
func RemarksContainsFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContainsFold(FieldRemarks, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContainsFold(FieldStatus, v))
}

// PreviousStatusEQ applies the EQ predicate on the "previous_status" field.
func PreviousStatusEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldPreviousStatus, v))
}

// PreviousStatusNEQ applies the NEQ predicate on the "previous_status" field.
func PreviousStatusNEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldPreviousStatus, v))
}

// PreviousStatusIn applies the In predicate on the "previous_status" field.
func PreviousStatusIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldPreviousStatus, vs...))
}

// PreviousStatusNotIn applies the NotIn predicate on the "previous_status" field.
func PreviousStatusNotIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldPreviousStatus, vs...))
}

// PreviousStatusGT applies the GT predicate on the "previous_status" field.
func PreviousStatusGT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldPreviousStatus, v))
}

// PreviousStatusGTE applies the GTE predicate on the "previous_status" field.
func PreviousStatusGTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldPreviousStatus, v))
}

// PreviousStatusLT applies the LT predicate on the "previous_status" field.
func PreviousStatusLT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldPreviousStatus, v))
}

// PreviousStatusLTE applies the LTE predicate on the "previous_status" field.
func PreviousStatusLTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldPreviousStatus, v))
}

// PreviousStatusContains applies the Contains predicate on the "previous_status" field.
func PreviousStatusContains(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContains(FieldPreviousStatus, v))
}

// PreviousStatusHasPrefix applies the HasPrefix predicate on the "previous_status" field.
func PreviousStatusHasPrefix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasPrefix(FieldPreviousStatus, v))
}

// PreviousStatusHasSuffix applies the HasSuffix predicate on the "previous_status" field.
func PreviousStatusHasSuffix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasSuffix(FieldPreviousStatus, v))
}

// PreviousStatusEqualFold applies the EqualFold predicate on the "previous_status" field.
func PreviousStatusEqualFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEqualFold(FieldPreviousStatus, v))
}

// PreviousStatusContainsFold applies the ContainsFold predicate on the "previous_status" field.
func PreviousStatusContainsFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContainsFold(FieldPreviousStatus, v))
}

// RevisedDateRequestEQ applies the EQ predicate on the "revised_date_request" field.
func RevisedDateRequestEQ(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldRevisedDateRequest, v))
}

// RevisedDateRequestNEQ applies the NEQ predicate on the "revised_date_request" field.
func RevisedDateRequestNEQ(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldRevisedDateRequest, v))
}

// RevisedDateRequestIn applies the In predicate on the "revised_date_request" field.
func RevisedDateRequestIn(vs ...time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldRevisedDateRequest, vs...))
}

// RevisedDateRequestNotIn applies the NotIn predicate on the "revised_date_request" field.
func RevisedDateRequestNotIn(vs ...time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldRevisedDateRequest, vs...))
}

// RevisedDateRequestGT applies the GT predicate on the "revised_date_request" field.
func RevisedDateRequestGT(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldRevisedDateRequest, v))
}

// RevisedDateRequestGTE applies the GTE predicate on the "revised_date_request" field.
func RevisedDateRequestGTE(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldRevisedDateRequest, v))
}

// RevisedDateRequestLT applies the LT predicate on the "revised_date_request" field.
func RevisedDateRequestLT(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldRevisedDateRequest, v))
}

// RevisedDateRequestLTE applies the LTE predicate on the "revised_date_request" field.
func RevisedDateRequestLTE(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldRevisedDateRequest, v))
}

// RevisedDateRequestIsNil applies the IsNil predicate on the "revised_date_request" field.
func RevisedDateRequestIsNil() predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIsNull(FieldRevisedDateRequest))
}

// RevisedDateRequestNotNil applies the NotNil predicate on the "revised_date_request" field.
func RevisedDateRequestNotNil() predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotNull(FieldRevisedDateRequest))
}

// RevisionRemarksEQ applies the EQ predicate on the "revision_remarks" field.
func RevisionRemarksEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldRevisionRemarks, v))
}

// RevisionRemarksNEQ applies the NEQ predicate on the "revision_remarks" field.
func RevisionRemarksNEQ(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldRevisionRemarks, v))
}

// RevisionRemarksIn applies the In predicate on the "revision_remarks" field.
func RevisionRemarksIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldRevisionRemarks, vs...))
}

// RevisionRemarksNotIn applies the NotIn predicate on the "revision_remarks" field.
func RevisionRemarksNotIn(vs ...string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldRevisionRemarks, vs...))
}

// RevisionRemarksGT applies the GT predicate on the "revision_remarks" field.
func RevisionRemarksGT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldRevisionRemarks, v))
}

// RevisionRemarksGTE applies the GTE predicate on the "revision_remarks" field.
func RevisionRemarksGTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldRevisionRemarks, v))
}

// RevisionRemarksLT applies the LT predicate on the "revision_remarks" field.
func RevisionRemarksLT(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldRevisionRemarks, v))
}

// RevisionRemarksLTE applies the LTE predicate on the "revision_remarks" field.
func RevisionRemarksLTE(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldRevisionRemarks, v))
}

// RevisionRemarksContains applies the Contains predicate on the "revision_remarks" field.
func RevisionRemarksContains(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContains(FieldRevisionRemarks, v))
}

// RevisionRemarksHasPrefix applies the HasPrefix predicate on the "revision_remarks" field.
func RevisionRemarksHasPrefix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasPrefix(FieldRevisionRemarks, v))
}

// RevisionRemarksHasSuffix applies the HasSuffix predicate on the "revision_remarks" field.
func RevisionRemarksHasSuffix(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldHasSuffix(FieldRevisionRemarks, v))
}

// RevisionRemarksEqualFold applies the EqualFold predicate on the "revision_remarks" field.
func RevisionRemarksEqualFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEqualFold(FieldRevisionRemarks, v))
}

// RevisionRemarksContainsFold applies the ContainsFold predicate on the "revision_remarks" field.
func RevisionRemarksContainsFold(v string) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldContainsFold(FieldRevisionRemarks, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DelegationTask {
	return predicate.DelegationTask(sql.FieldLTE(FieldCreatedAt, v))
}

// HasComments applies the HasEdge predicate on the "comments" edge.
func HasComments() predicate.DelegationTask {
	return predicate.DelegationTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommentsTable, CommentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommentsWith applies the HasEdge predicate on the "comments" edge with a given conditions (other predicates).
func HasCommentsWith(preds ...predicate.TaskComment) predicate.DelegationTask {
	return predicate.DelegationTask(func(s *sql.Selector) {
		step := newCommentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DelegationTask) predicate.DelegationTask {
	return predicate.DelegationTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DelegationTask) predicate.DelegationTask {
	return predicate.DelegationTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DelegationTask) predicate.DelegationTask {
	return predicate.DelegationTask(sql.NotPredicates(p))
}
