// Code generated by ent, DO NOT EDIT.

package checklisttask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLTE(FieldID, id))
}

// UID applies equality check predicate on the "uid" field. It's identical to UIDEQ.
func UID(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldUID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldDescription, v))
}

// EmployeeEmail applies equality check predicate on the "employee_email" field. It's identical to EmployeeEmailEQ.
func EmployeeEmail(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldEmployeeEmail, v))
}

// EmployeeName applies equality check predicate on the "employee_name" field. It's identical to EmployeeNameEQ.
func EmployeeName(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldEmployeeName, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldFrequency, v))
}

// TargetDate applies equality check predicate on the "target_date" field. It's identical to TargetDateEQ.
func TargetDate(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldTargetDate, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldStatus, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldCompletedAt, v))
}

// UIDEQ applies the EQ predicate on the "uid" field.
func UIDEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldUID, v))
}

// UIDNEQ applies the NEQ predicate on the "uid" field.
func UIDNEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNEQ(FieldUID, v))
}

// UIDIn applies the In predicate on the "uid" field.
func UIDIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldIn(FieldUID, vs...))
}

// UIDNotIn applies the NotIn predicate on the "uid" field.
func UIDNotIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNotIn(FieldUID, vs...))
}

// UIDGT applies the GT predicate on the "uid" field.
func UIDGT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGT(FieldUID, v))
}

// UIDGTE applies the GTE predicate on the "uid" field.
func UIDGTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGTE(FieldUID, v))
}

// UIDLT applies the LT predicate on the "uid" field.
func UIDLT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLT(FieldUID, v))
}

// UIDLTE applies the LTE predicate on the "uid" field.
func UIDLTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLTE(FieldUID, v))
}

// UIDContains applies the Contains predicate on the "uid" field.
func UIDContains(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContains(FieldUID, v))
}

// UIDHasPrefix applies the HasPrefix predicate on the "uid" field.
func UIDHasPrefix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasPrefix(FieldUID, v))
}

// UIDHasSuffix applies the HasSuffix predicate on the "uid" field.
func UIDHasSuffix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasSuffix(FieldUID, v))
}

// UIDEqualFold applies the EqualFold predicate on the "uid" field.
func UIDEqualFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEqualFold(FieldUID, v))
}

// UIDContainsFold applies the ContainsFold predicate on the "uid" field.
func UIDContainsFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContainsFold(FieldUID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContainsFold(FieldDescription, v))
}

// EmployeeEmailEQ applies the EQ predicate on the "employee_email" field.
func EmployeeEmailEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldEmployeeEmail, v))
}

// EmployeeEmailNEQ applies the NEQ predicate on the "employee_email" field.
func EmployeeEmailNEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNEQ(FieldEmployeeEmail, v))
}

// EmployeeEmailIn applies the In predicate on the "employee_email" field.
func EmployeeEmailIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldIn(FieldEmployeeEmail, vs...))
}

// EmployeeEmailNotIn applies the NotIn predicate on the "employee_email" field.
func EmployeeEmailNotIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNotIn(FieldEmployeeEmail, vs...))
}

// EmployeeEmailGT applies the GT predicate on the "employee_email" field.
func EmployeeEmailGT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGT(FieldEmployeeEmail, v))
}

// EmployeeEmailGTE applies the GTE predicate on the "employee_email" field.
func EmployeeEmailGTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGTE(FieldEmployeeEmail, v))
}

// EmployeeEmailLT applies the LT predicate on the "employee_email" field.
func EmployeeEmailLT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLT(FieldEmployeeEmail, v))
}

// EmployeeEmailLTE applies the LTE predicate on the "employee_email" field.
func EmployeeEmailLTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLTE(FieldEmployeeEmail, v))
}

// EmployeeEmailContains applies the Contains predicate on the "employee_email" field.
func EmployeeEmailContains(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContains(FieldEmployeeEmail, v))
}

// EmployeeEmailHasPrefix applies the HasPrefix predicate on the "employee_email" field.
func EmployeeEmailHasPrefix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasPrefix(FieldEmployeeEmail, v))
}

// EmployeeEmailHasSuffix applies the HasSuffix predicate on the "employee_email" field.
func EmployeeEmailHasSuffix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasSuffix(FieldEmployeeEmail, v))
}

// EmployeeEmailEqualFold applies the EqualFold predicate on the "employee_email" field.
func EmployeeEmailEqualFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEqualFold(FieldEmployeeEmail, v))
}

// EmployeeEmailContainsFold applies the ContainsFold predicate on the "employee_email" field.
func EmployeeEmailContainsFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContainsFold(FieldEmployeeEmail, v))
}

// EmployeeNameEQ applies the EQ predicate on the "employee_name" field.
func EmployeeNameEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldEmployeeName, v))
}

// EmployeeNameNEQ applies the NEQ predicate on the "employee_name" field.
func EmployeeNameNEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNEQ(FieldEmployeeName, v))
}

// EmployeeNameIn applies the In predicate on the "employee_name" field.
func EmployeeNameIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldIn(FieldEmployeeName, vs...))
}

// EmployeeNameNotIn applies the NotIn predicate on the "employee_name" field.
func EmployeeNameNotIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNotIn(FieldEmployeeName, vs...))
}

// EmployeeNameGT applies the GT predicate on the "employee_name" field.
func EmployeeNameGT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGT(FieldEmployeeName, v))
}

// EmployeeNameGTE applies the GTE predicate on the "employee_name" field.
func EmployeeNameGTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGTE(FieldEmployeeName, v))
}

// EmployeeNameLT applies the LT predicate on the "employee_name" field.
func EmployeeNameLT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLT(FieldEmployeeName, v))
}

// EmployeeNameLTE applies the LTE predicate on the "employee_name" field.
func EmployeeNameLTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLTE(FieldEmployeeName, v))
}

// EmployeeNameContains applies the Contains predicate on the "employee_name" field.
func EmployeeNameContains(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContains(FieldEmployeeName, v))
}

// EmployeeNameHasPrefix applies the HasPrefix predicate on the "employee_name" field.
func EmployeeNameHasPrefix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasPrefix(FieldEmployeeName, v))
}

// EmployeeNameHasSuffix applies the HasSuffix predicate on the "employee_name" field.
func EmployeeNameHasSuffix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasSuffix(FieldEmployeeName, v))
}

// EmployeeNameEqualFold applies the EqualFold predicate on the "employee_name" field.
func EmployeeNameEqualFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEqualFold(FieldEmployeeName, v))
}

// EmployeeNameContainsFold applies the ContainsFold predicate on the "employee_name" field.
func EmployeeNameContainsFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContainsFold(FieldEmployeeName, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLTE(FieldFrequency, v))
}

// FrequencyContains applies the Contains predicate on the "frequency" field.
func FrequencyContains(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContains(FieldFrequency, v))
}

// FrequencyHasPrefix applies the HasPrefix predicate on the "frequency" field.
func FrequencyHasPrefix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasPrefix(FieldFrequency, v))
}

// FrequencyHasSuffix applies the HasSuffix predicate on the "frequency" field.
func FrequencyHasSuffix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasSuffix(FieldFrequency, v))
}

// FrequencyEqualFold applies the EqualFold predicate on the "frequency" field.
func FrequencyEqualFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEqualFold(FieldFrequency, v))
}

// FrequencyContainsFold applies the ContainsFold predicate on the "frequency" field.
func FrequencyContainsFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContainsFold(FieldFrequency, v))
}

// TargetDateEQ applies the EQ predicate on the "target_date" field.
func TargetDateEQ(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldTargetDate, v))
}

// TargetDateNEQ applies the NEQ predicate on the "target_date" field.
func TargetDateNEQ(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNEQ(FieldTargetDate, v))
}

// TargetDateIn applies the In predicate on the "target_date" field.
func TargetDateIn(vs ...time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldIn(FieldTargetDate, vs...))
}

// TargetDateNotIn applies the NotIn predicate on the "target_date" field.
func TargetDateNotIn(vs ...time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNotIn(FieldTargetDate, vs...))
}

// TargetDateGT applies the GT predicate on the "target_date" field.
func TargetDateGT(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGT(FieldTargetDate, v))
}

// TargetDateGTE applies the GTE predicate on the "target_date" field.
func TargetDateGTE(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGTE(FieldTargetDate, v))
}

// TargetDateLT applies the LT predicate on the "target_date" field.
func TargetDateLT(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLT(FieldTargetDate, v))
}

// TargetDateLTE applies the LTE predicate on the "target_date" field.
func TargetDateLTE(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLTE(FieldTargetDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldContainsFold(FieldStatus, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChecklistTask) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChecklistTask) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChecklistTask) predicate.ChecklistTask {
	return predicate.ChecklistTask(sql.NotPredicates(p))
}
