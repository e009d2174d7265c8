// Code generated by ent, DO NOT EDIT.

package steptask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldJobID, v))
}

// Step applies equality check predicate on the "step" field. It's identical to StepEQ.
func Step(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldStep, v))
}

// PlanDate applies equality check predicate on the "plan_date" field. It's identical to PlanDateEQ.
func PlanDate(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldPlanDate, v))
}

// ActualDate applies equality check predicate on the "actual_date" field. It's identical to ActualDateEQ.
func ActualDate(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldActualDate, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldStatus, v))
}

// DelayReason applies equality check predicate on the "delay_reason" field. It's identical to DelayReasonEQ.
func DelayReason(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldDelayReason, v))
}

// WorkerName applies equality check predicate on the "worker_name" field. It's identical to WorkerNameEQ.
func WorkerName(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldWorkerName, v))
}

// CompletedQty applies equality check predicate on the "completed_qty" field. It's identical to CompletedQtyEQ.
func CompletedQty(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldCompletedQty, v))
}

// DelayHours applies equality check predicate on the "delay_hours" field. It's identical to DelayHoursEQ.
func DelayHours(v float64) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldDelayHours, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldJobID, vs...))
}

// StepEQ applies the EQ predicate on the "step" field.
func StepEQ(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldStep, v))
}

// StepNEQ applies the NEQ predicate on the "step" field.
func StepNEQ(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldStep, v))
}

// StepIn applies the In predicate on the "step" field.
func StepIn(vs ...int) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldStep, vs...))
}

// StepNotIn applies the NotIn predicate on the "step" field.
func StepNotIn(vs ...int) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldStep, vs...))
}

// StepGT applies the GT predicate on the "step" field.
func StepGT(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldGT(FieldStep, v))
}

// StepGTE applies the GTE predicate on the "step" field.
func StepGTE(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldGTE(FieldStep, v))
}

// StepLT applies the LT predicate on the "step" field.
func StepLT(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldLT(FieldStep, v))
}

// StepLTE applies the LTE predicate on the "step" field.
func StepLTE(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldLTE(FieldStep, v))
}

// PlanDateEQ applies the EQ predicate on the "plan_date" field.
func PlanDateEQ(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldPlanDate, v))
}

// PlanDateNEQ applies the NEQ predicate on the "plan_date" field.
func PlanDateNEQ(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldPlanDate, v))
}

// PlanDateIn applies the In predicate on the "plan_date" field.
func PlanDateIn(vs ...time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldPlanDate, vs...))
}

// PlanDateNotIn applies the NotIn predicate on the "plan_date" field.
func PlanDateNotIn(vs ...time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldPlanDate, vs...))
}

// PlanDateGT applies the GT predicate on the "plan_date" field.
func PlanDateGT(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldGT(FieldPlanDate, v))
}

// PlanDateGTE applies the GTE predicate on the "plan_date" field.
func PlanDateGTE(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldGTE(FieldPlanDate, v))
}

// PlanDateLT applies the LT predicate on the "plan_date" field.
func PlanDateLT(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldLT(FieldPlanDate, v))
}

// PlanDateLTE applies the LTE predicate on the "plan_date" field.
func PlanDateLTE(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldLTE(FieldPlanDate, v))
}

// PlanDateIsNil applies the IsNil predicate on the "plan_date" field.
func PlanDateIsNil() predicate.StepTask {
	return predicate.StepTask(sql.FieldIsNull(FieldPlanDate))
}

// PlanDateNotNil applies the NotNil predicate on the "plan_date" field.
func PlanDateNotNil() predicate.StepTask {
	return predicate.StepTask(sql.FieldNotNull(FieldPlanDate))
}

// ActualDateEQ applies the EQ predicate on the "actual_date" field.
func ActualDateEQ(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldActualDate, v))
}

// ActualDateNEQ applies the NEQ predicate on the "actual_date" field.
func ActualDateNEQ(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldActualDate, v))
}

// ActualDateIn applies the In predicate on the "actual_date" field.
func ActualDateIn(vs ...time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldActualDate, vs...))
}

// ActualDateNotIn applies the NotIn predicate on the "actual_date" field.
func ActualDateNotIn(vs ...time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldActualDate, vs...))
}

// ActualDateGT applies the GT predicate on the "actual_date" field.
func ActualDateGT(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldGT(FieldActualDate, v))
}

// ActualDateGTE applies the GTE predicate on the "actual_date" field.
func ActualDateGTE(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldGTE(FieldActualDate, v))
}

// ActualDateLT applies the LT predicate on the "actual_date" field.
func ActualDateLT(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldLT(FieldActualDate, v))
}

// ActualDateLTE applies the LTE predicate on the "actual_date" field.
func ActualDateLTE(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldLTE(FieldActualDate, v))
}

// ActualDateIsNil applies the IsNil predicate on the "actual_date" field.
func ActualDateIsNil() predicate.StepTask {
	return predicate.StepTask(sql.FieldIsNull(FieldActualDate))
}

// ActualDateNotNil applies the NotNil predicate on the "actual_date" field.
func ActualDateNotNil() predicate.StepTask {
	return predicate.StepTask(sql.FieldNotNull(FieldActualDate))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldContainsFold(FieldStatus, v))
}

// DelayReasonEQ applies the EQ predicate on the "delay_reason" field.
func DelayReasonEQ(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldDelayReason, v))
}

// DelayReasonNEQ applies the NEQ predicate on the "delay_reason" field.
func DelayReasonNEQ(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldDelayReason, v))
}

// DelayReasonIn applies the In predicate on the "delay_reason" field.
func DelayReasonIn(vs ...string) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldDelayReason, vs...))
}

// DelayReasonNotIn applies the NotIn predicate on the "delay_reason" field.
func DelayReasonNotIn(vs ...string) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldDelayReason, vs...))
}

// DelayReasonGT applies the GT predicate on the "delay_reason" field.
func DelayReasonGT(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldGT(FieldDelayReason, v))
}

// DelayReasonGTE applies the GTE predicate on the "delay_reason" field.
func DelayReasonGTE(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldGTE(FieldDelayReason, v))
}

// DelayReasonLT applies the LT predicate on the "delay_reason" field.
func DelayReasonLT(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldLT(FieldDelayReason, v))
}

// DelayReasonLTE applies the LTE predicate on the "delay_reason" field.
func DelayReasonLTE(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldLTE(FieldDelayReason, v))
}

// DelayReasonContains applies the Contains predicate on the "delay_reason" field.
func DelayReasonContains(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldContains(FieldDelayReason, v))
}

// DelayReasonHasPrefix applies the HasPrefix predicate on the "delay_reason" field.
func DelayReasonHasPrefix(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldHasPrefix(FieldDelayReason, v))
}

// DelayReasonHasSuffix applies the HasSuffix predicate on the "delay_reason" field.
func DelayReasonHasSuffix(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldHasSuffix(FieldDelayReason, v))
}

// DelayReasonEqualFold applies the EqualFold predicate on the "delay_reason" field.
func DelayReasonEqualFold(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldEqualFold(FieldDelayReason, v))
}

// DelayReasonContainsFold applies the ContainsFold predicate on the "delay_reason" field.
func DelayReasonContainsFold(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldContainsFold(FieldDelayReason, v))
}

// WorkerNameEQ applies the EQ predicate on the "worker_name" field.
func WorkerNameEQ(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldWorkerName, v))
}

// WorkerNameNEQ applies the NEQ predicate on the "worker_name" field.
func WorkerNameNEQ(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldWorkerName, v))
}

// WorkerNameIn applies the In predicate on the "worker_name" field.
func WorkerNameIn(vs ...string) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldWorkerName, vs...))
}

// WorkerNameNotIn applies the NotIn predicate on the "worker_name" field.
func WorkerNameNotIn(vs ...string) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldWorkerName, vs...))
}

// WorkerNameGT applies the GT predicate on the "worker_name" field.
func WorkerNameGT(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldGT(FieldWorkerName, v))
}

// WorkerNameGTE applies the GTE predicate on the "worker_name" field.
func WorkerNameGTE(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldGTE(FieldWorkerName, v))
}

// WorkerNameLT applies the LT predicate on the "worker_name" field.
func WorkerNameLT(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldLT(FieldWorkerName, v))
}

// WorkerNameLTE applies the LTE predicate on the "worker_name" field.
func WorkerNameLTE(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldLTE(FieldWorkerName, v))
}

// WorkerNameContains applies the Contains predicate on the "worker_name" field.
func WorkerNameContains(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldContains(FieldWorkerName, v))
}

// WorkerNameHasPrefix applies the HasPrefix predicate on the "worker_name" field.
func WorkerNameHasPrefix(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldHasPrefix(FieldWorkerName, v))
}

// WorkerNameHasSuffix applies the HasSuffix predicate on the "worker_name" field.
func WorkerNameHasSuffix(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldHasSuffix(FieldWorkerName, v))
}

// WorkerNameEqualFold applies the EqualFold predicate on the "worker_name" field.
func WorkerNameEqualFold(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldEqualFold(FieldWorkerName, v))
}

// WorkerNameContainsFold applies the ContainsFold predicate on the "worker_name" field.
func WorkerNameContainsFold(v string) predicate.StepTask {
	return predicate.StepTask(sql.FieldContainsFold(FieldWorkerName, v))
}

// CompletedQtyEQ applies the EQ predicate on the "completed_qty" field.
func CompletedQtyEQ(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldCompletedQty, v))
}

// CompletedQtyNEQ applies the NEQ predicate on the "completed_qty" field.
func CompletedQtyNEQ(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldCompletedQty, v))
}

// CompletedQtyIn applies the In predicate on the "completed_qty" field.
func CompletedQtyIn(vs ...int) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldCompletedQty, vs...))
}

// CompletedQtyNotIn applies the NotIn predicate on the "completed_qty" field.
func CompletedQtyNotIn(vs ...int) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldCompletedQty, vs...))
}

// CompletedQtyGT applies the GT predicate on the "completed_qty" field.
func CompletedQtyGT(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldGT(FieldCompletedQty, v))
}

// CompletedQtyGTE applies the GTE predicate on the "completed_qty" field.
func CompletedQtyGTE(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldGTE(FieldCompletedQty, v))
}

// CompletedQtyLT applies the LT predicate on the "completed_qty" field.
func CompletedQtyLT(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldLT(FieldCompletedQty, v))
}

// CompletedQtyLTE applies the LTE predicate on the "completed_qty" field.
func CompletedQtyLTE(v int) predicate.StepTask {
	return predicate.StepTask(sql.FieldLTE(FieldCompletedQty, v))
}

// DelayHoursEQ applies the EQ predicate on the "delay_hours" field.
func DelayHoursEQ(v float64) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldDelayHours, v))
}

// DelayHoursNEQ applies the NEQ predicate on the "delay_hours" field.
func DelayHoursNEQ(v float64) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldDelayHours, v))
}

// DelayHoursIn applies the In predicate on the "delay_hours" field.
func DelayHoursIn(vs ...float64) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldDelayHours, vs...))
}

// DelayHoursNotIn applies the NotIn predicate on the "delay_hours" field.
func DelayHoursNotIn(vs ...float64) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldDelayHours, vs...))
}

// DelayHoursGT applies the GT predicate on the "delay_hours" field.
func DelayHoursGT(v float64) predicate.StepTask {
	return predicate.StepTask(sql.FieldGT(FieldDelayHours, v))
}

// DelayHoursGTE applies the GTE predicate on the "delay_hours" field.
func DelayHoursGTE(v float64) predicate.StepTask {
	return predicate.StepTask(sql.FieldGTE(FieldDelayHours, v))
}

// DelayHoursLT applies the LT predicate on the "delay_hours" field.
func DelayHoursLT(v float64) predicate.StepTask {
	return predicate.StepTask(sql.FieldLT(FieldDelayHours, v))
}

// DelayHoursLTE applies the LTE predicate on the "delay_hours" field.
func DelayHoursLTE(v float64) predicate.StepTask {
	return predicate.StepTask(sql.FieldLTE(FieldDelayHours, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StepTask {
	return predicate.StepTask(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.StepTask {
	return predicate.StepTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.JobRecord) predicate.StepTask {
	return predicate.StepTask(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepTask) predicate.StepTask {
	return predicate.StepTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepTask) predicate.StepTask {
	return predicate.StepTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepTask) predicate.StepTask {
	return predicate.StepTask(sql.NotPredicates(p))
}
