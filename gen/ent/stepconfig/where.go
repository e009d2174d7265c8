// Code generated by ent, DO NOT EDIT.

package stepconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLTE(FieldID, id))
}

// Step applies equality check predicate on the "step" field. It's identical to StepEQ.
func Step(v int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldStep, v))
}

// StepName applies equality check predicate on the "step_name" field. It's identical to StepNameEQ.
func StepName(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldStepName, v))
}

// DoerEmails applies equality check predicate on the "doer_emails" field. It's identical to DoerEmailsEQ.
func DoerEmails(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldDoerEmails, v))
}

// VisibleColumns applies equality check predicate on the "visible_columns" field. It's identical to VisibleColumnsEQ.
func VisibleColumns(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldVisibleColumns, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// StepEQ applies the EQ predicate on the "step" field.
func StepEQ(v int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldStep, v))
}

// StepNEQ applies the NEQ predicate on the "step" field.
func StepNEQ(v int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNEQ(FieldStep, v))
}

// StepIn applies the In predicate on the "step" field.
func StepIn(vs ...int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldIn(FieldStep, vs...))
}

// StepNotIn applies the NotIn predicate on the "step" field.
func StepNotIn(vs ...int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNotIn(FieldStep, vs...))
}

// StepGT applies the GT predicate on the "step" field.
func StepGT(v int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGT(FieldStep, v))
}

// StepGTE applies the GTE predicate on the "step" field.
func StepGTE(v int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGTE(FieldStep, v))
}

// StepLT applies the LT predicate on the "step" field.
func StepLT(v int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLT(FieldStep, v))
}

// StepLTE applies the LTE predicate on the "step" field.
func StepLTE(v int) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLTE(FieldStep, v))
}

// StepNameEQ applies the EQ predicate on the "step_name" field.
func StepNameEQ(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldStepName, v))
}

// StepNameNEQ applies the NEQ predicate on the "step_name" field.
func StepNameNEQ(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNEQ(FieldStepName, v))
}

// StepNameIn applies the In predicate on the "step_name" field.
func StepNameIn(vs ...string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldIn(FieldStepName, vs...))
}

// StepNameNotIn applies the NotIn predicate on the "step_name" field.
func StepNameNotIn(vs ...string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNotIn(FieldStepName, vs...))
}

// StepNameGT applies the GT predicate on the "step_name" field.
func StepNameGT(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGT(FieldStepName, v))
}

// StepNameGTE applies the GTE predicate on the "step_name" field.
func StepNameGTE(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGTE(FieldStepName, v))
}

// StepNameLT applies the LT predicate on the "step_name" field.
func StepNameLT(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLT(FieldStepName, v))
}

// StepNameLTE applies the LTE predicate on the "step_name" field.
func StepNameLTE(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLTE(FieldStepName, v))
}

// StepNameContains applies the Contains predicate on the "step_name" field.
func StepNameContains(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldContains(FieldStepName, v))
}

// StepNameHasPrefix applies the HasPrefix predicate on the "step_name" field.
func StepNameHasPrefix(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldHasPrefix(FieldStepName, v))
}

// StepNameHasSuffix applies the HasSuffix predicate on the "step_name" field.
func StepNameHasSuffix(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldHasSuffix(FieldStepName, v))
}

// StepNameEqualFold applies the EqualFold predicate on the "step_name" field.
func StepNameEqualFold(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEqualFold(FieldStepName, v))
}

// StepNameContainsFold applies the ContainsFold predicate on the "step_name" field.
func StepNameContainsFold(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldContainsFold(FieldStepName, v))
}

// DoerEmailsEQ applies the EQ predicate on the "doer_emails" field.
func DoerEmailsEQ(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldDoerEmails, v))
}

// DoerEmailsNEQ applies the NEQ predicate on the "doer_emails" field.
func DoerEmailsNEQ(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNEQ(FieldDoerEmails, v))
}

// DoerEmailsIn applies the In predicate on the "doer_emails" field.
func DoerEmailsIn(vs ...string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldIn(FieldDoerEmails, vs...))
}

// DoerEmailsNotIn applies the NotIn predicate on the "doer_emails" field.
func DoerEmailsNotIn(vs ...string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNotIn(FieldDoerEmails, vs...))
}

// DoerEmailsGT applies the GT predicate on the "doer_emails" field.
func DoerEmailsGT(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGT(FieldDoerEmails, v))
}

// DoerEmailsGTE applies the GTE predicate on the "doer_emails" field.
func DoerEmailsGTE(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGTE(FieldDoerEmails, v))
}

// DoerEmailsLT applies the LT predicate on the "doer_emails" field.
func DoerEmailsLT(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLT(FieldDoerEmails, v))
}

// DoerEmailsLTE applies the LTE predicate on the "doer_emails" field.
func DoerEmailsLTE(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLTE(FieldDoerEmails, v))
}

// DoerEmailsContains applies the Contains predicate on the "doer_emails" field.
func DoerEmailsContains(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldContains(FieldDoerEmails, v))
}

// DoerEmailsHasPrefix applies the HasPrefix predicate on the "doer_emails" field.
func DoerEmailsHasPrefix(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldHasPrefix(FieldDoerEmails, v))
}

// DoerEmailsHasSuffix applies the HasSuffix predicate on the "doer_emails" field.
func DoerEmailsHasSuffix(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldHasSuffix(FieldDoerEmails, v))
}

// DoerEmailsEqualFold applies the EqualFold predicate on the "doer_emails" field.
func DoerEmailsEqualFold(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEqualFold(FieldDoerEmails, v))
}

// DoerEmailsContainsFold applies the ContainsFold predicate on the "doer_emails" field.
func DoerEmailsContainsFold(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldContainsFold(FieldDoerEmails, v))
}

// VisibleColumnsEQ applies the EQ predicate on the "visible_columns" field.
func VisibleColumnsEQ(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldVisibleColumns, v))
}

// VisibleColumnsNEQ applies the NEQ predicate on the "visible_columns" field.
func VisibleColumnsNEQ(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNEQ(FieldVisibleColumns, v))
}

// VisibleColumnsIn applies the In predicate on the "visible_columns" field.
func VisibleColumnsIn(vs ...string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldIn(FieldVisibleColumns, vs...))
}

// VisibleColumnsNotIn applies the NotIn predicate on the "visible_columns" field.
func VisibleColumnsNotIn(vs ...string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNotIn(FieldVisibleColumns, vs...))
}

// VisibleColumnsGT applies the GT predicate on the "visible_columns" field.
func VisibleColumnsGT(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGT(FieldVisibleColumns, v))
}

// VisibleColumnsGTE applies the GTE predicate on the "visible_columns" field.
func VisibleColumnsGTE(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGTE(FieldVisibleColumns, v))
}

// VisibleColumnsLT applies the LT predicate on the "visible_columns" field.
func VisibleColumnsLT(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLT(FieldVisibleColumns, v))
}

// VisibleColumnsLTE applies the LTE predicate on the "visible_columns" field.
func VisibleColumnsLTE(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLTE(FieldVisibleColumns, v))
}

// VisibleColumnsContains applies the Contains predicate on the "visible_columns" field.
func VisibleColumnsContains(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldContains(FieldVisibleColumns, v))
}

// VisibleColumnsHasPrefix applies the HasPrefix predicate on the "visible_columns" field.
func VisibleColumnsHasPrefix(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldHasPrefix(FieldVisibleColumns, v))
}

// VisibleColumnsHasSuffix applies the HasSuffix predicate on the "visible_columns" field.
func VisibleColumnsHasSuffix(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldHasSuffix(FieldVisibleColumns, v))
}

// VisibleColumnsEqualFold applies the EqualFold predicate on the "visible_columns" field.
func VisibleColumnsEqualFold(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEqualFold(FieldVisibleColumns, v))
}

// VisibleColumnsContainsFold applies the ContainsFold predicate on the "visible_columns" field.
func VisibleColumnsContainsFold(v string) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldContainsFold(FieldVisibleColumns, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StepConfig {
	return predicate.StepConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepConfig) predicate.StepConfig {
	return predicate.StepConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepConfig) predicate.StepConfig {
	return predicate.StepConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepConfig) predicate.StepConfig {
	return predicate.StepConfig(sql.NotPredicates(p))
}
