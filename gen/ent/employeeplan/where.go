// Code generated by ent, DO NOT EDIT.

package employeeplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldLTE(FieldID, id))
}

// EmployeeEmail applies equality check predicate on the "employee_email" field. It's identical to EmployeeEmailEQ.
func EmployeeEmail(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldEQ(FieldEmployeeEmail, v))
}

// PlanDate applies equality check predicate on the "plan_date" field. It's identical to PlanDateEQ.
func PlanDate(v time.Time) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldEQ(FieldPlanDate, v))
}

// PlannedCount applies equality check predicate on the "planned_count" field. It's identical to PlannedCountEQ.
func PlannedCount(v int) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldEQ(FieldPlannedCount, v))
}

// EmployeeEmailEQ applies the EQ predicate on the "employee_email" field.
func EmployeeEmailEQ(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldEQ(FieldEmployeeEmail, v))
}

// EmployeeEmailNEQ applies the NEQ predicate on the "employee_email" field.
func EmployeeEmailNEQ(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldNEQ(FieldEmployeeEmail, v))
}

// EmployeeEmailIn applies the In predicate on the "employee_email" field.
func EmployeeEmailIn(vs ...string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldIn(FieldEmployeeEmail, vs...))
}

// EmployeeEmailNotIn applies the NotIn predicate on the "employee_email" field.
func EmployeeEmailNotIn(vs ...string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldNotIn(FieldEmployeeEmail, vs...))
}

// EmployeeEmailGT applies the GT predicate on the "employee_email" field.
func EmployeeEmailGT(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldGT(FieldEmployeeEmail, v))
}

// EmployeeEmailGTE applies the GTE predicate on the "employee_email" field.
func EmployeeEmailGTE(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldGTE(FieldEmployeeEmail, v))
}

// EmployeeEmailLT applies the LT predicate on the "employee_email" field.
func EmployeeEmailLT(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldLT(FieldEmployeeEmail, v))
}

// EmployeeEmailLTE applies the LTE predicate on the "employee_email" field.
func EmployeeEmailLTE(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldLTE(FieldEmployeeEmail, v))
}

// EmployeeEmailContains applies the Contains predicate on the "employee_email" field.
func EmployeeEmailContains(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldContains(FieldEmployeeEmail, v))
}

// EmployeeEmailHasPrefix applies the HasPrefix predicate on the "employee_email" field.
func EmployeeEmailHasPrefix(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldHasPrefix(FieldEmployeeEmail, v))
}

// EmployeeEmailHasSuffix applies the HasSuffix predicate on the "employee_email" field.
func EmployeeEmailHasSuffix(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldHasSuffix(FieldEmployeeEmail, v))
}

// EmployeeEmailEqualFold applies the EqualFold predicate on the "employee_email" field.
func EmployeeEmailEqualFold(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldEqualFold(FieldEmployeeEmail, v))
}

// EmployeeEmailContainsFold applies the ContainsFold predicate on the "employee_email" field.
func EmployeeEmailContainsFold(v string) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldContainsFold(FieldEmployeeEmail, v))
}

// PlanDateEQ applies the EQ predicate on the "plan_date" field.
func PlanDateEQ(v time.Time) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldEQ(FieldPlanDate, v))
}

// PlanDateNEQ applies the NEQ predicate on the "plan_date" field.
func PlanDateNEQ(v time.Time) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldNEQ(FieldPlanDate, v))
}

// PlanDateIn applies the In predicate on the "plan_date" field.
func PlanDateIn(vs ...time.Time) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldIn(FieldPlanDate, vs...))
}

// PlanDateNotIn applies the NotIn predicate on the "plan_date" field.
func PlanDateNotIn(vs ...time.Time) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldNotIn(FieldPlanDate, vs...))
}

// PlanDateGT applies the GT predicate on the "plan_date" field.
func PlanDateGT(v time.Time) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldGT(FieldPlanDate, v))
}

// PlanDateGTE applies the GTE predicate on the "plan_date" field.
func PlanDateGTE(v time.Time) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldGTE(FieldPlanDate, v))
}

// PlanDateLT applies the LT predicate on the "plan_date" field.
func PlanDateLT(v time.Time) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldLT(FieldPlanDate, v))
}

// PlanDateLTE applies the LTE predicate on the "plan_date" field.
func PlanDateLTE(v time.Time) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldLTE(FieldPlanDate, v))
}

// PlannedCountEQ applies the EQ predicate on the "planned_count" field.
func PlannedCountEQ(v int) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldEQ(FieldPlannedCount, v))
}

// PlannedCountNEQ applies the NEQ predicate on the "planned_count" field.
func PlannedCountNEQ(v int) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldNEQ(FieldPlannedCount, v))
}

// PlannedCountIn applies the In predicate on the "planned_count" field.
func PlannedCountIn(vs ...int) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldIn(FieldPlannedCount, vs...))
}

// PlannedCountNotIn applies the NotIn predicate on the "planned_count" field.
func PlannedCountNotIn(vs ...int) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldNotIn(FieldPlannedCount, vs...))
}

// PlannedCountGT applies the GT predicate on the "planned_count" field.
func PlannedCountGT(v int) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldGT(FieldPlannedCount, v))
}

// PlannedCountGTE applies the GTE predicate on the "planned_count" field.
func PlannedCountGTE(v int) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldGTE(FieldPlannedCount, v))
}

// PlannedCountLT applies the LT predicate on the "planned_count" field.
func PlannedCountLT(v int) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldLT(FieldPlannedCount, v))
}

// PlannedCountLTE applies the LTE predicate on the "planned_count" field.
func PlannedCountLTE(v int) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.FieldLTE(FieldPlannedCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmployeePlan) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmployeePlan) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmployeePlan) predicate.EmployeePlan {
	return predicate.EmployeePlan(sql.NotPredicates(p))
}
