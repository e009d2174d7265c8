// Code generated by ent, DO NOT EDIT.

package holiday

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Holiday {
	return predicate.Holiday(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Holiday {
	return predicate.Holiday(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Holiday {
	return predicate.Holiday(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Holiday {
	return predicate.Holiday(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Holiday {
	return predicate.Holiday(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Holiday {
	return predicate.Holiday(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Holiday {
	return predicate.Holiday(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Holiday {
	return predicate.Holiday(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Holiday {
	return predicate.Holiday(sql.FieldLTE(FieldID, id))
}

// HolidayDate applies equality check predicate on the "holiday_date" field. It's identical to HolidayDateEQ.
func HolidayDate(v time.Time) predicate.Holiday {
	return predicate.Holiday(sql.FieldEQ(FieldHolidayDate, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldEQ(FieldName, v))
}

// HolidayDateEQ applies the EQ predicate on the "holiday_date" field.
func HolidayDateEQ(v time.Time) predicate.Holiday {
	return predicate.Holiday(sql.FieldEQ(FieldHolidayDate, v))
}

// HolidayDateNEQ applies the NEQ predicate on the "holiday_date" field.
func HolidayDateNEQ(v time.Time) predicate.Holiday {
	return predicate.Holiday(sql.FieldNEQ(FieldHolidayDate, v))
}

// HolidayDateIn applies the In predicate on the "holiday_date" field.
func HolidayDateIn(vs ...time.Time) predicate.Holiday {
	return predicate.Holiday(sql.FieldIn(FieldHolidayDate, vs...))
}

// HolidayDateNotIn applies the NotIn predicate on the "holiday_date" field.
func HolidayDateNotIn(vs ...time.Time) predicate.Holiday {
	return predicate.Holiday(sql.FieldNotIn(FieldHolidayDate, vs...))
}

// HolidayDateGT applies the GT predicate on the "holiday_date" field.
func HolidayDateGT(v time.Time) predicate.Holiday {
	return predicate.Holiday(sql.FieldGT(FieldHolidayDate, v))
}

// HolidayDateGTE applies the GTE predicate on the "holiday_date" field.
func HolidayDateGTE(v time.Time) predicate.Holiday {
	return predicate.Holiday(sql.FieldGTE(FieldHolidayDate, v))
}

// HolidayDateLT applies the LT predicate on the "holiday_date" field.
func HolidayDateLT(v time.Time) predicate.Holiday {
	return predicate.Holiday(sql.FieldLT(FieldHolidayDate, v))
}

// HolidayDateLTE applies the LTE predicate on the "holiday_date" field.
func HolidayDateLTE(v time.Time) predicate.Holiday {
	return predicate.Holiday(sql.FieldLTE(FieldHolidayDate, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Holiday {
	return predicate.Holiday(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Holiday {
	return predicate.Holiday(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Holiday {
	return predicate.Holiday(sql.FieldContainsFold(FieldName, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Holiday) predicate.Holiday {
	return predicate.Holiday(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Holiday) predicate.Holiday {
	return predicate.Holiday(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Holiday) predicate.Holiday {
	return predicate.Holiday(sql.NotPredicates(p))
}
