// Code generated by ent, DO NOT EDIT.

package jobrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldID, id))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldRowIndex, v))
}

// SourceDate applies equality check predicate on the "source_date" field. It's identical to SourceDateEQ.
func SourceDate(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldSourceDate, v))
}

// OtdType applies equality check predicate on the "otd_type" field. It's identical to OtdTypeEQ.
func OtdType(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldOtdType, v))
}

// JobNumber applies equality check predicate on the "job_number" field. It's identical to JobNumberEQ.
func JobNumber(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldJobNumber, v))
}

// OrderBy applies equality check predicate on the "order_by" field. It's identical to OrderByEQ.
func OrderBy(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldOrderBy, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCompanyName, v))
}

// BoxType applies equality check predicate on the "box_type" field. It's identical to BoxTypeEQ.
func BoxType(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldBoxType, v))
}

// BoxStyle applies equality check predicate on the "box_style" field. It's identical to BoxStyleEQ.
func BoxStyle(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldBoxStyle, v))
}

// BoxColor applies equality check predicate on the "box_color" field. It's identical to BoxColorEQ.
func BoxColor(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldBoxColor, v))
}

// PrintingType applies equality check predicate on the "printing_type" field. It's identical to PrintingTypeEQ.
func PrintingType(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldPrintingType, v))
}

// PrintingColor applies equality check predicate on the "printing_color" field. It's identical to PrintingColorEQ.
func PrintingColor(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldPrintingColor, v))
}

// Specification applies equality check predicate on the "specification" field. It's identical to SpecificationEQ.
func Specification(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldSpecification, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCity, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldQuantity, v))
}

// LeadTime applies equality check predicate on the "lead_time" field. It's identical to LeadTimeEQ.
func LeadTime(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldLeadTime, v))
}

// RepeatNew applies equality check predicate on the "repeat_new" field. It's identical to RepeatNewEQ.
func RepeatNew(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldRepeatNew, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldRowIndex, v))
}

// SourceDateEQ applies the EQ predicate on the "source_date" field.
func SourceDateEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldSourceDate, v))
}

// SourceDateNEQ applies the NEQ predicate on the "source_date" field.
func SourceDateNEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldSourceDate, v))
}

// SourceDateIn applies the In predicate on the "source_date" field.
func SourceDateIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldSourceDate, vs...))
}

// SourceDateNotIn applies the NotIn predicate on the "source_date" field.
func SourceDateNotIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldSourceDate, vs...))
}

// SourceDateGT applies the GT predicate on the "source_date" field.
func SourceDateGT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldSourceDate, v))
}

// SourceDateGTE applies the GTE predicate on the "source_date" field.
func SourceDateGTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldSourceDate, v))
}

// SourceDateLT applies the LT predicate on the "source_date" field.
func SourceDateLT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldSourceDate, v))
}

// SourceDateLTE applies the LTE predicate on the "source_date" field.
func SourceDateLTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldSourceDate, v))
}

// SourceDateIsNil applies the IsNil predicate on the "source_date" field.
func SourceDateIsNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIsNull(FieldSourceDate))
}

// SourceDateNotNil applies the NotNil predicate on the "source_date" field.
func SourceDateNotNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotNull(FieldSourceDate))
}

// OtdTypeEQ applies the EQ predicate on the "otd_type" field.
func OtdTypeEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldOtdType, v))
}

// OtdTypeNEQ applies the NEQ predicate on the "otd_type" field.
func OtdTypeNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldOtdType, v))
}

// OtdTypeIn applies the In predicate on the "otd_type" field.
func OtdTypeIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldOtdType, vs...))
}

// OtdTypeNotIn applies the NotIn predicate on the "otd_type" field.
func OtdTypeNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldOtdType, vs...))
}

// OtdTypeGT applies the GT predicate on the "otd_type" field.
func OtdTypeGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldOtdType, v))
}

// OtdTypeGTE applies the GTE predicate on the "otd_type" field.
func OtdTypeGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldOtdType, v))
}

// OtdTypeLT applies the LT predicate on the "otd_type" field.
func OtdTypeLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldOtdType, v))
}

// OtdTypeLTE applies the LTE predicate on the "otd_type" field.
func OtdTypeLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldOtdType, v))
}

// OtdTypeContains applies the Contains predicate on the "otd_type" field.
func OtdTypeContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldOtdType, v))
}

// OtdTypeHasPrefix applies the HasPrefix predicate on the "otd_type" field.
func OtdTypeHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldOtdType, v))
}

// OtdTypeHasSuffix applies the HasSuffix predicate on the "otd_type" field.
func OtdTypeHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldOtdType, v))
}

// OtdTypeEqualFold applies the EqualFold predicate on the "otd_type" field.
func OtdTypeEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldOtdType, v))
}

// OtdTypeContainsFold applies the ContainsFold predicate on the "otd_type" field.
func OtdTypeContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldOtdType, v))
}

// JobNumberEQ applies the EQ predicate on the "job_number" field.
func JobNumberEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldJobNumber, v))
}

// JobNumberNEQ applies the NEQ predicate on the "job_number" field.
func JobNumberNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldJobNumber, v))
}

// JobNumberIn applies the In predicate on the "job_number" field.
func JobNumberIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldJobNumber, vs...))
}

// JobNumberNotIn applies the NotIn predicate on the "job_number" field.
func JobNumberNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldJobNumber, vs...))
}

// JobNumberGT applies the GT predicate on the "job_number" field.
func JobNumberGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldJobNumber, v))
}

// JobNumberGTE applies the GTE predicate on the "job_number" field.
func JobNumberGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldJobNumber, v))
}

// JobNumberLT applies the LT predicate on the "job_number" field.
func JobNumberLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldJobNumber, v))
}

// JobNumberLTE applies the LTE predicate on the "job_number" field.
func JobNumberLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldJobNumber, v))
}

// JobNumberContains applies the Contains predicate on the "job_number" field.
func JobNumberContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldJobNumber, v))
}

// JobNumberHasPrefix applies the HasPrefix predicate on the "job_number" field.
func JobNumberHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldJobNumber, v))
}

// JobNumberHasSuffix applies the HasSuffix predicate on the "job_number" field.
func JobNumberHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldJobNumber, v))
}

// JobNumberEqualFold applies the EqualFold predicate on the "job_number" field.
func JobNumberEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldJobNumber, v))
}

// JobNumberContainsFold applies the ContainsFold predicate on the "job_number" field.
func JobNumberContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldJobNumber, v))
}

// OrderByEQ applies the EQ predicate on the "order_by" field.
func OrderByEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldOrderBy, v))
}

// OrderByNEQ applies the NEQ predicate on the "order_by" field.
func OrderByNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldOrderBy, v))
}

// OrderByIn applies the In predicate on the "order_by" field.
func OrderByIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldOrderBy, vs...))
}

// OrderByNotIn applies the NotIn predicate on the "order_by" field.
func OrderByNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldOrderBy, vs...))
}

// OrderByGT applies the GT predicate on the "order_by" field.
func OrderByGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldOrderBy, v))
}

// OrderByGTE applies the GTE predicate on the "order_by" field.
func OrderByGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldOrderBy, v))
}

// OrderByLT applies the LT predicate on the "order_by" field.
func OrderByLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldOrderBy, v))
}

// OrderByLTE applies the LTE predicate on the "order_by" field.
func OrderByLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldOrderBy, v))
}

// OrderByContains applies the Contains predicate on the "order_by" field.
func OrderByContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldOrderBy, v))
}

// OrderByHasPrefix applies the HasPrefix predicate on the "order_by" field.
func OrderByHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldOrderBy, v))
}

// OrderByHasSuffix applies the HasSuffix predicate on the "order_by" field.
func OrderByHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldOrderBy, v))
}

// OrderByEqualFold applies the EqualFold predicate on the "order_by" field.
func OrderByEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldOrderBy, v))
}

// OrderByContainsFold applies the ContainsFold predicate on the "order_by" field.
func OrderByContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldOrderBy, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldCompanyName, v))
}

// BoxTypeEQ applies the EQ predicate on the "box_type" field.
func BoxTypeEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldBoxType, v))
}

// BoxTypeNEQ applies the NEQ predicate on the "box_type" field.
func BoxTypeNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldBoxType, v))
}

// BoxTypeIn applies the In predicate on the "box_type" field.
func BoxTypeIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldBoxType, vs...))
}

// BoxTypeNotIn applies the NotIn predicate on the "box_type" field.
func BoxTypeNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldBoxType, vs...))
}

// BoxTypeGT applies the GT predicate on the "box_type" field.
func BoxTypeGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldBoxType, v))
}

// BoxTypeGTE applies the GTE predicate on the "box_type" field.
func BoxTypeGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldBoxType, v))
}

// BoxTypeLT applies the LT predicate on the "box_type" field.
func BoxTypeLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldBoxType, v))
}

// BoxTypeLTE applies the LTE predicate on the "box_type" field.
func BoxTypeLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldBoxType, v))
}

// BoxTypeContains applies the Contains predicate on the "box_type" field.
func BoxTypeContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldBoxType, v))
}

// BoxTypeHasPrefix applies the HasPrefix predicate on the "box_type" field.
func BoxTypeHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldBoxType, v))
}

// BoxTypeHasSuffix applies the HasSuffix predicate on the "box_type" field.
func BoxTypeHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldBoxType, v))
}

// BoxTypeEqualFold applies the EqualFold predicate on the "box_type" field.
func BoxTypeEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldBoxType, v))
}

// BoxTypeContainsFold applies the ContainsFold predicate on the "box_type" field.
func BoxTypeContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldBoxType, v))
}

// BoxStyleEQ applies the EQ predicate on the "box_style" field.
func BoxStyleEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldBoxStyle, v))
}

// BoxStyleNEQ applies the NEQ predicate on the "box_style" field.
func BoxStyleNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldBoxStyle, v))
}

// BoxStyleIn applies the In predicate on the "box_style" field.
func BoxStyleIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldBoxStyle, vs...))
}

// BoxStyleNotIn applies the NotIn predicate on the "box_style" field.
func BoxStyleNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldBoxStyle, vs...))
}

// BoxStyleGT applies the GT predicate on the "box_style" field.
func BoxStyleGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldBoxStyle, v))
}

// BoxStyleGTE applies the GTE predicate on the "box_style" field.
func BoxStyleGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldBoxStyle, v))
}

// BoxStyleLT applies the LT predicate on the "box_style" field.
func BoxStyleLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldBoxStyle, v))
}

// BoxStyleLTE applies the LTE predicate on the "box_style" field.
func BoxStyleLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldBoxStyle, v))
}

// BoxStyleContains applies the Contains predicate on the "box_style" field.
func BoxStyleContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldBoxStyle, v))
}

// BoxStyleHasPrefix applies the HasPrefix predicate on the "box_style" field.
func BoxStyleHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldBoxStyle, v))
}

// BoxStyleHasSuffix applies the HasSuffix predicate on the "box_style" field.
func BoxStyleHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldBoxStyle, v))
}

// BoxStyleEqualFold applies the EqualFold predicate on the "box_style" field.
func BoxStyleEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldBoxStyle, v))
}

// BoxStyleContainsFold applies the ContainsFold predicate on the "box_style" field.
func BoxStyleContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldBoxStyle, v))
}

// BoxColorEQ applies the EQ predicate on the "box_color" field.
func BoxColorEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldBoxColor, v))
}

// BoxColorNEQ applies the NEQ predicate on the "box_color" field.
func BoxColorNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldBoxColor, v))
}

// BoxColorIn applies the In predicate on the "box_color" field.
func BoxColorIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldBoxColor, vs...))
}

// BoxColorNotIn applies the NotIn predicate on the "box_color" field.
func BoxColorNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldBoxColor, vs...))
}

// BoxColorGT applies the GT predicate on the "box_color" field.
func BoxColorGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldBoxColor, v))
}

// BoxColorGTE applies the GTE predicate on the "box_color" field.
func BoxColorGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldBoxColor, v))
}

// BoxColorLT applies the LT predicate on the "box_color" field.
func BoxColorLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldBoxColor, v))
}

// BoxColorLTE applies the LTE predicate on the "box_color" field.
func BoxColorLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldBoxColor, v))
}

// BoxColorContains applies the Contains predicate on the "box_color" field.
func BoxColorContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldBoxColor, v))
}

// BoxColorHasPrefix applies the HasPrefix predicate on the "box_color" field.
func BoxColorHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldBoxColor, v))
}

// BoxColorHasSuffix applies the HasSuffix predicate on the "box_color" field.
func BoxColorHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldBoxColor, v))
}

// BoxColorEqualFold applies the EqualFold predicate on the "box_color" field.
func BoxColorEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldBoxColor, v))
}

// BoxColorContainsFold applies the ContainsFold predicate on the "box_color" field.
func BoxColorContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldBoxColor, v))
}

// PrintingTypeEQ applies the EQ predicate on the "printing_type" field.
func PrintingTypeEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldPrintingType, v))
}

// PrintingTypeNEQ applies the NEQ predicate on the "printing_type" field.
func PrintingTypeNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldPrintingType, v))
}

// PrintingTypeIn applies the In predicate on the "printing_type" field.
func PrintingTypeIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldPrintingType, vs...))
}

// PrintingTypeNotIn applies the NotIn predicate on the "printing_type" field.
func PrintingTypeNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldPrintingType, vs...))
}

// PrintingTypeGT applies the GT predicate on the "printing_type" field.
func PrintingTypeGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldPrintingType, v))
}

// PrintingTypeGTE applies the GTE predicate on the "printing_type" field.
func PrintingTypeGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldPrintingType, v))
}

// PrintingTypeLT applies the LT predicate on the "printing_type" field.
func PrintingTypeLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldPrintingType, v))
}

// PrintingTypeLTE applies the LTE predicate on the "printing_type" field.
func PrintingTypeLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldPrintingType, v))
}

// PrintingTypeContains applies the Contains predicate on the "printing_type" field.
func PrintingTypeContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldPrintingType, v))
}

// PrintingTypeHasPrefix applies the HasPrefix predicate on the "printing_type" field.
func PrintingTypeHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldPrintingType, v))
}

// PrintingTypeHasSuffix applies the HasSuffix predicate on the "printing_type" field.
func PrintingTypeHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldPrintingType, v))
}

// PrintingTypeEqualFold applies the EqualFold predicate on the "printing_type" field.
func PrintingTypeEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldPrintingType, v))
}

// PrintingTypeContainsFold applies the ContainsFold predicate on the "printing_type" field.
func PrintingTypeContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldPrintingType, v))
}

// PrintingColorEQ applies the EQ predicate on the "printing_color" field.
func PrintingColorEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldPrintingColor, v))
}

// PrintingColorNEQ applies the NEQ predicate on the "printing_color" field.
func PrintingColorNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldPrintingColor, v))
}

// PrintingColorIn applies the In predicate on the "printing_color" field.
func PrintingColorIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldPrintingColor, vs...))
}

// PrintingColorNotIn applies the NotIn predicate on the "printing_color" field.
func PrintingColorNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldPrintingColor, vs...))
}

// PrintingColorGT applies the GT predicate on the "printing_color" field.
func PrintingColorGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldPrintingColor, v))
}

// PrintingColorGTE applies the GTE predicate on the "printing_color" field.
func PrintingColorGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldPrintingColor, v))
}

// PrintingColorLT applies the LT predicate on the "printing_color" field.
func PrintingColorLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldPrintingColor, v))
}

// PrintingColorLTE applies the LTE predicate on the "printing_color" field.
func PrintingColorLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldPrintingColor, v))
}

// PrintingColorContains applies the Contains predicate on the "printing_color" field.
func PrintingColorContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldPrintingColor, v))
}

// PrintingColorHasPrefix applies the HasPrefix predicate on the "printing_color" field.
func PrintingColorHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldPrintingColor, v))
}

// PrintingColorHasSuffix applies the HasSuffix predicate on the "printing_color" field.
func PrintingColorHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldPrintingColor, v))
}

// PrintingColorEqualFold applies the EqualFold predicate on the "printing_color" field.
func PrintingColorEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldPrintingColor, v))
}

// PrintingColorContainsFold applies the ContainsFold predicate on the "printing_color" field.
func PrintingColorContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldPrintingColor, v))
}

// SpecificationEQ applies the EQ predicate on the "specification" field.
func SpecificationEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldSpecification, v))
}

// SpecificationNEQ applies the NEQ predicate on the "specification" field.
func SpecificationNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldSpecification, v))
}

// SpecificationIn applies the In predicate on the "specification" field.
func SpecificationIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldSpecification, vs...))
}

// SpecificationNotIn applies the NotIn predicate on the "specification" field.
func SpecificationNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldSpecification, vs...))
}

// SpecificationGT applies the GT predicate on the "specification" field.
func SpecificationGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldSpecification, v))
}

// SpecificationGTE applies the GTE predicate on the "specification" field.
func SpecificationGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldSpecification, v))
}

// SpecificationLT applies the LT predicate on the "specification" field.
func SpecificationLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldSpecification, v))
}

// SpecificationLTE applies the LTE predicate on the "specification" field.
func SpecificationLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldSpecification, v))
}

// SpecificationContains applies the Contains predicate on the "specification" field.
func SpecificationContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldSpecification, v))
}

// SpecificationHasPrefix applies the HasPrefix predicate on the "specification" field.
func SpecificationHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldSpecification, v))
}

// SpecificationHasSuffix applies the HasSuffix predicate on the "specification" field.
func SpecificationHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldSpecification, v))
}

// SpecificationEqualFold applies the EqualFold predicate on the "specification" field.
func SpecificationEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldSpecification, v))
}

// SpecificationContainsFold applies the ContainsFold predicate on the "specification" field.
func SpecificationContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldSpecification, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldCity, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldQuantity, v))
}

// LeadTimeEQ applies the EQ predicate on the "lead_time" field.
func LeadTimeEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldLeadTime, v))
}

// LeadTimeNEQ applies the NEQ predicate on the "lead_time" field.
func LeadTimeNEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldLeadTime, v))
}

// LeadTimeIn applies the In predicate on the "lead_time" field.
func LeadTimeIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldLeadTime, vs...))
}

// LeadTimeNotIn applies the NotIn predicate on the "lead_time" field.
func LeadTimeNotIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldLeadTime, vs...))
}

// LeadTimeGT applies the GT predicate on the "lead_time" field.
func LeadTimeGT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldLeadTime, v))
}

// LeadTimeGTE applies the GTE predicate on the "lead_time" field.
func LeadTimeGTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldLeadTime, v))
}

// LeadTimeLT applies the LT predicate on the "lead_time" field.
func LeadTimeLT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldLeadTime, v))
}

// LeadTimeLTE applies the LTE predicate on the "lead_time" field.
func LeadTimeLTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldLeadTime, v))
}

// LeadTimeIsNil applies the IsNil predicate on the "lead_time" field.
func LeadTimeIsNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIsNull(FieldLeadTime))
}

// LeadTimeNotNil applies the NotNil predicate on the "lead_time" field.
func LeadTimeNotNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotNull(FieldLeadTime))
}

// RepeatNewEQ applies the EQ predicate on the "repeat_new" field.
func RepeatNewEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldRepeatNew, v))
}

// RepeatNewNEQ applies the NEQ predicate on the "repeat_new" field.
func RepeatNewNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldRepeatNew, v))
}

// RepeatNewIn applies the In predicate on the "repeat_new" field.
func RepeatNewIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldRepeatNew, vs...))
}

// RepeatNewNotIn applies the NotIn predicate on the "repeat_new" field.
func RepeatNewNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldRepeatNew, vs...))
}

// RepeatNewGT applies the GT predicate on the "repeat_new" field.
func RepeatNewGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldRepeatNew, v))
}

// RepeatNewGTE applies the GTE predicate on the "repeat_new" field.
func RepeatNewGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldRepeatNew, v))
}

// RepeatNewLT applies the LT predicate on the "repeat_new" field.
func RepeatNewLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldRepeatNew, v))
}

// RepeatNewLTE applies the LTE predicate on the "repeat_new" field.
func RepeatNewLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldRepeatNew, v))
}

// RepeatNewContains applies the Contains predicate on the "repeat_new" field.
func RepeatNewContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldRepeatNew, v))
}

// RepeatNewHasPrefix applies the HasPrefix predicate on the "repeat_new" field.
func RepeatNewHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldRepeatNew, v))
}

// RepeatNewHasSuffix applies the HasSuffix predicate on the "repeat_new" field.
func RepeatNewHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldRepeatNew, v))
}

// RepeatNewEqualFold applies the EqualFold predicate on the "repeat_new" field.
func RepeatNewEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldRepeatNew, v))
}

// RepeatNewContainsFold applies the ContainsFold predicate on the "repeat_new" field.
func RepeatNewContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldRepeatNew, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.JobRecord {
	return predicate.JobRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.StepTask) predicate.JobRecord {
	return predicate.JobRecord(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobRecord) predicate.JobRecord {
	return predicate.JobRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobRecord) predicate.JobRecord {
	return predicate.JobRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobRecord) predicate.JobRecord {
	return predicate.JobRecord(sql.NotPredicates(p))
}
