// Code generated by ent, DO NOT EDIT.

package holiday

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the holiday type in the database.
	Label = "holiday"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHolidayDate holds the string denoting the holiday_date field in the database.
	FieldHolidayDate = "holiday_date"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// Table holds the table name of the holiday in the database.
	Table = "holidays"
)

// Columns holds all SQL columns for holiday fields.
var Columns = []string{
	FieldID,
	FieldHolidayDate,
	FieldName,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
)

// OrderOption defines the ordering options for the Holiday queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHolidayDate orders the results by the holiday_date field.
func ByHolidayDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHolidayDate, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}
