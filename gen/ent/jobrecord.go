// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/jobrecord"
	"github.com/google/uuid"
)

// JobRecord is the model entity for the JobRecord schema.
type JobRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RowIndex holds the value of the "row_index" field.
	RowIndex int `json:"row_index,omitempty"`
	// SourceDate holds the value of the "source_date" field.
	SourceDate *time.Time `json:"source_date,omitempty"`
	// OtdType holds the value of the "otd_type" field.
	OtdType string `json:"otd_type,omitempty"`
	// JobNumber holds the value of the "job_number" field.
	JobNumber string `json:"job_number,omitempty"`
	// OrderBy holds the value of the "order_by" field.
	OrderBy string `json:"order_by,omitempty"`
	// CompanyName holds the value of the "company_name" field.
	CompanyName string `json:"company_name,omitempty"`
	// BoxType holds the value of the "box_type" field.
	BoxType string `json:"box_type,omitempty"`
	// BoxStyle holds the value of the "box_style" field.
	BoxStyle string `json:"box_style,omitempty"`
	// BoxColor holds the value of the "box_color" field.
	BoxColor string `json:"box_color,omitempty"`
	// PrintingType holds the value of the "printing_type" field.
	PrintingType string `json:"printing_type,omitempty"`
	// PrintingColor holds the value of the "printing_color" field.
	PrintingColor string `json:"printing_color,omitempty"`
	// Specification holds the value of the "specification" field.
	Specification string `json:"specification,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// LeadTime holds the value of the "lead_time" field.
	LeadTime *time.Time `json:"lead_time,omitempty"`
	// RepeatNew holds the value of the "repeat_new" field.
	RepeatNew string `json:"repeat_new,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobRecordQuery when eager-loading is set.
	Edges        JobRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobRecordEdges holds the relations/edges for other nodes in the graph.
type JobRecordEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*StepTask `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e JobRecordEdges) TasksOrErr() ([]*StepTask, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobrecord.FieldRowIndex, jobrecord.FieldQuantity:
			values[i] = new(sql.NullInt64)
		case jobrecord.FieldOtdType, jobrecord.FieldJobNumber, jobrecord.FieldOrderBy, jobrecord.FieldCompanyName, jobrecord.FieldBoxType, jobrecord.FieldBoxStyle, jobrecord.FieldBoxColor, jobrecord.FieldPrintingType, jobrecord.FieldPrintingColor, jobrecord.FieldSpecification, jobrecord.FieldCity, jobrecord.FieldRepeatNew:
			values[i] = new(sql.NullString)
		case jobrecord.FieldSourceDate, jobrecord.FieldLeadTime, jobrecord.FieldCreatedAt, jobrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case jobrecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobRecord fields.
func (_m *JobRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case jobrecord.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case jobrecord.FieldSourceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field source_date", values[i])
			} else if value.Valid {
				_m.SourceDate = new(time.Time)
				*_m.SourceDate = value.Time
			}
		case jobrecord.FieldOtdType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field otd_type", values[i])
			} else if value.Valid {
				_m.OtdType = value.String
			}
		case jobrecord.FieldJobNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_number", values[i])
			} else if value.Valid {
				_m.JobNumber = value.String
			}
		case jobrecord.FieldOrderBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_by", values[i])
			} else if value.Valid {
				_m.OrderBy = value.String
			}
		case jobrecord.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case jobrecord.FieldBoxType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field box_type", values[i])
			} else if value.Valid {
				_m.BoxType = value.String
			}
		case jobrecord.FieldBoxStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field box_style", values[i])
			} else if value.Valid {
				_m.BoxStyle = value.String
			}
		case jobrecord.FieldBoxColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field box_color", values[i])
			} else if value.Valid {
				_m.BoxColor = value.String
			}
		case jobrecord.FieldPrintingType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field printing_type", values[i])
			} else if value.Valid {
				_m.PrintingType = value.String
			}
		case jobrecord.FieldPrintingColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field printing_color", values[i])
			} else if value.Valid {
				_m.PrintingColor = value.String
			}
		case jobrecord.FieldSpecification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specification", values[i])
			} else if value.Valid {
				_m.Specification = value.String
			}
		case jobrecord.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case jobrecord.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case jobrecord.FieldLeadTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lead_time", values[i])
			} else if value.Valid {
				_m.LeadTime = new(time.Time)
				*_m.LeadTime = value.Time
			}
		case jobrecord.FieldRepeatNew:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repeat_new", values[i])
			} else if value.Valid {
				_m.RepeatNew = value.String
			}
		case jobrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case jobrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobRecord.
// This includes values selected through modifiers, order, etc.
func (_m *JobRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the JobRecord entity.
func (_m *JobRecord) QueryTasks() *StepTaskQuery {
	return NewJobRecordClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this JobRecord.
// Note that you need to call JobRecord.Unwrap() before calling this method if this JobRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobRecord) Update() *JobRecordUpdateOne {
	return NewJobRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobRecord) Unwrap() *JobRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobRecord) String() string {
	var builder strings.Builder
	builder.WriteString("JobRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("row_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowIndex))
	builder.WriteString(", ")
	if v := _m.SourceDate; v != nil {
		builder.WriteString("source_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("otd_type=")
	builder.WriteString(_m.OtdType)
	builder.WriteString(", ")
	builder.WriteString("job_number=")
	builder.WriteString(_m.JobNumber)
	builder.WriteString(", ")
	builder.WriteString("order_by=")
	builder.WriteString(_m.OrderBy)
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("box_type=")
	builder.WriteString(_m.BoxType)
	builder.WriteString(", ")
	builder.WriteString("box_style=")
	builder.WriteString(_m.BoxStyle)
	builder.WriteString(", ")
	builder.WriteString("box_color=")
	builder.WriteString(_m.BoxColor)
	builder.WriteString(", ")
	builder.WriteString("printing_type=")
	builder.WriteString(_m.PrintingType)
	builder.WriteString(", ")
	builder.WriteString("printing_color=")
	builder.WriteString(_m.PrintingColor)
	builder.WriteString(", ")
	builder.WriteString("specification=")
	builder.WriteString(_m.Specification)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	if v := _m.LeadTime; v != nil {
		builder.WriteString("lead_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("repeat_new=")
	builder.WriteString(_m.RepeatNew)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// JobRecords is a parsable slice of JobRecord.
type JobRecords []*JobRecord
