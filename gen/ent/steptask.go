// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dibiaa/fms-tracker/gen/ent/jobrecord"
	"github.com/dibiaa/fms-tracker/gen/ent/steptask"
	"github.com/google/uuid"
)

// StepTask is the model entity for the StepTask schema.
type StepTask struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// Step holds the value of the "step" field.
	Step int `json:"step,omitempty"`
	// PlanDate holds the value of the "plan_date" field.
	PlanDate *time.Time `json:"plan_date,omitempty"`
	// ActualDate holds the value of the "actual_date" field.
	ActualDate *time.Time `json:"actual_date,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// DelayReason holds the value of the "delay_reason" field.
	DelayReason string `json:"delay_reason,omitempty"`
	// WorkerName holds the value of the "worker_name" field.
	WorkerName string `json:"worker_name,omitempty"`
	// CompletedQty holds the value of the "completed_qty" field.
	CompletedQty int `json:"completed_qty,omitempty"`
	// DelayHours holds the value of the "delay_hours" field.
	DelayHours float64 `json:"delay_hours,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepTaskQuery when eager-loading is set.
	Edges        StepTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StepTaskEdges holds the relations/edges for other nodes in the graph.
type StepTaskEdges struct {
	// Job holds the value of the job edge.
	Job *JobRecord `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepTaskEdges) JobOrErr() (*JobRecord, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: jobrecord.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case steptask.FieldDelayHours:
			values[i] = new(sql.NullFloat64)
		case steptask.FieldStep, steptask.FieldCompletedQty:
			values[i] = new(sql.NullInt64)
		case steptask.FieldStatus, steptask.FieldDelayReason, steptask.FieldWorkerName:
			values[i] = new(sql.NullString)
		case steptask.FieldPlanDate, steptask.FieldActualDate, steptask.FieldCreatedAt, steptask.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case steptask.FieldID, steptask.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepTask fields.
func (_m *StepTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case steptask.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case steptask.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case steptask.FieldStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step", values[i])
			} else if value.Valid {
				_m.Step = int(value.Int64)
			}
		case steptask.FieldPlanDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field plan_date", values[i])
			} else if value.Valid {
				_m.PlanDate = new(time.Time)
				*_m.PlanDate = value.Time
			}
		case steptask.FieldActualDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field actual_date", values[i])
			} else if value.Valid {
				_m.ActualDate = new(time.Time)
				*_m.ActualDate = value.Time
			}
		case steptask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case steptask.FieldDelayReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delay_reason", values[i])
			} else if value.Valid {
				_m.DelayReason = value.String
			}
		case steptask.FieldWorkerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worker_name", values[i])
			} else if value.Valid {
				_m.WorkerName = value.String
			}
		case steptask.FieldCompletedQty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_qty", values[i])
			} else if value.Valid {
				_m.CompletedQty = int(value.Int64)
			}
		case steptask.FieldDelayHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field delay_hours", values[i])
			} else if value.Valid {
				_m.DelayHours = value.Float64
			}
		case steptask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case steptask.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StepTask.
// This includes values selected through modifiers, order, etc.
func (_m *StepTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the StepTask entity.
func (_m *StepTask) QueryJob() *JobRecordQuery {
	return NewStepTaskClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this StepTask.
// Note that you need to call StepTask.Unwrap() before calling this method if this StepTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepTask) Update() *StepTaskUpdateOne {
	return NewStepTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepTask) Unwrap() *StepTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepTask) String() string {
	var builder strings.Builder
	builder.WriteString("StepTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("step=")
	builder.WriteString(fmt.Sprintf("%v", _m.Step))
	builder.WriteString(", ")
	if v := _m.PlanDate; v != nil {
		builder.WriteString("plan_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ActualDate; v != nil {
		builder.WriteString("actual_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("delay_reason=")
	builder.WriteString(_m.DelayReason)
	builder.WriteString(", ")
	builder.WriteString("worker_name=")
	builder.WriteString(_m.WorkerName)
	builder.WriteString(", ")
	builder.WriteString("completed_qty=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedQty))
	builder.WriteString(", ")
	builder.WriteString("delay_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.DelayHours))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StepTasks is a parsable slice of StepTask.
type StepTasks []*StepTask
