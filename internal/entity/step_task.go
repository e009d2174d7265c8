package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/constants"
)

// StepTask is the planned/actual tracking record for one production step of
// one job. At most one StepTask exists per (job, step).
type StepTask struct {
	ID           uuid.UUID            `json:"id"`
	JobID        uuid.UUID            `json:"job_id"`
	Step         int                  `json:"step"`
	StepName     string               `json:"step_name"`
	PlanDate     *time.Time           `json:"plan_date,omitempty"`
	ActualDate   *time.Time           `json:"actual_date,omitempty"`
	Status       constants.TaskStatus `json:"status"`
	DelayReason  string               `json:"delay_reason"`
	WorkerName   string               `json:"worker_name"`
	CompletedQty int                  `json:"completed_qty"`
	DelayHours   float64              `json:"delay_hours"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// PlanUpdate is one resolver result headed for storage: the candidate plan
// date for (job, step). The upsert policy decides whether it sticks.
type PlanUpdate struct {
	JobID    uuid.UUID
	Step     int
	PlanDate time.Time
}

// CompletionInput carries the metadata a worker records when closing a step.
type CompletionInput struct {
	TaskID       uuid.UUID
	WorkerName   string
	DelayReason  string
	CompletedQty int
	DelayHours   float64
}
