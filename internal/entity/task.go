package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/constants"
)

// DelegationTask is a one-off delegated task outside the DIBIAA pipeline.
type DelegationTask struct {
	ID              uuid.UUID                  `json:"id"`
	TaskUID         string                     `json:"task_uid"`
	EmployeeName    string                     `json:"employee_name"`
	AssignedToEmail string                     `json:"assigned_to_email"`
	ApproverEmail   string                     `json:"approver_email"`
	Description     string                     `json:"description"`
	TargetDate      time.Time                  `json:"target_date"`
	Priority        string                     `json:"priority"`
	ApprovalNeeded  bool                       `json:"approval_needed"`
	AssignedBy      string                     `json:"assigned_by"`
	Remarks         string                     `json:"remarks"`
	Status          constants.DelegationStatus `json:"status"`
	PreviousStatus  constants.DelegationStatus `json:"previous_status"`
	RevisedDateReq  *time.Time                 `json:"revised_date_request,omitempty"`
	RevisionRemarks string                     `json:"revision_remarks"`
	CreatedAt       time.Time                  `json:"created_at"`
}

// ChecklistTask is one dated occurrence of a recurring checklist definition.
type ChecklistTask struct {
	ID            uuid.UUID            `json:"id"`
	UID           string               `json:"uid"`
	Description   string               `json:"description"`
	EmployeeEmail string               `json:"employee_email"`
	EmployeeName  string               `json:"employee_name"`
	Frequency     string               `json:"frequency"`
	TargetDate    time.Time            `json:"target_date"`
	Status        constants.TaskStatus `json:"status"`
	CompletedAt   *time.Time           `json:"completed_at,omitempty"`
}

// TaskComment is a free-form comment on a delegation task.
type TaskComment struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	UserName  string    `json:"user_name"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
