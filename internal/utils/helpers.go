package utils

import (
	"time"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/gen/ent"
	"github.com/dibiaa/fms-tracker/internal/entity"
)

// NilIfZero converts a zero time to nil for nillable ent setters.
func NilIfZero(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeOrZero(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}

func ToJobRecord(r *ent.JobRecord) *entity.JobRecord {
	return &entity.JobRecord{
		ID:            r.ID,
		RowIndex:      r.RowIndex,
		SourceDate:    timeOrZero(r.SourceDate),
		OTDType:       r.OtdType,
		JobNumber:     r.JobNumber,
		OrderBy:       r.OrderBy,
		CompanyName:   r.CompanyName,
		BoxType:       r.BoxType,
		BoxStyle:      r.BoxStyle,
		BoxColor:      r.BoxColor,
		PrintingType:  r.PrintingType,
		PrintingColor: r.PrintingColor,
		Specification: r.Specification,
		City:          r.City,
		Quantity:      r.Quantity,
		LeadTime:      timeOrZero(r.LeadTime),
		RepeatNew:     r.RepeatNew,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func ToStepTask(t *ent.StepTask) *entity.StepTask {
	return &entity.StepTask{
		ID:           t.ID,
		JobID:        t.JobID,
		Step:         t.Step,
		StepName:     constants.StepName(t.Step),
		PlanDate:     t.PlanDate,
		ActualDate:   t.ActualDate,
		Status:       constants.TaskStatus(t.Status),
		DelayReason:  t.DelayReason,
		WorkerName:   t.WorkerName,
		CompletedQty: t.CompletedQty,
		DelayHours:   t.DelayHours,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func ToDelegationTask(t *ent.DelegationTask) *entity.DelegationTask {
	return &entity.DelegationTask{
		ID:              t.ID,
		TaskUID:         t.TaskUID,
		EmployeeName:    t.EmployeeName,
		AssignedToEmail: t.AssignedToEmail,
		ApproverEmail:   t.ApproverEmail,
		Description:     t.Description,
		TargetDate:      t.TargetDate,
		Priority:        t.Priority,
		ApprovalNeeded:  t.ApprovalNeeded,
		AssignedBy:      t.AssignedBy,
		Remarks:         t.Remarks,
		Status:          constants.DelegationStatus(t.Status),
		PreviousStatus:  constants.DelegationStatus(t.PreviousStatus),
		RevisedDateReq:  t.RevisedDateRequest,
		RevisionRemarks: t.RevisionRemarks,
		CreatedAt:       t.CreatedAt,
	}
}

func ToChecklistTask(t *ent.ChecklistTask) *entity.ChecklistTask {
	return &entity.ChecklistTask{
		ID:            t.ID,
		UID:           t.UID,
		Description:   t.Description,
		EmployeeEmail: t.EmployeeEmail,
		EmployeeName:  t.EmployeeName,
		Frequency:     t.Frequency,
		TargetDate:    t.TargetDate,
		Status:        constants.TaskStatus(t.Status),
		CompletedAt:   t.CompletedAt,
	}
}
