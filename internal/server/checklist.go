package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	v1 "github.com/dibiaa/fms-tracker/gen/proto/fms/v1"
	"github.com/dibiaa/fms-tracker/internal/checklist"
	"github.com/dibiaa/fms-tracker/internal/common"
	"github.com/dibiaa/fms-tracker/internal/repository"
)

type ChecklistService struct {
	v1.UnimplementedChecklistServiceServer
	checklistRepo repository.ChecklistRepository
	holidayRepo   repository.HolidayRepository
	logger        *slog.Logger
}

func NewChecklistService(checklistRepo repository.ChecklistRepository, holidayRepo repository.HolidayRepository, logger *slog.Logger) *ChecklistService {
	return &ChecklistService{checklistRepo: checklistRepo, holidayRepo: holidayRepo, logger: logger}
}

func (s *ChecklistService) GenerateChecklist(ctx context.Context, req *v1.GenerateChecklistRequest) (*v1.GenerateChecklistResponse, error) {
	if strings.TrimSpace(req.GetDescription()) == "" {
		return nil, common.InvalidArgumentError("description is required")
	}
	if strings.TrimSpace(req.GetEmployeeEmail()) == "" {
		return nil, common.InvalidArgumentError("employee_email is required")
	}
	start, err := time.Parse("2006-01-02", req.GetStartDate())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid start_date %q", req.GetStartDate())
	}

	holidays, err := s.holidayRepo.Dates(ctx)
	if err != nil {
		return nil, common.InternalError("load holidays failed")
	}

	occurrences, err := checklist.Generate(checklist.Definition{
		Description:   req.GetDescription(),
		EmployeeEmail: req.GetEmployeeEmail(),
		EmployeeName:  req.GetEmployeeName(),
		Frequency:     req.GetFrequency(),
		StartDate:     start,
	}, holidays)
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	n, err := s.checklistRepo.InsertAll(ctx, occurrences)
	if err != nil {
		return nil, common.InternalError("store checklist failed")
	}
	return &v1.GenerateChecklistResponse{Occurrences: int32(n)}, nil
}

func (s *ChecklistService) ListDueChecklist(ctx context.Context, req *v1.ListDueChecklistRequest) (*v1.ListDueChecklistResponse, error) {
	tasks, err := s.checklistRepo.ListDue(ctx, strings.TrimSpace(req.GetEmployeeEmail()), time.Now())
	if err != nil {
		return nil, common.InternalError("list due checklist failed")
	}

	out := make([]*v1.ChecklistTask, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, &v1.ChecklistTask{
			Id:            task.ID.String(),
			Uid:           task.UID,
			Description:   task.Description,
			EmployeeEmail: task.EmployeeEmail,
			EmployeeName:  task.EmployeeName,
			Frequency:     task.Frequency,
			TargetDate:    task.TargetDate.Format("2006-01-02"),
			Status:        string(task.Status),
		})
	}
	return &v1.ListDueChecklistResponse{Tasks: out}, nil
}

func (s *ChecklistService) CompleteChecklistTask(ctx context.Context, req *v1.CompleteChecklistTaskRequest) (*v1.CompleteChecklistTaskResponse, error) {
	taskID, err := uuid.Parse(strings.TrimSpace(req.GetTaskId()))
	if err != nil {
		return nil, common.InvalidArgumentError("task_id must be a UUID")
	}
	if err := s.checklistRepo.Complete(ctx, taskID); err != nil {
		return nil, common.InternalError("complete checklist task failed")
	}
	return &v1.CompleteChecklistTaskResponse{}, nil
}
