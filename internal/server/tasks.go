package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/constants"
	v1 "github.com/dibiaa/fms-tracker/gen/proto/fms/v1"
	"github.com/dibiaa/fms-tracker/internal/common"
	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/export"
	"github.com/dibiaa/fms-tracker/internal/repository"
)

type TasksService struct {
	v1.UnimplementedTasksServiceServer
	jobsRepo   repository.JobRecordRepository
	tasksRepo  repository.StepTaskRepository
	configRepo repository.StepConfigRepository
	exporter   *export.Service
	logger     *slog.Logger
}

func NewTasksService(jobsRepo repository.JobRecordRepository, tasksRepo repository.StepTaskRepository, configRepo repository.StepConfigRepository, exporter *export.Service, logger *slog.Logger) *TasksService {
	return &TasksService{
		jobsRepo:   jobsRepo,
		tasksRepo:  tasksRepo,
		configRepo: configRepo,
		exporter:   exporter,
		logger:     logger,
	}
}

func (s *TasksService) ListJobRecords(ctx context.Context, _ *v1.ListJobRecordsRequest) (*v1.ListJobRecordsResponse, error) {
	rows, err := s.jobsRepo.ListRows(ctx)
	if err != nil {
		return nil, common.InternalError("list job records failed")
	}
	out := make([]*v1.JobRecord, 0, len(rows))
	for i := range rows {
		out = append(out, jobRecordToProto(&rows[i]))
	}
	return &v1.ListJobRecordsResponse{Records: out}, nil
}

func (s *TasksService) ListStepTasks(ctx context.Context, req *v1.ListStepTasksRequest) (*v1.ListStepTasksResponse, error) {
	filter, err := taskFilterFromProto(req.GetJobId(), req.GetStep(), req.GetStatus(), req.GetPlanFrom(), req.GetPlanTo())
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasksRepo.ListTasks(ctx, filter)
	if err != nil {
		return nil, common.InternalError("list step tasks failed")
	}
	out := make([]*v1.StepTask, 0, len(tasks))
	for i := range tasks {
		out = append(out, stepTaskToProto(&tasks[i]))
	}
	return &v1.ListStepTasksResponse{Tasks: out}, nil
}

func (s *TasksService) CompleteStepTask(ctx context.Context, req *v1.CompleteStepTaskRequest) (*v1.CompleteStepTaskResponse, error) {
	taskID, err := uuid.Parse(strings.TrimSpace(req.GetTaskId()))
	if err != nil {
		return nil, common.InvalidArgumentError("task_id must be a UUID")
	}
	if strings.TrimSpace(req.GetWorkerName()) == "" {
		return nil, common.InvalidArgumentError("worker_name is required")
	}
	if req.GetCompletedQty() < 0 {
		return nil, common.InvalidArgumentError("completed_qty must not be negative")
	}

	task, err := s.tasksRepo.Complete(ctx, entity.CompletionInput{
		TaskID:       taskID,
		WorkerName:   req.GetWorkerName(),
		DelayReason:  req.GetDelayReason(),
		CompletedQty: int(req.GetCompletedQty()),
		DelayHours:   req.GetDelayHours(),
	})
	if err != nil {
		return nil, common.InternalError("complete step task failed")
	}
	return &v1.CompleteStepTaskResponse{Task: stepTaskToProto(task)}, nil
}

func (s *TasksService) GetStepConfigs(ctx context.Context, _ *v1.GetStepConfigsRequest) (*v1.GetStepConfigsResponse, error) {
	configs, err := s.configRepo.List(ctx)
	if err != nil {
		return nil, common.InternalError("list step configs failed")
	}
	out := make([]*v1.StepConfig, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, &v1.StepConfig{
			Step:           int32(cfg.Step),
			StepName:       cfg.StepName,
			DoerEmails:     cfg.DoerEmails,
			VisibleColumns: cfg.VisibleColumns,
		})
	}
	return &v1.GetStepConfigsResponse{Configs: out}, nil
}

func (s *TasksService) SaveStepConfig(ctx context.Context, req *v1.SaveStepConfigRequest) (*v1.SaveStepConfigResponse, error) {
	cfg := req.GetConfig()
	if cfg == nil {
		return nil, common.InvalidArgumentError("config is required")
	}
	step := int(cfg.GetStep())
	if step < 1 || step > constants.StepCount {
		return nil, common.InvalidArgumentErrorf("step must be between 1 and %d", constants.StepCount)
	}

	err := s.configRepo.Save(ctx, entity.StepConfig{
		Step:           step,
		StepName:       cfg.GetStepName(),
		DoerEmails:     cfg.GetDoerEmails(),
		VisibleColumns: cfg.GetVisibleColumns(),
	})
	if err != nil {
		s.logger.Error("save step config failed", "step", step, "error", err)
		return nil, common.InternalError("save step config failed")
	}
	return &v1.SaveStepConfigResponse{}, nil
}

func (s *TasksService) ExportStepTasks(ctx context.Context, req *v1.ExportStepTasksRequest) (*v1.ExportStepTasksResponse, error) {
	filter, err := taskFilterFromProto("", 0, req.GetStatus(), req.GetPlanFrom(), req.GetPlanTo())
	if err != nil {
		return nil, err
	}
	data, err := s.exporter.ExportStepTasksXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportStepTasksResponse{Xlsx: data}, nil
}

func taskFilterFromProto(jobID string, step int32, taskStatus, planFrom, planTo string) (repository.TaskFilter, error) {
	var filter repository.TaskFilter

	if jobID = strings.TrimSpace(jobID); jobID != "" {
		id, err := uuid.Parse(jobID)
		if err != nil {
			return filter, common.InvalidArgumentError("job_id must be a UUID")
		}
		filter.JobID = id
	}
	if step != 0 {
		if step < 1 || step > constants.StepCount {
			return filter, common.InvalidArgumentErrorf("step must be between 1 and %d", constants.StepCount)
		}
		filter.Step = int(step)
	}
	if taskStatus != "" {
		filter.Status = constants.TaskStatus(taskStatus)
	}

	var err error
	if filter.PlanFrom, err = parseDate(planFrom); err != nil {
		return filter, common.InvalidArgumentError(err.Error())
	}
	if filter.PlanTo, err = parseDate(planTo); err != nil {
		return filter, common.InvalidArgumentError(err.Error())
	}
	return filter, nil
}

func jobRecordToProto(r *entity.JobRecord) *v1.JobRecord {
	return &v1.JobRecord{
		Id:            r.ID.String(),
		RowIndex:      int32(r.RowIndex),
		SourceDate:    formatTime(r.SourceDate),
		OtdType:       r.OTDType,
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
		Quantity:      int32(r.Quantity),
		LeadTime:      formatTime(r.LeadTime),
		RepeatNew:     r.RepeatNew,
	}
}

func stepTaskToProto(t *entity.StepTask) *v1.StepTask {
	return &v1.StepTask{
		Id:           t.ID.String(),
		JobId:        t.JobID.String(),
		Step:         int32(t.Step),
		StepName:     t.StepName,
		PlanDate:     formatTimePtr(t.PlanDate),
		ActualDate:   formatTimePtr(t.ActualDate),
		Status:       string(t.Status),
		DelayReason:  t.DelayReason,
		WorkerName:   t.WorkerName,
		CompletedQty: int32(t.CompletedQty),
		DelayHours:   t.DelayHours,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
