package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	tasksRepo repository.StepTaskRepository
	jobsRepo  repository.JobRecordRepository
	logger    *slog.Logger
}

func NewService(tasksRepo repository.StepTaskRepository, jobsRepo repository.JobRecordRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{tasksRepo: tasksRepo, jobsRepo: jobsRepo, logger: logger}
}

// ExportStepTasksXLSX returns an XLSX workbook (as bytes) of step tasks
// matching the filter, one row per (job, step), joined with job attributes.
func (s *Service) ExportStepTasksXLSX(ctx context.Context, filter repository.TaskFilter) ([]byte, error) {
	start := time.Now()

	tasks, err := s.tasksRepo.ListTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query step tasks: %w", err)
	}

	jobs, err := s.jobsRepo.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("query job records: %w", err)
	}
	jobByID := make(map[uuid.UUID]*entity.JobRecord, len(jobs))
	for i := range jobs {
		jobByID[jobs[i].ID] = &jobs[i]
	}

	f := excelize.NewFile()
	const sheet = "Step Tasks"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Job Number",
		"Company",
		"Box Style",
		"Step",
		"Step Name",
		"Plan Date",
		"Actual Date",
		"Status",
		"Worker",
		"Delay Reason",
		"Completed Qty",
		"Delay Hours",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, task := range tasks {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		jobNumber, company, boxStyle := "", "", ""
		if job := jobByID[task.JobID]; job != nil {
			jobNumber = job.JobNumber
			company = job.CompanyName
			boxStyle = job.BoxStyle
		}

		write(1, jobNumber)
		write(2, company)
		write(3, boxStyle)
		write(4, task.Step)
		write(5, task.StepName)
		write(6, formatDate(task.PlanDate))
		write(7, formatDate(task.ActualDate))
		write(8, string(task.Status))
		write(9, task.WorkerName)
		write(10, truncate(task.DelayReason, 140))
		write(11, task.CompletedQty)
		write(12, task.DelayHours)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 16) // job number
	_ = f.SetColWidth(sheet, "B", "B", 26) // company
	_ = f.SetColWidth(sheet, "C", "C", 18) // box style
	_ = f.SetColWidth(sheet, "E", "E", 24) // step name
	_ = f.SetColWidth(sheet, "F", "G", 18) // dates
	_ = f.SetColWidth(sheet, "J", "J", 48) // delay reason

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(tasks),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
