// Package reports computes MIS summaries over persisted step tasks.
package reports

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/repository"
)

// DelayRow is the average recorded delay for one (step, worker) pair.
type DelayRow struct {
	Step          int     `json:"step"`
	StepName      string  `json:"step_name"`
	WorkerName    string  `json:"worker_name"`
	TaskCount     int     `json:"task_count"`
	AvgDelayHours float64 `json:"avg_delay_hours"`
}

// PerformanceRow counts task outcomes for one step.
type PerformanceRow struct {
	Step      int    `json:"step"`
	StepName  string `json:"step_name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
	OnTime    int    `json:"on_time"`
	Delayed   int    `json:"delayed"`
}

type Service struct {
	tasksRepo repository.StepTaskRepository
	logger    *slog.Logger
}

func NewService(tasksRepo repository.StepTaskRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{tasksRepo: tasksRepo, logger: logger}
}

// DelayByStep averages recorded delay hours over completed tasks, grouped by
// step and worker. Tasks with no recorded delay still count toward the
// average as zero-delay completions.
func (s *Service) DelayByStep(ctx context.Context, from, to *time.Time) ([]DelayRow, error) {
	tasks, err := s.tasksRepo.ListTasks(ctx, repository.TaskFilter{
		Status:   constants.TaskStatusCompleted,
		PlanFrom: from,
		PlanTo:   to,
	})
	if err != nil {
		return nil, fmt.Errorf("query completed tasks: %w", err)
	}

	type key struct {
		step   int
		worker string
	}
	sums := make(map[key]float64)
	counts := make(map[key]int)
	for _, task := range tasks {
		k := key{step: task.Step, worker: task.WorkerName}
		sums[k] += task.DelayHours
		counts[k]++
	}

	rows := make([]DelayRow, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, DelayRow{
			Step:          k.step,
			StepName:      constants.StepName(k.step),
			WorkerName:    k.worker,
			TaskCount:     n,
			AvgDelayHours: sums[k] / float64(n),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Step != rows[j].Step {
			return rows[i].Step < rows[j].Step
		}
		return rows[i].WorkerName < rows[j].WorkerName
	})

	s.logger.Info("reports.delay.ok", "groups", len(rows), "tasks", len(tasks))
	return rows, nil
}

// StepPerformance counts outcomes per step across all tasks in the window.
// A completed task is on time when its actual date is no later than its
// plan date; completions without a plan date count as on time.
func (s *Service) StepPerformance(ctx context.Context, from, to *time.Time) ([]PerformanceRow, error) {
	tasks, err := s.tasksRepo.ListTasks(ctx, repository.TaskFilter{
		PlanFrom: from,
		PlanTo:   to,
	})
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	byStep := make(map[int]*PerformanceRow)
	for _, task := range tasks {
		row := byStep[task.Step]
		if row == nil {
			row = &PerformanceRow{Step: task.Step, StepName: constants.StepName(task.Step)}
			byStep[task.Step] = row
		}
		row.Total++
		switch task.Status {
		case constants.TaskStatusCompleted:
			row.Completed++
			if lateCompletion(task) {
				row.Delayed++
			} else {
				row.OnTime++
			}
		default:
			row.Pending++
		}
	}

	rows := make([]PerformanceRow, 0, len(byStep))
	for _, row := range byStep {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Step < rows[j].Step })

	s.logger.Info("reports.performance.ok", "steps", len(rows), "tasks", len(tasks))
	return rows, nil
}

func lateCompletion(task entity.StepTask) bool {
	if task.ActualDate == nil || task.PlanDate == nil {
		return false
	}
	return task.ActualDate.After(*task.PlanDate)
}
