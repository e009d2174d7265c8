package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/gen/ent"
	"github.com/dibiaa/fms-tracker/gen/ent/checklisttask"
	"github.com/dibiaa/fms-tracker/internal/calendar"
	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/utils"
)

type ChecklistRepository interface {
	InsertAll(ctx context.Context, tasks []entity.ChecklistTask) (int, error)
	// ListDue returns occurrences due today, plus overdue pending ones.
	ListDue(ctx context.Context, employeeEmail string, today time.Time) ([]entity.ChecklistTask, error)
	Complete(ctx context.Context, id uuid.UUID) error
}

type checklistRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewChecklistRepository(client *ent.Client, logger *slog.Logger) ChecklistRepository {
	return &checklistRepo{client: client, logger: logger}
}

func (r *checklistRepo) InsertAll(ctx context.Context, tasks []entity.ChecklistTask) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}
	builders := make([]*ent.ChecklistTaskCreate, len(tasks))
	for i, t := range tasks {
		builders[i] = r.client.ChecklistTask.Create().
			SetUID(t.UID).
			SetDescription(t.Description).
			SetEmployeeEmail(t.EmployeeEmail).
			SetEmployeeName(t.EmployeeName).
			SetFrequency(t.Frequency).
			SetTargetDate(t.TargetDate)
	}
	created, err := r.client.ChecklistTask.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("checklist bulk insert failed", "count", len(tasks), "error", err)
		return 0, err
	}
	r.logger.Info("checklist.generate.ok", "occurrences", len(created))
	return len(created), nil
}

func (r *checklistRepo) ListDue(ctx context.Context, employeeEmail string, today time.Time) ([]entity.ChecklistTask, error) {
	t := today.In(calendar.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, calendar.Location())
	q := r.client.ChecklistTask.Query().
		Where(
			checklisttask.Or(
				checklisttask.And(
					checklisttask.TargetDateLTE(day),
					checklisttask.StatusEQ(string(constants.TaskStatusPending)),
				),
				checklisttask.TargetDateEQ(day),
			),
		).
		Order(checklisttask.ByTargetDate())
	if employeeEmail != "" {
		q = q.Where(checklisttask.EmployeeEmailEqualFold(employeeEmail))
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list due checklist tasks", "error", err)
		return nil, err
	}
	out := make([]entity.ChecklistTask, len(rows))
	for i, row := range rows {
		out[i] = *utils.ToChecklistTask(row)
	}
	return out, nil
}

func (r *checklistRepo) Complete(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.ChecklistTask.UpdateOneID(id).
		SetStatus(string(constants.TaskStatusCompleted)).
		SetCompletedAt(time.Now().In(calendar.Location())).
		Save(ctx)
	if err != nil {
		r.logger.Error("checklist completion failed", "id", id, "error", err)
	}
	return err
}
