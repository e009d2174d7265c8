package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/gen/ent"
	"github.com/dibiaa/fms-tracker/gen/ent/steptask"
	"github.com/dibiaa/fms-tracker/internal/calendar"
	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/utils"
)

type StepTaskRepository interface {
	// CompletedByJob rebuilds the (job, step) -> actual completion lookup
	// from current storage. Read fresh every sync run: steps complete
	// asynchronously between runs.
	CompletedByJob(ctx context.Context) (map[uuid.UUID]map[int]time.Time, error)

	// UpsertPlans applies one batch of resolver output atomically. Conflict
	// policy: a task whose status is already Completed keeps its plan_date;
	// everything else takes the new plan_date with status Pending.
	UpsertPlans(ctx context.Context, updates []entity.PlanUpdate) (int, error)

	ListTasks(ctx context.Context, filter TaskFilter) ([]entity.StepTask, error)
	Complete(ctx context.Context, input entity.CompletionInput) (*entity.StepTask, error)
}

// TaskFilter narrows ListTasks. Zero values mean "any".
type TaskFilter struct {
	JobID    uuid.UUID
	Step     int
	Status   constants.TaskStatus
	PlanFrom *time.Time
	PlanTo   *time.Time
}

type stepTaskRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStepTaskRepository(client *ent.Client, logger *slog.Logger) StepTaskRepository {
	return &stepTaskRepo{client: client, logger: logger}
}

func (r *stepTaskRepo) CompletedByJob(ctx context.Context) (map[uuid.UUID]map[int]time.Time, error) {
	tasks, err := r.client.StepTask.Query().
		Where(
			steptask.StatusEQ(string(constants.TaskStatusCompleted)),
			steptask.ActualDateNotNil(),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load completed steps", "error", err)
		return nil, err
	}

	done := make(map[uuid.UUID]map[int]time.Time)
	for _, t := range tasks {
		byStep := done[t.JobID]
		if byStep == nil {
			byStep = make(map[int]time.Time)
			done[t.JobID] = byStep
		}
		byStep[t.Step] = *t.ActualDate
	}
	return done, nil
}

func (r *stepTaskRepo) UpsertPlans(ctx context.Context, updates []entity.PlanUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, err
	}

	written, err := upsertPlansTx(ctx, tx, updates)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("rollback failed", "error", rerr)
		}
		r.logger.Error("plan batch upsert failed", "batch_size", len(updates), "error", err)
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}

func upsertPlansTx(ctx context.Context, tx *ent.Tx, updates []entity.PlanUpdate) (int, error) {
	written := 0
	for _, u := range updates {
		existing, err := tx.StepTask.Query().
			Where(steptask.JobID(u.JobID), steptask.Step(u.Step)).
			Only(ctx)
		switch {
		case ent.IsNotFound(err):
			_, err = tx.StepTask.Create().
				SetJobID(u.JobID).
				SetStep(u.Step).
				SetPlanDate(u.PlanDate).
				SetStatus(string(constants.TaskStatusPending)).
				Save(ctx)
			if err != nil {
				return written, err
			}
			written++
		case err != nil:
			return written, err
		case existing.Status == string(constants.TaskStatusCompleted):
			// Frozen: a completed step's plan date is history, not forecast.
		default:
			_, err = tx.StepTask.UpdateOne(existing).
				SetPlanDate(u.PlanDate).
				SetStatus(string(constants.TaskStatusPending)).
				Save(ctx)
			if err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}

func (r *stepTaskRepo) ListTasks(ctx context.Context, filter TaskFilter) ([]entity.StepTask, error) {
	q := r.client.StepTask.Query()
	if filter.JobID != uuid.Nil {
		q = q.Where(steptask.JobID(filter.JobID))
	}
	if filter.Step != 0 {
		q = q.Where(steptask.Step(filter.Step))
	}
	if filter.Status != "" {
		q = q.Where(steptask.StatusEQ(string(filter.Status)))
	}
	if filter.PlanFrom != nil {
		q = q.Where(steptask.PlanDateGTE(*filter.PlanFrom))
	}
	if filter.PlanTo != nil {
		q = q.Where(steptask.PlanDateLTE(*filter.PlanTo))
	}
	tasks, err := q.Order(steptask.ByStep()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list step tasks", "error", err)
		return nil, err
	}
	out := make([]entity.StepTask, len(tasks))
	for i, t := range tasks {
		out[i] = *utils.ToStepTask(t)
	}
	return out, nil
}

func (r *stepTaskRepo) Complete(ctx context.Context, input entity.CompletionInput) (*entity.StepTask, error) {
	now := time.Now().In(calendar.Location())
	updated, err := r.client.StepTask.UpdateOneID(input.TaskID).
		SetStatus(string(constants.TaskStatusCompleted)).
		SetActualDate(now).
		SetWorkerName(input.WorkerName).
		SetDelayReason(input.DelayReason).
		SetCompletedQty(input.CompletedQty).
		SetDelayHours(input.DelayHours).
		Save(ctx)
	if err != nil {
		r.logger.Error("step task completion failed", "task_id", input.TaskID, "error", err)
		return nil, err
	}
	r.logger.Info("task.complete.ok", "task_id", input.TaskID, "step", updated.Step, "worker", input.WorkerName)
	return utils.ToStepTask(updated), nil
}
