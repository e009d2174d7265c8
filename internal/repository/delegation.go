package repository

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/gen/ent"
	"github.com/dibiaa/fms-tracker/gen/ent/delegationtask"
	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/utils"
)

// StatusChange carries one delegation-task transition request.
type StatusChange struct {
	TaskID      uuid.UUID
	Status      constants.DelegationStatus
	RevisedDate *time.Time
	Remarks     string
	IsRejection bool
}

type DelegationRepository interface {
	Create(ctx context.Context, task entity.DelegationTask) (*entity.DelegationTask, error)
	ListForAssignee(ctx context.Context, email string) ([]entity.DelegationTask, error)
	ListForApprover(ctx context.Context, email string) ([]entity.DelegationTask, error)
	UpdateStatus(ctx context.Context, change StatusChange) (*entity.DelegationTask, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type delegationRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDelegationRepository(client *ent.Client, logger *slog.Logger) DelegationRepository {
	return &delegationRepo{client: client, logger: logger}
}

func (r *delegationRepo) Create(ctx context.Context, task entity.DelegationTask) (*entity.DelegationTask, error) {
	uid := task.TaskUID
	if uid == "" {
		uid = fmt.Sprintf("T-%04d", rand.Intn(9000)+1000)
	}
	created, err := r.client.DelegationTask.Create().
		SetTaskUID(uid).
		SetEmployeeName(task.EmployeeName).
		SetAssignedToEmail(task.AssignedToEmail).
		SetApproverEmail(task.ApproverEmail).
		SetDescription(task.Description).
		SetTargetDate(task.TargetDate).
		SetPriority(task.Priority).
		SetApprovalNeeded(task.ApprovalNeeded).
		SetAssignedBy(task.AssignedBy).
		SetRemarks(task.Remarks).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create delegation task", "error", err)
		return nil, err
	}
	return utils.ToDelegationTask(created), nil
}

func (r *delegationRepo) ListForAssignee(ctx context.Context, email string) ([]entity.DelegationTask, error) {
	q := r.client.DelegationTask.Query().
		Order(delegationtask.ByCreatedAt(entsql.OrderDesc()))
	if email != "" {
		q = q.Where(delegationtask.AssignedToEmailEqualFold(email))
	}
	return r.collect(ctx, q)
}

func (r *delegationRepo) ListForApprover(ctx context.Context, email string) ([]entity.DelegationTask, error) {
	q := r.client.DelegationTask.Query().
		Where(
			delegationtask.ApproverEmailEqualFold(email),
			delegationtask.StatusIn(
				string(constants.DelegationWaitingApproval),
				string(constants.DelegationRevisionRequest),
			),
		)
	return r.collect(ctx, q)
}

// UpdateStatus applies the delegation state machine:
//   - rejection restores previous_status (or Pending when it never left it);
//   - a revision request remembers the current status and the asked-for date;
//   - "Revised" adopts the requested date as the new target;
//   - anything else records the current status and moves on.
func (r *delegationRepo) UpdateStatus(ctx context.Context, change StatusChange) (*entity.DelegationTask, error) {
	task, err := r.client.DelegationTask.Get(ctx, change.TaskID)
	if err != nil {
		return nil, err
	}

	upd := r.client.DelegationTask.UpdateOne(task)
	switch {
	case change.IsRejection:
		restored := task.PreviousStatus
		if restored == "" || restored == string(constants.DelegationWaitingApproval) {
			restored = string(constants.DelegationPending)
		}
		upd.SetStatus(restored)
	case change.Status == constants.DelegationRevisionRequest:
		upd.SetPreviousStatus(task.Status).
			SetStatus(string(change.Status)).
			SetNillableRevisedDateRequest(change.RevisedDate).
			SetRevisionRemarks(change.Remarks)
	case change.Status == constants.DelegationRevised:
		upd.SetStatus(string(constants.DelegationRevised))
		if task.RevisedDateRequest != nil {
			upd.SetTargetDate(*task.RevisedDateRequest)
		}
	default:
		upd.SetPreviousStatus(task.Status).
			SetStatus(string(change.Status))
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("delegation status update failed", "task_id", change.TaskID, "error", err)
		return nil, err
	}
	return utils.ToDelegationTask(updated), nil
}

func (r *delegationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.DelegationTask.DeleteOneID(id).Exec(ctx)
}

func (r *delegationRepo) collect(ctx context.Context, q *ent.DelegationTaskQuery) ([]entity.DelegationTask, error) {
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list delegation tasks", "error", err)
		return nil, err
	}
	out := make([]entity.DelegationTask, len(rows))
	for i, row := range rows {
		out[i] = *utils.ToDelegationTask(row)
	}
	return out, nil
}
