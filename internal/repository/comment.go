package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/gen/ent"
	"github.com/dibiaa/fms-tracker/gen/ent/taskcomment"
	"github.com/dibiaa/fms-tracker/internal/entity"
)

type CommentRepository interface {
	Add(ctx context.Context, c entity.TaskComment) (*entity.TaskComment, error)
	ListForTask(ctx context.Context, taskID uuid.UUID) ([]entity.TaskComment, error)
}

type commentRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCommentRepository(client *ent.Client, logger *slog.Logger) CommentRepository {
	return &commentRepo{client: client, logger: logger}
}

func (r *commentRepo) Add(ctx context.Context, c entity.TaskComment) (*entity.TaskComment, error) {
	created, err := r.client.TaskComment.Create().
		SetTaskID(c.TaskID).
		SetUserName(c.UserName).
		SetComment(c.Comment).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to add comment", "task_id", c.TaskID, "error", err)
		return nil, err
	}
	return toComment(created), nil
}

func (r *commentRepo) ListForTask(ctx context.Context, taskID uuid.UUID) ([]entity.TaskComment, error) {
	rows, err := r.client.TaskComment.Query().
		Where(taskcomment.TaskID(taskID)).
		Order(taskcomment.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list comments", "task_id", taskID, "error", err)
		return nil, err
	}
	out := make([]entity.TaskComment, len(rows))
	for i, row := range rows {
		out[i] = *toComment(row)
	}
	return out, nil
}

func toComment(c *ent.TaskComment) *entity.TaskComment {
	return &entity.TaskComment{
		ID:        c.ID,
		TaskID:    c.TaskID,
		UserName:  c.UserName,
		Comment:   c.Comment,
		CreatedAt: c.CreatedAt,
	}
}
