package repository

import (
	"context"
	"log/slog"

	"github.com/dibiaa/fms-tracker/gen/ent"
	"github.com/dibiaa/fms-tracker/gen/ent/user"
	"github.com/dibiaa/fms-tracker/internal/entity"
)

type UserRepository interface {
	Upsert(ctx context.Context, u entity.User) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepo{client: client, logger: logger}
}

func (r *userRepo) Upsert(ctx context.Context, u entity.User) (*entity.User, error) {
	n, err := r.client.User.Update().
		Where(user.EmailEqualFold(u.Email)).
		SetName(u.Name).
		SetRole(u.Role).
		SetDepartment(u.Department).
		SetMobile(u.Mobile).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update user", "email", u.Email, "error", err)
		return nil, err
	}
	if n > 0 {
		return r.GetByEmail(ctx, u.Email)
	}

	created, err := r.client.User.Create().
		SetName(u.Name).
		SetRole(u.Role).
		SetDepartment(u.Department).
		SetEmail(u.Email).
		SetMobile(u.Mobile).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "email", u.Email, "error", err)
		return nil, err
	}
	return toUser(created), nil
}

func (r *userRepo) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.client.User.Query().Order(user.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	out := make([]entity.User, len(rows))
	for i, row := range rows {
		out[i] = *toUser(row)
	}
	return out, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row, err := r.client.User.Query().Where(user.EmailEqualFold(email)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return toUser(row), nil
}

func toUser(u *ent.User) *entity.User {
	return &entity.User{
		ID:         u.ID,
		Name:       u.Name,
		Role:       u.Role,
		Department: u.Department,
		Email:      u.Email,
		Mobile:     u.Mobile,
		CreatedAt:  u.CreatedAt,
	}
}
