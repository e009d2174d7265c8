package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dibiaa/fms-tracker/gen/ent"
	"github.com/dibiaa/fms-tracker/gen/ent/stepconfig"
	"github.com/dibiaa/fms-tracker/internal/entity"
)

type StepConfigRepository interface {
	List(ctx context.Context) ([]entity.StepConfig, error)
	Save(ctx context.Context, cfg entity.StepConfig) error
}

type stepConfigRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStepConfigRepository(client *ent.Client, logger *slog.Logger) StepConfigRepository {
	return &stepConfigRepo{client: client, logger: logger}
}

func (r *stepConfigRepo) List(ctx context.Context) ([]entity.StepConfig, error) {
	rows, err := r.client.StepConfig.Query().Order(stepconfig.ByStep()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list step config", "error", err)
		return nil, err
	}
	out := make([]entity.StepConfig, len(rows))
	for i, row := range rows {
		out[i] = entity.StepConfig{
			Step:           row.Step,
			StepName:       row.StepName,
			DoerEmails:     splitCSV(row.DoerEmails),
			VisibleColumns: splitCSV(row.VisibleColumns),
			UpdatedAt:      row.UpdatedAt,
		}
	}
	return out, nil
}

func (r *stepConfigRepo) Save(ctx context.Context, cfg entity.StepConfig) error {
	doers := strings.Join(cfg.DoerEmails, ",")
	cols := strings.Join(cfg.VisibleColumns, ",")

	n, err := r.client.StepConfig.Update().
		Where(stepconfig.Step(cfg.Step)).
		SetStepName(cfg.StepName).
		SetDoerEmails(doers).
		SetVisibleColumns(cols).
		Save(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.StepConfig.Create().
		SetStep(cfg.Step).
		SetStepName(cfg.StepName).
		SetDoerEmails(doers).
		SetVisibleColumns(cols).
		Save(ctx)
	return err
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
