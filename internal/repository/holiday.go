package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/dibiaa/fms-tracker/gen/ent"
	"github.com/dibiaa/fms-tracker/gen/ent/holiday"
)

type HolidayRepository interface {
	Add(ctx context.Context, date time.Time, name string) error
	// Dates returns every holiday as a set keyed by YYYY-MM-DD.
	Dates(ctx context.Context) (map[string]struct{}, error)
}

type holidayRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewHolidayRepository(client *ent.Client, logger *slog.Logger) HolidayRepository {
	return &holidayRepo{client: client, logger: logger}
}

func (r *holidayRepo) Add(ctx context.Context, date time.Time, name string) error {
	_, err := r.client.Holiday.Create().
		SetHolidayDate(date).
		SetName(name).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to add holiday", "date", date, "error", err)
	}
	return err
}

func (r *holidayRepo) Dates(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.client.Holiday.Query().Order(holiday.ByHolidayDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list holidays", "error", err)
		return nil, err
	}
	dates := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		dates[row.HolidayDate.Format("2006-01-02")] = struct{}{}
	}
	return dates, nil
}
