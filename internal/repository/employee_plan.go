package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/dibiaa/fms-tracker/gen/ent"
	"github.com/dibiaa/fms-tracker/gen/ent/employeeplan"
	"github.com/dibiaa/fms-tracker/internal/calendar"
	"github.com/dibiaa/fms-tracker/internal/entity"
)

type EmployeePlanRepository interface {
	Save(ctx context.Context, plan entity.EmployeePlan) error
	ListRange(ctx context.Context, from, to time.Time) ([]entity.EmployeePlan, error)
}

type employeePlanRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEmployeePlanRepository(client *ent.Client, logger *slog.Logger) EmployeePlanRepository {
	return &employeePlanRepo{client: client, logger: logger}
}

func (r *employeePlanRepo) Save(ctx context.Context, plan entity.EmployeePlan) error {
	day := dayOf(plan.PlanDate)
	n, err := r.client.EmployeePlan.Update().
		Where(
			employeeplan.EmployeeEmailEqualFold(plan.EmployeeEmail),
			employeeplan.PlanDate(day),
		).
		SetPlannedCount(plan.PlannedCount).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update employee plan", "employee", plan.EmployeeEmail, "error", err)
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.EmployeePlan.Create().
		SetEmployeeEmail(plan.EmployeeEmail).
		SetPlanDate(day).
		SetPlannedCount(plan.PlannedCount).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create employee plan", "employee", plan.EmployeeEmail, "error", err)
	}
	return err
}

func (r *employeePlanRepo) ListRange(ctx context.Context, from, to time.Time) ([]entity.EmployeePlan, error) {
	rows, err := r.client.EmployeePlan.Query().
		Where(
			employeeplan.PlanDateGTE(dayOf(from)),
			employeeplan.PlanDateLTE(dayOf(to)),
		).
		Order(employeeplan.ByPlanDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list employee plans", "error", err)
		return nil, err
	}
	out := make([]entity.EmployeePlan, len(rows))
	for i, row := range rows {
		out[i] = entity.EmployeePlan{
			ID:            row.ID,
			EmployeeEmail: row.EmployeeEmail,
			PlanDate:      row.PlanDate,
			PlannedCount:  row.PlannedCount,
		}
	}
	return out, nil
}

func dayOf(t time.Time) time.Time {
	t = t.In(calendar.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, calendar.Location())
}
