package server

import (
	"context"

	"log/slog"

	v1 "github.com/dibiaa/fms-tracker/gen/proto/fms/v1"
	"github.com/dibiaa/fms-tracker/internal/common"
	"github.com/dibiaa/fms-tracker/internal/reports"
)

type ReportsService struct {
	v1.UnimplementedReportsServiceServer
	reports *reports.Service
	logger  *slog.Logger
}

func NewReportsService(svc *reports.Service, logger *slog.Logger) *ReportsService {
	return &ReportsService{reports: svc, logger: logger}
}

func (s *ReportsService) DelayByStep(ctx context.Context, req *v1.ReportWindowRequest) (*v1.DelayByStepResponse, error) {
	from, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	to, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	rows, err := s.reports.DelayByStep(ctx, from, to)
	if err != nil {
		s.logger.Error("delay report failed", "error", err)
		return nil, common.InternalError("delay report failed")
	}

	out := make([]*v1.DelayRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, &v1.DelayRow{
			Step:          int32(row.Step),
			StepName:      row.StepName,
			WorkerName:    row.WorkerName,
			TaskCount:     int32(row.TaskCount),
			AvgDelayHours: row.AvgDelayHours,
		})
	}
	return &v1.DelayByStepResponse{Rows: out}, nil
}

func (s *ReportsService) StepPerformance(ctx context.Context, req *v1.ReportWindowRequest) (*v1.StepPerformanceResponse, error) {
	from, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	to, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	rows, err := s.reports.StepPerformance(ctx, from, to)
	if err != nil {
		s.logger.Error("performance report failed", "error", err)
		return nil, common.InternalError("performance report failed")
	}

	out := make([]*v1.PerformanceRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, &v1.PerformanceRow{
			Step:      int32(row.Step),
			StepName:  row.StepName,
			Total:     int32(row.Total),
			Completed: int32(row.Completed),
			Pending:   int32(row.Pending),
			OnTime:    int32(row.OnTime),
			Delayed:   int32(row.Delayed),
		})
	}
	return &v1.StepPerformanceResponse{Rows: out}, nil
}
