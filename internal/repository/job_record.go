package repository

import (
	"context"
	"log/slog"

	"github.com/dibiaa/fms-tracker/gen/ent"
	"github.com/dibiaa/fms-tracker/gen/ent/jobrecord"
	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/utils"
)

type JobRecordRepository interface {
	// UpsertRows writes raw sheet rows keyed by row position: business
	// attributes are overwritten on conflict, the stored id never is.
	UpsertRows(ctx context.Context, rows []entity.JobRecord) (int, error)
	ListRows(ctx context.Context) ([]entity.JobRecord, error)
}

type jobRecordRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRecordRepository(client *ent.Client, logger *slog.Logger) JobRecordRepository {
	return &jobRecordRepo{client: client, logger: logger}
}

func (r *jobRecordRepo) UpsertRows(ctx context.Context, rows []entity.JobRecord) (int, error) {
	written := 0
	for i := range rows {
		row := &rows[i]
		if err := r.upsertOne(ctx, row); err != nil {
			r.logger.Error("job record upsert failed", "row_index", row.RowIndex, "error", err)
			return written, err
		}
		written++
	}
	r.logger.Info("jobs.upsert.ok", "rows", written)
	return written, nil
}

func (r *jobRecordRepo) upsertOne(ctx context.Context, row *entity.JobRecord) error {
	n, err := r.client.JobRecord.
		Update().
		Where(jobrecord.RowIndex(row.RowIndex)).
		SetNillableSourceDate(utils.NilIfZero(row.SourceDate)).
		SetOtdType(row.OTDType).
		SetJobNumber(row.JobNumber).
		SetOrderBy(row.OrderBy).
		SetCompanyName(row.CompanyName).
		SetBoxType(row.BoxType).
		SetBoxStyle(row.BoxStyle).
		SetBoxColor(row.BoxColor).
		SetPrintingType(row.PrintingType).
		SetPrintingColor(row.PrintingColor).
		SetSpecification(row.Specification).
		SetCity(row.City).
		SetQuantity(row.Quantity).
		SetNillableLeadTime(utils.NilIfZero(row.LeadTime)).
		SetRepeatNew(row.RepeatNew).
		Save(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.JobRecord.
		Create().
		SetRowIndex(row.RowIndex).
		SetNillableSourceDate(utils.NilIfZero(row.SourceDate)).
		SetOtdType(row.OTDType).
		SetJobNumber(row.JobNumber).
		SetOrderBy(row.OrderBy).
		SetCompanyName(row.CompanyName).
		SetBoxType(row.BoxType).
		SetBoxStyle(row.BoxStyle).
		SetBoxColor(row.BoxColor).
		SetPrintingType(row.PrintingType).
		SetPrintingColor(row.PrintingColor).
		SetSpecification(row.Specification).
		SetCity(row.City).
		SetQuantity(row.Quantity).
		SetNillableLeadTime(utils.NilIfZero(row.LeadTime)).
		SetRepeatNew(row.RepeatNew).
		Save(ctx)
	return err
}

func (r *jobRecordRepo) ListRows(ctx context.Context) ([]entity.JobRecord, error) {
	recs, err := r.client.JobRecord.Query().Order(jobrecord.ByRowIndex()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list job records", "error", err)
		return nil, err
	}
	out := make([]entity.JobRecord, len(recs))
	for i, rec := range recs {
		out[i] = *utils.ToJobRecord(rec)
	}
	return out, nil
}
