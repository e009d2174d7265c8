package server

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"

	v1 "github.com/dibiaa/fms-tracker/gen/proto/fms/v1"
	"github.com/dibiaa/fms-tracker/internal/async"
	"github.com/dibiaa/fms-tracker/internal/common"
	fmssync "github.com/dibiaa/fms-tracker/internal/sync"
)

type SyncService struct {
	v1.UnimplementedSyncServiceServer
	engine *fmssync.Engine
	queue  async.Queue
	logger *slog.Logger
}

func NewSyncService(engine *fmssync.Engine, queue async.Queue, logger *slog.Logger) *SyncService {
	return &SyncService{engine: engine, queue: queue, logger: logger}
}

// SyncSheet implements v1.SyncServiceServer
func (s *SyncService) SyncSheet(ctx context.Context, req *v1.SyncSheetRequest) (*v1.SyncSheetResponse, error) {
	traceID := req.GetTraceId()
	if traceID == "" {
		traceID = uuid.NewString()
	}

	if req.GetAsync() {
		if err := s.queue.Enqueue(ctx, async.Job{SubmittedAt: time.Now(), TraceID: traceID}); err != nil {
			s.logger.Error("failed to queue sync", "trace_id", traceID, "error", err)
			return nil, common.InternalError("queue sync failed")
		}
		return &v1.SyncSheetResponse{Queued: true}, nil
	}

	s.logger.Info("starting sheet sync", "trace_id", traceID)
	rep, err := s.engine.SyncAll(ctx)
	if err != nil {
		s.logger.Error("sheet sync failed", "trace_id", traceID, "error", err)
		return nil, common.InternalErrorf("sync failed: %v", err)
	}

	return &v1.SyncSheetResponse{
		RowsFetched:   int32(rep.RowsFetched),
		RowsUpserted:  int32(rep.RowsUpserted),
		TasksUpserted: int32(rep.TasksUpserted),
		ElapsedMs:     rep.Elapsed.Milliseconds(),
	}, nil
}
