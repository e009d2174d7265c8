package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	fmssync "github.com/dibiaa/fms-tracker/internal/sync"
)

// Job is one queued sync request.
type Job struct {
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// SyncQueue runs queued sheet syncs on a single worker. The engine already
// serializes on its own mutex; one worker keeps the queue from piling up
// goroutines that would only block on it.
type SyncQueue struct {
	engine  *fmssync.Engine
	logger  *slog.Logger
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*SyncQueue)

func WithQueueSize(n int) Option {
	return func(q *SyncQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithRunTimeout(d time.Duration) Option {
	return func(q *SyncQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewSyncQueue(engine *fmssync.Engine, logger *slog.Logger, opts ...Option) *SyncQueue {
	q := &SyncQueue{
		engine:  engine,
		logger:  logger,
		timeout: 5 * time.Minute,
		ch:      make(chan Job, 16),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *SyncQueue) start() {
	q.once.Do(func() {
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			q.logger.Info("sync worker started")

			for job := range q.ch {
				ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
				rep, err := q.engine.SyncAll(ctx)
				cancel()

				if err != nil {
					q.logger.Error("queued sync failed",
						"trace_id", job.TraceID,
						"queued_ms", time.Since(job.SubmittedAt).Milliseconds(),
						"error", err)
				} else {
					q.logger.Info("queued sync finished",
						"trace_id", job.TraceID,
						"rows", rep.RowsUpserted,
						"tasks", rep.TasksUpserted)
				}
			}

			q.logger.Info("sync worker stopped")
		}()
	})
}

func (q *SyncQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "trace_id", job.TraceID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued sheet sync", "trace_id", job.TraceID)
	default:
		q.logger.Warn("queue full, applying backpressure", "trace_id", job.TraceID)
		q.ch <- job
	}
	return nil
}

func (q *SyncQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
