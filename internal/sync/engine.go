// Package sync drives one full pass of the plan-date pipeline: fetch the
// sheet, persist raw rows, and rebuild every job's step plan dates.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/resolver"
)

// SourceReader fetches the current sheet snapshot.
type SourceReader interface {
	Fetch(ctx context.Context) ([]entity.JobRecord, error)
}

// JobStore persists raw sheet rows and returns them with stored identities.
type JobStore interface {
	UpsertRows(ctx context.Context, rows []entity.JobRecord) (int, error)
	ListRows(ctx context.Context) ([]entity.JobRecord, error)
}

// TaskStore reads completion state and applies plan batches.
type TaskStore interface {
	CompletedByJob(ctx context.Context) (map[uuid.UUID]map[int]time.Time, error)
	UpsertPlans(ctx context.Context, updates []entity.PlanUpdate) (int, error)
}

// Report summarizes one sync run. On error the counts cover the work that
// finished before the failure.
type Report struct {
	RowsFetched   int           `json:"rows_fetched"`
	RowsUpserted  int           `json:"rows_upserted"`
	TasksUpserted int           `json:"tasks_upserted"`
	Elapsed       time.Duration `json:"elapsed"`
}

// Engine serializes sheet synchronization. Overlapping calls queue on the
// internal mutex rather than interleaving writes.
type Engine struct {
	mu sync.Mutex

	source SourceReader
	jobs   JobStore
	tasks  TaskStore
	rules  *resolver.RuleSet
	logger *slog.Logger

	fetchTimeout time.Duration
	chunkSize    int
}

type Option func(*Engine)

func WithFetchTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.fetchTimeout = d
		}
	}
}

// WithChunkSize bounds how many jobs each plan-upsert batch covers.
func WithChunkSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.chunkSize = n
		}
	}
}

func NewEngine(source SourceReader, jobs JobStore, tasks TaskStore, rules *resolver.RuleSet, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		source:       source,
		jobs:         jobs,
		tasks:        tasks,
		rules:        rules,
		logger:       logger,
		fetchTimeout: 2 * time.Minute,
		chunkSize:    50,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// SyncAll runs one full synchronization pass. A fetch failure aborts before
// any write; a mid-batch storage failure returns the counts written so far.
func (e *Engine) SyncAll(ctx context.Context) (Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	var rep Report

	fetchCtx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
	rows, err := e.source.Fetch(fetchCtx)
	cancel()
	if err != nil {
		e.logger.Error("sync aborted before writing", "stage", "fetch", "error", err)
		return rep, fmt.Errorf("fetch sheet: %w", err)
	}
	rep.RowsFetched = len(rows)

	rep.RowsUpserted, err = e.jobs.UpsertRows(ctx, rows)
	if err != nil {
		rep.Elapsed = time.Since(start)
		return rep, fmt.Errorf("upsert job records: %w", err)
	}

	// Re-read so every row carries its stored id, including rows that
	// existed before this run.
	stored, err := e.jobs.ListRows(ctx)
	if err != nil {
		rep.Elapsed = time.Since(start)
		return rep, fmt.Errorf("list job records: %w", err)
	}

	done, err := e.tasks.CompletedByJob(ctx)
	if err != nil {
		rep.Elapsed = time.Since(start)
		return rep, fmt.Errorf("load completed steps: %w", err)
	}

	updates := e.resolveAll(stored, done)

	for _, chunk := range chunkByJob(updates, e.chunkSize) {
		n, err := e.tasks.UpsertPlans(ctx, chunk)
		rep.TasksUpserted += n
		if err != nil {
			rep.Elapsed = time.Since(start)
			return rep, fmt.Errorf("upsert plans: %w", err)
		}
	}

	rep.Elapsed = time.Since(start)
	e.logger.Info("sync.run.ok",
		"rows_fetched", rep.RowsFetched,
		"rows_upserted", rep.RowsUpserted,
		"tasks_upserted", rep.TasksUpserted,
		"elapsed_ms", rep.Elapsed.Milliseconds(),
	)
	return rep, nil
}

func (e *Engine) resolveAll(rows []entity.JobRecord, done map[uuid.UUID]map[int]time.Time) []entity.PlanUpdate {
	var updates []entity.PlanUpdate
	for i := range rows {
		row := &rows[i]
		attrs := resolver.AttributesFromRecord(row)
		plans := e.rules.Resolve(attrs, done[row.ID])
		for step, planDate := range plans {
			updates = append(updates, entity.PlanUpdate{
				JobID:    row.ID,
				Step:     step,
				PlanDate: planDate,
			})
		}
	}
	return updates
}

// chunkByJob splits updates into batches of at most size jobs, never
// splitting one job's steps across two batches.
func chunkByJob(updates []entity.PlanUpdate, size int) [][]entity.PlanUpdate {
	if len(updates) == 0 {
		return nil
	}
	byJob := make(map[uuid.UUID][]entity.PlanUpdate)
	var order []uuid.UUID
	for _, u := range updates {
		if _, seen := byJob[u.JobID]; !seen {
			order = append(order, u.JobID)
		}
		byJob[u.JobID] = append(byJob[u.JobID], u)
	}

	var chunks [][]entity.PlanUpdate
	var current []entity.PlanUpdate
	jobsInChunk := 0
	for _, id := range order {
		current = append(current, byJob[id]...)
		jobsInChunk++
		if jobsInChunk >= size {
			chunks = append(chunks, current)
			current = nil
			jobsInChunk = 0
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}
