package sync

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/resolver"
)

type fakeSource struct {
	rows []entity.JobRecord
	err  error
}

func (f *fakeSource) Fetch(context.Context) ([]entity.JobRecord, error) {
	return f.rows, f.err
}

// fakeStore backs both JobStore and TaskStore with in-memory maps, applying
// the same conflict policies as the real repositories.
type fakeStore struct {
	rowsByIndex map[int]entity.JobRecord
	tasks       map[uuid.UUID]map[int]entity.StepTask
	upsertErr   error

	jobWrites  int
	planWrites int
	batches    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rowsByIndex: make(map[int]entity.JobRecord),
		tasks:       make(map[uuid.UUID]map[int]entity.StepTask),
	}
}

func (f *fakeStore) UpsertRows(_ context.Context, rows []entity.JobRecord) (int, error) {
	for _, row := range rows {
		existing, ok := f.rowsByIndex[row.RowIndex]
		if ok {
			row.ID = existing.ID
		} else if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		f.rowsByIndex[row.RowIndex] = row
		f.jobWrites++
	}
	return len(rows), nil
}

func (f *fakeStore) ListRows(context.Context) ([]entity.JobRecord, error) {
	indexes := make([]int, 0, len(f.rowsByIndex))
	for i := range f.rowsByIndex {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	out := make([]entity.JobRecord, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, f.rowsByIndex[i])
	}
	return out, nil
}

func (f *fakeStore) CompletedByJob(context.Context) (map[uuid.UUID]map[int]time.Time, error) {
	done := make(map[uuid.UUID]map[int]time.Time)
	for jobID, byStep := range f.tasks {
		for step, task := range byStep {
			if task.Status == constants.TaskStatusCompleted && task.ActualDate != nil {
				if done[jobID] == nil {
					done[jobID] = make(map[int]time.Time)
				}
				done[jobID][step] = *task.ActualDate
			}
		}
	}
	return done, nil
}

func (f *fakeStore) UpsertPlans(_ context.Context, updates []entity.PlanUpdate) (int, error) {
	if f.upsertErr != nil {
		return 0, f.upsertErr
	}
	f.batches++
	written := 0
	for _, u := range updates {
		if f.tasks[u.JobID] == nil {
			f.tasks[u.JobID] = make(map[int]entity.StepTask)
		}
		existing, ok := f.tasks[u.JobID][u.Step]
		if ok && existing.Status == constants.TaskStatusCompleted {
			continue
		}
		planDate := u.PlanDate
		existing.JobID = u.JobID
		existing.Step = u.Step
		existing.PlanDate = &planDate
		existing.Status = constants.TaskStatusPending
		f.tasks[u.JobID][u.Step] = existing
		written++
		f.planWrites++
	}
	return written, nil
}

func (f *fakeStore) complete(jobID uuid.UUID, step int, at time.Time) {
	if f.tasks[jobID] == nil {
		f.tasks[jobID] = make(map[int]entity.StepTask)
	}
	task := f.tasks[jobID][step]
	task.JobID = jobID
	task.Step = step
	task.Status = constants.TaskStatusCompleted
	task.ActualDate = &at
	f.tasks[jobID][step] = task
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func sheetRow(rowIndex int, boxStyle, printType string, created time.Time) entity.JobRecord {
	return entity.JobRecord{
		RowIndex:     rowIndex,
		JobNumber:    "JOB-" + time.Now().Format("150405"),
		BoxStyle:     boxStyle,
		PrintingType: printType,
		SourceDate:   created,
	}
}

func TestSyncAllWritesRowsAndPlans(t *testing.T) {
	created := time.Date(2025, time.January, 6, 11, 0, 0, 0, time.UTC)
	src := &fakeSource{rows: []entity.JobRecord{
		sheetRow(1, "Magnetic", "Offset Print", created),
	}}
	store := newFakeStore()

	engine := NewEngine(src, store, store, resolver.DefaultRuleSet(), testLogger())
	rep, err := engine.SyncAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, rep.RowsFetched)
	assert.Equal(t, 1, rep.RowsUpserted)
	// Steps grounded only on the creation date are plannable right away.
	assert.Greater(t, rep.TasksUpserted, 0)

	rows, err := store.ListRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	jobID := rows[0].ID

	step1, ok := store.tasks[jobID][1]
	require.True(t, ok, "step 1 plans from row creation, must exist after first sync")
	assert.Equal(t, constants.TaskStatusPending, step1.Status)
	require.NotNil(t, step1.PlanDate)
}

func TestSyncAllIdempotent(t *testing.T) {
	created := time.Date(2025, time.January, 6, 11, 0, 0, 0, time.UTC)
	src := &fakeSource{rows: []entity.JobRecord{
		sheetRow(1, "Top-Bottom", "No print", created),
	}}
	store := newFakeStore()
	engine := NewEngine(src, store, store, resolver.DefaultRuleSet(), testLogger())

	first, err := engine.SyncAll(context.Background())
	require.NoError(t, err)

	snapshot := make(map[uuid.UUID]map[int]entity.StepTask)
	for jobID, byStep := range store.tasks {
		snapshot[jobID] = make(map[int]entity.StepTask)
		for step, task := range byStep {
			snapshot[jobID][step] = task
		}
	}

	second, err := engine.SyncAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.TasksUpserted, second.TasksUpserted)
	assert.Equal(t, snapshot, store.tasks, "no external change, no plan change")
}

func TestSyncAllUnlocksCompletedBasisSteps(t *testing.T) {
	created := time.Date(2025, time.January, 6, 11, 0, 0, 0, time.UTC)
	src := &fakeSource{rows: []entity.JobRecord{
		sheetRow(1, "Magnetic", "Screen print", created),
	}}
	// Has-inner comes from the specification column.
	src.rows[0].Specification = "with inner tray"
	store := newFakeStore()
	engine := NewEngine(src, store, store, resolver.DefaultRuleSet(), testLogger())

	_, err := engine.SyncAll(context.Background())
	require.NoError(t, err)

	rows, _ := store.ListRows(context.Background())
	jobID := rows[0].ID
	_, planned := store.tasks[jobID][9]
	assert.False(t, planned, "inner fitment needs step 8 done first")

	done := time.Date(2025, time.January, 10, 10, 0, 0, 0, time.UTC)
	store.complete(jobID, 8, done)

	_, err = engine.SyncAll(context.Background())
	require.NoError(t, err)

	step9, ok := store.tasks[jobID][9]
	require.True(t, ok, "completing step 8 unlocks inner fitment planning")
	require.NotNil(t, step9.PlanDate)
}

func TestSyncAllPreservesCompletedPlanDates(t *testing.T) {
	created := time.Date(2025, time.January, 6, 11, 0, 0, 0, time.UTC)
	src := &fakeSource{rows: []entity.JobRecord{
		sheetRow(1, "Sliding Box", "Offset Print", created),
	}}
	store := newFakeStore()
	engine := NewEngine(src, store, store, resolver.DefaultRuleSet(), testLogger())

	_, err := engine.SyncAll(context.Background())
	require.NoError(t, err)

	rows, _ := store.ListRows(context.Background())
	jobID := rows[0].ID
	original := store.tasks[jobID][1].PlanDate
	require.NotNil(t, original)

	// Worker completes step 1, then the sheet row's creation date moves.
	store.complete(jobID, 1, time.Date(2025, time.January, 8, 15, 0, 0, 0, time.UTC))
	src.rows[0].SourceDate = created.AddDate(0, 0, 3)

	_, err = engine.SyncAll(context.Background())
	require.NoError(t, err)

	frozen := store.tasks[jobID][1]
	assert.Equal(t, constants.TaskStatusCompleted, frozen.Status)
	assert.Equal(t, original, frozen.PlanDate, "completed step keeps its plan date")
}

func TestSyncAllFetchFailureWritesNothing(t *testing.T) {
	src := &fakeSource{err: errors.New("sheet unreachable")}
	store := newFakeStore()
	engine := NewEngine(src, store, store, resolver.DefaultRuleSet(), testLogger())

	rep, err := engine.SyncAll(context.Background())
	require.Error(t, err)
	assert.Zero(t, rep.RowsUpserted)
	assert.Zero(t, store.jobWrites, "fetch failure must abort before any write")
	assert.Zero(t, store.planWrites)
}

func TestSyncAllPartialFailureReportsProgress(t *testing.T) {
	created := time.Date(2025, time.January, 6, 11, 0, 0, 0, time.UTC)
	src := &fakeSource{rows: []entity.JobRecord{
		sheetRow(1, "Paper Bag", "No print", created),
	}}
	store := newFakeStore()
	store.upsertErr = errors.New("connection reset")
	engine := NewEngine(src, store, store, resolver.DefaultRuleSet(), testLogger())

	rep, err := engine.SyncAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, rep.RowsUpserted, "raw rows land before the plan batch fails")
	assert.Zero(t, rep.TasksUpserted)
}

func TestChunkByJobKeepsJobsWhole(t *testing.T) {
	jobA, jobB, jobC := uuid.New(), uuid.New(), uuid.New()
	updates := []entity.PlanUpdate{
		{JobID: jobA, Step: 1},
		{JobID: jobB, Step: 1},
		{JobID: jobA, Step: 2},
		{JobID: jobC, Step: 1},
	}

	chunks := chunkByJob(updates, 2)
	require.Len(t, chunks, 2)

	chunkOf := make(map[uuid.UUID]int)
	for i, chunk := range chunks {
		for _, u := range chunk {
			if prev, seen := chunkOf[u.JobID]; seen {
				assert.Equal(t, prev, i, "a job's steps never straddle batches")
			}
			chunkOf[u.JobID] = i
		}
	}
	assert.Len(t, chunks[0], 3, "jobs A and B with all their steps")
	assert.Len(t, chunks[1], 1)
	assert.Equal(t, jobC, chunks[1][0].JobID)
}

func TestSyncAllChunksBatches(t *testing.T) {
	created := time.Date(2025, time.January, 6, 11, 0, 0, 0, time.UTC)
	var rows []entity.JobRecord
	for i := 1; i <= 5; i++ {
		rows = append(rows, sheetRow(i, "Top-Bottom", "No print", created))
	}
	src := &fakeSource{rows: rows}
	store := newFakeStore()
	engine := NewEngine(src, store, store, resolver.DefaultRuleSet(), testLogger(), WithChunkSize(2))

	_, err := engine.SyncAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, store.batches, "5 jobs at 2 per batch")
}
