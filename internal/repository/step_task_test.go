package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/gen/ent"
	"github.com/dibiaa/fms-tracker/internal/entity"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedJob(t *testing.T, client *ent.Client, rowIndex int) entity.JobRecord {
	t.Helper()
	repo := NewJobRecordRepository(client, slog.New(slog.DiscardHandler))
	_, err := repo.UpsertRows(context.Background(), []entity.JobRecord{{
		RowIndex:  rowIndex,
		JobNumber: "JOB-7001",
		BoxStyle:  "Magnetic",
	}})
	require.NoError(t, err)

	rows, err := repo.ListRows(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	return rows[len(rows)-1]
}

func TestUpsertPlansCreatesPending(t *testing.T) {
	client := openTestClient(t)
	job := seedJob(t, client, 1)
	repo := NewStepTaskRepository(client, slog.New(slog.DiscardHandler))

	plan := time.Date(2025, time.January, 8, 9, 0, 0, 0, time.UTC)
	n, err := repo.UpsertPlans(context.Background(), []entity.PlanUpdate{
		{JobID: job.ID, Step: 1, PlanDate: plan},
		{JobID: job.ID, Step: 2, PlanDate: plan.AddDate(0, 0, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	tasks, err := repo.ListTasks(context.Background(), TaskFilter{JobID: job.ID})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, constants.TaskStatusPending, task.Status)
		assert.NotNil(t, task.PlanDate)
		assert.Nil(t, task.ActualDate)
	}
}

func TestUpsertPlansMovesPendingPlan(t *testing.T) {
	client := openTestClient(t)
	job := seedJob(t, client, 1)
	repo := NewStepTaskRepository(client, slog.New(slog.DiscardHandler))

	first := time.Date(2025, time.January, 8, 9, 0, 0, 0, time.UTC)
	_, err := repo.UpsertPlans(context.Background(), []entity.PlanUpdate{{JobID: job.ID, Step: 3, PlanDate: first}})
	require.NoError(t, err)

	moved := first.AddDate(0, 0, 2)
	n, err := repo.UpsertPlans(context.Background(), []entity.PlanUpdate{{JobID: job.ID, Step: 3, PlanDate: moved}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	tasks, err := repo.ListTasks(context.Background(), TaskFilter{JobID: job.ID, Step: 3})
	require.NoError(t, err)
	require.Len(t, tasks, 1, "one row per (job, step), re-planning never duplicates")
	require.NotNil(t, tasks[0].PlanDate)
	assert.True(t, tasks[0].PlanDate.Equal(moved))
}

func TestUpsertPlansFreezesCompleted(t *testing.T) {
	client := openTestClient(t)
	job := seedJob(t, client, 1)
	repo := NewStepTaskRepository(client, slog.New(slog.DiscardHandler))

	plan := time.Date(2025, time.January, 8, 9, 0, 0, 0, time.UTC)
	_, err := repo.UpsertPlans(context.Background(), []entity.PlanUpdate{{JobID: job.ID, Step: 4, PlanDate: plan}})
	require.NoError(t, err)

	tasks, err := repo.ListTasks(context.Background(), TaskFilter{JobID: job.ID, Step: 4})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	completed, err := repo.Complete(context.Background(), entity.CompletionInput{
		TaskID:       tasks[0].ID,
		WorkerName:   "S. Iyer",
		CompletedQty: 500,
	})
	require.NoError(t, err)
	require.NotNil(t, completed.ActualDate)

	n, err := repo.UpsertPlans(context.Background(), []entity.PlanUpdate{{JobID: job.ID, Step: 4, PlanDate: plan.AddDate(0, 0, 5)}})
	require.NoError(t, err)
	assert.Zero(t, n, "completed task ignores new plans")

	after, err := repo.ListTasks(context.Background(), TaskFilter{JobID: job.ID, Step: 4})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, constants.TaskStatusCompleted, after[0].Status)
	require.NotNil(t, after[0].PlanDate)
	assert.True(t, after[0].PlanDate.Equal(plan), "plan date frozen at completion")
	assert.Equal(t, "S. Iyer", after[0].WorkerName)
}

func TestCompletedByJobLookup(t *testing.T) {
	client := openTestClient(t)
	job := seedJob(t, client, 1)
	repo := NewStepTaskRepository(client, slog.New(slog.DiscardHandler))

	plan := time.Date(2025, time.January, 8, 9, 0, 0, 0, time.UTC)
	_, err := repo.UpsertPlans(context.Background(), []entity.PlanUpdate{
		{JobID: job.ID, Step: 1, PlanDate: plan},
		{JobID: job.ID, Step: 2, PlanDate: plan},
	})
	require.NoError(t, err)

	done, err := repo.CompletedByJob(context.Background())
	require.NoError(t, err)
	assert.Empty(t, done, "pending tasks are not completions")

	tasks, err := repo.ListTasks(context.Background(), TaskFilter{JobID: job.ID, Step: 1})
	require.NoError(t, err)
	_, err = repo.Complete(context.Background(), entity.CompletionInput{TaskID: tasks[0].ID, WorkerName: "A. Khan"})
	require.NoError(t, err)

	done, err = repo.CompletedByJob(context.Background())
	require.NoError(t, err)
	require.Contains(t, done, job.ID)
	assert.Contains(t, done[job.ID], 1)
	assert.NotContains(t, done[job.ID], 2)
}

func TestJobRecordUpsertKeepsIdentity(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRecordRepository(client, slog.New(slog.DiscardHandler))

	_, err := repo.UpsertRows(context.Background(), []entity.JobRecord{{
		RowIndex:    7,
		JobNumber:   "JOB-9001",
		CompanyName: "First Name",
	}})
	require.NoError(t, err)

	before, err := repo.ListRows(context.Background())
	require.NoError(t, err)
	require.Len(t, before, 1)

	_, err = repo.UpsertRows(context.Background(), []entity.JobRecord{{
		RowIndex:    7,
		JobNumber:   "JOB-9001",
		CompanyName: "Renamed Company",
	}})
	require.NoError(t, err)

	after, err := repo.ListRows(context.Background())
	require.NoError(t, err)
	require.Len(t, after, 1, "row position is the identity key")
	assert.Equal(t, before[0].ID, after[0].ID, "stored id survives re-sync")
	assert.Equal(t, "Renamed Company", after[0].CompanyName)
}
