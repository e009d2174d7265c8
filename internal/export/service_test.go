package export

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/repository"
)

type fakeTaskRepo struct {
	tasks []entity.StepTask
}

func (f *fakeTaskRepo) CompletedByJob(context.Context) (map[uuid.UUID]map[int]time.Time, error) {
	return nil, nil
}

func (f *fakeTaskRepo) UpsertPlans(context.Context, []entity.PlanUpdate) (int, error) {
	return 0, nil
}

func (f *fakeTaskRepo) ListTasks(context.Context, repository.TaskFilter) ([]entity.StepTask, error) {
	return f.tasks, nil
}

func (f *fakeTaskRepo) Complete(context.Context, entity.CompletionInput) (*entity.StepTask, error) {
	return nil, nil
}

type fakeJobRepo struct {
	rows []entity.JobRecord
}

func (f *fakeJobRepo) UpsertRows(context.Context, []entity.JobRecord) (int, error) {
	return 0, nil
}

func (f *fakeJobRepo) ListRows(context.Context) ([]entity.JobRecord, error) {
	return f.rows, nil
}

func TestExportStepTasksXLSX(t *testing.T) {
	jobID := uuid.New()
	plan := time.Date(2025, time.January, 8, 9, 0, 0, 0, time.UTC)
	actual := time.Date(2025, time.January, 8, 14, 30, 0, 0, time.UTC)

	jobs := &fakeJobRepo{rows: []entity.JobRecord{{
		ID:          jobID,
		JobNumber:   "JOB-1042",
		CompanyName: "Acme Packaging",
		BoxStyle:    "Magnetic",
	}}}
	tasks := &fakeTaskRepo{tasks: []entity.StepTask{
		{
			JobID:      jobID,
			Step:       4,
			StepName:   constants.StepName(4),
			PlanDate:   &plan,
			ActualDate: &actual,
			Status:     constants.TaskStatusCompleted,
			WorkerName: "R. Mehta",
		},
		{
			JobID:    jobID,
			Step:     5,
			StepName: constants.StepName(5),
			PlanDate: &plan,
			Status:   constants.TaskStatusPending,
		},
	}}

	svc := NewService(tasks, jobs, slog.New(slog.DiscardHandler))
	data, err := svc.ExportStepTasksXLSX(context.Background(), repository.TaskFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Step Tasks")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two task rows")

	assert.Equal(t, "Job Number", rows[0][0])
	assert.Equal(t, "JOB-1042", rows[1][0])
	assert.Equal(t, "Acme Packaging", rows[1][1])
	assert.Equal(t, "4", rows[1][3])
	assert.Equal(t, constants.StepName(4), rows[1][4])
	assert.Equal(t, "2025-01-08 09:00", rows[1][5])
	assert.Equal(t, string(constants.TaskStatusCompleted), rows[1][7])
	assert.Equal(t, "R. Mehta", rows[1][8])

	// Pending row: no actual date cell content.
	assert.Equal(t, "", rows[2][6])
	assert.Equal(t, string(constants.TaskStatusPending), rows[2][7])
}

func TestExportEmptyResultStillValidWorkbook(t *testing.T) {
	svc := NewService(&fakeTaskRepo{}, &fakeJobRepo{}, slog.New(slog.DiscardHandler))
	data, err := svc.ExportStepTasksXLSX(context.Background(), repository.TaskFilter{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Step Tasks")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
