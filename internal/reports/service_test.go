package reports

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func (f *fakeTaskRepo) ListTasks(_ context.Context, filter repository.TaskFilter) ([]entity.StepTask, error) {
	var out []entity.StepTask
	for _, task := range f.tasks {
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (f *fakeTaskRepo) Complete(context.Context, entity.CompletionInput) (*entity.StepTask, error) {
	return nil, nil
}

func completedTask(step int, worker string, delayHours float64) entity.StepTask {
	plan := time.Date(2025, time.January, 8, 9, 0, 0, 0, time.UTC)
	actual := plan.Add(time.Duration(delayHours * float64(time.Hour)))
	return entity.StepTask{
		JobID:      uuid.New(),
		Step:       step,
		Status:     constants.TaskStatusCompleted,
		WorkerName: worker,
		DelayHours: delayHours,
		PlanDate:   &plan,
		ActualDate: &actual,
	}
}

func TestDelayByStepAverages(t *testing.T) {
	repo := &fakeTaskRepo{tasks: []entity.StepTask{
		completedTask(4, "R. Mehta", 2),
		completedTask(4, "R. Mehta", 4),
		completedTask(4, "S. Iyer", 1),
		completedTask(5, "R. Mehta", 0),
		{JobID: uuid.New(), Step: 6, Status: constants.TaskStatusPending},
	}}

	svc := NewService(repo, slog.New(slog.DiscardHandler))
	rows, err := svc.DelayByStep(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3, "pending tasks stay out of the delay report")

	assert.Equal(t, 4, rows[0].Step)
	assert.Equal(t, "R. Mehta", rows[0].WorkerName)
	assert.Equal(t, 2, rows[0].TaskCount)
	assert.InDelta(t, 3.0, rows[0].AvgDelayHours, 1e-9)

	assert.Equal(t, "S. Iyer", rows[1].WorkerName)
	assert.InDelta(t, 1.0, rows[1].AvgDelayHours, 1e-9)

	assert.Equal(t, 5, rows[2].Step)
	assert.InDelta(t, 0.0, rows[2].AvgDelayHours, 1e-9)
}

func TestStepPerformanceCounts(t *testing.T) {
	onTime := completedTask(11, "Q. Desai", 0)
	late := completedTask(11, "Q. Desai", 5)
	repo := &fakeTaskRepo{tasks: []entity.StepTask{
		onTime,
		late,
		{JobID: uuid.New(), Step: 11, Status: constants.TaskStatusPending},
		{JobID: uuid.New(), Step: 12, Status: constants.TaskStatusPending},
	}}

	svc := NewService(repo, slog.New(slog.DiscardHandler))
	rows, err := svc.StepPerformance(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	qc := rows[0]
	assert.Equal(t, 11, qc.Step)
	assert.Equal(t, constants.StepName(11), qc.StepName)
	assert.Equal(t, 3, qc.Total)
	assert.Equal(t, 2, qc.Completed)
	assert.Equal(t, 1, qc.Pending)
	assert.Equal(t, 1, qc.OnTime)
	assert.Equal(t, 1, qc.Delayed)

	packing := rows[1]
	assert.Equal(t, 12, packing.Step)
	assert.Equal(t, 1, packing.Pending)
	assert.Zero(t, packing.Completed)
}
