package checklist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dibiaa/fms-tracker/internal/calendar"
)

func istDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, calendar.Location())
}

func TestGenerateDailySkipsSundays(t *testing.T) {
	// Mon Dec 22 2025 through year end: Dec 28 is a Sunday.
	def := Definition{
		Description:   "Machine oiling log",
		EmployeeEmail: "ops@dibiaa.example",
		Frequency:     FrequencyDaily,
		StartDate:     istDate(2025, time.December, 22),
	}

	tasks, err := Generate(def, nil)
	require.NoError(t, err)

	var dates []string
	for _, task := range tasks {
		assert.NotEqual(t, time.Sunday, task.TargetDate.Weekday())
		dates = append(dates, task.TargetDate.Format("2006-01-02"))
	}
	assert.NotContains(t, dates, "2025-12-28")
	// Dec 22..31 has 10 days, one Sunday.
	assert.Len(t, tasks, 9)
}

func TestGenerateStartDateAlwaysIncluded(t *testing.T) {
	// Sunday start: kept anyway, later Sundays skipped.
	start := istDate(2025, time.December, 21)
	require.Equal(t, time.Sunday, start.Weekday())

	tasks, err := Generate(Definition{
		Description: "Weekly stock count",
		Frequency:   FrequencyWeekly,
		StartDate:   start,
	}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, tasks)

	assert.True(t, tasks[0].TargetDate.Equal(start))
	for _, task := range tasks[1:] {
		assert.NotEqual(t, time.Sunday, task.TargetDate.Weekday())
	}
	// Dec 28 (the only other weekly hit in 2025) is a Sunday, so just the start.
	assert.Len(t, tasks, 1)
}

func TestGenerateSkipsHolidays(t *testing.T) {
	holidays := HolidaySet{"2025-12-25": {}}

	tasks, err := Generate(Definition{
		Description: "Cash drawer reconciliation",
		Frequency:   FrequencyDaily,
		StartDate:   istDate(2025, time.December, 24),
	}, holidays)
	require.NoError(t, err)

	for _, task := range tasks {
		assert.NotEqual(t, "2025-12-25", task.TargetDate.Format("2006-01-02"))
	}
}

func TestGenerateStopsAtYearEnd(t *testing.T) {
	tasks, err := Generate(Definition{
		Description: "Quarterly die audit",
		Frequency:   FrequencyQuarterly,
		StartDate:   istDate(2025, time.February, 3),
	}, nil)
	require.NoError(t, err)

	// Feb 3, May 3, Nov 3 — Aug 3 lands on a Sunday and drops out.
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.Equal(t, 2025, task.TargetDate.Year())
	}
}

func TestGenerateSharesOneUID(t *testing.T) {
	tasks, err := Generate(Definition{
		Description: "Monthly safety walk",
		Frequency:   FrequencyMonthly,
		StartDate:   istDate(2025, time.January, 6),
	}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, tasks)

	uid := tasks[0].UID
	assert.Regexp(t, `^CHK-\d{4}$`, uid)
	for _, task := range tasks {
		assert.Equal(t, uid, task.UID, "all occurrences of one definition share a uid")
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	_, err := Generate(Definition{Frequency: "Fortnightly", StartDate: istDate(2025, time.March, 3)}, nil)
	require.Error(t, err)

	_, err = Generate(Definition{Frequency: FrequencyDaily}, nil)
	require.Error(t, err)
}
