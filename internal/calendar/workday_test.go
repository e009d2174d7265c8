package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ist(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, Location())
}

func TestAddWorkdays_ZeroStart(t *testing.T) {
	assert.True(t, AddWorkdays(time.Time{}, 3).IsZero())
}

func TestAddWorkdays_NegativeDays(t *testing.T) {
	assert.True(t, AddWorkdays(ist(2024, time.January, 10, 10, 0), -1).IsZero())
}

func TestAddWorkdays_SimpleAdvance(t *testing.T) {
	// Wed Jan 10 + 1 workday = Thu Jan 11, same time of day.
	got := AddWorkdays(ist(2024, time.January, 10, 10, 0), 1)
	assert.Equal(t, ist(2024, time.January, 11, 10, 0), got)
}

func TestAddWorkdays_SkipsSunday(t *testing.T) {
	// Sat Jan 13 + 1 workday: Sunday does not consume quota, lands Mon Jan 15.
	got := AddWorkdays(ist(2024, time.January, 13, 11, 30), 1)
	assert.Equal(t, time.Monday, got.Weekday())
	assert.Equal(t, ist(2024, time.January, 15, 11, 30), got)
}

func TestAddWorkdays_SixDaysSpansTwoSundays(t *testing.T) {
	// Fri Jan 12 + 6 workdays skips Jan 14 and Jan 21.
	got := AddWorkdays(ist(2024, time.January, 12, 10, 0), 6)
	assert.Equal(t, ist(2024, time.January, 19, 10, 0), got)

	got = AddWorkdays(ist(2024, time.January, 12, 10, 0), 8)
	assert.Equal(t, ist(2024, time.January, 22, 10, 0), got)
}

func TestAddWorkdays_FractionAppliedAsHours(t *testing.T) {
	// 1.5 days = next workday + 12 hours. 10:00 + 12h = 22:00, which rolls
	// past the evening bound to the following morning.
	got := AddWorkdays(ist(2024, time.January, 10, 10, 0), 1.5)
	assert.Equal(t, ist(2024, time.January, 12, 9, 0), got)
}

func TestAddWorkdays_ZeroDaysNormalizes(t *testing.T) {
	// Policy: AddWorkdays(t, 0) returns t clamped into the business window.
	got := AddWorkdays(ist(2024, time.January, 10, 7, 15), 0)
	assert.Equal(t, ist(2024, time.January, 10, 9, 0), got)

	got = AddWorkdays(ist(2024, time.January, 10, 14, 0), 0)
	assert.Equal(t, ist(2024, time.January, 10, 14, 0), got)
}

func TestNormalize_EveningRollsToNextMorning(t *testing.T) {
	got := Normalize(ist(2024, time.January, 10, 19, 0))
	assert.Equal(t, ist(2024, time.January, 11, 9, 0), got)

	got = Normalize(ist(2024, time.January, 10, 23, 45))
	assert.Equal(t, ist(2024, time.January, 11, 9, 0), got)
}

func TestNormalize_SaturdayEveningLandsMonday(t *testing.T) {
	// Sat 19:30 -> Sun -> Mon 09:00.
	got := Normalize(ist(2024, time.January, 13, 19, 30))
	assert.Equal(t, ist(2024, time.January, 15, 9, 0), got)
}

func TestAddWorkdays_NeverLandsOnSunday(t *testing.T) {
	start := ist(2024, time.January, 1, 9, 0)
	for d := 0; d <= 30; d++ {
		for hop := 0; hop <= 10; hop++ {
			got := AddWorkdays(start.AddDate(0, 0, d), float64(hop))
			require.NotEqual(t, time.Sunday, got.Weekday(),
				"start+%dd offset %d landed on Sunday", d, hop)
			require.GreaterOrEqual(t, got.Hour(), MorningHour)
			require.Less(t, got.Hour(), EveningHour)
		}
	}
}

func TestAddWorkdays_TimezoneConsistency(t *testing.T) {
	// A UTC timestamp that is already past midnight in IST must not gain a
	// day when converted.
	utc := time.Date(2024, time.January, 9, 22, 0, 0, 0, time.UTC) // Jan 10, 03:30 IST
	got := AddWorkdays(utc, 1)
	assert.Equal(t, ist(2024, time.January, 11, 9, 0), got)
}
