// Package checklist expands a recurring checklist definition into dated
// occurrences, one row per due date until the end of the start year.
package checklist

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dibiaa/fms-tracker/internal/calendar"
	"github.com/dibiaa/fms-tracker/internal/entity"
)

const (
	FrequencyDaily     = "Daily"
	FrequencyWeekly    = "Weekly"
	FrequencyMonthly   = "Monthly"
	FrequencyQuarterly = "Quarterly"
	FrequencyYearly    = "Yearly"
)

// Definition is one recurring checklist item as entered by a coordinator.
type Definition struct {
	Description   string
	EmployeeEmail string
	EmployeeName  string
	Frequency     string
	StartDate     time.Time
}

// HolidaySet holds company holidays keyed by YYYY-MM-DD in IST.
type HolidaySet map[string]struct{}

// Generate expands def into occurrences from the start date through December
// 31 of the start year. Sundays and holidays are skipped, except that the
// start date itself always yields an occurrence — the coordinator picked it
// deliberately.
func Generate(def Definition, holidays HolidaySet) ([]entity.ChecklistTask, error) {
	if def.StartDate.IsZero() {
		return nil, fmt.Errorf("checklist %q: start date required", def.Description)
	}
	step, err := advance(def.Frequency)
	if err != nil {
		return nil, err
	}

	uid := fmt.Sprintf("CHK-%04d", rand.Intn(9000)+1000)
	start := dayOf(def.StartDate)
	yearEnd := time.Date(start.Year(), time.December, 31, 0, 0, 0, 0, calendar.Location())

	var out []entity.ChecklistTask
	for due := start; !due.After(yearEnd); due = step(due) {
		if !due.Equal(start) && skippable(due, holidays) {
			continue
		}
		out = append(out, entity.ChecklistTask{
			UID:           uid,
			Description:   def.Description,
			EmployeeEmail: def.EmployeeEmail,
			EmployeeName:  def.EmployeeName,
			Frequency:     def.Frequency,
			TargetDate:    due,
		})
	}
	return out, nil
}

func advance(frequency string) (func(time.Time) time.Time, error) {
	switch strings.TrimSpace(frequency) {
	case FrequencyDaily:
		return func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }, nil
	case FrequencyWeekly:
		return func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }, nil
	case FrequencyMonthly:
		return func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }, nil
	case FrequencyQuarterly:
		return func(t time.Time) time.Time { return t.AddDate(0, 3, 0) }, nil
	case FrequencyYearly:
		return func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }, nil
	default:
		return nil, fmt.Errorf("unknown checklist frequency %q", frequency)
	}
}

func skippable(due time.Time, holidays HolidaySet) bool {
	if due.Weekday() == time.Sunday {
		return true
	}
	_, holiday := holidays[due.Format("2006-01-02")]
	return holiday
}

func dayOf(t time.Time) time.Time {
	t = t.In(calendar.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, calendar.Location())
}
