package calendar

import (
	"sync"
	"time"
)

// All plan dates live in India Standard Time. Crossing midnight in the wrong
// zone shifts a plan by a full day, so every entry point normalizes into IST
// before doing arithmetic.
const timezoneName = "Asia/Kolkata"

// Business-hour window: plans land at or after 09:00 and strictly before
// 19:00. A timestamp at/after the evening bound rolls to the next morning.
const (
	MorningHour = 9
	EveningHour = 19
)

// The factory rests on Sundays; Sundays never consume workday quota and no
// plan date may land on one.
const restDay = time.Sunday

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location returns the IST location, falling back to a fixed +05:30 zone if
// the tzdata lookup fails (e.g. stripped containers).
func Location() *time.Location {
	locOnce.Do(func() {
		l, err := time.LoadLocation(timezoneName)
		if err != nil {
			l = time.FixedZone("IST", 5*3600+1800)
		}
		loc = l
	})
	return loc
}

// AddWorkdays advances start by floor(days) working days, where a day that
// lands on the rest day does not count toward the quota. The fractional
// remainder of days is applied as additional hours after the whole-day
// advancement. The result is normalized into the business-hour window.
//
// A zero start yields a zero result: callers treat missing basis timestamps
// as "no plan", never as an error.
//
// AddWorkdays(t, 0) returns t normalized into the window. Pure function,
// safe for concurrent use.
func AddWorkdays(start time.Time, days float64) time.Time {
	if start.IsZero() || days < 0 {
		return time.Time{}
	}
	t := start.In(Location())

	whole := int(days)
	for consumed := 0; consumed < whole; {
		t = t.AddDate(0, 0, 1)
		if t.Weekday() != restDay {
			consumed++
		}
	}

	if frac := days - float64(whole); frac > 0 {
		t = t.Add(time.Duration(frac * 24 * float64(time.Hour)))
	}

	return Normalize(t)
}

// Normalize clamps a timestamp into the business window on a working day:
// rest days shift forward, early mornings snap to MorningHour, and anything
// at or past EveningHour rolls to the next day's morning.
func Normalize(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	t = t.In(Location())

	for {
		switch {
		case t.Weekday() == restDay:
			t = morningOf(t.AddDate(0, 0, 1))
		case t.Hour() < MorningHour:
			t = morningOf(t)
		case t.Hour() >= EveningHour:
			t = morningOf(t.AddDate(0, 0, 1))
		default:
			return t
		}
	}
}

func morningOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), MorningHour, 0, 0, 0, Location())
}
