package source

import (
	"strings"
	"time"

	"github.com/dibiaa/fms-tracker/internal/calendar"
)

// Layouts the operators actually type into the sheet, most common first.
// Day-first, as the original tracking sheet is Indian-formatted.
var sheetTimeLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02-01-2006 15:04:05",
	"02/01/2006",
	"2/1/2006 15:04:05",
	"2/1/2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSheetTime parses a sheet date cell in IST. Malformed or empty cells
// yield the zero value — absence, never an error, so a bad cell only mutes
// the steps that would have used it as a basis.
func ParseSheetTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range sheetTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, calendar.Location()); err == nil {
			return t
		}
	}
	return time.Time{}
}
