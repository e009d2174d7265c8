package source

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dibiaa/fms-tracker/internal/calendar"
)

func writeWorkbook(t *testing.T, tab string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	_, err := f.NewSheet(tab)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(tab, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "dibiaa.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestFetch_ParsesRows(t *testing.T) {
	path := writeWorkbook(t, "DIBIAA", [][]any{
		{"Timestamp", "OTD", "Job No", "Order By", "Company", "Box Type", "Box Style", "Box Color", "Printing", "Print Color", "Specification", "City", "Qty", "Lead Time", "Repeat/New"},
		{"10/01/2024 10:30:00", "OTD", "J-101", "Ravi", "Acme Pack", "Foam", "Magnetic", "Blue", "Screen print", "White", "Inner box", "Pune", "1,200", "31/01/2024", "New"},
		{"", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	})

	r := NewXLSXReader(Config{Path: path, TabName: "DIBIAA", HeaderRow: 1}, nil)
	recs, err := r.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, 2, rec.RowIndex)
	assert.Equal(t, "J-101", rec.JobNumber)
	assert.Equal(t, "Magnetic", rec.BoxStyle)
	assert.Equal(t, 1200, rec.Quantity)
	assert.Equal(t, time.Date(2024, time.January, 10, 10, 30, 0, 0, calendar.Location()), rec.SourceDate)
	assert.Equal(t, time.Date(2024, time.January, 31, 0, 0, 0, 0, calendar.Location()), rec.LeadTime)
}

func TestFetch_MalformedDatesDegradeToZero(t *testing.T) {
	path := writeWorkbook(t, "DIBIAA", [][]any{
		{"Timestamp"},
		{"not a date", "", "J-7", "", "", "", "", "", "", "", "", "", "abc", "soon", ""},
	})

	r := NewXLSXReader(Config{Path: path, TabName: "DIBIAA", HeaderRow: 1}, nil)
	recs, err := r.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].SourceDate.IsZero())
	assert.True(t, recs[0].LeadTime.IsZero())
	assert.Zero(t, recs[0].Quantity)
}

func TestFetch_MissingFileFailsFast(t *testing.T) {
	r := NewXLSXReader(Config{Path: "/nonexistent/sheet.xlsx", TabName: "DIBIAA"}, nil)
	_, err := r.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewXLSXReader(Config{Path: "irrelevant.xlsx", TabName: "DIBIAA"}, nil)
	_, err := r.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseSheetTime_Layouts(t *testing.T) {
	loc := calendar.Location()
	cases := map[string]time.Time{
		"10/01/2024 10:30:00": time.Date(2024, time.January, 10, 10, 30, 0, 0, loc),
		"10/01/2024 10:30":    time.Date(2024, time.January, 10, 10, 30, 0, 0, loc),
		"10-01-2024 10:30:00": time.Date(2024, time.January, 10, 10, 30, 0, 0, loc),
		"10/01/2024":          time.Date(2024, time.January, 10, 0, 0, 0, 0, loc),
		"5/1/2024":            time.Date(2024, time.January, 5, 0, 0, 0, 0, loc),
		"2024-01-10 10:30:00": time.Date(2024, time.January, 10, 10, 30, 0, 0, loc),
		"2024-01-10":          time.Date(2024, time.January, 10, 0, 0, 0, 0, loc),
		"":                    {},
		"tomorrow":            {},
	}
	for input, want := range cases {
		assert.Equal(t, want, ParseSheetTime(input), "input %q", input)
	}
}
