// Package source reads production orders from the tracking workbook. It is
// the system's only unbounded external dependency: the sync engine fetches
// the whole sheet up front and never writes before the fetch has succeeded.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dibiaa/fms-tracker/internal/entity"
)

// Fixed column layout of the DIBIAA tab. The sheet is operator-maintained;
// anything beyond these 15 columns is ignored.
const (
	colTimestamp = iota
	colOTDType
	colJobNumber
	colOrderBy
	colCompanyName
	colBoxType
	colBoxStyle
	colBoxColor
	colPrintingType
	colPrintingColor
	colSpecification
	colCity
	colQuantity
	colLeadTime
	colRepeatNew
	columnCount
)

// Config locates the workbook and the row where headers sit; data starts on
// the next row. HeaderRow is 1-based, matching what operators see.
type Config struct {
	Path      string
	TabName   string
	HeaderRow int
}

// Reader yields the current sheet rows, keyed by their real row position.
type Reader interface {
	Fetch(ctx context.Context) ([]entity.JobRecord, error)
}

type xlsxReader struct {
	cfg    Config
	logger *slog.Logger
}

func NewXLSXReader(cfg Config, logger *slog.Logger) Reader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.HeaderRow < 1 {
		cfg.HeaderRow = 1
	}
	return &xlsxReader{cfg: cfg, logger: logger}
}

// Fetch reads every data row of the configured tab. Rows with no job number
// and no timestamp are treated as trailing blanks and skipped; malformed
// date or quantity cells degrade to zero values rather than failing the
// fetch.
func (r *xlsxReader) Fetch(ctx context.Context) ([]entity.JobRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(r.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", r.cfg.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.Warn("closing workbook failed", "path", r.cfg.Path, "error", cerr)
		}
	}()

	rows, err := f.GetRows(r.cfg.TabName)
	if err != nil {
		return nil, fmt.Errorf("read tab %q: %w", r.cfg.TabName, err)
	}

	var records []entity.JobRecord
	for i := r.cfg.HeaderRow; i < len(rows); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rowIndex := i + 1 // 1-based sheet position, the upsert key
		rec, ok := parseRow(rowIndex, rows[i])
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	r.logger.Info("source.fetch.ok", "path", r.cfg.Path, "tab", r.cfg.TabName, "rows", len(records))
	return records, nil
}

func parseRow(rowIndex int, cells []string) (entity.JobRecord, bool) {
	get := func(col int) string {
		if col < len(cells) {
			return strings.TrimSpace(cells[col])
		}
		return ""
	}

	if get(colJobNumber) == "" && get(colTimestamp) == "" {
		return entity.JobRecord{}, false
	}

	qty := 0
	if q := get(colQuantity); q != "" {
		if n, err := strconv.Atoi(strings.ReplaceAll(q, ",", "")); err == nil {
			qty = n
		}
	}

	return entity.JobRecord{
		RowIndex:      rowIndex,
		SourceDate:    ParseSheetTime(get(colTimestamp)),
		OTDType:       get(colOTDType),
		JobNumber:     get(colJobNumber),
		OrderBy:       get(colOrderBy),
		CompanyName:   get(colCompanyName),
		BoxType:       get(colBoxType),
		BoxStyle:      get(colBoxStyle),
		BoxColor:      get(colBoxColor),
		PrintingType:  get(colPrintingType),
		PrintingColor: get(colPrintingColor),
		Specification: get(colSpecification),
		City:          get(colCity),
		Quantity:      qty,
		LeadTime:      ParseSheetTime(get(colLeadTime)),
		RepeatNew:     get(colRepeatNew),
	}, true
}
