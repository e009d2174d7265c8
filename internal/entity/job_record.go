package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobRecord is one production order imported from the sheet, for data
// transfer between layers. RowIndex is the sheet row position and the
// natural key for upsert matching; ID is assigned by storage.
type JobRecord struct {
	ID            uuid.UUID `json:"id"`
	RowIndex      int       `json:"row_index"`
	SourceDate    time.Time `json:"source_date"`
	OTDType       string    `json:"otd_type"`
	JobNumber     string    `json:"job_number"`
	OrderBy       string    `json:"order_by"`
	CompanyName   string    `json:"company_name"`
	BoxType       string    `json:"box_type"`
	BoxStyle      string    `json:"box_style"`
	BoxColor      string    `json:"box_color"`
	PrintingType  string    `json:"printing_type"`
	PrintingColor string    `json:"printing_color"`
	Specification string    `json:"specification"`
	City          string    `json:"city"`
	Quantity      int       `json:"quantity"`
	LeadTime      time.Time `json:"lead_time"`
	RepeatNew     string    `json:"repeat_new"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
