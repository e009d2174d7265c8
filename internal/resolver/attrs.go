package resolver

import (
	"time"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/internal/entity"
)

// JobAttributes is the read-only slice of a job record the decision table
// branches on. Free-text sheet columns are already folded into canonical
// categories here; rules never see raw cell text.
type JobAttributes struct {
	OTD       bool
	BoxType   string
	Packaging constants.PackagingStyle
	Print     constants.PrintCategory
	HasInner  bool
	// CreatedAt is the source row's own timestamp, usable as a basis.
	CreatedAt time.Time
	// LeadTime is the externally supplied target date for the terminal step.
	LeadTime time.Time
}

// AttributesFromRecord canonicalizes a raw job record into resolver input.
// Unknown packaging or print text maps to the Unknown category, which simply
// matches no rule.
func AttributesFromRecord(r *entity.JobRecord) JobAttributes {
	packaging, _ := constants.CanonicalPackaging(r.BoxStyle)
	print, _ := constants.CanonicalPrint(r.PrintingType)
	return JobAttributes{
		OTD:       constants.IsOTD(r.OTDType),
		BoxType:   r.BoxType,
		Packaging: packaging,
		Print:     print,
		HasInner:  constants.HasInner(r.Specification),
		CreatedAt: r.SourceDate,
		LeadTime:  r.LeadTime,
	}
}

// Completed maps step number -> actual completion timestamp for one job,
// rebuilt from persisted step tasks at the start of every sync run.
type Completed map[int]time.Time

// StepPlans maps step number -> derived plan date. A step with no matching
// rule or no available basis is simply absent.
type StepPlans map[int]time.Time
