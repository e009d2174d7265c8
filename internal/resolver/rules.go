package resolver

import (
	"fmt"
	"strings"

	"github.com/dibiaa/fms-tracker/constants"
)

// BasisRowCreated marks the row's own creation timestamp in a basis priority
// list; positive entries name a prior step's actual completion.
const BasisRowCreated = 0

// Rule is one row of the decision table. Empty category slices match any
// value; nil Inner/OTD means "don't care". Basis is a priority list: the
// first non-null timestamp wins. For a given step the first matching rule in
// table order wins.
type Rule struct {
	Step       int                        `json:"step"`
	Packaging  []constants.PackagingStyle `json:"packaging,omitempty"`
	Print      []constants.PrintCategory  `json:"print,omitempty"`
	BoxTypes   []string                   `json:"box_types,omitempty"`
	Inner      *bool                      `json:"inner,omitempty"`
	OTD        *bool                      `json:"otd,omitempty"`
	Basis      []int                      `json:"basis"`
	OffsetDays float64                    `json:"offset_days"`
}

// RuleSet is a versioned decision table. The sync route evolved through
// three revisions with diverging eligibility conditions; the built-in table
// is the newest one and older tables load as JSON (see LoadRuleSet).
type RuleSet struct {
	Version string `json:"version"`
	Rules   []Rule `json:"rules"`
}

func (r Rule) matches(attrs JobAttributes) bool {
	if len(r.Packaging) > 0 && !containsPackaging(r.Packaging, attrs.Packaging) {
		return false
	}
	if len(r.Print) > 0 && !containsPrint(r.Print, attrs.Print) {
		return false
	}
	if len(r.BoxTypes) > 0 && !containsFold(r.BoxTypes, attrs.BoxType) {
		return false
	}
	if r.Inner != nil && *r.Inner != attrs.HasInner {
		return false
	}
	if r.OTD != nil && *r.OTD != attrs.OTD {
		return false
	}
	return true
}

func containsPackaging(set []constants.PackagingStyle, v constants.PackagingStyle) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsPrint(set []constants.PrintCategory, v constants.PrintCategory) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(v)) {
			return true
		}
	}
	return false
}

var (
	yes = true

	anyBoxed = []constants.PackagingStyle{
		constants.PackagingTopBottom,
		constants.PackagingSlidingBox,
		constants.PackagingMagnetic,
		constants.PackagingSlidingHandle,
	}
	anyPackaging = append(append([]constants.PackagingStyle{}, anyBoxed...), constants.PackagingPaperBag)
	anyPrinted   = []constants.PrintCategory{
		constants.PrintOffset,
		constants.PrintFoil,
		constants.PrintScreen,
	}
)

// DefaultRuleSet returns the canonical v3 decision table. Step 16 is absent
// on purpose: the terminal step takes the sheet's lead-time date verbatim
// and is handled in Resolve.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Version: "v3",
		Rules: []Rule{
			// Procurement starts from the order date for every recognized
			// packaging style.
			{Step: 1, Packaging: anyPackaging, Basis: []int{BasisRowCreated}, OffsetDays: 2},

			// Unprinted stock goes straight to cutting from the order date;
			// printed stock waits for procurement.
			{Step: 2, Print: []constants.PrintCategory{constants.PrintNone}, Basis: []int{BasisRowCreated}, OffsetDays: 2},
			{Step: 2, Print: anyPrinted, Basis: []int{1, BasisRowCreated}, OffsetDays: 1},

			{Step: 3, Print: anyPrinted, Basis: []int{BasisRowCreated}, OffsetDays: 3},
			{Step: 4, Print: anyPrinted, Basis: []int{3, 2}, OffsetDays: 2},
			{Step: 5, Print: []constants.PrintCategory{constants.PrintOffset, constants.PrintFoil}, Basis: []int{4}, OffsetDays: 1},

			{Step: 6, Packaging: anyBoxed, Basis: []int{5, 4, 2}, OffsetDays: 1},
			{Step: 7, BoxTypes: []string{"Foam"}, Basis: []int{6}, OffsetDays: 6},
			{Step: 8, Packaging: anyBoxed, Basis: []int{7, 6}, OffsetDays: 2},

			{Step: 9, Packaging: []constants.PackagingStyle{constants.PackagingMagnetic}, Print: []constants.PrintCategory{constants.PrintScreen}, Inner: &yes, Basis: []int{8}, OffsetDays: 1},
			{Step: 9, Packaging: []constants.PackagingStyle{constants.PackagingTopBottom, constants.PackagingSlidingBox}, Inner: &yes, Basis: []int{8}, OffsetDays: 2},

			// Accessory fixing keys off the latest downstream actual that
			// exists; packing and QC actuals take precedence over its own.
			{Step: 10, Packaging: []constants.PackagingStyle{constants.PackagingMagnetic, constants.PackagingSlidingHandle}, Basis: []int{12, 11, 10}, OffsetDays: 1},

			{Step: 11, Basis: []int{10, 9, 8, 6}, OffsetDays: 1},
			{Step: 12, Basis: []int{11}, OffsetDays: 1},
			{Step: 13, OTD: &yes, Basis: []int{12, 11}, OffsetDays: 1},
			{Step: 14, Basis: []int{13, 12}, OffsetDays: 1},
			{Step: 15, Basis: []int{14}, OffsetDays: 1},
		},
	}
}

// Describe renders the table one rule per line, for audit output and the
// golden test.
func (rs *RuleSet) Describe() string {
	var b strings.Builder
	b.WriteString(rs.Version)
	b.WriteString("\n")
	for _, r := range rs.Rules {
		b.WriteString(describeRule(r))
		b.WriteString("\n")
	}
	return b.String()
}

func describeRule(r Rule) string {
	parts := []string{fmt.Sprintf("%02d", r.Step)}
	if len(r.Packaging) > 0 {
		ps := make([]string, len(r.Packaging))
		for i, p := range r.Packaging {
			ps[i] = string(p)
		}
		parts = append(parts, "packaging="+strings.Join(ps, "|"))
	}
	if len(r.Print) > 0 {
		ps := make([]string, len(r.Print))
		for i, p := range r.Print {
			ps[i] = string(p)
		}
		parts = append(parts, "print="+strings.Join(ps, "|"))
	}
	if len(r.BoxTypes) > 0 {
		parts = append(parts, "box_type="+strings.Join(r.BoxTypes, "|"))
	}
	if r.Inner != nil {
		parts = append(parts, fmt.Sprintf("inner=%v", *r.Inner))
	}
	if r.OTD != nil {
		parts = append(parts, fmt.Sprintf("otd=%v", *r.OTD))
	}
	basis := make([]string, len(r.Basis))
	for i, bref := range r.Basis {
		if bref == BasisRowCreated {
			basis[i] = "created"
		} else {
			basis[i] = fmt.Sprintf("step%d", bref)
		}
	}
	parts = append(parts, "basis="+strings.Join(basis, ","))
	parts = append(parts, fmt.Sprintf("offset=%g", r.OffsetDays))
	return strings.Join(parts, " ")
}
