package resolver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/internal/calendar"
	"github.com/dibiaa/fms-tracker/internal/entity"
)

func ist(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, calendar.Location())
}

func TestResolve_MagneticInnerScreenUsesStep8Actual(t *testing.T) {
	rs := DefaultRuleSet()
	attrs := JobAttributes{
		OTD:       true,
		BoxType:   "Foam",
		Packaging: constants.PackagingMagnetic,
		Print:     constants.PrintScreen,
		HasInner:  true,
	}
	t8 := ist(2024, time.January, 10, 10, 0)
	done := Completed{8: t8}

	plans := rs.Resolve(attrs, done)

	require.Contains(t, plans, 9)
	assert.Equal(t, calendar.AddWorkdays(t8, 1), plans[9])
	assert.Equal(t, ist(2024, time.January, 11, 10, 0), plans[9])
}

func TestResolve_NoPrintSkipsPrintingButCutsFromOrderDate(t *testing.T) {
	rs := DefaultRuleSet()
	created := ist(2024, time.January, 8, 10, 0)
	attrs := JobAttributes{
		Packaging: constants.PackagingTopBottom,
		Print:     constants.PrintNone,
		CreatedAt: created,
	}

	plans := rs.Resolve(attrs, nil)

	assert.NotContains(t, plans, 4, "unprinted orders have no printing step")
	require.Contains(t, plans, 2)
	assert.Equal(t, calendar.AddWorkdays(created, 2), plans[2])
}

func TestResolve_TerminalStepTakesLeadTimeVerbatim(t *testing.T) {
	rs := DefaultRuleSet()
	lead := ist(2024, time.February, 29, 0, 0)
	attrs := JobAttributes{
		Packaging: constants.PackagingPaperBag,
		LeadTime:  lead,
	}

	plans := rs.Resolve(attrs, nil)

	require.Contains(t, plans, constants.TerminalStep)
	// Verbatim: no workday arithmetic, no business-hour clamp.
	assert.Equal(t, lead, plans[constants.TerminalStep])
}

func TestResolve_IneligibleRowYieldsEmptyPlanMap(t *testing.T) {
	rs := DefaultRuleSet()
	attrs := JobAttributes{
		Packaging: constants.PackagingUnknown,
		Print:     constants.PrintUnknown,
	}

	plans := rs.Resolve(attrs, Completed{})

	assert.Empty(t, plans)
}

func TestResolve_PureFunction(t *testing.T) {
	rs := DefaultRuleSet()
	attrs := JobAttributes{
		OTD:       true,
		Packaging: constants.PackagingMagnetic,
		Print:     constants.PrintOffset,
		CreatedAt: ist(2024, time.January, 2, 11, 0),
		LeadTime:  ist(2024, time.January, 31, 0, 0),
	}
	done := Completed{
		3: ist(2024, time.January, 4, 15, 0),
		8: ist(2024, time.January, 9, 12, 0),
	}

	first := rs.Resolve(attrs, done)
	second := rs.Resolve(attrs, done)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestResolve_BasisPriorityFirstAvailableWins(t *testing.T) {
	rs := DefaultRuleSet()
	attrs := JobAttributes{Packaging: constants.PackagingMagnetic}

	// Step 10's priority list is step12, step11, step10.
	t11 := ist(2024, time.January, 15, 10, 0)
	t12 := ist(2024, time.January, 16, 10, 0)

	plans := rs.Resolve(attrs, Completed{11: t11})
	require.Contains(t, plans, 10)
	assert.Equal(t, calendar.AddWorkdays(t11, 1), plans[10])

	plans = rs.Resolve(attrs, Completed{11: t11, 12: t12})
	assert.Equal(t, calendar.AddWorkdays(t12, 1), plans[10])
}

func TestResolve_FirstMatchingRuleClaimsStep(t *testing.T) {
	// A matched rule with an absent basis blocks later rules for the same
	// step; the step stays silent rather than falling through.
	rs := &RuleSet{
		Version: "test",
		Rules: []Rule{
			{Step: 5, Print: []constants.PrintCategory{constants.PrintFoil}, Basis: []int{4}, OffsetDays: 1},
			{Step: 5, Basis: []int{BasisRowCreated}, OffsetDays: 2},
		},
	}
	attrs := JobAttributes{
		Print:     constants.PrintFoil,
		CreatedAt: ist(2024, time.January, 8, 10, 0),
	}

	plans := rs.Resolve(attrs, nil)
	assert.NotContains(t, plans, 5)
}

func TestResolve_ActualsOnlyNeverFreshPlans(t *testing.T) {
	// Step 12 depends on step 11's actual. Attributes that would produce a
	// plan for step 11 in this same call must not feed step 12.
	rs := DefaultRuleSet()
	attrs := JobAttributes{Packaging: constants.PackagingTopBottom}
	done := Completed{8: ist(2024, time.January, 10, 10, 0)}

	plans := rs.Resolve(attrs, done)

	require.Contains(t, plans, 11)
	assert.NotContains(t, plans, 12)
}

func TestAttributesFromRecord_Canonicalization(t *testing.T) {
	rec := &entity.JobRecord{
		OTDType:       " otd ",
		BoxStyle:      "magnet box",
		PrintingType:  "SCREEN",
		Specification: "With Inner tray",
		SourceDate:    ist(2024, time.January, 2, 10, 0),
	}

	attrs := AttributesFromRecord(rec)

	assert.True(t, attrs.OTD)
	assert.Equal(t, constants.PackagingMagnetic, attrs.Packaging)
	assert.Equal(t, constants.PrintScreen, attrs.Print)
	assert.True(t, attrs.HasInner)
}
