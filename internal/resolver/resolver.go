// Package resolver derives planned due dates for the 16 DIBIAA production
// steps of a job from its order attributes and the actual completion
// timestamps of prior steps.
//
// This is a rule table, not a graph solver: each step has hand-authored
// eligibility rows, and a step's basis only ever references persisted
// actuals (or the row's own creation date) — never a plan computed in the
// same call. Downstream plans therefore lag behind completed upstream work
// by construction, with no topological ordering needed.
package resolver

import (
	"time"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/internal/calendar"
)

// Resolve maps (attributes, completed actuals) to candidate plan dates, one
// entry per eligible step. Pure function: identical inputs yield identical
// output, and unknown category combinations skip silently — not every order
// needs every step.
func (rs *RuleSet) Resolve(attrs JobAttributes, done Completed) StepPlans {
	plans := make(StepPlans)
	matched := make(map[int]bool)

	for _, rule := range rs.Rules {
		if matched[rule.Step] {
			// First matching rule per step wins, even when its basis turns
			// out to be absent.
			continue
		}
		if !rule.matches(attrs) {
			continue
		}
		matched[rule.Step] = true
		basis := firstBasis(rule.Basis, attrs.CreatedAt, done)
		if basis.IsZero() {
			continue
		}
		plans[rule.Step] = calendar.AddWorkdays(basis, rule.OffsetDays)
	}

	// Terminal step: the sheet's lead-time date is the plan, verbatim.
	if !attrs.LeadTime.IsZero() {
		plans[constants.TerminalStep] = attrs.LeadTime
	}

	return plans
}

func firstBasis(priority []int, created time.Time, done Completed) time.Time {
	for _, ref := range priority {
		if ref == BasisRowCreated {
			if !created.IsZero() {
				return created
			}
			continue
		}
		if actual, ok := done[ref]; ok && !actual.IsZero() {
			return actual
		}
	}
	return time.Time{}
}
