package resolver

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dibiaa/fms-tracker/constants"
)

func TestLoadRuleSet_Valid(t *testing.T) {
	data := []byte(`{
		"version": "v2",
		"rules": [
			{"step": 2, "print": ["No print"], "basis": [0], "offset_days": 3},
			{"step": 4, "print": ["Offset Print"], "basis": [3, 2], "offset_days": 1.5}
		]
	}`)

	rs, err := LoadRuleSet(data)
	require.NoError(t, err)
	assert.Equal(t, "v2", rs.Version)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, []int{BasisRowCreated}, rs.Rules[0].Basis)
	assert.Equal(t, 1.5, rs.Rules[1].OffsetDays)
	assert.Equal(t, []constants.PrintCategory{constants.PrintOffset}, rs.Rules[1].Print)
}

func TestLoadRuleSet_RejectsOutOfRangeStep(t *testing.T) {
	data := []byte(`{
		"version": "bad",
		"rules": [{"step": 17, "basis": [0], "offset_days": 1}]
	}`)

	_, err := LoadRuleSet(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoadRuleSet_RejectsMissingBasis(t *testing.T) {
	data := []byte(`{
		"version": "bad",
		"rules": [{"step": 3, "offset_days": 1}]
	}`)

	_, err := LoadRuleSet(data)
	assert.Error(t, err)
}

func TestLoadRuleSet_RejectsUnknownField(t *testing.T) {
	data := []byte(`{
		"version": "bad",
		"rules": [{"step": 3, "basis": [0], "offset_days": 1, "offset_hours": 4}]
	}`)

	_, err := LoadRuleSet(data)
	assert.Error(t, err)
}

func TestDefaultRuleSet_CoversAllDerivedSteps(t *testing.T) {
	rs := DefaultRuleSet()
	seen := map[int]bool{}
	for _, r := range rs.Rules {
		require.GreaterOrEqual(t, r.Step, 1)
		require.Less(t, r.Step, constants.TerminalStep, "terminal step must not appear in the table")
		require.NotEmpty(t, r.Basis)
		seen[r.Step] = true
	}
	for step := 1; step < constants.TerminalStep; step++ {
		assert.True(t, seen[step], "no rule covers step %d", step)
	}
}

func TestDefaultRuleSet_Golden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "rules_v3", []byte(DefaultRuleSet().Describe()))
}
