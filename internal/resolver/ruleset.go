package resolver

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dibiaa/fms-tracker/constants"
)

// BuildRuleSetSchema returns the JSON-Schema (draft 2020-12 subset) a rule
// set override must satisfy, as a generic map.
func BuildRuleSetSchema() map[string]any {
	ruleProps := map[string]any{
		"step": map[string]any{
			"type":    "integer",
			"minimum": 1,
			"maximum": constants.StepCount,
		},
		"packaging": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"print": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"box_types": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"inner": map[string]any{"type": "boolean"},
		"otd":   map[string]any{"type": "boolean"},
		"basis": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": constants.StepCount,
			},
		},
		"offset_days": map[string]any{"type": "number", "minimum": 0},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"version", "rules"},
		"properties": map[string]any{
			"version": map[string]any{"type": "string", "minLength": 1},
			"rules": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"step", "basis", "offset_days"},
					"properties":           ruleProps,
				},
			},
		},
	}
}

// LoadRuleSet parses and validates a JSON rule-set override. Older sync
// revisions are preserved as such files; the schema keeps a hand-edited
// table from silently dropping steps at load time instead of at resolve
// time.
func LoadRuleSet(data []byte) (*RuleSet, error) {
	if err := validateAgainstSchema(BuildRuleSetSchema(), data); err != nil {
		return nil, err
	}
	var rs RuleSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("unmarshal rule set: %w", err)
	}
	return &rs, nil
}

func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("ruleset.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("ruleset.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal rule set: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("rule set does not match schema: %w", err)
	}
	return nil
}
