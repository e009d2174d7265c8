package entity

import "time"

// StepConfig is the admin-edited configuration for one step number: display
// name, responsible doers, and which job attributes that step's performer
// sees. Read-only to the resolver.
type StepConfig struct {
	Step           int       `json:"step"`
	StepName       string    `json:"step_name"`
	DoerEmails     []string  `json:"doer_emails"`
	VisibleColumns []string  `json:"visible_columns"`
	UpdatedAt      time.Time `json:"updated_at"`
}
