package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/dibiaa/fms-tracker/constants"
)

// StepConfig is the admin-edited configuration for one step number. Doer
// emails and visible columns are comma-joined, matching the sheet-era
// storage format.
type StepConfig struct{ ent.Schema }

func (StepConfig) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fms_step_config"},
	}
}

func (StepConfig) Fields() []ent.Field {
	return []ent.Field{
		field.Int("step").Min(1).Max(constants.StepCount).Unique(),
		field.String("step_name").NotEmpty(),
		field.String("doer_emails").Default(""),
		field.String("visible_columns").Default(""),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
