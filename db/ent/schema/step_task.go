package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/db/ent/schema/utils"
)

// StepTask tracks one production step of one job: derived plan date, actual
// completion, and the worker's completion metadata. The unique (job_id,
// step) index is what the sync upsert keys on.
type StepTask struct{ ent.Schema }

func (StepTask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fms_step_tasks"},
	}
}

func (StepTask) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.Int("step").Min(1).Max(constants.StepCount),
		field.Time("plan_date").Optional().Nillable(),
		field.Time("actual_date").Optional().Nillable(),
		field.String("status").Default(string(constants.TaskStatusPending)).
			Validate(utils.EnumValidator(constants.TaskStatuses()...)),
		field.String("delay_reason").Default(""),
		field.String("worker_name").Default(""),
		field.Int("completed_qty").Default(0),
		field.Float("delay_hours").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (StepTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", JobRecord.Type).
			Ref("tasks").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (StepTask) Indexes() []ent.Index {
	return []ent.Index{
		// Uniqueness invariant: at most one task per (job, step).
		index.Fields("job_id", "step").Unique(),
		index.Fields("status"),
	}
}
