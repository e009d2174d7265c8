package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/db/ent/schema/utils"
)

// ChecklistTask is one dated occurrence of a recurring checklist item,
// pre-expanded to year end at definition time.
type ChecklistTask struct{ ent.Schema }

func (ChecklistTask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "checklist_tasks"},
	}
}

func (ChecklistTask) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("uid").NotEmpty(),
		field.String("description").NotEmpty(),
		field.String("employee_email").NotEmpty(),
		field.String("employee_name").Default(""),
		field.String("frequency").Default("Daily"),
		field.Time("target_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("status").Default(string(constants.TaskStatusPending)).
			Validate(utils.EnumValidator(constants.TaskStatuses()...)),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (ChecklistTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("employee_email", "target_date"),
		index.Fields("status", "target_date"),
	}
}
