package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/constants"
	"github.com/dibiaa/fms-tracker/db/ent/schema/utils"
)

// DelegationTask is a one-off delegated task with an approval/revision
// state machine. previous_status is kept so a rejected request can restore
// the state it interrupted.
type DelegationTask struct{ ent.Schema }

func (DelegationTask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tasks"},
	}
}

func (DelegationTask) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("task_uid").NotEmpty().Unique(),
		field.String("employee_name").Default(""),
		field.String("assigned_to_email").NotEmpty(),
		field.String("approver_email").Default(""),
		field.String("description").NotEmpty(),
		field.Time("target_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("priority").Default("Normal"),
		field.Bool("approval_needed").Default(false),
		field.String("assigned_by").Default("System"),
		field.String("remarks").Default(""),
		field.String("status").Default(string(constants.DelegationPending)).
			Validate(utils.EnumValidator(constants.DelegationStatuses()...)),
		field.String("previous_status").Default(string(constants.DelegationPending)),
		field.Time("revised_date_request").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("revision_remarks").Default(""),
		field.Time("created_at").Default(time.Now),
	}
}

func (DelegationTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("comments", TaskComment.Type),
	}
}

func (DelegationTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assigned_to_email", "status"),
		index.Fields("approver_email", "status"),
	}
}
