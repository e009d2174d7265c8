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
)

// TaskComment is a free-form comment on a delegation task.
type TaskComment struct{ ent.Schema }

func (TaskComment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "task_comments"},
	}
}

func (TaskComment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("task_id", uuid.UUID{}),
		field.String("user_name").NotEmpty(),
		field.String("comment").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (TaskComment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", DelegationTask.Type).
			Ref("comments").
			Field("task_id").
			Unique().
			Required(),
	}
}

func (TaskComment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
	}
}
