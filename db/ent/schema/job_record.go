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
)

// JobRecord is one raw production order pulled from the sheet. Business
// attributes are overwritten on every sync; the id never changes once the
// row position has been claimed.
type JobRecord struct{ ent.Schema }

func (JobRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fms_job_records"},
	}
}

func (JobRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// Sheet row position, the natural key for upsert matching.
		field.Int("row_index").Positive().Unique(),
		field.Time("source_date").Optional().Nillable(),
		field.String("otd_type").Default(""),
		field.String("job_number").Default(""),
		field.String("order_by").Default(""),
		field.String("company_name").Default(""),
		field.String("box_type").Default(""),
		field.String("box_style").Default(""),
		field.String("box_color").Default(""),
		field.String("printing_type").Default(""),
		field.String("printing_color").Default(""),
		field.String("specification").Default(""),
		field.String("city").Default(""),
		field.Int("quantity").Default(0),
		field.Time("lead_time").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("repeat_new").Default(""),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (JobRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE job -> MANY step tasks
		edge.To("tasks", StepTask.Type),
	}
}

func (JobRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_number"),
	}
}
