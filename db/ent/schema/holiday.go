package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Holiday is a plant-wide non-working date, consumed by the checklist
// generator. Step plan-date arithmetic intentionally skips Sundays only.
type Holiday struct{ ent.Schema }

func (Holiday) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "holidays"},
	}
}

func (Holiday) Fields() []ent.Field {
	return []ent.Field{
		field.Time("holiday_date").Unique().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("name").NotEmpty(),
	}
}
