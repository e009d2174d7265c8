package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// EmployeePlan records an employee's planned task count for one day, used
// by the MIS report to compare plan vs. done.
type EmployeePlan struct{ ent.Schema }

func (EmployeePlan) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "employee_plans"},
	}
}

func (EmployeePlan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("employee_email").NotEmpty(),
		field.Time("plan_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Int("planned_count").NonNegative(),
	}
}

func (EmployeePlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("employee_email", "plan_date").Unique(),
	}
}
