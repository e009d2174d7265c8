package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// User is an employee directory entry. Authentication is handled outside
// this service; the backend only needs identity and routing attributes.
type User struct{ ent.Schema }

func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("role").Default("Member"),
		field.String("department").Default(""),
		field.String("email").NotEmpty().Unique(),
		field.String("mobile").Default(""),
		field.Time("created_at").Default(time.Now),
	}
}
