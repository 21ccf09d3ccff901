package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/echonote/backend/pkg/gen"
	"github.com/google/uuid"
)

type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default((func() uuid.UUID)(gen.UUID())),
		field.String("name").Unique(),
		field.Bool("is_default").Default(false),
		field.Time("created_at").Default(time.Now()),
	}
}
