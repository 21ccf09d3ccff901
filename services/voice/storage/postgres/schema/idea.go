package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/echonote/backend/pkg/gen"
	"github.com/google/uuid"
)

type Idea struct {
	ent.Schema
}

func (Idea) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default((func() uuid.UUID)(gen.UUID())),
		field.UUID("user_id", uuid.UUID{}),
		field.Text("content"),
		field.Text("original_transcription").Optional(),
		field.Enum("idea_type").
			Values("main", "sub-component", "follow-up").
			Default("main"),
		field.String("category").Optional(),
		field.Int("sequence").Default(1),
		field.Strings("tags").Optional(),
		field.Strings("ai_auto_tags").Optional(),
		field.Float("confidence_level").Default(1),
		field.Bool("needs_clarification").Default(false),
		field.String("clarification_question").Optional().Nillable(),
		field.UUID("master_idea_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("parent_recording_id", uuid.UUID{}),
		field.JSON("embedding", []float64{}).Optional(),
		field.Time("created_at").Default(time.Now()),
		field.Time("updated_at").Default(time.Now()),
	}
}

func (Idea) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("parent_recording_id"),
	}
}
