// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/echonote/backend/services/voice/storage/postgres/ent/idea"
	"github.com/google/uuid"
)

// Idea is the model entity for the Idea schema.
type Idea struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// OriginalTranscription holds the value of the "original_transcription" field.
	OriginalTranscription string `json:"original_transcription,omitempty"`
	// IdeaType holds the value of the "idea_type" field.
	IdeaType idea.IdeaType `json:"idea_type,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Sequence holds the value of the "sequence" field.
	Sequence int `json:"sequence,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// AiAutoTags holds the value of the "ai_auto_tags" field.
	AiAutoTags []string `json:"ai_auto_tags,omitempty"`
	// ConfidenceLevel holds the value of the "confidence_level" field.
	ConfidenceLevel float64 `json:"confidence_level,omitempty"`
	// NeedsClarification holds the value of the "needs_clarification" field.
	NeedsClarification bool `json:"needs_clarification,omitempty"`
	// ClarificationQuestion holds the value of the "clarification_question" field.
	ClarificationQuestion *string `json:"clarification_question,omitempty"`
	// MasterIdeaID holds the value of the "master_idea_id" field.
	MasterIdeaID *uuid.UUID `json:"master_idea_id,omitempty"`
	// ParentRecordingID holds the value of the "parent_recording_id" field.
	ParentRecordingID uuid.UUID `json:"parent_recording_id,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float64 `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Idea) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case idea.FieldMasterIdeaID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case idea.FieldTags, idea.FieldAiAutoTags, idea.FieldEmbedding:
			values[i] = new([]byte)
		case idea.FieldNeedsClarification:
			values[i] = new(sql.NullBool)
		case idea.FieldConfidenceLevel:
			values[i] = new(sql.NullFloat64)
		case idea.FieldSequence:
			values[i] = new(sql.NullInt64)
		case idea.FieldContent, idea.FieldOriginalTranscription, idea.FieldIdeaType, idea.FieldCategory, idea.FieldClarificationQuestion:
			values[i] = new(sql.NullString)
		case idea.FieldCreatedAt, idea.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case idea.FieldID, idea.FieldUserID, idea.FieldParentRecordingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Idea fields.
func (i *Idea) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for j := range columns {
		switch columns[j] {
		case idea.FieldID:
			if value, ok := values[j].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[j])
			} else if value != nil {
				i.ID = *value
			}
		case idea.FieldUserID:
			if value, ok := values[j].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[j])
			} else if value != nil {
				i.UserID = *value
			}
		case idea.FieldContent:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[j])
			} else if value.Valid {
				i.Content = value.String
			}
		case idea.FieldOriginalTranscription:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_transcription", values[j])
			} else if value.Valid {
				i.OriginalTranscription = value.String
			}
		case idea.FieldIdeaType:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idea_type", values[j])
			} else if value.Valid {
				i.IdeaType = idea.IdeaType(value.String)
			}
		case idea.FieldCategory:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[j])
			} else if value.Valid {
				i.Category = value.String
			}
		case idea.FieldSequence:
			if value, ok := values[j].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[j])
			} else if value.Valid {
				i.Sequence = int(value.Int64)
			}
		case idea.FieldTags:
			if value, ok := values[j].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[j])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &i.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case idea.FieldAiAutoTags:
			if value, ok := values[j].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ai_auto_tags", values[j])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &i.AiAutoTags); err != nil {
					return fmt.Errorf("unmarshal field ai_auto_tags: %w", err)
				}
			}
		case idea.FieldConfidenceLevel:
			if value, ok := values[j].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_level", values[j])
			} else if value.Valid {
				i.ConfidenceLevel = value.Float64
			}
		case idea.FieldNeedsClarification:
			if value, ok := values[j].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_clarification", values[j])
			} else if value.Valid {
				i.NeedsClarification = value.Bool
			}
		case idea.FieldClarificationQuestion:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clarification_question", values[j])
			} else if value.Valid {
				i.ClarificationQuestion = new(string)
				*i.ClarificationQuestion = value.String
			}
		case idea.FieldMasterIdeaID:
			if value, ok := values[j].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field master_idea_id", values[j])
			} else if value.Valid {
				i.MasterIdeaID = new(uuid.UUID)
				*i.MasterIdeaID = *value.S.(*uuid.UUID)
			}
		case idea.FieldParentRecordingID:
			if value, ok := values[j].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field parent_recording_id", values[j])
			} else if value != nil {
				i.ParentRecordingID = *value
			}
		case idea.FieldEmbedding:
			if value, ok := values[j].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[j])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &i.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case idea.FieldCreatedAt:
			if value, ok := values[j].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[j])
			} else if value.Valid {
				i.CreatedAt = value.Time
			}
		case idea.FieldUpdatedAt:
			if value, ok := values[j].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[j])
			} else if value.Valid {
				i.UpdatedAt = value.Time
			}
		default:
			i.selectValues.Set(columns[j], values[j])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Idea.
// This includes values selected through modifiers, order, etc.
func (i *Idea) Value(name string) (ent.Value, error) {
	return i.selectValues.Get(name)
}

// Update returns a builder for updating this Idea.
// Note that you need to call Idea.Unwrap() before calling this method if this Idea
// was returned from a transaction, and the transaction was committed or rolled back.
func (i *Idea) Update() *IdeaUpdateOne {
	return NewIdeaClient(i.config).UpdateOne(i)
}

// Unwrap unwraps the Idea entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (i *Idea) Unwrap() *Idea {
	_tx, ok := i.config.driver.(*txDriver)
	if !ok {
		panic("ent: Idea is not a transactional entity")
	}
	i.config.driver = _tx.drv
	return i
}

// String implements the fmt.Stringer.
func (i *Idea) String() string {
	var builder strings.Builder
	builder.WriteString("Idea(")
	builder.WriteString(fmt.Sprintf("id=%v, ", i.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", i.UserID))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(i.Content)
	builder.WriteString(", ")
	builder.WriteString("original_transcription=")
	builder.WriteString(i.OriginalTranscription)
	builder.WriteString(", ")
	builder.WriteString("idea_type=")
	builder.WriteString(fmt.Sprintf("%v", i.IdeaType))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(i.Category)
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", i.Sequence))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", i.Tags))
	builder.WriteString(", ")
	builder.WriteString("ai_auto_tags=")
	builder.WriteString(fmt.Sprintf("%v", i.AiAutoTags))
	builder.WriteString(", ")
	builder.WriteString("confidence_level=")
	builder.WriteString(fmt.Sprintf("%v", i.ConfidenceLevel))
	builder.WriteString(", ")
	builder.WriteString("needs_clarification=")
	builder.WriteString(fmt.Sprintf("%v", i.NeedsClarification))
	builder.WriteString(", ")
	if v := i.ClarificationQuestion; v != nil {
		builder.WriteString("clarification_question=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := i.MasterIdeaID; v != nil {
		builder.WriteString("master_idea_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("parent_recording_id=")
	builder.WriteString(fmt.Sprintf("%v", i.ParentRecordingID))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", i.Embedding))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(i.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(i.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Ideas is a parsable slice of Idea.
type Ideas []*Idea
