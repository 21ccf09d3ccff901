// Code generated by ent, DO NOT EDIT.

package idea

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the idea type in the database.
	Label = "idea"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldOriginalTranscription holds the string denoting the original_transcription field in the database.
	FieldOriginalTranscription = "original_transcription"
	// FieldIdeaType holds the string denoting the idea_type field in the database.
	FieldIdeaType = "idea_type"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldAiAutoTags holds the string denoting the ai_auto_tags field in the database.
	FieldAiAutoTags = "ai_auto_tags"
	// FieldConfidenceLevel holds the string denoting the confidence_level field in the database.
	FieldConfidenceLevel = "confidence_level"
	// FieldNeedsClarification holds the string denoting the needs_clarification field in the database.
	FieldNeedsClarification = "needs_clarification"
	// FieldClarificationQuestion holds the string denoting the clarification_question field in the database.
	FieldClarificationQuestion = "clarification_question"
	// FieldMasterIdeaID holds the string denoting the master_idea_id field in the database.
	FieldMasterIdeaID = "master_idea_id"
	// FieldParentRecordingID holds the string denoting the parent_recording_id field in the database.
	FieldParentRecordingID = "parent_recording_id"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the idea in the database.
	Table = "ideas"
)

// Columns holds all SQL columns for idea fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldContent,
	FieldOriginalTranscription,
	FieldIdeaType,
	FieldCategory,
	FieldSequence,
	FieldTags,
	FieldAiAutoTags,
	FieldConfidenceLevel,
	FieldNeedsClarification,
	FieldClarificationQuestion,
	FieldMasterIdeaID,
	FieldParentRecordingID,
	FieldEmbedding,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSequence holds the default value on creation for the "sequence" field.
	DefaultSequence int
	// DefaultConfidenceLevel holds the default value on creation for the "confidence_level" field.
	DefaultConfidenceLevel float64
	// DefaultNeedsClarification holds the default value on creation for the "needs_clarification" field.
	DefaultNeedsClarification bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// IdeaType defines the type for the "idea_type" enum field.
type IdeaType string

// IdeaTypeMain is the default value of the IdeaType enum.
const DefaultIdeaType = IdeaTypeMain

// IdeaType values.
const (
	IdeaTypeMain         IdeaType = "main"
	IdeaTypeSubComponent IdeaType = "sub-component"
	IdeaTypeFollowUp     IdeaType = "follow-up"
)

func (it IdeaType) String() string {
	return string(it)
}

// IdeaTypeValidator is a validator for the "idea_type" field enum values. It is called by the builders before save.
func IdeaTypeValidator(it IdeaType) error {
	switch it {
	case IdeaTypeMain, IdeaTypeSubComponent, IdeaTypeFollowUp:
		return nil
	default:
		return fmt.Errorf("idea: invalid enum value for idea_type field: %q", it)
	}
}

// OrderOption defines the ordering options for the Idea queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByOriginalTranscription orders the results by the original_transcription field.
func ByOriginalTranscription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalTranscription, opts...).ToFunc()
}

// ByIdeaType orders the results by the idea_type field.
func ByIdeaType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdeaType, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByConfidenceLevel orders the results by the confidence_level field.
func ByConfidenceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceLevel, opts...).ToFunc()
}

// ByNeedsClarification orders the results by the needs_clarification field.
func ByNeedsClarification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsClarification, opts...).ToFunc()
}

// ByClarificationQuestion orders the results by the clarification_question field.
func ByClarificationQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClarificationQuestion, opts...).ToFunc()
}

// ByMasterIdeaID orders the results by the master_idea_id field.
func ByMasterIdeaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasterIdeaID, opts...).ToFunc()
}

// ByParentRecordingID orders the results by the parent_recording_id field.
func ByParentRecordingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentRecordingID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
