// Code generated by ent, DO NOT EDIT.

package idea

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/echonote/backend/services/voice/storage/postgres/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldUserID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldContent, v))
}

// OriginalTranscription applies equality check predicate on the "original_transcription" field. It's identical to OriginalTranscriptionEQ.
func OriginalTranscription(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldOriginalTranscription, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldCategory, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldSequence, v))
}

// ConfidenceLevel applies equality check predicate on the "confidence_level" field. It's identical to ConfidenceLevelEQ.
func ConfidenceLevel(v float64) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldConfidenceLevel, v))
}

// NeedsClarification applies equality check predicate on the "needs_clarification" field. It's identical to NeedsClarificationEQ.
func NeedsClarification(v bool) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldNeedsClarification, v))
}

// ClarificationQuestion applies equality check predicate on the "clarification_question" field. It's identical to ClarificationQuestionEQ.
func ClarificationQuestion(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldClarificationQuestion, v))
}

// MasterIdeaID applies equality check predicate on the "master_idea_id" field. It's identical to MasterIdeaIDEQ.
func MasterIdeaID(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldMasterIdeaID, v))
}

// ParentRecordingID applies equality check predicate on the "parent_recording_id" field. It's identical to ParentRecordingIDEQ.
func ParentRecordingID(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldParentRecordingID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldUserID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContainsFold(FieldContent, v))
}

// OriginalTranscriptionEQ applies the EQ predicate on the "original_transcription" field.
func OriginalTranscriptionEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldOriginalTranscription, v))
}

// OriginalTranscriptionNEQ applies the NEQ predicate on the "original_transcription" field.
func OriginalTranscriptionNEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldOriginalTranscription, v))
}

// OriginalTranscriptionIn applies the In predicate on the "original_transcription" field.
func OriginalTranscriptionIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldOriginalTranscription, vs...))
}

// OriginalTranscriptionNotIn applies the NotIn predicate on the "original_transcription" field.
func OriginalTranscriptionNotIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldOriginalTranscription, vs...))
}

// OriginalTranscriptionGT applies the GT predicate on the "original_transcription" field.
func OriginalTranscriptionGT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldOriginalTranscription, v))
}

// OriginalTranscriptionGTE applies the GTE predicate on the "original_transcription" field.
func OriginalTranscriptionGTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldOriginalTranscription, v))
}

// OriginalTranscriptionLT applies the LT predicate on the "original_transcription" field.
func OriginalTranscriptionLT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldOriginalTranscription, v))
}

// OriginalTranscriptionLTE applies the LTE predicate on the "original_transcription" field.
func OriginalTranscriptionLTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldOriginalTranscription, v))
}

// OriginalTranscriptionContains applies the Contains predicate on the "original_transcription" field.
func OriginalTranscriptionContains(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContains(FieldOriginalTranscription, v))
}

// OriginalTranscriptionHasPrefix applies the HasPrefix predicate on the "original_transcription" field.
func OriginalTranscriptionHasPrefix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasPrefix(FieldOriginalTranscription, v))
}

// OriginalTranscriptionHasSuffix applies the HasSuffix predicate on the "original_transcription" field.
func OriginalTranscriptionHasSuffix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasSuffix(FieldOriginalTranscription, v))
}

// OriginalTranscriptionIsNil applies the IsNil predicate on the "original_transcription" field.
func OriginalTranscriptionIsNil() predicate.Idea {
	return predicate.Idea(sql.FieldIsNull(FieldOriginalTranscription))
}

// OriginalTranscriptionNotNil applies the NotNil predicate on the "original_transcription" field.
func OriginalTranscriptionNotNil() predicate.Idea {
	return predicate.Idea(sql.FieldNotNull(FieldOriginalTranscription))
}

// OriginalTranscriptionEqualFold applies the EqualFold predicate on the "original_transcription" field.
func OriginalTranscriptionEqualFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEqualFold(FieldOriginalTranscription, v))
}

// OriginalTranscriptionContainsFold applies the ContainsFold predicate on the "original_transcription" field.
func OriginalTranscriptionContainsFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContainsFold(FieldOriginalTranscription, v))
}

// IdeaTypeEQ applies the EQ predicate on the "idea_type" field.
func IdeaTypeEQ(v IdeaType) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldIdeaType, v))
}

// IdeaTypeNEQ applies the NEQ predicate on the "idea_type" field.
func IdeaTypeNEQ(v IdeaType) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldIdeaType, v))
}

// IdeaTypeIn applies the In predicate on the "idea_type" field.
func IdeaTypeIn(vs ...IdeaType) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldIdeaType, vs...))
}

// IdeaTypeNotIn applies the NotIn predicate on the "idea_type" field.
func IdeaTypeNotIn(vs ...IdeaType) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldIdeaType, vs...))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Idea {
	return predicate.Idea(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Idea {
	return predicate.Idea(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContainsFold(FieldCategory, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldSequence, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Idea {
	return predicate.Idea(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Idea {
	return predicate.Idea(sql.FieldNotNull(FieldTags))
}

// AiAutoTagsIsNil applies the IsNil predicate on the "ai_auto_tags" field.
func AiAutoTagsIsNil() predicate.Idea {
	return predicate.Idea(sql.FieldIsNull(FieldAiAutoTags))
}

// AiAutoTagsNotNil applies the NotNil predicate on the "ai_auto_tags" field.
func AiAutoTagsNotNil() predicate.Idea {
	return predicate.Idea(sql.FieldNotNull(FieldAiAutoTags))
}

// ConfidenceLevelEQ applies the EQ predicate on the "confidence_level" field.
func ConfidenceLevelEQ(v float64) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelNEQ applies the NEQ predicate on the "confidence_level" field.
func ConfidenceLevelNEQ(v float64) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelIn applies the In predicate on the "confidence_level" field.
func ConfidenceLevelIn(vs ...float64) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelNotIn applies the NotIn predicate on the "confidence_level" field.
func ConfidenceLevelNotIn(vs ...float64) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelGT applies the GT predicate on the "confidence_level" field.
func ConfidenceLevelGT(v float64) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldConfidenceLevel, v))
}

// ConfidenceLevelGTE applies the GTE predicate on the "confidence_level" field.
func ConfidenceLevelGTE(v float64) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelLT applies the LT predicate on the "confidence_level" field.
func ConfidenceLevelLT(v float64) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldConfidenceLevel, v))
}

// ConfidenceLevelLTE applies the LTE predicate on the "confidence_level" field.
func ConfidenceLevelLTE(v float64) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldConfidenceLevel, v))
}

// NeedsClarificationEQ applies the EQ predicate on the "needs_clarification" field.
func NeedsClarificationEQ(v bool) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldNeedsClarification, v))
}

// NeedsClarificationNEQ applies the NEQ predicate on the "needs_clarification" field.
func NeedsClarificationNEQ(v bool) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldNeedsClarification, v))
}

// ClarificationQuestionEQ applies the EQ predicate on the "clarification_question" field.
func ClarificationQuestionEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldClarificationQuestion, v))
}

// ClarificationQuestionNEQ applies the NEQ predicate on the "clarification_question" field.
func ClarificationQuestionNEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldClarificationQuestion, v))
}

// ClarificationQuestionIn applies the In predicate on the "clarification_question" field.
func ClarificationQuestionIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldClarificationQuestion, vs...))
}

// ClarificationQuestionNotIn applies the NotIn predicate on the "clarification_question" field.
func ClarificationQuestionNotIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldClarificationQuestion, vs...))
}

// ClarificationQuestionGT applies the GT predicate on the "clarification_question" field.
func ClarificationQuestionGT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldClarificationQuestion, v))
}

// ClarificationQuestionGTE applies the GTE predicate on the "clarification_question" field.
func ClarificationQuestionGTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldClarificationQuestion, v))
}

// ClarificationQuestionLT applies the LT predicate on the "clarification_question" field.
func ClarificationQuestionLT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldClarificationQuestion, v))
}

// ClarificationQuestionLTE applies the LTE predicate on the "clarification_question" field.
func ClarificationQuestionLTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldClarificationQuestion, v))
}

// ClarificationQuestionContains applies the Contains predicate on the "clarification_question" field.
func ClarificationQuestionContains(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContains(FieldClarificationQuestion, v))
}

// ClarificationQuestionHasPrefix applies the HasPrefix predicate on the "clarification_question" field.
func ClarificationQuestionHasPrefix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasPrefix(FieldClarificationQuestion, v))
}

// ClarificationQuestionHasSuffix applies the HasSuffix predicate on the "clarification_question" field.
func ClarificationQuestionHasSuffix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasSuffix(FieldClarificationQuestion, v))
}

// ClarificationQuestionIsNil applies the IsNil predicate on the "clarification_question" field.
func ClarificationQuestionIsNil() predicate.Idea {
	return predicate.Idea(sql.FieldIsNull(FieldClarificationQuestion))
}

// ClarificationQuestionNotNil applies the NotNil predicate on the "clarification_question" field.
func ClarificationQuestionNotNil() predicate.Idea {
	return predicate.Idea(sql.FieldNotNull(FieldClarificationQuestion))
}

// ClarificationQuestionEqualFold applies the EqualFold predicate on the "clarification_question" field.
func ClarificationQuestionEqualFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEqualFold(FieldClarificationQuestion, v))
}

// ClarificationQuestionContainsFold applies the ContainsFold predicate on the "clarification_question" field.
func ClarificationQuestionContainsFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContainsFold(FieldClarificationQuestion, v))
}

// MasterIdeaIDEQ applies the EQ predicate on the "master_idea_id" field.
func MasterIdeaIDEQ(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldMasterIdeaID, v))
}

// MasterIdeaIDNEQ applies the NEQ predicate on the "master_idea_id" field.
func MasterIdeaIDNEQ(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldMasterIdeaID, v))
}

// MasterIdeaIDIn applies the In predicate on the "master_idea_id" field.
func MasterIdeaIDIn(vs ...uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldMasterIdeaID, vs...))
}

// MasterIdeaIDNotIn applies the NotIn predicate on the "master_idea_id" field.
func MasterIdeaIDNotIn(vs ...uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldMasterIdeaID, vs...))
}

// MasterIdeaIDGT applies the GT predicate on the "master_idea_id" field.
func MasterIdeaIDGT(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldMasterIdeaID, v))
}

// MasterIdeaIDGTE applies the GTE predicate on the "master_idea_id" field.
func MasterIdeaIDGTE(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldMasterIdeaID, v))
}

// MasterIdeaIDLT applies the LT predicate on the "master_idea_id" field.
func MasterIdeaIDLT(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldMasterIdeaID, v))
}

// MasterIdeaIDLTE applies the LTE predicate on the "master_idea_id" field.
func MasterIdeaIDLTE(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldMasterIdeaID, v))
}

// MasterIdeaIDIsNil applies the IsNil predicate on the "master_idea_id" field.
func MasterIdeaIDIsNil() predicate.Idea {
	return predicate.Idea(sql.FieldIsNull(FieldMasterIdeaID))
}

// MasterIdeaIDNotNil applies the NotNil predicate on the "master_idea_id" field.
func MasterIdeaIDNotNil() predicate.Idea {
	return predicate.Idea(sql.FieldNotNull(FieldMasterIdeaID))
}

// ParentRecordingIDEQ applies the EQ predicate on the "parent_recording_id" field.
func ParentRecordingIDEQ(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldParentRecordingID, v))
}

// ParentRecordingIDNEQ applies the NEQ predicate on the "parent_recording_id" field.
func ParentRecordingIDNEQ(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldParentRecordingID, v))
}

// ParentRecordingIDIn applies the In predicate on the "parent_recording_id" field.
func ParentRecordingIDIn(vs ...uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldParentRecordingID, vs...))
}

// ParentRecordingIDNotIn applies the NotIn predicate on the "parent_recording_id" field.
func ParentRecordingIDNotIn(vs ...uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldParentRecordingID, vs...))
}

// ParentRecordingIDGT applies the GT predicate on the "parent_recording_id" field.
func ParentRecordingIDGT(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldParentRecordingID, v))
}

// ParentRecordingIDGTE applies the GTE predicate on the "parent_recording_id" field.
func ParentRecordingIDGTE(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldParentRecordingID, v))
}

// ParentRecordingIDLT applies the LT predicate on the "parent_recording_id" field.
func ParentRecordingIDLT(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldParentRecordingID, v))
}

// ParentRecordingIDLTE applies the LTE predicate on the "parent_recording_id" field.
func ParentRecordingIDLTE(v uuid.UUID) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldParentRecordingID, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Idea {
	return predicate.Idea(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Idea {
	return predicate.Idea(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Idea) predicate.Idea {
	return predicate.Idea(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Idea) predicate.Idea {
	return predicate.Idea(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Idea) predicate.Idea {
	return predicate.Idea(sql.NotPredicates(p))
}
