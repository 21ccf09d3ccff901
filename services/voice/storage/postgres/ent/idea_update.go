// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/echonote/backend/services/voice/storage/postgres/ent/idea"
	"github.com/echonote/backend/services/voice/storage/postgres/ent/predicate"
	"github.com/google/uuid"
)

// IdeaUpdate is the builder for updating Idea entities.
type IdeaUpdate struct {
	config
	hooks    []Hook
	mutation *IdeaMutation
}

// Where appends a list predicates to the IdeaUpdate builder.
func (iu *IdeaUpdate) Where(ps ...predicate.Idea) *IdeaUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetUserID sets the "user_id" field.
func (iu *IdeaUpdate) SetUserID(u uuid.UUID) *IdeaUpdate {
	iu.mutation.SetUserID(u)
	return iu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableUserID(u *uuid.UUID) *IdeaUpdate {
	if u != nil {
		iu.SetUserID(*u)
	}
	return iu
}

// SetContent sets the "content" field.
func (iu *IdeaUpdate) SetContent(s string) *IdeaUpdate {
	iu.mutation.SetContent(s)
	return iu
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableContent(s *string) *IdeaUpdate {
	if s != nil {
		iu.SetContent(*s)
	}
	return iu
}

// SetOriginalTranscription sets the "original_transcription" field.
func (iu *IdeaUpdate) SetOriginalTranscription(s string) *IdeaUpdate {
	iu.mutation.SetOriginalTranscription(s)
	return iu
}

// SetNillableOriginalTranscription sets the "original_transcription" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableOriginalTranscription(s *string) *IdeaUpdate {
	if s != nil {
		iu.SetOriginalTranscription(*s)
	}
	return iu
}

// ClearOriginalTranscription clears the value of the "original_transcription" field.
func (iu *IdeaUpdate) ClearOriginalTranscription() *IdeaUpdate {
	iu.mutation.ClearOriginalTranscription()
	return iu
}

// SetIdeaType sets the "idea_type" field.
func (iu *IdeaUpdate) SetIdeaType(it idea.IdeaType) *IdeaUpdate {
	iu.mutation.SetIdeaType(it)
	return iu
}

// SetNillableIdeaType sets the "idea_type" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableIdeaType(it *idea.IdeaType) *IdeaUpdate {
	if it != nil {
		iu.SetIdeaType(*it)
	}
	return iu
}

// SetCategory sets the "category" field.
func (iu *IdeaUpdate) SetCategory(s string) *IdeaUpdate {
	iu.mutation.SetCategory(s)
	return iu
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableCategory(s *string) *IdeaUpdate {
	if s != nil {
		iu.SetCategory(*s)
	}
	return iu
}

// ClearCategory clears the value of the "category" field.
func (iu *IdeaUpdate) ClearCategory() *IdeaUpdate {
	iu.mutation.ClearCategory()
	return iu
}

// SetSequence sets the "sequence" field.
func (iu *IdeaUpdate) SetSequence(i int) *IdeaUpdate {
	iu.mutation.ResetSequence()
	iu.mutation.SetSequence(i)
	return iu
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableSequence(i *int) *IdeaUpdate {
	if i != nil {
		iu.SetSequence(*i)
	}
	return iu
}

// AddSequence adds i to the "sequence" field.
func (iu *IdeaUpdate) AddSequence(i int) *IdeaUpdate {
	iu.mutation.AddSequence(i)
	return iu
}

// SetTags sets the "tags" field.
func (iu *IdeaUpdate) SetTags(s []string) *IdeaUpdate {
	iu.mutation.SetTags(s)
	return iu
}

// AppendTags appends s to the "tags" field.
func (iu *IdeaUpdate) AppendTags(s []string) *IdeaUpdate {
	iu.mutation.AppendTags(s)
	return iu
}

// ClearTags clears the value of the "tags" field.
func (iu *IdeaUpdate) ClearTags() *IdeaUpdate {
	iu.mutation.ClearTags()
	return iu
}

// SetAiAutoTags sets the "ai_auto_tags" field.
func (iu *IdeaUpdate) SetAiAutoTags(s []string) *IdeaUpdate {
	iu.mutation.SetAiAutoTags(s)
	return iu
}

// AppendAiAutoTags appends s to the "ai_auto_tags" field.
func (iu *IdeaUpdate) AppendAiAutoTags(s []string) *IdeaUpdate {
	iu.mutation.AppendAiAutoTags(s)
	return iu
}

// ClearAiAutoTags clears the value of the "ai_auto_tags" field.
func (iu *IdeaUpdate) ClearAiAutoTags() *IdeaUpdate {
	iu.mutation.ClearAiAutoTags()
	return iu
}

// SetConfidenceLevel sets the "confidence_level" field.
func (iu *IdeaUpdate) SetConfidenceLevel(f float64) *IdeaUpdate {
	iu.mutation.ResetConfidenceLevel()
	iu.mutation.SetConfidenceLevel(f)
	return iu
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableConfidenceLevel(f *float64) *IdeaUpdate {
	if f != nil {
		iu.SetConfidenceLevel(*f)
	}
	return iu
}

// AddConfidenceLevel adds f to the "confidence_level" field.
func (iu *IdeaUpdate) AddConfidenceLevel(f float64) *IdeaUpdate {
	iu.mutation.AddConfidenceLevel(f)
	return iu
}

// SetNeedsClarification sets the "needs_clarification" field.
func (iu *IdeaUpdate) SetNeedsClarification(b bool) *IdeaUpdate {
	iu.mutation.SetNeedsClarification(b)
	return iu
}

// SetNillableNeedsClarification sets the "needs_clarification" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableNeedsClarification(b *bool) *IdeaUpdate {
	if b != nil {
		iu.SetNeedsClarification(*b)
	}
	return iu
}

// SetClarificationQuestion sets the "clarification_question" field.
func (iu *IdeaUpdate) SetClarificationQuestion(s string) *IdeaUpdate {
	iu.mutation.SetClarificationQuestion(s)
	return iu
}

// SetNillableClarificationQuestion sets the "clarification_question" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableClarificationQuestion(s *string) *IdeaUpdate {
	if s != nil {
		iu.SetClarificationQuestion(*s)
	}
	return iu
}

// ClearClarificationQuestion clears the value of the "clarification_question" field.
func (iu *IdeaUpdate) ClearClarificationQuestion() *IdeaUpdate {
	iu.mutation.ClearClarificationQuestion()
	return iu
}

// SetMasterIdeaID sets the "master_idea_id" field.
func (iu *IdeaUpdate) SetMasterIdeaID(u uuid.UUID) *IdeaUpdate {
	iu.mutation.SetMasterIdeaID(u)
	return iu
}

// SetNillableMasterIdeaID sets the "master_idea_id" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableMasterIdeaID(u *uuid.UUID) *IdeaUpdate {
	if u != nil {
		iu.SetMasterIdeaID(*u)
	}
	return iu
}

// ClearMasterIdeaID clears the value of the "master_idea_id" field.
func (iu *IdeaUpdate) ClearMasterIdeaID() *IdeaUpdate {
	iu.mutation.ClearMasterIdeaID()
	return iu
}

// SetParentRecordingID sets the "parent_recording_id" field.
func (iu *IdeaUpdate) SetParentRecordingID(u uuid.UUID) *IdeaUpdate {
	iu.mutation.SetParentRecordingID(u)
	return iu
}

// SetNillableParentRecordingID sets the "parent_recording_id" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableParentRecordingID(u *uuid.UUID) *IdeaUpdate {
	if u != nil {
		iu.SetParentRecordingID(*u)
	}
	return iu
}

// SetEmbedding sets the "embedding" field.
func (iu *IdeaUpdate) SetEmbedding(f []float64) *IdeaUpdate {
	iu.mutation.SetEmbedding(f)
	return iu
}

// AppendEmbedding appends f to the "embedding" field.
func (iu *IdeaUpdate) AppendEmbedding(f []float64) *IdeaUpdate {
	iu.mutation.AppendEmbedding(f)
	return iu
}

// ClearEmbedding clears the value of the "embedding" field.
func (iu *IdeaUpdate) ClearEmbedding() *IdeaUpdate {
	iu.mutation.ClearEmbedding()
	return iu
}

// SetCreatedAt sets the "created_at" field.
func (iu *IdeaUpdate) SetCreatedAt(t time.Time) *IdeaUpdate {
	iu.mutation.SetCreatedAt(t)
	return iu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableCreatedAt(t *time.Time) *IdeaUpdate {
	if t != nil {
		iu.SetCreatedAt(*t)
	}
	return iu
}

// SetUpdatedAt sets the "updated_at" field.
func (iu *IdeaUpdate) SetUpdatedAt(t time.Time) *IdeaUpdate {
	iu.mutation.SetUpdatedAt(t)
	return iu
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (iu *IdeaUpdate) SetNillableUpdatedAt(t *time.Time) *IdeaUpdate {
	if t != nil {
		iu.SetUpdatedAt(*t)
	}
	return iu
}

// Mutation returns the IdeaMutation object of the builder.
func (iu *IdeaUpdate) Mutation() *IdeaMutation {
	return iu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *IdeaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *IdeaUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *IdeaUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *IdeaUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *IdeaUpdate) check() error {
	if v, ok := iu.mutation.IdeaType(); ok {
		if err := idea.IdeaTypeValidator(v); err != nil {
			return &ValidationError{Name: "idea_type", err: fmt.Errorf(`ent: validator failed for field "Idea.idea_type": %w`, err)}
		}
	}
	return nil
}

func (iu *IdeaUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(idea.Table, idea.Columns, sqlgraph.NewFieldSpec(idea.FieldID, field.TypeUUID))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.UserID(); ok {
		_spec.SetField(idea.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := iu.mutation.Content(); ok {
		_spec.SetField(idea.FieldContent, field.TypeString, value)
	}
	if value, ok := iu.mutation.OriginalTranscription(); ok {
		_spec.SetField(idea.FieldOriginalTranscription, field.TypeString, value)
	}
	if iu.mutation.OriginalTranscriptionCleared() {
		_spec.ClearField(idea.FieldOriginalTranscription, field.TypeString)
	}
	if value, ok := iu.mutation.IdeaType(); ok {
		_spec.SetField(idea.FieldIdeaType, field.TypeEnum, value)
	}
	if value, ok := iu.mutation.Category(); ok {
		_spec.SetField(idea.FieldCategory, field.TypeString, value)
	}
	if iu.mutation.CategoryCleared() {
		_spec.ClearField(idea.FieldCategory, field.TypeString)
	}
	if value, ok := iu.mutation.Sequence(); ok {
		_spec.SetField(idea.FieldSequence, field.TypeInt, value)
	}
	if value, ok := iu.mutation.AddedSequence(); ok {
		_spec.AddField(idea.FieldSequence, field.TypeInt, value)
	}
	if value, ok := iu.mutation.Tags(); ok {
		_spec.SetField(idea.FieldTags, field.TypeJSON, value)
	}
	if value, ok := iu.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, idea.FieldTags, value)
		})
	}
	if iu.mutation.TagsCleared() {
		_spec.ClearField(idea.FieldTags, field.TypeJSON)
	}
	if value, ok := iu.mutation.AiAutoTags(); ok {
		_spec.SetField(idea.FieldAiAutoTags, field.TypeJSON, value)
	}
	if value, ok := iu.mutation.AppendedAiAutoTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, idea.FieldAiAutoTags, value)
		})
	}
	if iu.mutation.AiAutoTagsCleared() {
		_spec.ClearField(idea.FieldAiAutoTags, field.TypeJSON)
	}
	if value, ok := iu.mutation.ConfidenceLevel(); ok {
		_spec.SetField(idea.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.AddedConfidenceLevel(); ok {
		_spec.AddField(idea.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.NeedsClarification(); ok {
		_spec.SetField(idea.FieldNeedsClarification, field.TypeBool, value)
	}
	if value, ok := iu.mutation.ClarificationQuestion(); ok {
		_spec.SetField(idea.FieldClarificationQuestion, field.TypeString, value)
	}
	if iu.mutation.ClarificationQuestionCleared() {
		_spec.ClearField(idea.FieldClarificationQuestion, field.TypeString)
	}
	if value, ok := iu.mutation.MasterIdeaID(); ok {
		_spec.SetField(idea.FieldMasterIdeaID, field.TypeUUID, value)
	}
	if iu.mutation.MasterIdeaIDCleared() {
		_spec.ClearField(idea.FieldMasterIdeaID, field.TypeUUID)
	}
	if value, ok := iu.mutation.ParentRecordingID(); ok {
		_spec.SetField(idea.FieldParentRecordingID, field.TypeUUID, value)
	}
	if value, ok := iu.mutation.Embedding(); ok {
		_spec.SetField(idea.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := iu.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, idea.FieldEmbedding, value)
		})
	}
	if iu.mutation.EmbeddingCleared() {
		_spec.ClearField(idea.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := iu.mutation.CreatedAt(); ok {
		_spec.SetField(idea.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := iu.mutation.UpdatedAt(); ok {
		_spec.SetField(idea.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{idea.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// IdeaUpdateOne is the builder for updating a single Idea entity.
type IdeaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IdeaMutation
}

// SetUserID sets the "user_id" field.
func (iuo *IdeaUpdateOne) SetUserID(u uuid.UUID) *IdeaUpdateOne {
	iuo.mutation.SetUserID(u)
	return iuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableUserID(u *uuid.UUID) *IdeaUpdateOne {
	if u != nil {
		iuo.SetUserID(*u)
	}
	return iuo
}

// SetContent sets the "content" field.
func (iuo *IdeaUpdateOne) SetContent(s string) *IdeaUpdateOne {
	iuo.mutation.SetContent(s)
	return iuo
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableContent(s *string) *IdeaUpdateOne {
	if s != nil {
		iuo.SetContent(*s)
	}
	return iuo
}

// SetOriginalTranscription sets the "original_transcription" field.
func (iuo *IdeaUpdateOne) SetOriginalTranscription(s string) *IdeaUpdateOne {
	iuo.mutation.SetOriginalTranscription(s)
	return iuo
}

// SetNillableOriginalTranscription sets the "original_transcription" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableOriginalTranscription(s *string) *IdeaUpdateOne {
	if s != nil {
		iuo.SetOriginalTranscription(*s)
	}
	return iuo
}

// ClearOriginalTranscription clears the value of the "original_transcription" field.
func (iuo *IdeaUpdateOne) ClearOriginalTranscription() *IdeaUpdateOne {
	iuo.mutation.ClearOriginalTranscription()
	return iuo
}

// SetIdeaType sets the "idea_type" field.
func (iuo *IdeaUpdateOne) SetIdeaType(it idea.IdeaType) *IdeaUpdateOne {
	iuo.mutation.SetIdeaType(it)
	return iuo
}

// SetNillableIdeaType sets the "idea_type" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableIdeaType(it *idea.IdeaType) *IdeaUpdateOne {
	if it != nil {
		iuo.SetIdeaType(*it)
	}
	return iuo
}

// SetCategory sets the "category" field.
func (iuo *IdeaUpdateOne) SetCategory(s string) *IdeaUpdateOne {
	iuo.mutation.SetCategory(s)
	return iuo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableCategory(s *string) *IdeaUpdateOne {
	if s != nil {
		iuo.SetCategory(*s)
	}
	return iuo
}

// ClearCategory clears the value of the "category" field.
func (iuo *IdeaUpdateOne) ClearCategory() *IdeaUpdateOne {
	iuo.mutation.ClearCategory()
	return iuo
}

// SetSequence sets the "sequence" field.
func (iuo *IdeaUpdateOne) SetSequence(i int) *IdeaUpdateOne {
	iuo.mutation.ResetSequence()
	iuo.mutation.SetSequence(i)
	return iuo
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableSequence(i *int) *IdeaUpdateOne {
	if i != nil {
		iuo.SetSequence(*i)
	}
	return iuo
}

// AddSequence adds i to the "sequence" field.
func (iuo *IdeaUpdateOne) AddSequence(i int) *IdeaUpdateOne {
	iuo.mutation.AddSequence(i)
	return iuo
}

// SetTags sets the "tags" field.
func (iuo *IdeaUpdateOne) SetTags(s []string) *IdeaUpdateOne {
	iuo.mutation.SetTags(s)
	return iuo
}

// AppendTags appends s to the "tags" field.
func (iuo *IdeaUpdateOne) AppendTags(s []string) *IdeaUpdateOne {
	iuo.mutation.AppendTags(s)
	return iuo
}

// ClearTags clears the value of the "tags" field.
func (iuo *IdeaUpdateOne) ClearTags() *IdeaUpdateOne {
	iuo.mutation.ClearTags()
	return iuo
}

// SetAiAutoTags sets the "ai_auto_tags" field.
func (iuo *IdeaUpdateOne) SetAiAutoTags(s []string) *IdeaUpdateOne {
	iuo.mutation.SetAiAutoTags(s)
	return iuo
}

// AppendAiAutoTags appends s to the "ai_auto_tags" field.
func (iuo *IdeaUpdateOne) AppendAiAutoTags(s []string) *IdeaUpdateOne {
	iuo.mutation.AppendAiAutoTags(s)
	return iuo
}

// ClearAiAutoTags clears the value of the "ai_auto_tags" field.
func (iuo *IdeaUpdateOne) ClearAiAutoTags() *IdeaUpdateOne {
	iuo.mutation.ClearAiAutoTags()
	return iuo
}

// SetConfidenceLevel sets the "confidence_level" field.
func (iuo *IdeaUpdateOne) SetConfidenceLevel(f float64) *IdeaUpdateOne {
	iuo.mutation.ResetConfidenceLevel()
	iuo.mutation.SetConfidenceLevel(f)
	return iuo
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableConfidenceLevel(f *float64) *IdeaUpdateOne {
	if f != nil {
		iuo.SetConfidenceLevel(*f)
	}
	return iuo
}

// AddConfidenceLevel adds f to the "confidence_level" field.
func (iuo *IdeaUpdateOne) AddConfidenceLevel(f float64) *IdeaUpdateOne {
	iuo.mutation.AddConfidenceLevel(f)
	return iuo
}

// SetNeedsClarification sets the "needs_clarification" field.
func (iuo *IdeaUpdateOne) SetNeedsClarification(b bool) *IdeaUpdateOne {
	iuo.mutation.SetNeedsClarification(b)
	return iuo
}

// SetNillableNeedsClarification sets the "needs_clarification" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableNeedsClarification(b *bool) *IdeaUpdateOne {
	if b != nil {
		iuo.SetNeedsClarification(*b)
	}
	return iuo
}

// SetClarificationQuestion sets the "clarification_question" field.
func (iuo *IdeaUpdateOne) SetClarificationQuestion(s string) *IdeaUpdateOne {
	iuo.mutation.SetClarificationQuestion(s)
	return iuo
}

// SetNillableClarificationQuestion sets the "clarification_question" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableClarificationQuestion(s *string) *IdeaUpdateOne {
	if s != nil {
		iuo.SetClarificationQuestion(*s)
	}
	return iuo
}

// ClearClarificationQuestion clears the value of the "clarification_question" field.
func (iuo *IdeaUpdateOne) ClearClarificationQuestion() *IdeaUpdateOne {
	iuo.mutation.ClearClarificationQuestion()
	return iuo
}

// SetMasterIdeaID sets the "master_idea_id" field.
func (iuo *IdeaUpdateOne) SetMasterIdeaID(u uuid.UUID) *IdeaUpdateOne {
	iuo.mutation.SetMasterIdeaID(u)
	return iuo
}

// SetNillableMasterIdeaID sets the "master_idea_id" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableMasterIdeaID(u *uuid.UUID) *IdeaUpdateOne {
	if u != nil {
		iuo.SetMasterIdeaID(*u)
	}
	return iuo
}

// ClearMasterIdeaID clears the value of the "master_idea_id" field.
func (iuo *IdeaUpdateOne) ClearMasterIdeaID() *IdeaUpdateOne {
	iuo.mutation.ClearMasterIdeaID()
	return iuo
}

// SetParentRecordingID sets the "parent_recording_id" field.
func (iuo *IdeaUpdateOne) SetParentRecordingID(u uuid.UUID) *IdeaUpdateOne {
	iuo.mutation.SetParentRecordingID(u)
	return iuo
}

// SetNillableParentRecordingID sets the "parent_recording_id" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableParentRecordingID(u *uuid.UUID) *IdeaUpdateOne {
	if u != nil {
		iuo.SetParentRecordingID(*u)
	}
	return iuo
}

// SetEmbedding sets the "embedding" field.
func (iuo *IdeaUpdateOne) SetEmbedding(f []float64) *IdeaUpdateOne {
	iuo.mutation.SetEmbedding(f)
	return iuo
}

// AppendEmbedding appends f to the "embedding" field.
func (iuo *IdeaUpdateOne) AppendEmbedding(f []float64) *IdeaUpdateOne {
	iuo.mutation.AppendEmbedding(f)
	return iuo
}

// ClearEmbedding clears the value of the "embedding" field.
func (iuo *IdeaUpdateOne) ClearEmbedding() *IdeaUpdateOne {
	iuo.mutation.ClearEmbedding()
	return iuo
}

// SetCreatedAt sets the "created_at" field.
func (iuo *IdeaUpdateOne) SetCreatedAt(t time.Time) *IdeaUpdateOne {
	iuo.mutation.SetCreatedAt(t)
	return iuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableCreatedAt(t *time.Time) *IdeaUpdateOne {
	if t != nil {
		iuo.SetCreatedAt(*t)
	}
	return iuo
}

// SetUpdatedAt sets the "updated_at" field.
func (iuo *IdeaUpdateOne) SetUpdatedAt(t time.Time) *IdeaUpdateOne {
	iuo.mutation.SetUpdatedAt(t)
	return iuo
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (iuo *IdeaUpdateOne) SetNillableUpdatedAt(t *time.Time) *IdeaUpdateOne {
	if t != nil {
		iuo.SetUpdatedAt(*t)
	}
	return iuo
}

// Mutation returns the IdeaMutation object of the builder.
func (iuo *IdeaUpdateOne) Mutation() *IdeaMutation {
	return iuo.mutation
}

// Where appends a list predicates to the IdeaUpdate builder.
func (iuo *IdeaUpdateOne) Where(ps ...predicate.Idea) *IdeaUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *IdeaUpdateOne) Select(field string, fields ...string) *IdeaUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Idea entity.
func (iuo *IdeaUpdateOne) Save(ctx context.Context) (*Idea, error) {
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *IdeaUpdateOne) SaveX(ctx context.Context) *Idea {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *IdeaUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *IdeaUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *IdeaUpdateOne) check() error {
	if v, ok := iuo.mutation.IdeaType(); ok {
		if err := idea.IdeaTypeValidator(v); err != nil {
			return &ValidationError{Name: "idea_type", err: fmt.Errorf(`ent: validator failed for field "Idea.idea_type": %w`, err)}
		}
	}
	return nil
}

func (iuo *IdeaUpdateOne) sqlSave(ctx context.Context) (_node *Idea, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(idea.Table, idea.Columns, sqlgraph.NewFieldSpec(idea.FieldID, field.TypeUUID))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Idea.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, idea.FieldID)
		for _, f := range fields {
			if !idea.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != idea.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.UserID(); ok {
		_spec.SetField(idea.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := iuo.mutation.Content(); ok {
		_spec.SetField(idea.FieldContent, field.TypeString, value)
	}
	if value, ok := iuo.mutation.OriginalTranscription(); ok {
		_spec.SetField(idea.FieldOriginalTranscription, field.TypeString, value)
	}
	if iuo.mutation.OriginalTranscriptionCleared() {
		_spec.ClearField(idea.FieldOriginalTranscription, field.TypeString)
	}
	if value, ok := iuo.mutation.IdeaType(); ok {
		_spec.SetField(idea.FieldIdeaType, field.TypeEnum, value)
	}
	if value, ok := iuo.mutation.Category(); ok {
		_spec.SetField(idea.FieldCategory, field.TypeString, value)
	}
	if iuo.mutation.CategoryCleared() {
		_spec.ClearField(idea.FieldCategory, field.TypeString)
	}
	if value, ok := iuo.mutation.Sequence(); ok {
		_spec.SetField(idea.FieldSequence, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.AddedSequence(); ok {
		_spec.AddField(idea.FieldSequence, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.Tags(); ok {
		_spec.SetField(idea.FieldTags, field.TypeJSON, value)
	}
	if value, ok := iuo.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, idea.FieldTags, value)
		})
	}
	if iuo.mutation.TagsCleared() {
		_spec.ClearField(idea.FieldTags, field.TypeJSON)
	}
	if value, ok := iuo.mutation.AiAutoTags(); ok {
		_spec.SetField(idea.FieldAiAutoTags, field.TypeJSON, value)
	}
	if value, ok := iuo.mutation.AppendedAiAutoTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, idea.FieldAiAutoTags, value)
		})
	}
	if iuo.mutation.AiAutoTagsCleared() {
		_spec.ClearField(idea.FieldAiAutoTags, field.TypeJSON)
	}
	if value, ok := iuo.mutation.ConfidenceLevel(); ok {
		_spec.SetField(idea.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.AddedConfidenceLevel(); ok {
		_spec.AddField(idea.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.NeedsClarification(); ok {
		_spec.SetField(idea.FieldNeedsClarification, field.TypeBool, value)
	}
	if value, ok := iuo.mutation.ClarificationQuestion(); ok {
		_spec.SetField(idea.FieldClarificationQuestion, field.TypeString, value)
	}
	if iuo.mutation.ClarificationQuestionCleared() {
		_spec.ClearField(idea.FieldClarificationQuestion, field.TypeString)
	}
	if value, ok := iuo.mutation.MasterIdeaID(); ok {
		_spec.SetField(idea.FieldMasterIdeaID, field.TypeUUID, value)
	}
	if iuo.mutation.MasterIdeaIDCleared() {
		_spec.ClearField(idea.FieldMasterIdeaID, field.TypeUUID)
	}
	if value, ok := iuo.mutation.ParentRecordingID(); ok {
		_spec.SetField(idea.FieldParentRecordingID, field.TypeUUID, value)
	}
	if value, ok := iuo.mutation.Embedding(); ok {
		_spec.SetField(idea.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := iuo.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, idea.FieldEmbedding, value)
		})
	}
	if iuo.mutation.EmbeddingCleared() {
		_spec.ClearField(idea.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := iuo.mutation.CreatedAt(); ok {
		_spec.SetField(idea.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := iuo.mutation.UpdatedAt(); ok {
		_spec.SetField(idea.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Idea{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{idea.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
