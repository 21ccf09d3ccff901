// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echonote/backend/services/voice/storage/postgres/ent/idea"
	"github.com/google/uuid"
)

// IdeaCreate is the builder for creating a Idea entity.
type IdeaCreate struct {
	config
	mutation *IdeaMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (ic *IdeaCreate) SetUserID(u uuid.UUID) *IdeaCreate {
	ic.mutation.SetUserID(u)
	return ic
}

// SetContent sets the "content" field.
func (ic *IdeaCreate) SetContent(s string) *IdeaCreate {
	ic.mutation.SetContent(s)
	return ic
}

// SetOriginalTranscription sets the "original_transcription" field.
func (ic *IdeaCreate) SetOriginalTranscription(s string) *IdeaCreate {
	ic.mutation.SetOriginalTranscription(s)
	return ic
}

// SetNillableOriginalTranscription sets the "original_transcription" field if the given value is not nil.
func (ic *IdeaCreate) SetNillableOriginalTranscription(s *string) *IdeaCreate {
	if s != nil {
		ic.SetOriginalTranscription(*s)
	}
	return ic
}

// SetIdeaType sets the "idea_type" field.
func (ic *IdeaCreate) SetIdeaType(it idea.IdeaType) *IdeaCreate {
	ic.mutation.SetIdeaType(it)
	return ic
}

// SetNillableIdeaType sets the "idea_type" field if the given value is not nil.
func (ic *IdeaCreate) SetNillableIdeaType(it *idea.IdeaType) *IdeaCreate {
	if it != nil {
		ic.SetIdeaType(*it)
	}
	return ic
}

// SetCategory sets the "category" field.
func (ic *IdeaCreate) SetCategory(s string) *IdeaCreate {
	ic.mutation.SetCategory(s)
	return ic
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (ic *IdeaCreate) SetNillableCategory(s *string) *IdeaCreate {
	if s != nil {
		ic.SetCategory(*s)
	}
	return ic
}

// SetSequence sets the "sequence" field.
func (ic *IdeaCreate) SetSequence(i int) *IdeaCreate {
	ic.mutation.SetSequence(i)
	return ic
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (ic *IdeaCreate) SetNillableSequence(i *int) *IdeaCreate {
	if i != nil {
		ic.SetSequence(*i)
	}
	return ic
}

// SetTags sets the "tags" field.
func (ic *IdeaCreate) SetTags(s []string) *IdeaCreate {
	ic.mutation.SetTags(s)
	return ic
}

// SetAiAutoTags sets the "ai_auto_tags" field.
func (ic *IdeaCreate) SetAiAutoTags(s []string) *IdeaCreate {
	ic.mutation.SetAiAutoTags(s)
	return ic
}

// SetConfidenceLevel sets the "confidence_level" field.
func (ic *IdeaCreate) SetConfidenceLevel(f float64) *IdeaCreate {
	ic.mutation.SetConfidenceLevel(f)
	return ic
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (ic *IdeaCreate) SetNillableConfidenceLevel(f *float64) *IdeaCreate {
	if f != nil {
		ic.SetConfidenceLevel(*f)
	}
	return ic
}

// SetNeedsClarification sets the "needs_clarification" field.
func (ic *IdeaCreate) SetNeedsClarification(b bool) *IdeaCreate {
	ic.mutation.SetNeedsClarification(b)
	return ic
}

// SetNillableNeedsClarification sets the "needs_clarification" field if the given value is not nil.
func (ic *IdeaCreate) SetNillableNeedsClarification(b *bool) *IdeaCreate {
	if b != nil {
		ic.SetNeedsClarification(*b)
	}
	return ic
}

// SetClarificationQuestion sets the "clarification_question" field.
func (ic *IdeaCreate) SetClarificationQuestion(s string) *IdeaCreate {
	ic.mutation.SetClarificationQuestion(s)
	return ic
}

// SetNillableClarificationQuestion sets the "clarification_question" field if the given value is not nil.
func (ic *IdeaCreate) SetNillableClarificationQuestion(s *string) *IdeaCreate {
	if s != nil {
		ic.SetClarificationQuestion(*s)
	}
	return ic
}

// SetMasterIdeaID sets the "master_idea_id" field.
func (ic *IdeaCreate) SetMasterIdeaID(u uuid.UUID) *IdeaCreate {
	ic.mutation.SetMasterIdeaID(u)
	return ic
}

// SetNillableMasterIdeaID sets the "master_idea_id" field if the given value is not nil.
func (ic *IdeaCreate) SetNillableMasterIdeaID(u *uuid.UUID) *IdeaCreate {
	if u != nil {
		ic.SetMasterIdeaID(*u)
	}
	return ic
}

// SetParentRecordingID sets the "parent_recording_id" field.
func (ic *IdeaCreate) SetParentRecordingID(u uuid.UUID) *IdeaCreate {
	ic.mutation.SetParentRecordingID(u)
	return ic
}

// SetEmbedding sets the "embedding" field.
func (ic *IdeaCreate) SetEmbedding(f []float64) *IdeaCreate {
	ic.mutation.SetEmbedding(f)
	return ic
}

// SetCreatedAt sets the "created_at" field.
func (ic *IdeaCreate) SetCreatedAt(t time.Time) *IdeaCreate {
	ic.mutation.SetCreatedAt(t)
	return ic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ic *IdeaCreate) SetNillableCreatedAt(t *time.Time) *IdeaCreate {
	if t != nil {
		ic.SetCreatedAt(*t)
	}
	return ic
}

// SetUpdatedAt sets the "updated_at" field.
func (ic *IdeaCreate) SetUpdatedAt(t time.Time) *IdeaCreate {
	ic.mutation.SetUpdatedAt(t)
	return ic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ic *IdeaCreate) SetNillableUpdatedAt(t *time.Time) *IdeaCreate {
	if t != nil {
		ic.SetUpdatedAt(*t)
	}
	return ic
}

// SetID sets the "id" field.
func (ic *IdeaCreate) SetID(u uuid.UUID) *IdeaCreate {
	ic.mutation.SetID(u)
	return ic
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ic *IdeaCreate) SetNillableID(u *uuid.UUID) *IdeaCreate {
	if u != nil {
		ic.SetID(*u)
	}
	return ic
}

// Mutation returns the IdeaMutation object of the builder.
func (ic *IdeaCreate) Mutation() *IdeaMutation {
	return ic.mutation
}

// Save creates the Idea in the database.
func (ic *IdeaCreate) Save(ctx context.Context) (*Idea, error) {
	ic.defaults()
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *IdeaCreate) SaveX(ctx context.Context) *Idea {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *IdeaCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *IdeaCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ic *IdeaCreate) defaults() {
	if _, ok := ic.mutation.IdeaType(); !ok {
		v := idea.DefaultIdeaType
		ic.mutation.SetIdeaType(v)
	}
	if _, ok := ic.mutation.Sequence(); !ok {
		v := idea.DefaultSequence
		ic.mutation.SetSequence(v)
	}
	if _, ok := ic.mutation.ConfidenceLevel(); !ok {
		v := idea.DefaultConfidenceLevel
		ic.mutation.SetConfidenceLevel(v)
	}
	if _, ok := ic.mutation.NeedsClarification(); !ok {
		v := idea.DefaultNeedsClarification
		ic.mutation.SetNeedsClarification(v)
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		v := idea.DefaultCreatedAt
		ic.mutation.SetCreatedAt(v)
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		v := idea.DefaultUpdatedAt
		ic.mutation.SetUpdatedAt(v)
	}
	if _, ok := ic.mutation.ID(); !ok {
		v := idea.DefaultID()
		ic.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *IdeaCreate) check() error {
	if _, ok := ic.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Idea.user_id"`)}
	}
	if _, ok := ic.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Idea.content"`)}
	}
	if _, ok := ic.mutation.IdeaType(); !ok {
		return &ValidationError{Name: "idea_type", err: errors.New(`ent: missing required field "Idea.idea_type"`)}
	}
	if v, ok := ic.mutation.IdeaType(); ok {
		if err := idea.IdeaTypeValidator(v); err != nil {
			return &ValidationError{Name: "idea_type", err: fmt.Errorf(`ent: validator failed for field "Idea.idea_type": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Idea.sequence"`)}
	}
	if _, ok := ic.mutation.ConfidenceLevel(); !ok {
		return &ValidationError{Name: "confidence_level", err: errors.New(`ent: missing required field "Idea.confidence_level"`)}
	}
	if _, ok := ic.mutation.NeedsClarification(); !ok {
		return &ValidationError{Name: "needs_clarification", err: errors.New(`ent: missing required field "Idea.needs_clarification"`)}
	}
	if _, ok := ic.mutation.ParentRecordingID(); !ok {
		return &ValidationError{Name: "parent_recording_id", err: errors.New(`ent: missing required field "Idea.parent_recording_id"`)}
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Idea.created_at"`)}
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Idea.updated_at"`)}
	}
	return nil
}

func (ic *IdeaCreate) sqlSave(ctx context.Context) (*Idea, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *IdeaCreate) createSpec() (*Idea, *sqlgraph.CreateSpec) {
	var (
		_node = &Idea{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(idea.Table, sqlgraph.NewFieldSpec(idea.FieldID, field.TypeUUID))
	)
	if id, ok := ic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ic.mutation.UserID(); ok {
		_spec.SetField(idea.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := ic.mutation.Content(); ok {
		_spec.SetField(idea.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := ic.mutation.OriginalTranscription(); ok {
		_spec.SetField(idea.FieldOriginalTranscription, field.TypeString, value)
		_node.OriginalTranscription = value
	}
	if value, ok := ic.mutation.IdeaType(); ok {
		_spec.SetField(idea.FieldIdeaType, field.TypeEnum, value)
		_node.IdeaType = value
	}
	if value, ok := ic.mutation.Category(); ok {
		_spec.SetField(idea.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := ic.mutation.Sequence(); ok {
		_spec.SetField(idea.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := ic.mutation.Tags(); ok {
		_spec.SetField(idea.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := ic.mutation.AiAutoTags(); ok {
		_spec.SetField(idea.FieldAiAutoTags, field.TypeJSON, value)
		_node.AiAutoTags = value
	}
	if value, ok := ic.mutation.ConfidenceLevel(); ok {
		_spec.SetField(idea.FieldConfidenceLevel, field.TypeFloat64, value)
		_node.ConfidenceLevel = value
	}
	if value, ok := ic.mutation.NeedsClarification(); ok {
		_spec.SetField(idea.FieldNeedsClarification, field.TypeBool, value)
		_node.NeedsClarification = value
	}
	if value, ok := ic.mutation.ClarificationQuestion(); ok {
		_spec.SetField(idea.FieldClarificationQuestion, field.TypeString, value)
		_node.ClarificationQuestion = &value
	}
	if value, ok := ic.mutation.MasterIdeaID(); ok {
		_spec.SetField(idea.FieldMasterIdeaID, field.TypeUUID, value)
		_node.MasterIdeaID = &value
	}
	if value, ok := ic.mutation.ParentRecordingID(); ok {
		_spec.SetField(idea.FieldParentRecordingID, field.TypeUUID, value)
		_node.ParentRecordingID = value
	}
	if value, ok := ic.mutation.Embedding(); ok {
		_spec.SetField(idea.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := ic.mutation.CreatedAt(); ok {
		_spec.SetField(idea.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ic.mutation.UpdatedAt(); ok {
		_spec.SetField(idea.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// IdeaCreateBulk is the builder for creating many Idea entities in bulk.
type IdeaCreateBulk struct {
	config
	err      error
	builders []*IdeaCreate
}

// Save creates the Idea entities in the database.
func (icb *IdeaCreateBulk) Save(ctx context.Context) ([]*Idea, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Idea, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IdeaMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *IdeaCreateBulk) SaveX(ctx context.Context) []*Idea {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *IdeaCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *IdeaCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}
