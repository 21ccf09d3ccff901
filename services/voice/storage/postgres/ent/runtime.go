// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/echonote/backend/services/voice/storage/postgres/ent/category"
	"github.com/echonote/backend/services/voice/storage/postgres/ent/idea"
	"github.com/echonote/backend/services/voice/storage/postgres/ent/profile"
	"github.com/echonote/backend/services/voice/storage/postgres/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescIsDefault is the schema descriptor for is_default field.
	categoryDescIsDefault := categoryFields[2].Descriptor()
	// category.DefaultIsDefault holds the default value on creation for the is_default field.
	category.DefaultIsDefault = categoryDescIsDefault.Default.(bool)
	// categoryDescCreatedAt is the schema descriptor for created_at field.
	categoryDescCreatedAt := categoryFields[3].Descriptor()
	// category.DefaultCreatedAt holds the default value on creation for the created_at field.
	category.DefaultCreatedAt = categoryDescCreatedAt.Default.(time.Time)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	ideaFields := schema.Idea{}.Fields()
	_ = ideaFields
	// ideaDescSequence is the schema descriptor for sequence field.
	ideaDescSequence := ideaFields[6].Descriptor()
	// idea.DefaultSequence holds the default value on creation for the sequence field.
	idea.DefaultSequence = ideaDescSequence.Default.(int)
	// ideaDescConfidenceLevel is the schema descriptor for confidence_level field.
	ideaDescConfidenceLevel := ideaFields[9].Descriptor()
	// idea.DefaultConfidenceLevel holds the default value on creation for the confidence_level field.
	idea.DefaultConfidenceLevel = ideaDescConfidenceLevel.Default.(float64)
	// ideaDescNeedsClarification is the schema descriptor for needs_clarification field.
	ideaDescNeedsClarification := ideaFields[10].Descriptor()
	// idea.DefaultNeedsClarification holds the default value on creation for the needs_clarification field.
	idea.DefaultNeedsClarification = ideaDescNeedsClarification.Default.(bool)
	// ideaDescCreatedAt is the schema descriptor for created_at field.
	ideaDescCreatedAt := ideaFields[15].Descriptor()
	// idea.DefaultCreatedAt holds the default value on creation for the created_at field.
	idea.DefaultCreatedAt = ideaDescCreatedAt.Default.(time.Time)
	// ideaDescUpdatedAt is the schema descriptor for updated_at field.
	ideaDescUpdatedAt := ideaFields[16].Descriptor()
	// idea.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	idea.DefaultUpdatedAt = ideaDescUpdatedAt.Default.(time.Time)
	// ideaDescID is the schema descriptor for id field.
	ideaDescID := ideaFields[0].Descriptor()
	// idea.DefaultID holds the default value on creation for the id field.
	idea.DefaultID = ideaDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
}
