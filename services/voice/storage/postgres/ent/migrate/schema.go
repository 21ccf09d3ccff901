// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// IdeasColumns holds the columns for the "ideas" table.
	IdeasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "original_transcription", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "idea_type", Type: field.TypeEnum, Enums: []string{"main", "sub-component", "follow-up"}, Default: "main"},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "sequence", Type: field.TypeInt, Default: 1},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "ai_auto_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence_level", Type: field.TypeFloat64, Default: 1},
		{Name: "needs_clarification", Type: field.TypeBool, Default: false},
		{Name: "clarification_question", Type: field.TypeString, Nullable: true},
		{Name: "master_idea_id", Type: field.TypeUUID, Nullable: true},
		{Name: "parent_recording_id", Type: field.TypeUUID},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IdeasTable holds the schema information for the "ideas" table.
	IdeasTable = &schema.Table{
		Name:       "ideas",
		Columns:    IdeasColumns,
		PrimaryKey: []*schema.Column{IdeasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idea_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{IdeasColumns[1], IdeasColumns[15]},
			},
			{
				Name:    "idea_parent_recording_id",
				Unique:  false,
				Columns: []*schema.Column{IdeasColumns[13]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "api_key", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		IdeasTable,
		ProfilesTable,
	}
)

func init() {
}
