// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Idea is the predicate function for idea builders.
type Idea func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
