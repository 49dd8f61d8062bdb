// Package tagdefinition holds the TagDefinition record (spec.md §3) and its
// repository contract. TagDefinition reuses pkg/filter.TagType for its
// "type" column rather than redefining the seven-kind enum a second time:
// the filter SQL generator already resolves an attribute name to exactly
// this type when it builds a search query.
package tagdefinition

import (
	"context"
	"errors"

	"github.com/doka-one/doka/pkg/filter"
)

// ErrNotFound is returned when no tag definition matches the requested name
// or id.
var ErrNotFound = errors.New("tag definition not found")

// ErrAlreadyExists is returned by Create on a duplicate name.
var ErrAlreadyExists = errors.New("tag definition already exists")

// TagDefinition is one cs_<tenant>.tag_definition row.
type TagDefinition struct {
	ID              int64
	Name            string
	Type            filter.TagType
	StringTagLength *int32 // only meaningful for Text/Link
	DefaultValue    *string
}

// Repository persists and queries tag definitions within one tenant's
// content schema (see pkg/tenant for schema naming).
type Repository interface {
	Create(ctx context.Context, schema string, td *TagDefinition) (int64, error)
	GetByName(ctx context.Context, schema string, name string) (*TagDefinition, error)
	GetByID(ctx context.Context, schema string, id int64) (*TagDefinition, error)
	List(ctx context.Context, schema string) ([]*TagDefinition, error)
	Delete(ctx context.Context, schema string, id int64) error
}
