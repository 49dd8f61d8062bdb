// Package item holds the Item record (spec.md §3, within cs_<tenant>) and
// the repository contract the rest of Document Server programs against.
package item

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no item matches the requested id.
var ErrNotFound = errors.New("item not found")

// Item is one cs_<tenant>.item row: a named thing that may be linked to a
// file and carries zero or more tag values.
type Item struct {
	ID              int64
	Name            string
	CreatedGMT      time.Time
	LastModifiedGMT time.Time
	FileRef         *string
}

// Repository persists and queries items within one tenant's content schema.
// Every method takes schema (the cs_<code> name resolved by
// pkg/tenant), since one Document Server process serves
// every tenant through a single content_pool connection pool.
type Repository interface {
	Create(ctx context.Context, schema string, it *Item) (int64, error)
	Get(ctx context.Context, schema string, id int64) (*Item, error)
	List(ctx context.Context, schema string, startPage, pageSize int) ([]*Item, error)
	// Search runs where (built by pkg/filter.GenerateSQL) joined against
	// joins, returning the matching items in filter order.
	Search(ctx context.Context, schema string, joins []string, where string, startPage, pageSize int) ([]*Item, error)
	Touch(ctx context.Context, schema string, id int64, lastModifiedGMT time.Time) error
}
