// Package filepart holds the FilePart record (spec.md §3,
// fs_<tenant>.file_parts): the metadata row that exists for every stored
// part regardless of which PartStore backend actually holds its ciphertext
// bytes (internal/fileserver/partstore).
package filepart

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no row matches the requested part_number.
var ErrNotFound = errors.New("file part not found")

// FilePart is one fs_<tenant>.file_parts row. PartData is nil when the
// ciphertext lives in an external PartStore backend (e.g. S3) rather than
// in this column.
type FilePart struct {
	ID              int64
	FileReferenceID int64
	PartNumber      int
	IsEncrypted     bool
	PartData        *string
}

// Repository persists and queries part metadata within one tenant's file
// schema. It never interprets PartData; PartStore implementations decide
// whether to populate it.
type Repository interface {
	Insert(ctx context.Context, schema string, fileReferenceID int64, partNumber int, partData *string) (int64, error)
	Get(ctx context.Context, schema string, fileReferenceID int64, partNumber int) (*FilePart, error)
	// Count returns how many parts are currently stored for fileReferenceID
	// — spec.md §4.6's "encrypted_count".
	Count(ctx context.Context, schema string, fileReferenceID int64) (int, error)
}
