// Package filereference holds the FileReference record (spec.md §3,
// fs_<tenant>.file_reference) and its repository contract: the per-file
// bookkeeping row an upload creates before any part exists and the
// background processor updates as indexing/preview passes complete.
package filereference

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no row matches the requested file_ref.
var ErrNotFound = errors.New("file reference not found")

// FileReference is one fs_<tenant>.file_reference row. TotalPart is nil
// while the upload transaction that created the row is still in flight
// (spec.md §4.6 step 4: inserted with total_part=NULL, set at step 6).
type FileReference struct {
	ID                 int64
	FileRef            string
	ItemInfo           *string
	MimeType           *string
	Checksum           *string
	OriginalFileSize   *int64
	EncryptedFileSize  *int64
	TotalPart          *int32
	IsFulltextParsed   bool
	IsPreviewGenerated bool
}

// Repository persists and queries file references within one tenant's file
// schema (see pkg/tenant for schema naming).
type Repository interface {
	// Create inserts fr with TotalPart left NULL; the caller fills ID.
	Create(ctx context.Context, schema string, fr *FileReference) (int64, error)
	GetByFileRef(ctx context.Context, schema, fileRef string) (*FileReference, error)
	// SetTotalPart closes the upload: total_part=N, encrypted_file_size=size.
	SetTotalPart(ctx context.Context, schema, fileRef string, totalPart int, encryptedFileSize int64) error
	SetFulltextParsed(ctx context.Context, schema, fileRef string, value bool) error
	SetPreviewGenerated(ctx context.Context, schema, fileRef string, value bool) error
	// ListLoading returns references whose upload transaction hasn't closed
	// yet (total_part still NULL).
	ListLoading(ctx context.Context, schema string) ([]*FileReference, error)
	// ListByPattern returns references whose file_ref matches a SQL LIKE
	// pattern.
	ListByPattern(ctx context.Context, schema, pattern string) ([]*FileReference, error)
	// PickNextUnindexed returns one reference with is_fulltext_parsed=false
	// and total_part set, or ErrNotFound if none are eligible.
	PickNextUnindexed(ctx context.Context, schema string) (*FileReference, error)
	// PickNextUnpreviewed is PickNextUnindexed's counterpart for the
	// preview-generation background pass.
	PickNextUnpreviewed(ctx context.Context, schema string) (*FileReference, error)
}
