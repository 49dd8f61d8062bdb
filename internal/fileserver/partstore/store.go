// Package partstore abstracts where a file part's ciphertext bytes
// actually live, per spec.md §1's explicit contract: "parts are opaque
// byte strings keyed by (file_ref, part_number)". Three backends satisfy the
// same interface (internal/fileserver/partstore/postgres,
// internal/fileserver/partstore/s3, internal/fileserver/partstore/memory);
// none is aware of encryption — callers encrypt before Put and decrypt
// after Get.
package partstore

import "context"

// PartStore stores and retrieves one file part's ciphertext, keyed by the
// owning file_reference row's id and its 0-based part_number.
type PartStore interface {
	Put(ctx context.Context, schema string, fileReferenceID int64, partNumber int, ciphertext []byte) error
	Get(ctx context.Context, schema string, fileReferenceID int64, partNumber int) ([]byte, error)
	// Count returns how many parts are currently stored for fileReferenceID.
	Count(ctx context.Context, schema string, fileReferenceID int64) (int, error)
}
