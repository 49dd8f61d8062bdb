// Package s3 is the alternate PartStore backend for deployments that prefer
// an external blob store over Postgres text columns (spec.md §1's
// "contract is that parts are opaque byte strings" leaves the backend
// open). A metadata-only fs_<tenant>.file_parts row is still inserted for
// every part (part_data left NULL) so ordering/density/count queries work
// identically to the Postgres backend; the ciphertext itself lives in S3
// under "fs/<schema>/<file_reference_id>/<part_number>".
package s3

import (
	"context"
	"fmt"
	"io"

	domfp "github.com/doka-one/doka/internal/fileserver/domain/filepart"
	"github.com/doka-one/doka/internal/fileserver/partstore"
	objs3 "github.com/doka-one/doka/pkg/storage/object/s3"
)

type store struct {
	repo    domfp.Repository
	storage objs3.S3ObjectStorage
}

// New builds a PartStore that persists ciphertext in S3 and part metadata
// in fs_<tenant>.file_parts.
func New(repo domfp.Repository, storage objs3.S3ObjectStorage) partstore.PartStore {
	return &store{repo: repo, storage: storage}
}

func objectKey(schema string, fileReferenceID int64, partNumber int) string {
	return fmt.Sprintf("fs/%s/%d/%06d", schema, fileReferenceID, partNumber)
}

func (s *store) Put(ctx context.Context, schema string, fileReferenceID int64, partNumber int, ciphertext []byte) error {
	if err := s.storage.UploadContent(ctx, objectKey(schema, fileReferenceID, partNumber), ciphertext); err != nil {
		return fmt.Errorf("partstore/s3: upload part %d: %w", partNumber, err)
	}
	if _, err := s.repo.Insert(ctx, schema, fileReferenceID, partNumber, nil); err != nil {
		return fmt.Errorf("partstore/s3: insert part metadata %d: %w", partNumber, err)
	}
	return nil
}

func (s *store) Get(ctx context.Context, schema string, fileReferenceID int64, partNumber int) ([]byte, error) {
	body, err := s.storage.GetBinaryData(ctx, objectKey(schema, fileReferenceID, partNumber))
	if err != nil {
		return nil, fmt.Errorf("partstore/s3: download part %d: %w", partNumber, err)
	}
	defer body.Close()
	ciphertext, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("partstore/s3: read part %d: %w", partNumber, err)
	}
	return ciphertext, nil
}

func (s *store) Count(ctx context.Context, schema string, fileReferenceID int64) (int, error) {
	return s.repo.Count(ctx, schema, fileReferenceID)
}
