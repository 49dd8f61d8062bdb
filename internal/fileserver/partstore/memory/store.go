// Package memory is the ephemeral PartStore backend: ciphertext lives in a
// process-local pkg/storage/memory/inmemory.Storage rather than Postgres or
// S3, for development and tests where parts shouldn't outlive the process.
// Like partstore/s3 it still inserts a metadata-only fs_<tenant>.file_parts
// row per part so Count and ordering behave identically across backends.
package memory

import (
	"context"
	"fmt"

	domfp "github.com/doka-one/doka/internal/fileserver/domain/filepart"
	"github.com/doka-one/doka/internal/fileserver/partstore"
	"github.com/doka-one/doka/pkg/storage"
)

type store struct {
	repo domfp.Repository
	kv   storage.Storage
}

// New builds a PartStore backed by an in-process key-value store.
func New(repo domfp.Repository, kv storage.Storage) partstore.PartStore {
	return &store{repo: repo, kv: kv}
}

func objectKey(schema string, fileReferenceID int64, partNumber int) string {
	return fmt.Sprintf("fs/%s/%d/%06d", schema, fileReferenceID, partNumber)
}

func (s *store) Put(ctx context.Context, schema string, fileReferenceID int64, partNumber int, ciphertext []byte) error {
	if err := s.kv.Set(objectKey(schema, fileReferenceID, partNumber), ciphertext); err != nil {
		return fmt.Errorf("partstore/memory: store part %d: %w", partNumber, err)
	}
	if _, err := s.repo.Insert(ctx, schema, fileReferenceID, partNumber, nil); err != nil {
		return fmt.Errorf("partstore/memory: insert part metadata %d: %w", partNumber, err)
	}
	return nil
}

func (s *store) Get(ctx context.Context, schema string, fileReferenceID int64, partNumber int) ([]byte, error) {
	ciphertext, err := s.kv.Get(objectKey(schema, fileReferenceID, partNumber))
	if err != nil {
		return nil, fmt.Errorf("partstore/memory: read part %d: %w", partNumber, err)
	}
	return ciphertext, nil
}

func (s *store) Count(ctx context.Context, schema string, fileReferenceID int64) (int, error) {
	return s.repo.Count(ctx, schema, fileReferenceID)
}
