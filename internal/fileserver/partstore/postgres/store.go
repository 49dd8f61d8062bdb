// Package postgres is the reference PartStore backend (spec.md §1): parts
// are stored as base64url text directly in fs_<tenant>.file_parts.part_data,
// matching the spec exactly.
package postgres

import (
	"context"
	"encoding/base64"
	"fmt"

	domfp "github.com/doka-one/doka/internal/fileserver/domain/filepart"
	"github.com/doka-one/doka/internal/fileserver/partstore"
)

type store struct {
	repo domfp.Repository
}

// New builds a PartStore that persists ciphertext in the file_parts table
// itself.
func New(repo domfp.Repository) partstore.PartStore {
	return &store{repo: repo}
}

func (s *store) Put(ctx context.Context, schema string, fileReferenceID int64, partNumber int, ciphertext []byte) error {
	encoded := base64.RawURLEncoding.EncodeToString(ciphertext)
	_, err := s.repo.Insert(ctx, schema, fileReferenceID, partNumber, &encoded)
	if err != nil {
		return fmt.Errorf("partstore/postgres: insert part %d: %w", partNumber, err)
	}
	return nil
}

func (s *store) Get(ctx context.Context, schema string, fileReferenceID int64, partNumber int) ([]byte, error) {
	fp, err := s.repo.Get(ctx, schema, fileReferenceID, partNumber)
	if err != nil {
		return nil, err
	}
	if fp.PartData == nil {
		return nil, fmt.Errorf("partstore/postgres: part %d has no stored data", partNumber)
	}
	ciphertext, err := base64.RawURLEncoding.DecodeString(*fp.PartData)
	if err != nil {
		return nil, fmt.Errorf("partstore/postgres: decode part %d: %w", partNumber, err)
	}
	return ciphertext, nil
}

func (s *store) Count(ctx context.Context, schema string, fileReferenceID int64) (int, error) {
	return s.repo.Count(ctx, schema, fileReferenceID)
}
