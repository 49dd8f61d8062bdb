package partstore

import (
	"fmt"

	domfp "github.com/doka-one/doka/internal/fileserver/domain/filepart"
	memstore "github.com/doka-one/doka/internal/fileserver/partstore/memory"
	pgstore "github.com/doka-one/doka/internal/fileserver/partstore/postgres"
	s3store "github.com/doka-one/doka/internal/fileserver/partstore/s3"
	"github.com/doka-one/doka/config"
	"github.com/doka-one/doka/pkg/storage/memory/inmemory"
	objs3 "github.com/doka-one/doka/pkg/storage/object/s3"
)

// New selects the PartStore backend named by cfg.Storage.PartBackend
// ("postgres", "s3", or "memory"), defaulting to "postgres" — the reference
// backend spec.md §1 describes. "memory" is for development and tests; its
// parts don't survive a restart.
func New(cfg *config.Configuration, repo domfp.Repository, storage objs3.S3ObjectStorage) (PartStore, error) {
	switch cfg.Storage.PartBackend {
	case "", "postgres":
		return pgstore.New(repo), nil
	case "s3":
		return s3store.New(repo, storage), nil
	case "memory":
		return memstore.New(repo, inmemory.New()), nil
	default:
		return nil, fmt.Errorf("partstore: unknown part_backend %q", cfg.Storage.PartBackend)
	}
}
