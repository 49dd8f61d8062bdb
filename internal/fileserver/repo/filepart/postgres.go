// github.com/doka-one/doka/internal/fileserver/repo/filepart/postgres.go
package filepart

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/fileserver/domain/filepart"
	"github.com/doka-one/doka/pkg/database/postgres"
)

type repositoryImpl struct {
	logger *zap.Logger
	pool   postgres.Pool
}

// NewRepository builds a filepart.Repository backed by fs_<tenant>.file_parts.
func NewRepository(logger *zap.Logger, pool postgres.Pool) dom.Repository {
	return &repositoryImpl{logger: logger, pool: pool}
}

func (r *repositoryImpl) Insert(ctx context.Context, schema string, fileReferenceID int64, partNumber int, partData *string) (int64, error) {
	var id int64
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s.file_parts (file_reference_id, part_number, is_encrypted, part_data)
		VALUES ($1, $2, true, $3)
		RETURNING id`, schema), fileReferenceID, partNumber, partData)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repositoryImpl) Get(ctx context.Context, schema string, fileReferenceID int64, partNumber int) (*dom.FilePart, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, file_reference_id, part_number, is_encrypted, part_data
		FROM %s.file_parts WHERE file_reference_id = $1 AND part_number = $2`, schema), fileReferenceID, partNumber)

	var fp dom.FilePart
	if err := row.Scan(&fp.ID, &fp.FileReferenceID, &fp.PartNumber, &fp.IsEncrypted, &fp.PartData); err != nil {
		if postgres.IsNoRows(err) {
			return nil, dom.ErrNotFound
		}
		return nil, err
	}
	return &fp, nil
}

func (r *repositoryImpl) Count(ctx context.Context, schema string, fileReferenceID int64) (int, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT COUNT(*) FROM %s.file_parts WHERE file_reference_id = $1`, schema), fileReferenceID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
