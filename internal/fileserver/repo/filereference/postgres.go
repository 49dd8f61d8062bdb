// github.com/doka-one/doka/internal/fileserver/repo/filereference/postgres.go
package filereference

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/fileserver/domain/filereference"
	"github.com/doka-one/doka/pkg/database/postgres"
)

type repositoryImpl struct {
	logger *zap.Logger
	pool   postgres.Pool
}

// NewRepository builds a filereference.Repository backed by
// fs_<tenant>.file_reference.
func NewRepository(logger *zap.Logger, pool postgres.Pool) dom.Repository {
	return &repositoryImpl{logger: logger, pool: pool}
}

func (r *repositoryImpl) Create(ctx context.Context, schema string, fr *dom.FileReference) (int64, error) {
	var id int64
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s.file_reference
			(file_ref, item_info, mime_type, checksum, original_file_size, encrypted_file_size, total_part, is_fulltext_parsed, is_preview_generated)
		VALUES ($1, $2, $3, $4, $5, $6, NULL, false, false)
		RETURNING id`, schema),
		fr.FileRef, fr.ItemInfo, fr.MimeType, fr.Checksum, fr.OriginalFileSize, fr.EncryptedFileSize)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repositoryImpl) GetByFileRef(ctx context.Context, schema, fileRef string) (*dom.FileReference, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, file_ref, item_info, mime_type, checksum, original_file_size, encrypted_file_size,
		       total_part, is_fulltext_parsed, is_preview_generated
		FROM %s.file_reference WHERE file_ref = $1`, schema), fileRef)
	fr, err := scanFileReference(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, dom.ErrNotFound
		}
		return nil, err
	}
	return fr, nil
}

func (r *repositoryImpl) SetTotalPart(ctx context.Context, schema, fileRef string, totalPart int, encryptedFileSize int64) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE %s.file_reference SET total_part = $2, encrypted_file_size = $3 WHERE file_ref = $1`, schema),
		fileRef, totalPart, encryptedFileSize)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return dom.ErrNotFound
	}
	return nil
}

func (r *repositoryImpl) SetFulltextParsed(ctx context.Context, schema, fileRef string, value bool) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE %s.file_reference SET is_fulltext_parsed = $2 WHERE file_ref = $1`, schema), fileRef, value)
	return err
}

func (r *repositoryImpl) SetPreviewGenerated(ctx context.Context, schema, fileRef string, value bool) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE %s.file_reference SET is_preview_generated = $2 WHERE file_ref = $1`, schema), fileRef, value)
	return err
}

func (r *repositoryImpl) ListLoading(ctx context.Context, schema string) ([]*dom.FileReference, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, file_ref, item_info, mime_type, checksum, original_file_size, encrypted_file_size,
		       total_part, is_fulltext_parsed, is_preview_generated
		FROM %s.file_reference WHERE total_part IS NULL ORDER BY id`, schema))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFileReferences(rows)
}

func (r *repositoryImpl) ListByPattern(ctx context.Context, schema, pattern string) ([]*dom.FileReference, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, file_ref, item_info, mime_type, checksum, original_file_size, encrypted_file_size,
		       total_part, is_fulltext_parsed, is_preview_generated
		FROM %s.file_reference WHERE file_ref LIKE $1 ORDER BY id`, schema), pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFileReferences(rows)
}

func (r *repositoryImpl) PickNextUnindexed(ctx context.Context, schema string) (*dom.FileReference, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, file_ref, item_info, mime_type, checksum, original_file_size, encrypted_file_size,
		       total_part, is_fulltext_parsed, is_preview_generated
		FROM %s.file_reference
		WHERE is_fulltext_parsed = false AND total_part IS NOT NULL
		ORDER BY id LIMIT 1`, schema))
	fr, err := scanFileReference(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, dom.ErrNotFound
		}
		return nil, err
	}
	return fr, nil
}

func (r *repositoryImpl) PickNextUnpreviewed(ctx context.Context, schema string) (*dom.FileReference, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, file_ref, item_info, mime_type, checksum, original_file_size, encrypted_file_size,
		       total_part, is_fulltext_parsed, is_preview_generated
		FROM %s.file_reference
		WHERE is_preview_generated = false AND total_part IS NOT NULL
		ORDER BY id LIMIT 1`, schema))
	fr, err := scanFileReference(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, dom.ErrNotFound
		}
		return nil, err
	}
	return fr, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanFileReference(row scannable) (*dom.FileReference, error) {
	var fr dom.FileReference
	var totalPart *int32
	if err := row.Scan(&fr.ID, &fr.FileRef, &fr.ItemInfo, &fr.MimeType, &fr.Checksum, &fr.OriginalFileSize,
		&fr.EncryptedFileSize, &totalPart, &fr.IsFulltextParsed, &fr.IsPreviewGenerated); err != nil {
		return nil, err
	}
	fr.TotalPart = totalPart
	return &fr, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanFileReferences(rows rowsScanner) ([]*dom.FileReference, error) {
	var out []*dom.FileReference
	for rows.Next() {
		fr, err := scanFileReference(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, fr)
	}
	return out, rows.Err()
}
