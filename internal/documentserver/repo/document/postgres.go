// github.com/doka-one/doka/internal/documentserver/repo/document/postgres.go
package document

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/document"
	"github.com/doka-one/doka/pkg/database/postgres"
)

type repositoryImpl struct {
	logger *zap.Logger
	pool   postgres.Pool
}

// NewRepository builds a document.Repository backed by cs_<tenant>.document
// and its insert_document stored procedure.
func NewRepository(logger *zap.Logger, pool postgres.Pool) dom.Repository {
	return &repositoryImpl{logger: logger, pool: pool}
}

func (r *repositoryImpl) InsertDocument(ctx context.Context, schema string, block dom.TextBlock) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`CALL %s.insert_document($1, $2, $3, $4, $5)`, schema),
		block.FileRef, block.PartNo, block.DocText, block.Tsv, block.Lang)
	if err != nil {
		r.logger.Error("insert_document failed", zap.Error(err), zap.String("file_ref", block.FileRef))
	}
	return err
}

func (r *repositoryImpl) DeleteByFileRef(ctx context.Context, schema string, fileRef string) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s.document WHERE file_ref = $1`, schema), fileRef)
	return err
}

func (r *repositoryImpl) ComputeTsvector(ctx context.Context, lang string, text string) (string, error) {
	row := r.pool.QueryRow(ctx, `SELECT CAST(to_tsvector($1::regconfig, public.unaccent_lower($2)) AS VARCHAR)`, lang, text)
	var tsv string
	if err := row.Scan(&tsv); err != nil {
		return "", fmt.Errorf("document: compute tsvector: %w", err)
	}
	return tsv, nil
}
