// Package stats answers spec.md §4.6's GET /stats/<file_ref>: counts and
// flags only, never touching ciphertext.
package stats

import (
	"context"

	"go.uber.org/zap"

	domfp "github.com/doka-one/doka/internal/fileserver/domain/filepart"
	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
)

// Result mirrors {encrypted_count, total_part, is_fulltext_parsed, is_preview_generated}.
type Result struct {
	EncryptedCount     int
	TotalPart          *int32
	IsFulltextParsed   bool
	IsPreviewGenerated bool
}

type UseCase interface {
	Execute(ctx context.Context, schema, fileRef string) (*Result, error)
}

type useCaseImpl struct {
	logger *zap.Logger
	frRepo domfr.Repository
	fpRepo domfp.Repository
}

func NewUseCase(logger *zap.Logger, frRepo domfr.Repository, fpRepo domfp.Repository) UseCase {
	return &useCaseImpl{logger: logger, frRepo: frRepo, fpRepo: fpRepo}
}

func (uc *useCaseImpl) Execute(ctx context.Context, schema, fileRef string) (*Result, error) {
	fr, err := uc.frRepo.GetByFileRef(ctx, schema, fileRef)
	if err != nil {
		return nil, err
	}

	count, err := uc.fpRepo.Count(ctx, schema, fr.ID)
	if err != nil {
		return nil, err
	}

	return &Result{
		EncryptedCount:     count,
		TotalPart:          fr.TotalPart,
		IsFulltextParsed:   fr.IsFulltextParsed,
		IsPreviewGenerated: fr.IsPreviewGenerated,
	}, nil
}
