// Package filelist answers spec.md §4.6's GET /list/<pattern>: metadata
// lookup by SQL LIKE pattern over file_ref.
package filelist

import (
	"context"

	"go.uber.org/zap"

	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
)

type UseCase interface {
	Execute(ctx context.Context, schema, pattern string) ([]*domfr.FileReference, error)
}

type useCaseImpl struct {
	logger *zap.Logger
	frRepo domfr.Repository
}

func NewUseCase(logger *zap.Logger, frRepo domfr.Repository) UseCase {
	return &useCaseImpl{logger: logger, frRepo: frRepo}
}

func (uc *useCaseImpl) Execute(ctx context.Context, schema, pattern string) ([]*domfr.FileReference, error) {
	return uc.frRepo.ListByPattern(ctx, schema, pattern)
}
