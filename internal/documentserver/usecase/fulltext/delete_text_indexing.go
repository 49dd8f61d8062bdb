package fulltext

import (
	"context"

	"go.uber.org/zap"

	domdoc "github.com/doka-one/doka/internal/documentserver/domain/document"
)

// DeleteUseCase removes every indexed text block belonging to a file,
// called when the file itself is deleted or re-indexed from scratch.
type DeleteUseCase interface {
	Execute(ctx context.Context, schema, fileRef string) error
}

type deleteUseCaseImpl struct {
	logger  *zap.Logger
	docRepo domdoc.Repository
}

func NewDeleteUseCase(logger *zap.Logger, docRepo domdoc.Repository) DeleteUseCase {
	return &deleteUseCaseImpl{logger: logger, docRepo: docRepo}
}

func (uc *deleteUseCaseImpl) Execute(ctx context.Context, schema, fileRef string) error {
	if err := uc.docRepo.DeleteByFileRef(ctx, schema, fileRef); err != nil {
		uc.logger.Error("delete text indexing failed", zap.Error(err), zap.String("file_ref", fileRef))
		return err
	}
	return nil
}
