package tag

import (
	"context"

	"go.uber.org/zap"

	domval "github.com/doka-one/doka/internal/documentserver/domain/tagvalue"
)

// RemoveUseCase detaches the named properties from an item, leaving the
// item and its other properties untouched.
type RemoveUseCase interface {
	Execute(ctx context.Context, schema string, itemID int64, tagNames []string) error
}

type removeUseCaseImpl struct {
	logger  *zap.Logger
	valRepo domval.Repository
}

func NewRemoveUseCase(logger *zap.Logger, valRepo domval.Repository) RemoveUseCase {
	return &removeUseCaseImpl{logger: logger, valRepo: valRepo}
}

func (uc *removeUseCaseImpl) Execute(ctx context.Context, schema string, itemID int64, tagNames []string) error {
	if len(tagNames) == 0 {
		return nil
	}
	return uc.valRepo.DeleteByItemAndTagNames(ctx, schema, itemID, tagNames)
}
