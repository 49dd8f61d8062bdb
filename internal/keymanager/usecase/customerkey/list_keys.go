// github.com/doka-one/doka/internal/keymanager/usecase/customerkey/list_keys.go
package customerkey

import (
	"context"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/keymanager/domain/customerkey"
	"github.com/doka-one/doka/pkg/httperror"
)

// ListKeysUseCase returns every wrapped key (admin only).
type ListKeysUseCase interface {
	Execute(ctx context.Context) ([]*dom.CustomerKey, error)
}

type listKeysUseCaseImpl struct {
	logger *zap.Logger
	repo   dom.Repository
}

func NewListKeysUseCase(logger *zap.Logger, repo dom.Repository) ListKeysUseCase {
	return &listKeysUseCaseImpl{logger: logger, repo: repo}
}

func (uc *listKeysUseCaseImpl) Execute(ctx context.Context) ([]*dom.CustomerKey, error) {
	keys, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Error("list customer keys failed", zap.Error(err))
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to list customer keys")
	}
	return keys, nil
}
