package item

import (
	"context"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/item"
)

// GetUseCase fetches a single item by id.
type GetUseCase interface {
	Execute(ctx context.Context, schema string, id int64) (*dom.Item, error)
}

type getUseCaseImpl struct {
	logger *zap.Logger
	repo   dom.Repository
}

func NewGetUseCase(logger *zap.Logger, repo dom.Repository) GetUseCase {
	return &getUseCaseImpl{logger: logger, repo: repo}
}

func (uc *getUseCaseImpl) Execute(ctx context.Context, schema string, id int64) (*dom.Item, error) {
	it, err := uc.repo.Get(ctx, schema, id)
	if err != nil {
		return nil, err
	}
	return it, nil
}
