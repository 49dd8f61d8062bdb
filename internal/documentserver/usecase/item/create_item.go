package item

import (
	"context"
	"time"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/item"
)

// CreateUseCase inserts a new item into the caller's content schema.
type CreateUseCase interface {
	Execute(ctx context.Context, schema, name string, fileRef *string) (*dom.Item, error)
}

type createUseCaseImpl struct {
	logger *zap.Logger
	repo   dom.Repository
}

func NewCreateUseCase(logger *zap.Logger, repo dom.Repository) CreateUseCase {
	return &createUseCaseImpl{logger: logger, repo: repo}
}

func (uc *createUseCaseImpl) Execute(ctx context.Context, schema, name string, fileRef *string) (*dom.Item, error) {
	now := time.Now().UTC()
	it := &dom.Item{Name: name, FileRef: fileRef, CreatedGMT: now, LastModifiedGMT: now}
	id, err := uc.repo.Create(ctx, schema, it)
	if err != nil {
		uc.logger.Error("create item failed", zap.Error(err), zap.String("name", name))
		return nil, err
	}
	return uc.repo.Get(ctx, schema, id)
}
