package tag

import (
	"context"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/tagdefinition"
)

// ListUseCase returns every tag definition in the caller's content schema.
type ListUseCase interface {
	Execute(ctx context.Context, schema string) ([]*dom.TagDefinition, error)
}

type listUseCaseImpl struct {
	logger *zap.Logger
	repo   dom.Repository
}

func NewListUseCase(logger *zap.Logger, repo dom.Repository) ListUseCase {
	return &listUseCaseImpl{logger: logger, repo: repo}
}

func (uc *listUseCaseImpl) Execute(ctx context.Context, schema string) ([]*dom.TagDefinition, error) {
	return uc.repo.List(ctx, schema)
}
