package item

import (
	"context"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/item"
)

// DefaultPageSize is used when a caller omits page_size.
const DefaultPageSize = 20

// MaxPageSize caps page_size so a caller can't force an unbounded scan.
const MaxPageSize = 500

// ListUseCase pages through every item in the caller's content schema.
type ListUseCase interface {
	Execute(ctx context.Context, schema string, startPage, pageSize int) ([]*dom.Item, error)
}

type listUseCaseImpl struct {
	logger *zap.Logger
	repo   dom.Repository
}

func NewListUseCase(logger *zap.Logger, repo dom.Repository) ListUseCase {
	return &listUseCaseImpl{logger: logger, repo: repo}
}

func (uc *listUseCaseImpl) Execute(ctx context.Context, schema string, startPage, pageSize int) ([]*dom.Item, error) {
	startPage, pageSize = NormalizePaging(startPage, pageSize)
	return uc.repo.List(ctx, schema, startPage, pageSize)
}

// NormalizePaging clamps caller-supplied paging parameters to sane bounds,
// shared by list and search so both page the same way.
func NormalizePaging(startPage, pageSize int) (int, int) {
	if startPage < 0 {
		startPage = 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return startPage, pageSize
}
