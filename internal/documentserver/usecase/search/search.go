// Package search implements Document Server's filtered item search
// (spec.md §4.1-4.4): parse a filter expression, resolve each attribute
// against the tenant's tag definitions, generate the SQL fragments, and run
// them against the item table.
package search

import (
	"context"

	"go.uber.org/zap"

	domitem "github.com/doka-one/doka/internal/documentserver/domain/item"
	domtag "github.com/doka-one/doka/internal/documentserver/domain/tagdefinition"
	itemuc "github.com/doka-one/doka/internal/documentserver/usecase/item"
	"github.com/doka-one/doka/pkg/filter"
)

// UseCase parses and runs one filter expression.
type UseCase interface {
	Execute(ctx context.Context, schema, expression string, startPage, pageSize int) ([]*domitem.Item, error)
}

type useCaseImpl struct {
	logger  *zap.Logger
	itemRepo domitem.Repository
	tagRepo  domtag.Repository
}

func NewUseCase(logger *zap.Logger, itemRepo domitem.Repository, tagRepo domtag.Repository) UseCase {
	return &useCaseImpl{logger: logger, itemRepo: itemRepo, tagRepo: tagRepo}
}

func (uc *useCaseImpl) Execute(ctx context.Context, schema, expression string, startPage, pageSize int) ([]*domitem.Item, error) {
	startPage, pageSize = itemuc.NormalizePaging(startPage, pageSize)

	if expression == "" {
		return uc.itemRepo.List(ctx, schema, startPage, pageSize)
	}

	root, err := filter.Parse(expression)
	if err != nil {
		return nil, err
	}

	resolve := func(attribute string) (filter.TagType, bool) {
		td, err := uc.tagRepo.GetByName(ctx, schema, attribute)
		if err != nil {
			return 0, false
		}
		return td.Type, true
	}

	generated, err := filter.GenerateSQLWithSchema(root, resolve, schema)
	if err != nil {
		return nil, err
	}

	return uc.itemRepo.Search(ctx, schema, generated.Joins, generated.Where, startPage, pageSize)
}
