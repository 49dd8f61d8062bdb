// github.com/doka-one/doka/internal/documentserver/service/search/service.go
package search

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domitem "github.com/doka-one/doka/internal/documentserver/domain/item"
	itemsvc "github.com/doka-one/doka/internal/documentserver/service/item"
	"github.com/doka-one/doka/internal/documentserver/usecase/sessionresolver"
	uc "github.com/doka-one/doka/internal/documentserver/usecase/search"
	"github.com/doka-one/doka/pkg/filter"
	"github.com/doka-one/doka/pkg/httperror"
)

type Service interface {
	Search(ctx context.Context, sid, filters string, startPage, pageSize int) ([]*itemsvc.ItemDTO, error)
}

type serviceImpl struct {
	logger   *zap.Logger
	resolver sessionresolver.Resolver
	searchUC uc.UseCase
}

func NewService(logger *zap.Logger, resolver sessionresolver.Resolver, searchUC uc.UseCase) Service {
	return &serviceImpl{logger: logger, resolver: resolver, searchUC: searchUC}
}

func (svc *serviceImpl) Search(ctx context.Context, sid, filters string, startPage, pageSize int) ([]*itemsvc.ItemDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}

	items, err := svc.searchUC.Execute(ctx, resolved.Schema, filters, startPage, pageSize)
	if err != nil {
		var syntaxErr *filter.ErrSyntax
		if errors.As(err, &syntaxErr) {
			return nil, httperror.NewForBadRequestWithSingleField("filters", err.Error())
		}
		return nil, err
	}

	out := make([]*itemsvc.ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, itemDTOFrom(it))
	}
	return out, nil
}

func itemDTOFrom(it *domitem.Item) *itemsvc.ItemDTO {
	return &itemsvc.ItemDTO{
		ID:              it.ID,
		Name:            it.Name,
		CreatedGMT:      it.CreatedGMT,
		LastModifiedGMT: it.LastModifiedGMT,
		FileRef:         it.FileRef,
	}
}
