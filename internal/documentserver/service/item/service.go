// github.com/doka-one/doka/internal/documentserver/service/item/service.go
package item

import (
	"context"
	"time"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/item"
	"github.com/doka-one/doka/internal/documentserver/usecase/sessionresolver"
	uc "github.com/doka-one/doka/internal/documentserver/usecase/item"
	"github.com/doka-one/doka/pkg/httperror"
)

// ItemDTO is the wire shape of one item, as returned by GET/POST /item.
type ItemDTO struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	CreatedGMT      time.Time `json:"created_gmt"`
	LastModifiedGMT time.Time `json:"last_modified_gmt"`
	FileRef         *string   `json:"file_ref,omitempty"`
}

// CreateItemRequestDTO is the JSON body of POST /item.
type CreateItemRequestDTO struct {
	Name    string  `json:"name"`
	FileRef *string `json:"file_ref,omitempty"`
}

type Service interface {
	Create(ctx context.Context, sid string, req *CreateItemRequestDTO) (*ItemDTO, error)
	Get(ctx context.Context, sid string, id int64) (*ItemDTO, error)
	List(ctx context.Context, sid string, startPage, pageSize int) ([]*ItemDTO, error)
}

type serviceImpl struct {
	logger   *zap.Logger
	resolver sessionresolver.Resolver
	createUC uc.CreateUseCase
	getUC    uc.GetUseCase
	listUC   uc.ListUseCase
}

func NewService(
	logger *zap.Logger,
	resolver sessionresolver.Resolver,
	createUC uc.CreateUseCase,
	getUC uc.GetUseCase,
	listUC uc.ListUseCase,
) Service {
	return &serviceImpl{logger: logger, resolver: resolver, createUC: createUC, getUC: getUC, listUC: listUC}
}

func (svc *serviceImpl) Create(ctx context.Context, sid string, req *CreateItemRequestDTO) (*ItemDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}
	if req == nil || req.Name == "" {
		return nil, httperror.NewForBadRequestWithSingleField("name", "name is required")
	}

	it, err := svc.createUC.Execute(ctx, resolved.Schema, req.Name, req.FileRef)
	if err != nil {
		return nil, err
	}
	return toDTO(it), nil
}

func (svc *serviceImpl) Get(ctx context.Context, sid string, id int64) (*ItemDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}

	it, err := svc.getUC.Execute(ctx, resolved.Schema, id)
	if err != nil {
		if err == dom.ErrNotFound {
			return nil, httperror.NewForNotFoundWithSingleField("id", "item not found")
		}
		return nil, err
	}
	return toDTO(it), nil
}

func (svc *serviceImpl) List(ctx context.Context, sid string, startPage, pageSize int) ([]*ItemDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}

	items, err := svc.listUC.Execute(ctx, resolved.Schema, startPage, pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]*ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toDTO(it))
	}
	return out, nil
}

func toDTO(it *dom.Item) *ItemDTO {
	return &ItemDTO{
		ID:              it.ID,
		Name:            it.Name,
		CreatedGMT:      it.CreatedGMT,
		LastModifiedGMT: it.LastModifiedGMT,
		FileRef:         it.FileRef,
	}
}
