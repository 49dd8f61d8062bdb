// github.com/doka-one/doka/internal/documentserver/service/fulltext/service.go
package fulltext

import (
	"context"

	"go.uber.org/zap"

	"github.com/doka-one/doka/internal/documentserver/usecase/sessionresolver"
	uc "github.com/doka-one/doka/internal/documentserver/usecase/fulltext"
	"github.com/doka-one/doka/pkg/httperror"
	"github.com/doka-one/doka/pkg/tenant"
)

// IndexingRequestDTO is the JSON body of POST /fulltext_indexing.
type IndexingRequestDTO struct {
	FileRef string `json:"file_ref"`
	Text    string `json:"text"`
}

// IndexingReplyDTO mirrors the original FullTextReply shape: how many
// blocks were written and a short status string.
type IndexingReplyDTO struct {
	PartCount int    `json:"part_count"`
	Status    string `json:"status"`
}

// DeleteIndexingRequestDTO is the JSON body of POST /delete_text_indexing.
type DeleteIndexingRequestDTO struct {
	FileRef string `json:"file_ref"`
}

// InternalIndexingRequestDTO is the JSON body of POST
// /internal/fulltext_indexing, File Server's background processor's call.
// It carries customer_code directly rather than a sid: there is no live
// user session behind a background indexing pass, only the tenant schema
// the processor already picked the file_reference row from.
type InternalIndexingRequestDTO struct {
	CustomerCode string `json:"customer_code"`
	FileRef      string `json:"file_ref"`
	Text         string `json:"text"`
}

// InternalDeleteIndexingRequestDTO is the JSON body of POST
// /internal/delete_text_indexing.
type InternalDeleteIndexingRequestDTO struct {
	CustomerCode string `json:"customer_code"`
	FileRef      string `json:"file_ref"`
}

type Service interface {
	Index(ctx context.Context, sid string, req *IndexingRequestDTO) (*IndexingReplyDTO, error)
	DeleteIndex(ctx context.Context, sid string, req *DeleteIndexingRequestDTO) error

	// IndexByCustomerCode is the same indexing pipeline as Index, reached
	// through customer_code instead of a resolved sid. Only File Server's
	// background processor calls this, over the service-to-service route.
	IndexByCustomerCode(ctx context.Context, req *InternalIndexingRequestDTO) (*IndexingReplyDTO, error)
	DeleteIndexByCustomerCode(ctx context.Context, req *InternalDeleteIndexingRequestDTO) error
}

type serviceImpl struct {
	logger     *zap.Logger
	resolver   sessionresolver.Resolver
	indexingUC uc.IndexingUseCase
	deleteUC   uc.DeleteUseCase
}

func NewService(
	logger *zap.Logger,
	resolver sessionresolver.Resolver,
	indexingUC uc.IndexingUseCase,
	deleteUC uc.DeleteUseCase,
) Service {
	return &serviceImpl{logger: logger, resolver: resolver, indexingUC: indexingUC, deleteUC: deleteUC}
}

func (svc *serviceImpl) Index(ctx context.Context, sid string, req *IndexingRequestDTO) (*IndexingReplyDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}
	if req == nil || req.FileRef == "" {
		return nil, httperror.NewForBadRequestWithSingleField("file_ref", "file_ref is required")
	}

	partCount, err := svc.indexingUC.Execute(ctx, resolved.CustomerCode, resolved.Schema, req.FileRef, req.Text)
	if err != nil {
		svc.logger.Error("fulltext indexing failed", zap.Error(err), zap.String("file_ref", req.FileRef))
		return nil, err
	}
	return &IndexingReplyDTO{PartCount: partCount, Status: "OK"}, nil
}

func (svc *serviceImpl) DeleteIndex(ctx context.Context, sid string, req *DeleteIndexingRequestDTO) error {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return err
	}
	if req == nil || req.FileRef == "" {
		return httperror.NewForBadRequestWithSingleField("file_ref", "file_ref is required")
	}
	return svc.deleteUC.Execute(ctx, resolved.Schema, req.FileRef)
}

func (svc *serviceImpl) IndexByCustomerCode(ctx context.Context, req *InternalIndexingRequestDTO) (*IndexingReplyDTO, error) {
	if req == nil || req.FileRef == "" {
		return nil, httperror.NewForBadRequestWithSingleField("file_ref", "file_ref is required")
	}
	schema, err := tenant.ContentSchemaName(req.CustomerCode)
	if err != nil {
		return nil, httperror.NewForBadRequestWithSingleField("customer_code", "customer_code is invalid")
	}

	partCount, err := svc.indexingUC.Execute(ctx, req.CustomerCode, schema, req.FileRef, req.Text)
	if err != nil {
		svc.logger.Error("internal fulltext indexing failed", zap.Error(err), zap.String("file_ref", req.FileRef))
		return nil, err
	}
	return &IndexingReplyDTO{PartCount: partCount, Status: "OK"}, nil
}

func (svc *serviceImpl) DeleteIndexByCustomerCode(ctx context.Context, req *InternalDeleteIndexingRequestDTO) error {
	if req == nil || req.FileRef == "" {
		return httperror.NewForBadRequestWithSingleField("file_ref", "file_ref is required")
	}
	schema, err := tenant.ContentSchemaName(req.CustomerCode)
	if err != nil {
		return httperror.NewForBadRequestWithSingleField("customer_code", "customer_code is invalid")
	}
	return svc.deleteUC.Execute(ctx, schema, req.FileRef)
}
