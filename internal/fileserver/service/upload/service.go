// github.com/doka-one/doka/internal/fileserver/service/upload/service.go
package upload

import (
	"context"
	"encoding/base64"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/doka-one/doka/internal/fileserver/usecase/sessionresolver"
	uc "github.com/doka-one/doka/internal/fileserver/usecase/upload"
	"github.com/doka-one/doka/pkg/httperror"
)

// ReplyDTO mirrors the original UploadReply shape: {file_ref, block_count}.
type ReplyDTO struct {
	FileRef    string `json:"file_ref"`
	BlockCount int    `json:"block_count"`
}

type Service interface {
	// Upload decodes itemInfoB64 (base64url, opaque client metadata) and
	// runs the upload pipeline over body.
	Upload(ctx context.Context, sid, itemInfoB64, mimeType string, body []byte) (*ReplyDTO, error)
}

type serviceImpl struct {
	logger   *zap.Logger
	resolver sessionresolver.Resolver
	uploadUC uc.UseCase
}

func NewService(logger *zap.Logger, resolver sessionresolver.Resolver, uploadUC uc.UseCase) Service {
	return &serviceImpl{logger: logger, resolver: resolver, uploadUC: uploadUC}
}

func (svc *serviceImpl) Upload(ctx context.Context, sid, itemInfoB64, mimeType string, body []byte) (*ReplyDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}

	itemInfo := itemInfoB64
	if decoded, err := base64.RawURLEncoding.DecodeString(itemInfoB64); err == nil {
		itemInfo = string(decoded)
	}

	result, err := svc.uploadUC.Execute(ctx, resolved.CustomerCode, resolved.Schema, itemInfo, mimeType, body, newFileRef)
	if err != nil {
		svc.logger.Error("upload failed", zap.Error(err))
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "upload failed")
	}

	return &ReplyDTO{FileRef: result.FileRef, BlockCount: result.BlockCount}, nil
}

func newFileRef() string {
	return uuid.NewString()
}
