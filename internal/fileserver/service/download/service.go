// github.com/doka-one/doka/internal/fileserver/service/download/service.go
package download

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
	"github.com/doka-one/doka/internal/fileserver/usecase/sessionresolver"
	uc "github.com/doka-one/doka/internal/fileserver/usecase/download"
	"github.com/doka-one/doka/pkg/httperror"
)

type Service interface {
	Download(ctx context.Context, sid, fileRef string) ([]byte, string, error)
}

type serviceImpl struct {
	logger     *zap.Logger
	resolver   sessionresolver.Resolver
	downloadUC uc.UseCase
}

func NewService(logger *zap.Logger, resolver sessionresolver.Resolver, downloadUC uc.UseCase) Service {
	return &serviceImpl{logger: logger, resolver: resolver, downloadUC: downloadUC}
}

func (svc *serviceImpl) Download(ctx context.Context, sid, fileRef string) ([]byte, string, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, "", err
	}

	plaintext, mimeType, err := svc.downloadUC.Execute(ctx, resolved.CustomerCode, resolved.Schema, fileRef)
	if err != nil {
		if errors.Is(err, domfr.ErrNotFound) {
			return nil, "", httperror.NewForNotFoundWithSingleField("file_ref", "file not found")
		}
		if errors.Is(err, uc.ErrChecksumMismatch) {
			svc.logger.Error("download checksum mismatch", zap.String("file_ref", fileRef))
			return nil, "", httperror.NewForInternalServerErrorWithSingleField("non_field_error", "stored file failed integrity check")
		}
		return nil, "", err
	}
	return plaintext, mimeType, nil
}
