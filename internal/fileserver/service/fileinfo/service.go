// github.com/doka-one/doka/internal/fileserver/service/fileinfo/service.go
package fileinfo

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
	"github.com/doka-one/doka/internal/fileserver/usecase/sessionresolver"
	uc "github.com/doka-one/doka/internal/fileserver/usecase/fileinfo"
	"github.com/doka-one/doka/pkg/httperror"
)

// ReplyDTO mirrors the original GetFileInfoReply shape.
type ReplyDTO struct {
	FileRef          string  `json:"file_ref"`
	ItemInfo         *string `json:"item_info,omitempty"`
	MimeType         *string `json:"mime_type,omitempty"`
	OriginalFileSize *int64  `json:"original_file_size,omitempty"`
}

type Service interface {
	Get(ctx context.Context, sid, fileRef string) (*ReplyDTO, error)
}

type serviceImpl struct {
	logger  *zap.Logger
	resolver sessionresolver.Resolver
	infoUC  uc.UseCase
}

func NewService(logger *zap.Logger, resolver sessionresolver.Resolver, infoUC uc.UseCase) Service {
	return &serviceImpl{logger: logger, resolver: resolver, infoUC: infoUC}
}

func (svc *serviceImpl) Get(ctx context.Context, sid, fileRef string) (*ReplyDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}

	fr, err := svc.infoUC.Execute(ctx, resolved.Schema, fileRef)
	if err != nil {
		if errors.Is(err, domfr.ErrNotFound) {
			return nil, httperror.NewForNotFoundWithSingleField("file_ref", "file not found")
		}
		return nil, err
	}
	return toDTO(fr), nil
}

func toDTO(fr *domfr.FileReference) *ReplyDTO {
	return &ReplyDTO{
		FileRef:          fr.FileRef,
		ItemInfo:         fr.ItemInfo,
		MimeType:         fr.MimeType,
		OriginalFileSize: fr.OriginalFileSize,
	}
}
