// github.com/doka-one/doka/internal/fileserver/service/filelist/service.go
package filelist

import (
	"context"

	"go.uber.org/zap"

	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
	"github.com/doka-one/doka/internal/fileserver/usecase/sessionresolver"
	uc "github.com/doka-one/doka/internal/fileserver/usecase/filelist"
	"github.com/doka-one/doka/pkg/httperror"
)

// EntryDTO mirrors one GetFileInfoReply entry in a ListOfFileInfoReply.
type EntryDTO struct {
	FileRef          string  `json:"file_ref"`
	ItemInfo         *string `json:"item_info,omitempty"`
	MimeType         *string `json:"mime_type,omitempty"`
	OriginalFileSize *int64  `json:"original_file_size,omitempty"`
}

type Service interface {
	List(ctx context.Context, sid, pattern string) ([]*EntryDTO, error)
}

type serviceImpl struct {
	logger  *zap.Logger
	resolver sessionresolver.Resolver
	listUC  uc.UseCase
}

func NewService(logger *zap.Logger, resolver sessionresolver.Resolver, listUC uc.UseCase) Service {
	return &serviceImpl{logger: logger, resolver: resolver, listUC: listUC}
}

func (svc *serviceImpl) List(ctx context.Context, sid, pattern string) ([]*EntryDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return nil, httperror.NewForBadRequestWithSingleField("pattern", "pattern is required")
	}

	refs, err := svc.listUC.Execute(ctx, resolved.Schema, pattern)
	if err != nil {
		return nil, err
	}
	out := make([]*EntryDTO, 0, len(refs))
	for _, fr := range refs {
		out = append(out, toDTO(fr))
	}
	return out, nil
}

func toDTO(fr *domfr.FileReference) *EntryDTO {
	return &EntryDTO{FileRef: fr.FileRef, ItemInfo: fr.ItemInfo, MimeType: fr.MimeType, OriginalFileSize: fr.OriginalFileSize}
}
