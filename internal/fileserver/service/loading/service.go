// github.com/doka-one/doka/internal/fileserver/service/loading/service.go
package loading

import (
	"context"

	"go.uber.org/zap"

	"github.com/doka-one/doka/internal/fileserver/usecase/sessionresolver"
	uc "github.com/doka-one/doka/internal/fileserver/usecase/loading"
)

// EntryDTO mirrors {file_ref, item_info, encrypted_count, total_part}.
type EntryDTO struct {
	FileRef        string  `json:"file_ref"`
	ItemInfo       *string `json:"item_info,omitempty"`
	EncryptedCount int     `json:"encrypted_count"`
	TotalPart      *int32  `json:"total_part"`
}

type Service interface {
	List(ctx context.Context, sid string) ([]*EntryDTO, error)
}

type serviceImpl struct {
	logger    *zap.Logger
	resolver  sessionresolver.Resolver
	loadingUC uc.UseCase
}

func NewService(logger *zap.Logger, resolver sessionresolver.Resolver, loadingUC uc.UseCase) Service {
	return &serviceImpl{logger: logger, resolver: resolver, loadingUC: loadingUC}
}

func (svc *serviceImpl) List(ctx context.Context, sid string) ([]*EntryDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}

	entries, err := svc.loadingUC.Execute(ctx, resolved.Schema)
	if err != nil {
		return nil, err
	}
	out := make([]*EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, &EntryDTO{FileRef: e.FileRef, ItemInfo: e.ItemInfo, EncryptedCount: e.EncryptedCount, TotalPart: e.TotalPart})
	}
	return out, nil
}
