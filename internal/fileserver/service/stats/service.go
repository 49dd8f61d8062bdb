// github.com/doka-one/doka/internal/fileserver/service/stats/service.go
package stats

import (
	"context"

	"go.uber.org/zap"

	"github.com/doka-one/doka/internal/fileserver/usecase/sessionresolver"
	uc "github.com/doka-one/doka/internal/fileserver/usecase/stats"
)

// ReplyDTO mirrors {encrypted_count, total_part, is_fulltext_parsed, is_preview_generated}.
type ReplyDTO struct {
	EncryptedCount     int   `json:"encrypted_count"`
	TotalPart          *int32 `json:"total_part"`
	IsFulltextParsed   bool  `json:"is_fulltext_parsed"`
	IsPreviewGenerated bool  `json:"is_preview_generated"`
}

type Service interface {
	Stats(ctx context.Context, sid, fileRef string) (*ReplyDTO, error)
}

type serviceImpl struct {
	logger   *zap.Logger
	resolver sessionresolver.Resolver
	statsUC  uc.UseCase
}

func NewService(logger *zap.Logger, resolver sessionresolver.Resolver, statsUC uc.UseCase) Service {
	return &serviceImpl{logger: logger, resolver: resolver, statsUC: statsUC}
}

func (svc *serviceImpl) Stats(ctx context.Context, sid, fileRef string) (*ReplyDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}

	result, err := svc.statsUC.Execute(ctx, resolved.Schema, fileRef)
	if err != nil {
		return nil, err
	}
	return &ReplyDTO{
		EncryptedCount:     result.EncryptedCount,
		TotalPart:          result.TotalPart,
		IsFulltextParsed:   result.IsFulltextParsed,
		IsPreviewGenerated: result.IsPreviewGenerated,
	}, nil
}
