// Package loading answers spec.md §4.6's GET /loading: the caller's
// tenant's uploads still in flight (total_part not yet set).
package loading

import (
	"context"

	"go.uber.org/zap"

	domfp "github.com/doka-one/doka/internal/fileserver/domain/filepart"
	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
)

// Entry mirrors {file_ref, item_info, encrypted_count, total_part}.
type Entry struct {
	FileRef        string
	ItemInfo       *string
	EncryptedCount int
	TotalPart      *int32
}

type UseCase interface {
	Execute(ctx context.Context, schema string) ([]*Entry, error)
}

type useCaseImpl struct {
	logger *zap.Logger
	frRepo domfr.Repository
	fpRepo domfp.Repository
}

func NewUseCase(logger *zap.Logger, frRepo domfr.Repository, fpRepo domfp.Repository) UseCase {
	return &useCaseImpl{logger: logger, frRepo: frRepo, fpRepo: fpRepo}
}

func (uc *useCaseImpl) Execute(ctx context.Context, schema string) ([]*Entry, error) {
	refs, err := uc.frRepo.ListLoading(ctx, schema)
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(refs))
	for _, fr := range refs {
		count, err := uc.fpRepo.Count(ctx, schema, fr.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &Entry{
			FileRef:        fr.FileRef,
			ItemInfo:       fr.ItemInfo,
			EncryptedCount: count,
			TotalPart:      fr.TotalPart,
		})
	}
	return entries, nil
}
