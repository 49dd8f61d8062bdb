package tag

import (
	"context"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/tagdefinition"
)

// DeleteUseCase removes a tag definition. cs_<tenant>.tag_value carries no
// foreign key on tag_id, so any tag_value rows still referencing this id
// are left in place, orphaned and unreachable by name once the definition
// is gone.
type DeleteUseCase interface {
	Execute(ctx context.Context, schema string, id int64) error
}

type deleteUseCaseImpl struct {
	logger *zap.Logger
	repo   dom.Repository
}

func NewDeleteUseCase(logger *zap.Logger, repo dom.Repository) DeleteUseCase {
	return &deleteUseCaseImpl{logger: logger, repo: repo}
}

func (uc *deleteUseCaseImpl) Execute(ctx context.Context, schema string, id int64) error {
	if _, err := uc.repo.GetByID(ctx, schema, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, schema, id)
}
