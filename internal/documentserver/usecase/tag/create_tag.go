package tag

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/tagdefinition"
	"github.com/doka-one/doka/pkg/filter"
)

// CreateUseCase registers a new tag definition, enforcing spec.md §3's
// invariant that string_tag_length is present exactly for Text/Link tags.
type CreateUseCase interface {
	Execute(ctx context.Context, schema string, td *dom.TagDefinition) (*dom.TagDefinition, error)
}

type createUseCaseImpl struct {
	logger *zap.Logger
	repo   dom.Repository
}

func NewCreateUseCase(logger *zap.Logger, repo dom.Repository) CreateUseCase {
	return &createUseCaseImpl{logger: logger, repo: repo}
}

func (uc *createUseCaseImpl) Execute(ctx context.Context, schema string, td *dom.TagDefinition) (*dom.TagDefinition, error) {
	if err := validateStringTagLength(td); err != nil {
		return nil, err
	}

	id, err := uc.repo.Create(ctx, schema, td)
	if err != nil {
		if err == dom.ErrAlreadyExists {
			return nil, err
		}
		uc.logger.Error("create tag definition failed", zap.Error(err), zap.String("name", td.Name))
		return nil, err
	}
	return uc.repo.GetByID(ctx, schema, id)
}

func validateStringTagLength(td *dom.TagDefinition) error {
	isStringy := td.Type == filter.TagText || td.Type == filter.TagLink
	switch {
	case isStringy && td.StringTagLength == nil:
		return fmt.Errorf("tag: string_tag_length is required for type %s", td.Type)
	case !isStringy && td.StringTagLength != nil:
		return fmt.Errorf("tag: string_tag_length is only valid for Text/Link, not %s", td.Type)
	case td.StringTagLength != nil && (*td.StringTagLength < 0 || *td.StringTagLength > 10_000_000):
		return fmt.Errorf("tag: string_tag_length must be within 0-10000000")
	}
	return nil
}
