package tag

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/doka-one/doka/pkg/filter"

	dom "github.com/doka-one/doka/internal/documentserver/domain/tagdefinition"
	domval "github.com/doka-one/doka/internal/documentserver/domain/tagvalue"
)

// PropertyInput is one name/value pair a caller wants written onto an item,
// as decoded off the wire before a tag definition is known.
type PropertyInput struct {
	Name  string
	Value domval.Value
}

// WriteUseCase writes one or more properties onto an item, looking up each
// tag by name and auto-creating it (type inferred from the value) when it
// doesn't exist yet — spec.md §3: "Property writes validate the value's
// concrete kind against the tag definition's declared type. If the tag does
// not yet exist, the server MAY auto-create it with a type inferred from
// the value."
type WriteUseCase interface {
	Execute(ctx context.Context, schema string, itemID int64, props []PropertyInput) error
}

type writeUseCaseImpl struct {
	logger  *zap.Logger
	tagRepo dom.Repository
	valRepo domval.Repository
}

func NewWriteUseCase(logger *zap.Logger, tagRepo dom.Repository, valRepo domval.Repository) WriteUseCase {
	return &writeUseCaseImpl{logger: logger, tagRepo: tagRepo, valRepo: valRepo}
}

func (uc *writeUseCaseImpl) Execute(ctx context.Context, schema string, itemID int64, props []PropertyInput) error {
	for _, p := range props {
		td, err := uc.resolveOrCreateTag(ctx, schema, p)
		if err != nil {
			return err
		}

		if err := validateValueMatchesType(td.Type, p.Value); err != nil {
			return err
		}

		tv := &domval.TagValue{TagID: td.ID, ItemID: itemID, Value: p.Value}
		if err := uc.valRepo.Upsert(ctx, schema, tv); err != nil {
			uc.logger.Error("upsert tag value failed", zap.Error(err), zap.String("tag", p.Name), zap.Int64("item_id", itemID))
			return err
		}
	}
	return nil
}

func (uc *writeUseCaseImpl) resolveOrCreateTag(ctx context.Context, schema string, p PropertyInput) (*dom.TagDefinition, error) {
	td, err := uc.tagRepo.GetByName(ctx, schema, p.Name)
	if err == nil {
		return td, nil
	}
	if err != dom.ErrNotFound {
		return nil, err
	}

	inferred, err := inferType(p.Value)
	if err != nil {
		return nil, err
	}
	newTag := &dom.TagDefinition{Name: p.Name, Type: inferred, StringTagLength: stringTagLengthFor(inferred)}
	id, err := uc.tagRepo.Create(ctx, schema, newTag)
	if err != nil {
		if err == dom.ErrAlreadyExists {
			return uc.tagRepo.GetByName(ctx, schema, p.Name)
		}
		return nil, err
	}
	newTag.ID = id
	return newTag, nil
}

// inferType picks the TagType a bare property value implies when its tag
// definition does not exist yet.
func inferType(v domval.Value) (filter.TagType, error) {
	switch {
	case v.String != nil:
		return filter.TagText, nil
	case v.Integer != nil:
		return filter.TagInt, nil
	case v.Double != nil:
		return filter.TagDouble, nil
	case v.Boolean != nil:
		return filter.TagBool, nil
	case v.DateTime != nil:
		return filter.TagDateTime, nil
	case v.Date != nil:
		return filter.TagDate, nil
	default:
		return 0, fmt.Errorf("tag: property value has no populated field")
	}
}

// validateValueMatchesType rejects a value whose populated field doesn't
// match the tag definition's declared type.
func validateValueMatchesType(t filter.TagType, v domval.Value) error {
	ok := false
	switch t {
	case filter.TagText, filter.TagLink:
		ok = v.String != nil
	case filter.TagInt:
		ok = v.Integer != nil
	case filter.TagDouble:
		ok = v.Double != nil
	case filter.TagBool:
		ok = v.Boolean != nil
	case filter.TagDate:
		ok = v.Date != nil
	case filter.TagDateTime:
		ok = v.DateTime != nil
	}
	if !ok {
		return fmt.Errorf("tag: value does not match declared type %s", t)
	}
	return nil
}

// stringTagLengthFor picks the auto-create default for Text/Link tags;
// nil for every other type, matching spec.md §3's invariant.
func stringTagLengthFor(t filter.TagType) *int32 {
	if t != filter.TagText && t != filter.TagLink {
		return nil
	}
	defaultLen := int32(1000)
	return &defaultLen
}
