// github.com/doka-one/doka/internal/documentserver/service/tag/service.go
package tag

import (
	"context"

	"go.uber.org/zap"

	domtag "github.com/doka-one/doka/internal/documentserver/domain/tagdefinition"
	domval "github.com/doka-one/doka/internal/documentserver/domain/tagvalue"
	"github.com/doka-one/doka/internal/documentserver/usecase/sessionresolver"
	uc "github.com/doka-one/doka/internal/documentserver/usecase/tag"
	"github.com/doka-one/doka/pkg/filter"
	"github.com/doka-one/doka/pkg/httperror"
)

// TagDefinitionDTO is the wire shape of one tag definition.
type TagDefinitionDTO struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	StringTagLength *int32  `json:"string_tag_length,omitempty"`
	DefaultValue    *string `json:"default_value,omitempty"`
}

// CreateTagRequestDTO is the JSON body of POST /tag.
type CreateTagRequestDTO struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	StringTagLength *int32  `json:"string_tag_length,omitempty"`
	DefaultValue    *string `json:"default_value,omitempty"`
}

// PropertyValueDTO is one named property value as written onto an item via
// POST /item/<id>/tags; exactly one of the typed fields is populated.
type PropertyValueDTO struct {
	Name     string   `json:"name"`
	String   *string  `json:"value_string,omitempty"`
	Integer  *int64   `json:"value_integer,omitempty"`
	Double   *float64 `json:"value_double,omitempty"`
	Boolean  *bool    `json:"value_boolean,omitempty"`
	Date     *string  `json:"value_date,omitempty"`
	DateTime *string  `json:"value_datetime,omitempty"`
}

type Service interface {
	Create(ctx context.Context, sid string, req *CreateTagRequestDTO) (*TagDefinitionDTO, error)
	List(ctx context.Context, sid string) ([]*TagDefinitionDTO, error)
	Delete(ctx context.Context, sid string, id int64) error
	WriteProperties(ctx context.Context, sid string, itemID int64, props []PropertyValueDTO) error
	RemoveTags(ctx context.Context, sid string, itemID int64, names []string) error
}

type serviceImpl struct {
	logger   *zap.Logger
	resolver sessionresolver.Resolver
	createUC uc.CreateUseCase
	listUC   uc.ListUseCase
	deleteUC uc.DeleteUseCase
	writeUC  uc.WriteUseCase
	removeUC uc.RemoveUseCase
}

func NewService(
	logger *zap.Logger,
	resolver sessionresolver.Resolver,
	createUC uc.CreateUseCase,
	listUC uc.ListUseCase,
	deleteUC uc.DeleteUseCase,
	writeUC uc.WriteUseCase,
	removeUC uc.RemoveUseCase,
) Service {
	return &serviceImpl{
		logger: logger, resolver: resolver,
		createUC: createUC, listUC: listUC, deleteUC: deleteUC, writeUC: writeUC, removeUC: removeUC,
	}
}

func (svc *serviceImpl) Create(ctx context.Context, sid string, req *CreateTagRequestDTO) (*TagDefinitionDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}
	if req == nil || req.Name == "" {
		return nil, httperror.NewForBadRequestWithSingleField("name", "name is required")
	}

	tagType, ok := parseTagType(req.Type)
	if !ok {
		return nil, httperror.NewForBadRequestWithSingleField("type", "type must be one of Text, Link, Bool, Int, Double, Date, DateTime")
	}

	td := &domtag.TagDefinition{
		Name:            req.Name,
		Type:            tagType,
		StringTagLength: req.StringTagLength,
		DefaultValue:    req.DefaultValue,
	}

	created, err := svc.createUC.Execute(ctx, resolved.Schema, td)
	if err != nil {
		if err == domtag.ErrAlreadyExists {
			return nil, httperror.NewForConflictWithSingleField("name", "a tag with this name already exists")
		}
		return nil, err
	}
	return toDTO(created), nil
}

func (svc *serviceImpl) List(ctx context.Context, sid string) ([]*TagDefinitionDTO, error) {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return nil, err
	}

	tags, err := svc.listUC.Execute(ctx, resolved.Schema)
	if err != nil {
		return nil, err
	}
	out := make([]*TagDefinitionDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, toDTO(t))
	}
	return out, nil
}

func (svc *serviceImpl) Delete(ctx context.Context, sid string, id int64) error {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return err
	}
	if err := svc.deleteUC.Execute(ctx, resolved.Schema, id); err != nil {
		if err == domtag.ErrNotFound {
			return httperror.NewForNotFoundWithSingleField("id", "tag definition not found")
		}
		return err
	}
	return nil
}

func (svc *serviceImpl) WriteProperties(ctx context.Context, sid string, itemID int64, props []PropertyValueDTO) error {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return err
	}

	inputs := make([]uc.PropertyInput, 0, len(props))
	for _, p := range props {
		val, err := toValue(p)
		if err != nil {
			return err
		}
		inputs = append(inputs, uc.PropertyInput{Name: p.Name, Value: val})
	}

	return svc.writeUC.Execute(ctx, resolved.Schema, itemID, inputs)
}

func (svc *serviceImpl) RemoveTags(ctx context.Context, sid string, itemID int64, names []string) error {
	resolved, err := svc.resolver.Execute(ctx, sid)
	if err != nil {
		return err
	}
	return svc.removeUC.Execute(ctx, resolved.Schema, itemID, names)
}

func toDTO(td *domtag.TagDefinition) *TagDefinitionDTO {
	return &TagDefinitionDTO{
		ID:              td.ID,
		Name:            td.Name,
		Type:            td.Type.String(),
		StringTagLength: td.StringTagLength,
		DefaultValue:    td.DefaultValue,
	}
}

func parseTagType(name string) (filter.TagType, bool) {
	for t := filter.TagText; t <= filter.TagDateTime; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

func toValue(p PropertyValueDTO) (domval.Value, error) {
	v := domval.Value{String: p.String, Integer: p.Integer, Double: p.Double, Boolean: p.Boolean}
	if p.Date != nil {
		t, err := parseDateOnly(*p.Date)
		if err != nil {
			return v, httperror.NewForBadRequestWithSingleField("value_date", "value_date must be an RFC3339 date")
		}
		v.Date = &t
	}
	if p.DateTime != nil {
		t, err := parseDateTime(*p.DateTime)
		if err != nil {
			return v, httperror.NewForBadRequestWithSingleField("value_datetime", "value_datetime must be RFC3339")
		}
		v.DateTime = &t
	}
	return v, nil
}
