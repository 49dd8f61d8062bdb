package tag

import (
	"context"
	"testing"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/tagdefinition"
	domval "github.com/doka-one/doka/internal/documentserver/domain/tagvalue"
	"github.com/doka-one/doka/pkg/filter"
)

type fakeTagRepo struct {
	byID   map[int64]*dom.TagDefinition
	byName map[string]*dom.TagDefinition
	nextID int64
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{byID: map[int64]*dom.TagDefinition{}, byName: map[string]*dom.TagDefinition{}}
}

func (r *fakeTagRepo) Create(ctx context.Context, schema string, td *dom.TagDefinition) (int64, error) {
	if _, ok := r.byName[td.Name]; ok {
		return 0, dom.ErrAlreadyExists
	}
	r.nextID++
	cp := *td
	cp.ID = r.nextID
	r.byID[r.nextID] = &cp
	r.byName[td.Name] = &cp
	return r.nextID, nil
}

func (r *fakeTagRepo) GetByName(ctx context.Context, schema string, name string) (*dom.TagDefinition, error) {
	td, ok := r.byName[name]
	if !ok {
		return nil, dom.ErrNotFound
	}
	return td, nil
}

func (r *fakeTagRepo) GetByID(ctx context.Context, schema string, id int64) (*dom.TagDefinition, error) {
	td, ok := r.byID[id]
	if !ok {
		return nil, dom.ErrNotFound
	}
	return td, nil
}

func (r *fakeTagRepo) List(ctx context.Context, schema string) ([]*dom.TagDefinition, error) {
	var out []*dom.TagDefinition
	for _, td := range r.byID {
		out = append(out, td)
	}
	return out, nil
}

func (r *fakeTagRepo) Delete(ctx context.Context, schema string, id int64) error {
	td, ok := r.byID[id]
	if !ok {
		return dom.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byName, td.Name)
	return nil
}

type fakeValueRepo struct {
	rows               []*domval.TagValue
	lastDeleteItemID   int64
	lastDeleteTagNames []string
}

func (r *fakeValueRepo) Upsert(ctx context.Context, schema string, tv *domval.TagValue) error {
	for _, existing := range r.rows {
		if existing.TagID == tv.TagID && existing.ItemID == tv.ItemID {
			existing.Value = tv.Value
			return nil
		}
	}
	r.rows = append(r.rows, tv)
	return nil
}

func (r *fakeValueRepo) ListByItem(ctx context.Context, schema string, itemID int64) ([]*domval.TagValue, error) {
	var out []*domval.TagValue
	for _, tv := range r.rows {
		if tv.ItemID == itemID {
			out = append(out, tv)
		}
	}
	return out, nil
}

func (r *fakeValueRepo) DeleteByItemAndTagNames(ctx context.Context, schema string, itemID int64, tagNames []string) error {
	r.lastDeleteItemID = itemID
	r.lastDeleteTagNames = tagNames
	return nil
}

func TestCreateTagRejectsMissingStringTagLength(t *testing.T) {
	logger := zap.NewNop()
	repo := newFakeTagRepo()
	createUC := NewCreateUseCase(logger, repo)

	_, err := createUC.Execute(context.Background(), "cs_ab12cd34", &dom.TagDefinition{Name: "title", Type: filter.TagText})
	if err == nil {
		t.Fatal("expected error when Text tag is missing string_tag_length")
	}
}

func TestCreateTagRejectsStringTagLengthOnNonStringType(t *testing.T) {
	logger := zap.NewNop()
	repo := newFakeTagRepo()
	createUC := NewCreateUseCase(logger, repo)

	length := int32(10)
	_, err := createUC.Execute(context.Background(), "cs_ab12cd34", &dom.TagDefinition{Name: "age", Type: filter.TagInt, StringTagLength: &length})
	if err == nil {
		t.Fatal("expected error when an Int tag declares string_tag_length")
	}
}

func TestWritePropertyAutoCreatesTagFromValue(t *testing.T) {
	logger := zap.NewNop()
	tagRepo := newFakeTagRepo()
	valRepo := &fakeValueRepo{}
	writeUC := NewWriteUseCase(logger, tagRepo, valRepo)

	age := int64(42)
	err := writeUC.Execute(context.Background(), "cs_ab12cd34", 1, []PropertyInput{
		{Name: "age", Value: domval.Value{Integer: &age}},
	})
	if err != nil {
		t.Fatalf("write property failed: %v", err)
	}

	td, err := tagRepo.GetByName(context.Background(), "cs_ab12cd34", "age")
	if err != nil {
		t.Fatalf("expected tag definition to be auto-created: %v", err)
	}
	if td.Type != filter.TagInt {
		t.Fatalf("inferred type = %s, want Int", td.Type)
	}

	values, err := valRepo.ListByItem(context.Background(), "cs_ab12cd34", 1)
	if err != nil || len(values) != 1 {
		t.Fatalf("expected one stored value, got %v, err %v", values, err)
	}
}

func TestWritePropertyRejectsTypeMismatch(t *testing.T) {
	logger := zap.NewNop()
	tagRepo := newFakeTagRepo()
	valRepo := &fakeValueRepo{}
	writeUC := NewWriteUseCase(logger, tagRepo, valRepo)

	length := int32(100)
	if _, err := tagRepo.Create(context.Background(), "cs_ab12cd34", &dom.TagDefinition{Name: "title", Type: filter.TagText, StringTagLength: &length}); err != nil {
		t.Fatalf("seed tag failed: %v", err)
	}

	mismatched := int64(7)
	err := writeUC.Execute(context.Background(), "cs_ab12cd34", 1, []PropertyInput{
		{Name: "title", Value: domval.Value{Integer: &mismatched}},
	})
	if err == nil {
		t.Fatal("expected type mismatch to be rejected")
	}
}

func TestRemoveTagsDelegatesToRepository(t *testing.T) {
	logger := zap.NewNop()
	valRepo := &fakeValueRepo{}
	removeUC := NewRemoveUseCase(logger, valRepo)

	if err := removeUC.Execute(context.Background(), "cs_ab12cd34", 1, []string{"title"}); err != nil {
		t.Fatalf("remove tags failed: %v", err)
	}
	if valRepo.lastDeleteItemID != 1 || len(valRepo.lastDeleteTagNames) != 1 || valRepo.lastDeleteTagNames[0] != "title" {
		t.Fatalf("unexpected delete call: item=%d names=%v", valRepo.lastDeleteItemID, valRepo.lastDeleteTagNames)
	}
}

func TestRemoveTagsIsNoOpForEmptyNames(t *testing.T) {
	logger := zap.NewNop()
	valRepo := &fakeValueRepo{}
	removeUC := NewRemoveUseCase(logger, valRepo)

	if err := removeUC.Execute(context.Background(), "cs_ab12cd34", 1, nil); err != nil {
		t.Fatalf("remove tags failed: %v", err)
	}
	if valRepo.lastDeleteTagNames != nil {
		t.Fatal("expected DeleteByItemAndTagNames not to be called for an empty name list")
	}
}
