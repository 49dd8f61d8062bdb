package item

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/item"
)

type fakeRepo struct {
	rows   map[int64]*dom.Item
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[int64]*dom.Item)}
}

func (r *fakeRepo) Create(ctx context.Context, schema string, it *dom.Item) (int64, error) {
	r.nextID++
	cp := *it
	cp.ID = r.nextID
	r.rows[r.nextID] = &cp
	return r.nextID, nil
}

func (r *fakeRepo) Get(ctx context.Context, schema string, id int64) (*dom.Item, error) {
	it, ok := r.rows[id]
	if !ok {
		return nil, dom.ErrNotFound
	}
	return it, nil
}

func (r *fakeRepo) List(ctx context.Context, schema string, startPage, pageSize int) ([]*dom.Item, error) {
	var out []*dom.Item
	for _, it := range r.rows {
		out = append(out, it)
	}
	return out, nil
}

func (r *fakeRepo) Search(ctx context.Context, schema string, joins []string, where string, startPage, pageSize int) ([]*dom.Item, error) {
	return r.List(ctx, schema, startPage, pageSize)
}

func (r *fakeRepo) Touch(ctx context.Context, schema string, id int64, lastModifiedGMT time.Time) error {
	it, ok := r.rows[id]
	if !ok {
		return dom.ErrNotFound
	}
	it.LastModifiedGMT = lastModifiedGMT
	return nil
}

func TestCreateThenGet(t *testing.T) {
	logger := zap.NewNop()
	repo := newFakeRepo()
	createUC := NewCreateUseCase(logger, repo)
	getUC := NewGetUseCase(logger, repo)

	created, err := createUC.Execute(context.Background(), "cs_ab12cd34", "invoice.pdf", nil)
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	if created.Name != "invoice.pdf" {
		t.Fatalf("created.Name = %q, want invoice.pdf", created.Name)
	}
	if created.CreatedGMT.IsZero() {
		t.Fatal("expected CreatedGMT to be set")
	}

	got, err := getUC.Execute(context.Background(), "cs_ab12cd34", created.ID)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("got.ID = %d, want %d", got.ID, created.ID)
	}
}

func TestGetUnknownItemFails(t *testing.T) {
	logger := zap.NewNop()
	repo := newFakeRepo()
	getUC := NewGetUseCase(logger, repo)

	if _, err := getUC.Execute(context.Background(), "cs_ab12cd34", 999); err != dom.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNormalizePagingClampsDefaults(t *testing.T) {
	cases := []struct {
		inStart, inSize   int
		wantStart, wantSz int
	}{
		{0, 0, 0, DefaultPageSize},
		{-1, 10, 0, 10},
		{2, 10_000, 2, MaxPageSize},
	}
	for _, c := range cases {
		gotStart, gotSize := NormalizePaging(c.inStart, c.inSize)
		if gotStart != c.wantStart || gotSize != c.wantSz {
			t.Errorf("NormalizePaging(%d, %d) = (%d, %d), want (%d, %d)",
				c.inStart, c.inSize, gotStart, gotSize, c.wantStart, c.wantSz)
		}
	}
}
