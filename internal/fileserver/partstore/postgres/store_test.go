package postgres

import (
	"context"
	"testing"

	domfp "github.com/doka-one/doka/internal/fileserver/domain/filepart"
)

type fakeRepo struct {
	rows   map[int]*domfp.FilePart
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[int]*domfp.FilePart)}
}

func (r *fakeRepo) Insert(ctx context.Context, schema string, fileReferenceID int64, partNumber int, partData *string) (int64, error) {
	r.nextID++
	r.rows[partNumber] = &domfp.FilePart{ID: r.nextID, FileReferenceID: fileReferenceID, PartNumber: partNumber, IsEncrypted: true, PartData: partData}
	return r.nextID, nil
}

func (r *fakeRepo) Get(ctx context.Context, schema string, fileReferenceID int64, partNumber int) (*domfp.FilePart, error) {
	fp, ok := r.rows[partNumber]
	if !ok {
		return nil, domfp.ErrNotFound
	}
	return fp, nil
}

func (r *fakeRepo) Count(ctx context.Context, schema string, fileReferenceID int64) (int, error) {
	return len(r.rows), nil
}

func TestPutThenGetRoundTripsCiphertext(t *testing.T) {
	repo := newFakeRepo()
	store := New(repo)

	ciphertext := []byte{0x01, 0x02, 0xff, 0x00, 0x10}
	if err := store.Put(context.Background(), "fs_deadbeef", 42, 0, ciphertext); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(context.Background(), "fs_deadbeef", 42, 0)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != string(ciphertext) {
		t.Fatalf("round trip mismatch: got %v want %v", got, ciphertext)
	}
}

func TestCountReflectsStoredParts(t *testing.T) {
	repo := newFakeRepo()
	store := New(repo)

	for i := 0; i < 3; i++ {
		if err := store.Put(context.Background(), "fs_deadbeef", 42, i, []byte{byte(i)}); err != nil {
			t.Fatalf("put %d: %v", i, err)
		}
	}

	count, err := store.Count(context.Background(), "fs_deadbeef", 42)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
}
