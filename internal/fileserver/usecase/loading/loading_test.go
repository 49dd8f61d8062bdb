package loading

import (
	"context"
	"testing"

	"go.uber.org/zap"

	domfp "github.com/doka-one/doka/internal/fileserver/domain/filepart"
	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
)

type fakeFileReferenceRepo struct {
	loading []*domfr.FileReference
}

func (r *fakeFileReferenceRepo) Create(ctx context.Context, schema string, fr *domfr.FileReference) (int64, error) {
	panic("not used")
}
func (r *fakeFileReferenceRepo) GetByFileRef(ctx context.Context, schema, fileRef string) (*domfr.FileReference, error) {
	panic("not used")
}
func (r *fakeFileReferenceRepo) SetTotalPart(ctx context.Context, schema, fileRef string, totalPart int, encryptedFileSize int64) error {
	panic("not used")
}
func (r *fakeFileReferenceRepo) SetFulltextParsed(ctx context.Context, schema, fileRef string, value bool) error {
	panic("not used")
}
func (r *fakeFileReferenceRepo) SetPreviewGenerated(ctx context.Context, schema, fileRef string, value bool) error {
	panic("not used")
}
func (r *fakeFileReferenceRepo) ListLoading(ctx context.Context, schema string) ([]*domfr.FileReference, error) {
	return r.loading, nil
}
func (r *fakeFileReferenceRepo) ListByPattern(ctx context.Context, schema, pattern string) ([]*domfr.FileReference, error) {
	panic("not used")
}
func (r *fakeFileReferenceRepo) PickNextUnindexed(ctx context.Context, schema string) (*domfr.FileReference, error) {
	panic("not used")
}
func (r *fakeFileReferenceRepo) PickNextUnpreviewed(ctx context.Context, schema string) (*domfr.FileReference, error) {
	panic("not used")
}

type fakeFilePartRepo struct {
	counts map[int64]int
}

func (r *fakeFilePartRepo) Insert(ctx context.Context, schema string, fileReferenceID int64, partNumber int, partData *string) (int64, error) {
	panic("not used")
}
func (r *fakeFilePartRepo) Get(ctx context.Context, schema string, fileReferenceID int64, partNumber int) (*domfp.FilePart, error) {
	panic("not used")
}
func (r *fakeFilePartRepo) Count(ctx context.Context, schema string, fileReferenceID int64) (int, error) {
	return r.counts[fileReferenceID], nil
}

func TestExecuteListsInFlightUploadsWithCounts(t *testing.T) {
	itemInfo := "report.pdf"
	frRepo := &fakeFileReferenceRepo{loading: []*domfr.FileReference{
		{ID: 1, FileRef: "file-1", ItemInfo: &itemInfo},
		{ID: 2, FileRef: "file-2"},
	}}
	fpRepo := &fakeFilePartRepo{counts: map[int64]int{1: 2, 2: 0}}

	uc := NewUseCase(zap.NewNop(), frRepo, fpRepo)
	entries, err := uc.Execute(context.Background(), "fs_deadbeef")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].FileRef != "file-1" || entries[0].EncryptedCount != 2 || entries[0].ItemInfo == nil || *entries[0].ItemInfo != itemInfo {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].FileRef != "file-2" || entries[1].EncryptedCount != 0 || entries[1].ItemInfo != nil {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestExecuteReturnsEmptySliceWhenNothingLoading(t *testing.T) {
	frRepo := &fakeFileReferenceRepo{loading: nil}
	fpRepo := &fakeFilePartRepo{counts: map[int64]int{}}

	uc := NewUseCase(zap.NewNop(), frRepo, fpRepo)
	entries, err := uc.Execute(context.Background(), "fs_deadbeef")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
