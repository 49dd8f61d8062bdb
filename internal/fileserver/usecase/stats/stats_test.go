package stats

import (
	"context"
	"testing"

	"go.uber.org/zap"

	domfp "github.com/doka-one/doka/internal/fileserver/domain/filepart"
	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
)

type fakeFileReferenceRepo struct {
	byFileRef map[string]*domfr.FileReference
}

func (r *fakeFileReferenceRepo) Create(ctx context.Context, schema string, fr *domfr.FileReference) (int64, error) {
	panic("not used")
}
func (r *fakeFileReferenceRepo) GetByFileRef(ctx context.Context, schema, fileRef string) (*domfr.FileReference, error) {
	fr, ok := r.byFileRef[fileRef]
	if !ok {
		return nil, domfr.ErrNotFound
	}
	return fr, nil
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
	panic("not used")
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

func TestExecuteReturnsCountsAndFlags(t *testing.T) {
	totalPart := int32(3)
	frRepo := &fakeFileReferenceRepo{byFileRef: map[string]*domfr.FileReference{
		"file-1": {ID: 7, FileRef: "file-1", TotalPart: &totalPart, IsFulltextParsed: true, IsPreviewGenerated: false},
	}}
	fpRepo := &fakeFilePartRepo{counts: map[int64]int{7: 3}}

	uc := NewUseCase(zap.NewNop(), frRepo, fpRepo)
	result, err := uc.Execute(context.Background(), "fs_deadbeef", "file-1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if result.EncryptedCount != 3 || result.TotalPart == nil || *result.TotalPart != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if !result.IsFulltextParsed || result.IsPreviewGenerated {
		t.Fatalf("unexpected flags: %+v", result)
	}
}

func TestExecutePropagatesNotFound(t *testing.T) {
	frRepo := &fakeFileReferenceRepo{byFileRef: map[string]*domfr.FileReference{}}
	fpRepo := &fakeFilePartRepo{counts: map[int64]int{}}

	uc := NewUseCase(zap.NewNop(), frRepo, fpRepo)
	if _, err := uc.Execute(context.Background(), "fs_deadbeef", "missing"); err != domfr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
