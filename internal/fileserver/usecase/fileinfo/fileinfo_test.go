package fileinfo

import (
	"context"
	"testing"

	"go.uber.org/zap"

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

func TestExecuteReturnsFileReference(t *testing.T) {
	repo := &fakeFileReferenceRepo{byFileRef: map[string]*domfr.FileReference{
		"file-1": {ID: 1, FileRef: "file-1"},
	}}

	uc := NewUseCase(zap.NewNop(), repo)
	fr, err := uc.Execute(context.Background(), "fs_deadbeef", "file-1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if fr.FileRef != "file-1" {
		t.Fatalf("unexpected file reference: %+v", fr)
	}
}

func TestExecutePropagatesNotFound(t *testing.T) {
	repo := &fakeFileReferenceRepo{byFileRef: map[string]*domfr.FileReference{}}

	uc := NewUseCase(zap.NewNop(), repo)
	if _, err := uc.Execute(context.Background(), "fs_deadbeef", "missing"); err != domfr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
