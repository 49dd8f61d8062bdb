package filelist

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
)

type fakeFileReferenceRepo struct {
	all []*domfr.FileReference
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
	panic("not used")
}
func (r *fakeFileReferenceRepo) ListByPattern(ctx context.Context, schema, pattern string) ([]*domfr.FileReference, error) {
	like := strings.Trim(pattern, "%")
	var out []*domfr.FileReference
	for _, fr := range r.all {
		if strings.Contains(fr.FileRef, like) {
			out = append(out, fr)
		}
	}
	return out, nil
}
func (r *fakeFileReferenceRepo) PickNextUnindexed(ctx context.Context, schema string) (*domfr.FileReference, error) {
	panic("not used")
}
func (r *fakeFileReferenceRepo) PickNextUnpreviewed(ctx context.Context, schema string) (*domfr.FileReference, error) {
	panic("not used")
}

func TestExecuteDelegatesPatternMatchingToRepository(t *testing.T) {
	repo := &fakeFileReferenceRepo{all: []*domfr.FileReference{
		{FileRef: "report-2024.pdf"},
		{FileRef: "report-2025.pdf"},
		{FileRef: "invoice.pdf"},
	}}

	uc := NewUseCase(zap.NewNop(), repo)
	matches, err := uc.Execute(context.Background(), "fs_deadbeef", "%report%")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(matches), matches)
	}
}
