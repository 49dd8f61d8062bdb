package upload

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	climeta "github.com/doka-one/doka/internal/fileserver/client/keymanager"
	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
	"github.com/doka-one/doka/pkg/security/cek"
	"github.com/doka-one/doka/pkg/security/crypto"
)

type fakeFileReferenceRepo struct {
	rows      map[string]*domfr.FileReference
	nextID    int64
	createErr error
}

func newFakeFileReferenceRepo() *fakeFileReferenceRepo {
	return &fakeFileReferenceRepo{rows: make(map[string]*domfr.FileReference)}
}

func (r *fakeFileReferenceRepo) Create(ctx context.Context, schema string, fr *domfr.FileReference) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.nextID++
	cp := *fr
	cp.ID = r.nextID
	r.rows[fr.FileRef] = &cp
	return r.nextID, nil
}

func (r *fakeFileReferenceRepo) GetByFileRef(ctx context.Context, schema, fileRef string) (*domfr.FileReference, error) {
	fr, ok := r.rows[fileRef]
	if !ok {
		return nil, domfr.ErrNotFound
	}
	return fr, nil
}

func (r *fakeFileReferenceRepo) SetTotalPart(ctx context.Context, schema, fileRef string, totalPart int, encryptedFileSize int64) error {
	fr, ok := r.rows[fileRef]
	if !ok {
		return domfr.ErrNotFound
	}
	tp := int32(totalPart)
	fr.TotalPart = &tp
	fr.EncryptedFileSize = &encryptedFileSize
	return nil
}

func (r *fakeFileReferenceRepo) SetFulltextParsed(ctx context.Context, schema, fileRef string, value bool) error {
	r.rows[fileRef].IsFulltextParsed = value
	return nil
}

func (r *fakeFileReferenceRepo) SetPreviewGenerated(ctx context.Context, schema, fileRef string, value bool) error {
	r.rows[fileRef].IsPreviewGenerated = value
	return nil
}

func (r *fakeFileReferenceRepo) ListLoading(ctx context.Context, schema string) ([]*domfr.FileReference, error) {
	var out []*domfr.FileReference
	for _, fr := range r.rows {
		if fr.TotalPart == nil {
			out = append(out, fr)
		}
	}
	return out, nil
}

func (r *fakeFileReferenceRepo) ListByPattern(ctx context.Context, schema, pattern string) ([]*domfr.FileReference, error) {
	return nil, nil
}

func (r *fakeFileReferenceRepo) PickNextUnindexed(ctx context.Context, schema string) (*domfr.FileReference, error) {
	return nil, domfr.ErrNotFound
}

func (r *fakeFileReferenceRepo) PickNextUnpreviewed(ctx context.Context, schema string) (*domfr.FileReference, error) {
	return nil, domfr.ErrNotFound
}

type fakePartStore struct {
	puts map[int][]byte
}

func newFakePartStore() *fakePartStore {
	return &fakePartStore{puts: make(map[int][]byte)}
}

func (s *fakePartStore) Put(ctx context.Context, schema string, fileReferenceID int64, partNumber int, ciphertext []byte) error {
	s.puts[partNumber] = ciphertext
	return nil
}

func (s *fakePartStore) Get(ctx context.Context, schema string, fileReferenceID int64, partNumber int) ([]byte, error) {
	return s.puts[partNumber], nil
}

func (s *fakePartStore) Count(ctx context.Context, schema string, fileReferenceID int64) (int, error) {
	return len(s.puts), nil
}

func newTestCEK(t *testing.T) *cek.CEK {
	t.Helper()
	keyString, err := crypto.GenerateKeyString()
	if err != nil {
		t.Fatalf("generate cek: %v", err)
	}
	path := filepath.Join(t.TempDir(), "cek.key")
	if err := os.WriteFile(path, []byte(keyString), 0o600); err != nil {
		t.Fatalf("write cek file: %v", err)
	}
	instance, err := cek.Load(path)
	if err != nil {
		t.Fatalf("load cek: %v", err)
	}
	return instance
}

func TestUploadSplitsEncryptsAndClosesFileReference(t *testing.T) {
	customerKey, err := crypto.GenerateKeyString()
	if err != nil {
		t.Fatalf("generate customer key: %v", err)
	}
	cekInstance := newTestCEK(t)
	wrapped, err := crypto.SealToString([]byte(customerKey), cekInstance.KeyString())
	if err != nil {
		t.Fatalf("wrap customer key: %v", err)
	}

	keyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(climeta.KeyReply{CustomerCode: "deadbeef", CipheredKey: wrapped})
	}))
	defer keyServer.Close()

	frRepo := newFakeFileReferenceRepo()
	parts := newFakePartStore()
	uc := NewUseCase(zap.NewNop(), cekInstance, climeta.New(keyServer.URL), frRepo, parts)

	plaintext := []byte("hello file server")
	result, err := uc.Execute(context.Background(), "deadbeef", "fs_deadbeef", "report.pdf", "application/pdf", plaintext, func() string { return "file-1" })
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if result.FileRef != "file-1" || result.BlockCount != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	fr := frRepo.rows["file-1"]
	if fr == nil || fr.TotalPart == nil || *fr.TotalPart != 1 {
		t.Fatalf("expected file_reference closed with total_part=1, got %+v", fr)
	}
	if len(parts.puts) != 1 {
		t.Fatalf("expected exactly one stored part, got %d", len(parts.puts))
	}

	decrypted, err := crypto.Open(parts.puts[0], customerKey)
	if err != nil {
		t.Fatalf("decrypt stored part: %v", err)
	}
	if string(decrypted) != string(plaintext) {
		t.Fatalf("stored part mismatch: got %q want %q", decrypted, plaintext)
	}
}
