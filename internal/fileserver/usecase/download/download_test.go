package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
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

func sha256Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

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

type fakePartStore struct {
	parts map[int][]byte
}

func (s *fakePartStore) Put(ctx context.Context, schema string, fileReferenceID int64, partNumber int, ciphertext []byte) error {
	panic("not used")
}
func (s *fakePartStore) Get(ctx context.Context, schema string, fileReferenceID int64, partNumber int) ([]byte, error) {
	return s.parts[partNumber], nil
}
func (s *fakePartStore) Count(ctx context.Context, schema string, fileReferenceID int64) (int, error) {
	return len(s.parts), nil
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

func newKeyServer(t *testing.T, customerKey, wrappedKey string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(climeta.KeyReply{CustomerCode: "deadbeef", CipheredKey: wrappedKey})
	}))
}

func TestExecuteReassemblesAndVerifiesChecksum(t *testing.T) {
	customerKey, err := crypto.GenerateKeyString()
	if err != nil {
		t.Fatalf("generate customer key: %v", err)
	}
	cekInstance := newTestCEK(t)
	wrapped, err := crypto.SealToString([]byte(customerKey), cekInstance.KeyString())
	if err != nil {
		t.Fatalf("wrap customer key: %v", err)
	}

	plaintext := []byte("hello file server")
	part0, err := crypto.Seal(plaintext[:8], customerKey)
	if err != nil {
		t.Fatalf("seal part 0: %v", err)
	}
	part1, err := crypto.Seal(plaintext[8:], customerKey)
	if err != nil {
		t.Fatalf("seal part 1: %v", err)
	}

	sum := sha256Sum(plaintext)

	totalPart := int32(2)
	mimeType := "text/plain"
	frRepo := &fakeFileReferenceRepo{byFileRef: map[string]*domfr.FileReference{
		"file-1": {ID: 9, FileRef: "file-1", TotalPart: &totalPart, Checksum: &sum, MimeType: &mimeType},
	}}
	parts := &fakePartStore{parts: map[int][]byte{0: part0, 1: part1}}

	keyServer := newKeyServer(t, customerKey, wrapped)
	defer keyServer.Close()

	uc := NewUseCase(zap.NewNop(), cekInstance, climeta.New(keyServer.URL), frRepo, parts)
	got, gotMime, err := uc.Execute(context.Background(), "deadbeef", "fs_deadbeef", "file-1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if string(got) != string(plaintext) {
		t.Fatalf("reassembled mismatch: got %q want %q", got, plaintext)
	}
	if gotMime != mimeType {
		t.Fatalf("unexpected mime type: got %q want %q", gotMime, mimeType)
	}
}

func TestExecuteReturnsChecksumMismatchOnCorruption(t *testing.T) {
	customerKey, err := crypto.GenerateKeyString()
	if err != nil {
		t.Fatalf("generate customer key: %v", err)
	}
	cekInstance := newTestCEK(t)
	wrapped, err := crypto.SealToString([]byte(customerKey), cekInstance.KeyString())
	if err != nil {
		t.Fatalf("wrap customer key: %v", err)
	}

	part0, err := crypto.Seal([]byte("actual content"), customerKey)
	if err != nil {
		t.Fatalf("seal part: %v", err)
	}

	wrongSum := sha256Sum([]byte("different content"))
	totalPart := int32(1)
	frRepo := &fakeFileReferenceRepo{byFileRef: map[string]*domfr.FileReference{
		"file-1": {ID: 9, FileRef: "file-1", TotalPart: &totalPart, Checksum: &wrongSum},
	}}
	parts := &fakePartStore{parts: map[int][]byte{0: part0}}

	keyServer := newKeyServer(t, customerKey, wrapped)
	defer keyServer.Close()

	uc := NewUseCase(zap.NewNop(), cekInstance, climeta.New(keyServer.URL), frRepo, parts)
	if _, _, err := uc.Execute(context.Background(), "deadbeef", "fs_deadbeef", "file-1"); err != ErrChecksumMismatch {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestExecuteReturnsNotFoundForUnfinishedUpload(t *testing.T) {
	frRepo := &fakeFileReferenceRepo{byFileRef: map[string]*domfr.FileReference{
		"file-1": {ID: 9, FileRef: "file-1", TotalPart: nil},
	}}
	parts := &fakePartStore{parts: map[int][]byte{}}

	cekInstance := newTestCEK(t)
	uc := NewUseCase(zap.NewNop(), cekInstance, climeta.New("http://unused.invalid"), frRepo, parts)
	if _, _, err := uc.Execute(context.Background(), "deadbeef", "fs_deadbeef", "file-1"); err != domfr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
