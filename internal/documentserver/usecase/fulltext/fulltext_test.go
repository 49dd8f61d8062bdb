package fulltext

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	domdoc "github.com/doka-one/doka/internal/documentserver/domain/document"
	climeta "github.com/doka-one/doka/internal/documentserver/client/keymanager"
	clitika "github.com/doka-one/doka/internal/documentserver/client/tika"
	"github.com/doka-one/doka/pkg/security/cek"
	"github.com/doka-one/doka/pkg/security/crypto"
)

type fakeDocRepo struct {
	blocks    []domdoc.TextBlock
	deletedFor string
}

func (r *fakeDocRepo) InsertDocument(ctx context.Context, schema string, block domdoc.TextBlock) error {
	r.blocks = append(r.blocks, block)
	return nil
}

func (r *fakeDocRepo) DeleteByFileRef(ctx context.Context, schema string, fileRef string) error {
	r.deletedFor = fileRef
	return nil
}

func (r *fakeDocRepo) ComputeTsvector(ctx context.Context, lang string, text string) (string, error) {
	return fmt.Sprintf("%s:1", text[:minInt(len(text), 4)]), nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func newTestCEK(t *testing.T) *cek.CEK {
	t.Helper()
	keyStr, err := crypto.GenerateKeyString()
	if err != nil {
		t.Fatalf("generate cek key: %v", err)
	}
	path := filepath.Join(t.TempDir(), "cek.key")
	if err := os.WriteFile(path, []byte(keyStr), 0o600); err != nil {
		t.Fatalf("write cek key file: %v", err)
	}
	loaded, err := cek.Load(path)
	if err != nil {
		t.Fatalf("load cek: %v", err)
	}
	return loaded
}

func TestIndexingUseCaseWritesOneBlockPerLanguage(t *testing.T) {
	cekInstance := newTestCEK(t)

	customerKeyStr, err := crypto.GenerateKeyString()
	if err != nil {
		t.Fatalf("generate customer key: %v", err)
	}
	ciphered, err := crypto.SealToString([]byte(customerKeyStr), cekInstance.KeyString())
	if err != nil {
		t.Fatalf("wrap customer key: %v", err)
	}

	keyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"customer_code":"ab12cd34","ciphered_key":%q}`, ciphered)
	}))
	defer keyServer.Close()

	tikaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "en")
	}))
	defer tikaServer.Close()

	docRepo := &fakeDocRepo{}
	uc := NewIndexingUseCase(
		zap.NewNop(),
		cekInstance,
		climeta.New(keyServer.URL),
		clitika.New(tikaServer.URL),
		docRepo,
	)

	parts, err := uc.Execute(context.Background(), "ab12cd34", "cs_ab12cd34", "file-1", "hello world this is some indexable text")
	if err != nil {
		t.Fatalf("indexing failed: %v", err)
	}
	if parts != 1 {
		t.Fatalf("expected 1 block for a single-language text, got %d", parts)
	}
	if len(docRepo.blocks) != 1 {
		t.Fatalf("expected 1 persisted block, got %d", len(docRepo.blocks))
	}
	if docRepo.blocks[0].Lang != "en" {
		t.Fatalf("block lang = %q, want en", docRepo.blocks[0].Lang)
	}
	if docRepo.blocks[0].FileRef != "file-1" {
		t.Fatalf("block file ref = %q, want file-1", docRepo.blocks[0].FileRef)
	}
}

func TestIndexingUseCaseFallsBackToEnglishOnTikaFailure(t *testing.T) {
	cekInstance := newTestCEK(t)

	customerKeyStr, err := crypto.GenerateKeyString()
	if err != nil {
		t.Fatalf("generate customer key: %v", err)
	}
	ciphered, err := crypto.SealToString([]byte(customerKeyStr), cekInstance.KeyString())
	if err != nil {
		t.Fatalf("wrap customer key: %v", err)
	}

	keyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"customer_code":"ab12cd34","ciphered_key":%q}`, ciphered)
	}))
	defer keyServer.Close()

	tikaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer tikaServer.Close()

	docRepo := &fakeDocRepo{}
	uc := NewIndexingUseCase(
		zap.NewNop(),
		cekInstance,
		climeta.New(keyServer.URL),
		clitika.New(tikaServer.URL),
		docRepo,
	)

	parts, err := uc.Execute(context.Background(), "ab12cd34", "cs_ab12cd34", "file-2", "some words to index")
	if err != nil {
		t.Fatalf("indexing failed: %v", err)
	}
	if parts != 1 || docRepo.blocks[0].Lang != fallbackLanguage {
		t.Fatalf("expected fallback language block, got parts=%d blocks=%v", parts, docRepo.blocks)
	}
}

func TestDeleteUseCaseDelegatesToRepository(t *testing.T) {
	docRepo := &fakeDocRepo{}
	deleteUC := NewDeleteUseCase(zap.NewNop(), docRepo)

	if err := deleteUC.Execute(context.Background(), "cs_ab12cd34", "file-3"); err != nil {
		t.Fatalf("delete indexing failed: %v", err)
	}
	if docRepo.deletedFor != "file-3" {
		t.Fatalf("deletedFor = %q, want file-3", docRepo.deletedFor)
	}
}
