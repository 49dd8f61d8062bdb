package chunking

import (
	"context"
	"testing"

	"github.com/doka-one/doka/pkg/security/crypto"
)

func TestSplitProducesOneChunkForEmptyInput(t *testing.T) {
	chunks := Split(nil)
	if len(chunks) != 1 || len(chunks[0]) != 0 {
		t.Fatalf("expected one empty chunk, got %v", chunks)
	}
}

func TestSplitRespectsPartSize(t *testing.T) {
	data := make([]byte, PartSize*2+10)
	chunks := Split(data)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != PartSize || len(chunks[1]) != PartSize {
		t.Fatalf("expected full-size chunks, got %d and %d", len(chunks[0]), len(chunks[1]))
	}
	if len(chunks[2]) != 10 {
		t.Fatalf("expected last chunk of 10 bytes, got %d", len(chunks[2]))
	}
}

func TestEncryptParallelRoundTripsEveryChunk(t *testing.T) {
	keyString, err := crypto.GenerateKeyString()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	chunks := [][]byte{[]byte("alpha"), []byte("beta"), []byte("gamma"), []byte("delta")}
	encrypted, err := EncryptParallel(context.Background(), chunks, keyString, 2)
	if err != nil {
		t.Fatalf("encrypt parallel: %v", err)
	}
	if len(encrypted) != len(chunks) {
		t.Fatalf("expected %d parts, got %d", len(chunks), len(encrypted))
	}

	for i, part := range encrypted {
		if part.PartNumber != i {
			t.Fatalf("part %d has PartNumber %d", i, part.PartNumber)
		}
		decrypted, err := crypto.Open(part.Ciphertext, keyString)
		if err != nil {
			t.Fatalf("decrypt part %d: %v", i, err)
		}
		if string(decrypted) != string(chunks[i]) {
			t.Fatalf("part %d round-trip mismatch: got %q want %q", i, decrypted, chunks[i])
		}
	}
}

func TestEncryptParallelRespectsContextCancellation(t *testing.T) {
	keyString, err := crypto.GenerateKeyString()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chunks := make([][]byte, 100)
	for i := range chunks {
		chunks[i] = []byte("x")
	}

	if _, err := EncryptParallel(ctx, chunks, keyString, 2); err == nil {
		t.Fatal("expected an error from a pre-cancelled context")
	}
}
