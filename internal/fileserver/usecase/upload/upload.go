// Package upload implements the upload half of File Server's pipeline
// (spec.md §4.6 steps 1-7): create a file_reference row with total_part
// still NULL, split the body into parts, encrypt each with bounded
// parallelism, insert every part, then close the row with the final part
// count and encrypted size.
package upload

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	climeta "github.com/doka-one/doka/internal/fileserver/client/keymanager"
	"github.com/doka-one/doka/internal/fileserver/chunking"
	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
	"github.com/doka-one/doka/internal/fileserver/partstore"
	"github.com/doka-one/doka/pkg/security/cek"
	"github.com/doka-one/doka/pkg/security/crypto"
)

// Result is what the HTTP layer reports back as {file_ref, block_count}.
type Result struct {
	FileRef    string
	BlockCount int
}

type UseCase interface {
	Execute(ctx context.Context, customerCode, schema, itemInfo, mimeType string, plaintext []byte, newFileRef func() string) (*Result, error)
}

type useCaseImpl struct {
	logger    *zap.Logger
	cek       *cek.CEK
	keyClient *climeta.Client
	frRepo    domfr.Repository
	parts     partstore.PartStore
	workers   int
}

func NewUseCase(logger *zap.Logger, cekInstance *cek.CEK, keyClient *climeta.Client, frRepo domfr.Repository, parts partstore.PartStore) UseCase {
	return &useCaseImpl{logger: logger, cek: cekInstance, keyClient: keyClient, frRepo: frRepo, parts: parts, workers: chunking.DefaultWorkers}
}

// Execute runs the full upload pipeline. newFileRef generates the file_ref
// (uuid v4 in production, injected here so tests can supply a fixed value).
func (uc *useCaseImpl) Execute(ctx context.Context, customerCode, schema, itemInfo, mimeType string, plaintext []byte, newFileRef func() string) (*Result, error) {
	keyString, err := uc.customerKeyString(ctx, customerCode)
	if err != nil {
		return nil, err
	}

	fileRef := newFileRef()
	checksum := sha256.Sum256(plaintext)
	checksumHex := hex.EncodeToString(checksum[:])
	originalSize := int64(len(plaintext))

	fr := &domfr.FileReference{
		FileRef:          fileRef,
		ItemInfo:         strOrNil(itemInfo),
		MimeType:         strOrNil(mimeType),
		Checksum:         &checksumHex,
		OriginalFileSize: &originalSize,
	}
	id, err := uc.frRepo.Create(ctx, schema, fr)
	if err != nil {
		return nil, fmt.Errorf("upload: create file_reference: %w", err)
	}

	chunks := chunking.Split(plaintext)
	encrypted, err := chunking.EncryptParallel(ctx, chunks, keyString, uc.workers)
	if err != nil {
		return nil, fmt.Errorf("upload: encrypt parts: %w", err)
	}

	var encryptedSize int64
	for _, part := range encrypted {
		if err := uc.parts.Put(ctx, schema, id, part.PartNumber, part.Ciphertext); err != nil {
			return nil, fmt.Errorf("upload: store part %d: %w", part.PartNumber, err)
		}
		encryptedSize += int64(len(part.Ciphertext))
	}

	if err := uc.frRepo.SetTotalPart(ctx, schema, fileRef, len(chunks), encryptedSize); err != nil {
		return nil, fmt.Errorf("upload: close file_reference: %w", err)
	}

	return &Result{FileRef: fileRef, BlockCount: len(chunks)}, nil
}

func (uc *useCaseImpl) customerKeyString(ctx context.Context, customerCode string) (string, error) {
	reply, err := uc.keyClient.GetKey(ctx, customerCode)
	if err != nil {
		return "", fmt.Errorf("upload: fetch customer key: %w", err)
	}
	unwrapped, err := crypto.OpenFromString(reply.CipheredKey, uc.cek.KeyString())
	if err != nil {
		return "", fmt.Errorf("upload: unwrap customer key: %w", err)
	}
	return string(unwrapped), nil
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
