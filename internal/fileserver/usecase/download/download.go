// Package download implements spec.md §4.6's download pipeline: read parts
// in part_number order, decrypt each, and verify the reassembled plaintext's
// checksum before the caller streams it out.
package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	climeta "github.com/doka-one/doka/internal/fileserver/client/keymanager"
	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
	"github.com/doka-one/doka/internal/fileserver/partstore"
	"github.com/doka-one/doka/pkg/security/cek"
	"github.com/doka-one/doka/pkg/security/crypto"
)

// ErrChecksumMismatch signals the reassembled plaintext doesn't match the
// file_reference's recorded checksum. The download service turns it into an
// internal server error reply instead of serving a silently corrupted file;
// the connection is not closed early.
var ErrChecksumMismatch = fmt.Errorf("download: checksum mismatch")

type UseCase interface {
	Execute(ctx context.Context, customerCode, schema, fileRef string) ([]byte, string, error)
}

type useCaseImpl struct {
	logger    *zap.Logger
	cek       *cek.CEK
	keyClient *climeta.Client
	frRepo    domfr.Repository
	parts     partstore.PartStore
}

func NewUseCase(logger *zap.Logger, cekInstance *cek.CEK, keyClient *climeta.Client, frRepo domfr.Repository, parts partstore.PartStore) UseCase {
	return &useCaseImpl{logger: logger, cek: cekInstance, keyClient: keyClient, frRepo: frRepo, parts: parts}
}

// Execute returns the decrypted plaintext and its mime type.
func (uc *useCaseImpl) Execute(ctx context.Context, customerCode, schema, fileRef string) ([]byte, string, error) {
	fr, err := uc.frRepo.GetByFileRef(ctx, schema, fileRef)
	if err != nil {
		return nil, "", err
	}
	if fr.TotalPart == nil {
		return nil, "", domfr.ErrNotFound
	}

	keyString, err := uc.customerKeyString(ctx, customerCode)
	if err != nil {
		return nil, "", err
	}

	var plaintext []byte
	for partNumber := 0; partNumber < int(*fr.TotalPart); partNumber++ {
		ciphertext, err := uc.parts.Get(ctx, schema, fr.ID, partNumber)
		if err != nil {
			return nil, "", fmt.Errorf("download: read part %d: %w", partNumber, err)
		}
		decrypted, err := crypto.Open(ciphertext, keyString)
		if err != nil {
			return nil, "", fmt.Errorf("download: decrypt part %d: %w", partNumber, err)
		}
		plaintext = append(plaintext, decrypted...)
	}

	if fr.Checksum != nil {
		sum := sha256.Sum256(plaintext)
		if hex.EncodeToString(sum[:]) != *fr.Checksum {
			uc.logger.Error("downloaded file failed checksum verification", zap.String("file_ref", fileRef))
			return nil, "", ErrChecksumMismatch
		}
	}

	mimeType := ""
	if fr.MimeType != nil {
		mimeType = *fr.MimeType
	}
	return plaintext, mimeType, nil
}

func (uc *useCaseImpl) customerKeyString(ctx context.Context, customerCode string) (string, error) {
	reply, err := uc.keyClient.GetKey(ctx, customerCode)
	if err != nil {
		return "", fmt.Errorf("download: fetch customer key: %w", err)
	}
	unwrapped, err := crypto.OpenFromString(reply.CipheredKey, uc.cek.KeyString())
	if err != nil {
		return "", fmt.Errorf("download: unwrap customer key: %w", err)
	}
	return string(unwrapped), nil
}
