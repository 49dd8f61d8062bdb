// Package fulltext wires Document Server's text-extraction indexing
// pipeline (tokenizing, windowed language detection, per-language block
// accumulation, tsvector encryption) to the Key Manager and Tika clients and
// the cs_<tenant>.document repository.
package fulltext

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	domdoc "github.com/doka-one/doka/internal/documentserver/domain/document"
	climeta "github.com/doka-one/doka/internal/documentserver/client/keymanager"
	clitika "github.com/doka-one/doka/internal/documentserver/client/tika"
	pkgft "github.com/doka-one/doka/internal/documentserver/fulltext"
	"github.com/doka-one/doka/internal/documentserver/language"
	"github.com/doka-one/doka/pkg/security/cek"
	"github.com/doka-one/doka/pkg/security/crypto"
)

// languageDetectionWindow is the number of pure words Tika is asked to
// classify at a time (spec.md §4.5 step 3; FINESSE_LANGUAGE_BLOCK in the
// original pipeline).
const languageDetectionWindow = 1000

// storageBlockSize is the maximum number of characters accumulated per
// language before a document.TextBlock is flushed (spec.md §4.5 step 5;
// MAX_LANGUAGE_BUFFER_BLOCK in the original pipeline).
const storageBlockSize = 200_000

// fallbackLanguage is used when Tika can't classify a window.
const fallbackLanguage = "en"

// IndexingUseCase runs the full-text indexing pipeline over one file's
// extracted text and persists the resulting encrypted blocks.
type IndexingUseCase interface {
	Execute(ctx context.Context, customerCode, schema, fileRef, text string) (int, error)
}

type indexingUseCaseImpl struct {
	logger     *zap.Logger
	cek        *cek.CEK
	keyClient  *climeta.Client
	tikaClient *clitika.Client
	docRepo    domdoc.Repository
}

func NewIndexingUseCase(logger *zap.Logger, cekInstance *cek.CEK, keyClient *climeta.Client, tikaClient *clitika.Client, docRepo domdoc.Repository) IndexingUseCase {
	return &indexingUseCaseImpl{logger: logger, cek: cekInstance, keyClient: keyClient, tikaClient: tikaClient, docRepo: docRepo}
}

// Execute tokenizes text, detects the language of each
// languageDetectionWindow-word slice, buckets words by detected language,
// then for every language accumulates words into storageBlockSize blocks,
// encrypting and persisting each block as it fills. Returns the number of
// blocks written.
func (uc *indexingUseCaseImpl) Execute(ctx context.Context, customerCode, schema, fileRef, text string) (int, error) {
	keyString, err := uc.customerKeyString(ctx, customerCode)
	if err != nil {
		return 0, err
	}

	buckets := uc.bucketByLanguage(ctx, text)

	partNo := 0
	for _, langCode2 := range sortedKeys(buckets) {
		words := buckets[langCode2]
		configName := language.ConfigName(langCode2)

		var block strings.Builder
		flush := func() error {
			if block.Len() == 0 {
				return nil
			}
			if err := uc.writeBlock(ctx, schema, fileRef, partNo, block.String(), configName, langCode2, keyString); err != nil {
				return err
			}
			partNo++
			block.Reset()
			return nil
		}

		for _, w := range words {
			if block.Len()+len(w)+1 > storageBlockSize {
				if err := flush(); err != nil {
					return partNo, err
				}
			}
			if block.Len() > 0 {
				block.WriteByte(' ')
			}
			block.WriteString(w)
		}
		if err := flush(); err != nil {
			return partNo, err
		}
	}

	return partNo, nil
}

func (uc *indexingUseCaseImpl) customerKeyString(ctx context.Context, customerCode string) (string, error) {
	reply, err := uc.keyClient.GetKey(ctx, customerCode)
	if err != nil {
		return "", fmt.Errorf("fulltext: fetch customer key: %w", err)
	}
	unwrapped, err := crypto.OpenFromString(reply.CipheredKey, uc.cek.KeyString())
	if err != nil {
		return "", fmt.Errorf("fulltext: unwrap customer key: %w", err)
	}
	return string(unwrapped), nil
}

func (uc *indexingUseCaseImpl) bucketByLanguage(ctx context.Context, text string) map[string][]string {
	tok := pkgft.NewTokenizer(text)
	buckets := make(map[string][]string)

	for {
		window := tok.NextNWords(languageDetectionWindow)
		if len(window) == 0 {
			break
		}

		detected, err := uc.tikaClient.DetectLanguage(ctx, strings.Join(window, " "))
		if err != nil {
			uc.logger.Warn("tika language detection failed, defaulting", zap.Error(err))
			detected = fallbackLanguage
		}
		mapped := language.MapCode(detected)
		buckets[mapped] = append(buckets[mapped], window...)
	}

	return buckets
}

func (uc *indexingUseCaseImpl) writeBlock(ctx context.Context, schema, fileRef string, partNo int, text, configName, langCode2, keyString string) error {
	tsv, err := uc.docRepo.ComputeTsvector(ctx, configName, text)
	if err != nil {
		return fmt.Errorf("fulltext: compute tsvector: %w", err)
	}

	encryptedTsv, err := pkgft.EncryptTsvector(tsv, keyString)
	if err != nil {
		return fmt.Errorf("fulltext: encrypt tsvector: %w", err)
	}

	encryptedText, err := crypto.SealToString([]byte(text), keyString)
	if err != nil {
		return fmt.Errorf("fulltext: encrypt block text: %w", err)
	}

	block := domdoc.TextBlock{
		FileRef: fileRef,
		PartNo:  partNo,
		DocText: encryptedText,
		Tsv:     encryptedTsv,
		Lang:    langCode2,
	}
	if err := uc.docRepo.InsertDocument(ctx, schema, block); err != nil {
		return fmt.Errorf("fulltext: insert document block: %w", err)
	}
	return nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
