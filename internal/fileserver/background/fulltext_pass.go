package background

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	clidoc "github.com/doka-one/doka/internal/fileserver/client/documentserver"
	climeta "github.com/doka-one/doka/internal/fileserver/client/keymanager"
	clitika "github.com/doka-one/doka/internal/fileserver/client/tika"
	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
	"github.com/doka-one/doka/internal/fileserver/partstore"
	"github.com/doka-one/doka/pkg/security/cek"
	"github.com/doka-one/doka/pkg/security/crypto"
)

// FulltextPass is spec.md §4.6's "read all parts in order, decrypt, POST to
// Tika, POST extracted text to DS.fulltext_indexing, set
// is_fulltext_parsed=true" pass.
type FulltextPass struct {
	logger     *zap.Logger
	cek        *cek.CEK
	keyClient  *climeta.Client
	tikaClient *clitika.Client
	docClient  *clidoc.Client
	frRepo     domfr.Repository
	parts      partstore.PartStore
}

func NewFulltextPass(
	logger *zap.Logger,
	cekInstance *cek.CEK,
	keyClient *climeta.Client,
	tikaClient *clitika.Client,
	docClient *clidoc.Client,
	frRepo domfr.Repository,
	parts partstore.PartStore,
) *FulltextPass {
	return &FulltextPass{logger: logger, cek: cekInstance, keyClient: keyClient, tikaClient: tikaClient, docClient: docClient, frRepo: frRepo, parts: parts}
}

func (p *FulltextPass) Name() string { return "fulltext" }

func (p *FulltextPass) PickNext(ctx context.Context, schema string) (*domfr.FileReference, error) {
	return p.frRepo.PickNextUnindexed(ctx, schema)
}

func (p *FulltextPass) Process(ctx context.Context, customerCode, schema string, fr *domfr.FileReference) error {
	keyString, err := p.customerKeyString(ctx, customerCode)
	if err != nil {
		return err
	}

	plaintext, err := p.reassemble(ctx, schema, fr, keyString)
	if err != nil {
		return err
	}

	text, err := p.tikaClient.ExtractText(ctx, plaintext)
	if err != nil {
		return fmt.Errorf("fulltext pass: tika extraction: %w", err)
	}

	if _, err := p.docClient.Index(ctx, customerCode, fr.FileRef, text); err != nil {
		return fmt.Errorf("fulltext pass: index on document server: %w", err)
	}

	if err := p.frRepo.SetFulltextParsed(ctx, schema, fr.FileRef, true); err != nil {
		return fmt.Errorf("fulltext pass: mark parsed: %w", err)
	}
	return nil
}

func (p *FulltextPass) reassemble(ctx context.Context, schema string, fr *domfr.FileReference, keyString string) ([]byte, error) {
	if fr.TotalPart == nil {
		return nil, fmt.Errorf("fulltext pass: file_reference %s has no total_part", fr.FileRef)
	}

	var plaintext []byte
	for partNumber := 0; partNumber < int(*fr.TotalPart); partNumber++ {
		ciphertext, err := p.parts.Get(ctx, schema, fr.ID, partNumber)
		if err != nil {
			return nil, fmt.Errorf("fulltext pass: read part %d: %w", partNumber, err)
		}
		decrypted, err := crypto.Open(ciphertext, keyString)
		if err != nil {
			return nil, fmt.Errorf("fulltext pass: decrypt part %d: %w", partNumber, err)
		}
		plaintext = append(plaintext, decrypted...)
	}
	return plaintext, nil
}

func (p *FulltextPass) customerKeyString(ctx context.Context, customerCode string) (string, error) {
	reply, err := p.keyClient.GetKey(ctx, customerCode)
	if err != nil {
		return "", fmt.Errorf("fulltext pass: fetch customer key: %w", err)
	}
	unwrapped, err := crypto.OpenFromString(reply.CipheredKey, p.cek.KeyString())
	if err != nil {
		return "", fmt.Errorf("fulltext pass: unwrap customer key: %w", err)
	}
	return string(unwrapped), nil
}
