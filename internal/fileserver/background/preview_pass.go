package background

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
)

// PreviewPass is spec.md §4.6's preview-flag pass. Preview production
// itself (populating cs_<tenant>.preview) is explicitly out of scope; this
// pass only owns the is_preview_generated contract and the per-file_ref
// serialization with FulltextPass.
type PreviewPass struct {
	logger *zap.Logger
	frRepo domfr.Repository
}

func NewPreviewPass(logger *zap.Logger, frRepo domfr.Repository) *PreviewPass {
	return &PreviewPass{logger: logger, frRepo: frRepo}
}

func (p *PreviewPass) Name() string { return "preview" }

func (p *PreviewPass) PickNext(ctx context.Context, schema string) (*domfr.FileReference, error) {
	return p.frRepo.PickNextUnpreviewed(ctx, schema)
}

func (p *PreviewPass) Process(ctx context.Context, customerCode, schema string, fr *domfr.FileReference) error {
	if err := p.frRepo.SetPreviewGenerated(ctx, schema, fr.FileRef, true); err != nil {
		return fmt.Errorf("preview pass: mark generated: %w", err)
	}
	return nil
}
