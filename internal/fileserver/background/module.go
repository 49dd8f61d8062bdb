package background

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doka-one/doka/internal/fileserver/lockset"
	"github.com/doka-one/doka/internal/fileserver/repo/tenantschema"
)

func newProcessor(logger *zap.Logger, tenants tenantschema.Repository, locker *lockset.Set, fulltext *FulltextPass, preview *PreviewPass) *Processor {
	return NewProcessor(logger, tenants, locker, fulltext, preview)
}

// Module provides the Processor and runs it as a background goroutine for
// the lifetime of the fx.App: OnStart launches Run and OnStop cancels its
// context.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(func() *lockset.Set { return lockset.New() }),
		fx.Provide(NewFulltextPass),
		fx.Provide(NewPreviewPass),
		fx.Provide(newProcessor),
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger, p *Processor) {
			runCtx, cancel := context.WithCancel(context.Background())
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go p.Run(runCtx)
					return nil
				},
				OnStop: func(context.Context) error {
					cancel()
					return nil
				},
			})
		}),
	)
}
