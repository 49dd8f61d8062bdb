package cek

import (
	"context"

	"go.uber.org/fx"

	"github.com/doka-one/doka/config"
)

// Module provides the process-wide *CEK, loaded from
// config.Configuration.Security.CEKFilePath.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(func(cfg *config.Configuration) (*CEK, error) {
			return Load(cfg.Security.CEKFilePath)
		}),
		fx.Invoke(func(lc fx.Lifecycle, c *CEK) {
			lc.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					return c.Wipe()
				},
			})
		}),
	)
}
