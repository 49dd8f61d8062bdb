package postgres

import (
	"context"

	"go.uber.org/fx"

	"github.com/doka-one/doka/config"
)

// Module opens the three named connection pools every service needs a
// subset of (admin_pool for dokaadmin, content_pool for cs_<code> schemas,
// file_pool for fs_<code> schemas), tagged so fx can hand each consumer the
// right one despite them all satisfying the same Pool interface.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				newAdminPool,
				fx.ResultTags(`name:"admin_pool"`),
			),
			fx.Annotate(
				newContentPool,
				fx.ResultTags(`name:"content_pool"`),
			),
			fx.Annotate(
				newFilePool,
				fx.ResultTags(`name:"file_pool"`),
			),
		),
	)
}

func newAdminPool(lc fx.Lifecycle, cfg *config.Configuration) (Pool, error) {
	return openPooled(lc, cfg.AdminDB)
}

func newContentPool(lc fx.Lifecycle, cfg *config.Configuration) (Pool, error) {
	return openPooled(lc, cfg.ContentDB)
}

func newFilePool(lc fx.Lifecycle, cfg *config.Configuration) (Pool, error) {
	return openPooled(lc, cfg.FileDB)
}

func openPooled(lc fx.Lifecycle, dbCfg config.DatabaseConfig) (Pool, error) {
	pool, err := Open(context.Background(), dbCfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}
