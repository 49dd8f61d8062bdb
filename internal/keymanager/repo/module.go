package repo

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/keymanager/repo/customerkey"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				customerkey.NewRepository,
				fx.ParamTags(``, `name:"admin_pool"`),
			),
		),
	)
}
