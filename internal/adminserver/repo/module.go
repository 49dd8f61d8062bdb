package repo

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/adminserver/repo/appuser"
	"github.com/doka-one/doka/internal/adminserver/repo/customer"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				customer.NewRepository,
				fx.ParamTags(``, `name:"admin_pool"`),
			),
			fx.Annotate(
				appuser.NewRepository,
				fx.ParamTags(``, `name:"admin_pool"`),
			),
		),
	)
}
