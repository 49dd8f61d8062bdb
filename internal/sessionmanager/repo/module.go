package repo

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/sessionmanager/repo/session"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				session.NewRepository,
				fx.ParamTags(``, `name:"admin_pool"`),
			),
		),
	)
}
