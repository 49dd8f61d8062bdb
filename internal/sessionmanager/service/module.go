package service

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/sessionmanager/service/session"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(session.NewService),
	)
}
