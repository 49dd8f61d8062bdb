package service

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/keymanager/service/customerkey"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(customerkey.NewService),
	)
}
