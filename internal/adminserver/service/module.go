package service

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/adminserver/service/customer"
	"github.com/doka-one/doka/internal/adminserver/service/login"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			customer.NewCreateCustomerService,
			login.NewLoginService,
		),
	)
}
