package http

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/adminserver/interface/http/customer"
	"github.com/doka-one/doka/internal/adminserver/interface/http/login"
	"github.com/doka-one/doka/internal/transporthttp"
)

// Module registers the admin server's HTTP handlers as routes in the
// shared "routes" fx group.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			transporthttp.AsRoute(customer.NewCreateCustomerHTTPHandler),
			transporthttp.AsRoute(login.NewLoginHTTPHandler),
		),
	)
}
