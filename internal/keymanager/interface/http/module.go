package http

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/keymanager/interface/http/customerkey"
	"github.com/doka-one/doka/internal/transporthttp"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			transporthttp.AsRoute(customerkey.NewAddKeyHTTPHandler),
			transporthttp.AsRoute(customerkey.NewGetKeyHTTPHandler),
			transporthttp.AsRoute(customerkey.NewListKeysHTTPHandler),
		),
	)
}
