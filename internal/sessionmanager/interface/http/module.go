package http

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/sessionmanager/interface/http/session"
	"github.com/doka-one/doka/internal/transporthttp"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			transporthttp.AsRoute(session.NewOpenSessionHTTPHandler),
			transporthttp.AsRoute(session.NewGetSessionHTTPHandler),
		),
	)
}
