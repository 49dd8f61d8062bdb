// Package transporthttp is the shared HTTP server ambient stack every Doka
// service daemon composes: a plain net/http.ServeMux, a Route registration
// contract, and a common middleware chain. Each service registers its own
// handlers (KM's /key, SM's /session, AS's /customer, DS's /item, FS's
// /upload) by implementing Route and letting fx collect them into a group.
package transporthttp

import (
	"net/http"

	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/transporthttp/middleware"
)

// Route is implemented by every HTTP handler a service wants attached to the
// shared mux. Pattern follows net/http 1.22+ method+path pattern syntax
// (e.g. "POST /key", "GET /session/{sid}").
type Route interface {
	Pattern() string
	http.Handler
}

// NewServeMux registers every route behind the shared middleware chain.
func NewServeMux(routes []Route, mw middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()
	for _, route := range routes {
		wrapped := http.HandlerFunc(mw.Attach(route.ServeHTTP))
		mux.Handle(route.Pattern(), wrapped)
	}
	return mux
}

// AsRoute annotates a handler constructor so fx collects it into the
// "routes" group NewServeMux consumes. Every service's interface/http
// module.go wraps its handler constructors with this.
func AsRoute(constructor any) any {
	return fx.Annotate(
		constructor,
		fx.As(new(Route)),
		fx.ResultTags(`group:"routes"`),
	)
}
