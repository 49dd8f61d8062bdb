// internal/transporthttp/middleware/middleware.go
package middleware

import (
	"net/http"

	"go.uber.org/zap"

	ipcb "github.com/doka-one/doka/pkg/security/ipcountryblocker"
)

type Middleware interface {
	Attach(fn http.HandlerFunc) http.HandlerFunc
	Shutdown()
}

type middleware struct {
	Logger           *zap.Logger
	IPCountryBlocker ipcb.Provider // pkg.Module() provides it to every service; nil skips the country check.
}

func NewMiddleware(
	loggerp *zap.Logger,
	ipcountryblocker ipcb.Provider,
) Middleware {
	loggerp = loggerp.With(zap.String("module", "transporthttp"))
	return &middleware{
		Logger:           loggerp,
		IPCountryBlocker: ipcountryblocker,
	}
}

// Attach function attaches to HTTP router to apply for every API call.
func (mid *middleware) Attach(fn http.HandlerFunc) http.HandlerFunc {
	// Attach our middleware handlers here. Please note that all our middleware
	// will start from the bottom and proceed upwards.
	// Ex: `CORSMiddleware` will be executed first and
	//     `RequestIDMiddleware` will be executed last.
	fn = mid.RequestIDMiddleware(fn)
	fn = mid.EnforceRestrictCountryIPsMiddleware(fn)
	fn = mid.URLProcessorMiddleware(fn)
	fn = mid.RateLimitMiddleware(fn)
	fn = mid.CORSMiddleware(fn)

	return func(w http.ResponseWriter, r *http.Request) {
		// Flow to the next middleware.
		fn(w, r)
	}
}

// Shutdown shuts down the middleware.
func (mid *middleware) Shutdown() {
	mid.Logger.Info("gracefully shutting down HTTP middleware")
	if mid.IPCountryBlocker != nil {
		mid.IPCountryBlocker.Close()
	}
}
