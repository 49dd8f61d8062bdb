package transporthttp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doka-one/doka/config"
	"github.com/doka-one/doka/internal/transporthttp/middleware"
)

// Module wires the shared mux (with every fx-collected route attached),
// the healthcheck route every service exposes, and the *http.Server
// lifecycle: started on fx.Lifecycle OnStart, drained on OnStop.
func Module() fx.Option {
	return fx.Options(
		middleware.Module(),
		fx.Provide(
			AsRoute(NewGetHealthCheckHTTPHandler),
		),
		fx.Provide(NewServeMux),
		fx.Invoke(registerHTTPServer),
	)
}

func registerHTTPServer(lc fx.Lifecycle, logger *zap.Logger, cfg *config.Configuration, mux *http.ServeMux, mw middleware.Middleware) {
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.App.IP, cfg.App.Port),
		Handler: mux,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("http server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			logger.Info("http server shutting down")
			mw.Shutdown()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
