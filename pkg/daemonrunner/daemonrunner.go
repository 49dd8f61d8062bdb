// Package daemonrunner is the fx.App bootstrap shared by every Doka service
// binary (Key Manager, Session Manager, Admin Server, Document Server, File
// Server): signal-aware start, zap-backed fx logging, and a bounded
// graceful-shutdown window.
package daemonrunner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/doka-one/doka/config"
)

// Run builds and starts an fx.App composing serviceName's module on top of
// the shared config/logging providers, blocks until an OS signal arrives,
// then drains it within the shutdown window.
func Run(serviceName string, serviceModule fx.Option) {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer cancel()

	app := fx.New(
		fx.StartTimeout(5*time.Minute),
		fx.StopTimeout(2*time.Minute),

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		fx.Provide(config.NewProvider),
		fx.Provide(newLogger(serviceName)),

		serviceModule,

		fx.Invoke(registerLifecycleHooks(serviceName)),
	)

	if err := app.Start(ctx); err != nil {
		os.Exit(1)
	}

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := app.Stop(shutdownCtx); err != nil {
		os.Exit(1)
	}
}

func newLogger(serviceName string) func(cfg *config.Configuration) (*zap.Logger, error) {
	return func(cfg *config.Configuration) (*zap.Logger, error) {
		var logger *zap.Logger
		var err error

		if cfg.App.Environment == "production" {
			zapCfg := zap.NewProductionConfig()
			if level := cfg.Logging.Level; level != "" {
				var atomicLevel zap.AtomicLevel
				if perr := atomicLevel.UnmarshalText([]byte(level)); perr == nil {
					zapCfg.Level = atomicLevel
				}
			}
			if cfg.Logging.Format == "console" {
				zapCfg.Encoding = "console"
				zapCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
			}
			logger, err = zapCfg.Build(zap.AddCaller())
		} else {
			logger, err = zap.NewDevelopment()
		}
		if err != nil {
			return nil, err
		}

		return logger.With(zap.String("service", serviceName)), nil
	}
}

func registerLifecycleHooks(serviceName string) func(lc fx.Lifecycle, logger *zap.Logger, cfg *config.Configuration) {
	return func(lc fx.Lifecycle, logger *zap.Logger, cfg *config.Configuration) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				logger.Info(serviceName+" starting",
					zap.String("port", cfg.App.Port),
					zap.String("environment", cfg.App.Environment),
				)
				return nil
			},
			OnStop: func(ctx context.Context) error {
				logger.Info(serviceName + " shutting down gracefully")
				return nil
			},
		})
	}
}
