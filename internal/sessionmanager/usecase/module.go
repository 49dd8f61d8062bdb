package usecase

import (
	"time"

	"go.uber.org/fx"

	"github.com/doka-one/doka/config"
	"github.com/doka-one/doka/internal/sessionmanager/usecase/session"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(idleTimeoutFunc, fx.ResultTags(`name:"session_idle_timeout"`)),
			fx.Annotate(absoluteTimeoutFunc, fx.ResultTags(`name:"session_absolute_timeout"`)),
		),
		fx.Provide(
			fx.Annotate(
				session.NewGetSessionUseCase,
				fx.ParamTags(``, ``, `name:"session_idle_timeout"`, `name:"session_absolute_timeout"`),
			),
		),
		fx.Provide(session.NewOpenSessionUseCase),
	)
}

func idleTimeoutFunc(cfg *config.Configuration) time.Duration {
	return cfg.Security.SessionIdleTimeout
}

func absoluteTimeoutFunc(cfg *config.Configuration) time.Duration {
	return cfg.Security.SessionAbsoluteTimeout
}
