// Package logger builds the zap.Logger every Doka service daemon uses,
// selecting a JSON production encoder or a human-readable development
// console encoder from config.Configuration.Logging.
package logger

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/doka-one/doka/config"
)

// New builds a logger for serviceName, configured from cfg.Logging.
func New(cfg *config.Configuration, serviceName string) (*zap.Logger, error) {
	var core zapcore.Core

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level := parseLevel(cfg.Logging.Level)

	if cfg.Logging.Format == "json" {
		core = zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level)
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Logging.EnableStacktrace {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	l := zap.New(core, opts...)
	l = l.With(
		zap.String("service", serviceName),
		zap.String("version", cfg.App.Version),
	)
	return l, nil
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Module provides the *zap.Logger for serviceName's fx.App.
func Module(serviceName string) fx.Option {
	return fx.Provide(func(cfg *config.Configuration) (*zap.Logger, error) {
		return New(cfg, serviceName)
	})
}
