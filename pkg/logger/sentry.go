package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration settings.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which levels are forwarded as Sentry logs.
	// Error records always create Sentry issues.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes locally and forwards records
// to Sentry. An empty DSN falls back to local-only logging, and so does a
// failed SDK init, so the call never prevents the application from booting.
func NewWithSentry(cfg SentryConfig, opts ...Option) *slog.Logger {
	o := buildOptions(opts)
	local := o.handler()

	if cfg.DSN == "" {
		return slog.New(Decorate(local, o.extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("sentry init failed", slog.String("error", err.Error()))
		return slog.New(Decorate(local, o.extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(Decorate(newMultiHandler(local, sentryHandler), o.extractors...))
}
