package internal

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/swilenhq/swilen/pkg/logger"
)

// Option configures the application.
type Option func(*App)

// WithEnvFiles queues .env-style files for the environment bootable.
// Files load in order; process environment entries win unless a file
// entry carries the replaceable marker.
//
// Example:
//
//	swilen.New(
//	    swilen.WithEnvFiles(".env", ".env.local"),
//	)
func WithEnvFiles(paths ...string) Option {
	return func(a *App) {
		a.envFiles = append(a.envFiles, paths...)
	}
}

// WithConfigFile sets the YAML configuration file loaded during boot.
// The file must define app.env as development, production, or test.
func WithConfigFile(path string) Option {
	return func(a *App) {
		a.configFile = path
	}
}

// WithProviders registers bootstrap steps that run after the framework
// bootables, in registration order. A failing provider aborts boot.
//
// Example:
//
//	swilen.WithProviders(func(app *swilen.App) error {
//	    return app.Container().Singleton("mailer", newMailer)
//	})
func WithProviders(p ...Provider) Option {
	return func(a *App) {
		a.providers = append(a.providers, p...)
	}
}

// WithMiddleware adds global middleware, applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithStaticFiles mounts a static file handler at the given pattern.
// Directory listings are disabled.
//
// Example:
//
//	//go:embed public
//	var assets embed.FS
//
//	swilen.New(
//	    swilen.WithStaticFiles("/static/", assets, "public"),
//	)
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return func(a *App) {
		subFS, err := fs.Sub(fsys, subDir)
		if err != nil {
			panic(err)
		}

		fileServer := http.FileServerFS(subFS)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/") {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Cache-Control", "public, max-age=3600")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			fileServer.ServeHTTP(w, r)
		})

		a.staticRoutes = append(a.staticRoutes, staticRoute{handler, pattern})
	}
}

// WithErrorHandler replaces the default exception handler.
//
// Example:
//
//	swilen.WithErrorHandler(func(c swilen.Context, err error) error {
//	    return c.JSON(http.StatusInternalServerError, map[string]string{
//	        "error": err.Error(),
//	    })
//	})
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables health check endpoints.
// Liveness always returns OK while the process runs; readiness fans out
// the configured checks in parallel.
//
// Example:
//
//	swilen.WithHealthChecks(
//	    swilen.WithReadinessCheck("db", database.Healthcheck(pool)),
//	    swilen.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
			checks:        make(healthChecks),
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogExtractors registers context extractors for the default logger
// built during boot (e.g. the request ID extractor).
func WithLogExtractors(extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logExtractors = append(a.logExtractors, extractors...)
	}
}

// WithLogger sets a fully custom logger, skipping the config-derived
// default.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
			a.loggerSet = true
		}
	}
}
