package internal

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/swilenhq/swilen/pkg/config"
	"github.com/swilenhq/swilen/pkg/container"
	"github.com/swilenhq/swilen/pkg/env"
	"github.com/swilenhq/swilen/pkg/logger"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// App orchestrates the application lifecycle: the boot sequence, HTTP
// routing, middleware, and graceful shutdown. Configuration happens via
// options passed to New; Boot runs the bootables exactly once.
type App struct {
	container               *container.Container
	env                     *env.Store
	config                  *config.Config
	router                  chi.Router
	logger                  *slog.Logger
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	healthConfig            *healthConfig
	middlewares             []Middleware
	handlers                []Handler
	staticRoutes            []staticRoute
	providers               []Provider
	envFiles                []string
	configFile              string
	logExtractors           []logger.ContextExtractor
	loggerSet               bool

	bootOnce sync.Once
	bootErr  error
}

// staticRoute is a static file handler mount point.
type staticRoute struct {
	handler http.Handler
	pattern string
}

// New creates an application with the given options. Routes are wired
// immediately; the boot sequence runs on the first call to Boot or Run.
func New(opts ...Option) *App {
	a := &App{
		container: container.New(),
		env:       env.FromProcess(),
		router:    chi.NewRouter(),
		logger:    logger.NewDiscard(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// Container returns the application service container.
func (a *App) Container() *container.Container {
	return a.container
}

// Env returns the environment store.
func (a *App) Env() *env.Store {
	return a.env
}

// Config returns the loaded configuration, nil before Boot or when no
// config file was configured.
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Router returns the underlying chi.Router.
func (a *App) Router() chi.Router {
	return a.router
}

// Boot runs the bootable sequence: environment, configuration,
// exception handler, facades, then user providers. It runs at most
// once; every later call returns the first result.
func (a *App) Boot() error {
	a.bootOnce.Do(func() {
		for _, b := range a.bootables() {
			if err := b.boot(a); err != nil {
				a.bootErr = fmt.Errorf("bootable %s: %w", b.name, err)
				return
			}
		}
	})
	return a.bootErr
}

// Run boots the application and serves HTTP until shutdown.
//
// Example:
//
//	app := swilen.New(
//	    swilen.WithConfigFile("config.yml"),
//	    swilen.WithHandlers(handlers.NewUsers(repo)),
//	)
//	err := app.Run(":8080")
func (a *App) Run(addr string, opts ...RunOption) error {
	if err := a.Boot(); err != nil {
		return err
	}

	cfg := buildRunConfig(opts...)
	if cfg.logger == nil {
		cfg.logger = a.logger
	}

	return runServer(runtimeConfig{
		handler:         a.router,
		address:         addr,
		logger:          cfg.logger,
		shutdownTimeout: cfg.shutdownTimeout,
		startupHooks:    cfg.startupHooks,
		shutdownHooks:   cfg.shutdownHooks,
		baseCtx:         cfg.baseCtx,
	})
}

// ServeHTTP makes the app usable as an http.Handler in tests and when
// embedding into an existing server. Boot must have succeeded first.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// setupRoutes configures the router with middleware and handlers.
func (a *App) setupRoutes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))
	}

	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	for _, sr := range a.staticRoutes {
		a.router.Mount(sr.pattern, sr.handler)
	}

	if a.healthConfig != nil {
		a.router.Get(a.healthConfig.livenessPath, livenessHandler())
		a.router.Get(a.healthConfig.readinessPath, readinessHandler(a.healthConfig.checks))
	}

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc using the
// app's error handler.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a.logger)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError routes handler errors through the configured error handler.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		return
	}
	if a.errorHandler != nil {
		_ = a.errorHandler(c, err)
		return
	}
	// Before boot installs the exception handler, fail closed.
	http.Error(c.Response(), "Internal Server Error", http.StatusInternalServerError)
}

// adaptMiddleware converts a swilen Middleware to chi middleware so it
// can be written against the Context interface while chi drives it.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextFunc := func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			}
			wrapped := mw(nextFunc)
			c := newContext(w, r, a.logger)
			if err := wrapped(c); err != nil {
				a.handleError(c, err)
			}
		})
	}
}

var _ http.Handler = (*App)(nil)

// Blocking context helper used by bootables that dial external services.
func bootContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
