package swilen

import (
	"context"
	"io/fs"
	"log/slog"
	"time"

	"github.com/swilenhq/swilen/internal"
	"github.com/swilenhq/swilen/pkg/logger"
)

// Core types, re-exported from internal.
type (
	// App orchestrates the application lifecycle: boot sequence, HTTP
	// routing, middleware, and graceful shutdown.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Provider is a user bootstrap step run after the framework boots.
	Provider = internal.Provider

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// ResponseWriter wraps http.ResponseWriter with status and size
	// tracking plus before-write hooks.
	ResponseWriter = internal.ResponseWriter

	// MessageBag collects validation failure messages per field.
	MessageBag = internal.MessageBag

	// HTTPError carries a status code, user-facing message, and optional
	// metadata through the error handler.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// ContextExtractor pulls a slog attribute from a context.
	ContextExtractor = logger.ContextExtractor

	// Extractor tries multiple value sources in order.
	Extractor = internal.Extractor

	// ExtractorSource extracts a value from the request context.
	ExtractorSource = internal.ExtractorSource
)

// New creates an application with the given options. The boot sequence
// runs on the first call to Boot or Run.
//
// Example:
//
//	app := swilen.New(
//	    swilen.WithEnvFiles(".env"),
//	    swilen.WithConfigFile("config.yml"),
//	    swilen.WithMiddleware(middlewares.RequestID()),
//	    swilen.WithHandlers(handlers.NewUsers(repo)),
//	)
//	err := app.Run(":8080")
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// Facades give static access to framework services after boot.
// Each facade resolves through the container of the most recently
// booted App.
var (
	// Env is the environment store facade.
	Env = &internal.EnvFacade

	// Config is the configuration facade.
	Config = &internal.ConfigFacade

	// Log is the logger facade.
	Log = &internal.LogFacade

	// CacheStore is the cache facade.
	CacheStore = &internal.CacheFacade

	// DB is the database connection facade.
	DB = &internal.DBFacade
)

// App options.

// WithEnvFiles queues .env-style files for the environment bootable.
func WithEnvFiles(paths ...string) Option {
	return internal.WithEnvFiles(paths...)
}

// WithConfigFile sets the YAML configuration file loaded during boot.
func WithConfigFile(path string) Option {
	return internal.WithConfigFile(path)
}

// WithProviders registers bootstrap steps run after the framework
// bootables, in registration order.
func WithProviders(p ...Provider) Option {
	return internal.WithProviders(p...)
}

// WithMiddleware adds global middleware, applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithStaticFiles mounts a static file handler at the given pattern.
// Directory listings are disabled.
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

// WithErrorHandler replaces the default exception handler.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables the liveness and readiness endpoints.
//
// Example:
//
//	swilen.WithHealthChecks(
//	    swilen.WithReadinessCheck("db", database.Healthcheck(pool)),
//	    swilen.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogExtractors registers context extractors for the logger built
// during boot.
func WithLogExtractors(extractors ...ContextExtractor) Option {
	return internal.WithLogExtractors(extractors...)
}

// WithLogger sets a fully custom logger, skipping the config-derived
// default.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// Health check options.

// WithLivenessPath overrides the liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath overrides the readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessCheck registers a named readiness check. Checks run in
// parallel on every readiness probe.
func WithReadinessCheck(name string, fn internal.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options.

// RunLogger overrides the logger used by the server runtime.
func RunLogger(l *slog.Logger) RunOption {
	return internal.RunLogger(l)
}

// ShutdownTimeout sets the graceful shutdown budget.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function to run before the server accepts
// connections. A failing hook aborts startup.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function to run during shutdown.
//
// Example:
//
//	swilen.ShutdownHook(database.Shutdown(pool))
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Context helpers.

// ContextValue retrieves a typed value stored with c.Set.
//
// Example:
//
//	type tenantKey struct{}
//	tenant := swilen.ContextValue[string](c, tenantKey{})
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}

// Param retrieves a typed URL parameter.
func Param[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string) T {
	return internal.Param[T](c, name)
}

// Query retrieves a typed query parameter.
func Query[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string) T {
	return internal.Query[T](c, name)
}

// QueryDefault retrieves a typed query parameter with a fallback.
func QueryDefault[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string, defaultValue T) T {
	return internal.QueryDefault[T](c, name, defaultValue)
}

// Value extractors.

// NewExtractor creates an Extractor over the given sources.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

// FromHeader reads from a request header.
func FromHeader(name string) ExtractorSource { return internal.FromHeader(name) }

// FromQuery reads from a query parameter.
func FromQuery(name string) ExtractorSource { return internal.FromQuery(name) }

// FromCookie reads from a request cookie.
func FromCookie(name string) ExtractorSource { return internal.FromCookie(name) }

// FromParam reads from a URL parameter.
func FromParam(name string) ExtractorSource { return internal.FromParam(name) }

// FromForm reads from a form field.
func FromForm(name string) ExtractorSource { return internal.FromForm(name) }

// FromBearerToken reads a Bearer token from the Authorization header.
func FromBearerToken() ExtractorSource { return internal.FromBearerToken() }
