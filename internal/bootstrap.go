package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/swilenhq/swilen/pkg/cache"
	"github.com/swilenhq/swilen/pkg/config"
	"github.com/swilenhq/swilen/pkg/container"
	"github.com/swilenhq/swilen/pkg/database"
	"github.com/swilenhq/swilen/pkg/logger"
	"github.com/swilenhq/swilen/pkg/redis"
)

// Boot failure sentinels, one per bootable step.
var (
	ErrBootEnvironment = errors.New("boot: environment load failed")
	ErrBootConfig      = errors.New("boot: configuration load failed")
	ErrBootFacades     = errors.New("boot: facade registration failed")
	ErrBootProvider    = errors.New("boot: provider failed")
)

// Container binding names for framework services.
const (
	BindingApp    = "app"
	BindingEnv    = "env"
	BindingConfig = "config"
	BindingLogger = "logger"
	BindingCache  = "cache"
	BindingDB     = "db"
)

// bootable is one ordered bootstrap step.
type bootable struct {
	name string
	boot func(*App) error
}

// bootables returns the fixed boot sequence. Order matters: later steps
// read state the earlier ones produced.
func (a *App) bootables() []bootable {
	return []bootable{
		{"environment", (*App).bootEnvironment},
		{"configuration", (*App).bootConfiguration},
		{"exception-handler", (*App).bootExceptionHandler},
		{"facades", (*App).bootFacades},
		{"providers", (*App).bootProviders},
	}
}

// bootEnvironment loads configured env files into the store. Process
// environment entries stay authoritative unless a file entry carries
// the replaceable marker.
func (a *App) bootEnvironment() error {
	for _, path := range a.envFiles {
		if err := a.env.LoadFile(path); err != nil {
			return errors.Join(ErrBootEnvironment, err)
		}
	}
	return nil
}

// bootConfiguration parses the YAML config file, then derives the
// default logger from it unless a custom logger was supplied.
func (a *App) bootConfiguration() error {
	if a.configFile != "" {
		cfg, err := config.Load(a.configFile, a.env)
		if err != nil {
			return errors.Join(ErrBootConfig, err)
		}
		a.config = cfg
	}

	if !a.loggerSet {
		a.logger = a.buildLogger()
	}
	return nil
}

// buildLogger assembles the default logger: debug level and text output
// outside production, Sentry forwarding when a DSN is present.
func (a *App) buildLogger() *slog.Logger {
	level := slog.LevelInfo
	var opts []logger.Option

	if a.config != nil {
		if a.config.IsDebug() {
			level = slog.LevelDebug
		}
		if !a.config.IsProduction() {
			opts = append(opts, logger.WithTextFormat())
		}
	}
	opts = append(opts, logger.WithLevel(level), logger.WithExtractors(a.logExtractors...))

	if dsn := a.env.Get("SENTRY_DSN"); dsn != "" {
		environment := "production"
		if a.config != nil {
			environment = a.config.Environment()
		}
		return logger.NewWithSentry(logger.SentryConfig{
			DSN:         dsn,
			Environment: environment,
			MinLevel:    slog.LevelWarn,
		}, opts...)
	}

	return logger.New(opts...)
}

// bootExceptionHandler installs the default error handler unless a
// custom one was configured.
func (a *App) bootExceptionHandler() error {
	if a.errorHandler == nil {
		a.errorHandler = a.exceptionHandler()
	}
	return nil
}

// bootFacades registers framework services into the container and
// connects the package facades to them.
func (a *App) bootFacades() error {
	a.container.Instance(BindingApp, a)
	a.container.Instance(BindingEnv, a.env)
	a.container.Instance(BindingLogger, a.logger)

	if a.config != nil {
		a.container.Instance(BindingConfig, a.config)
		ConfigFacade.Connect(a.container, BindingConfig)
	}

	if err := a.container.Singleton(BindingCache, a.cacheFactory); err != nil {
		return errors.Join(ErrBootFacades, err)
	}

	if a.config != nil && a.config.Has("database.url") {
		if err := a.container.Singleton(BindingDB, a.databaseFactory); err != nil {
			return errors.Join(ErrBootFacades, err)
		}
		DBFacade.Connect(a.container, BindingDB)
	}

	EnvFacade.Connect(a.container, BindingEnv)
	LogFacade.Connect(a.container, BindingLogger)
	CacheFacade.Connect(a.container, BindingCache)
	return nil
}

// bootProviders runs user-registered providers in registration order.
func (a *App) bootProviders() error {
	for _, p := range a.providers {
		if err := p(a); err != nil {
			return errors.Join(ErrBootProvider, err)
		}
	}
	return nil
}

// cacheFactory builds the framework cache service. A configured Redis
// URL selects the Redis store, otherwise an in-memory LRU is used.
func (a *App) cacheFactory(_ *container.Container) (any, error) {
	if a.config != nil {
		if url := a.config.String("cache.redis_url", ""); url != "" {
			ctx, cancel := bootContext()
			defer cancel()

			client, err := redis.Connect(ctx, redis.DefaultConfig(url))
			if err != nil {
				return nil, err
			}
			prefix := a.config.String("cache.prefix", "swilen")
			return cache.NewRedis[any](client, nil, cache.WithPrefix(prefix)), nil
		}
	}
	return cache.NewMemory[any](), nil
}

// databaseFactory opens the pgx pool and wraps it in a reconnecting
// Connection. Resolved lazily on first use of the db binding.
func (a *App) databaseFactory(_ *container.Container) (any, error) {
	cfg := database.Config{
		ConnectionString:  a.config.String("database.url", ""),
		MigrationsTable:   a.config.String("database.migrations_table", "schema_migrations"),
		HealthCheckPeriod: time.Minute,
		MaxConnIdleTime:   10 * time.Minute,
		MaxConnLifetime:   30 * time.Minute,
		RetryAttempts:     a.config.Int("database.retry_attempts", 3),
		RetryInterval:     a.config.Duration("database.retry_interval", 5*time.Second),
		MaxOpenConns:      int32(a.config.Int("database.max_open_conns", 10)),
		MinConns:          int32(a.config.Int("database.min_conns", 5)),
		ReconnectAttempts: a.config.Int("database.reconnect_attempts", 3),
	}

	ctx, cancel := bootContext()
	defer cancel()

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	return database.NewConnection(pool,
		database.WithReconnectAttempts(cfg.ReconnectAttempts),
		database.WithLogger(a.logger),
	), nil
}
