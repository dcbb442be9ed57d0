package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection parameters.
// Fields carry env tags for population with caarlos0/env-style loaders.
type Config struct {
	// Connection URL (redis:// or rediss:// for TLS).
	ConnectionString string `env:"REDIS_CONN_URL,required"`

	// Pool sizing.
	PoolSize     int `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int `env:"REDIS_MIN_IDLE_CONNS" envDefault:"5"`

	// Connection refresh settings.
	MaxConnIdleTime time.Duration `env:"REDIS_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime time.Duration `env:"REDIS_MAX_CONN_LIFETIME" envDefault:"30m"`

	// Operation timeouts.
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`

	// Startup retry configuration for transient network issues.
	RetryAttempts int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
}

// DefaultConfig returns a Config for the given URL with default pool
// and retry settings.
func DefaultConfig(url string) Config {
	return Config{
		ConnectionString: url,
		PoolSize:         10,
		MinIdleConns:     5,
		MaxConnIdleTime:  10 * time.Minute,
		MaxConnLifetime:  30 * time.Minute,
		DialTimeout:      5 * time.Second,
		ReadTimeout:      3 * time.Second,
		WriteTimeout:     3 * time.Second,
		RetryAttempts:    3,
		RetryInterval:    5 * time.Second,
	}
}

// Connect opens a Redis client and verifies connectivity with a ping.
// Failed attempts back off linearly, mirroring pkg/database.Connect.
func Connect(ctx context.Context, cfg Config) (redis.UniversalClient, error) {
	if cfg.ConnectionString == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrParseURL, err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.ConnMaxIdleTime = cfg.MaxConnIdleTime
	opts.ConnMaxLifetime = cfg.MaxConnLifetime
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	attempts := max(cfg.RetryAttempts, 1)
	for i := range attempts {
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		if err := wait(ctx, time.Duration(i+1)*cfg.RetryInterval); err != nil {
			return nil, err
		}
	}

	return nil, ErrOpenConnection
}

func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return errors.Join(ErrOpenConnection, ctx.Err())
	case <-time.After(d):
		return nil
	}
}
