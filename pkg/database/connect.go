package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect establishes a PostgreSQL connection pool with retry logic.
// Backoff grows linearly per attempt so simultaneous service restarts
// don't hammer a recovering database.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}
	poolConfig.MaxConns = cfg.MaxOpenConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime

	attempts := max(cfg.RetryAttempts, 1)
	for i := range attempts {
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			if err := wait(ctx, time.Duration(i+1)*cfg.RetryInterval); err != nil {
				return nil, err
			}
			continue
		}

		// A ping catches authentication and permission problems that
		// pool construction alone does not surface.
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			if err := wait(ctx, time.Duration(i+1)*cfg.RetryInterval); err != nil {
				return nil, err
			}
			continue
		}

		return pool, nil
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
