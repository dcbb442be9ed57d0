package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Healthcheck returns a readiness check for the client.
func Healthcheck(client redis.UniversalClient) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrHealthcheck
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheck, err)
		}
		return nil
	}
}
