package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnectValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty URL", func(t *testing.T) {
		t.Parallel()

		client, err := Connect(ctx, Config{})
		require.Nil(t, client)
		require.ErrorIs(t, err, ErrEmptyConnectionURL)
	})

	t.Run("unparseable URLs", func(t *testing.T) {
		t.Parallel()

		for _, url := range []string{
			"http://localhost:6379",
			"localhost:6379",
			"redis://localhost:notaport",
			"redis://localhost:6379/notanumber",
		} {
			client, err := Connect(ctx, DefaultConfig(url))
			require.Nil(t, client, "url %s", url)
			require.ErrorIs(t, err, ErrParseURL, "url %s", url)
		}
	})

	t.Run("cancelled context aborts retries", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig("redis://127.0.0.1:1")
		cfg.DialTimeout = 50 * time.Millisecond
		cfg.RetryInterval = time.Hour

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		client, err := Connect(ctx, cfg)
		require.Nil(t, client)
		require.ErrorIs(t, err, ErrOpenConnection)
	})
}

func TestHealthcheckNilClient(t *testing.T) {
	t.Parallel()

	check := Healthcheck(nil)
	require.ErrorIs(t, check(context.Background()), ErrHealthcheck)
}
