package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/swilenhq/swilen/pkg/config"
	"github.com/swilenhq/swilen/pkg/env"
)

func parse(t *testing.T, yaml string) *config.Config {
	t.Helper()
	c, err := config.Parse([]byte(yaml), nil)
	require.NoError(t, err)
	return c
}

const minimal = `
app:
  env: development
`

func TestAppEnvValidation(t *testing.T) {
	t.Parallel()

	t.Run("missing app.env", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse([]byte("app:\n  debug: true\n"), nil)
		require.ErrorIs(t, err, config.ErrMissingAppEnv)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse(nil, nil)
		require.ErrorIs(t, err, config.ErrMissingAppEnv)
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse([]byte("app:\n  env: staging\n"), nil)
		require.ErrorIs(t, err, config.ErrInvalidAppEnv)
	})

	t.Run("allowed values accepted", func(t *testing.T) {
		t.Parallel()
		for _, e := range []string{"development", "production", "test"} {
			c := parse(t, "app:\n  env: "+e+"\n")
			require.Equal(t, e, c.Environment())
		}
	})
}

func TestDotPathAccess(t *testing.T) {
	t.Parallel()
	c := parse(t, `
app:
  env: test
  debug: true
database:
  pool:
    max: 25
  timeout: 30s
`)

	require.Equal(t, "test", c.String("app.env", ""))
	require.True(t, c.Bool("app.debug", false))
	require.Equal(t, 25, c.Int("database.pool.max", 0))
	require.Equal(t, 30*time.Second, c.Duration("database.timeout", 0))

	require.True(t, c.Has("database.pool"))
	require.False(t, c.Has("database.pool.min"))
	require.Nil(t, c.Get("nope"))

	t.Run("defaults on absent paths", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "fallback", c.String("missing.key", "fallback"))
		require.Equal(t, 42, c.Int("missing.key", 42))
		require.True(t, c.Bool("missing.key", true))
		require.Equal(t, time.Minute, c.Duration("missing.key", time.Minute))
	})

	t.Run("traversal through scalar fails", func(t *testing.T) {
		t.Parallel()
		require.False(t, c.Has("app.env.deeper"))
	})
}

func TestEnvInterpolation(t *testing.T) {
	t.Parallel()

	environ := env.New()
	environ.Set("APP_ENV", "production", false)
	environ.Set("DB_HOST", "db.internal", false)

	c, err := config.Parse([]byte(`
app:
  env: ${APP_ENV}
database:
  url: postgres://${DB_HOST}:5432/app
  replicas:
    - ${DB_HOST}
`), environ)
	require.NoError(t, err)

	require.Equal(t, "production", c.Environment())
	require.True(t, c.IsProduction())
	require.Equal(t, "postgres://db.internal:5432/app", c.String("database.url", ""))

	replicas, ok := c.Get("database.replicas").([]any)
	require.True(t, ok)
	require.Equal(t, "db.internal", replicas[0])
}

func TestTimezone(t *testing.T) {
	t.Parallel()

	t.Run("defaults to UTC", func(t *testing.T) {
		t.Parallel()
		c := parse(t, minimal)
		require.Equal(t, time.UTC, c.Location())
	})

	t.Run("valid timezone resolved", func(t *testing.T) {
		t.Parallel()
		c := parse(t, "app:\n  env: test\n  timezone: Europe/Madrid\n")
		require.Equal(t, "Europe/Madrid", c.Location().String())
	})

	t.Run("invalid timezone rejected", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse([]byte("app:\n  env: test\n  timezone: Mars/Olympus\n"), nil)
		require.ErrorIs(t, err, config.ErrBadTimezone)
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	_, err := config.Parse([]byte("app: [unclosed"), nil)
	require.ErrorIs(t, err, config.ErrParseFile)
}

func TestIsDebug(t *testing.T) {
	t.Parallel()
	require.False(t, parse(t, minimal).IsDebug())
	require.True(t, parse(t, "app:\n  env: development\n  debug: true\n").IsDebug())
	require.True(t, parse(t, "app:\n  env: development\n  debug: \"true\"\n").IsDebug())
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()
	_, err := config.Load("/nonexistent/config.yml", nil)
	require.ErrorIs(t, err, config.ErrOpenFile)
	require.False(t, strings.Contains(err.Error(), "panic"))
}
