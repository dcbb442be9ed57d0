package internal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Boot connects the package facades, so app tests stay sequential.

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const testConfigYAML = `
app:
  env: test
  debug: true
`

type routesFunc func(Router)

func (f routesFunc) Routes(r Router) { f(r) }

func TestAppBoot(t *testing.T) {
	t.Run("registers framework bindings", func(t *testing.T) {
		app := New(WithConfigFile(writeTempFile(t, "config.yml", testConfigYAML)))
		require.NoError(t, app.Boot())

		c := app.Container()
		for _, name := range []string{BindingApp, BindingEnv, BindingConfig, BindingLogger, BindingCache} {
			require.True(t, c.Has(name), "binding %q missing", name)
		}
		require.False(t, c.Has(BindingDB))

		require.NotNil(t, app.Config())
		require.Equal(t, "test", app.Config().Environment())
		require.Same(t, app.Env(), EnvFacade.MustUse())
	})

	t.Run("loads env files in order", func(t *testing.T) {
		first := writeTempFile(t, "a.env", "APP_NAME=swilen\nSHARED=first\n")
		second := writeTempFile(t, "b.env", "SHARED=second\n")

		app := New(WithEnvFiles(first, second))
		require.NoError(t, app.Boot())

		require.Equal(t, "swilen", app.Env().Get("APP_NAME"))
		require.Equal(t, "first", app.Env().Get("SHARED"))
	})

	t.Run("missing env file aborts boot", func(t *testing.T) {
		app := New(WithEnvFiles("/does/not/exist.env"))
		err := app.Boot()
		require.ErrorIs(t, err, ErrBootEnvironment)
	})

	t.Run("invalid config aborts boot", func(t *testing.T) {
		bad := writeTempFile(t, "config.yml", "app:\n  env: staging\n")
		app := New(WithConfigFile(bad))
		err := app.Boot()
		require.ErrorIs(t, err, ErrBootConfig)
	})

	t.Run("boots exactly once", func(t *testing.T) {
		app := New(WithEnvFiles("/does/not/exist.env"))
		first := app.Boot()
		require.Error(t, first)
		require.Equal(t, first, app.Boot())
	})

	t.Run("providers run in order after facades", func(t *testing.T) {
		var order []string
		app := New(WithProviders(
			func(a *App) error {
				require.True(t, a.Container().Has(BindingCache))
				order = append(order, "first")
				return nil
			},
			func(a *App) error {
				order = append(order, "second")
				return nil
			},
		))
		require.NoError(t, app.Boot())
		require.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("failing provider aborts boot", func(t *testing.T) {
		boom := errors.New("boom")
		ran := false
		app := New(WithProviders(
			func(*App) error { return boom },
			func(*App) error { ran = true; return nil },
		))
		err := app.Boot()
		require.ErrorIs(t, err, ErrBootProvider)
		require.ErrorIs(t, err, boom)
		require.False(t, ran)
	})
}

func TestAppRouting(t *testing.T) {
	newBootedApp := func(t *testing.T, opts ...Option) *App {
		t.Helper()
		app := New(opts...)
		require.NoError(t, app.Boot())
		return app
	}

	t.Run("dispatches to registered handlers", func(t *testing.T) {
		app := newBootedApp(t, WithHandlers(routesFunc(func(r Router) {
			r.GET("/users/{id}", func(c Context) error {
				return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id")})
			})
		})))

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/42", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"id":"42"}`, rec.Body.String())
	})

	t.Run("handler errors render as JSON for JSON clients", func(t *testing.T) {
		app := newBootedApp(t, WithHandlers(routesFunc(func(r Router) {
			r.GET("/missing", func(c Context) error {
				return ErrNotFound("user not found", WithErrorCode("user_not_found"))
			})
		})))

		r := httptest.NewRequest(http.MethodGet, "/missing", nil)
		r.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, r)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"user not found","error_code":"user_not_found"}`, rec.Body.String())
	})

	t.Run("handler errors render as text otherwise", func(t *testing.T) {
		app := newBootedApp(t, WithHandlers(routesFunc(func(r Router) {
			r.GET("/teapot", func(c Context) error {
				return NewHTTPError(http.StatusTeapot, "i am a teapot")
			})
		})))

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Equal(t, "i am a teapot", rec.Body.String())
	})

	t.Run("unknown errors become 500 without leaking the cause", func(t *testing.T) {
		app := newBootedApp(t, WithHandlers(routesFunc(func(r Router) {
			r.GET("/fail", func(c Context) error {
				return errors.New("pq: secret table missing")
			})
		})))

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "secret table")
	})

	t.Run("debug mode includes detail and cause", func(t *testing.T) {
		app := newBootedApp(t,
			WithConfigFile(writeTempFile(t, "config.yml", testConfigYAML)),
			WithHandlers(routesFunc(func(r Router) {
				r.GET("/fail", func(c Context) error {
					return ErrInternal("something broke",
						WithDetail("connection pool exhausted"),
						WithError(errors.New("dial tcp: refused")),
					)
				})
			})),
		)

		r := httptest.NewRequest(http.MethodGet, "/fail", nil)
		r.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, r)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "connection pool exhausted")
		require.Contains(t, rec.Body.String(), "dial tcp: refused")
	})

	t.Run("custom not found handler", func(t *testing.T) {
		app := newBootedApp(t, WithNotFoundHandler(func(c Context) error {
			return c.String(http.StatusNotFound, "custom 404")
		}))

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "custom 404", rec.Body.String())
	})

	t.Run("global middleware wraps handlers", func(t *testing.T) {
		mw := func(next HandlerFunc) HandlerFunc {
			return func(c Context) error {
				c.SetHeader("X-Trace", "on")
				return next(c)
			}
		}
		app := newBootedApp(t,
			WithMiddleware(mw),
			WithHandlers(routesFunc(func(r Router) {
				r.GET("/", func(c Context) error { return c.NoContent(http.StatusOK) })
			})),
		)

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "on", rec.Header().Get("X-Trace"))
	})

	t.Run("route groups with scoped middleware", func(t *testing.T) {
		auth := func(next HandlerFunc) HandlerFunc {
			return func(c Context) error {
				if c.Header("Authorization") == "" {
					return ErrUnauthorized("missing credentials")
				}
				return next(c)
			}
		}
		app := newBootedApp(t, WithHandlers(routesFunc(func(r Router) {
			r.GET("/public", func(c Context) error { return c.NoContent(http.StatusOK) })
			r.Group(func(r Router) {
				r.Use(auth)
				r.GET("/private", func(c Context) error { return c.NoContent(http.StatusOK) })
			})
		})))

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		r := httptest.NewRequest(http.MethodGet, "/private", nil)
		r.Header.Set("Authorization", "Bearer token")
		rec = httptest.NewRecorder()
		app.ServeHTTP(rec, r)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAppHealthEndpoints(t *testing.T) {
	t.Run("liveness always OK", func(t *testing.T) {
		app := New(WithHealthChecks())
		require.NoError(t, app.Boot())

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "OK", rec.Body.String())
	})

	t.Run("readiness reflects check results", func(t *testing.T) {
		app := New(WithHealthChecks(
			WithReadinessCheck("ok", func(ctx context.Context) error { return nil }),
			WithReadinessCheck("broken", func(ctx context.Context) error { return errors.New("down") }),
		))
		require.NoError(t, app.Boot())

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
		require.Contains(t, rec.Body.String(), `"down"`)
	})

	t.Run("custom paths", func(t *testing.T) {
		app := New(WithHealthChecks(
			WithLivenessPath("/livez"),
			WithReadinessPath("/readyz"),
		))
		require.NoError(t, app.Boot())

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
