package swilen_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swilenhq/swilen"
	"github.com/swilenhq/swilen/middlewares"
)

type routes func(swilen.Router)

func (f routes) Routes(r swilen.Router) { f(r) }

func TestPublicAPI(t *testing.T) {
	t.Run("full request cycle", func(t *testing.T) {
		app := swilen.New(
			swilen.WithMiddleware(middlewares.RequestID()),
			swilen.WithHandlers(routes(func(r swilen.Router) {
				r.GET("/greet/{name}", func(c swilen.Context) error {
					return c.JSON(http.StatusOK, map[string]string{
						"hello": swilen.Param[string](c, "name"),
					})
				})
			})),
		)
		require.NoError(t, app.Boot())

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/greet/jane", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"hello":"jane"}`, rec.Body.String())
		require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("method override reaches the router", func(t *testing.T) {
		app := swilen.New(
			swilen.WithMiddleware(middlewares.MethodOverride()),
			swilen.WithHandlers(routes(func(r swilen.Router) {
				r.PUT("/items/{id}", func(c swilen.Context) error {
					return c.String(http.StatusOK, "updated "+c.Param("id"))
				})
				r.DELETE("/items/{id}", func(c swilen.Context) error {
					return c.NoContent(http.StatusNoContent)
				})
			})),
		)
		require.NoError(t, app.Boot())

		req := httptest.NewRequest(http.MethodPost, "/items/7", strings.NewReader(""))
		req.Header.Set("X-Method-Override", "PUT")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "updated 7", rec.Body.String())

		req = httptest.NewRequest(http.MethodPost, "/items/7", nil)
		req.Header.Set("X-HTTP-Method-Override", "DELETE")
		rec = httptest.NewRecorder()
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("panic recovery renders 500", func(t *testing.T) {
		app := swilen.New(
			swilen.WithMiddleware(middlewares.Recover()),
			swilen.WithHandlers(routes(func(r swilen.Router) {
				r.GET("/boom", func(c swilen.Context) error {
					panic("unexpected")
				})
			})),
		)
		require.NoError(t, app.Boot())

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "unexpected")
	})

	t.Run("facades resolve after boot", func(t *testing.T) {
		app := swilen.New()
		require.NoError(t, app.Boot())

		require.Same(t, app.Env(), swilen.Env.MustUse())
		require.Same(t, app.Logger(), swilen.Log.MustUse())

		store := swilen.CacheStore.MustUse()
		require.NotNil(t, store)
	})
}
