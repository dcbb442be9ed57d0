package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swilenhq/swilen/internal"
	"github.com/swilenhq/swilen/middlewares"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	noop := func(c internal.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("non-CORS request passes through untouched", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, middlewares.CORS()(noop)(ctx))
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard default allows any origin", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		require.NoError(t, middlewares.CORS()(noop)(ctx))
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, rec.Header().Values("Vary"), "Origin")
	})

	t.Run("specific origins are echoed", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		mw := middlewares.CORS(middlewares.WithAllowOrigins("https://app.example.com"))
		require.NoError(t, mw(noop)(ctx))
		require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin gets no CORS headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		mw := middlewares.CORS(middlewares.WithAllowOrigins("https://app.example.com"))
		require.NoError(t, mw(noop)(ctx))
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("dynamic origin validator", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(middlewares.WithAllowOriginFunc(func(origin string) bool {
			return strings.HasSuffix(origin, ".example.com")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://sub.example.com")
		rec := httptest.NewRecorder()
		require.NoError(t, mw(noop)(newTestContext(rec, req)))
		require.Equal(t, "https://sub.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://other.test")
		rec = httptest.NewRecorder()
		require.NoError(t, mw(noop)(newTestContext(rec, req)))
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("credentials echo the origin instead of wildcard", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		mw := middlewares.CORS(middlewares.WithAllowCredentials())
		require.NoError(t, mw(noop)(ctx))
		require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight short-circuits with 204", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		called := false
		handler := middlewares.CORS()(func(c internal.Context) error {
			called = true
			return nil
		})

		require.NoError(t, handler(ctx))
		require.False(t, called)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
		require.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
		require.NotEmpty(t, rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("expose headers on actual requests", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		mw := middlewares.CORS(middlewares.WithExposeHeaders("X-Request-ID", "X-Total-Count"))
		require.NoError(t, mw(noop)(ctx))
		require.Equal(t, "X-Request-ID, X-Total-Count", rec.Header().Get("Access-Control-Expose-Headers"))
	})
}
