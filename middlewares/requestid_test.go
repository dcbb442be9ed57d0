package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swilenhq/swilen/internal"
	"github.com/swilenhq/swilen/middlewares"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	noop := func(c internal.Context) error { return nil }

	t.Run("generates an ID when none arrives", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, middlewares.RequestID()(noop)(ctx))
		require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("keeps an incoming ID", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "upstream-id-123")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		require.NoError(t, middlewares.RequestID()(noop)(ctx))
		require.Equal(t, "upstream-id-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("checks headers in priority order", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "correlation")
		req.Header.Set("X-Request-ID", "request")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		require.NoError(t, middlewares.RequestID()(noop)(ctx))
		require.Equal(t, "request", rec.Header().Get("X-Request-ID"))
	})

	t.Run("custom generator and response header", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		mw := middlewares.RequestID(
			middlewares.WithRequestIDGenerator(func() string { return "fixed" }),
			middlewares.WithRequestIDResponseHeader("X-Trace-ID"),
		)
		require.NoError(t, mw(noop)(ctx))
		require.Equal(t, "fixed", rec.Header().Get("X-Trace-ID"))
	})

	t.Run("GetRequestID reads the stored ID", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		var captured string
		handler := middlewares.RequestID()(func(c internal.Context) error {
			captured = middlewares.GetRequestID(c)
			return nil
		})

		require.NoError(t, handler(ctx))
		require.NotEmpty(t, captured)
		require.Equal(t, captured, rec.Header().Get("X-Request-ID"))
	})

	t.Run("GetRequestID without middleware is empty", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.Empty(t, middlewares.GetRequestID(ctx))
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	t.Run("emits request_id attribute", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.RequestID()(func(c internal.Context) error { return nil })
		require.NoError(t, handler(ctx))

		attr, ok := middlewares.RequestIDExtractor()(ctx.Context())
		require.True(t, ok)
		require.Equal(t, "request_id", attr.Key)
		require.NotEmpty(t, attr.Value.String())
	})

	t.Run("no attribute without an ID", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		_, ok := middlewares.RequestIDExtractor()(ctx.Context())
		require.False(t, ok)
	})
}
