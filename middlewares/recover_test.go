package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swilenhq/swilen/internal"
	"github.com/swilenhq/swilen/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("passes through without panic", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover()(func(c internal.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(ctx))
	})

	t.Run("passes through handler errors", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover()(func(c internal.Context) error {
			return boom
		})
		require.ErrorIs(t, handler(ctx), boom)
	})

	t.Run("converts a panic to PanicError", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover()(func(c internal.Context) error {
			panic("kaboom")
		})

		err := handler(ctx)
		require.Error(t, err)
		require.True(t, middlewares.IsPanicError(err))

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "kaboom", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Contains(t, err.Error(), "kaboom")
	})

	t.Run("panic with an error value", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("underlying")
		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover()(func(c internal.Context) error {
			panic(cause)
		})

		pe, ok := middlewares.AsPanicError(handler(ctx))
		require.True(t, ok)
		require.Equal(t, cause, pe.Value)
	})

	t.Run("disabled stack capture", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(c internal.Context) error {
			panic("quiet")
		})

		pe, ok := middlewares.AsPanicError(handler(ctx))
		require.True(t, ok)
		require.Nil(t, pe.Stack)
	})
}
