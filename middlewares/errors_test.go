package middlewares_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/swilenhq/swilen/middlewares"
)

func TestPanicError(t *testing.T) {
	t.Parallel()

	pe := &middlewares.PanicError{Value: "something broke", Stack: []byte("stack")}
	require.Equal(t, "panic: something broke", pe.Error())

	wrapped := fmt.Errorf("handler failed: %w", pe)
	require.True(t, middlewares.IsPanicError(wrapped))

	got, ok := middlewares.AsPanicError(wrapped)
	require.True(t, ok)
	require.Equal(t, pe, got)

	require.False(t, middlewares.IsPanicError(errors.New("plain")))
	_, ok = middlewares.AsPanicError(nil)
	require.False(t, ok)
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()

	te := &middlewares.TimeoutError{Duration: 5 * time.Second}
	require.Equal(t, "request timeout after 5s", te.Error())

	wrapped := fmt.Errorf("request aborted: %w", te)
	require.True(t, middlewares.IsTimeoutError(wrapped))

	got, ok := middlewares.AsTimeoutError(wrapped)
	require.True(t, ok)
	require.Equal(t, te, got)

	require.False(t, middlewares.IsTimeoutError(errors.New("plain")))
}
