package middlewares

import (
	"context"
	"time"

	"github.com/swilenhq/swilen/internal"
)

// DefaultTimeout is the fallback request timeout.
const DefaultTimeout = 30 * time.Second

// timeoutContextKey stores the deadline context for handlers.
type timeoutContextKey struct{}

// Timeout fails requests that outlive the given duration with a
// TimeoutError. The handler goroutine keeps running after the deadline;
// long operations should watch GetTimeoutContext(c).Done() and bail out.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			c.Set(timeoutContextKey{}, ctx)

			done := make(chan error, 1)
			go func() {
				done <- next(c)
			}()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					c.LogWarn("request timeout", "timeout", timeout.String())
					return &TimeoutError{Duration: timeout}
				}
				return ctx.Err()
			}
		}
	}
}

// GetTimeoutContext returns the deadline context installed by Timeout,
// falling back to the request context.
func GetTimeoutContext(c internal.Context) context.Context {
	if v, ok := c.Get(timeoutContextKey{}).(context.Context); ok {
		return v
	}
	return c.Context()
}
