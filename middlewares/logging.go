package middlewares

import (
	"time"

	"github.com/swilenhq/swilen/internal"
)

// Logging emits one structured log entry per request with the method,
// path, status, response size, and duration. Client and server errors
// log at warn and error respectively.
//
// Place it after RequestID so entries carry the request_id attribute.
func Logging() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := rw.Status()
			attrs := []any{
				"method", c.Method(),
				"path", c.Path(),
				"status", status,
				"bytes", rw.Size(),
				"duration", time.Since(start).String(),
				"ip", c.IP(),
			}
			if err != nil {
				attrs = append(attrs, "error", err.Error())
			}

			switch {
			case status >= 500 || (err != nil && !rw.Written()):
				c.LogError("request", attrs...)
			case status >= 400:
				c.LogWarn("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}

			return err
		}
	}
}
