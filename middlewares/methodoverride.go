package middlewares

import (
	"net/http"
	"strings"

	"github.com/swilenhq/swilen/internal"
)

// Headers consulted for a method override, in priority order.
var methodOverrideHeaders = []string{"X-Method-Override", "X-HTTP-Method-Override"}

// MethodOverride rewrites the request method from an override header.
// Only POST requests are considered, and only PUT and DELETE are
// accepted as targets; anything else leaves the request untouched.
// Header values are matched case-insensitively.
//
// Install it before routing so the router dispatches on the effective
// method:
//
//	swilen.WithMiddleware(middlewares.MethodOverride())
func MethodOverride() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			r := c.Request()
			if r.Method != http.MethodPost {
				return next(c)
			}

			for _, header := range methodOverrideHeaders {
				v := r.Header.Get(header)
				if v == "" {
					continue
				}
				switch strings.ToUpper(strings.TrimSpace(v)) {
				case http.MethodPut:
					r.Method = http.MethodPut
				case http.MethodDelete:
					r.Method = http.MethodDelete
				}
				break
			}

			return next(c)
		}
	}
}
