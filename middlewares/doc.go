// Package middlewares provides HTTP middleware for Swilen applications.
//
// # Request ID
//
// RequestID assigns a unique ID to each request, preserving IDs arriving
// on trusted headers. Pair it with RequestIDExtractor so every log entry
// carries the ID:
//
//	app := swilen.New(
//	    swilen.WithLogExtractors(middlewares.RequestIDExtractor()),
//	    swilen.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover catches handler panics and converts them into a PanicError
// the error handler can render:
//
//	swilen.WithMiddleware(middlewares.Recover())
//
// # Method Override
//
// MethodOverride lets HTML forms issue PUT and DELETE requests through
// POST plus an X-Method-Override header:
//
//	swilen.WithMiddleware(middlewares.MethodOverride())
//
// # Logging
//
// Logging writes one structured entry per request with the method,
// path, status, size, and duration.
//
// # CORS
//
// CORS answers preflight requests and adds cross-origin headers:
//
//	swilen.WithMiddleware(middlewares.CORS(
//	    middlewares.WithAllowOrigins("https://app.example.com"),
//	    middlewares.WithAllowCredentials(),
//	))
//
// # Timeout
//
// Timeout fails requests that outlive a deadline with a TimeoutError.
//
// # Recommended Order
//
//	swilen.WithMiddleware(
//	    middlewares.CORS(),
//	    middlewares.MethodOverride(),
//	    middlewares.RequestID(),
//	    middlewares.Logging(),
//	    middlewares.Recover(),
//	    middlewares.Timeout(5*time.Second),
//	)
package middlewares
