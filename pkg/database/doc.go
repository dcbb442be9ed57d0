// Package database wraps a pgx connection pool with lost-connection
// recovery for request-scoped query execution.
//
// Connect establishes the pool with startup retry and backoff. The
// Connection wrapper retries individual operations that fail with a
// lost-connection error: the pool is re-pinged and the statement is
// replayed, up to three attempts. Exhaustion surfaces as a
// *LostConnectionError carrying the attempt count and elapsed time.
//
// Statements accept positional ($1) bindings or named (@name) bindings
// via Named:
//
//	rows, err := conn.Query(ctx,
//	    "SELECT id FROM users WHERE email = @email",
//	    database.Named(map[string]any{"email": email}),
//	)
package database
