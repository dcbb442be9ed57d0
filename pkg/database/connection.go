package database

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultReconnectAttempts bounds how many times a statement is replayed
// after lost-connection failures.
const defaultReconnectAttempts = 3

// executor is the slice of pgxpool.Pool the Connection drives.
// Narrowed to an interface so recovery logic is testable without a server.
type executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// Connection executes statements against a pool and transparently
// retries lost-connection failures. One logical caller per Connection;
// it is not a concurrency primitive.
type Connection struct {
	pool     executor
	pgxPool  *pgxpool.Pool
	logger   *slog.Logger
	attempts int
}

// Option configures a Connection.
type Option func(*Connection)

// WithReconnectAttempts overrides the per-statement retry budget.
func WithReconnectAttempts(n int) Option {
	return func(c *Connection) {
		if n > 0 {
			c.attempts = n
		}
	}
}

// WithLogger sets the logger used for retry warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Connection) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewConnection wraps a pgx pool.
func NewConnection(pool *pgxpool.Pool, opts ...Option) *Connection {
	c := newConnection(pool, opts...)
	c.pgxPool = pool
	return c
}

// newConnection wires an arbitrary executor; used directly by tests.
func newConnection(pool executor, opts ...Option) *Connection {
	c := &Connection{
		pool:     pool,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		attempts: defaultReconnectAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exec runs a statement that returns no rows.
func (c *Connection) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	var tag pgconn.CommandTag
	err := c.run(ctx, func() error {
		var err error
		tag, err = c.pool.Exec(ctx, sql, args...)
		return err
	})
	return tag, err
}

// Query runs a statement returning rows. The caller owns the rows and
// must close them.
func (c *Connection) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	var rows pgx.Rows
	err := c.run(ctx, func() error {
		var err error
		rows, err = c.pool.Query(ctx, sql, args...)
		return err
	})
	return rows, err
}

// QueryRow runs a statement expected to return at most one row.
// Errors surface from Scan, matching pgx semantics.
func (c *Connection) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	rows, err := c.Query(ctx, sql, args...)
	if err != nil {
		return errRow{err: err}
	}
	return singleRow{rows: rows}
}

// Ping verifies the pool can reach the server.
func (c *Connection) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// Pool exposes the underlying pgx pool for transactions and migrations.
// Nil when the Connection was built from a bare executor.
func (c *Connection) Pool() *pgxpool.Pool {
	return c.pgxPool
}

// run executes op, replaying it after lost-connection failures.
// Before each replay the pool is pinged so dead sockets are discarded
// and fresh connections dialed. Exhausting the budget returns a
// LostConnectionError with the attempt count and total elapsed time.
func (c *Connection) run(ctx context.Context, op func() error) error {
	start := time.Now()
	var lastErr error

	for attempt := 1; attempt <= c.attempts; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if !IsLostConnection(err) {
			return err
		}
		lastErr = err

		c.logger.WarnContext(ctx, "database connection lost, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", c.attempts),
			slog.String("error", err.Error()),
		)

		if attempt == c.attempts {
			break
		}
		if err := c.pool.Ping(ctx); err != nil {
			lastErr = err
		}
	}

	return &LostConnectionError{
		Attempts: c.attempts,
		Elapsed:  time.Since(start),
		Err:      lastErr,
	}
}

// Select runs a query and scans every row into a slice of T by column
// name. Missing struct fields are tolerated.
func Select[T any](ctx context.Context, c *Connection, sql string, args ...any) ([]T, error) {
	rows, err := c.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
}

// Named adapts a map to pgx named-argument bindings (@name placeholders).
func Named(args map[string]any) pgx.NamedArgs {
	return pgx.NamedArgs(args)
}

// errRow carries a query error into Scan.
type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

// singleRow adapts pgx.Rows to the one-row pgx.Row contract.
type singleRow struct {
	rows pgx.Rows
}

func (r singleRow) Scan(dest ...any) error {
	defer r.rows.Close()

	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return err
		}
		return pgx.ErrNoRows
	}
	if err := r.rows.Scan(dest...); err != nil {
		return err
	}
	r.rows.Close()
	return r.rows.Err()
}
