package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies pending goose migrations from the embedded filesystem.
// The pgx pool is bridged to database/sql; the bridge shares the pool's
// connections, so it is deliberately not closed here.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations embed.FS, migrationTable string, log *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLogger{log})
	goose.SetTableName(migrationTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrSetDialect, err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Join(ErrMigrate, err)
	}

	return nil
}

type gooseLogger struct {
	log *slog.Logger
}

func (g *gooseLogger) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...))
}

func (g *gooseLogger) Fatalf(format string, args ...any) {
	// Error level only; goose propagates the failure as a returned error
	// and os.Exit would skip shutdown hooks.
	g.log.Error(fmt.Sprintf(format, args...))
}
