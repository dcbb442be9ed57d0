package database

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATEs that indicate the server went away mid-session.
// Class 08 covers connection exceptions; 57P01..57P03 cover server
// shutdown and crash recovery.
var lostSQLStates = map[string]bool{
	"57P01": true, // admin_shutdown
	"57P02": true, // crash_shutdown
	"57P03": true, // cannot_connect_now
}

// Transport-level failure fragments surfaced by the driver or the OS.
var lostFragments = []string{
	"broken pipe",
	"connection reset",
	"connection refused",
	"unexpected eof",
	"conn closed",
	"conn busy",
	"server closed the connection",
}

// IsLostConnection classifies an error as a recoverable lost-connection
// failure. Context cancellation is never classified as lost: the caller
// asked to stop, retrying would be wrong.
func IsLostConnection(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "08") {
			return true
		}
		return lostSQLStates[pgErr.Code]
	}

	msg := strings.ToLower(err.Error())
	for _, fragment := range lostFragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}
