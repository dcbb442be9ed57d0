package database

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrParseConfig    = errors.New("database: failed to parse connection configuration")
	ErrOpenConnection = errors.New("database: failed to open connection")
	ErrHealthcheck    = errors.New("database: healthcheck failed")
	ErrSetDialect     = errors.New("database migrator: failed to set dialect")
	ErrMigrate        = errors.New("database migrator: failed to apply migrations")
)

// LostConnectionError reports that an operation kept hitting
// lost-connection failures until the retry budget ran out.
type LostConnectionError struct {
	// Err is the last driver error observed.
	Err error

	// Elapsed is the total time spent across all attempts.
	Elapsed time.Duration

	// Attempts is the number of times the statement was tried.
	Attempts int
}

func (e *LostConnectionError) Error() string {
	return fmt.Sprintf("database: connection lost after %d attempts (%s): %v",
		e.Attempts, e.Elapsed.Round(time.Millisecond), e.Err)
}

func (e *LostConnectionError) Unwrap() error {
	return e.Err
}

// IsLostConnectionError reports whether err wraps a LostConnectionError.
func IsLostConnectionError(err error) bool {
	var lce *LostConnectionError
	return errors.As(err, &lce)
}
