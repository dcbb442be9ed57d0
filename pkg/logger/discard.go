package logger

import (
	"log/slog"
)

// NewDiscard returns a logger that drops everything.
// Used as the default wherever a nil logger would otherwise need guarding.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
