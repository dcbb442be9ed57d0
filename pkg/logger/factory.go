package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	level      slog.Level
	text       bool
	output     io.Writer
	extractors []ContextExtractor
}

// Option configures a logger produced by New or NewWithSentry.
type Option func(*options)

// WithLevel sets the minimum level emitted by the logger.
func WithLevel(level slog.Level) Option {
	return func(o *options) { o.level = level }
}

// WithTextFormat switches from JSON to human-readable text output.
// Intended for local development.
func WithTextFormat() Option {
	return func(o *options) { o.text = true }
}

// WithOutput redirects log output away from stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithExtractors registers context extractors applied to every record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) { o.extractors = append(o.extractors, extractors...) }
}

func buildOptions(opts []Option) options {
	o := options{level: slog.LevelInfo, output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: o.level}
	if o.text {
		return slog.NewTextHandler(o.output, ho)
	}
	return slog.NewJSONHandler(o.output, ho)
}

// New creates a structured logger with the given options.
// Defaults to JSON output on stdout at Info level.
func New(opts ...Option) *slog.Logger {
	o := buildOptions(opts)
	return slog.New(Decorate(o.handler(), o.extractors...))
}
