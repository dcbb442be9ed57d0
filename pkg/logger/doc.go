// Package logger builds structured slog loggers for swilen applications.
//
// It extends log/slog with context-based attribute injection and optional
// Sentry error reporting. Loggers are configured with functional options:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithTextFormat(),
//		logger.WithExtractors(requestIDExtractor),
//	)
//
// A ContextExtractor pulls request-scoped values (request ID, client IP)
// out of the context on every log call:
//
//	requestIDExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(ctxKeyRequestID).(string); ok && id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
// NewWithSentry routes Warn and Error records to Sentry in addition to the
// local handler. When the DSN is empty it degrades to local-only logging,
// so the same code path works in development and production.
package logger
