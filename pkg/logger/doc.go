// Package logger provides structured logging with context extraction and
// optional Sentry integration.
//
// It extends log/slog with two capabilities: automatic injection of
// request-scoped attributes pulled from context, and error reporting to
// Sentry with graceful fallback when no DSN is configured.
//
// # Basic Usage
//
// Create a logger with context extractors:
//
//	requestIDExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if reqID, ok := ctx.Value(requestIDKey{}).(string); ok && reqID != "" {
//			return slog.String("request_id", reqID), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(requestIDExtractor)
//	log.InfoContext(ctx, "request processed", slog.Int("status", 200))
//
// Extractors run on every log call, so request-scoped values stay fresh.
// Return false from an extractor to skip the attribute for that entry.
//
// # Sentry Integration
//
// For production error tracking, use NewWithSentry:
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}, requestIDExtractor)
//
// Errors create Issues in Sentry; warnings are stored as logs for context.
// With an empty DSN the logger falls back to stdout-only, so the same code
// path works in development.
//
// # Handler Decoration
//
// LogHandlerDecorator can wrap any slog.Handler to add context extraction:
//
//	jsonHandler := slog.NewJSONHandler(os.Stdout, nil)
//	log := slog.New(logger.NewLogHandlerDecorator(jsonHandler, extractors...))
package logger
