package internal

import (
	"log/slog"
	"time"
)

// LogRecord is the write-once structured summary of one dispatched request.
// Exactly one record is emitted per request, success or failure.
type LogRecord struct {
	// Kind is the route kind of the resolved mapping.
	Kind RouteKind

	// Method and Path describe the HTTP request.
	Method string
	Path   string

	// StartUTC and StartLocal are the request start time in UTC and the
	// configured local timezone.
	StartUTC   time.Time
	StartLocal time.Time

	// DurationMS is the elapsed handler time in milliseconds.
	DurationMS int64

	// Args are the bound constructor arguments in wire form.
	Args map[string]string

	// Status is the response status code; Body is a short response
	// descriptor such as "html 1324B" or "json envelope".
	Status int
	Body   string

	// Error carries server-side failure detail. It is only ever written to
	// the log sink, never to the client.
	Error *ErrorDetail
}

// ErrorDetail describes a handler failure for the log sink.
type ErrorDetail struct {
	Message string

	// Stack is the first lines of the captured stack trace, present only
	// for panics.
	Stack string

	// CorrelationID is the opaque reference returned to the client.
	CorrelationID string
}

// RecordSink receives one LogRecord per request. Implementations must not
// block for long and must not panic; the dispatcher guards the call anyway
// so a misbehaving sink cannot break a response.
type RecordSink interface {
	Log(rec LogRecord)
}

// SinkFunc adapts a function to the RecordSink interface.
type SinkFunc func(rec LogRecord)

func (f SinkFunc) Log(rec LogRecord) {
	f(rec)
}

// slogSink renders records through a structured logger: Info for successful
// requests, Warn for binding failures, Error for handler failures.
type slogSink struct {
	log *slog.Logger
}

// NewSlogSink creates a RecordSink backed by a slog.Logger.
func NewSlogSink(log *slog.Logger) RecordSink {
	return &slogSink{log: log}
}

func (s *slogSink) Log(rec LogRecord) {
	attrs := []any{
		slog.String("kind", rec.Kind.String()),
		slog.String("method", rec.Method),
		slog.String("path", rec.Path),
		slog.Time("start_utc", rec.StartUTC),
		slog.Time("start_local", rec.StartLocal),
		slog.Int64("duration_ms", rec.DurationMS),
		slog.Int("status", rec.Status),
		slog.String("body", rec.Body),
	}
	if len(rec.Args) > 0 {
		attrs = append(attrs, slog.Any("args", rec.Args))
	}

	switch {
	case rec.Error != nil:
		attrs = append(attrs,
			slog.String("error", rec.Error.Message),
			slog.String("correlation_id", rec.Error.CorrelationID),
		)
		if rec.Error.Stack != "" {
			attrs = append(attrs, slog.String("stack", rec.Error.Stack))
		}
		s.log.Error("request failed", attrs...)
	case rec.Status >= 400:
		s.log.Warn("request rejected", attrs...)
	default:
		s.log.Info("request served", attrs...)
	}
}
