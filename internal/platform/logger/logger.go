// Package logger provides structured logging infrastructure.
// This is part of the platform layer and contains no API bindings.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

// RequestIDKey is the context key for the request ID attached to outbound calls.
const RequestIDKey contextKey = "request_id"

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a logger for the given environment and level.
// "development" selects a text handler at debug level; anything else is JSON.
// level may be "debug", "info", "warn" or "error" and overrides the default.
func New(env, level string) *Logger {
	return NewWithWriter(os.Stdout, env, level)
}

func NewWithWriter(w io.Writer, env, level string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level, slog.LevelInfo)}

	var handler slog.Handler
	if strings.EqualFold(env, "development") {
		opts.Level = parseLevel(level, slog.LevelDebug)
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// Nop returns a logger that discards everything. Used as the default when
// callers do not inject one.
func Nop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func parseLevel(level string, fallback slog.Level) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

// WithContext returns a logger carrying the request_id found in ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		return l.WithRequestID(requestID)
	}
	return l
}

// WithRequestID returns a logger with request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// APICall logs one completed outbound API call.
func (l *Logger) APICall(endpoint, outcome string, httpStatus int, latencyMs int64) {
	l.Debug("api_call",
		slog.String("endpoint", endpoint),
		slog.String("outcome", outcome),
		slog.Int("http_status", httpStatus),
		slog.Int64("latency_ms", latencyMs),
	)
}

// APIError logs a failed outbound API call.
func (l *Logger) APIError(endpoint, outcome string, err error) {
	l.Error("api_error",
		slog.String("endpoint", endpoint),
		slog.String("outcome", outcome),
		slog.String("error", err.Error()),
	)
}

// DatabaseError logs database errors
func (l *Logger) DatabaseError(operation string, err error) {
	l.Error("database_error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}
