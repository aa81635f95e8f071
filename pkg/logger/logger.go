// Package logger configures the process-wide slog logger.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// requestIDKey is the context key under which the request id is stored.
type requestIDKey struct{}

// WithRequestID returns a context whose log records carry the given request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in the context, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Init installs the default logger. Pretty selects a human-readable text output over JSON.
func Init(w io.Writer, level string, pretty bool) {
	slog.SetDefault(slog.New(NewHandler(w, level, pretty)))
}

// NewHandler returns the handler that Init installs.
func NewHandler(w io.Writer, level string, pretty bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if pretty {
		handler = slog.NewTextHandler(w, opts)
	}
	return &contextHandler{Handler: handler}
}

// ParseLevel converts a level name to a slog.Level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// contextHandler adds the request id of the context to every record.
type contextHandler struct {
	slog.Handler
}

func (c *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if id := RequestID(ctx); id != "" {
		record.AddAttrs(slog.String("request_id", id))
	}
	return c.Handler.Handle(ctx, record)
}

func (c *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: c.Handler.WithAttrs(attrs)}
}

func (c *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: c.Handler.WithGroup(name)}
}
