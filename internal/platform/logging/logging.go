// Package logging builds the service's slog logger and carries it through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "book checked out",
//	    slog.String("book_id", bookID),
//	    slog.String("person_id", personID),
//	)
//
// Failures are logged with the operation name, the book and person ids
// involved and the full chain via slog.Any("error", err). Under the logging
// middleware the context logger already carries request_id and
// correlation_id. Patron contact details and credentials are masked by the
// handler regardless of the call site.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New creates the service logger.
//
// level accepts anything slog.Level.UnmarshalText does ("debug", "INFO",
// "warn+2"); unrecognized values fall back to info. format "text" selects
// slog.TextHandler and anything else JSON. Debug level adds source
// locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// OrDiscard returns logger, or a logger that drops everything when logger is
// nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
