// Package logging wires a *slog.Logger through a context.Context, the way
// S1riyS/os-course-lab-4/server/pkg/logging does: a logger (and a
// correlation id) attached once per invocation, retrieved and annotated
// with an operation name at each call site.
package logging

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey struct{ name string }

var loggerKey = ctxKey{name: "logger"}

// New builds a text-handler logger writing to stderr — diagnostics in
// this codebase are always side-channel, never on the data stream the
// front ends write extracted bytes or listings to.
func New(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// WithContext attaches logger to ctx for retrieval by FromContext.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger attached by WithContext, or a default
// stderr logger at info level if none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Op returns the context's logger annotated with the operation name, the
// way GetLoggerFromContextWithOp does.
func Op(ctx context.Context, op string) *slog.Logger {
	return FromContext(ctx).With(slog.String("op", op))
}
