// Package logging defines the minimal structured-logging surface used by the
// civicwatch stores. The concrete implementation wraps slog; tests use Nop.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// slog-style key-value pairs:
//
//	log.Warn(ctx, "persist failed", "key", key, "error", err)
type Logger interface {
	// Debug logs fine-grained diagnostic details.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs an unusual but non-fatal condition.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
