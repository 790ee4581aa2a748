// Package logging defines the structured logger shared by the Fruitie
// server and terminal client, together with its slog adapter and the
// writers (stdout, rotating file) log records end up in.
package logging

import "context"

// Logger is a context-aware, structured logger. Args are key/value pairs:
//
//	logger.Info(ctx, "chat reply sent", "page", page, "chars", len(reply))
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	// Error is for failures the caller could not recover from locally.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs,
	// e.g. the request id or the chat page.
	With(args ...any) Logger
}
