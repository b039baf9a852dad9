// Package logging is the structured logger shared by the memberdesk
// transport, session and cache layers and the CLI. Log lines go to stderr so
// they never interleave with REPL output on stdout; the level comes from
// configuration (MEMBERDESK_LOG_LEVEL or -l).
package logging

import "context"

// Logger takes a message plus alternating key/value pairs, for example
//
//	log.Warn(ctx, "request without token", "method", req.Method, "path", req.URL.Path)
//
// The context is passed through to the handler.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record.
	With(args ...any) Logger
}
