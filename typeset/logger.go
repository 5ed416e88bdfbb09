package typeset

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message
// formatting entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with layout on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for the typeset package. By default
// no output is produced. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: renderer decisions (variant picked, assembly
//     part counts, chosen break points)
//   - [slog.LevelWarn]: degraded paths (skipped atom, recursion depth
//     ceiling reached)
//   - [slog.LevelError]: internal invariant violations (invalid
//     spacing pair, boundary atom out of position)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// logger returns the active logger.
func logger() *slog.Logger {
	return loggerPtr.Load()
}
