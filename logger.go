package curvy

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// logger is a plain variable (no atomic; curvy is single-threaded).
var logger = slog.New(nopHandler{})

// SetLogger configures the logger used by curvy and its sub-packages.
// By default curvy produces no log output. Pass nil to restore the silent
// default.
//
// Log levels used by curvy:
//   - [slog.LevelDebug]: mode transitions, lock toggles, gesture begin/end
//   - [slog.LevelWarn]: rejected input (e.g. malformed restore data)
//
// Example:
//
//	curvy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger = l
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger
}
