package rend

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything and reports itself disabled, so callers
// skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by rend. By default nothing is logged.
// Pass nil to silence it again.
//
// Levels:
//   - [slog.LevelDebug]: buffer sizes, attribute layout, uniform lookups
//   - [slog.LevelInfo]: window and OpenGL version
//   - [slog.LevelWarn]: OpenGL errors, missing attributes
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
