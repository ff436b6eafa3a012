package shapes

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops all records. It is the default so that the package
// stays silent unless a host application opts in.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(nopHandler{}))
}

// SetLogger routes package diagnostics, such as stream buffer growth, to
// the given logger. Passing nil restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	pkgLogger.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
