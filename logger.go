package daxa

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the package. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Levels:
//   - [slog.LevelDebug]: failed native calls and their status codes
//   - [slog.LevelInfo]: device and instance lifecycle
//   - [slog.LevelWarn]: devices released by the garbage collector instead of Destroy
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logFailure records a non-success status for a native call and returns it as an error.
func logFailure(op string, r Result) error {
	err := Error(r)
	if err != nil {
		Logger().Debug("daxa: native call failed", "op", op, "result", r.String(), "code", int32(r))
	}
	return err
}
