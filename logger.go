package ghosttyfont

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger
// can be called concurrently with logging from any goroutine racing to
// resolve a codepoint.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the resolver, grid and
// gridset packages. By default the core produces no log output. Pass nil
// to restore the silent default.
//
// Log levels used by this module:
//   - [slog.LevelDebug]: routine codepoint-override misses (discovery
//     returned no match, a descriptor-cache entry was negative).
//   - [slog.LevelWarn]: an internal error that had to be swallowed (a
//     discovered or fallback face that could not be added to the
//     collection, a face lookup that failed), or an AtlasFull that
//     survived SharedGrid's retry.
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
