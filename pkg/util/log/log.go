// Package log provides the process-wide structured logger used by the
// instrument package, plus a rate-limited wrapper for noisy call sites.
package log

import (
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger is the process-wide logfmt logger. Callers typically wrap it with
// a level, e.g. level.Info(Logger).Log("msg", "...").
var Logger = newLogger()

func newLogger() kitlog.Logger {
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	l = level.NewFilter(l, level.AllowInfo())
	l = kitlog.With(l, "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.DefaultCaller)
	return l
}
