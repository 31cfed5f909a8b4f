package log

import (
	kitlog "github.com/go-kit/log"
	"golang.org/x/time/rate"
)

// RateLimitedLogger drops log lines above a configured rate instead of
// blocking or buffering them, for call sites (like a misbehaving caller
// hammering a table with rejected keys) that could otherwise flood the
// logger.
type RateLimitedLogger struct {
	next    kitlog.Logger
	limiter *rate.Limiter
}

// NewRateLimitedLogger wraps next with a token-bucket limiter allowing up
// to maxPerSecond log lines per second, with a burst of the same size.
func NewRateLimitedLogger(maxPerSecond int, next kitlog.Logger) *RateLimitedLogger {
	return &RateLimitedLogger{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(maxPerSecond), maxPerSecond),
	}
}

// Log implements kitlog.Logger. Lines that exceed the configured rate are
// silently dropped.
func (r *RateLimitedLogger) Log(keyvals ...interface{}) error {
	if !r.limiter.Allow() {
		return nil
	}
	return r.next.Log(keyvals...)
}
