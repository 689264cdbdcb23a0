package util

import (
	"time"

	"golang.org/x/time/rate"
)

// Limiter wraps rate.Limiter with the allow-or-reject check used by the web form.
type Limiter struct {
	inner *rate.Limiter
}

// NewLimiter creates a token bucket limiter refilled at perMinute tokens per
// minute with the given burst.
func NewLimiter(perMinute int, burst int) *Limiter {
	return &Limiter{
		inner: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst),
	}
}

// Allow reports whether one more request may proceed now.
func (l *Limiter) Allow() bool {
	return l.inner.AllowN(time.Now(), 1)
}

// RetryAfter is the delay until the next token is available.
func (l *Limiter) RetryAfter() time.Duration {
	r := l.inner.ReserveN(time.Now(), 1)
	defer r.Cancel()
	return r.Delay()
}
