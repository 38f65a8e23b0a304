package translator

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the default upstream QPS.
const DefaultRateLimit = 10

// RateLimiter caps the request rate towards the upstream translation service.
// It is shared by every concurrent fetch in the process.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing qps requests per second with an equal burst.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(qps), qps)}
}

// Wait blocks until a token is available or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Limit returns the configured QPS.
func (r *RateLimiter) Limit() int {
	return int(r.limiter.Limit())
}
