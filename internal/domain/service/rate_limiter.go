package service

import (
	"context"
	"time"
)

// RateLimiter counts attempts per key in a fixed window.
type RateLimiter interface {
	// Allow records one attempt for key and reports whether it is within the limit.
	// retryAfter is the time left in the window when the attempt is refused.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}
