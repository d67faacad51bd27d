package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*redisLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return newRedisLimiter(client, maxAttempts, window), mr
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	limiter, mr := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := range 3 {
		allowed, _, err := limiter.Allow(ctx, "otp:a@x.com")
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d", i+1)
	}

	allowed, retryAfter, err := limiter.Allow(ctx, "otp:a@x.com")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)

	// Other keys have their own window.
	allowed, _, err = limiter.Allow(ctx, "otp:b@x.com")
	require.NoError(t, err)
	assert.True(t, allowed)

	mr.FastForward(time.Minute + time.Second)

	allowed, _, err = limiter.Allow(ctx, "otp:a@x.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_SetsExpiryOnFirstHit(t *testing.T) {
	limiter, mr := newTestLimiter(t, 5, 15*time.Minute)

	_, _, err := limiter.Allow(context.Background(), "login:a@x.com:1.2.3.4")
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, mr.TTL(keyPrefix+"login:a@x.com:1.2.3.4"))
}

func TestRedisLimiter_RepairsMissingExpiry(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	key := keyPrefix + "verify:a@x.com"
	require.NoError(t, mr.Set(key, "5"))

	allowed, retryAfter, err := limiter.Allow(context.Background(), "verify:a@x.com")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retryAfter)
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestRedisLimiter_Unavailable(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	mr.Close()

	_, _, err := limiter.Allow(context.Background(), "otp:a@x.com")
	assert.Error(t, err)
}

func TestNoopLimiter(t *testing.T) {
	allowed, retryAfter, err := noopLimiter{}.Allow(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, retryAfter)
}
