package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passguard/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var testConfig = ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second}

func newBucket(t *testing.T, clock *fakeClock) (*ratelimiter.Bucket, *ratelimiter.MemoryStore) {
	t.Helper()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clock.Now), ratelimiter.WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })
	b, err := ratelimiter.NewBucket(store, testConfig)
	require.NoError(t, err)
	return b, store
}

func TestBucket_DrainsAndRefills(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	b, _ := newBucket(t, clock)

	for i := range 3 {
		res, err := b.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2-i, res.Remaining)
		assert.Equal(t, 3, res.Limit)
	}

	res, err := b.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining, "denied requests do not consume")
	assert.Equal(t, clock.Now().Add(time.Second), res.ResetAt)

	clock.Advance(1500 * time.Millisecond)
	res, err = b.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)

	clock.Advance(500 * time.Millisecond)
	res, err = b.Status(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining, "partial interval progress is kept")

	clock.Advance(time.Hour)
	res, err = b.Status(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining, "refill is capped at capacity")
}

func TestBucket_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _ := newBucket(t, newFakeClock())

	res, err := b.AllowN(ctx, "a", 3)
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = b.Allow(ctx, "b")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
}

func TestBucket_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _ := newBucket(t, newFakeClock())

	_, err := b.AllowN(ctx, "a", 3)
	require.NoError(t, err)
	require.NoError(t, b.Reset(ctx, "a"))

	res, err := b.Status(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining)
}

func TestBucket_InvalidInput(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, newFakeClock())
	_, err := b.AllowN(context.Background(), "a", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1},
	} {
		_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}

	_, err = ratelimiter.NewBucket(nil, testConfig)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
}

func TestMemoryStore_Evict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	b, store := newBucket(t, clock)

	_, err := b.Allow(ctx, "idle")
	require.NoError(t, err)
	clock.Advance(2 * time.Second)
	_, err = b.Allow(ctx, "active")
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	// full refill for capacity 3 at 1/s takes 3s, plus one interval
	clock.Advance(3 * time.Second)
	store.Evict()
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()
	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := b.Allow(ctx, "shared")
			if err == nil && res.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, allowed)
}

func TestResult_RetryAfter(t *testing.T) {
	t.Parallel()

	assert.Zero(t, ratelimiter.Result{Allowed: true, ResetAt: time.Now().Add(time.Minute)}.RetryAfter())
	assert.Zero(t, ratelimiter.Result{ResetAt: time.Now().Add(-time.Minute)}.RetryAfter())
	assert.Greater(t, ratelimiter.Result{ResetAt: time.Now().Add(time.Minute)}.RetryAfter(), 50*time.Second)
}
