package ratelimiter

import (
	"context"
	"time"
)

// Store persists bucket state.
type Store interface {
	// Take refills the bucket for key and removes n tokens if at least n are
	// available. n == 0 only refills.
	Take(ctx context.Context, key string, n int, cfg Config) (allowed bool, remaining int, resetAt time.Time, err error)
	// Reset forgets the bucket for key.
	Reset(ctx context.Context, key string) error
}

// refill advances a bucket from refilled to now and returns the new token
// count and refill mark. The mark moves in whole intervals so partial
// progress toward the next token is kept.
func refill(tokens int, refilled, now time.Time, cfg Config) (int, time.Time) {
	elapsed := now.Sub(refilled)
	if elapsed < cfg.RefillInterval {
		return tokens, refilled
	}
	intervals := int64(elapsed / cfg.RefillInterval)
	if limit := int64(cfg.Capacity/cfg.RefillRate + 1); intervals > limit {
		return cfg.Capacity, now
	}
	tokens = min(tokens+int(intervals)*cfg.RefillRate, cfg.Capacity)
	return tokens, refilled.Add(time.Duration(intervals) * cfg.RefillInterval)
}
