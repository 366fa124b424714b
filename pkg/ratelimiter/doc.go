// Package ratelimiter throttles API callers with a token bucket per key.
//
// A Bucket holds Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds too few
// tokens is denied without consuming any. Bucket state lives in a Store:
//
//   - MemoryStore keeps buckets in process and evicts idle ones.
//   - RedisStore keeps them in Redis and updates them atomically with a Lua
//     script, so several server instances share one limit.
//
// Only counters and timestamps are stored, keyed by the caller's address.
//
// Middleware applies a Bucket to an http.Handler, sets the X-RateLimit-*
// headers and answers 429 with Retry-After when the bucket is empty.
//
//	bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), cfg)
//	if err != nil {
//	    return err
//	}
//	r.Use(ratelimiter.Middleware(bucket, ratelimiter.ClientIPKey))
package ratelimiter
