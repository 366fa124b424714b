// Package redis connects to the optional Redis backend used by the shared
// rate limiter store.
//
// Connect parses REDIS_URL, pings with retries and returns a ready
// *redis.Client from github.com/redis/go-redis/v9. Healthcheck adapts the
// client to the readiness probe of pkg/httpserver.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
package redis
