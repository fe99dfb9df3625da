// Package cache manages the Redis client used for rate limiting.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"chirp/internal/observability"
)

// Connect opens a Redis client for the given address. Redis is optional: if
// the server is unreachable a nil client is returned and callers fall back
// to running without it.
func Connect(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		observability.Logger.Warn("redis unavailable, continuing without it", "addr", addr, "error", err)
		return nil
	}

	observability.Logger.Info("redis connected", "addr", addr)
	return client
}
