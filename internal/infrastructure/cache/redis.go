package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenRedis returns a client that has answered PING. Idempotency and the
// quote rate limiter share it.
func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return r, nil
}
