package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit allows limit requests per client IP per fixed window. Counters
// live in redis so every replica shares them. When redis cannot be reached
// the request is let through and a warning is logged.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, log *zap.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			now := nowUTC()
			bucket := now.Truncate(window)
			key := rateKey(c.Path(), ip, bucket)

			ctx, cancel := context.WithTimeout(c.Request().Context(), 500*time.Millisecond)
			defer cancel()
			n, err := hit(ctx, rdb, key, window)
			if err != nil {
				log.Warn("rate limiter unavailable, allowing request", zap.String("ip", ip), zap.Error(err))
				return next(c)
			}

			remaining := int64(limit) - n
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(limit))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(limit) {
				retry := bucket.Add(window).Sub(now)
				h.Set("Retry-After", strconv.Itoa(int(retry.Round(time.Second)/time.Second)+1))
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}

func rateKey(path, ip string, bucket time.Time) string {
	return "ratelimit:" + path + ":" + ip + ":" + strconv.FormatInt(bucket.Unix(), 10)
}

// hit counts one request and makes sure the bucket expires with its window.
func hit(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int64, error) {
	pipe := rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
