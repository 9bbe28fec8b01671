package config

// Redis backs the distributed rate limiter.  Connection parameters come
// from environment variables; when the server is unreachable at startup the
// constructor returns nil and callers run with rate limiting disabled.

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client from REDIS_ADDR (or REDIS_HOST/REDIS_PORT),
// REDIS_PASSWORD and REDIS_DB.  Returns nil when no server answers the
// startup ping.
func NewRedisClient() *redis.Client {
	addr := envStr("REDIS_ADDR", "")
	if host := envStr("REDIS_HOST", ""); host != "" {
		addr = host + ":" + envStr("REDIS_PORT", "6379")
	}
	if addr == "" {
		addr = "localhost:6379"
	}
	dbNum, _ := strconv.Atoi(envStr("REDIS_DB", "0"))

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: envStr("REDIS_PASSWORD", ""),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
