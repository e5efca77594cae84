package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL builds a client from a redis:// URL and verifies the
// connection with a ping.
func NewRedisFromURL(ctx context.Context, redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to ping redis: %v", err)
	}
	return rdb
}

// Close closes the client, ignoring shutdown errors.
func Close(rdb *redis.Client) {
	_ = rdb.Close()
}
