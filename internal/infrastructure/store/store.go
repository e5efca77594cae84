package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"counselconnect/internal/domain/contract"
)

// RedisCacheStore implements the contract.ICache interface on Redis.
type RedisCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.ICache = (*RedisCacheStore)(nil)

func NewRedisCacheStore(rdb *redis.Client) *RedisCacheStore {
	return &RedisCacheStore{
		rdb: rdb,
		ttl: 30 * time.Minute,
	}
}

func (c *RedisCacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (c *RedisCacheStore) Set(ctx context.Context, key string, value []byte) error {
	return c.rdb.Set(ctx, key, value, c.ttl).Err()
}

func (c *RedisCacheStore) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// InvalidatePrefix deletes every key under the prefix, scanning in
// batches so large keyspaces never block the server.
func (c *RedisCacheStore) InvalidatePrefix(ctx context.Context, prefix string) error {
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}
