package catalog

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// ListCache holds the JSON-encoded list projections between catalog writes.
type ListCache interface {
	// Get returns the cached payload and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, data string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisListCache implements ListCache on a redis client. A redis miss is
// reported as an absent key, not an error.
type RedisListCache struct {
	Client *redis.Client
}

// NewRedisListCache creates a ListCache backed by the given redis client.
func NewRedisListCache(client *redis.Client) *RedisListCache {
	return &RedisListCache{Client: client}
}

func (c *RedisListCache) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, err
	}
	return data, true, nil
}

func (c *RedisListCache) Set(ctx context.Context, key, data string, ttl time.Duration) error {
	return c.Client.Set(ctx, key, data, ttl).Err()
}

func (c *RedisListCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
