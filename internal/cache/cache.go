package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const defaultTTL = 5 * time.Minute

// Cache is a small cache-aside front for the public catalog reads.
// A nil *Cache is valid and does nothing, so callers never branch on
// whether Redis is configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string) *Cache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Println("cache disabled, bad REDIS_URL:", err)
		return nil
	}

	return &Cache{
		client: redis.NewClient(opts),
		ttl:    defaultTTL,
	}
}

// GetJSON reports a hit after unmarshalling into dest. Any Redis or
// decode failure is treated as a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, val any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(val)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Println("cache set:", err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Println("cache invalidate:", err)
	}
}
