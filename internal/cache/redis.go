package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/medcalc/backend/internal/logger"
	"github.com/redis/go-redis/v9"
)

// RedisCache is a best-effort TTL cache for external API responses. Every
// failure degrades to a cache miss.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(redisHost, redisPort string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", redisHost, redisPort),
		Password:     "", // no password
		DB:           0,  // default DB
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: client}, nil
}

// Get returns the cached value for key with a hit flag
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	result := c.client.Get(ctx, key)
	if result.Err() == redis.Nil {
		return "", false
	}
	if result.Err() != nil {
		logger.Warnf("Redis get failed for %s: %v", key, result.Err())
		return "", false
	}
	return result.Val(), true
}

// Set stores value under key with the given TTL
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Warnf("Redis set failed for %s: %v", key, err)
	}
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
