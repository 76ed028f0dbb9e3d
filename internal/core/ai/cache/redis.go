package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"recipe-catalog/internal/infrastructure/config"
	"recipe-catalog/internal/pkg/common"
)

// RedisCache 以 Redis 為後端的 AI 回應快取
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache 建立 Redis 快取並測試連線
func NewRedisCache(cfg config.CacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

// Get 獲取緩存值
func (c *RedisCache) Get(ctx context.Context, prompt string) (string, error) {
	value, err := c.client.Get(ctx, cacheKey(prompt)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	common.LogCacheHit("redis")
	return value, nil
}

// Set 設置緩存值
func (c *RedisCache) Set(ctx context.Context, prompt, value string) error {
	if err := c.client.Set(ctx, cacheKey(prompt), value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close 關閉 Redis 連線
func (c *RedisCache) Close() error {
	return c.client.Close()
}
