package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"recipe-catalog/internal/infrastructure/config"
)

// Cache AI 回應快取介面。Get 未命中時回傳 common.ErrCacheMiss。
type Cache interface {
	Get(ctx context.Context, prompt string) (string, error)
	Set(ctx context.Context, prompt, value string) error
	Close() error
}

// New 依設定建立快取後端，停用時回傳 nil
func New(cfg config.CacheConfig) (Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	switch cfg.Backend {
	case "redis":
		return NewRedisCache(cfg)
	default:
		return NewMemoryCache(cfg), nil
	}
}

// cacheKey 生成緩存鍵
func cacheKey(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("ai:response:%s", hex.EncodeToString(hash[:]))
}
