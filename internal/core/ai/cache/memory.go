package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"recipe-catalog/internal/infrastructure/config"
	"recipe-catalog/internal/pkg/common"
)

// MemoryCache 行程內的 TTL 快取，容量滿時先清過期項目再走 LRU
type MemoryCache struct {
	mu      sync.RWMutex
	store   map[string]memoryEntry
	maxSize int
	ttl     time.Duration
	done    chan struct{}
	stats   cacheStats
}

type memoryEntry struct {
	value       string
	expiresAt   time.Time
	lastAccess  time.Time
	accessCount int
}

type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewMemoryCache 建立記憶體快取並啟動清理協程
func NewMemoryCache(cfg config.CacheConfig) *MemoryCache {
	c := &MemoryCache{
		store:   make(map[string]memoryEntry),
		maxSize: cfg.MaxSize,
		ttl:     cfg.TTL,
		done:    make(chan struct{}),
	}

	go c.startCleanup(cfg.CleanupInterval)

	common.LogInfo("快取管理員已初始化",
		zap.Int("最大容量", cfg.MaxSize),
		zap.Duration("存活時間", cfg.TTL),
		zap.Duration("清理間隔", cfg.CleanupInterval),
	)

	return c
}

// Get 獲取緩存值
func (c *MemoryCache) Get(ctx context.Context, prompt string) (string, error) {
	key := cacheKey(prompt)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.store[key]
	if !exists {
		c.stats.misses++
		return "", common.ErrCacheMiss
	}

	if time.Now().After(entry.expiresAt) {
		delete(c.store, key)
		c.stats.evictions++
		c.stats.misses++
		return "", common.ErrCacheMiss
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	c.store[key] = entry
	c.stats.hits++

	common.LogCacheHit("memory")
	return entry.value, nil
}

// Set 設置緩存值
func (c *MemoryCache) Set(ctx context.Context, prompt, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.store) >= c.maxSize {
		c.cleanupLocked()
		if len(c.store) >= c.maxSize {
			c.evictLRULocked()
		}
		if len(c.store) >= c.maxSize {
			common.LogWarn("快取已滿",
				zap.Int("目前容量", len(c.store)),
			)
			return common.ErrCacheFull
		}
	}

	now := time.Now()
	c.store[cacheKey(prompt)] = memoryEntry{
		value:      value,
		expiresAt:  now.Add(c.ttl),
		lastAccess: now,
	}
	return nil
}

func (c *MemoryCache) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.cleanupLocked()
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}

// cleanupLocked 清理過期項目，呼叫端須持有鎖
func (c *MemoryCache) cleanupLocked() {
	now := time.Now()
	count := 0
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
			count++
			c.stats.evictions++
		}
	}
	if count > 0 {
		common.LogInfo("快取清理執行",
			zap.Int("清理數量", count),
			zap.Int("剩餘容量", len(c.store)),
		)
	}
}

// evictLRULocked 淘汰最少使用的項目，呼叫端須持有鎖
func (c *MemoryCache) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestCount int

	for key, entry := range c.store {
		if oldestKey == "" ||
			entry.accessCount < lowestCount ||
			(entry.accessCount == lowestCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(c.store, oldestKey)
		c.stats.evictions++
		common.LogInfo("快取已淘汰(LRU)",
			zap.String("鍵", oldestKey),
		)
	}
}

// Stats 快取統計
func (c *MemoryCache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"size":      len(c.store),
		"max_size":  c.maxSize,
		"hits":      c.stats.hits,
		"misses":    c.stats.misses,
		"evictions": c.stats.evictions,
	}
}

// Close 關閉快取
func (c *MemoryCache) Close() error {
	close(c.done)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]memoryEntry)

	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", c.stats.hits),
		zap.Int64("未命中次數", c.stats.misses),
		zap.Int64("淘汰次數", c.stats.evictions),
	)
	return nil
}
