package ai

import (
	"context"
	"time"

	"go.uber.org/zap"

	"recipe-catalog/internal/core/ai/cache"
	"recipe-catalog/internal/core/ai/provider"
	"recipe-catalog/internal/pkg/common"
)

// Service AI 服務。提供者前面掛一層回應快取，命中時完全不碰
// 上游模型。
type Service struct {
	provider provider.Provider
	cache    cache.Cache
}

// NewService 創建 AI 服務，cache 可為 nil（快取停用）
func NewService(p provider.Provider, c cache.Cache) *Service {
	return &Service{
		provider: p,
		cache:    c,
	}
}

// Generate 生成 AI 回應，快取命中時直接回傳
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	if s.cache != nil {
		if value, err := s.cache.Get(ctx, prompt); err == nil && value != "" {
			return value, nil
		}
		common.LogCacheMiss("ai")
	}

	start := time.Now()
	content, err := s.provider.Generate(ctx, prompt)
	common.LogAICall(time.Since(start), err)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, prompt, content); err != nil {
			common.LogWarn("回應快取寫入失敗",
				zap.Error(err),
			)
		}
	}

	return content, nil
}

// Model 目前使用的模型名稱
func (s *Service) Model() string {
	return s.provider.Model()
}

// Close 關閉提供者與快取
func (s *Service) Close() error {
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			return err
		}
	}
	return s.provider.Close()
}
