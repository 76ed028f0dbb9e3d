package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"recipe-catalog/internal/infrastructure/config"
	"recipe-catalog/internal/pkg/common"
)

// OpenRouter 透過 OpenRouter API 生成回應
type OpenRouter struct {
	client    *resty.Client
	model     string
	maxTokens int
}

// NewOpenRouter 創建 OpenRouter 提供者
func NewOpenRouter(cfg config.AIConfig) *OpenRouter {
	client := resty.New().
		SetBaseURL("https://openrouter.ai/api/v1").
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("HTTP-Referer", "https://recipe-catalog.app").
		SetHeader("X-Title", "Recipe Catalog")

	return &OpenRouter{
		client:    client,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// Generate 生成回應
func (p *OpenRouter) Generate(ctx context.Context, prompt string) (string, error) {
	req := map[string]interface{}{
		"model": p.model,
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"max_tokens":  p.maxTokens,
		"temperature": 0.7,
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("OpenRouter 回傳錯誤狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", p.model),
		)
		return "", fmt.Errorf("OpenRouter API returned error (status %d): %s", resp.StatusCode(), resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenRouter response")
	}

	content := result.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty content in OpenRouter response")
	}
	return content, nil
}

// Model 模型名稱
func (p *OpenRouter) Model() string {
	return p.model
}

// Close 關閉提供者
func (p *OpenRouter) Close() error {
	return nil
}
