package provider

import (
	"context"
)

// Provider 定義 AI 提供者介面
type Provider interface {
	// Generate 以單一 prompt 生成文字回應
	Generate(ctx context.Context, prompt string) (string, error)

	// Model 獲取當前使用的模型名稱
	Model() string

	// Close 關閉提供者連接
	Close() error
}
