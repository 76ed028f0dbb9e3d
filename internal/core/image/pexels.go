package image

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"recipe-catalog/internal/infrastructure/config"
	"recipe-catalog/internal/pkg/common"
)

// Searcher 以關鍵字取得食物圖片網址
type Searcher interface {
	RecipeImage(ctx context.Context, keywords string) string
}

// PexelsService Pexels 圖片搜尋。未設定 API Key 或呼叫失敗時
// 一律退回佔位圖，永不回傳錯誤。
type PexelsService struct {
	http    *resty.Client
	enabled bool
}

type pexelsResponse struct {
	Photos []struct {
		Src struct {
			Medium string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// NewPexelsService 建立圖片搜尋服務
func NewPexelsService(cfg config.PexelsConfig) *PexelsService {
	if cfg.APIKey == "" {
		common.LogWarn("未設定 PEXELS_API_KEY，圖片一律使用佔位圖")
		return &PexelsService{enabled: false}
	}

	client := resty.New().
		SetBaseURL("https://api.pexels.com/v1").
		SetHeader("Authorization", cfg.APIKey)

	return &PexelsService{http: client, enabled: true}
}

// RecipeImage 以食譜關鍵字搜尋一張圖片
func (s *PexelsService) RecipeImage(ctx context.Context, keywords string) string {
	keywords = strings.TrimSpace(keywords)
	if !s.enabled {
		return PlaceholderURL(keywords)
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":       strings.TrimSpace("food " + keywords),
			"per_page":    "1",
			"orientation": "landscape",
		}).
		SetResult(&pexelsResponse{}).
		Get("/search")
	if err != nil {
		common.LogError("圖片搜尋失敗",
			zap.Error(err),
			zap.String("keywords", keywords),
		)
		return PlaceholderURL(keywords)
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogError("圖片搜尋回傳錯誤狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("keywords", keywords),
		)
		return PlaceholderURL(keywords)
	}

	result, ok := resp.Result().(*pexelsResponse)
	if !ok || len(result.Photos) == 0 || result.Photos[0].Src.Medium == "" {
		return PlaceholderURL(keywords)
	}
	return result.Photos[0].Src.Medium
}

// PlaceholderURL 由關鍵字組出確定性的佔位圖網址
func PlaceholderURL(keywords string) string {
	return fmt.Sprintf("https://source.unsplash.com/800x600/?food,%s", url.QueryEscape(keywords))
}
