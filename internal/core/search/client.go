package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"recipe-catalog/internal/infrastructure/config"
)

// Client 搜尋索引客戶端（Algolia REST API）。未設定憑證時所有
// 操作回傳 nil，讓呼叫端無感降級。
type Client struct {
	http      *resty.Client
	indexName string
	enabled   bool
}

// indexSettings 索引設定，與前端搜尋頁的 facet 與排序需求對應
var indexSettings = map[string]interface{}{
	"searchableAttributes": []string{
		"title",
		"description",
		"mainIngredients",
		"unordered(ingredients.item)",
		"unordered(searchKeywords)",
		"category",
	},
	"attributesForFaceting": []string{
		"searchable(category)",
		"afterDistinct(searchable(dietaryTags))",
		"afterDistinct(searchable(difficulty))",
		"searchable(mainIngredients)",
		"totalTime",
		"calories",
	},
	"customRanking": []string{
		"desc(views)",
	},
	"attributesToRetrieve": []string{
		"objectID", "title", "description", "imageUrl", "imageHint",
		"category", "dietaryTags", "totalTime", "calories",
		"mainIngredients", "difficulty", "views",
	},
	"attributesToHighlight": []string{"title", "description", "mainIngredients"},
	"hitsPerPage":           20,
}

// NewClient 建立搜尋索引客戶端
func NewClient(cfg config.AlgoliaConfig) *Client {
	if !cfg.Enabled() {
		return &Client{enabled: false}
	}

	client := resty.New().
		SetBaseURL(fmt.Sprintf("https://%s.algolia.net", cfg.AppID)).
		SetHeader("X-Algolia-Application-Id", cfg.AppID).
		SetHeader("X-Algolia-API-Key", cfg.AdminKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:      client,
		indexName: cfg.IndexName,
		enabled:   true,
	}
}

// Enabled 是否已設定搜尋索引
func (c *Client) Enabled() bool {
	return c.enabled
}

// SaveObject 寫入或覆蓋單筆索引紀錄
func (c *Client) SaveObject(ctx context.Context, record Record) error {
	if !c.enabled {
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(record).
		Put(fmt.Sprintf("/1/indexes/%s/%s", url.PathEscape(c.indexName), url.PathEscape(record.ObjectID)))
	if err != nil {
		return fmt.Errorf("failed to save object: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("search index returned error (status %d): %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// SaveObjects 批次寫入索引紀錄
func (c *Client) SaveObjects(ctx context.Context, records []Record) error {
	if !c.enabled || len(records) == 0 {
		return nil
	}

	type batchRequest struct {
		Action string `json:"action"`
		Body   Record `json:"body"`
	}
	requests := make([]batchRequest, 0, len(records))
	for _, r := range records {
		requests = append(requests, batchRequest{Action: "updateObject", Body: r})
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"requests": requests}).
		Post(fmt.Sprintf("/1/indexes/%s/batch", url.PathEscape(c.indexName)))
	if err != nil {
		return fmt.Errorf("failed to save objects: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("search index returned error (status %d): %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// DeleteObject 刪除索引紀錄
func (c *Client) DeleteObject(ctx context.Context, objectID string) error {
	if !c.enabled {
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/1/indexes/%s/%s", url.PathEscape(c.indexName), url.PathEscape(objectID)))
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("search index returned error (status %d): %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// SetSettings 套用索引設定
func (c *Client) SetSettings(ctx context.Context) error {
	if !c.enabled {
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(indexSettings).
		Put(fmt.Sprintf("/1/indexes/%s/settings", url.PathEscape(c.indexName)))
	if err != nil {
		return fmt.Errorf("failed to set index settings: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("search index returned error (status %d): %s", resp.StatusCode(), resp.String())
	}
	return nil
}
