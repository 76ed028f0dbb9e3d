package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"recipe-catalog/internal/core/search"
	"recipe-catalog/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// Pinger 就緒檢查用的資料庫探針
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Sync      *search.SyncStats      `json:"sync,omitempty"`
}

// Handler 健康檢查處理器
type Handler struct {
	cfg    *config.Config
	db     Pinger
	syncer *search.Syncer
}

// NewHandler 創建健康檢查處理器
func NewHandler(cfg *config.Config, db Pinger, syncer *search.Syncer) *Handler {
	return &Handler{cfg: cfg, db: db, syncer: syncer}
}

// HealthCheck 健康檢查，回報版本與運行時資訊
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if h.syncer != nil {
		stats := h.syncer.Stats()
		response.Sync = &stats
	}

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查，資料庫連不上時回 503
func (h *Handler) ReadinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
