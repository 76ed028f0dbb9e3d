package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-catalog/internal/infrastructure/config"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func newRouter(p Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.App.Version = "1.0.0"

	h := NewHandler(cfg, p, nil)
	r := gin.New()
	r.GET("/health", h.HealthCheck)
	r.GET("/ready", h.ReadinessCheck)
	r.GET("/live", h.LivenessCheck)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	w := get(newRouter(stubPinger{}), "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
}

func TestReadinessCheck(t *testing.T) {
	w := get(newRouter(stubPinger{}), "/ready")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(newRouter(stubPinger{err: fmt.Errorf("dial tcp: refused")}), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLivenessCheck(t *testing.T) {
	w := get(newRouter(stubPinger{}), "/live")
	assert.Equal(t, http.StatusOK, w.Code)
}
