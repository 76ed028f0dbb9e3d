package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recipeService "recipe-catalog/internal/core/recipe"
	searchService "recipe-catalog/internal/core/search"
	"recipe-catalog/internal/infrastructure/config"
)

type stubStore struct {
	recipes []recipeService.Recipe
}

func (s *stubStore) List(ctx context.Context, f recipeService.ListFilter) ([]recipeService.Recipe, int, error) {
	return s.recipes, len(s.recipes), nil
}
func (s *stubStore) Featured(ctx context.Context, limit int) ([]recipeService.Recipe, error) {
	return s.recipes, nil
}
func (s *stubStore) Get(ctx context.Context, id string) (*recipeService.Recipe, error) {
	return nil, nil
}
func (s *stubStore) GetAndCountView(ctx context.Context, id string) (*recipeService.Recipe, error) {
	return nil, nil
}
func (s *stubStore) Create(ctx context.Context, r *recipeService.Recipe) error { return nil }
func (s *stubStore) Replace(ctx context.Context, id string, r *recipeService.Recipe) (*recipeService.Recipe, error) {
	return nil, nil
}
func (s *stubStore) Delete(ctx context.Context, id string) (bool, error) { return false, nil }
func (s *stubStore) All(ctx context.Context) ([]recipeService.Recipe, error) {
	return s.recipes, nil
}
func (s *stubStore) Count(ctx context.Context) (int, error) { return len(s.recipes), nil }

type stubIndexer struct{}

func (stubIndexer) EnqueueSave(r *recipeService.Recipe) {}
func (stubIndexer) EnqueueDelete(id string)             {}

func newRouter(st *stubStore) (*gin.Engine, *searchService.Syncer) {
	gin.SetMode(gin.TestMode)

	// 未設定憑證，索引停用
	syncer := searchService.NewSyncer(
		searchService.NewClient(config.AlgoliaConfig{}),
		config.SyncConfig{QueueSize: 8, BatchSize: 100},
	)

	svc := recipeService.NewService(st, stubIndexer{})
	h := NewHandler(svc, syncer, st)

	r := gin.New()
	r.POST("/api/search/ingredients", h.HandleIngredientSearch)
	r.POST("/api/sync-algolia", h.HandleSyncAll)
	return r, syncer
}

func doRequest(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleIngredientSearch(t *testing.T) {
	st := &stubStore{recipes: []recipeService.Recipe{
		{ID: "a", Title: "Chicken Rice", MainIngredients: []string{"chicken", "rice"}},
		{ID: "b", Title: "Beef Stew", MainIngredients: []string{"beef", "potato"}},
	}}
	r, syncer := newRouter(st)
	defer syncer.Close()

	w := doRequest(r, "/api/search/ingredients", `{"ingredients": ["chicken", "rice"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Recipes             []recipeService.ScoredRecipe `json:"recipes"`
			Count               int                          `json:"count"`
			SearchedIngredients []string                     `json:"searchedIngredients"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Data.Count)
	require.Len(t, resp.Data.Recipes, 1)
	assert.Equal(t, "Chicken Rice", resp.Data.Recipes[0].Title)
	assert.Equal(t, 2, resp.Data.Recipes[0].MatchScore)
	assert.Equal(t, []string{"chicken", "rice"}, resp.Data.SearchedIngredients)
}

func TestHandleIngredientSearchAcceptsCommaString(t *testing.T) {
	st := &stubStore{recipes: []recipeService.Recipe{
		{ID: "a", Title: "Chicken Rice", MainIngredients: []string{"chicken", "rice"}},
	}}
	r, syncer := newRouter(st)
	defer syncer.Close()

	w := doRequest(r, "/api/search/ingredients", `{"ingredients": "chicken, rice"}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandleIngredientSearchRequiresIngredients(t *testing.T) {
	r, syncer := newRouter(&stubStore{})
	defer syncer.Close()

	w := doRequest(r, "/api/search/ingredients", `{"ingredients": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSyncAllDisabled(t *testing.T) {
	r, syncer := newRouter(&stubStore{})
	defer syncer.Close()

	w := doRequest(r, "/api/sync-algolia", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
