package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aiService "recipe-catalog/internal/core/ai"
	recipeService "recipe-catalog/internal/core/recipe"
)

const discoveryJSON = `{
	"recipeName": "Garlic Butter Chicken",
	"ingredients": "2 lb chicken thighs, 4 cloves garlic, 2 tbsp butter",
	"instructions": "1. Season the chicken.\n2. Sear until golden.\n3. Add garlic and butter.",
	"reasoning": "Quick weeknight dish using the given ingredients.",
	"imageUrl": "garlic butter chicken",
	"nutritionalInfo": {"calories": 520, "protein": 42, "carbs": 4, "fat": 36, "fiber": 1, "sodium": 480},
	"cookingDetails": {"prepTime": 10, "cookTime": 25, "totalTime": 35, "servings": 4, "difficulty": "easy"},
	"cookingTips": ["Pat the chicken dry before searing."],
	"warnings": ["Cook chicken to 165F internal temperature."],
	"variations": [],
	"equipment": ["skillet"],
	"storageInfo": "Refrigerate up to 3 days.",
	"flavorProfile": "Rich and garlicky."
}`

type fakeProvider struct {
	response string
	err      error
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return p.response, p.err
}

func (p *fakeProvider) Model() string { return "fake-model" }
func (p *fakeProvider) Close() error  { return nil }

type fakeSearcher struct{}

func (fakeSearcher) RecipeImage(ctx context.Context, keywords string) string {
	return "https://images.example.com/" + strings.ReplaceAll(keywords, " ", "-")
}

type stubStore struct {
	created []*recipeService.Recipe
	err     error
}

func (s *stubStore) List(ctx context.Context, f recipeService.ListFilter) ([]recipeService.Recipe, int, error) {
	return nil, 0, nil
}
func (s *stubStore) Featured(ctx context.Context, limit int) ([]recipeService.Recipe, error) {
	return nil, nil
}
func (s *stubStore) Get(ctx context.Context, id string) (*recipeService.Recipe, error) {
	return nil, nil
}
func (s *stubStore) GetAndCountView(ctx context.Context, id string) (*recipeService.Recipe, error) {
	return nil, nil
}
func (s *stubStore) Create(ctx context.Context, r *recipeService.Recipe) error {
	if s.err != nil {
		return s.err
	}
	r.ID = "draft-id"
	s.created = append(s.created, r)
	return nil
}
func (s *stubStore) Replace(ctx context.Context, id string, r *recipeService.Recipe) (*recipeService.Recipe, error) {
	return nil, nil
}
func (s *stubStore) Delete(ctx context.Context, id string) (bool, error) { return false, nil }
func (s *stubStore) All(ctx context.Context) ([]recipeService.Recipe, error) {
	return nil, nil
}
func (s *stubStore) Count(ctx context.Context) (int, error) { return 0, nil }

type stubIndexer struct{}

func (stubIndexer) EnqueueSave(r *recipeService.Recipe) {}
func (stubIndexer) EnqueueDelete(id string)             {}

func newRouter(p *fakeProvider, st *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := aiService.NewService(p, nil)
	recipes := recipeService.NewService(st, stubIndexer{})
	assembler := recipeService.NewAssembler(fakeSearcher{})

	h := NewHandler(svc, assembler, recipes)
	r := gin.New()
	r.POST("/api/discover", h.HandleDiscover)
	r.POST("/api/assistant", h.HandleAssistant)
	return r
}

func doRequest(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleDiscoverReturnsStructuredRecipe(t *testing.T) {
	st := &stubStore{}
	r := newRouter(&fakeProvider{response: discoveryJSON}, st)

	body := `{"ingredients": "chicken, garlic, butter", "dietaryRestrictions": "", "timeLimit": "30 minutes"}`
	w := doRequest(r, "/api/discover", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Recipe recipeService.Recipe `json:"recipe"`
			Saved  bool                 `json:"saved"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.True(t, resp.Data.Saved)
	assert.Equal(t, "Garlic Butter Chicken", resp.Data.Recipe.Title)
	assert.Equal(t, "https://images.example.com/garlic-butter-chicken", resp.Data.Recipe.ImageURL)
	require.Len(t, resp.Data.Recipe.Ingredients, 3)
	assert.Equal(t, []string{
		"Season the chicken.",
		"Sear until golden.",
		"Add garlic and butter.",
	}, resp.Data.Recipe.Instructions)
	require.Len(t, st.created, 1)
}

func TestHandleDiscoverReturnsDraftWhenStoreFails(t *testing.T) {
	st := &stubStore{err: fmt.Errorf("connection refused")}
	r := newRouter(&fakeProvider{response: discoveryJSON}, st)

	body := `{"ingredients": "chicken, garlic, butter"}`
	w := doRequest(r, "/api/discover", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Recipe recipeService.Recipe `json:"recipe"`
			Saved  bool                 `json:"saved"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Saved)
	assert.Equal(t, "Garlic Butter Chicken", resp.Data.Recipe.Title)
}

func TestHandleDiscoverProviderFailure(t *testing.T) {
	r := newRouter(&fakeProvider{err: fmt.Errorf("upstream unavailable")}, &stubStore{})

	w := doRequest(r, "/api/discover", `{"ingredients": "chicken"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "upstream unavailable")
}

func TestHandleDiscoverRequiresIngredients(t *testing.T) {
	r := newRouter(&fakeProvider{response: discoveryJSON}, &stubStore{})

	w := doRequest(r, "/api/discover", `{"timeLimit": "30 minutes"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAssistantStripsMarkdown(t *testing.T) {
	p := &fakeProvider{response: "Try **smoked paprika** instead of sweet paprika."}
	r := newRouter(p, &stubStore{})

	body := `{
		"recipeName": "Paprika Chicken",
		"ingredients": "chicken, paprika",
		"instructions": "Season and roast."
	}`
	w := doRequest(r, "/api/assistant", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data aiService.AssistantResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Try smoked paprika instead of sweet paprika.", resp.Data.Suggestions)
}

func TestHandleAssistantRequiresRecipe(t *testing.T) {
	r := newRouter(&fakeProvider{}, &stubStore{})

	w := doRequest(r, "/api/assistant", `{"recipeName": "Paprika Chicken"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
