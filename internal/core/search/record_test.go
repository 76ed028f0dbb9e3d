package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"recipe-catalog/internal/core/pipeline"
	"recipe-catalog/internal/core/recipe"
)

func TestFromRecipe(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := &recipe.Recipe{
		ID:              "abc-123",
		Title:           "Green Detox Smoothie",
		Description:     "A refreshing blend.",
		Category:        "Smoothie",
		DietaryTags:     []string{"vegan"},
		PrepTime:        5,
		TotalTime:       5,
		Servings:        2,
		Difficulty:      recipe.DifficultyEasy,
		Calories:        120,
		Ingredients:     []pipeline.IngredientLine{{Quantity: "2", Unit: "cups", Item: "spinach"}},
		Instructions:    []string{"Blend everything."},
		MainIngredients: []string{"spinach"},
		SearchKeywords:  []string{"green", "detox"},
		Source:          recipe.SourceCurated,
		Views:           7,
		CreatedAt:       created,
	}

	rec := FromRecipe(r)

	assert.Equal(t, "abc-123", rec.ObjectID)
	assert.Equal(t, "Green Detox Smoothie", rec.Title)
	assert.Equal(t, []string{"vegan"}, rec.DietaryTags)
	assert.Equal(t, 7, rec.Views)
	assert.Equal(t, created, rec.CreatedAt)
	assert.Equal(t, r.Ingredients, rec.Ingredients)
}

func TestFromRecipeEmptySlices(t *testing.T) {
	// 索引端期待陣列而非 null
	rec := FromRecipe(&recipe.Recipe{ID: "x"})
	assert.NotNil(t, rec.DietaryTags)
	assert.NotNil(t, rec.MainIngredients)
	assert.NotNil(t, rec.SearchKeywords)
	assert.NotNil(t, rec.HealthBenefits)
}
