package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-catalog/internal/pkg/common"
)

type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) Model() string { return "fake-model" }
func (f *fakeProvider) Close() error  { return nil }

type fakeCache struct {
	store map[string]string
}

func (f *fakeCache) Get(ctx context.Context, prompt string) (string, error) {
	if v, ok := f.store[prompt]; ok {
		return v, nil
	}
	return "", common.ErrCacheMiss
}

func (f *fakeCache) Set(ctx context.Context, prompt, value string) error {
	f.store[prompt] = value
	return nil
}

func (f *fakeCache) Close() error { return nil }

const discoveryJSON = `{
	"recipeName": "Garlic Butter Chicken",
	"ingredients": "2 lb chicken thighs, 4 cloves garlic, 2 tbsp butter",
	"instructions": "1. Season the chicken.\n2. Sear until golden.\n3. Add garlic and butter.",
	"reasoning": "Quick weeknight dinner from the given ingredients.",
	"imageUrl": "garlic butter chicken",
	"nutritionalInfo": {"calories": 520, "protein": 42, "carbs": 4, "fat": 36, "fiber": 1, "sodium": 600},
	"cookingDetails": {"prepTime": 10, "cookTime": 25, "totalTime": 35, "servings": 4, "difficulty": "easy"},
	"cookingTips": ["Pat the chicken dry before searing."],
	"warnings": ["Cook chicken to 165F internal temperature."],
	"variations": ["Swap thighs for breasts."],
	"equipment": ["Cast iron skillet"],
	"storageInfo": "Refrigerate up to 3 days.",
	"flavorProfile": "Rich, savory, and garlicky."
}`

func TestDiscoverParsesModelOutput(t *testing.T) {
	p := &fakeProvider{response: discoveryJSON}
	svc := NewService(p, nil)

	result, err := svc.Discover(context.Background(), DiscoveryRequest{Ingredients: "chicken, garlic, butter"})
	require.NoError(t, err)

	assert.Equal(t, "Garlic Butter Chicken", result.RecipeName)
	assert.Equal(t, "garlic butter chicken", result.ImageKeywords)
	assert.Equal(t, 35, result.CookingDetails.TotalTime)
	assert.Equal(t, float64(520), result.NutritionalInfo.Calories)
	assert.Len(t, result.Warnings, 1)
}

func TestDiscoverStripsMarkdownFences(t *testing.T) {
	p := &fakeProvider{response: "```json\n" + discoveryJSON + "\n```"}
	svc := NewService(p, nil)

	result, err := svc.Discover(context.Background(), DiscoveryRequest{Ingredients: "chicken"})
	require.NoError(t, err)
	assert.Equal(t, "Garlic Butter Chicken", result.RecipeName)
}

func TestDiscoverAppliesDefaults(t *testing.T) {
	p := &fakeProvider{response: `{"recipeName": "Mystery Stew", "ingredients": "beef", "instructions": "Simmer."}`}
	svc := NewService(p, nil)

	result, err := svc.Discover(context.Background(), DiscoveryRequest{Ingredients: "beef"})
	require.NoError(t, err)

	assert.Equal(t, 15, result.CookingDetails.PrepTime)
	assert.Equal(t, 15, result.CookingDetails.CookTime)
	assert.Equal(t, 30, result.CookingDetails.TotalTime)
	assert.Equal(t, 4, result.CookingDetails.Servings)
	assert.Equal(t, "medium", result.CookingDetails.Difficulty)
	assert.Equal(t, float64(400), result.NutritionalInfo.Calories)
	assert.Equal(t, float64(20), result.NutritionalInfo.Protein)
	assert.NotNil(t, result.CookingTips)
	assert.NotNil(t, result.Equipment)
}

func TestDiscoverRejectsNonJSONOutput(t *testing.T) {
	p := &fakeProvider{response: "Sorry, I cannot help with that."}
	svc := NewService(p, nil)

	_, err := svc.Discover(context.Background(), DiscoveryRequest{Ingredients: "beef"})
	assert.Error(t, err)
}

func TestGenerateUsesCache(t *testing.T) {
	p := &fakeProvider{response: "hello"}
	c := &fakeCache{store: map[string]string{}}
	svc := NewService(p, c)

	first, err := svc.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), "prompt")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.calls)
}
