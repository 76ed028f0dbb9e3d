package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recipe-catalog/internal/core/recipe"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "chicken rice", "chicken rice"},
		{"percent", "100% juice", `100\% juice`},
		{"underscore", "egg_noodles", `egg\_noodles`},
		{"backslash", `a\b`, `a\\b`},
		{"mixed", `50%_off\`, `50\%\_off\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.input))
		})
	}
}

func TestSearchText(t *testing.T) {
	r := &recipe.Recipe{
		Title:           "Garlic Noodles",
		Description:     "Quick dinner",
		SearchKeywords:  []string{"garlic", "noodles"},
		MainIngredients: []string{"Garlic", "Egg Noodles"},
	}
	assert.Equal(t, "garlic noodles quick dinner garlic noodles garlic egg noodles", searchText(r))
}
