package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLineFullPattern(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want IngredientLine
	}{
		{"integer quantity", "2 cups flour", IngredientLine{"2", "cups", "flour"}},
		{"fraction quantity", "1/2 tsp salt", IngredientLine{"1/2", "tsp", "salt"}},
		{"decimal quantity", "1.5 kg chicken", IngredientLine{"1.5", "kg", "chicken"}},
		{"range quantity", "1-2 tbsp olive oil", IngredientLine{"1-2", "tbsp", "olive oil"}},
		{"mixed fraction", "1 1/2 cups rice", IngredientLine{"1 1/2", "cups", "rice"}},
		{"cloves unit", "2 cloves garlic", IngredientLine{"2", "cloves", "garlic"}},
		{"size word as unit", "1 large onion", IngredientLine{"1", "large", "onion"}},
		{"case insensitive unit", "3 TBSP soy sauce", IngredientLine{"3", "TBSP", "soy sauce"}},
		{"multi word item", "2 slices sourdough bread", IngredientLine{"2", "slices", "sourdough bread"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLine(tt.in))
		})
	}
}

func TestParseLineQuantityOnly(t *testing.T) {
	// 第一個 token 不是單位，整段落回 item
	got := ParseLine("2 eggs")
	assert.Equal(t, IngredientLine{Item: "2 eggs"}, got)

	// 數量加單位但沒有後續文字
	got = ParseLine("2 cups")
	assert.Equal(t, IngredientLine{Quantity: "2", Unit: "cups", Item: "cups"}, got)
}

func TestParseLineFallback(t *testing.T) {
	tests := []struct {
		in   string
		want IngredientLine
	}{
		{"salt", IngredientLine{Item: "salt"}},
		{"freshly ground black pepper", IngredientLine{Item: "freshly ground black pepper"}},
		{"a pinch of saffron", IngredientLine{Item: "a pinch of saffron"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLine(tt.in))
	}
}

func TestParseLineBulletMarkers(t *testing.T) {
	assert.Equal(t, IngredientLine{"2", "cups", "flour"}, ParseLine("- 2 cups flour"))
	assert.Equal(t, IngredientLine{"2", "cups", "flour"}, ParseLine("• 2 cups flour"))
	assert.Equal(t, IngredientLine{Item: "salt"}, ParseLine("* salt"))
}

func TestParseLineNeverFails(t *testing.T) {
	assert.Equal(t, IngredientLine{}, ParseLine(""))
	assert.Equal(t, IngredientLine{}, ParseLine("   "))
	assert.NotPanics(t, func() { ParseLine("///---///") })
}

func TestParseLineRoundTrip(t *testing.T) {
	// 有單位的行經過 String() 重組後再解析必須得到相同結果
	inputs := []string{
		"2 cups flour",
		"1/2 tsp salt",
		"1-2 tbsp olive oil",
		"2 cloves garlic",
		"500 g ground beef",
	}
	for _, in := range inputs {
		first := ParseLine(in)
		second := ParseLine(first.String())
		assert.Equal(t, first, second, "round trip for %q", in)
	}
}
