package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRawText(t *testing.T) {
	got := Normalize(RawIngredients("2 cups flour, 1 tsp salt, pepper"))
	require.Len(t, got, 3)
	assert.Equal(t, IngredientLine{"2", "cups", "flour"}, got[0])
	assert.Equal(t, IngredientLine{"1", "tsp", "salt"}, got[1])
	assert.Equal(t, IngredientLine{Item: "pepper"}, got[2])
}

func TestNormalizeIdempotent(t *testing.T) {
	first := Normalize(RawIngredients("2 cups flour, 1 tsp salt, pepper"))
	second := Normalize(StructuredIngredients(first))
	assert.Equal(t, first, second)
}

func TestNormalizeStructuredPassThrough(t *testing.T) {
	in := []IngredientLine{
		{"2", "cups", "flour"},
		{"", "", "pepper"},
	}
	assert.Equal(t, in, Normalize(StructuredIngredients(in)))
}

func TestNormalizeSingleEntryWithCommas(t *testing.T) {
	// 整串食材被塞進單一 item 的舊資料要重新拆解
	in := []IngredientLine{{Item: "2 cups flour, 1 tsp salt, pepper"}}
	got := Normalize(StructuredIngredients(in))
	require.Len(t, got, 3)
	assert.Equal(t, "flour", got[0].Item)
	assert.Equal(t, "salt", got[1].Item)
	assert.Equal(t, "pepper", got[2].Item)
}

func TestNormalizeSingleEntryWithoutComma(t *testing.T) {
	in := []IngredientLine{{Quantity: "2", Unit: "cups", Item: "flour"}}
	assert.Equal(t, in, Normalize(StructuredIngredients(in)))
}

func TestNormalizeDropsEmptyEntries(t *testing.T) {
	got := Normalize(RawIngredients("flour, , ,salt,"))
	require.Len(t, got, 2)
	assert.Equal(t, "flour", got[0].Item)
	assert.Equal(t, "salt", got[1].Item)
}

func TestNormalizeStructuredDropsOnlyEmptyItems(t *testing.T) {
	in := []IngredientLine{
		{Quantity: "2", Unit: "cups", Item: "flour"},
		{Quantity: "1", Unit: "tsp", Item: ""},
		{Quantity: "", Unit: "", Item: "pepper"},
	}
	got := Normalize(StructuredIngredients(in))

	// 只丟棄 item 為空的那一項，其餘保留
	require.Len(t, got, 2)
	assert.Equal(t, IngredientLine{Quantity: "2", Unit: "cups", Item: "flour"}, got[0])
	assert.Equal(t, IngredientLine{Quantity: "", Unit: "", Item: "pepper"}, got[1])
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(RawIngredients("")))
	assert.Empty(t, Normalize(RawIngredients("   ")))
	assert.Empty(t, Normalize(IngredientsInput{}))
}

func TestNormalizePreservesOrder(t *testing.T) {
	got := Normalize(RawIngredients("chicken, rice, broccoli, soy sauce"))
	require.Len(t, got, 4)
	items := make([]string, len(got))
	for i, l := range got {
		items[i] = l.Item
	}
	assert.Equal(t, []string{"chicken", "rice", "broccoli", "soy sauce"}, items)
}

func TestIngredientsInputUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, in IngredientsInput)
	}{
		{
			"plain string",
			`"2 cups flour, salt"`,
			func(t *testing.T, in IngredientsInput) {
				assert.Equal(t, "2 cups flour, salt", in.Raw)
				assert.Nil(t, in.Structured)
			},
		},
		{
			"string array joins with commas",
			`["2 cups flour", "salt"]`,
			func(t *testing.T, in IngredientsInput) {
				assert.Equal(t, "2 cups flour, salt", in.Raw)
				assert.Nil(t, in.Structured)
			},
		},
		{
			"structured list",
			`[{"quantity":"2","unit":"cups","item":"flour"}]`,
			func(t *testing.T, in IngredientsInput) {
				assert.Equal(t, []IngredientLine{{"2", "cups", "flour"}}, in.Structured)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in IngredientsInput
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &in))
			tt.check(t, in)
		})
	}
}
