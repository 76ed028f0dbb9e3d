package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentNumberedNewlines(t *testing.T) {
	got := Segment(RawInstructions("1. Heat oil.\n2. Add garlic.\n3. Serve."))
	assert.Equal(t, []string{"Heat oil.", "Add garlic.", "Serve."}, got)
}

func TestSegmentPlainNewlines(t *testing.T) {
	got := Segment(RawInstructions("Boil the pasta.\n\nDrain and toss with sauce."))
	assert.Equal(t, []string{"Boil the pasta.", "Drain and toss with sauce."}, got)
}

func TestSegmentEmbeddedNumbers(t *testing.T) {
	// 編號黏在前一句句尾，沒有換行
	got := Segment(RawInstructions("Heat the oil until hot.2. Add garlic. 3. Serve immediately."))
	require.Len(t, got, 3)
	assert.Equal(t, "Heat the oil until hot", got[0])
	assert.Equal(t, "Add garlic.", got[1])
	assert.Equal(t, "Serve immediately.", got[2])
}

func TestSegmentActionVerbs(t *testing.T) {
	got := Segment(RawInstructions("Heat the oil until hot. Add the garlic and sauté. Season and serve."))
	require.Len(t, got, 3)
	assert.Equal(t, "Heat the oil until hot.", got[0])
	assert.Equal(t, "Add the garlic and sauté.", got[1])
	assert.Equal(t, "Season and serve.", got[2])
	for _, step := range got {
		assert.True(t, len(step) > 0 && step[len(step)-1] == '.')
	}
}

func TestSegmentGenericSentences(t *testing.T) {
	// 沒有料理動詞開頭，退到一般句子切割，需多於兩段才接受
	got := Segment(RawInstructions("First prepare everything. Then the work begins. Finally you rest."))
	require.Len(t, got, 3)
	assert.Equal(t, "First prepare everything.", got[0])
}

func TestSegmentSingleStepFallback(t *testing.T) {
	got := Segment(RawInstructions("Microwave on high for two minutes."))
	assert.Equal(t, []string{"Microwave on high for two minutes."}, got)
}

func TestSegmentArrayInput(t *testing.T) {
	in := InstructionsInput{Steps: []string{"1. Heat oil.", "2. **Add garlic.**", ""}}
	got := Segment(in)
	assert.Equal(t, []string{"Heat oil.", "Add garlic."}, got)
}

func TestSegmentSingleElementArray(t *testing.T) {
	// 單一元素的陣列視為整串文字再切割
	in := InstructionsInput{Steps: []string{"1. Heat oil.\n2. Serve."}}
	got := Segment(in)
	assert.Equal(t, []string{"Heat oil.", "Serve."}, got)
}

func TestSegmentStripsMarkdown(t *testing.T) {
	got := Segment(RawInstructions("**Preheat** the oven.\nBake for *20 minutes*."))
	assert.Equal(t, []string{"Preheat the oven.", "Bake for 20 minutes."}, got)
}

func TestSegmentEmptyInput(t *testing.T) {
	assert.Empty(t, Segment(RawInstructions("")))
	assert.Empty(t, Segment(RawInstructions("   ")))
	assert.NotPanics(t, func() { Segment(InstructionsInput{}) })
}

func TestInstructionsInputUnmarshal(t *testing.T) {
	var in InstructionsInput
	require.NoError(t, json.Unmarshal([]byte(`["Heat oil.", "Serve."]`), &in))
	assert.Equal(t, []string{"Heat oil.", "Serve."}, in.Steps)

	require.NoError(t, json.Unmarshal([]byte(`"Heat oil. Serve."`), &in))
	assert.Equal(t, "Heat oil. Serve.", in.Raw)
	assert.Nil(t, in.Steps)
}
