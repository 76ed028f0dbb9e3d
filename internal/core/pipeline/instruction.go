package pipeline

import (
	"encoding/json"
	"regexp"
	"strings"
)

// InstructionsInput 步驟欄位的標記聯集：整串文字或字串陣列，
// 與 IngredientsInput 同樣只在邊界判定一次。
type InstructionsInput struct {
	Raw   string
	Steps []string
}

// UnmarshalJSON 先試字串陣列，再試單一字串
func (in *InstructionsInput) UnmarshalJSON(data []byte) error {
	var steps []string
	if err := json.Unmarshal(data, &steps); err == nil {
		in.Steps = steps
		in.Raw = ""
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	in.Raw = raw
	in.Steps = nil
	return nil
}

// MarshalJSON 陣列優先，否則輸出原始字串
func (in InstructionsInput) MarshalJSON() ([]byte, error) {
	if len(in.Steps) > 0 {
		return json.Marshal(in.Steps)
	}
	return json.Marshal(in.Raw)
}

// RawInstructions 以原始文字建立輸入
func RawInstructions(text string) InstructionsInput {
	return InstructionsInput{Raw: text}
}

var (
	// 行首的編號標記："1. "、"2) "
	leadingOrdinalPattern = regexp.MustCompile(`^\d+[\.\)]\s+`)

	// 連續換行
	newlinePattern = regexp.MustCompile(`\n+`)

	// 內嵌編號的步驟邊界：".2. "、" 3. "，能抓到
	// "...until hot.2. Add garlic" 這種黏在句尾的編號
	embeddedNumberPattern = regexp.MustCompile(`[\.\s]\d+\.\s+`)

	// 任意位置的編號標記，用來模擬 lookahead 切割
	ordinalAnywherePattern = regexp.MustCompile(`\d+[\.\)]\s+`)

	// 句點邊界
	sentenceBoundaryPattern = regexp.MustCompile(`\.\s+`)

	// 料理動詞開頭的句子，後面緊跟大寫或空白
	actionVerbPattern = regexp.MustCompile(`^(?:Heat|Add|Mix|Stir|Cook|Bake|Pour|Place|Remove|Combine|Whisk|Fold|Serve|Garnish|Season|Chop|Cut|Slice|Preheat|Transfer|Bring|Reduce|Simmer|Boil|Fry|Sauté|Roast|Grill|Blend|Drain|Rinse|Pat|Sprinkle|Drizzle|Toss|Let|Allow|Set|Cover|Uncover)[A-Z\s]`)

	// 大寫字母開頭
	capitalPattern = regexp.MustCompile(`^[A-Z]`)
)

// Segment 把自由文字的料理步驟切成有序的步驟列表。
//
// 逐層嘗試固定順序的切割策略，第一個產生多於一個步驟的策略勝出
// （最後一層無條件接受），策略之間不互相組合。輸出已去除行首編號
// 與 markdown 標記，順序即烹飪順序。
func Segment(in InstructionsInput) []string {
	// 已是多步驟陣列：逐項清理後直接採用
	if len(in.Steps) > 1 {
		cleaned := make([]string, 0, len(in.Steps))
		for _, step := range in.Steps {
			s := stripOrdinal(StripMarkdown(step))
			if s != "" {
				cleaned = append(cleaned, s)
			}
		}
		if len(cleaned) > 0 {
			return cleaned
		}
	}

	text := in.Raw
	if len(in.Steps) > 0 {
		// 單一元素的陣列視為一整串文字
		text = in.Steps[0]
	}
	return segmentText(text)
}

// segmentText 對一整串文字執行切割 cascade
func segmentText(text string) []string {
	text = StripMarkdown(text)
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	// 第一層：換行切割（AI 回應最常見的形狀）
	if steps := splitNonEmpty(newlinePattern.Split(text, -1)); len(steps) > 1 {
		return stripOrdinals(steps)
	}

	// 第二層：內嵌編號切割
	if steps := splitEmbeddedNumbers(text); len(steps) > 0 {
		return steps
	}

	// 第三層：行首編號切割（編號只出現在句子開頭的文字）
	if steps := splitBefore(text, ordinalAnywherePattern); len(steps) > 1 {
		return stripOrdinals(steps)
	}

	// 第四層：料理動詞開頭的句子邊界
	if steps := splitSentences(text, actionVerbPattern); len(steps) > 1 {
		return steps
	}

	// 第五層：一般句子邊界，要求多於兩段以避免縮寫誤切
	if steps := splitSentences(text, capitalPattern); len(steps) > 2 {
		return steps
	}

	// 沒有明確分段，整串文字當成單一步驟
	return []string{strings.TrimSpace(text)}
}

// splitEmbeddedNumbers 以 ".N. " 邊界切段，邊界前的開頭殘句
// 保留為第一個未編號步驟
func splitEmbeddedNumbers(text string) []string {
	locs := embeddedNumberPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	steps := make([]string, 0, len(locs)+1)
	for i, loc := range locs {
		if i == 0 {
			if first := strings.TrimSpace(text[:loc[0]]); first != "" {
				steps = append(steps, stripOrdinal(first))
			}
		}
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if content := strings.TrimSpace(text[loc[1]:end]); content != "" {
			steps = append(steps, content)
		}
	}
	return steps
}

// splitBefore 在每個 pattern 命中處之前切割（等價於 lookahead split）
func splitBefore(text string, re *regexp.Regexp) []string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	var segments []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			segments = append(segments, text[prev:loc[0]])
		}
		prev = loc[0]
	}
	segments = append(segments, text[prev:])
	return splitNonEmpty(segments)
}

// splitSentences 在 ". " 邊界切割，但只在下一句符合 startPattern
// 時才切；句點留在前一段，缺句點的段落補回
func splitSentences(text string, startPattern *regexp.Regexp) []string {
	locs := sentenceBoundaryPattern.FindAllStringIndex(text, -1)

	var steps []string
	prev := 0
	for _, loc := range locs {
		if !startPattern.MatchString(text[loc[1]:]) {
			continue
		}
		if seg := strings.TrimSpace(text[prev:loc[0]]); seg != "" {
			steps = append(steps, ensurePeriod(seg))
		}
		prev = loc[1]
	}
	if seg := strings.TrimSpace(text[prev:]); seg != "" {
		steps = append(steps, ensurePeriod(seg))
	}
	return steps
}

func ensurePeriod(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

func stripOrdinal(s string) string {
	return strings.TrimSpace(leadingOrdinalPattern.ReplaceAllString(strings.TrimSpace(s), ""))
}

func stripOrdinals(steps []string) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		if cleaned := stripOrdinal(s); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func splitNonEmpty(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
