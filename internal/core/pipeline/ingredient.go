package pipeline

import (
	"regexp"
	"strings"
)

// IngredientLine 單行食材的結構化結果。Quantity 保留原文寫法
// （"1/2"、"1-2"、"1 1/2" 都不轉成數值），顯示時才不會失真。
type IngredientLine struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Item     string `json:"item"`
}

// 固定單位詞彙表。單位只支援單一 token，複合單位（"fluid ounce"）
// 不在支援範圍。
const unitVocabulary = `large|medium|small|cup|cups|tbsp|tsp|teaspoons?|tablespoons?|g|grams?|kg|ml|l|liter|lb|pounds?|oz|ounces?|packet|packets|slice|slices|inch|inches|cloves?`

var (
	// 完整 pattern："<數量> <單位> <食材>"
	fullLinePattern = regexp.MustCompile(`(?i)^([\d/\-]+(?:\.\d+)?(?:\s+\d+/\d+)?)\s+(` + unitVocabulary + `)\s+(.+)$`)

	// 只有數量的 pattern："<數量> <其餘文字>"
	quantityPattern = regexp.MustCompile(`(?i)^([\d/\-]+(?:\.\d+)?(?:\s+\d+/\d+)?)\s+(.+)$`)

	// 單位 token 的完整比對
	unitTokenPattern = regexp.MustCompile(`(?i)^(` + unitVocabulary + `)$`)

	// 行首的清單符號
	bulletPattern = regexp.MustCompile(`^[-•*]\s*`)
)

// ParseLine 將一行自由文字食材解析為 {quantity, unit, item}。
// 依序嘗試三層 pattern，第一個命中的勝出；任何輸入都不會失敗，
// 解析不出數量時整行退成 item。
func ParseLine(raw string) IngredientLine {
	line := bulletPattern.ReplaceAllString(strings.TrimSpace(raw), "")

	// 第一層："2 cups flour"、"1/2 tsp salt"
	if m := fullLinePattern.FindStringSubmatch(line); m != nil {
		return IngredientLine{
			Quantity: strings.TrimSpace(m[1]),
			Unit:     strings.TrimSpace(m[2]),
			Item:     strings.TrimSpace(m[3]),
		}
	}

	// 第二層：數量開頭，第一個 token 若是單位就拆出來
	if m := quantityPattern.FindStringSubmatch(line); m != nil {
		rest := strings.TrimSpace(m[2])
		fields := strings.Fields(rest)
		if len(fields) > 0 && unitTokenPattern.MatchString(fields[0]) {
			item := strings.TrimSpace(rest[len(fields[0]):])
			if item == "" {
				// "2 cups" 沒有後續文字，item 退回單位本身
				item = fields[0]
			}
			return IngredientLine{
				Quantity: strings.TrimSpace(m[1]),
				Unit:     fields[0],
				Item:     item,
			}
		}
	}

	// 第三層：沒有數量，整行視為食材名稱
	return IngredientLine{Item: line}
}

// String 重組為可讀的食材行，略過空白欄位
func (l IngredientLine) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Quantity, l.Unit, l.Item} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
