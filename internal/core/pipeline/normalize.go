package pipeline

import (
	"encoding/json"
	"strings"
)

// IngredientsInput 食材欄位的標記聯集。API 可能收到三種形狀：
// 一整串文字、字串陣列、或已結構化的列表。形狀只在系統邊界
// 判定一次，pipeline 內部不再重複嗅探。
type IngredientsInput struct {
	Raw        string
	Structured []IngredientLine
}

// UnmarshalJSON 依序嘗試：結構化列表、字串陣列、單一字串
func (in *IngredientsInput) UnmarshalJSON(data []byte) error {
	var structured []IngredientLine
	if err := json.Unmarshal(data, &structured); err == nil {
		in.Structured = structured
		in.Raw = ""
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		in.Raw = strings.Join(items, ", ")
		in.Structured = nil
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	in.Raw = raw
	in.Structured = nil
	return nil
}

// MarshalJSON 結構化列表優先，否則輸出原始字串
func (in IngredientsInput) MarshalJSON() ([]byte, error) {
	if len(in.Structured) > 0 {
		return json.Marshal(in.Structured)
	}
	return json.Marshal(in.Raw)
}

// RawIngredients 以原始文字建立輸入
func RawIngredients(text string) IngredientsInput {
	return IngredientsInput{Raw: text}
}

// StructuredIngredients 以結構化列表建立輸入
func StructuredIngredients(lines []IngredientLine) IngredientsInput {
	return IngredientsInput{Structured: lines}
}

// Normalize 把食材欄位整理成結構化列表。
//
// 已結構化的多行列表原樣通過（重複 normalize 是 no-op）；只有
// 一行且 item 內含逗號的視為誤併的整串文字，重新拆解；原始文字
// 則以逗號切段後逐段交給 ParseLine。輸出保持輸入順序，item 為空
// 的項目被丟棄。
func Normalize(in IngredientsInput) []IngredientLine {
	raw := in.Raw

	if len(in.Structured) > 0 {
		if len(in.Structured) == 1 && strings.Contains(in.Structured[0].Item, ",") {
			// 舊資料格式：整串食材被塞進單一 item
			raw = in.Structured[0].Item
		} else {
			out := make([]IngredientLine, 0, len(in.Structured))
			for _, l := range in.Structured {
				if strings.TrimSpace(l.Item) == "" {
					continue
				}
				out = append(out, l)
			}
			return out
		}
	}

	segments := strings.Split(raw, ",")
	out := make([]IngredientLine, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		line := ParseLine(seg)
		if strings.TrimSpace(line.Item) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
