package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"recipe-catalog/internal/pkg/common"
)

// DiscoveryRequest 以食材找食譜的請求
type DiscoveryRequest struct {
	Ingredients         string `json:"ingredients" binding:"required"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	TimeLimit           string `json:"timeLimit"`
}

// NutritionalInfo 每份營養成分
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// CookingDetails 料理時間與難度
type CookingDetails struct {
	PrepTime   int    `json:"prepTime"`
	CookTime   int    `json:"cookTime"`
	TotalTime  int    `json:"totalTime"`
	Servings   int    `json:"servings"`
	Difficulty string `json:"difficulty"`
}

// DiscoveryResult 模型產生的結構化食譜。ImageKeywords 對應模型
// 輸出的 imageUrl 欄位，內容是圖片搜尋關鍵字而非真正的網址。
type DiscoveryResult struct {
	RecipeName      string          `json:"recipeName"`
	Ingredients     string          `json:"ingredients"`
	Instructions    string          `json:"instructions"`
	Reasoning       string          `json:"reasoning"`
	ImageKeywords   string          `json:"imageUrl"`
	NutritionalInfo NutritionalInfo `json:"nutritionalInfo"`
	CookingDetails  CookingDetails  `json:"cookingDetails"`
	CookingTips     []string        `json:"cookingTips"`
	Warnings        []string        `json:"warnings"`
	Variations      []string        `json:"variations"`
	Equipment       []string        `json:"equipment"`
	StorageInfo     string          `json:"storageInfo"`
	FlavorProfile   string          `json:"flavorProfile"`
}

const discoveryPromptTemplate = `You are a professional chef and nutritionist AI. A user will provide you with ingredients, dietary restrictions, and time constraints. Generate a comprehensive recipe with detailed information that food enthusiasts would love to know.

Create a recipe that includes:
- Precise ingredient measurements
- Detailed step-by-step instructions with cooking techniques
- Accurate nutritional information per serving
- Professional cooking tips and techniques
- Important warnings about overcooking, food safety, or common mistakes
- Flavor profile description
- Equipment needed
- Storage instructions
- Possible variations

Respond with a single JSON object only, no markdown fences, using exactly these keys:
recipeName (string), ingredients (string, comma-separated list with quantities and measurements), instructions (string, numbered step-by-step), reasoning (string), imageUrl (string, 2-3 descriptive keywords about the dish such as "grilled chicken" or "pasta carbonara" - the actual image will be fetched automatically), nutritionalInfo (object: calories, protein, carbs, fat, fiber, sodium - all numbers per serving), cookingDetails (object: prepTime, cookTime, totalTime, servings as numbers, difficulty as "easy"|"medium"|"hard"), cookingTips (array of strings), warnings (array of strings), variations (array of strings), equipment (array of strings), storageInfo (string), flavorProfile (string).

Be specific about cooking temperatures, timing, and techniques. Include warnings about things like overcooking proteins, proper food safety temperatures, and common pitfalls.

Ingredients Available: %s
Dietary Restrictions: %s
Time Limit: %s

Make this recipe restaurant-quality with professional insights that home cooks would find valuable.`

// Discover 以使用者的食材與限制生成食譜
func (s *Service) Discover(ctx context.Context, req DiscoveryRequest) (*DiscoveryResult, error) {
	prompt := fmt.Sprintf(discoveryPromptTemplate,
		strings.TrimSpace(req.Ingredients),
		strings.TrimSpace(req.DietaryRestrictions),
		strings.TrimSpace(req.TimeLimit),
	)

	content, err := s.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("discovery generation failed: %w", err)
	}

	result, err := parseDiscoveryResult(content)
	if err != nil {
		common.LogError("無法解析模型輸出",
			zap.Error(err),
			zap.Int("content_length", len(content)),
		)
		return nil, fmt.Errorf("failed to parse discovery output: %w", err)
	}

	applyDiscoveryDefaults(result)
	return result, nil
}

// parseDiscoveryResult 從模型輸出抽出 JSON 物件並解析
func parseDiscoveryResult(content string) (*DiscoveryResult, error) {
	raw := common.ExtractJSONObject(content)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var result DiscoveryResult
	if err := common.ParseJSON(raw, &result); err != nil {
		// 部分模型輸出未加引號的鍵，修補後重試一次
		if err2 := common.ParseJSON(common.QuoteJSONKeys(raw), &result); err2 != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(result.RecipeName) == "" {
		return nil, fmt.Errorf("model output missing recipe name")
	}
	return &result, nil
}

// applyDiscoveryDefaults 補上模型漏掉的欄位
func applyDiscoveryDefaults(r *DiscoveryResult) {
	if r.CookingDetails.PrepTime <= 0 {
		r.CookingDetails.PrepTime = 15
	}
	if r.CookingDetails.CookTime <= 0 {
		r.CookingDetails.CookTime = 15
	}
	if r.CookingDetails.TotalTime <= 0 {
		r.CookingDetails.TotalTime = 30
	}
	if r.CookingDetails.Servings <= 0 {
		r.CookingDetails.Servings = 4
	}
	switch r.CookingDetails.Difficulty {
	case "easy", "medium", "hard":
	default:
		r.CookingDetails.Difficulty = "medium"
	}
	if r.NutritionalInfo.Calories <= 0 {
		r.NutritionalInfo.Calories = 400
	}
	if r.NutritionalInfo.Protein <= 0 {
		r.NutritionalInfo.Protein = 20
	}
	if r.NutritionalInfo.Carbs <= 0 {
		r.NutritionalInfo.Carbs = 30
	}
	if r.NutritionalInfo.Fat <= 0 {
		r.NutritionalInfo.Fat = 15
	}
	if r.NutritionalInfo.Fiber <= 0 {
		r.NutritionalInfo.Fiber = 5
	}
	if r.NutritionalInfo.Sodium < 0 {
		r.NutritionalInfo.Sodium = 0
	}
	if r.CookingTips == nil {
		r.CookingTips = []string{}
	}
	if r.Warnings == nil {
		r.Warnings = []string{}
	}
	if r.Variations == nil {
		r.Variations = []string{}
	}
	if r.Equipment == nil {
		r.Equipment = []string{}
	}
}
