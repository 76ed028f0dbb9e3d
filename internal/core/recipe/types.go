package recipe

import (
	"strings"
	"time"

	"recipe-catalog/internal/core/pipeline"
)

// 難度等級
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// 食譜來源
const (
	SourceAIGenerated   = "ai-generated"
	SourceCurated       = "curated"
	SourceUserSubmitted = "user-submitted"
)

// Substitution 食材替換建議
type Substitution struct {
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
	Reason      string `json:"reason,omitempty"`
}

// Recipe 持久化的食譜文件。pipeline 產出的欄位（ingredients、
// instructions）已是結構化形式，更新一律整筆覆蓋不做部分修改。
type Recipe struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ImageHint   string `json:"imageHint,omitempty"`
	Category    string `json:"category"`

	DietaryTags []string `json:"dietaryTags"`

	// 料理時間（分鐘）
	PrepTime  int `json:"prepTime"`
	CookTime  int `json:"cookTime"`
	TotalTime int `json:"totalTime"`

	Servings   int    `json:"servings"`
	Difficulty string `json:"difficulty"`

	// 每份營養成分，sodium 單位是毫克，其餘是克
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`

	Ingredients  []pipeline.IngredientLine `json:"ingredients"`
	Instructions []string                  `json:"instructions"`

	HealthBenefits []string       `json:"healthBenefits,omitempty"`
	CookingTips    []string       `json:"cookingTips,omitempty"`
	Warnings       []string       `json:"warnings,omitempty"`
	Variations     []string       `json:"variations,omitempty"`
	Equipment      []string       `json:"equipment,omitempty"`
	StorageInfo    string         `json:"storageInfo,omitempty"`
	Substitutions  []Substitution `json:"substitutions,omitempty"`

	SearchKeywords  []string `json:"searchKeywords"`
	MainIngredients []string `json:"mainIngredients"`

	Source      string `json:"source"`
	AIReasoning string `json:"aiReasoning,omitempty"`

	Views int `json:"views"`
	Likes int `json:"likes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input 建立或覆蓋食譜的請求內容。ingredients 與 instructions
// 接受多種形狀，在 JSON 解析時判定一次，之後交給 pipeline 整理。
type Input struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ImageHint   string `json:"imageHint"`
	Category    string `json:"category"`

	DietaryTags []string `json:"dietaryTags"`

	PrepTime  int `json:"prepTime"`
	CookTime  int `json:"cookTime"`
	TotalTime int `json:"totalTime"`

	Servings   int    `json:"servings"`
	Difficulty string `json:"difficulty"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`

	Ingredients  pipeline.IngredientsInput  `json:"ingredients"`
	Instructions pipeline.InstructionsInput `json:"instructions"`

	HealthBenefits []string       `json:"healthBenefits"`
	CookingTips    []string       `json:"cookingTips"`
	Warnings       []string       `json:"warnings"`
	Variations     []string       `json:"variations"`
	Equipment      []string       `json:"equipment"`
	StorageInfo    string         `json:"storageInfo"`
	Substitutions  []Substitution `json:"substitutions"`

	SearchKeywords  []string `json:"searchKeywords"`
	MainIngredients []string `json:"mainIngredients"`

	Source      string `json:"source"`
	AIReasoning string `json:"aiReasoning"`
}

// ToRecipe 將請求內容整理成食譜文件，自由文字欄位經過 pipeline
// 結構化，markdown 標記在此一併清除
func (in Input) ToRecipe() Recipe {
	r := Recipe{
		Title:           pipeline.StripMarkdown(in.Title),
		Description:     pipeline.StripMarkdown(in.Description),
		ImageURL:        strings.TrimSpace(in.ImageURL),
		ImageHint:       in.ImageHint,
		Category:        in.Category,
		DietaryTags:     lowercaseAll(in.DietaryTags),
		PrepTime:        in.PrepTime,
		CookTime:        in.CookTime,
		TotalTime:       in.TotalTime,
		Servings:        in.Servings,
		Difficulty:      in.Difficulty,
		Calories:        in.Calories,
		Protein:         in.Protein,
		Carbs:           in.Carbs,
		Fat:             in.Fat,
		Fiber:           in.Fiber,
		Sodium:          in.Sodium,
		Ingredients:     pipeline.Normalize(in.Ingredients),
		Instructions:    pipeline.Segment(in.Instructions),
		HealthBenefits:  in.HealthBenefits,
		CookingTips:     in.CookingTips,
		Warnings:        in.Warnings,
		Variations:      in.Variations,
		Equipment:       in.Equipment,
		StorageInfo:     in.StorageInfo,
		Substitutions:   in.Substitutions,
		SearchKeywords:  in.SearchKeywords,
		MainIngredients: in.MainIngredients,
		Source:          in.Source,
		AIReasoning:     in.AIReasoning,
	}

	if r.Category == "" {
		r.Category = "Main Course"
	}
	if r.Servings <= 0 {
		r.Servings = 4
	}
	switch r.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		r.Difficulty = DifficultyMedium
	}
	if r.Source == "" {
		r.Source = SourceCurated
	}
	if r.TotalTime == 0 {
		r.TotalTime = r.PrepTime + r.CookTime
	}
	return r
}

func lowercaseAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
