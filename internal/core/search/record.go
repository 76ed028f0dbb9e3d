package search

import (
	"time"

	"recipe-catalog/internal/core/pipeline"
	"recipe-catalog/internal/core/recipe"
)

// Record 搜尋索引中的食譜紀錄，objectID 即儲存層的食譜 ID。
// 食材攤平成子物件陣列以利全文比對。
type Record struct {
	ObjectID        string                    `json:"objectID"`
	Title           string                    `json:"title"`
	Description     string                    `json:"description"`
	ImageURL        string                    `json:"imageUrl,omitempty"`
	ImageHint       string                    `json:"imageHint,omitempty"`
	Category        string                    `json:"category"`
	DietaryTags     []string                  `json:"dietaryTags"`
	PrepTime        int                       `json:"prepTime"`
	CookTime        int                       `json:"cookTime"`
	TotalTime       int                       `json:"totalTime"`
	Servings        int                       `json:"servings"`
	Difficulty      string                    `json:"difficulty"`
	Calories        float64                   `json:"calories"`
	Protein         float64                   `json:"protein"`
	Carbs           float64                   `json:"carbs"`
	Fat             float64                   `json:"fat"`
	Fiber           float64                   `json:"fiber"`
	MainIngredients []string                  `json:"mainIngredients"`
	SearchKeywords  []string                  `json:"searchKeywords"`
	HealthBenefits  []string                  `json:"healthBenefits"`
	Source          string                    `json:"source"`
	Views           int                       `json:"views"`
	Likes           int                       `json:"likes"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
	Ingredients     []pipeline.IngredientLine `json:"ingredients"`
}

// FromRecipe 將食譜文件轉換為索引紀錄
func FromRecipe(r *recipe.Recipe) Record {
	return Record{
		ObjectID:        r.ID,
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		ImageHint:       r.ImageHint,
		Category:        r.Category,
		DietaryTags:     emptySafe(r.DietaryTags),
		PrepTime:        r.PrepTime,
		CookTime:        r.CookTime,
		TotalTime:       r.TotalTime,
		Servings:        r.Servings,
		Difficulty:      r.Difficulty,
		Calories:        r.Calories,
		Protein:         r.Protein,
		Carbs:           r.Carbs,
		Fat:             r.Fat,
		Fiber:           r.Fiber,
		MainIngredients: emptySafe(r.MainIngredients),
		SearchKeywords:  emptySafe(r.SearchKeywords),
		HealthBenefits:  emptySafe(r.HealthBenefits),
		Source:          r.Source,
		Views:           r.Views,
		Likes:           r.Likes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Ingredients:     r.Ingredients,
	}
}

func emptySafe(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
