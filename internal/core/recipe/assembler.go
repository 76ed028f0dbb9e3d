package recipe

import (
	"context"
	"strings"

	"recipe-catalog/internal/core/ai"
	"recipe-catalog/internal/core/image"
	"recipe-catalog/internal/core/pipeline"
)

// Assembler 把模型產出的自由文字食譜組裝成結構化文件。
// 搜尋關鍵字來自使用者原始輸入而非模型輸出，確保索引反映
// 使用者實際手上的食材。
type Assembler struct {
	images image.Searcher
}

// NewAssembler 建立組裝器
func NewAssembler(images image.Searcher) *Assembler {
	return &Assembler{images: images}
}

// Assemble 組裝食譜草稿。圖片欄位的關鍵字交給圖片搜尋服務解析，
// 失敗時由服務自行退回佔位圖。
func (a *Assembler) Assemble(ctx context.Context, req ai.DiscoveryRequest, out *ai.DiscoveryResult) Recipe {
	description := out.FlavorProfile
	if strings.TrimSpace(description) == "" {
		description = out.Reasoning
	}

	userIngredients := splitList(req.Ingredients)

	r := Recipe{
		Title:           pipeline.StripMarkdown(out.RecipeName),
		Description:     pipeline.StripMarkdown(description),
		ImageURL:        a.images.RecipeImage(ctx, out.ImageKeywords),
		ImageHint:       out.ImageKeywords,
		Category:        "Main Course",
		DietaryTags:     lowercaseAll(splitList(req.DietaryRestrictions)),
		PrepTime:        out.CookingDetails.PrepTime,
		CookTime:        out.CookingDetails.CookTime,
		TotalTime:       out.CookingDetails.TotalTime,
		Servings:        out.CookingDetails.Servings,
		Difficulty:      out.CookingDetails.Difficulty,
		Calories:        out.NutritionalInfo.Calories,
		Protein:         out.NutritionalInfo.Protein,
		Carbs:           out.NutritionalInfo.Carbs,
		Fat:             out.NutritionalInfo.Fat,
		Fiber:           out.NutritionalInfo.Fiber,
		Sodium:          out.NutritionalInfo.Sodium,
		Ingredients:     pipeline.Normalize(pipeline.RawIngredients(out.Ingredients)),
		Instructions:    pipeline.Segment(pipeline.RawInstructions(out.Instructions)),
		CookingTips:     out.CookingTips,
		Warnings:        out.Warnings,
		Variations:      out.Variations,
		Equipment:       out.Equipment,
		StorageInfo:     out.StorageInfo,
		SearchKeywords:  lowercaseAll(userIngredients),
		MainIngredients: firstN(userIngredients, 5),
		Source:          SourceAIGenerated,
		AIReasoning:     out.Reasoning,
	}

	return r
}

// splitList 逗號分隔的清單拆成已去空白的片段
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	segments := strings.Split(raw, ",")
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
