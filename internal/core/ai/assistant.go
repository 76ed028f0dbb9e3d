package ai

import (
	"context"
	"fmt"
	"strings"

	"recipe-catalog/internal/core/pipeline"
)

// AssistantRequest 料理助手的請求
type AssistantRequest struct {
	RecipeName         string `json:"recipeName" binding:"required"`
	Ingredients        string `json:"ingredients" binding:"required"`
	Instructions       string `json:"instructions" binding:"required"`
	DietaryPreferences string `json:"dietaryPreferences"`
}

// AssistantResult 料理助手的建議
type AssistantResult struct {
	Suggestions string `json:"suggestions"`
}

const assistantPromptTemplate = `You are a helpful AI cooking assistant. A user is viewing the following recipe and wants suggestions for ingredient substitutions, cooking tips, and health insights.

Recipe Name: %s
Ingredients: %s
Instructions: %s
%s
Provide suggestions that are relevant to the recipe and user's dietary preferences. Consider ingredient substitutions, cooking tips to improve the dish, and any health insights related to the ingredients or cooking method.`

// Assist 針對食譜生成替換建議、料理技巧與健康資訊
func (s *Service) Assist(ctx context.Context, req AssistantRequest) (*AssistantResult, error) {
	dietary := ""
	if strings.TrimSpace(req.DietaryPreferences) != "" {
		dietary = fmt.Sprintf("\nThe user has the following dietary preferences: %s.\n", req.DietaryPreferences)
	}

	prompt := fmt.Sprintf(assistantPromptTemplate,
		req.RecipeName,
		req.Ingredients,
		req.Instructions,
		dietary,
	)

	content, err := s.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("assistant generation failed: %w", err)
	}

	return &AssistantResult{
		Suggestions: pipeline.StripMarkdown(content),
	}, nil
}
