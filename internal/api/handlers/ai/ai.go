package ai

import (
	"net/http"

	aiService "recipe-catalog/internal/core/ai"
	recipeService "recipe-catalog/internal/core/recipe"
	"recipe-catalog/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler AI 食譜探索與烹飪助手處理程序
type Handler struct {
	ai        *aiService.Service
	assembler *recipeService.Assembler
	recipes   *recipeService.Service
}

// NewHandler 創建 AI 處理程序
func NewHandler(ai *aiService.Service, assembler *recipeService.Assembler, recipes *recipeService.Service) *Handler {
	return &Handler{ai: ai, assembler: assembler, recipes: recipes}
}

// HandleDiscover 依食材生成完整食譜。生成結果盡力持久化，
// 儲存失敗仍回傳草稿。
func (h *Handler) HandleDiscover(c *gin.Context) {
	var req aiService.DiscoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, common.ErrInvalidRequest)
		return
	}

	result, err := h.ai.Discover(c.Request.Context(), req)
	if err != nil {
		common.LogError("食譜探索失敗",
			zap.Error(err),
			zap.String("ingredients", req.Ingredients),
		)
		common.RespondErrorMessage(c, http.StatusServiceUnavailable,
			"暫時無法生成食譜，請稍後再試")
		return
	}

	recipe := h.assembler.Assemble(c.Request.Context(), req, result)
	saved := h.recipes.PersistDraft(c.Request.Context(), &recipe)

	common.RespondOK(c, gin.H{
		"recipe": recipe,
		"saved":  saved,
	})
}

// HandleAssistant 針對特定食譜回答烹飪問題
func (h *Handler) HandleAssistant(c *gin.Context) {
	var req aiService.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, common.ErrInvalidRequest)
		return
	}

	result, err := h.ai.Assist(c.Request.Context(), req)
	if err != nil {
		common.LogError("烹飪助手回覆失敗",
			zap.Error(err),
			zap.String("recipe", req.RecipeName),
		)
		common.RespondErrorMessage(c, http.StatusServiceUnavailable,
			"暫時無法取得建議，請稍後再試")
		return
	}

	common.RespondOK(c, result)
}
