package search

import (
	"net/http"

	recipeService "recipe-catalog/internal/core/recipe"
	searchService "recipe-catalog/internal/core/search"
	"recipe-catalog/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 食材搜尋與索引重建處理程序
type Handler struct {
	service *recipeService.Service
	syncer  *searchService.Syncer
	source  searchService.RecipeSource
}

// NewHandler 創建搜尋處理程序
func NewHandler(service *recipeService.Service, syncer *searchService.Syncer, source searchService.RecipeSource) *Handler {
	return &Handler{service: service, syncer: syncer, source: source}
}

// HandleIngredientSearch 以現有食材搜尋食譜
func (h *Handler) HandleIngredientSearch(c *gin.Context) {
	var req recipeService.IngredientSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, common.ErrInvalidRequest)
		return
	}

	results, err := h.service.SearchByIngredients(c.Request.Context(), req)
	if err != nil {
		if common.IsValidationError(err) {
			common.RespondErrorMessage(c, http.StatusBadRequest, err.Error())
			return
		}
		common.LogError("食材搜尋失敗", zap.Error(err))
		common.RespondError(c, http.StatusInternalServerError, common.ErrInternalError)
		return
	}

	common.RespondOK(c, gin.H{
		"recipes":             results,
		"count":               len(results),
		"searchedIngredients": []string(req.Ingredients),
	})
}

// HandleSyncAll 全量重建搜尋索引
func (h *Handler) HandleSyncAll(c *gin.Context) {
	count, err := h.syncer.SyncAll(c.Request.Context(), h.source)
	if err != nil {
		if err == common.ErrSearchDisabled {
			common.RespondError(c, http.StatusServiceUnavailable, err)
			return
		}
		common.LogError("索引重建失敗", zap.Error(err))
		common.RespondError(c, http.StatusInternalServerError, common.ErrInternalError)
		return
	}

	common.RespondOK(c, gin.H{
		"synced": count,
	})
}
