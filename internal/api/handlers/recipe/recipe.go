package recipe

import (
	"net/http"
	"strconv"

	recipeService "recipe-catalog/internal/core/recipe"
	"recipe-catalog/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Handler 食譜目錄處理程序
type Handler struct {
	service *recipeService.Service
}

// NewHandler 創建食譜目錄處理程序
func NewHandler(service *recipeService.Service) *Handler {
	return &Handler{service: service}
}

// HandleList 列表查詢，支援關鍵字、分類、飲食標籤與分頁
func (h *Handler) HandleList(c *gin.Context) {
	filter := recipeService.ListFilter{
		Query:       c.Query("q"),
		Category:    c.Query("category"),
		Diet:        c.Query("diet"),
		MaxTime:     queryInt(c, "maxTime", 0),
		MaxCalories: queryInt(c, "maxCalories", 0),
		Page:        queryInt(c, "page", 1),
		Limit:       queryInt(c, "limit", defaultPageSize),
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > maxPageSize {
		filter.Limit = defaultPageSize
	}

	recipes, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		common.LogError("食譜列表查詢失敗", zap.Error(err))
		common.RespondError(c, http.StatusInternalServerError, common.ErrInternalError)
		return
	}

	totalPages := int64(total+filter.Limit-1) / int64(filter.Limit)
	c.JSON(http.StatusOK, common.APIResponse{
		Success: true,
		Data:    recipes,
		Pagination: &common.Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      int64(total),
			TotalPages: totalPages,
		},
	})
}

// HandleFeatured 首頁精選食譜
func (h *Handler) HandleFeatured(c *gin.Context) {
	recipes, err := h.service.Featured(c.Request.Context())
	if err != nil {
		common.LogError("精選食譜查詢失敗", zap.Error(err))
		common.RespondError(c, http.StatusInternalServerError, common.ErrInternalError)
		return
	}
	common.RespondOK(c, recipes)
}

// HandleGet 取得單筆食譜並累加瀏覽數
func (h *Handler) HandleGet(c *gin.Context) {
	r, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == common.ErrRecipeNotFound {
			common.RespondError(c, http.StatusNotFound, err)
			return
		}
		common.LogError("食譜查詢失敗", zap.Error(err), zap.String("id", c.Param("id")))
		common.RespondError(c, http.StatusInternalServerError, common.ErrInternalError)
		return
	}
	common.RespondOK(c, r)
}

// HandleCreate 建立食譜
func (h *Handler) HandleCreate(c *gin.Context) {
	var in recipeService.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		common.RespondError(c, http.StatusBadRequest, common.ErrInvalidRequest)
		return
	}

	r, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		common.LogError("食譜建立失敗", zap.Error(err), zap.String("title", in.Title))
		common.RespondError(c, http.StatusInternalServerError, common.ErrInternalError)
		return
	}
	common.RespondCreated(c, r)
}

// HandleUpdate 整筆覆蓋食譜
func (h *Handler) HandleUpdate(c *gin.Context) {
	var in recipeService.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		common.RespondError(c, http.StatusBadRequest, common.ErrInvalidRequest)
		return
	}

	r, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if err == common.ErrRecipeNotFound {
			common.RespondError(c, http.StatusNotFound, err)
			return
		}
		common.LogError("食譜更新失敗", zap.Error(err), zap.String("id", c.Param("id")))
		common.RespondError(c, http.StatusInternalServerError, common.ErrInternalError)
		return
	}
	common.RespondOK(c, r)
}

// HandleDelete 刪除食譜
func (h *Handler) HandleDelete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if err == common.ErrRecipeNotFound {
			common.RespondError(c, http.StatusNotFound, err)
			return
		}
		common.LogError("食譜刪除失敗", zap.Error(err), zap.String("id", c.Param("id")))
		common.RespondError(c, http.StatusInternalServerError, common.ErrInternalError)
		return
	}
	common.RespondOK(c, gin.H{"deleted": true})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
