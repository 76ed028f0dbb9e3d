package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// APIResponse 統一回應格式：{success, data?, error?}
type APIResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination 分頁資訊
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// RespondOK 回傳成功結果
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated 回傳 201 與新建立的資源
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError 回傳錯誤；若為 CustomError 則使用其狀態碼
func RespondError(c *gin.Context, status int, err error) {
	if ce, ok := err.(*CustomError); ok {
		c.JSON(ce.Status, APIResponse{Success: false, Error: ce.Message})
		return
	}
	c.JSON(status, APIResponse{Success: false, Error: err.Error()})
}

// RespondErrorMessage 回傳錯誤訊息字串
func RespondErrorMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, APIResponse{Success: false, Error: msg})
}

// RequestID 取得或產生請求 ID
func RequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}
