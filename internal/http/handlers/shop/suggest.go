package shop

import (
	"github.com/giftkart-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SearchSuggestions 搜索联想；被更新输入作废的请求返回过期标记
func (h *Handler) SearchSuggestions(c *gin.Context) {
	suggestions, latest := h.SuggestService.Suggest(c.Request.Context(), c.Query("q"))
	if !latest {
		response.SuccessWithMsg(c, "stale", gin.H{"suggestions": []interface{}{}})
		return
	}
	response.Success(c, gin.H{"suggestions": suggestions})
}
