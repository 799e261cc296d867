package shop

import (
	"github.com/giftkart-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品浏览（无需会话，按分类过滤）
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.CatalogService.List(c.Request.Context(), c.Query("category"))
	response.Success(c, gin.H{"products": products})
}
