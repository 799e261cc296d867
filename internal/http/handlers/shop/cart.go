package shop

import (
	"strconv"

	"github.com/giftkart-next/internal/http/response"
	"github.com/giftkart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartAddRequest 加入购物车请求
type CartAddRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Size      string `json:"selected_size"`
	Color     string `json:"selected_color"`
	Quantity  int    `json:"quantity"`
}

// CartQuantityRequest 修改数量请求
type CartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart 获取购物车（每次都整表重拉远端）
func (h *Handler) GetCart(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	rows := h.CartService.Refresh(c.Request.Context(), sess)
	response.Success(c, gin.H{"items": rows})
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var req CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "error.bad_request")
		return
	}
	added := h.CartService.Add(c.Request.Context(), sess, service.AddToCartInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if !added {
		response.BadRequest(c, "error.cart_add_failed")
		return
	}
	response.Success(c, gin.H{"items": h.CartService.Items()})
}

// UpdateCartQuantity 修改购物车行数量
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	rowID, err := strconv.ParseInt(c.Param("row_id"), 10, 64)
	if err != nil || rowID <= 0 {
		response.BadRequest(c, "error.cart_row_invalid")
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "error.bad_request")
		return
	}
	updated := h.CartService.UpdateQuantity(c.Request.Context(), sess, rowID, req.Quantity)
	if !updated {
		response.BadRequest(c, "error.cart_update_failed")
		return
	}
	response.Success(c, gin.H{"items": h.CartService.Items()})
}

// DeleteCartItem 删除购物车行
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	rowID, err := strconv.ParseInt(c.Param("row_id"), 10, 64)
	if err != nil || rowID <= 0 {
		response.BadRequest(c, "error.cart_row_invalid")
		return
	}
	removed := h.CartService.Remove(c.Request.Context(), sess, rowID)
	if !removed {
		response.BadRequest(c, "error.cart_remove_failed")
		return
	}
	response.Success(c, gin.H{"items": h.CartService.Items()})
}
