package shop

import (
	"strings"

	"github.com/giftkart-next/internal/http/response"
	"github.com/giftkart-next/internal/models"

	"github.com/gin-gonic/gin"
)

// WishlistEntryRequest 心愿单条目请求
type WishlistEntryRequest struct {
	ID        string   `json:"id"`
	ProductID string   `json:"product_id"`
	EANCode   string   `json:"ean_code"`
	Image     string   `json:"image"`
	Images    []string `json:"images"`
	Color     string   `json:"color"`
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
}

func (r WishlistEntryRequest) toEntry() models.WishlistEntry {
	return models.WishlistEntry{
		ID:        r.ID,
		ProductID: r.ProductID,
		EANCode:   r.EANCode,
		Image:     r.Image,
		Images:    r.Images,
		Color:     r.Color,
		Name:      r.Name,
		Brand:     r.Brand,
	}
}

// GetWishlist 获取心愿单
func (h *Handler) GetWishlist(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{
		"items":    h.WishlistService.Items(sess),
		"variants": h.WishlistService.VariantChoices(sess),
	})
}

// AddWishlistItem 加入心愿单（按规范化 ID 去重，重复加入为幂等操作）
func (h *Handler) AddWishlistItem(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var req WishlistEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "error.bad_request")
		return
	}
	if !h.WishlistService.Add(sess, req.toEntry()) {
		response.BadRequest(c, "error.wishlist_add_failed")
		return
	}
	response.Success(c, gin.H{"items": h.WishlistService.Items(sess)})
}

// RemoveWishlistItem 移除心愿单条目
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	productID := strings.TrimSpace(c.Param("product_id"))
	if productID == "" {
		response.BadRequest(c, "error.wishlist_item_invalid")
		return
	}
	if !h.WishlistService.Remove(sess, productID) {
		response.BadRequest(c, "error.wishlist_remove_failed")
		return
	}
	response.Success(c, gin.H{"items": h.WishlistService.Items(sess)})
}

// ToggleWishlistVariant 变体级心愿切换（需要 EAN 码与图片地址）
func (h *Handler) ToggleWishlistVariant(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var req WishlistEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "error.bad_request")
		return
	}
	if !h.WishlistService.ToggleVariant(sess, req.toEntry()) {
		response.BadRequest(c, "error.wishlist_variant_invalid")
		return
	}
	response.Success(c, gin.H{
		"items":    h.WishlistService.Items(sess),
		"variants": h.WishlistService.VariantChoices(sess),
	})
}

// HydrateWishlist 从远端拉取心愿单整表替换（变体感知页面初始化）
func (h *Handler) HydrateWishlist(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	if !h.WishlistService.HydrateRemote(c.Request.Context(), sess) {
		response.SuccessWithMsg(c, "hydrate_skipped", gin.H{"items": h.WishlistService.Items(sess)})
		return
	}
	response.Success(c, gin.H{"items": h.WishlistService.Items(sess)})
}
