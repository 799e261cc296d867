package shop

import (
	"github.com/giftkart-next/internal/http/response"
	"github.com/giftkart-next/internal/models"
	"github.com/giftkart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutDraftRequest 构建结算草稿请求
type CheckoutDraftRequest struct {
	CouponCode string `json:"coupon_code"`
	GiftWrap   bool   `json:"gift_wrap"`
}

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	Address models.Address `json:"address" binding:"required"`
}

// BuildCheckoutDraft 从当前购物车冻结结算草稿
func (h *Handler) BuildCheckoutDraft(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var req CheckoutDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "error.bad_request")
		return
	}
	rows := h.CartService.Refresh(c.Request.Context(), sess)
	draft, built := h.CheckoutService.BuildDraft(sess, rows, service.QuoteInput{
		CouponCode: req.CouponCode,
		GiftWrap:   req.GiftWrap,
	})
	if !built {
		response.BadRequest(c, "error.checkout_cart_empty")
		return
	}
	response.Success(c, gin.H{"draft": draft})
}

// GetCheckoutDraft 下单页读取草稿（含防御性修复）
func (h *Handler) GetCheckoutDraft(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	draft, found := h.CheckoutService.LoadDraft(sess)
	if !found {
		response.NotFound(c, "error.checkout_draft_missing")
		return
	}
	address, _ := h.CheckoutService.LoadAddress()
	response.Success(c, gin.H{
		"draft":   draft,
		"address": address,
	})
}

// PlaceOrder 提交订单；成功后草稿作废，地址落持久存储预填
func (h *Handler) PlaceOrder(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "error.bad_request")
		return
	}
	sale, placed := h.CheckoutService.PlaceOrder(c.Request.Context(), sess, req.Address)
	if !placed {
		response.BadRequest(c, "error.order_place_failed")
		return
	}
	response.Success(c, gin.H{"sale": sale})
}
