package shop

import (
	"github.com/giftkart-next/internal/http/response"
	"github.com/giftkart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// QuoteRequest 计价请求
type QuoteRequest struct {
	CouponCode string `json:"coupon_code"`
	GiftWrap   bool   `json:"gift_wrap"`
}

// QuoteCart 对当前购物车内存快照计价。
// 未识别的优惠码不视为错误：返回 rejected 结果由展示层提示。
func (h *Handler) QuoteCart(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "error.bad_request")
		return
	}
	totals, coupon := h.PricingService.Quote(h.CartService.Items(), sess, service.QuoteInput{
		CouponCode: req.CouponCode,
		GiftWrap:   req.GiftWrap,
	})
	response.Success(c, gin.H{
		"totals": totals,
		"coupon": coupon,
	})
}
