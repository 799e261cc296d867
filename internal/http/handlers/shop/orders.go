package shop

import (
	"github.com/giftkart-next/internal/http/response"
	"github.com/giftkart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ReturnRequest 退换货申请请求
type ReturnRequest struct {
	SaleID  int64  `json:"sale_id" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
	Remarks string `json:"remarks"`
}

// ListOrders 订单追踪列表
func (h *Handler) ListOrders(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	sales := h.OrdersService.List(c.Request.Context(), sess)
	response.Success(c, gin.H{"sales": sales})
}

// RequestReturn 提交退换货申请
func (h *Handler) RequestReturn(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var req ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "error.bad_request")
		return
	}
	submitted := h.OrdersService.RequestReturn(c.Request.Context(), sess, service.ReturnInput{
		SaleID:  req.SaleID,
		Reason:  req.Reason,
		Remarks: req.Remarks,
	})
	if !submitted {
		response.BadRequest(c, "error.return_request_failed")
		return
	}
	response.Success(c, gin.H{"submitted": true})
}
