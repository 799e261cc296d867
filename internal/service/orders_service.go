package service

import (
	"context"
	"strings"

	"github.com/giftkart-next/internal/api"
	"github.com/giftkart-next/internal/logger"
	"github.com/giftkart-next/internal/models"
)

// ReturnInput 退换货申请入参
type ReturnInput struct {
	SaleID  int64
	Reason  string
	Remarks string
}

// OrdersService 订单追踪与退换货（远端接口薄封装，失败降级为空）
type OrdersService struct {
	client *api.Client
}

// NewOrdersService 创建订单服务
func NewOrdersService(client *api.Client) *OrdersService {
	return &OrdersService{client: client}
}

// List 获取用户订单；无会话或请求失败返回空列表
func (s *OrdersService) List(ctx context.Context, sess models.Session) []api.Sale {
	if !sess.Valid() {
		return []api.Sale{}
	}
	sales, err := s.client.ListSales(ctx, sess.UserID)
	if err != nil {
		logger.Warnw("orders_list_failed", "user_id", sess.UserID, "error", err)
		return []api.Sale{}
	}
	return sales
}

// RequestReturn 提交退换货申请
func (s *OrdersService) RequestReturn(ctx context.Context, sess models.Session, input ReturnInput) bool {
	if !sess.Valid() || input.SaleID <= 0 || strings.TrimSpace(input.Reason) == "" {
		return false
	}
	err := s.client.RequestReturn(ctx, api.ReturnRequestInput{
		UserID:  sess.UserID,
		SaleID:  input.SaleID,
		Reason:  strings.TrimSpace(input.Reason),
		Remarks: strings.TrimSpace(input.Remarks),
	})
	if err != nil {
		logger.Warnw("orders_return_request_failed", "user_id", sess.UserID, "sale_id", input.SaleID, "error", err)
		return false
	}
	return true
}
