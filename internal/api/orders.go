package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/giftkart-next/internal/models"
)

// SaleItem 下单条目
type SaleItem struct {
	ProductID int64        `json:"product_id"`
	Name      string       `json:"name"`
	Size      string       `json:"selected_size,omitempty"`
	Color     string       `json:"selected_color,omitempty"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	UnitMRP   models.Money `json:"unit_mrp"`
}

// CreateSaleInput 下单载荷
type CreateSaleInput struct {
	UserID    int64          `json:"user_id"`
	RequestID string         `json:"request_id"` // 客户端幂等标识
	Items     []SaleItem     `json:"items"`
	Payable   models.Money   `json:"payable"`
	Address   models.Address `json:"address"`
}

// Sale 订单概要（订单追踪页）
type Sale struct {
	ID        int64        `json:"id"`
	OrderNo   string       `json:"order_no"`
	Status    string       `json:"status"`
	Payable   models.Money `json:"payable"`
	Items     []SaleItem   `json:"items"`
	CreatedAt time.Time    `json:"created_at"`
}

// ReturnRequestInput 退换货申请载荷
type ReturnRequestInput struct {
	UserID  int64  `json:"user_id"`
	SaleID  int64  `json:"sale_id"`
	Reason  string `json:"reason"`
	Remarks string `json:"remarks,omitempty"`
}

// CreateSale 提交订单
func (c *Client) CreateSale(ctx context.Context, input CreateSaleInput) (*Sale, error) {
	var sale Sale
	if err := c.sendJSON(ctx, http.MethodPost, "/api/sales", input, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// ListSales 获取用户订单列表
func (c *Client) ListSales(ctx context.Context, userID int64) ([]Sale, error) {
	var sales []Sale
	path := fmt.Sprintf("/api/sales/%d", userID)
	if err := c.getJSON(ctx, path, true, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// RequestReturn 提交退换货申请
func (c *Client) RequestReturn(ctx context.Context, input ReturnRequestInput) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/returns", input, nil)
}
