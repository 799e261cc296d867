package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/giftkart-next/internal/models"
)

// CartMutation 购物车变更载荷（删除/改量按 user+product+size+color 元组定位，不按行 ID）
type CartMutation struct {
	UserID    int64  `json:"user_id"`
	ProductID int64  `json:"product_id"`
	Size      string `json:"selected_size"`
	Color     string `json:"selected_color"`
	Quantity  int    `json:"quantity,omitempty"`
}

// cartRowPayload 远端购物车行的原始形态。
// 同时接收新旧两套价格字段命名，在 toRow 中收敛。
type cartRowPayload struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	ProductID int64           `json:"product_id"`
	Size      string          `json:"selected_size"`
	Color     string          `json:"selected_color"`
	Quantity  int             `json:"quantity"`
	Category  string          `json:"category"`
	Brand     string          `json:"brand"`
	Name      string          `json:"name"`
	Images    json.RawMessage `json:"images"`

	// 当前命名
	RetailMRP     *models.Money `json:"retail_mrp"`
	RetailPrice   *models.Money `json:"retail_price"`
	BusinessMRP   *models.Money `json:"business_mrp"`
	BusinessPrice *models.Money `json:"business_price"`

	// 旧版命名
	LegacyMRP      *models.Money `json:"mrp"`
	LegacyPrice    *models.Money `json:"price"`
	LegacyB2BMRP   *models.Money `json:"b2b_mrp"`
	LegacyB2BPrice *models.Money `json:"b2b_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FetchCart 获取用户购物车（no-cache）
func (c *Client) FetchCart(ctx context.Context, userID int64) ([]models.CartRow, error) {
	var payload []cartRowPayload
	path := fmt.Sprintf("/api/cart/%d", userID)
	if err := c.getJSON(ctx, path, true, &payload); err != nil {
		return nil, err
	}
	rows := make([]models.CartRow, 0, len(payload))
	for _, raw := range payload {
		rows = append(rows, raw.toRow())
	}
	return rows, nil
}

// AddCartItem 新增购物车行
func (c *Client) AddCartItem(ctx context.Context, input CartMutation) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/cart", input, nil)
}

// DeleteCartItem 删除购物车行（按元组定位）
func (c *Client) DeleteCartItem(ctx context.Context, input CartMutation) error {
	input.Quantity = 0
	return c.sendJSON(ctx, http.MethodDelete, "/api/cart", input, nil)
}

// UpdateCartItem 更新购物车行数量
func (c *Client) UpdateCartItem(ctx context.Context, input CartMutation) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/cart", input, nil)
}

func (p cartRowPayload) toRow() models.CartRow {
	return models.CartRow{
		ID:        p.ID,
		UserID:    p.UserID,
		ProductID: p.ProductID,
		Size:      strings.TrimSpace(p.Size),
		Color:     strings.TrimSpace(p.Color),
		Quantity:  p.Quantity,
		Category:  p.Category,
		Brand:     p.Brand,
		Name:      p.Name,
		Prices: models.PriceSet{
			Retail:   normalizePricePair(p.RetailMRP, p.RetailPrice, p.LegacyMRP, p.LegacyPrice),
			Business: normalizePricePair(p.BusinessMRP, p.BusinessPrice, p.LegacyB2BMRP, p.LegacyB2BPrice),
		},
		Image:     coverImage(p.Images),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// normalizePricePair 收敛新旧字段：当前命名优先，缺失回退旧命名
func normalizePricePair(mrp, offer, legacyMRP, legacyOffer *models.Money) models.PricePair {
	pair := models.PricePair{}
	if mrp != nil && mrp.IsPositive() {
		pair.MRP = *mrp
	} else if legacyMRP != nil && legacyMRP.IsPositive() {
		pair.MRP = *legacyMRP
	}
	if offer != nil && offer.IsPositive() {
		pair.Offer = *offer
	} else if legacyOffer != nil && legacyOffer.IsPositive() {
		pair.Offer = *legacyOffer
	}
	return pair
}

// coverImage 从图片字段取封面：兼容数组与 JSON 编码字符串，解析失败返回空串
func coverImage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) > 0 {
			return strings.TrimSpace(list[0])
		}
		return ""
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return ""
	}
	if err := json.Unmarshal([]byte(encoded), &list); err != nil {
		return ""
	}
	if len(list) > 0 {
		return strings.TrimSpace(list[0])
	}
	return ""
}
