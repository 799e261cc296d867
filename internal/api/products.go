package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/giftkart-next/internal/models"
)

// Product 商品概要（分类浏览用，价格与图片已在边界收敛）
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Image    string          `json:"image"`
	Prices   models.PriceSet `json:"prices"`
}

// productPayload 远端商品行的原始形态
type productPayload struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Images   json.RawMessage `json:"images"`

	// 当前命名
	RetailMRP     *models.Money `json:"retail_mrp"`
	RetailPrice   *models.Money `json:"retail_price"`
	BusinessMRP   *models.Money `json:"business_mrp"`
	BusinessPrice *models.Money `json:"business_price"`

	// 旧版命名
	LegacyMRP   *models.Money `json:"mrp"`
	LegacyPrice *models.Money `json:"price"`
}

// Suggestion 搜索联想条目
type Suggestion struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Image     string `json:"image"`
}

// FetchProducts 拉取商品列表；category 为空时返回全量
func (c *Client) FetchProducts(ctx context.Context, category string) ([]Product, error) {
	path := "/api/products"
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		path += "?category=" + url.QueryEscape(trimmed)
	}
	var payload []productPayload
	if err := c.getJSON(ctx, path, false, &payload); err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(payload))
	for _, raw := range payload {
		products = append(products, Product{
			ID:       raw.ID,
			Name:     raw.Name,
			Category: raw.Category,
			Brand:    raw.Brand,
			Image:    coverImage(raw.Images),
			Prices: models.PriceSet{
				Retail:   normalizePricePair(raw.RetailMRP, raw.RetailPrice, raw.LegacyMRP, raw.LegacyPrice),
				Business: normalizePricePair(raw.BusinessMRP, raw.BusinessPrice, nil, nil),
			},
		})
	}
	return products, nil
}

// SearchSuggestions 搜索联想（调用方负责用 ctx 取消被新输入作废的请求）
func (c *Client) SearchSuggestions(ctx context.Context, query string) ([]Suggestion, error) {
	var suggestions []Suggestion
	path := "/api/products/search?q=" + url.QueryEscape(query)
	if err := c.getJSON(ctx, path, false, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}
