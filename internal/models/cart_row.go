package models

import "time"

// CartRow 购物车行（远端返回并在适配层规范化后的形态）
type CartRow struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Size      string    `json:"selected_size"`
	Color     string    `json:"selected_color"`
	Quantity  int       `json:"quantity"`
	Category  string    `json:"category"`
	Brand     string    `json:"brand"`
	Name      string    `json:"name"`
	Prices    PriceSet  `json:"prices"`
	Image     string    `json:"image"` // 封面图（解析失败时为空串）
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
