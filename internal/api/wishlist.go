package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/giftkart-next/internal/models"
)

// WishlistMutation 心愿单远端镜像载荷
type WishlistMutation struct {
	UserID    int64  `json:"user_id"`
	ProductID string `json:"product_id"`
	EANCode   string `json:"ean_code,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Color     string `json:"color,omitempty"`
}

// wishlistRowPayload 远端心愿单行
type wishlistRowPayload struct {
	ProductID string   `json:"product_id"`
	EANCode   string   `json:"ean_code"`
	ImageURL  string   `json:"image_url"`
	Color     string   `json:"color"`
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Images    []string `json:"images"`
}

// MirrorWishlistAdd 远端镜像：新增心愿单条目
func (c *Client) MirrorWishlistAdd(ctx context.Context, input WishlistMutation) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/wishlist", input, nil)
}

// MirrorWishlistRemove 远端镜像：删除心愿单条目
func (c *Client) MirrorWishlistRemove(ctx context.Context, input WishlistMutation) error {
	return c.sendJSON(ctx, http.MethodDelete, "/api/wishlist", input, nil)
}

// FetchWishlist 拉取远端心愿单（变体感知页面初始化用）
func (c *Client) FetchWishlist(ctx context.Context, userID int64) ([]models.WishlistEntry, error) {
	var payload []wishlistRowPayload
	path := fmt.Sprintf("/api/wishlist/%d", userID)
	if err := c.getJSON(ctx, path, false, &payload); err != nil {
		return nil, err
	}
	entries := make([]models.WishlistEntry, 0, len(payload))
	for _, raw := range payload {
		entries = append(entries, models.WishlistEntry{
			ID:        raw.ProductID,
			ProductID: raw.ProductID,
			EANCode:   raw.EANCode,
			Image:     raw.ImageURL,
			Images:    raw.Images,
			Color:     raw.Color,
			Name:      raw.Name,
			Brand:     raw.Brand,
		}.Normalize())
	}
	return entries, nil
}
