package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/giftkart-next/internal/constants"
)

// WishlistEntry 心愿单条目（本地优先持久化，远端尽力镜像）
type WishlistEntry struct {
	ID        string   `json:"id"`
	ProductID string   `json:"product_id"`
	EANCode   string   `json:"ean_code,omitempty"`
	Image     string   `json:"image"`
	Images    []string `json:"images,omitempty"`
	Color     string   `json:"color,omitempty"`
	Name      string   `json:"name,omitempty"`
	Brand     string   `json:"brand,omitempty"`
	Prices    PriceSet `json:"prices"`
}

// NormalizedID 返回条目主键（id 与 product_id 任取其一）
func (e WishlistEntry) NormalizedID() string {
	if id := strings.TrimSpace(e.ID); id != "" {
		return id
	}
	return strings.TrimSpace(e.ProductID)
}

// Normalize 规范化条目：补齐主键与展示图
func (e WishlistEntry) Normalize() WishlistEntry {
	out := e
	id := out.NormalizedID()
	out.ID = id
	out.ProductID = id
	if strings.TrimSpace(out.Image) == "" {
		if len(out.Images) > 0 && strings.TrimSpace(out.Images[0]) != "" {
			out.Image = strings.TrimSpace(out.Images[0])
		} else {
			out.Image = constants.WishlistImagePlaceholder
		}
	}
	return out
}

// NormalizeWishlist 规范化整个心愿单列表
func NormalizeWishlist(entries []WishlistEntry) []WishlistEntry {
	out := make([]WishlistEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Normalize())
	}
	return out
}

// DecodeWishlist 解析持久化的心愿单 JSON；损坏数据按空列表处理
func DecodeWishlist(raw string) []WishlistEntry {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []WishlistEntry{}
	}
	var entries []WishlistEntry
	if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
		return []WishlistEntry{}
	}
	return NormalizeWishlist(entries)
}

// VariantChoice 变体心愿单的图片/颜色选择
type VariantChoice struct {
	Image string `json:"image"`
	Color string `json:"color,omitempty"`
}

// VariantKey 变体映射的组合键（商品 ID + EAN 码）
func VariantKey(productID, eanCode string) string {
	return fmt.Sprintf("%s:%s", strings.TrimSpace(productID), strings.TrimSpace(eanCode))
}
