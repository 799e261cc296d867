package service

import (
	"context"
	"strings"
	"sync"

	"github.com/giftkart-next/internal/api"
	"github.com/giftkart-next/internal/constants"
	"github.com/giftkart-next/internal/logger"
	"github.com/giftkart-next/internal/models"
)

// AddToCartInput 加入购物车入参
type AddToCartInput struct {
	ProductID int64
	Size      string
	Color     string
	Quantity  int
}

// CartService 购物车同步服务。
// 内存列表是当前用户购物车的权威副本；所有变更走远端接口，
// 成功后整表重拉（write-then-reload），不信任本地乐观写。
type CartService struct {
	client *api.Client

	mu   sync.RWMutex
	rows []models.CartRow
}

// NewCartService 创建购物车服务
func NewCartService(client *api.Client) *CartService {
	return &CartService{client: client}
}

// Items 返回内存列表快照
func (s *CartService) Items() []models.CartRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// Refresh 整表重拉。无有效会话置空返回；
// 任何请求失败同样置空（fail-closed），不向调用方抛错。
func (s *CartService) Refresh(ctx context.Context, sess models.Session) []models.CartRow {
	if !sess.Valid() {
		s.replace(nil)
		return nil
	}
	rows, err := s.client.FetchCart(ctx, sess.UserID)
	if err != nil {
		logger.Warnw("cart_fetch_failed", "user_id", sess.UserID, "error", err)
		s.replace(nil)
		return nil
	}
	s.replace(rows)
	return s.Items()
}

// Add 加入购物车；成功后整表重拉
func (s *CartService) Add(ctx context.Context, sess models.Session, input AddToCartInput) bool {
	if !sess.Valid() || input.ProductID <= 0 {
		return false
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	err := s.client.AddCartItem(ctx, api.CartMutation{
		UserID:    sess.UserID,
		ProductID: input.ProductID,
		Size:      normalizeCartOption(input.Size),
		Color:     normalizeCartOption(input.Color),
		Quantity:  quantity,
	})
	if err != nil {
		logger.Warnw("cart_add_failed", "user_id", sess.UserID, "product_id", input.ProductID, "error", err)
		return false
	}
	s.Refresh(ctx, sess)
	return true
}

// Remove 按行 ID 删除（在内存列表中解析出定位元组）
func (s *CartService) Remove(ctx context.Context, sess models.Session, rowID int64) bool {
	row, ok := s.findRow(rowID)
	if !ok {
		return false
	}
	return s.RemoveRow(ctx, sess, row)
}

// RemoveRow 删除指定行。删除按 (user, product, size, color) 元组定位，
// 与远端加购去重使用同一元组。
func (s *CartService) RemoveRow(ctx context.Context, sess models.Session, row models.CartRow) bool {
	if !sess.Valid() || row.ProductID <= 0 {
		return false
	}
	err := s.client.DeleteCartItem(ctx, api.CartMutation{
		UserID:    sess.UserID,
		ProductID: row.ProductID,
		Size:      normalizeCartOption(row.Size),
		Color:     normalizeCartOption(row.Color),
	})
	if err != nil {
		logger.Warnw("cart_remove_failed", "user_id", sess.UserID, "product_id", row.ProductID, "error", err)
		return false
	}
	s.Refresh(ctx, sess)
	return true
}

// UpdateQuantity 修改行数量；数量必须为不小于 1 的整数，否则直接拒绝且不发请求
func (s *CartService) UpdateQuantity(ctx context.Context, sess models.Session, rowID int64, quantity int) bool {
	if !sess.Valid() || quantity < 1 {
		return false
	}
	row, ok := s.findRow(rowID)
	if !ok {
		return false
	}
	err := s.client.UpdateCartItem(ctx, api.CartMutation{
		UserID:    sess.UserID,
		ProductID: row.ProductID,
		Size:      normalizeCartOption(row.Size),
		Color:     normalizeCartOption(row.Color),
		Quantity:  quantity,
	})
	if err != nil {
		logger.Warnw("cart_update_quantity_failed", "user_id", sess.UserID, "row_id", rowID, "error", err)
		return false
	}
	s.Refresh(ctx, sess)
	return true
}

func (s *CartService) findRow(rowID int64) (models.CartRow, bool) {
	if rowID <= 0 {
		return models.CartRow{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, row := range s.rows {
		if row.ID == rowID {
			return row, true
		}
	}
	return models.CartRow{}, false
}

func (s *CartService) replace(rows []models.CartRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rows == nil {
		s.rows = []models.CartRow{}
		return
	}
	s.rows = rows
}

// normalizeCartOption 规格归一：去空白，空值落为占位值
func normalizeCartOption(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return constants.CartOptionUnset
	}
	return trimmed
}
