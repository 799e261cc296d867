package service

import (
	"context"
	"time"

	"github.com/giftkart-next/internal/api"
	"github.com/giftkart-next/internal/constants"
	"github.com/giftkart-next/internal/logger"
	"github.com/giftkart-next/internal/models"
	"github.com/giftkart-next/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutService 结算交接服务。
// 草稿写入会话存储，下单页消费；下单成功后草稿删除，
// 地址字段单独落持久存储用于下次预填。
type CheckoutService struct {
	sessionStore store.KV
	durableStore store.KV
	client       *api.Client
	pricing      *PricingService
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(sessionStore, durableStore store.KV, client *api.Client, pricing *PricingService) *CheckoutService {
	return &CheckoutService{
		sessionStore: sessionStore,
		durableStore: durableStore,
		client:       client,
		pricing:      pricing,
	}
}

// BuildDraft 从当前购物车冻结一份结算草稿并写入会话存储
func (s *CheckoutService) BuildDraft(sess models.Session, rows []models.CartRow, input QuoteInput) (*models.CheckoutDraft, bool) {
	if !sess.Valid() || len(rows) == 0 {
		return nil, false
	}
	totals, _ := s.pricing.Quote(rows, sess, input)
	items := make([]models.DraftItem, 0, len(rows))
	for _, row := range rows {
		if row.Quantity <= 0 {
			continue
		}
		pair := row.Prices.ForSession(sess)
		items = append(items, models.DraftItem{
			ProductID: row.ProductID,
			Name:      row.Name,
			Brand:     row.Brand,
			Image:     row.Image,
			Size:      row.Size,
			Color:     row.Color,
			Quantity:  row.Quantity,
			UnitOffer: pair.Offer,
			UnitMRP:   pair.MRP,
		})
	}
	if len(items) == 0 {
		return nil, false
	}
	draft := &models.CheckoutDraft{
		ID:        uuid.NewString(),
		UserID:    sess.UserID,
		Items:     items,
		Totals:    totals,
		CreatedAt: time.Now(),
	}
	if err := store.SetJSON(s.sessionStore, constants.StoreKeyCheckoutPayload, draft); err != nil {
		logger.Warnw("checkout_draft_persist_failed", "user_id", sess.UserID, "error", err)
		return nil, false
	}
	return draft, true
}

// LoadDraft 读取草稿并做防御性修复：
// 缺失/非正的售价回退到 MRP，应付金额非正时本地重算。
func (s *CheckoutService) LoadDraft(sess models.Session) (*models.CheckoutDraft, bool) {
	if !sess.Valid() {
		return nil, false
	}
	var draft models.CheckoutDraft
	if !store.GetJSON(s.sessionStore, constants.StoreKeyCheckoutPayload, &draft) {
		return nil, false
	}
	if draft.UserID != sess.UserID {
		return nil, false
	}
	normalizeDraft(&draft)
	return &draft, true
}

// DiscardDraft 删除草稿（草稿一经消费即作废）
func (s *CheckoutService) DiscardDraft() {
	_ = s.sessionStore.Delete(constants.StoreKeyCheckoutPayload)
}

// PlaceOrder 提交订单；成功后删除草稿并落地址预填
func (s *CheckoutService) PlaceOrder(ctx context.Context, sess models.Session, address models.Address) (*api.Sale, bool) {
	draft, ok := s.LoadDraft(sess)
	if !ok {
		return nil, false
	}
	items := make([]api.SaleItem, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, api.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitOffer,
			UnitMRP:   item.UnitMRP,
		})
	}
	sale, err := s.client.CreateSale(ctx, api.CreateSaleInput{
		UserID:    sess.UserID,
		RequestID: draft.ID,
		Items:     items,
		Payable:   draft.Totals.Payable,
		Address:   address,
	})
	if err != nil {
		logger.Warnw("checkout_place_order_failed", "user_id", sess.UserID, "error", err)
		return nil, false
	}
	s.DiscardDraft()
	s.SaveAddress(address)
	return sale, true
}

// SaveAddress 持久化地址预填
func (s *CheckoutService) SaveAddress(address models.Address) {
	if err := store.SetJSON(s.durableStore, constants.StoreKeyCheckoutAddress, address); err != nil {
		logger.Warnw("checkout_address_persist_failed", "error", err)
	}
}

// LoadAddress 读取地址预填
func (s *CheckoutService) LoadAddress() (models.Address, bool) {
	var address models.Address
	if !store.GetJSON(s.durableStore, constants.StoreKeyCheckoutAddress, &address) {
		return models.Address{}, false
	}
	return address, true
}

// normalizeDraft 对陈旧或畸形草稿的安全网，而非直接拒绝
func normalizeDraft(draft *models.CheckoutDraft) {
	recomputed := decimal.Zero
	for i := range draft.Items {
		item := &draft.Items[i]
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		if !item.UnitOffer.IsPositive() && item.UnitMRP.IsPositive() {
			item.UnitOffer = item.UnitMRP
		}
		if !item.UnitMRP.IsPositive() && item.UnitOffer.IsPositive() {
			item.UnitMRP = item.UnitOffer
		}
		quantity := decimal.NewFromInt(int64(item.Quantity))
		recomputed = recomputed.Add(item.UnitOffer.Decimal.Mul(quantity))
	}
	if !draft.Totals.Payable.IsPositive() {
		recomputed = recomputed.
			Sub(draft.Totals.CouponDiscount.Decimal).
			Add(draft.Totals.Convenience.Decimal).
			Add(draft.Totals.GiftWrap.Decimal)
		draft.Totals.Payable = models.NewMoneyFromDecimal(recomputed)
	}
}
