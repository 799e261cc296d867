package service

import (
	"strings"

	"github.com/giftkart-next/internal/constants"
	"github.com/giftkart-next/internal/models"

	"github.com/shopspring/decimal"
)

// QuoteInput 计价入参
type QuoteInput struct {
	CouponCode string
	GiftWrap   bool
}

// CouponOutcome 优惠码匹配结果
type CouponOutcome struct {
	Code     string  `json:"code"`
	Pct      float64 `json:"pct"`
	Result   string  `json:"result"` // applied / free_shipping / rejected
	Accepted bool    `json:"accepted"`
}

// PricingService 计价服务：购物车行 + 用户类型的纯派生，无任何持久化
type PricingService struct {
	giftWrapFee models.Money
}

// NewPricingService 创建计价服务
func NewPricingService(giftWrapFee int) *PricingService {
	fee := giftWrapFee
	if fee <= 0 {
		fee = constants.GiftWrapFlatFee
	}
	return &PricingService{giftWrapFee: models.NewMoneyFromInt(int64(fee))}
}

// MatchCoupon 匹配优惠码（固定白名单，大小写不敏感）。
// 空码是"未输入"而非"输错"，返回中性零值；
// 未识别的码将折扣比例重置为 0 并标记拒绝。
func (s *PricingService) MatchCoupon(code string) CouponOutcome {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	switch normalized {
	case "":
		return CouponOutcome{}
	case constants.CouponCodeBlue10:
		return CouponOutcome{Code: normalized, Pct: 10, Result: constants.CouponResultApplied, Accepted: true}
	case constants.CouponCodeFreeShip:
		// 包邮码：接受但不产生金额折扣
		return CouponOutcome{Code: normalized, Pct: 0, Result: constants.CouponResultShipping, Accepted: true}
	default:
		return CouponOutcome{Code: normalized, Pct: 0, Result: constants.CouponResultRejected}
	}
}

// Quote 计算袋级合计。
// payable = bagTotal - discountTotal - couponDiscount + convenience + giftWrap
func (s *PricingService) Quote(rows []models.CartRow, sess models.Session, input QuoteInput) (models.Totals, CouponOutcome) {
	coupon := s.MatchCoupon(input.CouponCode)

	bagTotal := decimal.Zero
	discountTotal := decimal.Zero
	for _, row := range rows {
		qty := row.Quantity
		if qty <= 0 {
			continue
		}
		pair := row.Prices.ForSession(sess)
		if pair.IsZero() {
			continue
		}
		quantity := decimal.NewFromInt(int64(qty))
		bagTotal = bagTotal.Add(pair.MRP.Decimal.Mul(quantity))
		// 仅当售价低于 MRP 时该行才贡献折扣
		if pair.Offer.Decimal.LessThan(pair.MRP.Decimal) {
			discountTotal = discountTotal.Add(pair.MRP.Decimal.Sub(pair.Offer.Decimal).Mul(quantity))
		}
	}

	subTotal := bagTotal.Sub(discountTotal)
	couponDiscount := decimal.Zero
	if coupon.Pct > 0 {
		pct := decimal.NewFromFloat(coupon.Pct).Div(decimal.NewFromInt(100))
		couponDiscount = subTotal.Mul(pct)
	}

	convenience := decimal.Zero
	giftWrap := decimal.Zero
	if input.GiftWrap {
		giftWrap = s.giftWrapFee.Decimal
	}
	payable := subTotal.Sub(couponDiscount).Add(convenience).Add(giftWrap)

	return models.Totals{
		BagTotal:       models.NewMoneyFromDecimal(bagTotal),
		DiscountTotal:  models.NewMoneyFromDecimal(discountTotal),
		CouponPct:      coupon.Pct,
		CouponDiscount: models.NewMoneyFromDecimal(couponDiscount),
		Convenience:    models.NewMoneyFromDecimal(convenience),
		GiftWrap:       models.NewMoneyFromDecimal(giftWrap),
		Payable:        models.NewMoneyFromDecimal(payable),
		TotalSaving:    models.NewMoneyFromDecimal(discountTotal.Add(couponDiscount)),
	}, coupon
}
