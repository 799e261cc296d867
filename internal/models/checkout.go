package models

import "time"

// Totals 袋级计价结果（派生值，不独立持久化）
type Totals struct {
	BagTotal       Money   `json:"bag_total"`
	DiscountTotal  Money   `json:"discount_total"`
	CouponPct      float64 `json:"coupon_pct"`
	CouponDiscount Money   `json:"coupon_discount"`
	Convenience    Money   `json:"convenience"`
	GiftWrap       Money   `json:"gift_wrap"`
	Payable        Money   `json:"payable"`
	TotalSaving    Money   `json:"total_saving"`
}

// DraftItem 结算草稿中的单个条目
type DraftItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Brand     string `json:"brand,omitempty"`
	Image     string `json:"image,omitempty"`
	Size      string `json:"selected_size,omitempty"`
	Color     string `json:"selected_color,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitOffer Money  `json:"unit_offer"`
	UnitMRP   Money  `json:"unit_mrp"`
}

// CheckoutDraft 结算草稿：下单页消费后即作废
type CheckoutDraft struct {
	ID        string      `json:"id"`
	UserID    int64       `json:"user_id"`
	Items     []DraftItem `json:"items"`
	Totals    Totals      `json:"totals"`
	CreatedAt time.Time   `json:"created_at"`
}

// Address 收货地址（仅地址字段持久化，用于下次结算预填）
type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}
