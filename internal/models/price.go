package models

// PricePair 规范化后的单品价格（上游字段漂移在接口适配层收敛为该形态）
type PricePair struct {
	MRP   Money `json:"mrp"`
	Offer Money `json:"offer"`
}

// IsZero 价格对是否为空
func (p PricePair) IsZero() bool {
	return !p.MRP.IsPositive() && !p.Offer.IsPositive()
}

// Normalized 补齐缺失的一侧（只有 MRP 时售价取 MRP，反之亦然）
func (p PricePair) Normalized() PricePair {
	out := p
	if !out.Offer.IsPositive() && out.MRP.IsPositive() {
		out.Offer = out.MRP
	}
	if !out.MRP.IsPositive() && out.Offer.IsPositive() {
		out.MRP = out.Offer
	}
	return out
}

// PriceSet 零售/企业双轨价格快照
type PriceSet struct {
	Retail   PricePair `json:"retail"`
	Business PricePair `json:"business"`
}

// ForSession 按用户类型选取价格对；所选一侧为空时回退到另一侧
func (s PriceSet) ForSession(sess Session) PricePair {
	primary, fallback := s.Retail, s.Business
	if sess.IsBusiness() {
		primary, fallback = s.Business, s.Retail
	}
	if primary.IsZero() {
		return fallback.Normalized()
	}
	return primary.Normalized()
}
