package models

import (
	"testing"

	"github.com/giftkart-next/internal/constants"
)

func pair(mrp, offer int64) PricePair {
	return PricePair{MRP: NewMoneyFromInt(mrp), Offer: NewMoneyFromInt(offer)}
}

func TestForSessionSelectsByUserType(t *testing.T) {
	set := PriceSet{Retail: pair(1000, 800), Business: pair(900, 700)}

	retail := set.ForSession(Session{UserID: 1, UserType: constants.UserTypeRetail})
	if retail.MRP.StringFixed(2) != "1000.00" {
		t.Fatalf("retail session should see retail prices, got %+v", retail)
	}
	business := set.ForSession(Session{UserID: 1, UserType: constants.UserTypeBusiness})
	if business.MRP.StringFixed(2) != "900.00" {
		t.Fatalf("business session should see business prices, got %+v", business)
	}
}

func TestForSessionFallsBackToCounterpart(t *testing.T) {
	set := PriceSet{Retail: pair(1000, 800)}
	business := set.ForSession(Session{UserID: 1, UserType: constants.UserTypeBusiness})
	if business.MRP.StringFixed(2) != "1000.00" || business.Offer.StringFixed(2) != "800.00" {
		t.Fatalf("empty business side should fall back to retail, got %+v", business)
	}
}

func TestNormalizedFillsMissingSide(t *testing.T) {
	onlyMRP := PricePair{MRP: NewMoneyFromInt(500)}.Normalized()
	if onlyMRP.Offer.StringFixed(2) != "500.00" {
		t.Fatalf("missing offer should take mrp, got %+v", onlyMRP)
	}
	onlyOffer := PricePair{Offer: NewMoneyFromInt(450)}.Normalized()
	if onlyOffer.MRP.StringFixed(2) != "450.00" {
		t.Fatalf("missing mrp should take offer, got %+v", onlyOffer)
	}
}

func TestParseUserID(t *testing.T) {
	if id, ok := ParseUserID(" 42 "); !ok || id != 42 {
		t.Fatalf("want 42, got %d ok=%v", id, ok)
	}
	for _, raw := range []string{"", "abc", "0", "-5", "4.2"} {
		if _, ok := ParseUserID(raw); ok {
			t.Fatalf("%q should not parse as a user id", raw)
		}
	}
}

func TestSessionNormalizedUserType(t *testing.T) {
	if got := (Session{UserID: 1, UserType: " Business "}).NormalizedUserType(); got != constants.UserTypeBusiness {
		t.Fatalf("case and whitespace should normalize, got %q", got)
	}
	if got := (Session{UserID: 1, UserType: "wholesale"}).NormalizedUserType(); got != constants.UserTypeRetail {
		t.Fatalf("unknown type should fall back to retail, got %q", got)
	}
}
