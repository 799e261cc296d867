package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giftkart-next/internal/api"
	"github.com/giftkart-next/internal/constants"
	"github.com/giftkart-next/internal/models"
	"github.com/giftkart-next/internal/store"
)

func setupCheckoutTest(t *testing.T, client *api.Client) (*CheckoutService, store.KV) {
	t.Helper()
	sessionStore := store.NewMemoryStore()
	durableStore := store.NewMemoryStore()
	return NewCheckoutService(sessionStore, durableStore, client, NewPricingService(0)), sessionStore
}

func TestBuildDraftFreezesCart(t *testing.T) {
	checkout, sessionStore := setupCheckoutTest(t, nil)
	sess := models.Session{UserID: 7, UserType: constants.UserTypeRetail}
	rows := []models.CartRow{retailRow(1000, 800, 2)}

	draft, ok := checkout.BuildDraft(sess, rows, QuoteInput{})
	if !ok {
		t.Fatalf("draft build should succeed")
	}
	if draft.ID == "" || draft.UserID != 7 || len(draft.Items) != 1 {
		t.Fatalf("unexpected draft: %+v", draft)
	}
	assertMoney(t, "payable", draft.Totals.Payable, "1600.00")

	if _, ok := sessionStore.Get(constants.StoreKeyCheckoutPayload); !ok {
		t.Fatalf("draft should be written to the session store")
	}

	loaded, ok := checkout.LoadDraft(sess)
	if !ok || loaded.ID != draft.ID {
		t.Fatalf("draft should round-trip through the session store")
	}
}

func TestBuildDraftRejectsEmptyCart(t *testing.T) {
	checkout, _ := setupCheckoutTest(t, nil)
	sess := models.Session{UserID: 7, UserType: constants.UserTypeRetail}

	if _, ok := checkout.BuildDraft(sess, nil, QuoteInput{}); ok {
		t.Fatalf("empty cart should not produce a draft")
	}
	if _, ok := checkout.BuildDraft(models.Session{}, []models.CartRow{retailRow(100, 100, 1)}, QuoteInput{}); ok {
		t.Fatalf("missing session should not produce a draft")
	}
}

func TestLoadDraftRejectsForeignUser(t *testing.T) {
	checkout, _ := setupCheckoutTest(t, nil)
	owner := models.Session{UserID: 7, UserType: constants.UserTypeRetail}
	other := models.Session{UserID: 8, UserType: constants.UserTypeRetail}

	if _, ok := checkout.BuildDraft(owner, []models.CartRow{retailRow(100, 100, 1)}, QuoteInput{}); !ok {
		t.Fatalf("draft build should succeed")
	}
	if _, ok := checkout.LoadDraft(other); ok {
		t.Fatalf("another user's draft should not be readable")
	}
}

func TestLoadDraftRepairsStalePayload(t *testing.T) {
	checkout, sessionStore := setupCheckoutTest(t, nil)
	sess := models.Session{UserID: 7, UserType: constants.UserTypeRetail}

	stale := models.CheckoutDraft{
		ID:     "stale-draft",
		UserID: 7,
		Items: []models.DraftItem{
			{
				ProductID: 101,
				Quantity:  2,
				UnitMRP:   models.NewMoneyFromInt(500),
				// 售价缺失：应回退到 MRP
			},
			{
				ProductID: 102,
				Quantity:  -3,
				UnitOffer: models.NewMoneyFromInt(100),
				UnitMRP:   models.NewMoneyFromInt(100),
			},
		},
		Totals: models.Totals{
			GiftWrap: models.NewMoneyFromInt(39),
			// 应付金额缺失：应本地重算
		},
	}
	if err := store.SetJSON(sessionStore, constants.StoreKeyCheckoutPayload, stale); err != nil {
		t.Fatalf("seed stale draft failed: %v", err)
	}

	draft, ok := checkout.LoadDraft(sess)
	if !ok {
		t.Fatalf("stale draft should be repaired, not rejected")
	}
	if draft.Items[0].UnitOffer.StringFixed(2) != "500.00" {
		t.Fatalf("missing offer should fall back to mrp, got %s", draft.Items[0].UnitOffer.StringFixed(2))
	}
	if draft.Items[1].Quantity != 0 {
		t.Fatalf("negative quantity should clamp to 0, got %d", draft.Items[1].Quantity)
	}
	// 2*500 + 0*100 + 39 礼品包装
	assertMoney(t, "repaired payable", draft.Totals.Payable, "1039.00")
}

func TestPlaceOrderConsumesDraft(t *testing.T) {
	var received api.CreateSaleInput
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/sales" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.Sale{ID: 11, OrderNo: "TK-11", Status: "placed"})
	}))
	defer remote.Close()

	checkout, _ := setupCheckoutTest(t, api.New(remote.URL, 0))
	sess := models.Session{UserID: 7, UserType: constants.UserTypeRetail}
	draft, ok := checkout.BuildDraft(sess, []models.CartRow{retailRow(1000, 800, 2)}, QuoteInput{})
	if !ok {
		t.Fatalf("draft build should succeed")
	}

	address := models.Address{Name: "张三", Phone: "9876543210", Line1: "1 MG Road", City: "Bengaluru", State: "KA", Pincode: "560001"}
	sale, ok := checkout.PlaceOrder(context.Background(), sess, address)
	if !ok || sale == nil || sale.OrderNo != "TK-11" {
		t.Fatalf("order placement should succeed, got %+v", sale)
	}
	if received.RequestID != draft.ID {
		t.Fatalf("order should carry the draft id as idempotency key, got %s", received.RequestID)
	}
	if received.Payable.StringFixed(2) != "1600.00" {
		t.Fatalf("order payable want 1600.00 got %s", received.Payable.StringFixed(2))
	}

	if _, ok := checkout.LoadDraft(sess); ok {
		t.Fatalf("draft should be discarded after a successful order")
	}
	if addr, ok := checkout.LoadAddress(); !ok || addr.Pincode != "560001" {
		t.Fatalf("address should be persisted for prefill, got %+v", addr)
	}
}

func TestPlaceOrderKeepsDraftOnFailure(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer remote.Close()

	checkout, _ := setupCheckoutTest(t, api.New(remote.URL, 0))
	sess := models.Session{UserID: 7, UserType: constants.UserTypeRetail}
	if _, ok := checkout.BuildDraft(sess, []models.CartRow{retailRow(1000, 800, 2)}, QuoteInput{}); !ok {
		t.Fatalf("draft build should succeed")
	}

	if _, ok := checkout.PlaceOrder(context.Background(), sess, models.Address{}); ok {
		t.Fatalf("order placement should fail when the remote errors")
	}
	if _, ok := checkout.LoadDraft(sess); !ok {
		t.Fatalf("draft should survive a failed order placement")
	}
}
