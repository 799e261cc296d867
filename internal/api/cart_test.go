package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giftkart-next/internal/models"
)

func TestCoverImageVariants(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"array", `["https://cdn.example.com/a.jpg","https://cdn.example.com/b.jpg"]`, "https://cdn.example.com/a.jpg"},
		{"encoded string", `"[\"https://cdn.example.com/a.jpg\"]"`, "https://cdn.example.com/a.jpg"},
		{"empty array", `[]`, ""},
		{"empty", ``, ""},
		{"corrupt", `{broken`, ""},
		{"plain string", `"not-a-json-array"`, ""},
	}
	for _, tc := range cases {
		if got := coverImage(json.RawMessage(tc.raw)); got != tc.want {
			t.Fatalf("%s: coverImage want %q got %q", tc.name, tc.want, got)
		}
	}
}

func TestNormalizePricePairPrefersCurrentNaming(t *testing.T) {
	money := func(v int64) *models.Money {
		m := models.NewMoneyFromInt(v)
		return &m
	}

	pair := normalizePricePair(money(1000), money(800), money(900), money(700))
	if pair.MRP.StringFixed(2) != "1000.00" || pair.Offer.StringFixed(2) != "800.00" {
		t.Fatalf("current naming should win, got %+v", pair)
	}

	pair = normalizePricePair(nil, nil, money(900), money(700))
	if pair.MRP.StringFixed(2) != "900.00" || pair.Offer.StringFixed(2) != "700.00" {
		t.Fatalf("legacy naming should fill the gaps, got %+v", pair)
	}

	zero := models.NewMoneyFromInt(0)
	pair = normalizePricePair(&zero, money(800), money(900), nil)
	if pair.MRP.StringFixed(2) != "900.00" || pair.Offer.StringFixed(2) != "800.00" {
		t.Fatalf("non-positive current values should fall back, got %+v", pair)
	}
}

func TestFetchCartNormalizesLegacyRows(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cart/7" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Cache-Control") != "no-cache" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": 1,
				"user_id": 7,
				"product_id": 101,
				"selected_size": " M ",
				"selected_color": "blue",
				"quantity": 2,
				"name": "马克杯",
				"mrp": 1000,
				"price": 800,
				"b2b_mrp": 900,
				"b2b_price": 700,
				"images": "[\"https://cdn.example.com/a.jpg\"]"
			}
		]`))
	}))
	defer remote.Close()

	client := New(remote.URL, 0)
	rows, err := client.FetchCart(context.Background(), 7)
	if err != nil {
		t.Fatalf("fetch cart failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("want 1 row got %d", len(rows))
	}
	row := rows[0]
	if row.Size != "M" || row.Color != "blue" {
		t.Fatalf("options should be trimmed, got %q %q", row.Size, row.Color)
	}
	if row.Prices.Retail.MRP.StringFixed(2) != "1000.00" || row.Prices.Retail.Offer.StringFixed(2) != "800.00" {
		t.Fatalf("legacy retail prices not normalized: %+v", row.Prices.Retail)
	}
	if row.Prices.Business.MRP.StringFixed(2) != "900.00" || row.Prices.Business.Offer.StringFixed(2) != "700.00" {
		t.Fatalf("legacy business prices not normalized: %+v", row.Prices.Business)
	}
	if row.Image != "https://cdn.example.com/a.jpg" {
		t.Fatalf("cover image not extracted, got %q", row.Image)
	}
}

func TestClientNormalizesBaseURL(t *testing.T) {
	client := New("  https://api.example.com///  ", 0)
	if client.BaseURL() != "https://api.example.com" {
		t.Fatalf("base url not normalized, got %q", client.BaseURL())
	}
}
