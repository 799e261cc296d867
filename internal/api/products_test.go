package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchProductsNormalizesRows(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("category") != "mugs" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": 101,
				"name": "马克杯",
				"category": "mugs",
				"mrp": 1000,
				"price": 800,
				"images": ["https://cdn.example.com/a.jpg"]
			}
		]`))
	}))
	defer remote.Close()

	client := New(remote.URL, 0)
	products, err := client.FetchProducts(context.Background(), " mugs ")
	if err != nil {
		t.Fatalf("fetch products failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("want 1 product got %d", len(products))
	}
	product := products[0]
	if product.Image != "https://cdn.example.com/a.jpg" {
		t.Fatalf("cover image not extracted, got %q", product.Image)
	}
	if product.Prices.Retail.MRP.StringFixed(2) != "1000.00" || product.Prices.Retail.Offer.StringFixed(2) != "800.00" {
		t.Fatalf("legacy prices not normalized: %+v", product.Prices.Retail)
	}
}

func TestSearchSuggestionsEscapesQuery(t *testing.T) {
	var gotQuery string
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_, _ = w.Write([]byte("[]"))
	}))
	defer remote.Close()

	client := New(remote.URL, 0)
	if _, err := client.SearchSuggestions(context.Background(), "blue mug & saucer"); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if gotQuery != "blue mug & saucer" {
		t.Fatalf("query not escaped round-trip, got %q", gotQuery)
	}
}
