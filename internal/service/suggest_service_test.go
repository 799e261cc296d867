package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/giftkart-next/internal/api"
)

func TestSuggestReturnsMatches(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]api.Suggestion{
			{ProductID: 101, Name: "蓝色马克杯", Category: "mugs"},
		})
	}))
	defer remote.Close()

	suggest := NewSuggestService(api.New(remote.URL, 0))
	suggestions, ok := suggest.Suggest(context.Background(), "mug")
	if !ok || len(suggestions) != 1 || suggestions[0].ProductID != 101 {
		t.Fatalf("unexpected suggestions: %+v ok=%v", suggestions, ok)
	}
}

func TestSuggestEmptyQueryShortCircuits(t *testing.T) {
	var requests int
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("[]"))
	}))
	defer remote.Close()

	suggest := NewSuggestService(api.New(remote.URL, 0))
	suggestions, ok := suggest.Suggest(context.Background(), "   ")
	if !ok || len(suggestions) != 0 {
		t.Fatalf("empty query should yield an empty fresh result, got %+v ok=%v", suggestions, ok)
	}
	if requests != 0 {
		t.Fatalf("empty query should not hit the remote")
	}
}

func TestSuggestDropsStaleResponses(t *testing.T) {
	release := make(chan struct{})
	var once sync.Once
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "slow" {
			select {
			case <-release:
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]api.Suggestion{{ProductID: 1, Name: query}})
	}))
	defer remote.Close()
	defer once.Do(func() { close(release) })

	suggest := NewSuggestService(api.New(remote.URL, 0))

	type result struct {
		suggestions []api.Suggestion
		ok          bool
	}
	slowDone := make(chan result, 1)
	go func() {
		suggestions, ok := suggest.Suggest(context.Background(), "slow")
		slowDone <- result{suggestions, ok}
	}()

	// 等慢请求进入在途状态后再发起新输入
	time.Sleep(50 * time.Millisecond)
	suggestions, ok := suggest.Suggest(context.Background(), "fast")
	if !ok || len(suggestions) != 1 || suggestions[0].Name != "fast" {
		t.Fatalf("newer query should win, got %+v ok=%v", suggestions, ok)
	}

	once.Do(func() { close(release) })
	select {
	case slow := <-slowDone:
		if slow.ok {
			t.Fatalf("superseded query must report stale, got %+v", slow.suggestions)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("slow request never finished")
	}
}
