package store

import (
	"testing"

	"github.com/giftkart-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupGormStoreTest(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatalf("migrate kv entries failed: %v", err)
	}
	return NewGormStore(db)
}

func TestGormStoreRoundTrip(t *testing.T) {
	kv := setupGormStoreTest(t)

	if _, ok := kv.Get("missing"); ok {
		t.Fatalf("missing key should report absent")
	}
	if err := kv.Set("wishlist:local:7", `[{"id":"101"}]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, ok := kv.Get("wishlist:local:7")
	if !ok || value != `[{"id":"101"}]` {
		t.Fatalf("get after set want stored value, got %q ok=%v", value, ok)
	}
}

func TestGormStoreLastWriteWins(t *testing.T) {
	kv := setupGormStoreTest(t)

	if err := kv.Set("user_type", "retail"); err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	if err := kv.Set("user_type", "business"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, ok := kv.Get("user_type")
	if !ok || value != "business" {
		t.Fatalf("overwrite should win, got %q ok=%v", value, ok)
	}
}

func TestGormStoreDelete(t *testing.T) {
	kv := setupGormStoreTest(t)

	if err := kv.Set("tk_checkout_payload", "{}"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := kv.Delete("tk_checkout_payload"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := kv.Get("tk_checkout_payload"); ok {
		t.Fatalf("deleted key should report absent")
	}
	if err := kv.Delete("tk_checkout_payload"); err != nil {
		t.Fatalf("repeated delete should be a no-op, got %v", err)
	}
}

func TestGormStoreRejectsEmptyKey(t *testing.T) {
	kv := setupGormStoreTest(t)
	if err := kv.Set("", "value"); err == nil {
		t.Fatalf("empty key should be rejected")
	}
}

func TestJSONHelpers(t *testing.T) {
	kv := NewMemoryStore()

	type payload struct {
		UserID int64 `json:"user_id"`
	}
	if err := SetJSON(kv, "k", payload{UserID: 7}); err != nil {
		t.Fatalf("set json failed: %v", err)
	}
	var out payload
	if !GetJSON(kv, "k", &out) || out.UserID != 7 {
		t.Fatalf("json round trip failed: %+v", out)
	}

	_ = kv.Set("corrupt", "{not json")
	out = payload{}
	if GetJSON(kv, "corrupt", &out) {
		t.Fatalf("corrupt json should report false")
	}
	if GetJSON(kv, "missing", &out) {
		t.Fatalf("missing key should report false")
	}
}
