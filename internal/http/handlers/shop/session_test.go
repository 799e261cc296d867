package shop

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/giftkart-next/internal/constants"
	"github.com/giftkart-next/internal/provider"
	"github.com/giftkart-next/internal/service"
	"github.com/giftkart-next/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "shop-handler-test-secret"

func setupSessionHandlerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessionStore := store.NewMemoryStore()
	durableStore := store.NewMemoryStore()
	container := &provider.Container{
		SessionStore:   sessionStore,
		DurableStore:   durableStore,
		SessionService: service.NewSessionService(sessionStore, durableStore, testSecret),
	}
	handler := New(container)

	r := gin.New()
	r.POST("/api/session", handler.EstablishSession)
	r.GET("/api/session", handler.GetSession)
	r.DELETE("/api/session", handler.ClearSession)
	return r
}

func signTestToken(t *testing.T, userID int64, userType string) string {
	t.Helper()
	claims := service.SessionClaims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request failed: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response failed: %v (%s)", err, w.Body.String())
	}
	return w, envelope
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	r := setupSessionHandlerTest(t)

	_, envelope := doJSON(t, r, http.MethodGet, "/api/session", nil)
	if envelope["status_code"] != float64(401) {
		t.Fatalf("fresh process should have no session, got %+v", envelope)
	}

	token := signTestToken(t, 7, constants.UserTypeBusiness)
	_, envelope = doJSON(t, r, http.MethodPost, "/api/session", gin.H{"token": token})
	if envelope["status_code"] != float64(0) {
		t.Fatalf("establish should succeed, got %+v", envelope)
	}
	data := envelope["data"].(map[string]interface{})
	if data["user_id"] != float64(7) || data["user_type"] != constants.UserTypeBusiness {
		t.Fatalf("unexpected session data: %+v", data)
	}

	_, envelope = doJSON(t, r, http.MethodGet, "/api/session", nil)
	if envelope["status_code"] != float64(0) {
		t.Fatalf("session should now exist, got %+v", envelope)
	}

	_, envelope = doJSON(t, r, http.MethodDelete, "/api/session", nil)
	if envelope["status_code"] != float64(0) {
		t.Fatalf("clear should succeed, got %+v", envelope)
	}
	_, envelope = doJSON(t, r, http.MethodGet, "/api/session", nil)
	if envelope["status_code"] != float64(401) {
		t.Fatalf("session should be gone after clear, got %+v", envelope)
	}
}

func TestEstablishSessionRejectsBadToken(t *testing.T) {
	r := setupSessionHandlerTest(t)

	_, envelope := doJSON(t, r, http.MethodPost, "/api/session", gin.H{"token": "garbage"})
	if envelope["status_code"] != float64(401) {
		t.Fatalf("garbage token should be unauthorized, got %+v", envelope)
	}

	_, envelope = doJSON(t, r, http.MethodPost, "/api/session", gin.H{})
	if envelope["status_code"] != float64(400) {
		t.Fatalf("missing token should be a bad request, got %+v", envelope)
	}
}
