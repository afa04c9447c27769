package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"momo_relay/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("configured", func(t *testing.T) {
		h := NewHealthHandler(config.Config{MoneyUnifyAuthID: "mu-test"})
		r := gin.New()
		r.GET("/health", h.Health)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "ok" || body["moneyunify_configured"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["service"] != config.ServiceName || body["timestamp"] == "" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not configured", func(t *testing.T) {
		h := NewHealthHandler(config.Config{})
		r := gin.New()
		r.GET("/health", h.Health)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["moneyunify_configured"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestHealthHandler_ServiceInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHealthHandler(config.Config{})
	r := gin.New()
	r.GET("/", h.ServiceInfo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["service"] != config.ServiceName {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	endpoints, _ := body["endpoints"].(map[string]any)
	if _, ok := endpoints["POST /create-mobile-money-payment"]; !ok {
		t.Fatalf("endpoint listing missing: %s", w.Body.String())
	}
}
