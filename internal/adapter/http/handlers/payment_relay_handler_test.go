package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"momo_relay/internal/adapter/http/handlers/mocks"
	"momo_relay/internal/domain/entities"
	"momo_relay/internal/infrastructure/config"
	"momo_relay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRelayRouter(t *testing.T, cfg config.Config) (*gin.Engine, *mocks.MockIPaymentRelayUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIPaymentRelayUseCase(ctrl)
	h := NewPaymentRelayHandler(uc, cfg)

	r := gin.New()
	r.POST("/create-mobile-money-payment", h.CreateMobileMoneyPayment)
	r.POST("/verify-mobile-money-payment", h.VerifyMobileMoneyPayment)
	return r, uc
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestPaymentRelayHandler_CreateMobileMoneyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newRelayRouter(t, config.Config{})

		w := postJSON(r, "/create-mobile-money-payment", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeEnvelope(t, w)
		if body["isError"] != true {
			t.Fatalf("expected error envelope, got %s", w.Body.String())
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		r, uc := newRelayRouter(t, config.Config{})
		uc.EXPECT().InitiatePayment(gomock.Any(), "097", "50.00").Return(entities.ProviderReceipt{}, usecase.ErrInvalidFromPayer)

		w := postJSON(r, "/create-mobile-money-payment", `{"from_payer":"097","amount":"50.00"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeEnvelope(t, w)
		if body["isError"] != true || body["message"] != usecase.ErrInvalidFromPayer.Error() {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		r, uc := newRelayRouter(t, config.Config{})
		uc.EXPECT().InitiatePayment(gomock.Any(), "0971234567", "50.00").Return(entities.ProviderReceipt{}, usecase.ErrGatewayNotConfigured)

		w := postJSON(r, "/create-mobile-money-payment", `{"from_payer":"0971234567","amount":"50.00"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("provider declined passthrough", func(t *testing.T) {
		r, uc := newRelayRouter(t, config.Config{})
		uc.EXPECT().InitiatePayment(gomock.Any(), "0971234567", "50.00").
			Return(entities.ProviderReceipt{}, &entities.ProviderDeclinedError{Message: "X"})

		w := postJSON(r, "/create-mobile-money-payment", `{"from_payer":"0971234567","amount":"50.00"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeEnvelope(t, w)
		if body["isError"] != true || body["message"] != "X" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("protocol error hides detail in production", func(t *testing.T) {
		r, uc := newRelayRouter(t, config.Config{Environment: "production"})
		wrapped := errors.New("content-type \"text/html\"")
		uc.EXPECT().InitiatePayment(gomock.Any(), "0971234567", "50.00").
			Return(entities.ProviderReceipt{}, errors.Join(entities.ErrUnexpectedProviderResponse, wrapped))

		w := postJSON(r, "/create-mobile-money-payment", `{"from_payer":"0971234567","amount":"50.00"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeEnvelope(t, w)
		if body["message"] != "Unexpected response from payment provider" {
			t.Fatalf("expected generic message, got %s", w.Body.String())
		}
	})

	t.Run("internal detail echoed outside production", func(t *testing.T) {
		r, uc := newRelayRouter(t, config.Config{Environment: "development"})
		uc.EXPECT().InitiatePayment(gomock.Any(), "0971234567", "50.00").
			Return(entities.ProviderReceipt{}, errors.New("dial tcp: connection refused"))

		w := postJSON(r, "/create-mobile-money-payment", `{"from_payer":"0971234567","amount":"50.00"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeEnvelope(t, w)
		msg, _ := body["message"].(string)
		if msg == "An internal error occurred" {
			t.Fatalf("expected detail appended outside production, got %q", msg)
		}
	})

	t.Run("success passthrough", func(t *testing.T) {
		r, uc := newRelayRouter(t, config.Config{})
		uc.EXPECT().InitiatePayment(gomock.Any(), "0971234567", "50.00").Return(entities.ProviderReceipt{
			Message: "ok",
			Data:    map[string]interface{}{"transaction_id": "T1"},
		}, nil)

		w := postJSON(r, "/create-mobile-money-payment", `{"from_payer":"0971234567","amount":"50.00"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeEnvelope(t, w)
		if body["isError"] != false || body["message"] != "ok" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		data, _ := body["data"].(map[string]any)
		if data["transaction_id"] != "T1" {
			t.Fatalf("unexpected data: %s", w.Body.String())
		}
	})

	t.Run("numeric amount accepted", func(t *testing.T) {
		r, uc := newRelayRouter(t, config.Config{})
		uc.EXPECT().InitiatePayment(gomock.Any(), "0971234567", "50").Return(entities.ProviderReceipt{Message: "ok"}, nil)

		w := postJSON(r, "/create-mobile-money-payment", `{"from_payer":"0971234567","amount":50}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentRelayHandler_VerifyMobileMoneyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing transaction id", func(t *testing.T) {
		r, uc := newRelayRouter(t, config.Config{})
		uc.EXPECT().VerifyPayment(gomock.Any(), "").Return(entities.ProviderReceipt{}, usecase.ErrMissingTransactionID)

		w := postJSON(r, "/verify-mobile-money-payment", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success passthrough", func(t *testing.T) {
		r, uc := newRelayRouter(t, config.Config{})
		uc.EXPECT().VerifyPayment(gomock.Any(), "T1").Return(entities.ProviderReceipt{
			Message: "transaction found",
			Data:    map[string]interface{}{"status": "completed"},
		}, nil)

		w := postJSON(r, "/verify-mobile-money-payment", `{"transaction_id":"T1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeEnvelope(t, w)
		data, _ := body["data"].(map[string]any)
		if data["status"] != "completed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("protocol error", func(t *testing.T) {
		r, uc := newRelayRouter(t, config.Config{})
		uc.EXPECT().VerifyPayment(gomock.Any(), "T1").Return(entities.ProviderReceipt{}, entities.ErrUnexpectedProviderResponse)

		w := postJSON(r, "/verify-mobile-money-payment", `{"transaction_id":"T1"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
