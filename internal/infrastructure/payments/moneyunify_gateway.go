package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"momo_relay/internal/domain/entities"
	"momo_relay/pkg/metrics"
)

var ErrMissingMoneyUnifyAuthID = errors.New("missing MONEYUNIFY_AUTH_ID")

const (
	endpointRequestPayment    = "/payments/request"
	endpointVerifyTransaction = "/payments/verify"
)

// MoneyUnifyGateway talks to the MoneyUnify collection API: form-encoded
// requests in, JSON envelopes out, authenticated by a static auth_id.
type MoneyUnifyGateway struct {
	authID  string
	baseURL string
	client  *http.Client
}

func NewMoneyUnifyGateway(authID, baseURL string, timeout time.Duration) (*MoneyUnifyGateway, error) {
	if strings.TrimSpace(authID) == "" {
		log.Printf("[relay][gateway] missing MONEYUNIFY_AUTH_ID")
		return nil, ErrMissingMoneyUnifyAuthID
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://api.moneyunify.com"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	log.Printf("[relay][gateway] MoneyUnify client initialized base_url=%s timeout=%s", baseURL, timeout)

	return &MoneyUnifyGateway{
		authID:  strings.TrimSpace(authID),
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// RequestPayment initiates a collection from the subscriber's wallet. A
// provider-side rejection (isError flag or non-2xx status) is returned as
// *entities.ProviderDeclinedError with the provider's message preserved.
func (g *MoneyUnifyGateway) RequestPayment(ctx context.Context, fromPayer, amount string) (entities.ProviderReceipt, error) {
	log.Printf("[relay][gateway] request-payment start from_payer=%s amount=%s", fromPayer, amount)

	form := url.Values{}
	form.Set("from_payer", fromPayer)
	form.Set("amount", amount)
	form.Set("auth_id", g.authID)
	form.Set("webhook_url", "")

	env, status, err := g.post(ctx, endpointRequestPayment, form)
	if err != nil {
		log.Printf("[relay][gateway] request-payment failed err=%v", err)
		return entities.ProviderReceipt{}, err
	}

	if env.IsError || status < http.StatusOK || status >= http.StatusMultipleChoices {
		msg := env.Message
		if msg == "" {
			msg = "payment request declined by provider"
		}
		log.Printf("[relay][gateway] request-payment declined status=%d message=%q", status, msg)
		return entities.ProviderReceipt{}, &entities.ProviderDeclinedError{Message: msg}
	}

	log.Printf("[relay][gateway] request-payment success message=%q", env.Message)
	return env.toReceipt(), nil
}

// VerifyTransaction queries the status of a previously issued transaction.
// The provider response passes through as-is; status interpretation belongs
// to the caller, so no declined mapping happens here.
func (g *MoneyUnifyGateway) VerifyTransaction(ctx context.Context, transactionID string) (entities.ProviderReceipt, error) {
	log.Printf("[relay][gateway] verify start transaction_id=%s", transactionID)

	form := url.Values{}
	form.Set("auth_id", g.authID)
	form.Set("transaction_id", transactionID)

	env, _, err := g.post(ctx, endpointVerifyTransaction, form)
	if err != nil {
		log.Printf("[relay][gateway] verify failed err=%v", err)
		return entities.ProviderReceipt{}, err
	}

	log.Printf("[relay][gateway] verify success message=%q", env.Message)
	return env.toReceipt(), nil
}

// providerEnvelope mirrors the JSON body MoneyUnify wraps every response in.
type providerEnvelope struct {
	IsError bool            `json:"isError"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e providerEnvelope) toReceipt() entities.ProviderReceipt {
	receipt := entities.ProviderReceipt{
		Message: e.Message,
		DataRaw: e.Data,
	}
	if len(e.Data) > 0 {
		var parsed map[string]interface{}
		if err := json.Unmarshal(e.Data, &parsed); err == nil {
			receipt.Data = parsed
		}
	}
	return receipt
}

func (g *MoneyUnifyGateway) post(ctx context.Context, path string, form url.Values) (providerEnvelope, int, error) {
	start := time.Now()
	outcome := "error"
	defer func() {
		metrics.ObserveProviderCall(path, outcome, time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return providerEnvelope{}, 0, fmt.Errorf("building provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return providerEnvelope{}, 0, fmt.Errorf("%w: %v", entities.ErrUnexpectedProviderResponse, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return providerEnvelope{}, resp.StatusCode, fmt.Errorf("%w: reading body: %v", entities.ErrUnexpectedProviderResponse, err)
	}

	if !isJSONContentType(resp.Header.Get("Content-Type")) {
		return providerEnvelope{}, resp.StatusCode, fmt.Errorf("%w: content-type %q", entities.ErrUnexpectedProviderResponse, resp.Header.Get("Content-Type"))
	}

	var env providerEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return providerEnvelope{}, resp.StatusCode, fmt.Errorf("%w: decoding body: %v", entities.ErrUnexpectedProviderResponse, err)
	}

	outcome = "ok"
	return env, resp.StatusCode, nil
}

func isJSONContentType(ct string) bool {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
