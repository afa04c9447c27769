package response

import (
	"time"

	"momo_relay/internal/domain/entities"
)

// Envelope is the uniform response wrapper returned by every endpoint:
// a success variant carrying the provider's passthrough data, or an error
// variant carrying a message.
type Envelope struct {
	IsError bool                   `json:"isError"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

func Success(message string, data map[string]interface{}) Envelope {
	return Envelope{IsError: false, Message: message, Data: data}
}

func Failure(message string) Envelope {
	return Envelope{IsError: true, Message: message}
}

// FromProviderReceipt wraps a provider outcome in the success envelope,
// passing the provider's data object through unmodified.
func FromProviderReceipt(r entities.ProviderReceipt) Envelope {
	return Success(r.Message, r.Data)
}

// NotFoundResponse is the body served for unmatched paths.
type NotFoundResponse struct {
	IsError bool   `json:"isError"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

func NotFound(path string) NotFoundResponse {
	return NotFoundResponse{IsError: true, Message: "Endpoint not found", Path: path}
}

// HealthResponse is served on GET /health.
type HealthResponse struct {
	Status               string `json:"status"`
	Service              string `json:"service"`
	Timestamp            string `json:"timestamp"`
	MoneyUnifyConfigured bool   `json:"moneyunify_configured"`
}

func NewHealthResponse(service string, configured bool) HealthResponse {
	return HealthResponse{
		Status:               "ok",
		Service:              service,
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
		MoneyUnifyConfigured: configured,
	}
}

// ServiceInfoResponse is served on GET / and lists the available endpoints.
type ServiceInfoResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func NewServiceInfoResponse(service, version string) ServiceInfoResponse {
	return ServiceInfoResponse{
		Service: service,
		Version: version,
		Endpoints: map[string]string{
			"POST /create-mobile-money-payment": "Initiate a mobile-money payment",
			"POST /verify-mobile-money-payment": "Verify a payment by transaction_id",
			"GET /health":                       "Service health",
			"GET /metrics":                      "Prometheus metrics",
		},
	}
}
