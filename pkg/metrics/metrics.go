package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RelayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "relay",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled by the relay",
		},
		[]string{"path", "method", "status"},
	)

	RelayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "relay",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by path",
			Buckets: []float64{
				0.01, 0.02, 0.05, 0.1, 0.2, 0.5,
				1, 2, 5, 10, 20, 30,
			},
		},
		[]string{"path"},
	)

	ProviderCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "relay",
			Name:      "provider_call_duration_seconds",
			Help:      "Outbound MoneyUnify call duration by endpoint and outcome",
			// provider calls wait on handset confirmation, so buckets stretch
			// well past the sub-second range
			Buckets: []float64{
				0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30,
			},
		},
		[]string{"endpoint", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(RelayRequestsTotal, RelayRequestDuration, ProviderCallDuration)
}

func IncRequest(path, method, status string) {
	RelayRequestsTotal.WithLabelValues(path, method, status).Inc()
}

func ObserveRequest(path string, seconds float64) {
	RelayRequestDuration.WithLabelValues(path).Observe(seconds)
}

func ObserveProviderCall(endpoint, outcome string, seconds float64) {
	ProviderCallDuration.WithLabelValues(endpoint, outcome).Observe(seconds)
}
