package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. Callers hold a
// *Metrics that may be nil in unit tests; the increment helpers tolerate that.
type Metrics struct {
	CertificatesIssued prometheus.Counter
	IssuanceRejected   *prometheus.CounterVec
	IssuersAuthorized  prometheus.Counter
	PropertyTokensSold prometheus.Counter
	RequestLatency     *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		CertificatesIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tamga_certificates_issued_total",
			Help: "Total number of certificates issued (simulated and on-chain).",
		}),
		IssuanceRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tamga_issuance_rejected_total",
			Help: "Issuance attempts rejected before any side effect, by reason.",
		}, []string{"reason"}),
		IssuersAuthorized: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tamga_issuers_authorized_total",
			Help: "Total number of issuer wallets added to the registry.",
		}),
		PropertyTokensSold: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tamga_property_tokens_sold_total",
			Help: "Total number of fractional property tokens sold.",
		}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tamga_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// IncCertificatesIssued increments the issued-certificates counter.
func (m *Metrics) IncCertificatesIssued() {
	if m == nil {
		return
	}
	m.CertificatesIssued.Inc()
}

// IncIssuanceRejected counts a rejected issuance attempt by reason.
func (m *Metrics) IncIssuanceRejected(reason string) {
	if m == nil {
		return
	}
	m.IssuanceRejected.WithLabelValues(reason).Inc()
}

// IncIssuersAuthorized increments the authorized-issuers counter.
func (m *Metrics) IncIssuersAuthorized() {
	if m == nil {
		return
	}
	m.IssuersAuthorized.Inc()
}

// AddPropertyTokensSold counts tokens sold in a purchase.
func (m *Metrics) AddPropertyTokensSold(n int) {
	if m == nil {
		return
	}
	m.PropertyTokensSold.Add(float64(n))
}

// ObserveRequest records a request latency sample.
func (m *Metrics) ObserveRequest(method, path string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestLatency.WithLabelValues(method, path).Observe(d.Seconds())
}
