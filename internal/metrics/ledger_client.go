package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fundtrace",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger indexer HTTP operations.",
	}, []string{"operation", "endpoint", "status"})
	ledgerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fundtrace",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger indexer HTTP operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "endpoint", "status"})
	ledgerTruncatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fundtrace",
		Subsystem: "ledger_client",
		Name:      "truncated_fetches_total",
		Help:      "Count of paginated fetches that stopped early on a failed page.",
	}, []string{"endpoint"})
)

// LedgerClient tracks metrics for HTTP calls against the transaction indexer.
type LedgerClient struct {
	endpoint string
}

// NewLedgerClient constructs a metrics collector labeled with the indexer endpoint host.
func NewLedgerClient(endpoint string) *LedgerClient {
	if endpoint == "" {
		endpoint = "unknown"
	}
	return &LedgerClient{endpoint: endpoint}
}

// Observe records a single ledger call outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerRequestsTotal.WithLabelValues(operation, m.endpoint, status).Inc()
	ledgerRequestDuration.WithLabelValues(operation, m.endpoint, status).Observe(time.Since(started).Seconds())
}

// ObserveTruncated records a fetch that returned fewer pages than the indexer reported.
func (m LedgerClient) ObserveTruncated() {
	ledgerTruncatedTotal.WithLabelValues(m.endpoint).Inc()
}
