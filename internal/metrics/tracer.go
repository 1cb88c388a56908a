package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tracerRoundTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fundtrace",
		Subsystem: "tracer",
		Name:      "rounds_total",
		Help:      "Count of tracing rounds.",
	}, []string{"status"})

	tracerRoundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fundtrace",
		Subsystem: "tracer",
		Name:      "round_duration_seconds",
		Help:      "Duration of a tracing round.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"status"})

	tracerRoundSources = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fundtrace",
		Subsystem: "tracer",
		Name:      "round_sources",
		Help:      "Number of source addresses queried per round.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	})

	tracerRoundReceivers = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fundtrace",
		Subsystem: "tracer",
		Name:      "round_receivers",
		Help:      "Number of distinct receivers discovered per round.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	})

	tracerFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fundtrace",
		Subsystem: "tracer",
		Name:      "address_fetch_total",
		Help:      "Count of per-address transaction fetches.",
	}, []string{"status"})
)

// Tracer tracks metrics for trace rounds.
type Tracer struct{}

// NewTracer constructs a Tracer metrics collector.
func NewTracer() *Tracer {
	return &Tracer{}
}

// ObserveRound records the outcome of one round.
func (m Tracer) ObserveRound(err error, sources, receivers int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	tracerRoundTotal.WithLabelValues(status).Inc()
	tracerRoundDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	tracerRoundSources.Observe(float64(sources))
	if err == nil {
		tracerRoundReceivers.Observe(float64(receivers))
	}
}

// ObserveFetch records a single address fetch.
func (m Tracer) ObserveFetch(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	tracerFetchTotal.WithLabelValues(status).Inc()
}
