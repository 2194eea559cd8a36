package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cobolInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardproc_cobol_invocations_total",
			Help: "Total batch program invocations by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	cobolDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cardproc_cobol_session_duration_seconds",
			Help:    "Duration of batch program menu sessions",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	strategyFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardproc_strategy_fallbacks_total",
			Help: "Total operations that fell back to the in-process strategy",
		},
		[]string{"operation"},
	)

	cardsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardproc_cards_created_total",
			Help: "Total cards created through signup",
		},
	)
)

// ObserveCobolSession records one batch program invocation.
func ObserveCobolSession(operation string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	cobolInvocations.WithLabelValues(operation, status).Inc()
	cobolDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// RecordFallback records an operation served by the in-process strategy
// after the external path failed.
func RecordFallback(operation string) {
	strategyFallbacks.WithLabelValues(operation).Inc()
}

// RecordCardCreated records a successful signup.
func RecordCardCreated() {
	cardsCreated.Inc()
}
