package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ruleEvaluations         *prometheus.CounterVec
	ruleApplications        *prometheus.CounterVec
	ruleApplicationDuration prometheus.Histogram
	transactionsModified    prometheus.Counter
	cacheEvents             *prometheus.CounterVec
	cacheSnapshotSize       prometheus.Gauge
	syncRuns                *prometheus.CounterVec
	syncTransactionsFetched prometheus.Counter
	syncDuration            prometheus.Histogram
	providerRetries         prometheus.Counter
	circuitBreakerState     *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ruleEvaluations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rule_evaluations_total",
				Help: "Total number of rule evaluations against transactions",
			},
			[]string{"result"},
		),
		ruleApplications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rule_applications_total",
				Help: "Total number of rule application runs",
			},
			[]string{"mode", "status"},
		),
		ruleApplicationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rule_application_duration_milliseconds",
				Help:    "Rule application run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsModified: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_modified_total",
				Help: "Total number of transactions modified by rule actions",
			},
		),
		cacheEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_cache_events_total",
				Help: "Transaction cache lookups by outcome",
			},
			[]string{"result"},
		),
		cacheSnapshotSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "transaction_cache_snapshot_size",
				Help: "Number of transactions in the most recently stored snapshot",
			},
		),
		syncRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_runs_total",
				Help: "Total number of provider sync runs",
			},
			[]string{"status"},
		),
		syncTransactionsFetched: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sync_transactions_fetched_total",
				Help: "Total number of transactions fetched from the provider",
			},
		),
		syncDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sync_duration_milliseconds",
				Help:    "Provider sync duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		providerRetries: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "provider_retry_attempts_total",
				Help: "Total number of provider request retries",
			},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "rule.evaluation.matched":
		m.ruleEvaluations.WithLabelValues("matched").Inc()
	case "rule.evaluation.unmatched":
		m.ruleEvaluations.WithLabelValues("unmatched").Inc()
	case "rule.application.success":
		m.ruleApplications.WithLabelValues(tags["mode"], "success").Inc()
	case "rule.application.failed":
		m.ruleApplications.WithLabelValues(tags["mode"], "failed").Inc()
	case "rule.transaction.modified":
		m.transactionsModified.Inc()
	case "cache.hit":
		m.cacheEvents.WithLabelValues("hit").Inc()
	case "cache.miss":
		m.cacheEvents.WithLabelValues("miss").Inc()
	case "cache.invalidated":
		m.cacheEvents.WithLabelValues("invalidated").Inc()
	case "sync.completed":
		m.syncRuns.WithLabelValues("success").Inc()
	case "sync.failed":
		m.syncRuns.WithLabelValues("failed").Inc()
	case "provider.retry":
		m.providerRetries.Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "circuit_breaker.closed":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(0)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "rule.application":
		m.ruleApplicationDuration.Observe(float64(duration.Milliseconds()))
	case "sync.run":
		m.syncDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "cache.snapshot_size":
		m.cacheSnapshotSize.Set(value)
	case "sync.fetched":
		m.syncTransactionsFetched.Add(value)
	}
}
