// Package metrics provides Prometheus metrics for the PR scoring engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Scoring metrics
	scoringPasses     prometheus.Counter
	scoringLatency    prometheus.Histogram
	totalScore        prometheus.Histogram
	categoryScore     *prometheus.GaugeVec
	recommendations   prometheus.Histogram
	emptyKeywordRuns  prometheus.Counter

	// Keyword set metrics
	activeKeywords   prometheus.Gauge
	keywordsRejected *prometheus.CounterVec

	// Enrichment metrics
	enrichmentRequests  prometheus.Counter
	enrichmentFailures  prometheus.Counter
	enrichmentFallbacks prometheus.Counter
	enrichmentDropped   prometheus.Counter
	enrichmentLatency   prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorsByComponent *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "seoscore",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.scoringPasses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_passes_total",
		Help:      "Total number of composite scoring passes",
	})

	m.scoringLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_latency_milliseconds",
		Help:      "Latency of a synchronous scoring pass in milliseconds",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
	})

	m.totalScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_score_distribution",
		Help:      "Distribution of composite scores (0-100)",
		Buckets:   []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	})

	m.categoryScore = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "category_score",
		Help:      "Most recent per-category score (0-100)",
	}, []string{"category"})

	m.recommendations = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendations_per_pass",
		Help:      "Number of recommendations emitted per scoring pass",
		Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
	})

	m.emptyKeywordRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "empty_keyword_runs_total",
		Help:      "Scoring passes executed without any active keyword",
	})

	m.activeKeywords = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_keywords",
		Help:      "Current number of keywords in the active set",
	})

	m.keywordsRejected = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "keywords_rejected_total",
		Help:      "Keyword additions rejected by reason",
	}, []string{"reason"})

	m.enrichmentRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "enrichment_requests_total",
		Help:      "Total number of semantic enrichment requests issued",
	})

	m.enrichmentFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "enrichment_failures_total",
		Help:      "Enrichment requests that failed or timed out",
	})

	m.enrichmentFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "enrichment_fallbacks_total",
		Help:      "Keyword metrics completed with neutral fallback values",
	})

	m.enrichmentDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "enrichment_dropped_total",
		Help:      "Enrichment responses discarded as stale or superseded",
	})

	m.enrichmentLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "enrichment_latency_milliseconds",
		Help:      "Latency of semantic enrichment calls in milliseconds",
		Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Errors by component and type",
	}, []string{"component", "error_type"})
}

// RecordScoringPass increments the scoring pass counter.
func RecordScoringPass() {
	globalManager.scoringPasses.Inc()
}

// RecordScoringLatency records the latency of a scoring pass in milliseconds.
func RecordScoringLatency(latencyMs float64) {
	globalManager.scoringLatency.Observe(latencyMs)
}

// ObserveTotalScore records a composite score into the distribution histogram.
func ObserveTotalScore(score int) {
	globalManager.totalScore.Observe(float64(score))
}

// UpdateCategoryScore sets the most recent score for a breakdown category.
func UpdateCategoryScore(category string, score int) {
	globalManager.categoryScore.WithLabelValues(category).Set(float64(score))
}

// ObserveRecommendationCount records how many recommendations a pass emitted.
func ObserveRecommendationCount(count int) {
	globalManager.recommendations.Observe(float64(count))
}

// RecordEmptyKeywordRun increments the counter for keyword-less passes.
func RecordEmptyKeywordRun() {
	globalManager.emptyKeywordRuns.Inc()
}

// UpdateActiveKeywords sets the active keyword gauge.
func UpdateActiveKeywords(count int) {
	globalManager.activeKeywords.Set(float64(count))
}

// RecordKeywordRejected increments the rejection counter for a reason
// ("duplicate" or "capacity").
func RecordKeywordRejected(reason string) {
	globalManager.keywordsRejected.WithLabelValues(reason).Inc()
}

// RecordEnrichmentRequest increments the enrichment request counter.
func RecordEnrichmentRequest() {
	globalManager.enrichmentRequests.Inc()
}

// RecordEnrichmentFailure increments the enrichment failure counter.
func RecordEnrichmentFailure() {
	globalManager.enrichmentFailures.Inc()
}

// RecordEnrichmentFallback increments the fallback counter.
func RecordEnrichmentFallback() {
	globalManager.enrichmentFallbacks.Inc()
}

// RecordEnrichmentDropped increments the stale-response counter.
func RecordEnrichmentDropped() {
	globalManager.enrichmentDropped.Inc()
}

// RecordEnrichmentLatency records enrichment call latency in milliseconds.
func RecordEnrichmentLatency(latencyMs float64) {
	globalManager.enrichmentLatency.Observe(latencyMs)
}

// RecordHTTPRequest increments HTTP request counters.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in seconds.
func RecordHTTPRequestDuration(endpoint, method string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(duration)
}

// RecordErrorByComponent increments the error counter for a component.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
