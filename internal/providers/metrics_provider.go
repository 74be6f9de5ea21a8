package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dashd/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncCollectorCycles(statType, result string)
	ObserveCycleDuration(statType string, duration time.Duration)
	SetHistoryLength(statType string, length int)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	collectorCycles *prometheus.CounterVec
	cycleDuration   *prometheus.HistogramVec
	historyLength   *prometheus.GaugeVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncCollectorCycles(statType, result string) {
	m.collectorCycles.WithLabelValues(statType, result).Inc()
}

func (m *MetricsProvider) ObserveCycleDuration(statType string, duration time.Duration) {
	m.cycleDuration.WithLabelValues(statType).Observe(duration.Seconds())
}

func (m *MetricsProvider) SetHistoryLength(statType string, length int) {
	m.historyLength.WithLabelValues(statType).Set(float64(length))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dashd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dashd_cache_hits_total",
			Help: "Total number of response cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dashd_cache_misses_total",
			Help: "Total number of response cache misses",
		}),

		collectorCycles: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dashd_collector_cycles_total",
			Help: "Collector cycles by statistic type and result",
		}, []string{"type", "result"}),

		cycleDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashd_collector_cycle_duration_seconds",
			Help:    "Duration of one collect-merge-persist cycle",
			Buckets: prometheus.DefBuckets,
		}, []string{"type"}),

		historyLength: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dashd_document_history_length",
			Help: "Snapshots in today's document per statistic type",
		}, []string{"type"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncCollectorCycles(_, _ string)                   {}
func (n *noopMetrics) ObserveCycleDuration(_ string, _ time.Duration)   {}
func (n *noopMetrics) SetHistoryLength(_ string, _ int)                 {}
