package infrastructure

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements the MetricsCollector port with Prometheus collectors
type PrometheusMetrics struct {
	cacheType string

	cacheHits      *prometheus.CounterVec
	cacheMisses    *prometheus.CounterVec
	cacheRequests  *prometheus.CounterVec
	cacheHitRatio  *prometheus.GaugeVec
	apiCalls       *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	mu     sync.Mutex
	hits   int64
	misses int64
}

// NewPrometheusMetrics registers the collectors on reg.
// Use prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer, cacheType string) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		cacheType: cacheType,
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rainydays_cache_hits_total",
				Help: "The total number of forecast cache hits",
			},
			[]string{"cache_type"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rainydays_cache_misses_total",
				Help: "The total number of forecast cache misses",
			},
			[]string{"cache_type"},
		),
		cacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rainydays_cache_requests_total",
				Help: "The total number of forecast cache lookups",
			},
			[]string{"cache_type"},
		),
		cacheHitRatio: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rainydays_cache_hit_ratio",
				Help: "Forecast cache hit ratio (hits/total lookups)",
			},
			[]string{"cache_type"},
		),
		apiCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rainydays_forecast_api_calls_total",
				Help: "Forecast API calls by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rainydays_http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rainydays_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func (m *PrometheusMetrics) RecordCacheHit(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.cacheHits.WithLabelValues(m.cacheType).Inc()
	m.cacheRequests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *PrometheusMetrics) RecordCacheMiss(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.cacheMisses.WithLabelValues(m.cacheType).Inc()
	m.cacheRequests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *PrometheusMetrics) RecordWeatherAPICall(ctx context.Context, provider string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.apiCalls.WithLabelValues(provider, outcome).Inc()
}

// ObserveHTTPRequest records one served request. route is the matched pattern, not the raw path.
func (m *PrometheusMetrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// updateHitRatio must be called while holding the mutex
func (m *PrometheusMetrics) updateHitRatio() {
	total := m.hits + m.misses
	if total > 0 {
		m.cacheHitRatio.WithLabelValues(m.cacheType).Set(float64(m.hits) / float64(total))
	}
}
