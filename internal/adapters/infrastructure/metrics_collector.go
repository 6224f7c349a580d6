package infrastructure

import (
	"context"
	"fmt"
	"time"

	"rainydays.app/internal/ports"
)

// MetricsCollectorAdapter builds the JSON metrics summary served on /api/metrics.
// Prometheus series are exposed separately on /metrics.
type MetricsCollectorAdapter struct {
	weatherMetrics ports.WeatherMetrics
	startedAt      time.Time
}

type MetricsCollectorConfig struct {
	WeatherMetrics ports.WeatherMetrics
}

func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		weatherMetrics: config.WeatherMetrics,
		startedAt:      time.Now(),
	}
}

func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	cacheStats, err := m.weatherMetrics.GetCacheMetrics()
	if err != nil {
		return nil, fmt.Errorf("collect cache metrics: %w", err)
	}

	return map[string]interface{}{
		"weather":        m.weatherMetrics.GetProviderInfo(),
		"cache":          cacheStats,
		"uptime_seconds": int64(time.Since(m.startedAt).Seconds()),
	}, nil
}
