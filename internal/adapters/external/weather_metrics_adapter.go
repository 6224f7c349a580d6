package external

import (
	"time"

	"rainydays.app/internal/ports"
)

// WeatherMetricsAdapter implements WeatherMetrics port
type WeatherMetricsAdapter struct {
	cache        ports.CacheProvider
	provider     ports.ForecastProvider
	cacheEnabled bool
}

func NewWeatherMetricsAdapter(cache ports.CacheProvider, provider ports.ForecastProvider, cacheEnabled bool) ports.WeatherMetrics {
	return &WeatherMetricsAdapter{
		cache:        cache,
		provider:     provider,
		cacheEnabled: cacheEnabled,
	}
}

func (m *WeatherMetricsAdapter) GetProviderInfo() map[string]interface{} {
	return map[string]interface{}{
		"provider":      m.provider.GetProviderName(),
		"status":        "active",
		"cache_enabled": m.cacheEnabled,
	}
}

// GetCacheMetrics returns the backend's counters, or zeroes if it keeps none
func (m *WeatherMetricsAdapter) GetCacheMetrics() (ports.CacheStats, error) {
	if withStats, ok := m.cache.(ports.CacheMetrics); ok {
		return withStats.GetStats(), nil
	}

	return ports.CacheStats{LastUpdated: time.Now()}, nil
}
