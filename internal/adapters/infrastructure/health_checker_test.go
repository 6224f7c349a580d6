package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"rainydays.app/internal/mocks"
	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

func TestDatabaseHealthChecker(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)

		status := NewDatabaseHealthChecker(db).Check(context.Background())

		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "sqlite", status.Details["driver"])
	})

	t.Run("ClosedConnection", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		status := NewDatabaseHealthChecker(db).Check(context.Background())

		assert.Equal(t, "unhealthy", status.Status)
		assert.NotEmpty(t, status.Error)
	})

	t.Run("NilDatabase", func(t *testing.T) {
		status := NewDatabaseHealthChecker(nil).Check(context.Background())

		assert.Equal(t, "unhealthy", status.Status)
		assert.Equal(t, "database is not configured", status.Error)
	})
}

func TestCacheHealthChecker(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		cache := mocks.NewCacheProvider(t)
		cache.EXPECT().Set(mock.Anything, "health:check", []byte("ok"), 10*time.Second).Return(nil)
		cache.EXPECT().Get(mock.Anything, "health:check").Return([]byte("ok"), nil)

		status := NewCacheHealthChecker(cache, "memory").Check(context.Background())

		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "memory", status.Details["type"])
	})

	t.Run("WriteFails", func(t *testing.T) {
		cache := mocks.NewCacheProvider(t)
		cache.EXPECT().Set(mock.Anything, "health:check", mock.Anything, mock.Anything).
			Return(errors.NewCacheError("redis set operation failed", nil))

		status := NewCacheHealthChecker(cache, "redis").Check(context.Background())

		assert.Equal(t, "unhealthy", status.Status)
		assert.Contains(t, status.Error, "redis set operation failed")
	})

	t.Run("NilCache", func(t *testing.T) {
		status := NewCacheHealthChecker(nil, "memory").Check(context.Background())
		assert.Equal(t, "unhealthy", status.Status)
	})
}

func TestForecastProviderHealthChecker(t *testing.T) {
	provider := mocks.NewForecastProvider(t)
	provider.EXPECT().GetProviderName().Return("logged(open-meteo [rate limited])")

	status := NewForecastProviderHealthChecker(provider).Check(context.Background())

	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "logged(open-meteo [rate limited])", status.Details["provider"])

	assert.Equal(t, "unhealthy", NewForecastProviderHealthChecker(nil).Check(context.Background()).Status)
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	database := mocks.NewHealthChecker(t)
	database.EXPECT().Check(mock.Anything).Return(ports.HealthStatus{Component: "database", Status: "healthy"})
	cache := mocks.NewHealthChecker(t)
	cache.EXPECT().Check(mock.Anything).Return(ports.HealthStatus{Component: "cache", Status: "unhealthy", Error: "down"})
	configProvider := mocks.NewConfigProvider(t)
	configProvider.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{ForecastDays: 7, EnableCache: true, CacheTTL: 10 * time.Minute})

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		DatabaseChecker: database,
		CacheChecker:    cache,
		ConfigProvider:  configProvider,
	})

	results := checker.CheckAll(context.Background())

	require.Len(t, results, 3)
	assert.Equal(t, "healthy", results["database"].Status)
	assert.Equal(t, "unhealthy", results["cache"].Status)
	assert.Equal(t, 7, results["config"].Details["forecastDays"])
	assert.Equal(t, "10m0s", results["config"].Details["cacheTTL"])
	assert.False(t, ports.AllHealthy(results))

	delete(results, "cache")
	assert.True(t, ports.AllHealthy(results))
}

func TestMetricsCollectorAdapter_GetMetrics(t *testing.T) {
	weatherMetrics := mocks.NewWeatherMetrics(t)
	weatherMetrics.EXPECT().GetProviderInfo().Return(map[string]interface{}{"provider": "open-meteo", "cache_enabled": true})
	weatherMetrics.EXPECT().GetCacheMetrics().Return(ports.CacheStats{Hits: 3, Misses: 1, TotalOps: 4, HitRatio: 0.75}, nil)

	collector := NewMetricsCollectorAdapter(MetricsCollectorConfig{WeatherMetrics: weatherMetrics})

	metrics, err := collector.GetMetrics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "open-meteo", metrics["weather"].(map[string]interface{})["provider"])
	assert.Equal(t, 0.75, metrics["cache"].(ports.CacheStats).HitRatio)
	assert.Contains(t, metrics, "uptime_seconds")
}
