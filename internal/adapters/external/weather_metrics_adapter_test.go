package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rainydays.app/internal/mocks"
)

func TestWeatherMetricsAdapter(t *testing.T) {
	provider := mocks.NewForecastProvider(t)
	provider.EXPECT().GetProviderName().Return("logged(open-meteo)")

	cache := NewMemoryCacheProvider()
	require.NoError(t, cache.Set(context.Background(), "key", []byte("value"), time.Minute))
	_, err := cache.Get(context.Background(), "key")
	require.NoError(t, err)

	adapter := NewWeatherMetricsAdapter(cache, provider, true)

	info := adapter.GetProviderInfo()
	assert.Equal(t, "logged(open-meteo)", info["provider"])
	assert.Equal(t, true, info["cache_enabled"])

	stats, err := adapter.GetCacheMetrics()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Hits)
}

func TestWeatherMetricsAdapter_CacheWithoutStats(t *testing.T) {
	adapter := NewWeatherMetricsAdapter(mocks.NewCacheProvider(t), mocks.NewForecastProvider(t), false)

	stats, err := adapter.GetCacheMetrics()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalOps)
	assert.False(t, stats.LastUpdated.IsZero())
}
