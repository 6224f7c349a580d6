package external

import (
	"context"
	"encoding/json"
	"time"

	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

// ForecastCacheAdapter bridges generic CacheProvider to the forecast-specific ForecastCache
type ForecastCacheAdapter struct {
	cacheProvider ports.CacheProvider
	metrics       ports.MetricsCollector
}

// NewForecastCacheAdapter stores forecasts as JSON. metrics may be nil.
func NewForecastCacheAdapter(cacheProvider ports.CacheProvider, metrics ports.MetricsCollector) ports.ForecastCache {
	return &ForecastCacheAdapter{
		cacheProvider: cacheProvider,
		metrics:       metrics,
	}
}

func (f *ForecastCacheAdapter) Get(ctx context.Context, key string) (*ports.ForecastData, error) {
	raw, err := f.cacheProvider.Get(ctx, key)
	if err != nil {
		if errors.IsNotFoundError(err) && f.metrics != nil {
			f.metrics.RecordCacheMiss(ctx)
		}
		return nil, err
	}

	var data ports.ForecastData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.NewCacheError("failed to deserialize forecast data", err)
	}

	if f.metrics != nil {
		f.metrics.RecordCacheHit(ctx)
	}
	return &data, nil
}

func (f *ForecastCacheAdapter) Set(ctx context.Context, key string, data *ports.ForecastData, ttl time.Duration) error {
	if data == nil {
		return errors.NewValidationError("forecast data cannot be nil")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return errors.NewCacheError("failed to serialize forecast data", err)
	}

	return f.cacheProvider.Set(ctx, key, raw, ttl)
}
