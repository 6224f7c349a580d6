package infrastructure

import (
	"context"
	"time"

	"rainydays.app/internal/ports"
)

const cacheCheckKey = "health:check"

// CacheHealthChecker verifies the cache backend accepts writes and reads
type CacheHealthChecker struct {
	cache     ports.CacheProvider
	cacheType string
}

func NewCacheHealthChecker(cache ports.CacheProvider, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, cacheType: cacheType}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details:   map[string]interface{}{"type": c.cacheType},
	}

	if c.cache == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "cache provider is not available"
		return status
	}

	if err := c.cache.Set(ctx, cacheCheckKey, []byte("ok"), 10*time.Second); err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = err.Error()
		return status
	}
	if _, err := c.cache.Get(ctx, cacheCheckKey); err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = ports.StatusHealthy
	return status
}

// ForecastProviderHealthChecker reports the configured forecast provider chain.
// It does not call the upstream API so health checks do not spend rate limit.
type ForecastProviderHealthChecker struct {
	provider ports.ForecastProvider
}

func NewForecastProviderHealthChecker(provider ports.ForecastProvider) *ForecastProviderHealthChecker {
	return &ForecastProviderHealthChecker{provider: provider}
}

func (f *ForecastProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "forecastAPI",
		Status:    ports.StatusHealthy,
		Details:   map[string]interface{}{},
	}

	if f.provider == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "forecast provider is not available"
		return status
	}

	status.Details["provider"] = f.provider.GetProviderName()
	return status
}
