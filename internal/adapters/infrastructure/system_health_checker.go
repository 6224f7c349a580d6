package infrastructure

import (
	"context"

	"rainydays.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

type SystemHealthCheckerConfig struct {
	DatabaseChecker ports.HealthChecker
	CacheChecker    ports.HealthChecker
	ForecastChecker ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.DatabaseChecker != nil {
		checkers["database"] = config.DatabaseChecker
	}
	if config.CacheChecker != nil {
		checkers["cache"] = config.CacheChecker
	}
	if config.ForecastChecker != nil {
		checkers["forecastAPI"] = config.ForecastChecker
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}

	if s.configProvider != nil {
		weatherConfig := s.configProvider.GetWeatherConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.StatusHealthy,
			Details: map[string]interface{}{
				"forecastDays": weatherConfig.ForecastDays,
				"cacheEnabled": weatherConfig.EnableCache,
				"cacheTTL":     weatherConfig.CacheTTL.String(),
			},
		}
	}

	return results
}
