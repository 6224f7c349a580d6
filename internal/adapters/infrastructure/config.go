package infrastructure

import (
	"time"

	"rainydays.app/internal/config"
	"rainydays.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		ForecastDays: c.config.Weather.ForecastDays,
		EnableCache:  c.config.Weather.EnableCache,
		CacheTTL:     time.Duration(c.config.Weather.CacheTTLMinutes) * time.Minute,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:    c.config.Server.Port,
		GinMode: c.config.Server.GinMode,
	}
}

// GetSessionConfig returns a copy of the default cities so callers may modify it
func (c *ConfigProviderAdapter) GetSessionConfig() ports.SessionConfig {
	cities := make([]string, len(c.config.Session.DefaultCities))
	copy(cities, c.config.Session.DefaultCities)

	return ports.SessionConfig{
		Duration:      time.Duration(c.config.Session.DurationDays) * 24 * time.Hour,
		DefaultCities: cities,
		DefaultCity:   c.config.Session.DefaultCity,
	}
}

func (c *ConfigProviderAdapter) GetWarmupConfig() ports.WarmupConfig {
	return ports.WarmupConfig{
		Enabled:  c.config.Warmup.Enabled,
		Interval: time.Duration(c.config.Warmup.IntervalMinutes) * time.Minute,
	}
}
