package ports

import (
	"context"
	"time"
)

// WeatherConfig represents weather service configuration
type WeatherConfig struct {
	ForecastDays int
	EnableCache  bool
	CacheTTL     time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port    int
	GinMode string
}

// SessionConfig represents profile session configuration
type SessionConfig struct {
	Duration      time.Duration
	DefaultCities []string
	DefaultCity   string
}

// WarmupConfig represents cache warmup configuration
type WarmupConfig struct {
	Enabled  bool
	Interval time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetSessionConfig() SessionConfig
	GetWarmupConfig() WarmupConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context)
	RecordCacheMiss(ctx context.Context)
	RecordWeatherAPICall(ctx context.Context, provider string, success bool)
}
