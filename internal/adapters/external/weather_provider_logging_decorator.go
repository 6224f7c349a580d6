package external

import (
	"context"
	"time"

	"rainydays.app/internal/ports"
)

// ForecastProviderLoggingDecorator decorates forecast providers with structured logging
type ForecastProviderLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

// NewForecastProviderLoggingDecorator creates a new logging decorator. metrics may be nil.
func NewForecastProviderLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger, metrics ports.MetricsCollector) ports.ForecastProvider {
	return &ForecastProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
		metrics:  metrics,
	}
}

// GetForecast wraps the provider call with structured logging
func (d *ForecastProviderLoggingDecorator) GetForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastData, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Forecast API request started",
		ports.F("provider", providerName),
		ports.F("latitude", query.Latitude),
		ports.F("longitude", query.Longitude),
		ports.F("forecast_days", query.ForecastDays),
		ports.F("current", query.IncludeCurrent),
		ports.F("event", "request"))

	startTime := time.Now()
	data, err := d.provider.GetForecast(ctx, query)
	duration := time.Since(startTime)

	if d.metrics != nil {
		d.metrics.RecordWeatherAPICall(ctx, providerName, err == nil)
	}

	if err != nil {
		d.logger.Error("Forecast API request failed",
			ports.F("provider", providerName),
			ports.F("latitude", query.Latitude),
			ports.F("longitude", query.Longitude),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	fields := []ports.Field{
		ports.F("provider", providerName),
		ports.F("latitude", query.Latitude),
		ports.F("longitude", query.Longitude),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("timezone", data.Timezone),
		ports.F("days", len(data.Daily.Time)),
	}
	if data.Current != nil {
		fields = append(fields,
			ports.F("temperature", data.Current.Temperature),
			ports.F("weather_code", data.Current.WeatherCode))
	}
	d.logger.Info("Forecast API request completed", fields...)

	return data, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *ForecastProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}
