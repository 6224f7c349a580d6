package ports

import (
	"context"
	"fmt"
	"time"
)

// ForecastQuery describes a single request to the forecast data source
type ForecastQuery struct {
	Latitude       float64
	Longitude      float64
	ForecastDays   int
	IncludeCurrent bool
}

// CacheKey returns a stable key for caching the response of this query
func (q ForecastQuery) CacheKey() string {
	kind := "daily"
	if q.IncludeCurrent {
		kind = "current"
	}
	return fmt.Sprintf("forecast:%s:%.4f:%.4f:%d", kind, q.Latitude, q.Longitude, q.ForecastDays)
}

// CurrentReading holds the current conditions block of a forecast response
type CurrentReading struct {
	Temperature      float64 `json:"temperature_2m"`
	RelativeHumidity float64 `json:"relative_humidity_2m"`
	WindSpeed        float64 `json:"wind_speed_10m"`
	WeatherCode      int     `json:"weather_code"`
}

// DailySeries holds the parallel daily arrays of a forecast response
type DailySeries struct {
	Time           []string  `json:"time"`
	TemperatureMax []float64 `json:"temperature_2m_max"`
	TemperatureMin []float64 `json:"temperature_2m_min"`
	WeatherCode    []int     `json:"weather_code"`
}

// ForecastData is a validated forecast response
type ForecastData struct {
	Timezone  string          `json:"timezone"`
	Current   *CurrentReading `json:"current,omitempty"`
	Daily     DailySeries     `json:"daily"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// ForecastProvider defines the contract for forecast data sources
type ForecastProvider interface {
	GetForecast(ctx context.Context, query ForecastQuery) (*ForecastData, error)
	GetProviderName() string
}

// ForecastCache defines the contract for caching forecast responses
type ForecastCache interface {
	Get(ctx context.Context, key string) (*ForecastData, error)
	Set(ctx context.Context, key string, data *ForecastData, ttl time.Duration) error
}

// WeatherMetrics defines the contract for weather provider metrics
type WeatherMetrics interface {
	GetProviderInfo() map[string]interface{}
	GetCacheMetrics() (CacheStats, error)
}
