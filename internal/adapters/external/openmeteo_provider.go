// Package external provides adapters for external services
// These adapters implement ports for the forecast source, caches and sessions
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

const (
	openMeteoProviderName = "open-meteo"
	currentFields         = "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code"
	dailyFields           = "temperature_2m_max,temperature_2m_min,weather_code"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenMeteoProviderAdapter implements ForecastProvider for the Open-Meteo forecast API
type OpenMeteoProviderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenMeteoProviderParams holds parameters for creating the Open-Meteo provider
type OpenMeteoProviderParams struct {
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
	Client  HTTPClient
}

// openMeteoResponse mirrors the API payload. Pointers detect JSON nulls.
type openMeteoResponse struct {
	Timezone string `json:"timezone"`
	Current  *struct {
		Temperature      *float64 `json:"temperature_2m"`
		RelativeHumidity *float64 `json:"relative_humidity_2m"`
		WindSpeed        *float64 `json:"wind_speed_10m"`
		WeatherCode      *int     `json:"weather_code"`
	} `json:"current"`
	Daily *struct {
		Time           []string   `json:"time"`
		TemperatureMax []*float64 `json:"temperature_2m_max"`
		TemperatureMin []*float64 `json:"temperature_2m_min"`
		WeatherCode    []*int     `json:"weather_code"`
	} `json:"daily"`
}

// NewOpenMeteoProviderAdapter creates a new Open-Meteo provider adapter
func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) ports.ForecastProvider {
	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenMeteoProviderAdapter{
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// GetForecast retrieves current conditions and daily aggregates for a coordinate
func (p *OpenMeteoProviderAdapter) GetForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastData, error) {
	if query.ForecastDays < 1 {
		return nil, errors.NewValidationError("forecast days must be positive")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.buildURL(query), nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build Open-Meteo request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call Open-Meteo", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close Open-Meteo response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("Open-Meteo returned status %d", resp.StatusCode), nil)
	}

	var apiResp openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode Open-Meteo response", err)
	}

	data, err := apiResp.toForecastData(query.IncludeCurrent)
	if err != nil {
		return nil, errors.NewExternalAPIError("malformed Open-Meteo response", err)
	}

	return data, nil
}

// GetProviderName returns the name of this forecast provider
func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return openMeteoProviderName
}

func (p *OpenMeteoProviderAdapter) buildURL(query ports.ForecastQuery) string {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(query.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(query.Longitude, 'f', -1, 64))
	if query.IncludeCurrent {
		params.Set("current", currentFields)
	}
	params.Set("daily", dailyFields)
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(query.ForecastDays))

	return fmt.Sprintf("%s/forecast?%s", p.baseURL, params.Encode())
}

func (r *openMeteoResponse) toForecastData(includeCurrent bool) (*ports.ForecastData, error) {
	data := &ports.ForecastData{
		Timezone:  r.Timezone,
		FetchedAt: time.Now(),
	}

	if includeCurrent {
		c := r.Current
		if c == nil {
			return nil, fmt.Errorf("missing current block")
		}
		if c.Temperature == nil || c.RelativeHumidity == nil || c.WindSpeed == nil || c.WeatherCode == nil {
			return nil, fmt.Errorf("current block has null values")
		}
		data.Current = &ports.CurrentReading{
			Temperature:      *c.Temperature,
			RelativeHumidity: *c.RelativeHumidity,
			WindSpeed:        *c.WindSpeed,
			WeatherCode:      *c.WeatherCode,
		}
	}

	if r.Daily == nil {
		return nil, fmt.Errorf("missing daily block")
	}

	maxTemps, err := derefFloats("temperature_2m_max", r.Daily.TemperatureMax)
	if err != nil {
		return nil, err
	}
	minTemps, err := derefFloats("temperature_2m_min", r.Daily.TemperatureMin)
	if err != nil {
		return nil, err
	}
	codes := make([]int, len(r.Daily.WeatherCode))
	for i, code := range r.Daily.WeatherCode {
		if code == nil {
			return nil, fmt.Errorf("weather_code has a null value at index %d", i)
		}
		codes[i] = *code
	}

	data.Daily = ports.DailySeries{
		Time:           r.Daily.Time,
		TemperatureMax: maxTemps,
		TemperatureMin: minTemps,
		WeatherCode:    codes,
	}
	return data, nil
}

func derefFloats(field string, values []*float64) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			return nil, fmt.Errorf("%s has a null value at index %d", field, i)
		}
		out[i] = *v
	}
	return out, nil
}
