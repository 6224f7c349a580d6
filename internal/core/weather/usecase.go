package weather

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

// FetchFailureMessage is shown whenever weather data could not be loaded
const FetchFailureMessage = "could not load weather data"

type UseCase struct {
	provider ports.ForecastProvider
	cache    ports.ForecastCache
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.WeatherMetrics
}

type UseCaseDependencies struct {
	Provider ports.ForecastProvider
	Cache    ports.ForecastCache
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.WeatherMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		provider: deps.Provider,
		cache:    deps.Cache,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// GetCurrentWeather returns the current conditions of a supported city
func (uc *UseCase) GetCurrentWeather(ctx context.Context, city string) (*CurrentConditions, error) {
	coordinate, err := LookupCity(city)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Getting current weather", ports.F("city", city))

	conditions, err := uc.currentFor(ctx, coordinate, true)
	if err != nil {
		uc.logger.Error("Failed to get current weather",
			ports.F("city", city),
			ports.F("error", err))
		return nil, fmt.Errorf("get current weather for city %s: %w", city, err)
	}

	return conditions, nil
}

// GetForecast returns the multi-day forecast of a supported city
func (uc *UseCase) GetForecast(ctx context.Context, city string) (*Forecast, error) {
	coordinate, err := LookupCity(city)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Getting forecast", ports.F("city", city))

	forecast, err := uc.forecastFor(ctx, coordinate, true)
	if err != nil {
		uc.logger.Error("Failed to get forecast",
			ports.F("city", city),
			ports.F("error", err))
		return nil, fmt.Errorf("get forecast for city %s: %w", city, err)
	}

	return forecast, nil
}

// GetMultipleCitiesWeather fetches every city concurrently. The result is
// all-or-nothing: the first failure cancels the rest and is returned alone.
func (uc *UseCase) GetMultipleCitiesWeather(ctx context.Context, cities []string) ([]CurrentConditions, error) {
	coordinates, err := resolveCities(cities)
	if err != nil {
		return nil, err
	}

	results := make([]CurrentConditions, len(coordinates))
	g, gctx := errgroup.WithContext(ctx)
	for i, coordinate := range coordinates {
		i, coordinate := i, coordinate
		g.Go(func() error {
			conditions, err := uc.currentFor(gctx, coordinate, true)
			if err != nil {
				return fmt.Errorf("get current weather for city %s: %w", coordinate.Name, err)
			}
			results[i] = *conditions
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to get weather for cities",
			ports.F("cities", cities),
			ports.F("error", err))
		return nil, err
	}

	return results, nil
}

// GetDashboard loads the selected city's conditions and forecast together
// with the conditions of every listed city, all-or-nothing.
func (uc *UseCase) GetDashboard(ctx context.Context, request DashboardRequest) (*Dashboard, error) {
	sessionConfig := uc.config.GetSessionConfig()
	if request.SelectedCity == "" {
		request.SelectedCity = sessionConfig.DefaultCity
	}
	if request.Cities == nil {
		request.Cities = sessionConfig.DefaultCities
	}
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid dashboard request: " + err.Error())
	}

	selected, err := LookupCity(request.SelectedCity)
	if err != nil {
		return nil, err
	}
	coordinates, err := resolveCities(request.Cities)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{Cities: make([]CurrentConditions, len(coordinates))}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		conditions, err := uc.currentFor(gctx, selected, true)
		if err != nil {
			return err
		}
		dashboard.Selected = *conditions
		return nil
	})
	g.Go(func() error {
		forecast, err := uc.forecastFor(gctx, selected, true)
		if err != nil {
			return err
		}
		dashboard.Forecast = *forecast
		return nil
	})
	for i, coordinate := range coordinates {
		i, coordinate := i, coordinate
		g.Go(func() error {
			conditions, err := uc.currentFor(gctx, coordinate, true)
			if err != nil {
				return err
			}
			dashboard.Cities[i] = *conditions
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to load dashboard",
			ports.F("selected_city", request.SelectedCity),
			ports.F("error", err))
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	return dashboard, nil
}

// RefreshCache fetches fresh data for the given cities, skipping cache reads,
// and stores it so later requests are served from cache.
func (uc *UseCase) RefreshCache(ctx context.Context, cities []string, forecastCity string) error {
	if !uc.config.GetWeatherConfig().EnableCache {
		return nil
	}

	coordinates, err := resolveCities(cities)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, coordinate := range coordinates {
		coordinate := coordinate
		g.Go(func() error {
			_, err := uc.currentFor(gctx, coordinate, false)
			return err
		})
	}
	if forecastCity != "" {
		coordinate, err := LookupCity(forecastCity)
		if err != nil {
			return err
		}
		g.Go(func() error {
			_, err := uc.forecastFor(gctx, coordinate, false)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh weather cache: %w", err)
	}

	uc.logger.Debug("Weather cache refreshed", ports.F("cities", len(coordinates)))
	return nil
}

func (uc *UseCase) GetProviderInfo(ctx context.Context) map[string]interface{} {
	return uc.metrics.GetProviderInfo()
}

func (uc *UseCase) GetCacheMetrics(ctx context.Context) (ports.CacheStats, error) {
	metrics, err := uc.metrics.GetCacheMetrics()
	if err != nil {
		return ports.CacheStats{}, fmt.Errorf("get cache metrics: %w", err)
	}
	return metrics, nil
}

func (uc *UseCase) currentFor(ctx context.Context, coordinate CityCoordinate, readCache bool) (*CurrentConditions, error) {
	query := ports.ForecastQuery{
		Latitude:       coordinate.Latitude,
		Longitude:      coordinate.Longitude,
		ForecastDays:   1,
		IncludeCurrent: true,
	}
	data, fresh, err := uc.fetch(ctx, query, readCache)
	if err != nil {
		return nil, err
	}

	if data.Current == nil || len(data.Daily.TemperatureMax) == 0 || len(data.Daily.TemperatureMin) == 0 {
		return nil, errors.NewExternalAPIError(FetchFailureMessage,
			fmt.Errorf("response for %s lacks current or daily values", coordinate.Name))
	}
	if fresh {
		uc.store(ctx, query, data)
	}

	return &CurrentConditions{
		City:        coordinate.Name,
		Country:     coordinate.Country,
		Temperature: Round(data.Current.Temperature),
		DailyMax:    Round(data.Daily.TemperatureMax[0]),
		DailyMin:    Round(data.Daily.TemperatureMin[0]),
		Humidity:    data.Current.RelativeHumidity,
		WindSpeed:   data.Current.WindSpeed,
		WeatherCode: data.Current.WeatherCode,
		Description: Describe(data.Current.WeatherCode),
		Category:    Categorize(data.Current.WeatherCode),
		FetchedAt:   data.FetchedAt,
	}, nil
}

func (uc *UseCase) forecastFor(ctx context.Context, coordinate CityCoordinate, readCache bool) (*Forecast, error) {
	query := ports.ForecastQuery{
		Latitude:     coordinate.Latitude,
		Longitude:    coordinate.Longitude,
		ForecastDays: uc.config.GetWeatherConfig().ForecastDays,
	}
	data, fresh, err := uc.fetch(ctx, query, readCache)
	if err != nil {
		return nil, err
	}

	days, err := AssembleForecast(data.Daily.Time, data.Daily.TemperatureMax, data.Daily.TemperatureMin, data.Daily.WeatherCode)
	if err != nil {
		return nil, errors.NewExternalAPIError(FetchFailureMessage, err)
	}
	if fresh {
		uc.store(ctx, query, data)
	}

	return &Forecast{
		City:    coordinate.Name,
		Country: coordinate.Country,
		Days:    days,
	}, nil
}

// fetch reads the cache when allowed and falls back to the provider. fresh
// reports a provider response, which the caller stores once it has been
// converted without error, so a malformed payload never replaces a good entry.
func (uc *UseCase) fetch(ctx context.Context, query ports.ForecastQuery, readCache bool) (data *ports.ForecastData, fresh bool, err error) {
	cacheKey := query.CacheKey()

	if uc.config.GetWeatherConfig().EnableCache && readCache {
		cached, err := uc.cache.Get(ctx, cacheKey)
		if err == nil && cached != nil {
			uc.logger.Debug("Forecast found in cache", ports.F("key", cacheKey))
			return cached, false, nil
		}
	}

	data, err = uc.provider.GetForecast(ctx, query)
	if err != nil {
		return nil, false, errors.NewExternalAPIError(FetchFailureMessage, err)
	}
	if data.FetchedAt.IsZero() {
		data.FetchedAt = time.Now()
	}

	return data, true, nil
}

func (uc *UseCase) store(ctx context.Context, query ports.ForecastQuery, data *ports.ForecastData) {
	weatherConfig := uc.config.GetWeatherConfig()
	if !weatherConfig.EnableCache {
		return
	}

	cacheKey := query.CacheKey()
	if err := uc.cache.Set(ctx, cacheKey, data, weatherConfig.CacheTTL); err != nil {
		uc.logger.Warn("Failed to cache forecast data",
			ports.F("key", cacheKey),
			ports.F("error", err))
	}
}

// resolveCities looks every name up before any request is made
func resolveCities(cities []string) ([]CityCoordinate, error) {
	coordinates := make([]CityCoordinate, 0, len(cities))
	for _, city := range cities {
		coordinate, err := LookupCity(city)
		if err != nil {
			return nil, err
		}
		coordinates = append(coordinates, coordinate)
	}
	return coordinates, nil
}
