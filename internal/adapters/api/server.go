// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"rainydays.app/internal/core/profile"
	"rainydays.app/internal/core/weather"
	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

// SessionTokenHeader carries the session token issued by POST /api/session
const SessionTokenHeader = "X-Session-Token"

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port    int
	GinMode string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	weatherUseCase   WeatherUseCase
	profileUseCase   ProfileUseCase
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	GetCurrentWeather(ctx context.Context, city string) (*weather.CurrentConditions, error)
	GetForecast(ctx context.Context, city string) (*weather.Forecast, error)
	GetMultipleCitiesWeather(ctx context.Context, cities []string) ([]weather.CurrentConditions, error)
	GetDashboard(ctx context.Context, request weather.DashboardRequest) (*weather.Dashboard, error)
}

type ProfileUseCase interface {
	Login(ctx context.Context, params profile.LoginParams) (*profile.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentProfile(ctx context.Context, token string) (*profile.Profile, error)
	AddCity(ctx context.Context, token, city string) (*profile.Profile, error)
	RemoveCity(ctx context.Context, token, city string) (*profile.Profile, error)
	SelectCity(ctx context.Context, token, city string) (*profile.Profile, error)
	SuggestCities(ctx context.Context, token, query string) ([]string, error)
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// RequestObserver records served requests, e.g. into Prometheus
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	WeatherUseCase   WeatherUseCase
	ProfileUseCase   ProfileUseCase
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
	// RequestObserver is optional
	RequestObserver RequestObserver
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if opts.Config.GinMode != "" {
		gin.SetMode(opts.Config.GinMode)
	}
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.Default()
	if opts.RequestObserver != nil {
		router.Use(observeRequests(opts.RequestObserver))
	}

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		weatherUseCase:   opts.WeatherUseCase,
		profileUseCase:   opts.ProfileUseCase,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.ProfileUseCase == nil {
		return errors.NewValidationError("profile use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/weather/cities", s.getMultipleCitiesWeather)
		api.GET("/forecast", s.getForecast)
		api.GET("/dashboard", s.getDashboard)
		api.GET("/cities", s.getCities)
		api.GET("/weather-codes/:code", s.getWeatherCode)

		api.POST("/session", s.login)
		api.DELETE("/session", s.logout)

		api.GET("/profile", s.getProfile)
		api.POST("/profile/cities", s.addCity)
		api.DELETE("/profile/cities/:city", s.removeCity)
		api.PUT("/profile/selected-city", s.selectCity)
		api.GET("/profile/suggestions", s.suggestCities)

		api.GET("/metrics", s.getMetrics)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Start runs the router until it fails; the application uses its own http.Server instead
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	return s.router.Run(fmt.Sprintf(":%d", s.config.Port))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
