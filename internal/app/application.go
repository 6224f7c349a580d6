package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"rainydays.app/internal/adapters/api"
	"rainydays.app/internal/adapters/infrastructure"
	"rainydays.app/internal/config"
	"rainydays.app/internal/core/profile"
	"rainydays.app/internal/core/weather"
	"rainydays.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase *weather.UseCase
	profileUseCase *profile.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps     *DependencyContainer
	ports    *ports.ApplicationPorts
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(DependencyConfig{
		Database: cfg.Database,
		Weather:  cfg.Weather,
		Cache:    cfg.Cache,
	}, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config:   cfg,
		deps:     deps,
		ports:    deps.ApplicationPorts(),
		stopChan: make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider: a.ports.ForecastProvider,
		Cache:    a.ports.ForecastCache,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.WeatherMetrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	profileUseCase, err := profile.NewUseCase(profile.UseCaseDependencies{
		ProfileRepo:  a.ports.ProfileRepository,
		SessionStore: a.ports.SessionStore,
		Config:       a.ports.ConfigProvider,
		Logger:       a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create profile use case: %w", err)
	}
	a.profileUseCase = profileUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		WeatherMetrics: a.ports.WeatherMetrics,
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(a.deps.Database()),
		CacheChecker:    infrastructure.NewCacheHealthChecker(a.ports.CacheProvider, a.config.Cache.Type.String()),
		ForecastChecker: infrastructure.NewForecastProviderHealthChecker(a.ports.ForecastProvider),
		ConfigProvider:  a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:    a.config.Server.Port,
			GinMode: a.config.Server.GinMode,
		},
		WeatherUseCase:   a.weatherUseCase,
		ProfileUseCase:   a.profileUseCase,
		MetricsCollector: metricsCollector,
		HealthChecker:    systemHealthChecker,
		RequestObserver:  a.deps.Metrics(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	warmup := a.ports.ConfigProvider.GetWarmupConfig()
	if warmup.Enabled && a.ports.ConfigProvider.GetWeatherConfig().EnableCache {
		go a.startWarmup(ctx, warmup.Interval)
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// startWarmup refreshes the default cities right away and then on every tick
func (a *Application) startWarmup(ctx context.Context, interval time.Duration) {
	slog.Info("Starting cache warmup...", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.warmCache(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Cache warmup stopped due to context cancellation")
			return
		case <-a.stopChan:
			slog.Info("Cache warmup stopped")
			return
		case <-ticker.C:
			a.warmCache(ctx)
		}
	}
}

func (a *Application) warmCache(ctx context.Context) {
	session := a.ports.ConfigProvider.GetSessionConfig()
	if err := a.weatherUseCase.RefreshCache(ctx, session.DefaultCities, session.DefaultCity); err != nil {
		slog.Warn("Cache warmup failed", "error", err)
	}
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.stopOnce.Do(func() { close(a.stopChan) })

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}

// GetProfileUseCase returns the profile use case for testing
func (a *Application) GetProfileUseCase() *profile.UseCase {
	return a.profileUseCase
}
