package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"rainydays.app/internal/adapters/database"
	"rainydays.app/internal/adapters/external"
	"rainydays.app/internal/adapters/infrastructure"
	"rainydays.app/internal/config"
	"rainydays.app/internal/ports"
)

type DependencyContainer struct {
	config  DependencyConfig
	db      *gorm.DB
	ports   *ports.ApplicationPorts
	metrics *infrastructure.PrometheusMetrics
	closers []io.Closer
}

type DependencyConfig struct {
	Database config.DatabaseConfig
	Weather  config.WeatherConfig
	Cache    config.CacheConfig
	// Registerer defaults to prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
}

func NewDependencyContainer(depConfig DependencyConfig, appConfig *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: depConfig,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(appConfig); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", c.config.Database.Driver.String())

	dialector, err := c.dialector()
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if err := c.runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) dialector() (gorm.Dialector, error) {
	dsn := c.config.Database.GetDSN()

	switch c.config.Database.Driver {
	case config.DatabaseDriverPostgres:
		return postgres.Open(dsn), nil
	case config.DatabaseDriverSQLite:
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.Database.Driver.String())
	}
}

func (c *DependencyContainer) runMigrations(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	if err := db.AutoMigrate(&database.ProfileModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(appConfig *config.Config) error {
	slog.Info("Initializing ports...")

	registerer := c.config.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	c.metrics = infrastructure.NewPrometheusMetrics(registerer, c.config.Cache.Type.String())

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())

	// Provider calls go to a dedicated file when enabled
	providerLogger := logger
	if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			providerLogger = fileLogger
			c.closers = append(c.closers, fileLogger)
			slog.Info("File logging enabled", "path", c.config.Weather.LogFilePath)
		}
	}

	// Open-Meteo, throttled, then logged
	var forecastProvider ports.ForecastProvider = external.NewOpenMeteoProviderAdapter(external.OpenMeteoProviderParams{
		BaseURL: c.config.Weather.BaseURL,
		Timeout: time.Duration(c.config.Weather.HTTPTimeoutSeconds) * time.Second,
		Logger:  logger,
	})
	forecastProvider = external.NewRateLimitedForecastProvider(forecastProvider,
		c.config.Weather.RateLimitRPS, c.config.Weather.RateLimitBurst)
	if c.config.Weather.EnableLogging {
		forecastProvider = external.NewForecastProviderLoggingDecorator(forecastProvider, providerLogger, c.metrics)
		slog.Info("Forecast provider logging enabled")
	}

	cacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	if closer, ok := cacheProvider.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"key_prefix", c.config.Cache.KeyPrefix,
		"redis_addr", c.config.Cache.Redis.Addr)

	configProvider := infrastructure.NewConfigProviderAdapter(appConfig)

	c.ports = &ports.ApplicationPorts{
		// Weather
		ForecastProvider: forecastProvider,
		ForecastCache:    external.NewForecastCacheAdapter(cacheProvider, c.metrics),
		WeatherMetrics:   external.NewWeatherMetricsAdapter(cacheProvider, forecastProvider, c.config.Weather.EnableCache),

		// Profile
		ProfileRepository: database.NewProfileRepositoryAdapter(c.db),
		SessionStore:      external.NewCacheSessionStore(cacheProvider),

		// Cache
		CacheProvider: cacheProvider,

		// Infrastructure
		ConfigProvider:   configProvider,
		Logger:           logger,
		MetricsCollector: c.metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Metrics returns the Prometheus collectors, also used to observe HTTP requests
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetrics {
	return c.metrics
}

// NewTestDependencyContainer uses a memory cache and a private metrics registry
func NewTestDependencyContainer(appConfig *config.Config) (*DependencyContainer, error) {
	depConfig := DependencyConfig{
		Database:   appConfig.Database,
		Weather:    appConfig.Weather,
		Cache:      config.CacheConfig{Type: config.CacheTypeMemory},
		Registerer: prometheus.NewRegistry(),
	}
	depConfig.Weather.EnableLogging = false

	return NewDependencyContainer(depConfig, appConfig)
}

// Cleanup releases the database, cache and log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			if err := db.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
