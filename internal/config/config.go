package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"rainydays.app/pkg/errors"
)

const (
	maxRedisDB         = 15
	maxCacheTTLMinutes = 1440
	maxForecastDays    = 16
	maxPortNumber      = 65535
	maxSessionDays     = 365
	maxWarmupMinutes   = 1440
	maxHTTPTimeoutSecs = 120
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	Session  SessionConfig  `split_words:"true"`
	Warmup   WarmupConfig   `split_words:"true"`
	LogLevel string         `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port    int    `envconfig:"SERVER_PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`
}

// DatabaseDriver selects the gorm dialector used for profile storage
type DatabaseDriver int

const (
	DatabaseDriverUnknown DatabaseDriver = iota
	DatabaseDriverPostgres
	DatabaseDriverSQLite
)

func (d DatabaseDriver) String() string {
	switch d {
	case DatabaseDriverPostgres:
		return "postgres"
	case DatabaseDriverSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

func (d DatabaseDriver) IsValid() bool {
	return d == DatabaseDriverPostgres || d == DatabaseDriverSQLite
}

func DatabaseDriverFromString(s string) DatabaseDriver {
	switch s {
	case "postgres":
		return DatabaseDriverPostgres
	case "sqlite":
		return DatabaseDriverSQLite
	default:
		return DatabaseDriverUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (d *DatabaseDriver) UnmarshalText(text []byte) error {
	*d = DatabaseDriverFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (d DatabaseDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"sqlite"`
	Host       string         `envconfig:"DB_HOST" default:"localhost"`
	Port       int            `envconfig:"DB_PORT" default:"5432"`
	User       string         `envconfig:"DB_USER" default:"postgres"`
	Password   string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string         `envconfig:"DB_NAME" default:"rainydays"`
	SSLMode    string         `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string         `envconfig:"DB_SQLITE_PATH" default:"data/rainydays.db"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == DatabaseDriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WeatherConfig struct {
	BaseURL            string  `envconfig:"WEATHER_API_BASE_URL" default:"https://api.open-meteo.com/v1"`
	ForecastDays       int     `envconfig:"WEATHER_FORECAST_DAYS" default:"7"`
	HTTPTimeoutSeconds int     `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`
	RateLimitRPS       float64 `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst     int     `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"10"`
	EnableCache        bool    `envconfig:"WEATHER_ENABLE_CACHE" default:"true"`
	CacheTTLMinutes    int     `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"10"`
	EnableLogging      bool    `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath        string  `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_provider.log"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// CacheConfig selects the cache backend. KeyPrefix namespaces every key so
// several deployments can share one Redis database.
type CacheConfig struct {
	Type      CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	KeyPrefix string      `envconfig:"CACHE_KEY_PREFIX" default:"rainydays"`
	Redis     RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type SessionConfig struct {
	DurationDays  int      `envconfig:"SESSION_DURATION_DAYS" default:"30"`
	DefaultCities []string `envconfig:"SESSION_DEFAULT_CITIES" default:"Mexicali,Tijuana,Madrid,Beijing,Buenos Aires"`
	DefaultCity   string   `envconfig:"SESSION_DEFAULT_CITY" default:"Mexicali"`
}

type WarmupConfig struct {
	Enabled         bool `envconfig:"WARMUP_ENABLED" default:"true"`
	IntervalMinutes int  `envconfig:"WARMUP_INTERVAL" default:"10"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.Warmup.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	switch s.GinMode {
	case "debug", "release", "test":
	default:
		return errors.NewConfigurationError("GIN_MODE must be one of: debug, release, test", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if !d.Driver.IsValid() {
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}
	if d.Driver == DatabaseDriverSQLite {
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.ForecastDays < 1 || w.ForecastDays > maxForecastDays {
		return errors.NewConfigurationError("WEATHER_FORECAST_DAYS must be between 1 and 16", nil)
	}
	if w.HTTPTimeoutSeconds < 1 || w.HTTPTimeoutSeconds > maxHTTPTimeoutSecs {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if w.RateLimitRPS <= 0 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_RPS must be positive", nil)
	}
	if w.RateLimitBurst < 1 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_BURST must be at least 1", nil)
	}
	if w.CacheTTLMinutes < 1 || w.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if strings.ContainsAny(c.KeyPrefix, " \t\r\n") {
		return errors.NewConfigurationError("CACHE_KEY_PREFIX cannot contain whitespace", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (s *SessionConfig) Validate() error {
	if s.DurationDays < 1 || s.DurationDays > maxSessionDays {
		return errors.NewConfigurationError("SESSION_DURATION_DAYS must be between 1 and 365", nil)
	}
	if len(s.DefaultCities) == 0 {
		return errors.NewConfigurationError("SESSION_DEFAULT_CITIES cannot be empty", nil)
	}
	for _, city := range s.DefaultCities {
		if city == s.DefaultCity {
			return nil
		}
	}
	return errors.NewConfigurationError("SESSION_DEFAULT_CITY must be one of SESSION_DEFAULT_CITIES", nil)
}

func (w *WarmupConfig) Validate() error {
	if !w.Enabled {
		return nil
	}
	if w.IntervalMinutes < 1 || w.IntervalMinutes > maxWarmupMinutes {
		return errors.NewConfigurationError("WARMUP_INTERVAL must be between 1 and 1440 minutes", nil)
	}
	return nil
}
