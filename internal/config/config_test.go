package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rainydays.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "release", config.Server.GinMode)
		assert.Equal(t, DatabaseDriverSQLite, config.Database.Driver)
		assert.Equal(t, "data/rainydays.db", config.Database.SQLitePath)
		assert.Equal(t, "https://api.open-meteo.com/v1", config.Weather.BaseURL)
		assert.Equal(t, 7, config.Weather.ForecastDays)
		assert.Equal(t, 10, config.Weather.HTTPTimeoutSeconds)
		assert.True(t, config.Weather.EnableCache)
		assert.Equal(t, 10, config.Weather.CacheTTLMinutes)
		assert.Equal(t, CacheTypeMemory, config.Cache.Type)
		assert.Equal(t, 30, config.Session.DurationDays)
		assert.Equal(t, []string{"Mexicali", "Tijuana", "Madrid", "Beijing", "Buenos Aires"}, config.Session.DefaultCities)
		assert.Equal(t, "Mexicali", config.Session.DefaultCity)
		assert.True(t, config.Warmup.Enabled)
		assert.Equal(t, "info", config.LogLevel)
	})

	t.Run("CustomValues", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DB_HOST", "test-db-host")
		t.Setenv("DB_SSL_MODE", "require")
		t.Setenv("WEATHER_API_BASE_URL", "http://localhost:9999/v1")
		t.Setenv("WEATHER_FORECAST_DAYS", "3")
		t.Setenv("WEATHER_RATE_LIMIT_RPS", "0.5")
		t.Setenv("CACHE_TYPE", "redis")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("CACHE_KEY_PREFIX", "staging")
		t.Setenv("SESSION_DEFAULT_CITIES", "Madrid,Rome")
		t.Setenv("SESSION_DEFAULT_CITY", "Rome")

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, DatabaseDriverPostgres, config.Database.Driver)
		assert.Equal(t, "test-db-host", config.Database.Host)
		assert.Equal(t, "require", config.Database.SSLMode)
		assert.Equal(t, "http://localhost:9999/v1", config.Weather.BaseURL)
		assert.Equal(t, 3, config.Weather.ForecastDays)
		assert.Equal(t, 0.5, config.Weather.RateLimitRPS)
		assert.Equal(t, CacheTypeRedis, config.Cache.Type)
		assert.Equal(t, "redis:6379", config.Cache.Redis.Addr)
		assert.Equal(t, "staging", config.Cache.KeyPrefix)
		assert.Equal(t, []string{"Madrid", "Rome"}, config.Session.DefaultCities)
		assert.Equal(t, "Rome", config.Session.DefaultCity)
	})

	t.Run("InvalidValues", func(t *testing.T) {
		tests := []struct {
			name   string
			env    map[string]string
			errMsg string
		}{
			{"Port", map[string]string{"SERVER_PORT": "70000"}, "SERVER_PORT"},
			{"GinMode", map[string]string{"GIN_MODE": "verbose"}, "GIN_MODE"},
			{"Driver", map[string]string{"DB_DRIVER": "mysql"}, "DB_DRIVER"},
			{"SSLMode", map[string]string{"DB_DRIVER": "postgres", "DB_SSL_MODE": "prefer"}, "DB_SSL_MODE"},
			{"BaseURL", map[string]string{"WEATHER_API_BASE_URL": "ftp://open-meteo"}, "WEATHER_API_BASE_URL"},
			{"ForecastDays", map[string]string{"WEATHER_FORECAST_DAYS": "17"}, "WEATHER_FORECAST_DAYS"},
			{"RateLimit", map[string]string{"WEATHER_RATE_LIMIT_RPS": "0"}, "WEATHER_RATE_LIMIT_RPS"},
			{"CacheType", map[string]string{"CACHE_TYPE": "memcached"}, "CACHE_TYPE"},
			{"CacheKeyPrefix", map[string]string{"CACHE_KEY_PREFIX": "rainy days"}, "CACHE_KEY_PREFIX"},
			{"RedisDB", map[string]string{"CACHE_TYPE": "redis", "REDIS_DB": "16"}, "REDIS_DB"},
			{"SessionDuration", map[string]string{"SESSION_DURATION_DAYS": "0"}, "SESSION_DURATION_DAYS"},
			{"DefaultCity", map[string]string{"SESSION_DEFAULT_CITY": "Rome"}, "SESSION_DEFAULT_CITY"},
			{"Warmup", map[string]string{"WARMUP_INTERVAL": "0"}, "WARMUP_INTERVAL"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				for k, v := range tt.env {
					t.Setenv(k, v)
				}

				config, err := LoadConfig()

				assert.Nil(t, config)
				require.Error(t, err)
				assert.True(t, errors.IsConfigurationError(err))
				assert.Contains(t, err.Error(), tt.errMsg)
			})
		}
	})

	t.Run("UnparsableValue", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "not-a-number")

		config, err := LoadConfig()

		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
	})
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	t.Run("Postgres", func(t *testing.T) {
		dbConfig := DatabaseConfig{
			Driver:   DatabaseDriverPostgres,
			Host:     "test-host",
			Port:     5432,
			User:     "test-user",
			Password: "test-password",
			Name:     "test-db",
			SSLMode:  "disable",
		}

		expectedDSN := "host=test-host port=5432 user=test-user password=test-password dbname=test-db sslmode=disable"
		assert.Equal(t, expectedDSN, dbConfig.GetDSN())
	})

	t.Run("SQLite", func(t *testing.T) {
		dbConfig := DatabaseConfig{Driver: DatabaseDriverSQLite, SQLitePath: "/tmp/rainy.db"}
		assert.Equal(t, "/tmp/rainy.db", dbConfig.GetDSN())
	})
}

func TestEnumRoundTrip(t *testing.T) {
	for _, s := range []string{"memory", "redis"} {
		assert.Equal(t, s, CacheTypeFromString(s).String())
	}
	for _, s := range []string{"postgres", "sqlite"} {
		assert.Equal(t, s, DatabaseDriverFromString(s).String())
	}
	assert.False(t, CacheTypeFromString("disk").IsValid())
	assert.False(t, DatabaseDriverFromString("mysql").IsValid())
}
