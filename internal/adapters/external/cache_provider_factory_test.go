package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rainydays.app/internal/config"
	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	factory := NewCacheProviderFactory()
	_, redisConfig := setupMockRedis(t)

	tests := []struct {
		name         string
		config       *config.CacheConfig
		expectError  bool
		expectedType interface{}
	}{
		{
			name:        "NilConfig",
			config:      nil,
			expectError: true,
		},
		{
			name:         "MemoryCache",
			config:       &config.CacheConfig{Type: config.CacheTypeMemory},
			expectedType: &MemoryCacheProvider{},
		},
		{
			name:         "RedisCache",
			config:       &config.CacheConfig{Type: config.CacheTypeRedis, Redis: *redisConfig},
			expectedType: &RedisCacheProviderAdapter{},
		},
		{
			name:        "UnknownCacheType",
			config:      &config.CacheConfig{Type: config.CacheTypeUnknown},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := factory.CreateCacheProvider(tt.config)

			if tt.expectError {
				assert.True(t, errors.IsConfigurationError(err))
				assert.Nil(t, provider)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.expectedType, provider)
			if closer, ok := provider.(*RedisCacheProviderAdapter); ok {
				assert.NoError(t, closer.Close())
			}
		})
	}
}

func TestCacheProviderFactory_RedisUnreachable(t *testing.T) {
	factory := NewCacheProviderFactory()

	provider, err := factory.CreateCacheProvider(&config.CacheConfig{
		Type: config.CacheTypeRedis,
		Redis: config.RedisConfig{
			Addr:         "invalid:address:port",
			DialTimeout:  1,
			ReadTimeout:  1,
			WriteTimeout: 1,
		},
	})

	assert.True(t, errors.IsCacheError(err))
	assert.Nil(t, provider)
}

var (
	_ ports.CacheProvider = (*PrefixedCacheProvider)(nil)
	_ ports.CacheMetrics  = (*PrefixedCacheProvider)(nil)
)

func TestCacheProviderFactory_KeyPrefix(t *testing.T) {
	factory := NewCacheProviderFactory()
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeMemory, KeyPrefix: "rainydays"})
		require.NoError(t, err)

		prefixed, ok := provider.(*PrefixedCacheProvider)
		require.True(t, ok)
		backend, ok := prefixed.backend.(*MemoryCacheProvider)
		require.True(t, ok)

		require.NoError(t, provider.Set(ctx, "session:abc", []byte("profile"), time.Minute))

		stored, err := backend.Get(ctx, "rainydays:session:abc")
		require.NoError(t, err)
		assert.Equal(t, []byte("profile"), stored)

		_, err = backend.Get(ctx, "session:abc")
		assert.True(t, errors.IsNotFoundError(err))

		exists, err := provider.Exists(ctx, "session:abc")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, provider.Delete(ctx, "session:abc"))
		assert.Equal(t, 0, backend.Len())

		_, err = provider.Get(ctx, "")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("StatsComeFromBackend", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeMemory, KeyPrefix: "rainydays"})
		require.NoError(t, err)

		require.NoError(t, provider.Set(ctx, "forecast:current", []byte("{}"), time.Minute))
		_, err = provider.Get(ctx, "forecast:current")
		require.NoError(t, err)
		_, err = provider.Get(ctx, "forecast:daily")
		require.Error(t, err)

		stats, err := NewWeatherMetricsAdapter(provider, nil, true).GetCacheMetrics()

		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Hits)
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, 0.5, stats.HitRatio)
	})

	t.Run("RedisKeysAreNamespaced", func(t *testing.T) {
		mockRedis, redisConfig := setupMockRedis(t)

		provider, err := factory.CreateCacheProvider(&config.CacheConfig{
			Type:      config.CacheTypeRedis,
			KeyPrefix: "staging",
			Redis:     *redisConfig,
		})
		require.NoError(t, err)

		require.NoError(t, provider.Set(ctx, "forecast:daily:41.9028:12.4964:7", []byte("{}"), time.Minute))

		assert.Equal(t, []string{"staging:forecast:daily:41.9028:12.4964:7"}, mockRedis.Keys())

		closer, ok := provider.(*PrefixedCacheProvider)
		require.True(t, ok)
		assert.NoError(t, closer.Close())
	})

	t.Run("DeploymentsShareRedisWithoutCollisions", func(t *testing.T) {
		_, redisConfig := setupMockRedis(t)

		production, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeRedis, KeyPrefix: "production", Redis: *redisConfig})
		require.NoError(t, err)
		staging, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeRedis, KeyPrefix: "staging", Redis: *redisConfig})
		require.NoError(t, err)

		require.NoError(t, production.Set(ctx, "session:token", []byte("Madrid"), time.Minute))
		require.NoError(t, staging.Set(ctx, "session:token", []byte("Cairo"), time.Minute))

		value, err := production.Get(ctx, "session:token")
		require.NoError(t, err)
		assert.Equal(t, []byte("Madrid"), value)

		value, err = staging.Get(ctx, "session:token")
		require.NoError(t, err)
		assert.Equal(t, []byte("Cairo"), value)
	})
}
