package external

import (
	"context"
	"fmt"
	"io"
	"time"

	"rainydays.app/internal/config"
	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

// CreateCacheProvider builds the cache backend selected by CACHE_TYPE. With a
// CACHE_KEY_PREFIX the backend is wrapped so every key lives under "<prefix>:".
func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	var backend ports.CacheProvider
	switch cfg.Type {
	case config.CacheTypeMemory:
		backend = NewMemoryCacheProvider()
	case config.CacheTypeRedis:
		provider, err := NewRedisCacheProviderAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		backend = provider
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}

	if cfg.KeyPrefix == "" {
		return backend, nil
	}
	return NewPrefixedCacheProvider(backend, cfg.KeyPrefix), nil
}

// PrefixedCacheProvider scopes forecast and session keys of one deployment.
// Hit and miss counters stay with the backend.
type PrefixedCacheProvider struct {
	backend ports.CacheProvider
	prefix  string
}

func NewPrefixedCacheProvider(backend ports.CacheProvider, prefix string) *PrefixedCacheProvider {
	return &PrefixedCacheProvider{backend: backend, prefix: prefix + ":"}
}

func (p *PrefixedCacheProvider) key(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	return p.prefix + key, nil
}

func (p *PrefixedCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	scoped, err := p.key(key)
	if err != nil {
		return nil, err
	}
	return p.backend.Get(ctx, scoped)
}

func (p *PrefixedCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	scoped, err := p.key(key)
	if err != nil {
		return err
	}
	return p.backend.Set(ctx, scoped, value, ttl)
}

func (p *PrefixedCacheProvider) Delete(ctx context.Context, key string) error {
	scoped, err := p.key(key)
	if err != nil {
		return err
	}
	return p.backend.Delete(ctx, scoped)
}

func (p *PrefixedCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	scoped, err := p.key(key)
	if err != nil {
		return false, err
	}
	return p.backend.Exists(ctx, scoped)
}

// Clear empties the whole backend; the key space cannot be listed by prefix
func (p *PrefixedCacheProvider) Clear(ctx context.Context) error {
	return p.backend.Clear(ctx)
}

func (p *PrefixedCacheProvider) GetStats() ports.CacheStats {
	if withStats, ok := p.backend.(ports.CacheMetrics); ok {
		return withStats.GetStats()
	}
	return ports.CacheStats{LastUpdated: time.Now()}
}

func (p *PrefixedCacheProvider) RecordHit() {
	if withStats, ok := p.backend.(ports.CacheMetrics); ok {
		withStats.RecordHit()
	}
}

func (p *PrefixedCacheProvider) RecordMiss() {
	if withStats, ok := p.backend.(ports.CacheMetrics); ok {
		withStats.RecordMiss()
	}
}

// Close releases the backend connection when it holds one
func (p *PrefixedCacheProvider) Close() error {
	if closer, ok := p.backend.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
