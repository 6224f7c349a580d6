package external

import (
	"sync"
	"time"

	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

// hitCounter tracks hits and misses shared by the cache providers
type hitCounter struct {
	mu     sync.RWMutex
	hits   int64
	misses int64
}

func (c *hitCounter) RecordHit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits++
}

func (c *hitCounter) RecordMiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
}

func (c *hitCounter) GetStats() ports.CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(c.hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        c.hits,
		Misses:      c.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}

func validateKey(key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	return nil
}

func validateEntry(key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}
	return nil
}
