package ports

import "context"

// Component states reported by health checkers
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker checks a single component: database, cache or forecast source
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// SystemHealthChecker runs every registered checker, keyed by component
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}

// AllHealthy reports whether every component in results is healthy
func AllHealthy(results map[string]HealthStatus) bool {
	for _, status := range results {
		if status.Status != StatusHealthy {
			return false
		}
	}
	return true
}
