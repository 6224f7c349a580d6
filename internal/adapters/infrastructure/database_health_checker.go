package infrastructure

import (
	"context"
	"time"

	"gorm.io/gorm"
	"rainydays.app/internal/ports"
)

const databasePingTimeout = 2 * time.Second

// DatabaseHealthChecker pings the profile database
type DatabaseHealthChecker struct {
	db *gorm.DB
}

func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{Component: "database", Status: ports.StatusUnhealthy}
	if d.db == nil {
		status.Error = "database is not configured"
		return status
	}

	status.Details = map[string]interface{}{"driver": d.db.Dialector.Name()}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Error = err.Error()
		return status
	}

	pingCtx, cancel := context.WithTimeout(ctx, databasePingTimeout)
	defer cancel()

	start := time.Now()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		status.Error = err.Error()
		return status
	}

	stats := sqlDB.Stats()
	status.Status = ports.StatusHealthy
	status.Details["ping_ms"] = time.Since(start).Milliseconds()
	status.Details["open_connections"] = stats.OpenConnections
	status.Details["in_use"] = stats.InUse
	return status
}
