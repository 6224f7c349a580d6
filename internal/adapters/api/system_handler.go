package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"rainydays.app/internal/ports"
)

type HealthResponse struct {
	Status     string      `json:"status"`
	Components interface{} `json:"components"`
}

// getMetrics returns provider info and cache statistics as JSON
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		slog.Error("Failed to collect metrics", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getHealth reports 503 as soon as any component is unhealthy
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	if !ports.AllHealthy(results) {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: ports.StatusUnhealthy, Components: results})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: ports.StatusHealthy, Components: results})
}
