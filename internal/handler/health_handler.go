package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/metrics"
)

// Version is reported by the health endpoint.
var Version = "dev"

// HealthHandler handles health check requests.
type HealthHandler struct {
	db       database.Pinger
	sessions database.Pinger
}

// NewHealthHandler creates a new HealthHandler over the database and the
// session store backend.
func NewHealthHandler(db database.Pinger, sessions database.Pinger) *HealthHandler {
	return &HealthHandler{db: db, sessions: sessions}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

func (h *HealthHandler) check(ctx context.Context) (map[string]string, bool) {
	services := map[string]string{"database": "healthy", "sessions": "healthy"}
	healthy := true

	if err := database.HealthCheck(ctx, h.db); err != nil {
		services["database"] = "unhealthy"
		healthy = false
	} else if pool, ok := h.db.(*pgxpool.Pool); ok {
		metrics.LogHealthCheckMetrics(ctx, pool)
	}
	if h.sessions != nil {
		if err := h.sessions.Ping(ctx); err != nil {
			services["sessions"] = "unhealthy"
			healthy = false
		}
	}
	return services, healthy
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.check(c.Request.Context())
	if !healthy {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Services: services})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Version: Version, Services: services})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if _, healthy := h.check(c.Request.Context()); !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
