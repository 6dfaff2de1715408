package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"realartist-backend/internal/models"
	"realartist-backend/internal/storage"
)

const PlatformName = "RealArtist AI"

var platformFeatures = []string{"ai-generation", "analytics", "security", "royalties"}

// HealthHandler serves liveness, readiness and version information.
type HealthHandler struct {
	store       storage.Storage
	version     string
	environment string
	startedAt   time.Time
}

func NewHealthHandler(store storage.Storage, version, environment string, startedAt time.Time) *HealthHandler {
	return &HealthHandler{
		store:       store,
		version:     version,
		environment: environment,
		startedAt:   startedAt,
	}
}

func (h *HealthHandler) uptime() float64 {
	return time.Since(h.startedAt).Seconds()
}

func databaseState(healthy bool) string {
	if healthy {
		return "connected"
	}
	return "disconnected"
}

// Liveness godoc
// @Summary     Liveness check
// @Description Always 200 while the process serves requests; status is "degraded" when the store is unreachable
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	healthy := h.store.HealthCheck(c.Request.Context())

	status := "ok"
	if !healthy {
		status = "degraded"
	}
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:      status,
		Timestamp:   time.Now().UTC(),
		Version:     h.version,
		Environment: h.environment,
		Uptime:      h.uptime(),
		Database:    databaseState(healthy),
	})
}

// Readiness godoc
// @Summary     Readiness check
// @Description 200 when every dependency answers, 503 otherwise
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Failure     503 {object} models.HealthResponse
// @Router      /api/health [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	healthy := h.store.HealthCheck(c.Request.Context())

	resp := models.HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Version:     h.version,
		Environment: h.environment,
		Uptime:      h.uptime(),
		Database:    databaseState(healthy),
		Services: map[string]string{
			"api":      "operational",
			"database": "operational",
			"ai":       "operational",
		},
	}
	if !healthy {
		resp.Status = "unhealthy"
		resp.Services["database"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Database godoc
// @Summary     Database health
// @Tags        health
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     503 {object} map[string]string
// @Router      /api/health/db [get]
func (h *HealthHandler) Database(c *gin.Context) {
	if !h.store.HealthCheck(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": databaseState(false)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": databaseState(true)})
}

// Version godoc
// @Summary     Version
// @Tags        health
// @Produce     json
// @Success     200 {object} models.VersionResponse
// @Router      /api/version [get]
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, models.VersionResponse{
		Version:     h.version,
		Platform:    PlatformName,
		BuildDate:   time.Now().UTC(),
		Features:    platformFeatures,
		Environment: h.environment,
	})
}
