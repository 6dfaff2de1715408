package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"realartist-backend/internal/services"
)

type AnalyticsHandler struct {
	analytics *services.AnalyticsService
	logger    *zap.SugaredLogger
}

func NewAnalyticsHandler(analytics *services.AnalyticsService, logger *zap.SugaredLogger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, logger: logger}
}

// Dashboard godoc
// @Summary     Dashboard analytics
// @Description Project count, streams, revenue in cents, top genres and recent activity
// @Tags        analytics
// @Produce     json
// @Success     200 {object} models.DashboardAnalytics
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	dashboard, err := h.analytics.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, h.logger, err, "Failed to fetch analytics")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// RoyaltySummary godoc
// @Summary     Royalty summary
// @Description Per-platform royalty totals across the acting user's projects
// @Tags        analytics
// @Produce     json
// @Success     200 {object} models.RoyaltySummary
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/royalties/summary [get]
func (h *AnalyticsHandler) RoyaltySummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.analytics.RoyaltySummary(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, h.logger, err, "Failed to fetch royalty summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Monitor godoc
// @Summary     Platform monitor
// @Tags        health
// @Produce     json
// @Success     200 {object} models.MonitorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/monitor [get]
func (h *AnalyticsHandler) Monitor(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	snapshot, err := h.analytics.Monitor(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, h.logger, err, "Monitoring failed")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
