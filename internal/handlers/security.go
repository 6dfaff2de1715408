package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"realartist-backend/internal/models"
	"realartist-backend/internal/storage"
)

const (
	defaultSecurityLogLimit = 50
	maxSecurityLogLimit     = 200
)

type SecurityHandler struct {
	store  storage.Storage
	logger *zap.SugaredLogger
}

func NewSecurityHandler(store storage.Storage, logger *zap.SugaredLogger) *SecurityHandler {
	return &SecurityHandler{store: store, logger: logger}
}

// ListLogs godoc
// @Summary     Security logs
// @Description Returns the acting user's audit trail, newest first
// @Tags        security
// @Produce     json
// @Param       limit query int false "Maximum rows (1-200, default 50)"
// @Success     200 {array}  models.SecurityLog
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/security/logs [get]
func (h *SecurityHandler) ListLogs(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	limit := defaultSecurityLogLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSecurityLogLimit {
			respondError(c, http.StatusBadRequest, "Invalid limit",
				models.FieldError{Field: "limit", Message: "must be an integer between 1 and 200"})
			return
		}
		limit = n
	}

	logs, err := h.store.GetSecurityLogs(c.Request.Context(), userID, limit)
	if err != nil {
		respondInternal(c, h.logger, err, "Failed to fetch security logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}
