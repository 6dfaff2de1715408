package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"realartist-backend/internal/models"
	"realartist-backend/internal/storage"
)

type UserHandler struct {
	store  storage.Storage
	logger *zap.SugaredLogger
}

func NewUserHandler(store storage.Storage, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{store: store, logger: logger}
}

// GetUser godoc
// @Summary     Current user
// @Description Returns the acting user with an access timestamp
// @Tags        user
// @Produce     json
// @Success     200 {object} models.UserResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/user [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, h.logger, err, "User not found", "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{
		User:         *user,
		LastAccessed: time.Now().UTC(),
		Status:       "active",
	})
}

// GetStats godoc
// @Summary     User stats
// @Tags        user
// @Produce     json
// @Success     200 {object} models.UserStats
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/user/stats [get]
func (h *UserHandler) GetStats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.store.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, h.logger, err, "User stats not found", "Failed to fetch user stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
