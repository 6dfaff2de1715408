package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"realartist-backend/internal/middleware"
	"realartist-backend/internal/models"
	"realartist-backend/internal/storage"
)

func respondError(c *gin.Context, status int, message string, fieldErrors ...models.FieldError) {
	middleware.SetErrorMessage(c, message)
	c.AbortWithStatusJSON(status, models.NewErrorResponse(status, message, fieldErrors...))
}

// respondStoreError maps storage.ErrNotFound to 404 and anything else to a logged 500.
func respondStoreError(c *gin.Context, lg *zap.SugaredLogger, err error, notFoundMessage, failMessage string) {
	if errors.Is(err, storage.ErrNotFound) {
		respondError(c, http.StatusNotFound, notFoundMessage)
		return
	}
	respondInternal(c, lg, err, failMessage)
}

func respondInternal(c *gin.Context, lg *zap.SugaredLogger, err error, message string) {
	lg.Errorw(message,
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	respondError(c, http.StatusInternalServerError, message)
}

// currentUser reads the id set by middleware.Identity. It writes a 401 when absent.
func currentUser(c *gin.Context) (int64, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "user id not found")
		return 0, false
	}
	return userID, true
}

// pathID parses a positive integer path parameter. It writes a 400 when malformed.
func pathID(c *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid "+label+" id",
			models.FieldError{Field: name, Message: "must be a positive integer"})
		return 0, false
	}
	return id, true
}
