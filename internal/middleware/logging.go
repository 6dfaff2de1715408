package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"realartist-backend/internal/models"
)

const errorMessageKey = "error_message"

// SetErrorMessage records the message of an error response for RequestLogger.
func SetErrorMessage(c *gin.Context, message string) {
	c.Set(errorMessageKey, message)
}

// RequestLogger logs one line per request. Failed /api responses are logged at warn with the
// message the handler returned.
func RequestLogger(lg *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
		}

		if strings.HasPrefix(path, "/api") && status >= http.StatusBadRequest {
			if msg := c.GetString(errorMessageKey); msg != "" {
				fields = append(fields, "error", msg)
			}
			lg.Warnw("api request failed", fields...)
			return
		}
		lg.Infow("request", fields...)
	}
}

// Recovery turns a panic into the 500 error envelope.
func Recovery(lg *zap.SugaredLogger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		lg.Errorw("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
			"ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		)
		SetErrorMessage(c, "Internal Server Error")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			models.NewErrorResponse(http.StatusInternalServerError, "Internal Server Error"))
	})
}
