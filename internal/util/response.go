package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postboard/backend/internal/logger"
	"github.com/postboard/backend/internal/metrics"
	"go.uber.org/zap"
)

// RespondError sends `{"error": <text>}` with the given status.
func RespondError(c *gin.Context, status int, message string) {
	if status >= http.StatusInternalServerError {
		logger.Log.Error("API error",
			zap.Int("status", status),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	} else {
		logger.Log.Warn("API error",
			zap.Int("status", status),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}
	c.JSON(status, gin.H{"error": message})
}

// RespondMessage sends `{"message": <text>}` with the given status. The
// login endpoint reports its failures under this key.
func RespondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// RespondMethodNotAllowed sends the plain-text 405 used by the toggle
// endpoints.
func RespondMethodNotAllowed(c *gin.Context) {
	c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
}

// RespondInternalError sends a generic 500 and logs the cause.
func RespondInternalError(c *gin.Context, err error) {
	metrics.Get().ErrorsTotal.WithLabelValues("http").Inc()
	logger.Log.Error("internal error",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
