package middelware

import (
	"time"
	"volunteerhub-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware provides request logging
type LoggingMiddleware struct {
	logger logger.Logger
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(log logger.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: log,
	}
}

// RequestLogger logs every request with method, path, status and latency.
// Severity follows the response status code.
func (m *LoggingMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := map[string]interface{}{
			"method":  c.Request.Method,
			"path":    path,
			"query":   raw,
			"status":  c.Writer.Status(),
			"latency": latency.String(),
			"ip":      c.ClientIP(),
		}

		if orgID, ok := c.Get("organization_id"); ok {
			fields["organization_id"] = orgID
		}

		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		log := m.logger.WithFields(fields)
		switch {
		case c.Writer.Status() >= 500:
			log.Error("request failed")
		case c.Writer.Status() >= 400:
			log.Warn("request rejected")
		default:
			log.Info("request completed")
		}
	}
}

// Recovery converts panics into a 500 response and logs them
func (m *LoggingMiddleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		m.logger.Errorf("Panic recovered: %v", recovered)

		c.JSON(500, gin.H{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
		})
	})
}
