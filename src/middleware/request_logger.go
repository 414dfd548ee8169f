package middleware

import (
	"strconv"
	"time"

	"sos-api/pkg/logger"
	"sos-api/src/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger tags every request with an id, logs its outcome and counts it.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestId := c.GetHeader("X-Request-Id")
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Header("X-Request-Id", requestId)

		requestLogger := logger.Default().WithField("request_id", requestId)
		c.Request = c.Request.WithContext(requestLogger.IntoContext(c.Request.Context()))

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HttpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		logger.FromContext(c.Request.Context()).Debugf("%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, status, time.Since(start))
	}
}
