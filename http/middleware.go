package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

const loggerKey = "logger"

// requestLogger injects a logger carrying a request id into the gin context and logs every completed request
func requestLogger(base log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		logger := log.With(base,
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		c.Header("X-Request-ID", requestID)
		c.Set(loggerKey, logger)

		c.Next()

		level.Info(logger).Log(
			"msg", "request completed",
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

// loggerFrom returns the request-scoped logger, or a no-op logger outside the middleware
func loggerFrom(c *gin.Context) log.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if logger, ok := v.(log.Logger); ok {
			return logger
		}
	}
	return log.NewNopLogger()
}
