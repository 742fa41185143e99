package middleware

import (
	"time"

	"taskledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger stamps a request id into the context logger and logs one
// line per completed request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx := logger.WithRequestID(c.Request.Context(), uuid.New().String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		logger.Debug(ctx, "Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
