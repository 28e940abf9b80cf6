package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goliatone/go-content-site/internal/logging"
	"github.com/goliatone/go-content-site/pkg/interfaces"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// requestID tags the request context with an id so every module logger
// picks it up through logging.FromContext.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		ctx := logging.ContextWithFields(c.Request.Context(), map[string]any{"request_id": id})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func accessLog(logger interfaces.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = logging.NoOp()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.WithRequestContext(logging.FromContext(c.Request.Context(), logger), c.FullPath(), c.Request.Method, c.Writer.Status()).
			Info("request handled", "path", c.Request.URL.Path, "duration", time.Since(start))
	}
}
