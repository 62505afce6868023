package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextKeyRequestID = "request_id"

// RequestID tags every request with an X-Request-ID so label imports and
// export jobs can be traced across log lines. An ID supplied by the caller is
// kept, otherwise a fresh one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(contextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger writes one line per request after the handler chain completes. The
// route pattern is logged instead of the raw path so project and group UUIDs
// do not fragment the log. Authenticated requests also carry the user ID set
// by AuthMiddleware.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		requestID := c.GetString(contextKeyRequestID)
		userID := "-"
		if val, ok := c.Get(ContextKeyUserID); ok {
			if id, ok := val.(uuid.UUID); ok {
				userID = id.String()
			}
		}

		log.Printf("request_id=%s user=%s method=%s route=%s status=%d latency=%s",
			requestID,
			userID,
			c.Request.Method,
			route,
			c.Writer.Status(),
			latency,
		)
	}
}

// Recovery converts handler panics into a 500 response instead of dropping
// the connection.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
