package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger assigns every request an id, logs a key=value line on
// completion and recovers from panics with a JSON 500.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf(
					"request_panic request_id=%s method=%s path=%s error=%q stack=%s",
					requestID,
					c.Request.Method,
					c.Request.URL.Path,
					fmt.Sprintf("%v", recovered),
					string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
				return
			}

			log.Printf(
				"request request_id=%s status=%d method=%s path=%s query=%s client_ip=%s user_id=%d latency=%s",
				requestID,
				c.Writer.Status(),
				c.Request.Method,
				c.Request.URL.Path,
				c.Request.URL.RawQuery,
				c.ClientIP(),
				c.GetInt64("user_id"),
				time.Since(start),
			)
		}()

		c.Next()
	}
}
