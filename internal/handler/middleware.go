package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/apikit/pkg/clientip"
)

// RequestLogger tags every request with the proxy-aware client IP and logs
// method, path, status and latency once the handler chain finishes.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	l := logger.With().Str("module", "http").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		ip := clientip.FromRequest(c.Request)

		c.Next()

		event := l.Info()
		if c.Writer.Status() >= 500 {
			event = l.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("client_ip", ip).
			Dur("took", time.Since(start)).
			Msg("request handled")
	}
}
