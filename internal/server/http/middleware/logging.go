package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggerContextKey holds the request scoped logger.
const LoggerContextKey = "requestLogger"

// RequestLogger logs information about incoming requests using slog.
// Errors attached by handlers are logged with server failures.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(LoggerContextKey, logger.With(slog.String("request_id", RequestIDFrom(c))))
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.String("request_id", RequestIDFrom(c)),
		}
		if admin := c.GetString(AdminContextKey); admin != "" {
			attrs = append(attrs, slog.String("admin", admin))
		}
		if status >= http.StatusInternalServerError {
			if len(c.Errors) > 0 {
				attrs = append(attrs, slog.String("error", c.Errors.String()))
			}
			logger.Error("http request", attrs...)
			return
		}
		logger.Info("http request", attrs...)
	}
}

// LoggerFrom returns the request scoped logger, or slog.Default outside RequestLogger.
func LoggerFrom(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(LoggerContextKey); ok {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}
