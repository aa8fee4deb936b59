package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"melodex/internal/apperr"
	"melodex/internal/auth"
)

// RequireAuth gates write endpoints behind the configured strategy
func RequireAuth(strategy auth.Strategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := strategy.Authenticate(c.Request); err != nil {
			unauthorized := apperr.Unauthorized()
			c.AbortWithStatusJSON(unauthorized.HTTPStatus(), gin.H{
				"error": unauthorized.Message,
				"code":  string(unauthorized.Code),
			})
			return
		}
		c.Next()
	}
}

// RequestLogger emits one structured log line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
