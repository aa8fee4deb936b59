package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"melodex/internal/cache"
	"melodex/internal/models"
)

// HealthHandler reports process and dependency liveness
type HealthHandler struct {
	db    *models.Database
	cache cache.Cache // nil when caching is disabled
}

// NewHealthHandler creates a health handler
func NewHealthHandler(db *models.Database, c cache.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	body := gin.H{"status": "ok"}

	if err := h.db.Health(ctx); err != nil {
		status = http.StatusServiceUnavailable
		body["status"] = "degraded"
		body["database"] = err.Error()
	} else {
		body["database"] = "ok"
	}

	if h.cache != nil {
		if err := h.cache.Health(ctx); err != nil {
			body["cache"] = err.Error()
		} else {
			body["cache"] = "ok"
		}
	}

	c.JSON(status, body)
}
