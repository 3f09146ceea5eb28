package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/dto"
)

// PingFunc checks one dependency.
type PingFunc func(ctx context.Context) error

// HealthHandler GET /health. Redis is optional: a nil redis ping reports
// "disabled" and never fails the check.
type HealthHandler struct {
	db    PingFunc
	redis PingFunc
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db, redis PingFunc) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// Health reports 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "ok", Redis: "disabled"}
	status := http.StatusOK

	if err := h.db(ctx); err != nil {
		resp.Status, resp.Database = "unavailable", "down"
		status = http.StatusServiceUnavailable
	}
	if h.redis != nil {
		resp.Redis = "ok"
		if err := h.redis(ctx); err != nil {
			resp.Redis = "down"
		}
	}

	c.JSON(status, resp)
}
