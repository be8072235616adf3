package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// HealthHandler reports process liveness.
type HealthHandler struct {
	started time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now()}
}

// Live returns a liveness probe response.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"uptime": time.Since(h.started).String(),
	})
}
