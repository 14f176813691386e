package api

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"microcat/internal/models"
)

// Pinger checks store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles health probe endpoints.
type ProbeHandler struct {
	store Pinger
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(store Pinger) *ProbeHandler {
	return &ProbeHandler{store: store}
}

// Liveness handles /healthz. Returns 200 OK if the process is serving.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(models.HealthResponse{Status: "ok"})
}

// Readiness handles /readyz. Returns 200 OK if the store is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.store.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.HealthResponse{
			Status: "error",
			Error:  "store unavailable",
		})
	}

	return c.JSON(models.HealthResponse{Status: "ok"})
}
