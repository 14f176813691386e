package api

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"microcat/internal/models"
	"microcat/internal/service"
)

// Categorizer runs one categorize request.
type Categorizer interface {
	Handle(ctx context.Context, body []byte) (*models.ClassificationResult, error)
}

// CategorizeHandler serves POST /categorize.
type CategorizeHandler struct {
	svc Categorizer
}

// NewCategorizeHandler creates a new categorize handler.
func NewCategorizeHandler(svc Categorizer) *CategorizeHandler {
	return &CategorizeHandler{svc: svc}
}

// Categorize classifies the posted object and returns the stored result.
// A store failure yields a bare 500 so storage details never reach the client.
func (h *CategorizeHandler) Categorize(c fiber.Ctx) error {
	result, err := h.svc.Handle(c.Context(), c.Body())
	if err != nil {
		if errors.Is(err, service.ErrMalformedRequest) {
			return jsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
		return c.Status(fiber.StatusInternalServerError).Send(nil)
	}

	return c.JSON(result)
}
