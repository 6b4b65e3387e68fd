package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grupo-salus/careflow-desk/internal/api/dto"
	"github.com/grupo-salus/careflow-desk/internal/service"
)

// ReasonsHandler serves the creation-reason catalog.
type ReasonsHandler struct {
	service *service.TicketService
}

// NewReasonsHandler constructs handler.
func NewReasonsHandler(ticketService *service.TicketService) *ReasonsHandler {
	return &ReasonsHandler{service: ticketService}
}

// ListReasons GET /reasons. An empty result for a search term is a valid
// response, not an error.
func (h *ReasonsHandler) ListReasons(c *fiber.Ctx) error {
	reasons := h.service.Reasons(c.UserContext(), c.Query("search"))
	items := make([]dto.ReasonResponse, 0, len(reasons))
	for _, r := range reasons {
		items = append(items, dto.ReasonResponse{
			ID:                r.ID,
			Title:             r.Title,
			Description:       r.Description,
			InformationalText: r.InformationalText,
			Category:          r.Category,
			EstimatedHours:    r.EstimatedHours,
			IsProject:         r.IsProject,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
