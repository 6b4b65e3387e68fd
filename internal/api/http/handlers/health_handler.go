package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grupo-salus/careflow-desk/internal/store"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	tickets     *store.TicketStore
	reasons     *store.ReasonCatalog
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, tickets *store.TicketStore, reasons *store.ReasonCatalog) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, tickets: tickets, reasons: reasons}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness: both seed datasets must have loaded.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	depStatus := fiber.Map{
		"ticket_store":   h.tickets.Count(),
		"reason_catalog": h.reasons.Len(),
	}

	if h.tickets.Count() == 0 || h.reasons.Len() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "seed data not loaded",
				"details": depStatus,
			},
		})
	}

	return c.JSON(fiber.Map{
		"status":       "ready",
		"dependencies": depStatus,
	})
}
