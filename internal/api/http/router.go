package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grupo-salus/careflow-desk/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Tickets       *handlers.TicketsHandler
	Reasons       *handlers.ReasonsHandler
	Notifications *handlers.NotificationsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	tickets := app.Group("/tickets")
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Post("/critical", cfg.Tickets.CreateCriticalTicket)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Post("/:id/messages", cfg.Tickets.AddMessage)

	app.Get("/reasons", cfg.Reasons.ListReasons)
	app.Get("/notifications/current", cfg.Notifications.Current)
}
