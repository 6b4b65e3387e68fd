package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grupo-salus/careflow-desk/internal/service"
)

// NotificationsHandler exposes the transient notification center.
type NotificationsHandler struct {
	center *service.NotificationCenter
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(center *service.NotificationCenter) *NotificationsHandler {
	return &NotificationsHandler{center: center}
}

// Current GET /notifications/current. Returns the live toast or a null body
// once it has auto-dismissed.
func (h *NotificationsHandler) Current(c *fiber.Ctx) error {
	if notification, ok := h.center.Current(); ok {
		return c.JSON(fiber.Map{"data": notification})
	}
	return c.JSON(fiber.Map{"data": nil})
}
