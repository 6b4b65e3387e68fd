package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grupo-salus/careflow-desk/internal/config"
	"github.com/grupo-salus/careflow-desk/internal/events"
)

// NotificationType mirrors the toast variants of the desk.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// Toast texts shown after a successful creation.
const (
	toastTicketCreated         = "Chamado criado com sucesso!"
	toastCriticalTicketCreated = "Chamado crítico criado com sucesso! Todos os líderes foram notificados."
)

// Notification is one transient toast.
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
}

// NotificationCenter holds at most the latest transient notification. A TTL
// timer auto-dismisses it; pushing a newer notification cancels the pending
// timer so a superseded toast never dismisses its successor.
type NotificationCenter struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notification
	timer   *time.Timer
}

// NewNotificationCenter creates a center with the given auto-dismiss TTL.
func NewNotificationCenter(ttl time.Duration) *NotificationCenter {
	return &NotificationCenter{ttl: ttl}
}

// Push replaces the visible notification and arms its dismiss timer.
func (c *NotificationCenter) Push(message string, typ NotificationType) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.current = &n
	c.timer = time.AfterFunc(c.ttl, func() { c.dismiss(n.ID) })
	return n
}

// Current returns the visible notification, if any.
func (c *NotificationCenter) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

// Stop cancels any pending dismiss timer, for teardown.
func (c *NotificationCenter) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current = nil
}

func (c *NotificationCenter) dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil && c.current.ID == id {
		c.current = nil
	}
}

// NotificationService turns domain events into transient notifications.
type NotificationService struct {
	dispatcher events.Dispatcher
	center     *NotificationCenter
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		center:     NewNotificationCenter(cfg.ToastTTL()),
		logger:     logger,
	}
}

// Center exposes the notification center for the read surface.
func (n *NotificationService) Center() *NotificationCenter {
	return n.center
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketMessageAdded, n.handleTicketMessageAdded)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketCreated", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))

	message := toastTicketCreated
	if payload, ok := event.Payload.(events.TicketCreatedPayload); ok && payload.Critical {
		message = toastCriticalTicketCreated
	}
	n.center.Push(message, NotificationSuccess)
	return nil
}

func (n *NotificationService) handleTicketMessageAdded(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketMessageAdded", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	return nil
}
