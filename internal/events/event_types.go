package events

import (
	"time"

	"github.com/grupo-salus/careflow-desk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated      EventType = "ticket_created"
	EventTicketMessageAdded EventType = "ticket_message_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload describes a freshly opened ticket. Critical marks the
// escalated path, which notifies every sector lead.
type TicketCreatedPayload struct {
	Title    string                `json:"title"`
	Category string                `json:"category"`
	Priority domain.TicketPriority `json:"priority"`
	Critical bool                  `json:"critical"`
}

// TicketMessageAddedPayload describes a chat append.
type TicketMessageAddedPayload struct {
	MessageID   string             `json:"message_id"`
	Kind        domain.MessageKind `json:"kind"`
	Author      string             `json:"author"`
	BodyPreview string             `json:"body_preview"`
}
