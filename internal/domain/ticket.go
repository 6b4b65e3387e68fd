package domain

import "time"

// TicketStatus enumerates lifecycle states for chamados.
type TicketStatus string

const (
	TicketStatusNew          TicketStatus = "novo"
	TicketStatusInProgress   TicketStatus = "em_andamento"
	TicketStatusAwaitingUser TicketStatus = "aguardando_retorno"
	TicketStatusCompleted    TicketStatus = "concluido"
	TicketStatusCancelled    TicketStatus = "cancelado"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusNew, TicketStatusInProgress, TicketStatusAwaitingUser,
		TicketStatusCompleted, TicketStatusCancelled:
		return true
	}
	return false
}

// TicketPriority enumerates SLA urgency.
type TicketPriority string

const (
	TicketPriorityCritical TicketPriority = "critico"
	TicketPriorityNormal   TicketPriority = "normal"
	TicketPriorityLow      TicketPriority = "baixa"
)

// Rank orders priorities for sorting; unknown values sort last.
func (p TicketPriority) Rank() int {
	switch p {
	case TicketPriorityCritical:
		return 3
	case TicketPriorityNormal:
		return 2
	case TicketPriorityLow:
		return 1
	}
	return 0
}

// SLA windows applied at creation time. The deadline is fixed once set and
// never recomputed.
const (
	SLAWindowCritical = 2 * time.Hour
	SLAWindowDefault  = 24 * time.Hour
)

// SLAWindow returns the deadline offset for a ticket of this priority.
func (p TicketPriority) SLAWindow() time.Duration {
	if p == TicketPriorityCritical {
		return SLAWindowCritical
	}
	return SLAWindowDefault
}

// Ticket is the aggregate for support requests ("chamados").
type Ticket struct {
	ID             string
	Title          string
	Description    string
	Priority       TicketPriority
	Status         TicketStatus
	Category       string
	OpenedAt       time.Time
	UpdatedAt      time.Time
	Requester      string
	Assignee       string
	ResolutionTime *string
	SLADeadline    time.Time
	Messages       []Message
}

// Thread materializes the ticket's message thread. A ticket loaded without
// messages yields a single synthetic requester entry built from its own
// description, so every thread carries at least one requester message.
func (t *Ticket) Thread() []Message {
	if len(t.Messages) > 0 {
		out := make([]Message, len(t.Messages))
		copy(out, t.Messages)
		return out
	}
	return []Message{{
		ID:        "1",
		Author:    t.Requester,
		Text:      t.Description,
		Timestamp: t.OpenedAt,
		Kind:      MessageKindRequester,
	}}
}
