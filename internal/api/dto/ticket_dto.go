package dto

import (
	"time"

	"github.com/grupo-salus/careflow-desk/internal/domain"
	"github.com/grupo-salus/careflow-desk/internal/engine"
)

// CreateTicketRequest is the standard creation payload.
type CreateTicketRequest struct {
	ReasonID    string              `json:"reason_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Attachments []AttachmentRequest `json:"attachments"`
}

// CreateCriticalTicketRequest is the escalated creation payload.
type CreateCriticalTicketRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Acknowledged bool                `json:"acknowledged"`
	Attachments  []AttachmentRequest `json:"attachments"`
}

// CreateMessageRequest is the chat-append payload.
type CreateMessageRequest struct {
	Body        string              `json:"body"`
	AuthorKind  string              `json:"author_kind"`
	Attachments []AttachmentRequest `json:"attachments"`
}

// AttachmentRequest describes a client-side file reference.
type AttachmentRequest struct {
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}

// TicketSummary is one row of the listing. SLA is recomputed per response.
type TicketSummary struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Priority  domain.TicketPriority `json:"priority"`
	Status    domain.TicketStatus   `json:"status"`
	Category  string                `json:"category"`
	OpenedAt  time.Time             `json:"opened_at"`
	UpdatedAt time.Time             `json:"updated_at"`
	Requester string                `json:"requester"`
	Assignee  string                `json:"assignee"`
	SLA       engine.SLAView        `json:"sla"`
}

// TicketDetailResponse provides full ticket info with its thread.
type TicketDetailResponse struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Priority       domain.TicketPriority `json:"priority"`
	Status         domain.TicketStatus   `json:"status"`
	Category       string                `json:"category"`
	OpenedAt       time.Time             `json:"opened_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	Requester      string                `json:"requester"`
	Assignee       string                `json:"assignee"`
	ResolutionTime *string               `json:"resolution_time"`
	SLA            engine.SLAView        `json:"sla"`
	Messages       []MessageResponse     `json:"messages"`
}

// MessageResponse represents a thread message.
type MessageResponse struct {
	ID          string               `json:"id"`
	Author      string               `json:"author"`
	Text        string               `json:"text"`
	Timestamp   time.Time            `json:"timestamp"`
	Kind        domain.MessageKind   `json:"kind"`
	Attachments []AttachmentResponse `json:"attachments"`
}

// AttachmentResponse metadata.
type AttachmentResponse struct {
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}

// ReasonResponse is one creation-reason catalog entry.
type ReasonResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	InformationalText string `json:"informational_text"`
	Category          string `json:"category"`
	EstimatedHours    int    `json:"estimated_hours"`
	IsProject         bool   `json:"is_project"`
}
