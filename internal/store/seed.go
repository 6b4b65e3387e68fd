package store

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/grupo-salus/careflow-desk/internal/domain"
)

//go:embed data/tickets.json data/reasons.json
var seedFS embed.FS

var validate = validator.New()

// ticketSeed is the wire shape of a seeded ticket record. The schema check
// runs at load time so malformed seed data fails fast instead of surfacing
// as odd listing behavior later.
type ticketSeed struct {
	ID             string        `json:"id" validate:"required"`
	Title          string        `json:"title" validate:"required"`
	Description    string        `json:"description" validate:"required"`
	Priority       string        `json:"priority" validate:"required,oneof=critico normal baixa"`
	Status         string        `json:"status" validate:"required,oneof=novo em_andamento aguardando_retorno concluido cancelado"`
	Category       string        `json:"category" validate:"required"`
	OpenedAt       time.Time     `json:"opened_at" validate:"required"`
	UpdatedAt      time.Time     `json:"updated_at" validate:"required"`
	Requester      string        `json:"requester" validate:"required"`
	Assignee       string        `json:"assignee"`
	ResolutionTime *string       `json:"resolution_time"`
	SLADeadline    time.Time     `json:"sla_deadline" validate:"required"`
	Messages       []messageSeed `json:"messages" validate:"omitempty,dive"`
}

type messageSeed struct {
	ID        string    `json:"id" validate:"required"`
	Author    string    `json:"author" validate:"required"`
	Text      string    `json:"text" validate:"required"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Kind      string    `json:"kind" validate:"required,oneof=sistema usuario franqueado"`
}

type reasonSeed struct {
	ID                string `json:"id" validate:"required"`
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description" validate:"required"`
	InformationalText string `json:"informational_text" validate:"required"`
	Category          string `json:"category" validate:"required"`
	EstimatedHours    int    `json:"estimated_hours" validate:"required,min=1"`
	IsProject         bool   `json:"is_project"`
}

// LoadTickets reads the ticket seed, from path when set or from the embedded
// dataset otherwise, validating every record.
func LoadTickets(path string) ([]domain.Ticket, error) {
	raw, err := readSeed(path, "data/tickets.json")
	if err != nil {
		return nil, err
	}

	var seeds []ticketSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("parse ticket seed: %w", err)
	}

	tickets := make([]domain.Ticket, 0, len(seeds))
	for i, s := range seeds {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("ticket seed record %d (%s): %w", i, s.ID, err)
		}
		messages := make([]domain.Message, 0, len(s.Messages))
		for _, m := range s.Messages {
			messages = append(messages, domain.Message{
				ID:        m.ID,
				Author:    m.Author,
				Text:      m.Text,
				Timestamp: m.Timestamp,
				Kind:      domain.MessageKind(m.Kind),
			})
		}
		tickets = append(tickets, domain.Ticket{
			ID:             s.ID,
			Title:          s.Title,
			Description:    s.Description,
			Priority:       domain.TicketPriority(s.Priority),
			Status:         domain.TicketStatus(s.Status),
			Category:       s.Category,
			OpenedAt:       s.OpenedAt,
			UpdatedAt:      s.UpdatedAt,
			Requester:      s.Requester,
			Assignee:       s.Assignee,
			ResolutionTime: s.ResolutionTime,
			SLADeadline:    s.SLADeadline,
			Messages:       messages,
		})
	}
	return tickets, nil
}

// LoadReasons reads the creation-reason catalog seed.
func LoadReasons(path string) ([]domain.CreationReason, error) {
	raw, err := readSeed(path, "data/reasons.json")
	if err != nil {
		return nil, err
	}

	var seeds []reasonSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("parse reason seed: %w", err)
	}

	reasons := make([]domain.CreationReason, 0, len(seeds))
	for i, s := range seeds {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("reason seed record %d (%s): %w", i, s.ID, err)
		}
		reasons = append(reasons, domain.CreationReason{
			ID:                s.ID,
			Title:             s.Title,
			Description:       s.Description,
			InformationalText: s.InformationalText,
			Category:          s.Category,
			EstimatedHours:    s.EstimatedHours,
			IsProject:         s.IsProject,
		})
	}
	return reasons, nil
}

func readSeed(path, embedded string) ([]byte, error) {
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file %s: %w", path, err)
		}
		return raw, nil
	}
	raw, err := seedFS.ReadFile(embedded)
	if err != nil {
		return nil, fmt.Errorf("read embedded seed %s: %w", embedded, err)
	}
	return raw, nil
}
