package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grupo-salus/careflow-desk/internal/domain"
	"github.com/grupo-salus/careflow-desk/internal/engine"
	"github.com/grupo-salus/careflow-desk/internal/events"
	"github.com/grupo-salus/careflow-desk/internal/store"
	"github.com/grupo-salus/careflow-desk/pkg/errorutil"
)

// defaultRequester names the unit opening tickets on this desk. There is a
// single-user assumption; no login identifies the requester.
const defaultRequester = "Unidade Atual"

// defaultAgentAuthor labels chat messages posted from the agent surface.
const defaultAgentAuthor = "Usuário"

// TicketService coordinates ticket workflows over the in-memory store.
type TicketService struct {
	tickets    *store.TicketStore
	reasons    *store.ReasonCatalog
	dispatcher events.Dispatcher
	requester  string
	now        func() time.Time
}

// Dependencies bundles collaborators for the ticket service.
type Dependencies struct {
	Store      *store.TicketStore
	Reasons    *store.ReasonCatalog
	Dispatcher events.Dispatcher
	Requester  string
	Clock      func() time.Time
}

// NewTicketService constructs the service.
func NewTicketService(deps Dependencies) *TicketService {
	svc := &TicketService{
		tickets:    deps.Store,
		reasons:    deps.Reasons,
		dispatcher: deps.Dispatcher,
		requester:  deps.Requester,
		now:        deps.Clock,
	}
	if svc.requester == "" {
		svc.requester = defaultRequester
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

// List recomposes the listing for a view state: filter, sort, paginate.
func (s *TicketService) List(ctx context.Context, state engine.ViewState) engine.ListResult {
	return engine.Compose(s.tickets.List(), state, s.now())
}

// Now exposes the service clock so callers render SLA views against the same
// instant the listing was composed with.
func (s *TicketService) Now() time.Time {
	return s.now()
}

// Reasons searches the creation-reason catalog.
func (s *TicketService) Reasons(ctx context.Context, term string) []domain.CreationReason {
	return s.reasons.Search(term)
}

// GetTicket fetches a ticket and its materialized thread.
func (s *TicketService) GetTicket(ctx context.Context, id string) (domain.Ticket, []domain.Message, error) {
	ticket, err := s.tickets.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrTicketNotFound) {
			return domain.Ticket{}, nil, errorutil.NewNotFound("ticket", map[string]any{"id": id})
		}
		return domain.Ticket{}, nil, err
	}
	return ticket, ticket.Thread(), nil
}

// OpenTicketInput is the payload of the standard creation path.
type OpenTicketInput struct {
	ReasonID    string
	Title       string
	Description string
	Attachments []domain.AttachmentReference
}

// OpenTicket runs the standard two-step workflow end to end: select the
// reason, fill the form, submit. The new ticket is prepended to the store.
func (s *TicketService) OpenTicket(ctx context.Context, input OpenTicketInput) (domain.Ticket, error) {
	flow := NewCreationFlow(s.reasons)
	if err := flow.SelectReason(input.ReasonID); err != nil {
		if errors.Is(err, ErrReasonNotFound) {
			return domain.Ticket{}, errorutil.NewNotFound("creation reason", map[string]any{"reason_id": input.ReasonID})
		}
		return domain.Ticket{}, err
	}
	flow.SetTitle(input.Title)
	flow.SetDescription(input.Description)
	for _, ref := range input.Attachments {
		flow.AddAttachment(ref)
	}
	return s.submitFlow(ctx, flow)
}

// OpenCriticalTicketInput is the payload of the escalated creation path.
type OpenCriticalTicketInput struct {
	Title        string
	Description  string
	Acknowledged bool
	Attachments  []domain.AttachmentReference
}

// OpenCriticalTicket runs the escalated workflow: no reason selection, fixed
// category, mandatory acknowledgement, two-hour SLA window.
func (s *TicketService) OpenCriticalTicket(ctx context.Context, input OpenCriticalTicketInput) (domain.Ticket, error) {
	flow := NewCriticalCreationFlow()
	flow.SetTitle(input.Title)
	flow.SetDescription(input.Description)
	flow.Acknowledge(input.Acknowledged)
	for _, ref := range input.Attachments {
		flow.AddAttachment(ref)
	}
	return s.submitFlow(ctx, flow)
}

func (s *TicketService) submitFlow(ctx context.Context, flow *CreationFlow) (domain.Ticket, error) {
	draft, err := flow.Submit()
	if err != nil {
		if errors.Is(err, ErrNotSubmittable) {
			return domain.Ticket{}, errorutil.NewValidationError(
				"title and description are required; critical tickets also require the acknowledgement", nil)
		}
		return domain.Ticket{}, err
	}

	now := s.now()
	priority := domain.TicketPriorityNormal
	if draft.Critical {
		priority = domain.TicketPriorityCritical
	}

	ticket := domain.Ticket{
		ID:          s.tickets.NextID(),
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    priority,
		Status:      domain.TicketStatusNew,
		Category:    draft.Category,
		OpenedAt:    now,
		UpdatedAt:   now,
		Requester:   s.requester,
		SLADeadline: now.Add(priority.SLAWindow()),
		Messages: []domain.Message{{
			ID:          "1",
			Author:      s.requester,
			Text:        draft.Description,
			Timestamp:   now,
			Kind:        domain.MessageKindRequester,
			Attachments: draft.Attachments,
		}},
	}

	s.tickets.Prepend(ticket)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			Category: ticket.Category,
			Priority: ticket.Priority,
			Critical: draft.Critical,
		},
	})
	return ticket, nil
}

// AddMessageInput is the chat-append payload.
type AddMessageInput struct {
	Kind        domain.MessageKind
	Author      string
	Body        string
	Attachments []domain.AttachmentReference
}

// AddMessage appends a chat message to a ticket's thread. Blank bodies are
// rejected; only the message sequence of the ticket is mutated.
func (s *TicketService) AddMessage(ctx context.Context, ticketID string, input AddMessageInput) (domain.Message, error) {
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return domain.Message{}, errorutil.NewValidationError("message body is required", nil)
	}

	kind := input.Kind
	if kind == "" {
		kind = domain.MessageKindAgent
	}
	if !kind.IsValid() || kind == domain.MessageKindSystem {
		return domain.Message{}, errorutil.NewValidationError("author kind must be usuario or franqueado", nil)
	}

	ticket, err := s.tickets.GetByID(ticketID)
	if err != nil {
		if errors.Is(err, store.ErrTicketNotFound) {
			return domain.Message{}, errorutil.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return domain.Message{}, err
	}

	author := input.Author
	if author == "" {
		if kind == domain.MessageKindRequester {
			author = ticket.Requester
		} else {
			author = defaultAgentAuthor
		}
	}

	now := s.now()
	msg := domain.Message{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Author:      author,
		Text:        body,
		Timestamp:   now,
		Kind:        kind,
		Attachments: input.Attachments,
	}
	if err := s.tickets.AppendMessage(ticket.ID, msg); err != nil {
		return domain.Message{}, err
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketMessageAdded,
		TicketID: ticket.ID,
		Payload: events.TicketMessageAddedPayload{
			MessageID:   msg.ID,
			Kind:        msg.Kind,
			Author:      msg.Author,
			BodyPreview: stringPreview(msg.Text, 120),
		},
	})
	return msg, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
