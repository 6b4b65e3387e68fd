package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/grupo-salus/careflow-desk/internal/api/dto"
	"github.com/grupo-salus/careflow-desk/internal/domain"
	"github.com/grupo-salus/careflow-desk/internal/engine"
	"github.com/grupo-salus/careflow-desk/internal/service"
	"github.com/grupo-salus/careflow-desk/pkg/errorutil"
)

// TicketsHandler manages the ticket endpoints.
type TicketsHandler struct {
	service  *service.TicketService
	pageSize int
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService, defaultPageSize int) *TicketsHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = engine.DefaultPageSize
	}
	return &TicketsHandler{service: ticketService, pageSize: defaultPageSize}
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	state := h.parseViewState(c)
	result := h.service.List(c.UserContext(), state)
	now := h.service.Now()

	items := make([]dto.TicketSummary, 0, len(result.Tickets))
	for i := range result.Tickets {
		items = append(items, ticketSummary(&result.Tickets[i], now))
	}
	return c.JSON(fiber.Map{"data": items, "meta": result.Page})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, thread, err := h.service.GetTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(&ticket, thread, h.service.Now())})
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if req.ReasonID == "" {
		return errorutil.NewValidationError("reason_id required", nil)
	}

	ticket, err := h.service.OpenTicket(c.UserContext(), service.OpenTicketInput{
		ReasonID:    req.ReasonID,
		Title:       req.Title,
		Description: req.Description,
		Attachments: attachmentRefs(req.Attachments),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketSummary(&ticket, h.service.Now())})
}

// CreateCriticalTicket POST /tickets/critical.
func (h *TicketsHandler) CreateCriticalTicket(c *fiber.Ctx) error {
	var req dto.CreateCriticalTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.OpenCriticalTicket(c.UserContext(), service.OpenCriticalTicketInput{
		Title:        req.Title,
		Description:  req.Description,
		Acknowledged: req.Acknowledged,
		Attachments:  attachmentRefs(req.Attachments),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketSummary(&ticket, h.service.Now())})
}

// AddMessage POST /tickets/:id/messages.
func (h *TicketsHandler) AddMessage(c *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	msg, err := h.service.AddMessage(c.UserContext(), c.Params("id"), service.AddMessageInput{
		Kind:        domain.MessageKind(req.AuthorKind),
		Body:        req.Body,
		Attachments: attachmentRefs(req.Attachments),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": messageResponse(&msg)})
}

func (h *TicketsHandler) parseViewState(c *fiber.Ctx) engine.ViewState {
	state := engine.NewViewState()
	state.PageSize = h.pageSize

	if category := c.Query("category"); category != "" {
		state.Category = category
	}
	if status := c.Query("status"); status != "" {
		state.Status = status
	}
	state.Search = c.Query("search")
	if sortKey := c.Query("sort"); sortKey != "" {
		state.Sort = engine.SortKey(sortKey)
	}
	state.Page = parseInt(c.Query("page"), 1)
	state.PageSize = parseInt(c.Query("page_size"), state.PageSize)
	state.Mobile = c.QueryBool("mobile")
	return state
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func ticketSummary(ticket *domain.Ticket, now time.Time) dto.TicketSummary {
	return dto.TicketSummary{
		ID:        ticket.ID,
		Title:     ticket.Title,
		Priority:  ticket.Priority,
		Status:    ticket.Status,
		Category:  ticket.Category,
		OpenedAt:  ticket.OpenedAt,
		UpdatedAt: ticket.UpdatedAt,
		Requester: ticket.Requester,
		Assignee:  ticket.Assignee,
		SLA:       engine.ComputeSLA(ticket.SLADeadline, now),
	}
}

func ticketDetail(ticket *domain.Ticket, thread []domain.Message, now time.Time) dto.TicketDetailResponse {
	msgs := make([]dto.MessageResponse, 0, len(thread))
	for i := range thread {
		msgs = append(msgs, messageResponse(&thread[i]))
	}
	return dto.TicketDetailResponse{
		ID:             ticket.ID,
		Title:          ticket.Title,
		Description:    ticket.Description,
		Priority:       ticket.Priority,
		Status:         ticket.Status,
		Category:       ticket.Category,
		OpenedAt:       ticket.OpenedAt,
		UpdatedAt:      ticket.UpdatedAt,
		Requester:      ticket.Requester,
		Assignee:       ticket.Assignee,
		ResolutionTime: ticket.ResolutionTime,
		SLA:            engine.ComputeSLA(ticket.SLADeadline, now),
		Messages:       msgs,
	}
}

func messageResponse(msg *domain.Message) dto.MessageResponse {
	attachments := make([]dto.AttachmentResponse, 0, len(msg.Attachments))
	for _, att := range msg.Attachments {
		attachments = append(attachments, dto.AttachmentResponse{
			FileName:  att.FileName,
			MimeType:  att.MimeType,
			SizeBytes: att.SizeBytes,
		})
	}
	return dto.MessageResponse{
		ID:          msg.ID,
		Author:      msg.Author,
		Text:        msg.Text,
		Timestamp:   msg.Timestamp,
		Kind:        msg.Kind,
		Attachments: attachments,
	}
}

func attachmentRefs(reqs []dto.AttachmentRequest) []domain.AttachmentReference {
	if len(reqs) == 0 {
		return nil
	}
	refs := make([]domain.AttachmentReference, 0, len(reqs))
	for _, att := range reqs {
		refs = append(refs, domain.AttachmentReference{
			FileName:  att.FileName,
			MimeType:  att.MimeType,
			SizeBytes: att.SizeBytes,
		})
	}
	return refs
}
