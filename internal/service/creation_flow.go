package service

import (
	"errors"
	"strings"

	"github.com/grupo-salus/careflow-desk/internal/domain"
	"github.com/grupo-salus/careflow-desk/internal/store"
)

// FlowState enumerates the states of the ticket-opening workflow.
type FlowState string

const (
	FlowSelectingReason FlowState = "selecting_reason"
	FlowFillingForm     FlowState = "filling_form"
	FlowSubmitted       FlowState = "submitted"
	FlowCancelled       FlowState = "cancelled"
)

// CriticalCategory is the fixed category of the escalated path, which skips
// reason selection entirely.
const CriticalCategory = "Crítico"

var (
	// ErrFlowClosed is returned by mutations on a submitted or cancelled flow.
	ErrFlowClosed = errors.New("creation flow already closed")
	// ErrNoReasonSelected is returned when the form is reached without a reason.
	ErrNoReasonSelected = errors.New("no creation reason selected")
	// ErrReasonNotFound is returned for an unknown reason id.
	ErrReasonNotFound = errors.New("creation reason not found")
	// ErrNotSubmittable mirrors a disabled submit control: required fields are
	// blank or the critical acknowledgement is missing.
	ErrNotSubmittable = errors.New("form not ready for submission")
)

// CreationFlow is the two-step ticket-opening state machine:
// SelectingReason -> FillingForm -> Submitted | Cancelled. The critical
// variant starts directly at FillingForm and demands an explicit
// acknowledgement before submit. Cancelling at any point discards all
// entered data without touching the store.
type CreationFlow struct {
	state        FlowState
	critical     bool
	catalog      *store.ReasonCatalog
	reason       *domain.CreationReason
	title        string
	description  string
	attachments  []domain.AttachmentReference
	acknowledged bool
}

// NewCreationFlow starts the standard two-step flow over a reason catalog.
func NewCreationFlow(catalog *store.ReasonCatalog) *CreationFlow {
	return &CreationFlow{state: FlowSelectingReason, catalog: catalog}
}

// NewCriticalCreationFlow starts the escalated flow.
func NewCriticalCreationFlow() *CreationFlow {
	return &CreationFlow{state: FlowFillingForm, critical: true}
}

// State returns the current flow state.
func (f *CreationFlow) State() FlowState {
	return f.state
}

// Critical reports whether this is the escalated path.
func (f *CreationFlow) Critical() bool {
	return f.critical
}

// SearchReasons filters the catalog while the user is picking a reason.
func (f *CreationFlow) SearchReasons(term string) []domain.CreationReason {
	if f.state != FlowSelectingReason || f.catalog == nil {
		return nil
	}
	return f.catalog.Search(term)
}

// SelectReason picks a reason and advances to the form step.
func (f *CreationFlow) SelectReason(id string) error {
	if f.state == FlowSubmitted || f.state == FlowCancelled {
		return ErrFlowClosed
	}
	if f.state != FlowSelectingReason {
		return ErrNoReasonSelected
	}
	reason, ok := f.catalog.GetByID(id)
	if !ok {
		return ErrReasonNotFound
	}
	f.reason = &reason
	f.state = FlowFillingForm
	return nil
}

// Back returns from the form to reason selection, clearing the entered title
// and description. Not available on the critical path, which has no first
// step to go back to.
func (f *CreationFlow) Back() {
	if f.state != FlowFillingForm || f.critical {
		return
	}
	f.title = ""
	f.description = ""
	f.state = FlowSelectingReason
}

// SetTitle records the ticket title.
func (f *CreationFlow) SetTitle(title string) {
	if f.state == FlowFillingForm {
		f.title = title
	}
}

// SetDescription records the ticket description.
func (f *CreationFlow) SetDescription(description string) {
	if f.state == FlowFillingForm {
		f.description = description
	}
}

// AddAttachment records a client-side file reference.
func (f *CreationFlow) AddAttachment(ref domain.AttachmentReference) {
	if f.state == FlowFillingForm {
		f.attachments = append(f.attachments, ref)
	}
}

// Acknowledge toggles the critical-path acknowledgement checkbox.
func (f *CreationFlow) Acknowledge(checked bool) {
	if f.state == FlowFillingForm {
		f.acknowledged = checked
	}
}

// InformationalText exposes the guidance text of the selected reason.
func (f *CreationFlow) InformationalText() string {
	if f.reason == nil {
		return ""
	}
	return f.reason.InformationalText
}

// CanSubmit reports whether the submit control would be enabled: trimmed
// title and description non-blank, and on the critical path the
// acknowledgement checked.
func (f *CreationFlow) CanSubmit() bool {
	if f.state != FlowFillingForm {
		return false
	}
	if strings.TrimSpace(f.title) == "" || strings.TrimSpace(f.description) == "" {
		return false
	}
	if f.critical && !f.acknowledged {
		return false
	}
	return true
}

// TicketDraft is the outcome of a submitted flow, ready to become a ticket.
type TicketDraft struct {
	Title       string
	Description string
	Category    string
	Critical    bool
	Attachments []domain.AttachmentReference
}

// Submit closes the flow and hands back the draft. While the form is
// incomplete the call is rejected and the flow stays open, mirroring a
// disabled submit button.
func (f *CreationFlow) Submit() (TicketDraft, error) {
	if f.state == FlowSubmitted || f.state == FlowCancelled {
		return TicketDraft{}, ErrFlowClosed
	}
	if !f.CanSubmit() {
		return TicketDraft{}, ErrNotSubmittable
	}

	draft := TicketDraft{
		Title:       strings.TrimSpace(f.title),
		Description: strings.TrimSpace(f.description),
		Critical:    f.critical,
		Attachments: f.attachments,
	}
	if f.critical {
		draft.Category = CriticalCategory
	} else {
		if f.reason == nil {
			return TicketDraft{}, ErrNoReasonSelected
		}
		draft.Category = f.reason.Category
	}
	f.state = FlowSubmitted
	return draft, nil
}

// Cancel discards all entered data and closes the flow.
func (f *CreationFlow) Cancel() {
	if f.state == FlowSubmitted || f.state == FlowCancelled {
		return
	}
	f.reason = nil
	f.title = ""
	f.description = ""
	f.attachments = nil
	f.acknowledged = false
	f.state = FlowCancelled
}
