package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/grupo-salus/careflow-desk/internal/domain"
)

// ErrTicketNotFound is returned when a ticket id is not in the store.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketStore is the single source of truth for tickets. It is an ordered
// in-memory collection seeded at startup; new tickets are prepended so the
// latest creation is always index 0. Listing hands out copies, never the
// backing slice.
type TicketStore struct {
	mu      sync.RWMutex
	tickets []domain.Ticket
}

// NewTicketStore seeds a store with the given tickets, preserving order.
func NewTicketStore(seed []domain.Ticket) *TicketStore {
	tickets := make([]domain.Ticket, len(seed))
	copy(tickets, seed)
	return &TicketStore{tickets: tickets}
}

// List returns a snapshot of all tickets in store order.
func (s *TicketStore) List() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// Count returns the number of tickets held.
func (s *TicketStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tickets)
}

// NextID derives the id the next created ticket will carry, following the
// zero-padded count-at-creation sequence.
func (s *TicketStore) NextID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("CH-%03d", len(s.tickets)+1)
}

// GetByID fetches a ticket by id.
func (s *TicketStore) GetByID(id string) (domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			return s.tickets[i], nil
		}
	}
	return domain.Ticket{}, ErrTicketNotFound
}

// Prepend inserts a newly created ticket at index 0.
func (s *TicketStore) Prepend(ticket domain.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = append([]domain.Ticket{ticket}, s.tickets...)
}

// AppendMessage adds a message to the end of a ticket's thread. Only the
// message sequence is mutated; ticket metadata stays untouched.
func (s *TicketStore) AppendMessage(ticketID string, msg domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == ticketID {
			if len(s.tickets[i].Messages) == 0 {
				// Materialize the synthetic first message so the thread
				// keeps its requester entry after the append.
				s.tickets[i].Messages = s.tickets[i].Thread()
			}
			s.tickets[i].Messages = append(s.tickets[i].Messages, msg)
			return nil
		}
	}
	return ErrTicketNotFound
}
