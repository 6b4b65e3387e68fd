package engine

import (
	"strings"
	"time"

	"github.com/grupo-salus/careflow-desk/internal/domain"
)

// Category filter values accepted by the listing surface. Concrete status
// values double as category filters.
const (
	FilterAll      = "todos"
	FilterCritical = "critico"
	FilterOverdue  = "atrasado"
)

// Filter narrows tickets by category filter, status filter and free-text
// search. The category rules are mutually exclusive and evaluated in
// priority order (first match wins, never cumulative):
//
//  1. critico  -> priority is critical
//  2. atrasado -> SLA deadline already passed
//  3. any concrete status value -> status match
//  4. todos    -> fall back to the status filter, same single-rule semantics
//
// The search term is applied after the category/status stage, as a trimmed
// case-insensitive substring over ticket id and title. An empty result is a
// valid output, not an error.
func Filter(tickets []domain.Ticket, category, status, search string, now time.Time) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if matchesCategory(&t, category, status, now) {
			out = append(out, t)
		}
	}

	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return out
	}
	matched := out[:0]
	for _, t := range out {
		if strings.Contains(strings.ToLower(t.ID), term) ||
			strings.Contains(strings.ToLower(t.Title), term) {
			matched = append(matched, t)
		}
	}
	return matched
}

func matchesCategory(t *domain.Ticket, category, status string, now time.Time) bool {
	switch {
	case category == FilterCritical:
		return t.Priority == domain.TicketPriorityCritical
	case category == FilterOverdue:
		return now.After(t.SLADeadline)
	case category != "" && category != FilterAll:
		return t.Status == domain.TicketStatus(category)
	case status != "" && status != FilterAll:
		return t.Status == domain.TicketStatus(status)
	}
	return true
}
