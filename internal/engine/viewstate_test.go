package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-salus/careflow-desk/internal/domain"
)

func TestViewStateResetsPageOnFacetChange(t *testing.T) {
	tests := []struct {
		name   string
		change func(*ViewState)
	}{
		{"category", func(v *ViewState) { v.SetCategory(FilterCritical) }},
		{"status", func(v *ViewState) { v.SetStatus(string(domain.TicketStatusNew)) }},
		{"search", func(v *ViewState) { v.SetSearch("impressora") }},
		{"sort", func(v *ViewState) { v.SetSort(SortTitleAZ) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewViewState()
			state.SetPage(3, 5)
			require.Equal(t, 3, state.Page)

			tt.change(&state)
			assert.Equal(t, 1, state.Page)
		})
	}
}

func TestViewStateSetPageBounds(t *testing.T) {
	state := NewViewState()

	state.SetPage(0, 5)
	assert.Equal(t, 1, state.Page)

	state.SetPage(6, 5)
	assert.Equal(t, 1, state.Page)

	state.SetPage(5, 5)
	assert.Equal(t, 5, state.Page)
}

func TestCompose(t *testing.T) {
	now := time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC)
	tickets := make([]domain.Ticket, 0, 25)
	for i := 0; i < 25; i++ {
		tickets = append(tickets, domain.Ticket{
			ID:          fmt.Sprintf("CH-%03d", i+1),
			Title:       "Chamado de teste",
			Priority:    domain.TicketPriorityNormal,
			Status:      domain.TicketStatusNew,
			UpdatedAt:   now.Add(time.Duration(i) * time.Minute),
			SLADeadline: now.Add(24 * time.Hour),
		})
	}

	state := NewViewState()
	state.SetCategory(string(domain.TicketStatusNew))
	state.SetPage(3, 3)

	result := Compose(tickets, state, now)

	assert.Equal(t, 25, result.Page.TotalItems)
	assert.Equal(t, 3, result.Page.TotalPages)
	require.Len(t, result.Tickets, 5)
	// Default sort is updated_desc, so the last page carries the oldest.
	assert.Equal(t, "CH-005", result.Tickets[0].ID)
	assert.Equal(t, "CH-001", result.Tickets[4].ID)
}
