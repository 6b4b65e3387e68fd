package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadSynthesizesRequesterMessage(t *testing.T) {
	opened := time.Date(2025, 8, 18, 9, 0, 0, 0, time.UTC)
	ticket := Ticket{
		ID:          "CH-001",
		Description: "A impressora parou de imprimir.",
		Requester:   "Unidade Pinheiros",
		OpenedAt:    opened,
	}

	thread := ticket.Thread()

	require.Len(t, thread, 1)
	assert.Equal(t, "1", thread[0].ID)
	assert.Equal(t, "Unidade Pinheiros", thread[0].Author)
	assert.Equal(t, ticket.Description, thread[0].Text)
	assert.Equal(t, opened, thread[0].Timestamp)
	assert.Equal(t, MessageKindRequester, thread[0].Kind)
}

func TestThreadReturnsCopyOfLoadedMessages(t *testing.T) {
	ticket := Ticket{
		Messages: []Message{
			{ID: "1", Kind: MessageKindRequester, Text: "original"},
			{ID: "2", Kind: MessageKindAgent, Text: "resposta"},
		},
	}

	thread := ticket.Thread()
	require.Len(t, thread, 2)

	thread[0].Text = "mutado"
	assert.Equal(t, "original", ticket.Messages[0].Text)
}

func TestPriorityRankAndWindow(t *testing.T) {
	assert.Equal(t, 3, TicketPriorityCritical.Rank())
	assert.Equal(t, 2, TicketPriorityNormal.Rank())
	assert.Equal(t, 1, TicketPriorityLow.Rank())
	assert.Equal(t, 0, TicketPriority("urgente").Rank())

	assert.Equal(t, 2*time.Hour, TicketPriorityCritical.SLAWindow())
	assert.Equal(t, 24*time.Hour, TicketPriorityNormal.SLAWindow())
	assert.Equal(t, 24*time.Hour, TicketPriorityLow.SLAWindow())
}
