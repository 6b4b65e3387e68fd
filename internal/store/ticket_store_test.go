package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-salus/careflow-desk/internal/domain"
)

func storeFixture() *TicketStore {
	opened := time.Date(2025, 8, 18, 9, 0, 0, 0, time.UTC)
	return NewTicketStore([]domain.Ticket{
		{
			ID: "CH-001", Title: "Sistema fora do ar", Description: "Nada carrega.",
			Requester: "Unidade Moema", OpenedAt: opened, UpdatedAt: opened,
		},
		{
			ID: "CH-002", Title: "Impressora parada", Description: "Sem guias.",
			Requester: "Unidade Pinheiros", OpenedAt: opened, UpdatedAt: opened,
			Messages: []domain.Message{
				{ID: "1", Author: "Unidade Pinheiros", Text: "Sem guias.", Timestamp: opened, Kind: domain.MessageKindRequester},
			},
		},
	})
}

func TestTicketStoreListSnapshot(t *testing.T) {
	s := storeFixture()

	snapshot := s.List()
	require.Len(t, snapshot, 2)

	snapshot[0].Title = "alterado"
	fresh, err := s.GetByID("CH-001")
	require.NoError(t, err)
	assert.Equal(t, "Sistema fora do ar", fresh.Title)
}

func TestTicketStoreNextID(t *testing.T) {
	s := storeFixture()
	assert.Equal(t, "CH-003", s.NextID())

	s.Prepend(domain.Ticket{ID: s.NextID()})
	assert.Equal(t, "CH-004", s.NextID())
}

func TestTicketStorePrependBecomesFirst(t *testing.T) {
	s := storeFixture()

	s.Prepend(domain.Ticket{ID: "CH-003", Title: "Novo chamado"})

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "CH-003", list[0].ID)
	assert.Equal(t, "CH-001", list[1].ID)
}

func TestTicketStoreGetByIDNotFound(t *testing.T) {
	s := storeFixture()
	_, err := s.GetByID("CH-999")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestTicketStoreAppendMessage(t *testing.T) {
	s := storeFixture()
	now := time.Date(2025, 8, 18, 10, 30, 0, 0, time.UTC)

	t.Run("appends to an existing thread", func(t *testing.T) {
		err := s.AppendMessage("CH-002", domain.Message{ID: "2", Author: "Usuário", Text: "Verificando.", Timestamp: now, Kind: domain.MessageKindAgent})
		require.NoError(t, err)

		ticket, err := s.GetByID("CH-002")
		require.NoError(t, err)
		require.Len(t, ticket.Messages, 2)
		assert.Equal(t, "Verificando.", ticket.Messages[1].Text)
	})

	t.Run("materializes the synthetic first message", func(t *testing.T) {
		err := s.AppendMessage("CH-001", domain.Message{ID: "2", Author: "Usuário", Text: "Olhando agora.", Timestamp: now, Kind: domain.MessageKindAgent})
		require.NoError(t, err)

		ticket, err := s.GetByID("CH-001")
		require.NoError(t, err)
		require.Len(t, ticket.Messages, 2)
		assert.Equal(t, domain.MessageKindRequester, ticket.Messages[0].Kind)
		assert.Equal(t, "Nada carrega.", ticket.Messages[0].Text)
	})

	t.Run("unknown ticket errors", func(t *testing.T) {
		err := s.AppendMessage("CH-999", domain.Message{ID: "3"})
		assert.ErrorIs(t, err, ErrTicketNotFound)
	})
}
