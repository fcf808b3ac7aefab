package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unibot/internal/domain/ticket"
	vo "unibot/internal/domain/ticket/valueobjects"
	"unibot/internal/domain/user"
	"unibot/internal/shared/errors"
)

func TestGetTicket_OwnerSeesPublicThreadOnly(t *testing.T) {
	tk := reconstructTicket(t, 5, 7, vo.StatusInProgress)

	var requestedInternal *bool
	messageRepo := &mockMessageRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Message, error) {
			requestedInternal = &includeInternal
			m, err := ticket.ReconstructMessage(1, ticketID, 7, "hello", false, false, tk.CreatedAt())
			require.NoError(t, err)
			return []*ticket.Message{m}, nil
		},
	}

	uc := NewGetTicketUseCase(ticketRepoWith(tk), messageRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetTicketQuery{
		TicketID:    5,
		RequesterID: 7,
		Role:        user.RoleStudent,
	})

	require.NoError(t, err)
	require.NotNil(t, requestedInternal)
	assert.False(t, *requestedInternal)
	assert.Equal(t, "T202509-0001", result.Ticket.Number)
	require.Len(t, result.Ticket.Messages, 1)
	assert.Equal(t, "hello", result.Ticket.Messages[0].Body)
}

func TestGetTicket_StaffSeesInternalNotes(t *testing.T) {
	tk := reconstructTicket(t, 5, 7, vo.StatusInProgress)

	var requestedInternal *bool
	messageRepo := &mockMessageRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Message, error) {
			requestedInternal = &includeInternal
			return nil, nil
		},
	}

	uc := NewGetTicketUseCase(ticketRepoWith(tk), messageRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetTicketQuery{
		TicketID:    5,
		RequesterID: 2,
		Role:        user.RoleModerator,
	})

	require.NoError(t, err)
	require.NotNil(t, requestedInternal)
	assert.True(t, *requestedInternal)
}

func TestGetTicket_StrangerDenied(t *testing.T) {
	tk := reconstructTicket(t, 5, 7, vo.StatusOpen)
	uc := NewGetTicketUseCase(ticketRepoWith(tk), &mockMessageRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetTicketQuery{
		TicketID:    5,
		RequesterID: 99,
		Role:        user.RoleStudent,
	})

	assert.True(t, errors.IsForbiddenError(err))
}
