package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unibot/internal/domain/ticket"
	vo "unibot/internal/domain/ticket/valueobjects"
	"unibot/internal/shared/errors"
)

func TestReopenTicket_FromResolved(t *testing.T) {
	tk := reconstructTicket(t, 5, 7, vo.StatusResolved)

	var savedMessages []*ticket.Message
	messageRepo := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, m *ticket.Message) error {
			savedMessages = append(savedMessages, m)
			return m.SetID(1)
		},
	}

	uc := NewReopenTicketUseCase(ticketRepoWith(tk), messageRepo, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ReopenTicketCommand{TicketID: 5, RequesterID: 7})

	require.NoError(t, err)
	assert.Equal(t, "open", result.Status)
	assert.Nil(t, tk.ResolvedAt())

	require.Len(t, savedMessages, 1)
	assert.Contains(t, savedMessages[0].Body(), "resolved → open")
	assert.False(t, savedMessages[0].IsFromStaff())
}

func TestReopenTicket_OnlyRequester(t *testing.T) {
	tk := reconstructTicket(t, 5, 7, vo.StatusResolved)
	uc := NewReopenTicketUseCase(ticketRepoWith(tk), &mockMessageRepository{}, &mockTransactionManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ReopenTicketCommand{TicketID: 5, RequesterID: 99})

	assert.True(t, errors.IsForbiddenError(err))
}

func TestReopenTicket_ClosedStaysClosed(t *testing.T) {
	tk := reconstructTicket(t, 5, 7, vo.StatusClosed)
	uc := NewReopenTicketUseCase(ticketRepoWith(tk), &mockMessageRepository{}, &mockTransactionManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ReopenTicketCommand{TicketID: 5, RequesterID: 7})

	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, vo.StatusClosed, tk.Status())
}
