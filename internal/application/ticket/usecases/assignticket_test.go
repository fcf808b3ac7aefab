package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "unibot/internal/domain/ticket/valueobjects"
	"unibot/internal/domain/user"
	"unibot/internal/shared/errors"
)

func reconstructUser(t *testing.T, id uint, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(int64(id)*100, "someone", "Some", "One")
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	require.NoError(t, u.ChangeRole(role))
	return u
}

func TestAssignTicket_OpenMovesToInProgress(t *testing.T) {
	tk := reconstructTicket(t, 5, 7, vo.StatusOpen)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructUser(t, id, user.RoleModerator), nil
		},
	}

	uc := NewAssignTicketUseCase(ticketRepoWith(tk), userRepo, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:   5,
		ActorRole:  user.RoleAdmin,
		AssigneeID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.AssigneeID)
	assert.Equal(t, "in_progress", result.Status)
	require.NotNil(t, tk.AssigneeID())
	assert.Equal(t, uint(3), *tk.AssigneeID())
}

func TestAssignTicket_NonStaffAssigneeRejected(t *testing.T) {
	tk := reconstructTicket(t, 5, 7, vo.StatusOpen)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructUser(t, id, user.RoleStudent), nil
		},
	}

	uc := NewAssignTicketUseCase(ticketRepoWith(tk), userRepo, &mockTransactionManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:   5,
		ActorRole:  user.RoleModerator,
		AssigneeID: 3,
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestAssignTicket_RequiresStaffActor(t *testing.T) {
	uc := NewAssignTicketUseCase(&mockTicketRepository{}, &mockUserRepository{}, &mockTransactionManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:   5,
		ActorRole:  user.RoleStudent,
		AssigneeID: 3,
	})

	assert.True(t, errors.IsForbiddenError(err))
}
