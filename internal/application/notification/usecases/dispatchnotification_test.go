package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unibot/internal/domain/notification"
	"unibot/internal/domain/user"
	"unibot/internal/infrastructure/telegram"
	"unibot/internal/shared/errors"
)

func reconstructStudent(t *testing.T, id uint, telegramID int64) *user.User {
	t.Helper()
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(
		id, telegramID,
		"student", "Имя", "Фамилия", "",
		0, "", "", "",
		user.RoleStudent,
		true, false, true, true, true,
		"ru",
		now, now, nil,
	)
	require.NoError(t, err)
	return u
}

func pendingNotification(t *testing.T, id uint) *notification.Notification {
	t.Helper()
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	n, err := notification.ReconstructNotification(
		id, "Стипендия", "Выплата стипендии переносится на пятницу.",
		notification.TargetFilter{},
		true, false, nil, nil, 0, now, now,
	)
	require.NoError(t, err)
	return n
}

func TestDispatchNotification_PartialFailure(t *testing.T) {
	n := pendingNotification(t, 1)

	recipients := make([]*user.User, 0, 5)
	for i := 1; i <= 5; i++ {
		recipients = append(recipients, reconstructStudent(t, uint(i), int64(100+i)))
	}

	var updatedUsers []uint
	var savedNotification *notification.Notification
	notificationRepo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
		UpdateFunc: func(ctx context.Context, updated *notification.Notification) error {
			savedNotification = updated
			return nil
		},
	}
	userRepo := &mockUserRepository{
		ListByFilterFunc: func(ctx context.Context, filter user.Filter) ([]*user.User, error) {
			assert.True(t, filter.ActiveOnly)
			assert.True(t, filter.NotificationsOnly)
			return recipients, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updatedUsers = append(updatedUsers, u.ID())
			return nil
		},
	}

	// Recipients 102 and 104 blocked the bot.
	sender := &mockSender{rejects: map[int64]error{
		102: &telegram.APIError{ErrorCode: 403, Description: "Forbidden: bot was blocked by the user"},
		104: &telegram.APIError{ErrorCode: 403, Description: "Forbidden: bot was blocked by the user"},
	}}

	uc := NewDispatchNotificationUseCase(
		notificationRepo, userRepo, sender,
		telegram.IsPermanentDeliveryError, nil, 0, &mockLogger{},
	)

	result, err := uc.Execute(context.Background(), DispatchNotificationCommand{NotificationID: 1})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Len(t, sender.Sent, 3)
	assert.Contains(t, sender.Sent[0].Text, "Стипендия")

	assert.Equal(t, []uint{2, 4}, updatedUsers)
	assert.False(t, recipients[1].IsActive())
	assert.False(t, recipients[3].IsActive())
	assert.True(t, recipients[0].IsActive())

	require.NotNil(t, savedNotification)
	assert.True(t, savedNotification.IsSent())
	assert.Equal(t, 3, savedNotification.SentCount())
}

func TestDispatchNotification_TransientFailureKeepsRecipient(t *testing.T) {
	n := pendingNotification(t, 1)
	recipient := reconstructStudent(t, 1, 101)

	var userUpdates int
	notificationRepo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
	}
	userRepo := &mockUserRepository{
		ListByFilterFunc: func(ctx context.Context, filter user.Filter) ([]*user.User, error) {
			return []*user.User{recipient}, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			userUpdates++
			return nil
		},
	}
	sender := &mockSender{rejects: map[int64]error{
		101: fmt.Errorf("request timed out"),
	}}

	uc := NewDispatchNotificationUseCase(
		notificationRepo, userRepo, sender,
		telegram.IsPermanentDeliveryError, nil, 0, &mockLogger{},
	)

	result, err := uc.Execute(context.Background(), DispatchNotificationCommand{NotificationID: 1})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, userUpdates)
	assert.True(t, recipient.IsActive())
}

func TestDispatchNotification_FloodWaitPausesFanOut(t *testing.T) {
	n := pendingNotification(t, 1)
	recipients := []*user.User{
		reconstructStudent(t, 1, 101),
		reconstructStudent(t, 2, 102),
	}

	notificationRepo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
		UpdateFunc: func(ctx context.Context, updated *notification.Notification) error {
			return nil
		},
	}
	userRepo := &mockUserRepository{
		ListByFilterFunc: func(ctx context.Context, filter user.Filter) ([]*user.User, error) {
			return recipients, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			t.Fatalf("flood wait must not deactivate recipient %d", u.ID())
			return nil
		},
	}
	floodErr := &telegram.APIError{ErrorCode: 429, Description: "Too Many Requests", RetryAfter: 3}
	sender := &mockSender{rejects: map[int64]error{101: floodErr}}

	var consulted []error
	retryDelay := func(err error) time.Duration {
		consulted = append(consulted, err)
		return telegram.RetryAfterDelay(err) / 1000 // milliseconds instead of seconds
	}

	uc := NewDispatchNotificationUseCase(
		notificationRepo, userRepo, sender,
		telegram.IsPermanentDeliveryError, retryDelay, 0, &mockLogger{},
	)

	result, err := uc.Execute(context.Background(), DispatchNotificationCommand{NotificationID: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, sender.Sent, 1)
	assert.Equal(t, int64(102), sender.Sent[0].ChatID)
	assert.True(t, recipients[0].IsActive())

	require.Len(t, consulted, 1)
	assert.Same(t, floodErr, consulted[0].(*telegram.APIError))
}

func TestDispatchNotification_AlreadySent(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	n, err := notification.ReconstructNotification(
		1, "t", "m", notification.TargetFilter{},
		true, true, nil, &now, 10, now, now,
	)
	require.NoError(t, err)

	notificationRepo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
	}

	uc := NewDispatchNotificationUseCase(
		notificationRepo, &mockUserRepository{}, &mockSender{},
		nil, nil, 0, &mockLogger{},
	)

	_, err = uc.Execute(context.Background(), DispatchNotificationCommand{NotificationID: 1})
	assert.True(t, errors.IsConflictError(err))
}

func TestDispatchNotification_MissingTransport(t *testing.T) {
	uc := NewDispatchNotificationUseCase(
		&mockNotificationRepository{}, &mockUserRepository{}, nil,
		nil, nil, 0, &mockLogger{},
	)

	_, err := uc.Execute(context.Background(), DispatchNotificationCommand{NotificationID: 1})
	require.Error(t, err)
}
