package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unibot/internal/domain/notification"
	"unibot/internal/domain/user"
	"unibot/internal/shared/errors"
)

func TestCreateNotification(t *testing.T) {
	var saved *notification.Notification
	repo := &mockNotificationRepository{
		SaveFunc: func(ctx context.Context, n *notification.Notification) error {
			saved = n
			return n.SetID(5)
		},
	}

	uc := NewCreateNotificationUseCase(repo, &mockLogger{})

	role := "student"
	course := 2
	result, err := uc.Execute(context.Background(), CreateNotificationCommand{
		ActorRole:  user.RoleAdmin,
		Title:      "Расписание",
		Message:    "Занятия 8 сентября отменены.",
		TargetRole: &role,
		Course:     &course,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.NotificationID)
	assert.False(t, result.IsScheduled)

	require.NotNil(t, saved)
	target := saved.Target()
	require.NotNil(t, target.Role)
	assert.Equal(t, user.RoleStudent, *target.Role)
	require.NotNil(t, target.Course)
	assert.Equal(t, 2, *target.Course)
}

func TestCreateNotification_Scheduled(t *testing.T) {
	uc := NewCreateNotificationUseCase(&mockNotificationRepository{}, &mockLogger{})

	at := time.Date(2025, 9, 2, 9, 0, 0, 0, time.UTC)
	result, err := uc.Execute(context.Background(), CreateNotificationCommand{
		ActorRole:   user.RoleAdmin,
		Title:       "Напоминание",
		Message:     "Завтра консультация в 14:00.",
		ScheduledAt: &at,
	})

	require.NoError(t, err)
	assert.True(t, result.IsScheduled)
}

func TestCreateNotification_Validation(t *testing.T) {
	uc := NewCreateNotificationUseCase(&mockNotificationRepository{}, &mockLogger{})

	badRole := "superuser"
	badCourse := 7
	tests := []struct {
		name string
		cmd  CreateNotificationCommand
	}{
		{"empty title", CreateNotificationCommand{ActorRole: user.RoleAdmin, Message: "m"}},
		{"empty message", CreateNotificationCommand{ActorRole: user.RoleAdmin, Title: "t"}},
		{"unknown target role", CreateNotificationCommand{ActorRole: user.RoleAdmin, Title: "t", Message: "m", TargetRole: &badRole}},
		{"course out of range", CreateNotificationCommand{ActorRole: user.RoleAdmin, Title: "t", Message: "m", Course: &badCourse}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreateNotification_RequiresAdmin(t *testing.T) {
	uc := NewCreateNotificationUseCase(&mockNotificationRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateNotificationCommand{
		ActorRole: user.RoleModerator,
		Title:     "t",
		Message:   "m",
	})

	assert.True(t, errors.IsForbiddenError(err))
}
