package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unibot/internal/domain/user"
)

func TestNewNotification(t *testing.T) {
	n, err := NewNotification("Exam week", "Exams start on Monday.", TargetFilter{}, nil)

	require.NoError(t, err)
	assert.True(t, n.IsActive())
	assert.False(t, n.IsSent())
	assert.Nil(t, n.ScheduledAt())
}

func TestNewNotification_Validation(t *testing.T) {
	_, err := NewNotification("", "message", TargetFilter{}, nil)
	assert.Error(t, err)

	_, err = NewNotification("title", "", TargetFilter{}, nil)
	assert.Error(t, err)
}

func TestNotification_IsDue(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	unscheduled, err := NewNotification("t", "m", TargetFilter{}, nil)
	require.NoError(t, err)
	assert.True(t, unscheduled.IsDue(now))

	past := now.Add(-time.Hour)
	due, err := NewNotification("t", "m", TargetFilter{}, &past)
	require.NoError(t, err)
	assert.True(t, due.IsDue(now))

	future := now.Add(time.Hour)
	notYet, err := NewNotification("t", "m", TargetFilter{}, &future)
	require.NoError(t, err)
	assert.False(t, notYet.IsDue(now))

	require.NoError(t, due.MarkSent(10))
	assert.False(t, due.IsDue(now))

	unscheduled.Deactivate()
	assert.False(t, unscheduled.IsDue(now))
}

func TestNotification_MarkSent(t *testing.T) {
	n, err := NewNotification("t", "m", TargetFilter{}, nil)
	require.NoError(t, err)

	require.NoError(t, n.MarkSent(42))
	assert.True(t, n.IsSent())
	assert.Equal(t, 42, n.SentCount())
	assert.NotNil(t, n.SentAt())

	assert.Error(t, n.MarkSent(1))
}

func TestTargetFilter_ToUserFilter(t *testing.T) {
	role := user.RoleStudent
	course := 2
	f := TargetFilter{Role: &role, Course: &course}

	uf := f.ToUserFilter()
	assert.Equal(t, &role, uf.Role)
	assert.Equal(t, &course, uf.Course)
	assert.True(t, uf.ActiveOnly)
	assert.True(t, uf.NotificationsOnly)

	assert.False(t, f.IsEmpty())
	assert.True(t, TargetFilter{}.IsEmpty())
}
