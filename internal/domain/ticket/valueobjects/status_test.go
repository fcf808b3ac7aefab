package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), "%s must be valid", s)
	}
	assert.False(t, TicketStatus("pending").IsValid())
	assert.False(t, TicketStatus("").IsValid())
}

func TestTicketStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    TicketStatus
		to      TicketStatus
		allowed bool
	}{
		{StatusOpen, StatusInProgress, true},
		{StatusOpen, StatusWaiting, true},
		{StatusOpen, StatusResolved, true},
		{StatusOpen, StatusClosed, true},
		{StatusInProgress, StatusWaiting, true},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusOpen, false},
		{StatusWaiting, StatusInProgress, true},
		{StatusWaiting, StatusOpen, false},
		{StatusResolved, StatusOpen, true},
		{StatusResolved, StatusClosed, true},
		{StatusResolved, StatusWaiting, false},
		{StatusClosed, StatusOpen, false},
		{StatusClosed, StatusResolved, false},
	}

	for _, tt := range tests {
		got := tt.from.CanTransitionTo(tt.to)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestTicketStatus_IsActive(t *testing.T) {
	assert.True(t, StatusOpen.IsActive())
	assert.True(t, StatusInProgress.IsActive())
	assert.True(t, StatusWaiting.IsActive())
	assert.False(t, StatusResolved.IsActive())
	assert.False(t, StatusClosed.IsActive())
}

func TestNewTicketStatus(t *testing.T) {
	s, err := NewTicketStatus("waiting")
	assert.NoError(t, err)
	assert.Equal(t, StatusWaiting, s)

	_, err = NewTicketStatus("reopened")
	assert.Error(t, err)
}

func TestNewPriority(t *testing.T) {
	for v := 1; v <= 3; v++ {
		p, err := NewPriority(v)
		assert.NoError(t, err)
		assert.True(t, p.IsValid())
	}

	_, err := NewPriority(0)
	assert.Error(t, err)
	_, err = NewPriority(4)
	assert.Error(t, err)
}
