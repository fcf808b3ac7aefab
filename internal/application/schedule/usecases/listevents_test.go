package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unibot/internal/domain/schedule"
	"unibot/internal/shared/errors"
)

func reconstructEvent(t *testing.T, id uint, title string, startsAt time.Time) *schedule.Event {
	t.Helper()
	e, err := schedule.ReconstructEvent(
		id, title, "", schedule.EventLesson, "201-361", "", 0, "Room 101", "Dr. Ivanov",
		startsAt, nil, false, false, startsAt, startsAt,
	)
	require.NoError(t, err)
	return e
}

func TestListEvents_DefaultWindowIsOneWeek(t *testing.T) {
	var captured schedule.Filter
	repo := &mockEventRepository{
		ListFunc: func(ctx context.Context, filter schedule.Filter) ([]*schedule.Event, error) {
			captured = filter
			return nil, nil
		},
	}

	uc := NewListEventsUseCase(repo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListEventsQuery{GroupName: "201-361"})

	require.NoError(t, err)
	assert.Equal(t, "201-361", captured.GroupName)
	assert.Equal(t, captured.From.AddDate(0, 0, 7), captured.To)
}

func TestListEvents_TypeFilter(t *testing.T) {
	var captured schedule.Filter
	repo := &mockEventRepository{
		ListFunc: func(ctx context.Context, filter schedule.Filter) ([]*schedule.Event, error) {
			captured = filter
			return nil, nil
		},
	}

	uc := NewListEventsUseCase(repo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListEventsQuery{Type: "exam"})
	require.NoError(t, err)
	require.NotNil(t, captured.Type)
	assert.Equal(t, schedule.EventExam, *captured.Type)

	_, err = uc.Execute(context.Background(), ListEventsQuery{Type: "party"})
	assert.True(t, errors.IsValidationError(err))
}

func TestListEvents_InvertedWindowRejected(t *testing.T) {
	uc := NewListEventsUseCase(&mockEventRepository{}, &mockLogger{})

	from := time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), ListEventsQuery{From: from, To: to})

	assert.True(t, errors.IsValidationError(err))
}

func TestListUpcoming_DefaultLimit(t *testing.T) {
	start := time.Date(2025, 9, 2, 9, 0, 0, 0, time.UTC)

	var capturedLimit int
	repo := &mockEventRepository{
		ListUpcomingFunc: func(ctx context.Context, filter schedule.Filter, limit int) ([]*schedule.Event, error) {
			capturedLimit = limit
			return []*schedule.Event{reconstructEvent(t, 1, "Linear Algebra", start)}, nil
		},
	}

	uc := NewListUpcomingUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListUpcomingQuery{GroupName: "201-361"})

	require.NoError(t, err)
	assert.Equal(t, defaultUpcomingLimit, capturedLimit)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "Linear Algebra", result.Events[0].Title)
	assert.Equal(t, "lesson", result.Events[0].Type)
}
