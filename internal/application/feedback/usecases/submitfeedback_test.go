package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unibot/internal/domain/feedback"
	"unibot/internal/domain/user"
	"unibot/internal/shared/errors"
)

func TestSubmitFeedback_Rating(t *testing.T) {
	var saved *feedback.Feedback
	repo := &mockFeedbackRepository{
		SaveFunc: func(ctx context.Context, f *feedback.Feedback) error {
			saved = f
			return f.SetID(1)
		},
	}

	uc := NewSubmitFeedbackUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), SubmitFeedbackCommand{
		UserID: 7,
		Type:   "rating",
		Rating: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.FeedbackID)
	require.NotNil(t, saved)
	assert.Equal(t, feedback.TypeRating, saved.Type())
	assert.Equal(t, 5, saved.Rating())
}

func TestSubmitFeedback_Validation(t *testing.T) {
	uc := NewSubmitFeedbackUseCase(&mockFeedbackRepository{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  SubmitFeedbackCommand
	}{
		{"unknown type", SubmitFeedbackCommand{UserID: 7, Type: "praise"}},
		{"rating out of range", SubmitFeedbackCommand{UserID: 7, Type: "rating", Rating: 6}},
		{"suggestion without text", SubmitFeedbackCommand{UserID: 7, Type: "suggestion"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestProcessFeedback(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	entry, err := feedback.ReconstructFeedback(1, 7, feedback.TypeComplaint, 0, "The bot ignores me.", false, now)
	require.NoError(t, err)

	var updates int
	repo := &mockFeedbackRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
			return entry, nil
		},
		UpdateFunc: func(ctx context.Context, f *feedback.Feedback) error {
			updates++
			return nil
		},
	}

	uc := NewProcessFeedbackUseCase(repo, &mockLogger{})

	require.NoError(t, uc.Execute(context.Background(), ProcessFeedbackCommand{FeedbackID: 1, ActorRole: user.RoleModerator}))
	assert.True(t, entry.IsProcessed())
	assert.Equal(t, 1, updates)

	// Second pass is a no-op.
	require.NoError(t, uc.Execute(context.Background(), ProcessFeedbackCommand{FeedbackID: 1, ActorRole: user.RoleModerator}))
	assert.Equal(t, 1, updates)

	err = uc.Execute(context.Background(), ProcessFeedbackCommand{FeedbackID: 1, ActorRole: user.RoleStudent})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestListUnprocessed(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	complaint, err := feedback.ReconstructFeedback(1, 7, feedback.TypeComplaint, 0, "The bot ignores me.", false, now)
	require.NoError(t, err)
	rating, err := feedback.ReconstructFeedback(2, 8, feedback.TypeRating, 2, "", false, now)
	require.NoError(t, err)

	var gotLimit int
	repo := &mockFeedbackRepository{
		ListUnprocessedFunc: func(ctx context.Context, limit int) ([]*feedback.Feedback, error) {
			gotLimit = limit
			return []*feedback.Feedback{complaint, rating}, nil
		},
	}

	uc := NewListUnprocessedUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListUnprocessedQuery{ActorRole: user.RoleModerator})
	require.NoError(t, err)
	assert.Equal(t, defaultUnprocessedLimit, gotLimit)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "complaint", result.Entries[0].Type)
	assert.Equal(t, 2, result.Entries[1].Rating)

	_, err = uc.Execute(context.Background(), ListUnprocessedQuery{ActorRole: user.RoleStudent})
	assert.True(t, errors.IsForbiddenError(err))
}
