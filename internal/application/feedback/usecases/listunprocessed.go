package usecases

import (
	"context"
	"time"

	"unibot/internal/domain/feedback"
	"unibot/internal/domain/user"
	"unibot/internal/shared/authorization"
	"unibot/internal/shared/logger"
)

const defaultUnprocessedLimit = 10

type ListUnprocessedQuery struct {
	ActorRole user.Role
	Limit     int
}

type FeedbackView struct {
	ID        uint
	UserID    uint
	Type      string
	Rating    int
	Text      string
	CreatedAt time.Time
}

type ListUnprocessedResult struct {
	Entries []FeedbackView
}

type ListUnprocessedUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewListUnprocessedUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *ListUnprocessedUseCase {
	return &ListUnprocessedUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *ListUnprocessedUseCase) Execute(ctx context.Context, query ListUnprocessedQuery) (*ListUnprocessedResult, error) {
	if err := authorization.RequireStaff(query.ActorRole); err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultUnprocessedLimit
	}

	entries, err := uc.feedbackRepo.ListUnprocessed(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list unprocessed feedback", "error", err)
		return nil, err
	}

	views := make([]FeedbackView, 0, len(entries))
	for _, f := range entries {
		views = append(views, FeedbackView{
			ID:        f.ID(),
			UserID:    f.UserID(),
			Type:      f.Type().String(),
			Rating:    f.Rating(),
			Text:      f.Text(),
			CreatedAt: f.CreatedAt(),
		})
	}

	return &ListUnprocessedResult{Entries: views}, nil
}
