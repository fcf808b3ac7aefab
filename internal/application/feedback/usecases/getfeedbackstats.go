package usecases

import (
	"context"

	"unibot/internal/domain/feedback"
	"unibot/internal/shared/logger"
)

type GetFeedbackStatsResult struct {
	AvgRating          float64
	RatingDistribution map[int]int64
	SuggestionCount    int64
	ComplaintCount     int64
	Unprocessed        int64
}

type GetFeedbackStatsUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewGetFeedbackStatsUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *GetFeedbackStatsUseCase {
	return &GetFeedbackStatsUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *GetFeedbackStatsUseCase) Execute(ctx context.Context) (*GetFeedbackStatsResult, error) {
	stats, err := uc.feedbackRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load feedback stats", "error", err)
		return nil, err
	}

	return &GetFeedbackStatsResult{
		AvgRating:          stats.AvgRating,
		RatingDistribution: stats.RatingDistribution,
		SuggestionCount:    stats.SuggestionCount,
		ComplaintCount:     stats.ComplaintCount,
		Unprocessed:        stats.Unprocessed,
	}, nil
}
