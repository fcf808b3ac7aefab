package usecases

import (
	"context"

	"unibot/internal/domain/feedback"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type SubmitFeedbackCommand struct {
	UserID uint
	Type   string
	Rating int
	Text   string
}

type SubmitFeedbackResult struct {
	FeedbackID uint
}

type SubmitFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewSubmitFeedbackUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error) {
	entry, err := feedback.NewFeedback(cmd.UserID, feedback.Type(cmd.Type), cmd.Rating, cmd.Text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.feedbackRepo.Save(ctx, entry); err != nil {
		uc.logger.Errorw("failed to save feedback", "error", err)
		return nil, err
	}

	uc.logger.Infow("feedback submitted", "feedback_id", entry.ID(), "type", cmd.Type)

	return &SubmitFeedbackResult{FeedbackID: entry.ID()}, nil
}
