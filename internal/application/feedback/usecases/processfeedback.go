package usecases

import (
	"context"

	"unibot/internal/domain/feedback"
	"unibot/internal/domain/user"
	"unibot/internal/shared/authorization"
	"unibot/internal/shared/logger"
)

type ProcessFeedbackCommand struct {
	FeedbackID uint
	ActorRole  user.Role
}

type ProcessFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewProcessFeedbackUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *ProcessFeedbackUseCase {
	return &ProcessFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *ProcessFeedbackUseCase) Execute(ctx context.Context, cmd ProcessFeedbackCommand) error {
	if err := authorization.RequireStaff(cmd.ActorRole); err != nil {
		return err
	}

	entry, err := uc.feedbackRepo.GetByID(ctx, cmd.FeedbackID)
	if err != nil {
		return err
	}
	if entry.IsProcessed() {
		return nil
	}

	entry.MarkProcessed()
	if err := uc.feedbackRepo.Update(ctx, entry); err != nil {
		uc.logger.Errorw("failed to mark feedback processed", "error", err, "feedback_id", cmd.FeedbackID)
		return err
	}
	return nil
}
