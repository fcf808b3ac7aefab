package usecases

import (
	"context"

	"unibot/internal/domain/user"
	"unibot/internal/shared/logger"
)

type CompleteOnboardingCommand struct {
	UserID uint
}

type CompleteOnboardingUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewCompleteOnboardingUseCase(userRepo user.Repository, logger logger.Interface) *CompleteOnboardingUseCase {
	return &CompleteOnboardingUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *CompleteOnboardingUseCase) Execute(ctx context.Context, cmd CompleteOnboardingCommand) error {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if u.IsOnboarded() {
		return nil
	}

	u.CompleteOnboarding()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to complete onboarding", "error", err, "user_id", cmd.UserID)
		return err
	}
	return nil
}
