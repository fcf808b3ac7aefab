package usecases

import (
	"context"

	"unibot/internal/domain/user"
	"unibot/internal/shared/logger"
)

type ToggleNotificationsCommand struct {
	UserID uint
}

type ToggleNotificationsResult struct {
	Enabled bool
}

type ToggleNotificationsUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewToggleNotificationsUseCase(userRepo user.Repository, logger logger.Interface) *ToggleNotificationsUseCase {
	return &ToggleNotificationsUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ToggleNotificationsUseCase) Execute(ctx context.Context, cmd ToggleNotificationsCommand) (*ToggleNotificationsResult, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	enabled := u.ToggleNotifications()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to toggle notifications", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	return &ToggleNotificationsResult{Enabled: enabled}, nil
}
