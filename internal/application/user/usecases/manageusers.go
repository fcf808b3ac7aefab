package usecases

import (
	"context"

	"unibot/internal/domain/user"
	"unibot/internal/shared/authorization"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type ChangeRoleCommand struct {
	ActorRole  user.Role
	TelegramID int64
	NewRole    string
}

type ChangeRoleResult struct {
	DisplayName string
	Role        string
}

// ChangeRoleUseCase promotes or demotes a user. Admin only; an admin cannot
// strip their own role through the bot, a second admin has to do it.
type ChangeRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewChangeRoleUseCase(userRepo user.Repository, logger logger.Interface) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (*ChangeRoleResult, error) {
	if err := authorization.RequireAdmin(cmd.ActorRole); err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByTelegramID(ctx, cmd.TelegramID)
	if err != nil {
		return nil, err
	}

	if err := u.ChangeRole(user.Role(cmd.NewRole)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to change role", "error", err, "telegram_id", cmd.TelegramID)
		return nil, err
	}

	uc.logger.Infow("user role changed", "telegram_id", cmd.TelegramID, "role", cmd.NewRole)

	return &ChangeRoleResult{
		DisplayName: u.DisplayName(),
		Role:        string(u.Role()),
	}, nil
}

type SetUserActiveCommand struct {
	ActorRole  user.Role
	TelegramID int64
	Active     bool
}

type SetUserActiveResult struct {
	DisplayName string
	IsActive    bool
}

// SetUserActiveUseCase bans or unbans a user. Deactivated users keep their
// data; they are only excluded from broadcasts and listings.
type SetUserActiveUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSetUserActiveUseCase(userRepo user.Repository, logger logger.Interface) *SetUserActiveUseCase {
	return &SetUserActiveUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SetUserActiveUseCase) Execute(ctx context.Context, cmd SetUserActiveCommand) (*SetUserActiveResult, error) {
	if err := authorization.RequireAdmin(cmd.ActorRole); err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByTelegramID(ctx, cmd.TelegramID)
	if err != nil {
		return nil, err
	}

	if cmd.Active {
		u.Activate()
	} else {
		u.Deactivate()
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to set user active flag", "error", err, "telegram_id", cmd.TelegramID)
		return nil, err
	}

	uc.logger.Infow("user active flag changed", "telegram_id", cmd.TelegramID, "active", cmd.Active)

	return &SetUserActiveResult{
		DisplayName: u.DisplayName(),
		IsActive:    u.IsActive(),
	}, nil
}
