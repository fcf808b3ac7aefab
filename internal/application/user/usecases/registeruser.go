package usecases

import (
	"context"

	"unibot/internal/domain/user"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type RegisterUserCommand struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}

type RegisterUserResult struct {
	UserID      uint
	Role        string
	IsNew       bool
	IsOnboarded bool
}

// RegisterUserUseCase resolves the user behind an inbound update, creating
// the record on first contact. Telegram IDs on the configured admin
// allow-list are promoted on every pass so a demoted config change takes
// effect without manual intervention.
type RegisterUserUseCase struct {
	userRepo user.Repository
	adminIDs []int64
	logger   logger.Interface
}

func NewRegisterUserUseCase(userRepo user.Repository, adminIDs []int64, logger logger.Interface) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		adminIDs: adminIDs,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	if cmd.TelegramID == 0 {
		return nil, errors.NewValidationError("telegram ID is required")
	}

	existing, err := uc.userRepo.GetByTelegramID(ctx, cmd.TelegramID)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up user", "error", err, "telegram_id", cmd.TelegramID)
		return nil, err
	}

	if existing != nil {
		return uc.refresh(ctx, existing, cmd)
	}
	return uc.create(ctx, cmd)
}

func (uc *RegisterUserUseCase) create(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	newUser, err := user.NewUser(cmd.TelegramID, cmd.Username, cmd.FirstName, cmd.LastName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if uc.isAdmin(cmd.TelegramID) {
		if err := newUser.ChangeRole(user.RoleAdmin); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	}
	newUser.TouchActivity()

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err, "telegram_id", cmd.TelegramID)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "telegram_id", cmd.TelegramID)

	return &RegisterUserResult{
		UserID:      newUser.ID(),
		Role:        newUser.Role().String(),
		IsNew:       true,
		IsOnboarded: false,
	}, nil
}

func (uc *RegisterUserUseCase) refresh(ctx context.Context, u *user.User, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	if uc.isAdmin(cmd.TelegramID) && !u.Role().IsAdmin() {
		if err := u.ChangeRole(user.RoleAdmin); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
		uc.logger.Infow("user promoted to admin", "user_id", u.ID())
	}
	u.TouchActivity()

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to refresh user", "error", err, "user_id", u.ID())
		return nil, err
	}

	return &RegisterUserResult{
		UserID:      u.ID(),
		Role:        u.Role().String(),
		IsNew:       false,
		IsOnboarded: u.IsOnboarded(),
	}, nil
}

func (uc *RegisterUserUseCase) isAdmin(telegramID int64) bool {
	for _, id := range uc.adminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
