package usecases

import (
	"context"

	"unibot/internal/domain/user"
	"unibot/internal/shared/logger"
	"unibot/internal/shared/validation"
)

type UpdateProfileCommand struct {
	UserID    uint
	FullName  *string
	Course    *int
	GroupName *string
	StudentID *string
	Faculty   *string
}

type UpdateProfileResult struct {
	DisplayName string
	IsVerified  bool
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	u.UpdateProfile(user.ProfileUpdate{
		FullName:  cmd.FullName,
		Course:    cmd.Course,
		GroupName: cmd.GroupName,
		StudentID: cmd.StudentID,
		Faculty:   cmd.Faculty,
	})

	// A filled-out name and group is what campus staff needs to identify the
	// student, so the profile counts as verified from then on.
	if u.FullName() != "" && u.GroupName() != "" {
		u.SetVerified(true)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update profile", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	return &UpdateProfileResult{
		DisplayName: u.DisplayName(),
		IsVerified:  u.IsVerified(),
	}, nil
}

func (uc *UpdateProfileUseCase) validateCommand(cmd UpdateProfileCommand) error {
	if cmd.FullName != nil {
		if err := validation.FullName(*cmd.FullName); err != nil {
			return err
		}
	}
	if cmd.Course != nil {
		if err := validation.Course(*cmd.Course); err != nil {
			return err
		}
	}
	if cmd.GroupName != nil {
		if err := validation.GroupCode(*cmd.GroupName); err != nil {
			return err
		}
	}
	if cmd.StudentID != nil {
		if err := validation.StudentID(*cmd.StudentID); err != nil {
			return err
		}
	}
	return nil
}
