package usecases

import (
	"context"

	"unibot/internal/domain/user"
	"unibot/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type ProfileView struct {
	DisplayName          string
	Username             string
	FullName             string
	GroupName            string
	Course               int
	Faculty              string
	StudentID            string
	Role                 string
	IsVerified           bool
	NotificationsEnabled bool
}

type GetProfileResult struct {
	Profile ProfileView
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*GetProfileResult, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	return &GetProfileResult{
		Profile: ProfileView{
			DisplayName:          u.DisplayName(),
			Username:             u.Username(),
			FullName:             u.FullName(),
			GroupName:            u.GroupName(),
			Course:               u.Course(),
			Faculty:              u.Faculty(),
			StudentID:            u.StudentID(),
			Role:                 u.Role().String(),
			IsVerified:           u.IsVerified(),
			NotificationsEnabled: u.NotificationsEnabled(),
		},
	}, nil
}
