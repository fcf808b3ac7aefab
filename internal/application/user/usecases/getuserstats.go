package usecases

import (
	"context"

	"unibot/internal/domain/user"
	"unibot/internal/shared/logger"
)

type GetUserStatsResult struct {
	Total    int64
	Active   int64
	Verified int64
	NewToday int64
	ByRole   map[string]int64
}

type GetUserStatsUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserStatsUseCase(userRepo user.Repository, logger logger.Interface) *GetUserStatsUseCase {
	return &GetUserStatsUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserStatsUseCase) Execute(ctx context.Context) (*GetUserStatsResult, error) {
	stats, err := uc.userRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load user stats", "error", err)
		return nil, err
	}

	byRole := make(map[string]int64, len(stats.ByRole))
	for role, count := range stats.ByRole {
		byRole[role.String()] = count
	}

	return &GetUserStatsResult{
		Total:    stats.Total,
		Active:   stats.Active,
		Verified: stats.Verified,
		NewToday: stats.NewToday,
		ByRole:   byRole,
	}, nil
}
