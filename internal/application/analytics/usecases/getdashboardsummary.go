package usecases

import (
	"context"

	"unibot/internal/domain/analytics"
	"unibot/internal/domain/user"
	"unibot/internal/shared/biztime"
	"unibot/internal/shared/logger"
)

const activityWindowDays = 7

type GetDashboardSummaryResult struct {
	RequestsToday     int64
	RequestsYesterday int64
	ChangePercent     float64
	ActiveUsers7d     int64
	NewUsers7d        int64
}

type GetDashboardSummaryUseCase struct {
	requestRepo analytics.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewGetDashboardSummaryUseCase(
	requestRepo analytics.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetDashboardSummaryUseCase {
	return &GetDashboardSummaryUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *GetDashboardSummaryUseCase) Execute(ctx context.Context) (*GetDashboardSummaryResult, error) {
	now := biztime.NowUTC()
	todayStart := biztime.StartOfDayUTC(now)
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	today, err := uc.requestRepo.CountBetween(ctx, todayStart, now)
	if err != nil {
		uc.logger.Errorw("failed to count today's requests", "error", err)
		return nil, err
	}
	yesterday, err := uc.requestRepo.CountBetween(ctx, yesterdayStart, todayStart)
	if err != nil {
		uc.logger.Errorw("failed to count yesterday's requests", "error", err)
		return nil, err
	}

	activeUsers, err := uc.userRepo.CountActiveSince(ctx, activityWindowDays)
	if err != nil {
		uc.logger.Errorw("failed to count active users", "error", err)
		return nil, err
	}
	newUsers, err := uc.userRepo.CountNewSince(ctx, activityWindowDays)
	if err != nil {
		uc.logger.Errorw("failed to count new users", "error", err)
		return nil, err
	}

	return &GetDashboardSummaryResult{
		RequestsToday:     today,
		RequestsYesterday: yesterday,
		ChangePercent:     changePercent(today, yesterday),
		ActiveUsers7d:     activeUsers,
		NewUsers7d:        newUsers,
	}, nil
}

// changePercent is the day-over-day delta. A zero yesterday would divide by
// zero, so it maps to +100 when there is any traffic today and 0 otherwise.
func changePercent(today, yesterday int64) float64 {
	if yesterday == 0 {
		if today > 0 {
			return 100
		}
		return 0
	}
	return float64(today-yesterday) / float64(yesterday) * 100
}
