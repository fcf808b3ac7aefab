package usecases

import (
	"context"
	"time"

	"unibot/internal/domain/analytics"
	"unibot/internal/shared/biztime"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

const defaultStatsDays = 7

type GetRequestStatsQuery struct {
	Days int
}

type CategoryCount struct {
	Category string
	Count    int64
}

type DayCount struct {
	Date  time.Time
	Count int64
}

type GetRequestStatsResult struct {
	Days          int
	Total         int64
	ByType        map[string]int64
	TopCategories []CategoryCount
	AvgResponseMs float64
	PerDay        []DayCount
}

type GetRequestStatsUseCase struct {
	requestRepo analytics.Repository
	logger      logger.Interface
}

func NewGetRequestStatsUseCase(requestRepo analytics.Repository, logger logger.Interface) *GetRequestStatsUseCase {
	return &GetRequestStatsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetRequestStatsUseCase) Execute(ctx context.Context, query GetRequestStatsQuery) (*GetRequestStatsResult, error) {
	days := query.Days
	if days == 0 {
		days = defaultStatsDays
	}
	if days < 0 || days > 365 {
		return nil, errors.NewValidationError("days must be between 1 and 365")
	}

	now := biztime.NowUTC()
	from := biztime.StartOfDayUTC(now.AddDate(0, 0, -(days - 1)))

	stats, err := uc.requestRepo.GetStats(ctx, from, now)
	if err != nil {
		uc.logger.Errorw("failed to load request stats", "error", err)
		return nil, err
	}

	byType := make(map[string]int64, len(stats.ByType))
	for requestType, count := range stats.ByType {
		byType[requestType.String()] = count
	}

	topCategories := make([]CategoryCount, 0, len(stats.TopCategories))
	for _, c := range stats.TopCategories {
		topCategories = append(topCategories, CategoryCount{Category: c.Category, Count: c.Count})
	}

	perDay := make([]DayCount, 0, len(stats.PerDay))
	for _, d := range stats.PerDay {
		perDay = append(perDay, DayCount{Date: d.Date, Count: d.Count})
	}

	return &GetRequestStatsResult{
		Days:          days,
		Total:         stats.Total,
		ByType:        byType,
		TopCategories: topCategories,
		AvgResponseMs: stats.AvgResponseMs,
		PerDay:        perDay,
	}, nil
}
