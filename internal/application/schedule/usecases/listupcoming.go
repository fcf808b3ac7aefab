package usecases

import (
	"context"

	"unibot/internal/domain/schedule"
	"unibot/internal/shared/biztime"
	"unibot/internal/shared/logger"
)

const defaultUpcomingLimit = 5

type ListUpcomingQuery struct {
	GroupName string
	Faculty   string
	Course    int
	Limit     int
}

type ListUpcomingUseCase struct {
	eventRepo schedule.Repository
	logger    logger.Interface
}

func NewListUpcomingUseCase(eventRepo schedule.Repository, logger logger.Interface) *ListUpcomingUseCase {
	return &ListUpcomingUseCase{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (uc *ListUpcomingUseCase) Execute(ctx context.Context, query ListUpcomingQuery) (*ListEventsResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}

	filter := schedule.Filter{
		From:      biztime.NowUTC(),
		GroupName: query.GroupName,
		Faculty:   query.Faculty,
		Course:    query.Course,
	}

	events, err := uc.eventRepo.ListUpcoming(ctx, filter, limit)
	if err != nil {
		uc.logger.Errorw("failed to list upcoming events", "error", err)
		return nil, err
	}

	return &ListEventsResult{Events: toViews(events)}, nil
}
