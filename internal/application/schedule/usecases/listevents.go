package usecases

import (
	"context"
	"time"

	"unibot/internal/domain/schedule"
	"unibot/internal/shared/biztime"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type ListEventsQuery struct {
	// From/To bound the window; zero From means today, zero To means one
	// week after From.
	From      time.Time
	To        time.Time
	Type      string
	GroupName string
	Faculty   string
	Course    int
}

type EventView struct {
	ID            uint
	Title         string
	Type          string
	Location      string
	Instructor    string
	StartsAt      time.Time
	EndsAt        *time.Time
	IsRescheduled bool
}

type ListEventsResult struct {
	Events []EventView
}

type ListEventsUseCase struct {
	eventRepo schedule.Repository
	logger    logger.Interface
}

func NewListEventsUseCase(eventRepo schedule.Repository, logger logger.Interface) *ListEventsUseCase {
	return &ListEventsUseCase{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context, query ListEventsQuery) (*ListEventsResult, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	events, err := uc.eventRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list schedule events", "error", err)
		return nil, err
	}

	return &ListEventsResult{Events: toViews(events)}, nil
}

func buildFilter(query ListEventsQuery) (schedule.Filter, error) {
	from := query.From
	if from.IsZero() {
		from = biztime.StartOfDayUTC(biztime.NowUTC())
	}
	to := query.To
	if to.IsZero() {
		to = from.AddDate(0, 0, 7)
	}
	if !to.After(from) {
		return schedule.Filter{}, errors.NewValidationError("window end must be after start")
	}

	filter := schedule.Filter{
		From:      from,
		To:        to,
		GroupName: query.GroupName,
		Faculty:   query.Faculty,
		Course:    query.Course,
	}
	if query.Type != "" {
		eventType := schedule.EventType(query.Type)
		if !eventType.IsValid() {
			return schedule.Filter{}, errors.NewValidationError("invalid event type: " + query.Type)
		}
		filter.Type = &eventType
	}
	return filter, nil
}

func toViews(events []*schedule.Event) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			ID:            e.ID(),
			Title:         e.Title(),
			Type:          e.Type().String(),
			Location:      e.Location(),
			Instructor:    e.Instructor(),
			StartsAt:      e.StartsAt(),
			EndsAt:        e.EndsAt(),
			IsRescheduled: e.IsRescheduled(),
		})
	}
	return views
}
