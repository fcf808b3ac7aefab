package usecases

import "context"

type ListEventsExecutor interface {
	Execute(ctx context.Context, query ListEventsQuery) (*ListEventsResult, error)
}

type ListUpcomingExecutor interface {
	Execute(ctx context.Context, query ListUpcomingQuery) (*ListEventsResult, error)
}
