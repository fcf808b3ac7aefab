package usecases

import "context"

type LogRequestExecutor interface {
	Execute(ctx context.Context, cmd LogRequestCommand) error
}

type GetRequestStatsExecutor interface {
	Execute(ctx context.Context, query GetRequestStatsQuery) (*GetRequestStatsResult, error)
}

type GetDashboardSummaryExecutor interface {
	Execute(ctx context.Context) (*GetDashboardSummaryResult, error)
}
