package usecases

import "context"

type SubmitFeedbackExecutor interface {
	Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error)
}

type ProcessFeedbackExecutor interface {
	Execute(ctx context.Context, cmd ProcessFeedbackCommand) error
}

type ListUnprocessedExecutor interface {
	Execute(ctx context.Context, query ListUnprocessedQuery) (*ListUnprocessedResult, error)
}

type GetFeedbackStatsExecutor interface {
	Execute(ctx context.Context) (*GetFeedbackStatsResult, error)
}
