package usecases

import (
	"context"

	"unibot/internal/domain/analytics"
	"unibot/internal/shared/logger"
)

type LogRequestCommand struct {
	UserID         uint
	RequestType    analytics.RequestType
	Text           string
	Category       string
	ResponseType   analytics.ResponseType
	ResponseTimeMs int64
}

// LogRequestUseCase appends one interaction record. Logging is best-effort
// bookkeeping: a failure is logged and swallowed so it can never break the
// interaction being recorded.
type LogRequestUseCase struct {
	requestRepo analytics.Repository
	logger      logger.Interface
}

func NewLogRequestUseCase(requestRepo analytics.Repository, logger logger.Interface) *LogRequestUseCase {
	return &LogRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *LogRequestUseCase) Execute(ctx context.Context, cmd LogRequestCommand) error {
	entry, err := analytics.NewRequestLog(
		cmd.UserID,
		cmd.RequestType,
		cmd.Text,
		cmd.Category,
		cmd.ResponseType,
		cmd.ResponseTimeMs,
	)
	if err != nil {
		uc.logger.Warnw("invalid request log entry", "error", err)
		return nil
	}

	if err := uc.requestRepo.Save(ctx, entry); err != nil {
		uc.logger.Warnw("failed to save request log", "error", err)
	}
	return nil
}
