package usecases

import (
	"context"

	"unibot/internal/domain/ticket"
	"unibot/internal/shared/logger"
)

type GetTicketStatsResult struct {
	Total             int64
	ByStatus          map[string]int64
	Unassigned        int64
	AvgResolutionDays float64
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context) (*GetTicketStatsResult, error) {
	stats, err := uc.ticketRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load ticket stats", "error", err)
		return nil, err
	}

	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[status.String()] = count
	}

	return &GetTicketStatsResult{
		Total:             stats.Total,
		ByStatus:          byStatus,
		Unassigned:        stats.Unassigned,
		AvgResolutionDays: stats.AvgResolutionDays,
	}, nil
}
