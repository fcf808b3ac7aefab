package usecases

import (
	"context"

	"unibot/internal/domain/faq"
	"unibot/internal/shared/logger"
)

const defaultPopularLimit = 10

type ListPopularQuery struct {
	Limit int
}

type PopularItem struct {
	ID        uint
	Question  string
	ViewCount int64
}

type ListPopularResult struct {
	Items []PopularItem
}

// ListPopularUseCase returns the most viewed items across categories for the
// quick "top questions" menu.
type ListPopularUseCase struct {
	itemRepo faq.ItemRepository
	logger   logger.Interface
}

func NewListPopularUseCase(itemRepo faq.ItemRepository, logger logger.Interface) *ListPopularUseCase {
	return &ListPopularUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *ListPopularUseCase) Execute(ctx context.Context, query ListPopularQuery) (*ListPopularResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultPopularLimit
	}

	items, err := uc.itemRepo.ListPopular(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list popular faq items", "error", err)
		return nil, err
	}

	popular := make([]PopularItem, 0, len(items))
	for _, item := range items {
		popular = append(popular, PopularItem{
			ID:        item.ID(),
			Question:  item.Question(),
			ViewCount: item.ViewCount(),
		})
	}

	return &ListPopularResult{Items: popular}, nil
}
