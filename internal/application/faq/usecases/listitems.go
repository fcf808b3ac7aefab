package usecases

import (
	"context"

	"unibot/internal/domain/faq"
	"unibot/internal/shared/logger"
)

type ListItemsQuery struct {
	CategoryID uint
}

type ItemSummary struct {
	ID       uint
	Question string
	IsPinned bool
}

type ListItemsResult struct {
	CategoryTitle string
	Items         []ItemSummary
}

type ListItemsUseCase struct {
	categoryRepo faq.CategoryRepository
	itemRepo     faq.ItemRepository
	logger       logger.Interface
}

func NewListItemsUseCase(
	categoryRepo faq.CategoryRepository,
	itemRepo faq.ItemRepository,
	logger logger.Interface,
) *ListItemsUseCase {
	return &ListItemsUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		logger:       logger,
	}
}

func (uc *ListItemsUseCase) Execute(ctx context.Context, query ListItemsQuery) (*ListItemsResult, error) {
	category, err := uc.categoryRepo.GetByID(ctx, query.CategoryID)
	if err != nil {
		return nil, err
	}

	items, err := uc.itemRepo.ListByCategory(ctx, category.ID())
	if err != nil {
		uc.logger.Errorw("failed to list faq items", "error", err, "category_id", category.ID())
		return nil, err
	}

	summaries := make([]ItemSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, ItemSummary{
			ID:       item.ID(),
			Question: item.Question(),
			IsPinned: item.IsPinned(),
		})
	}

	return &ListItemsResult{
		CategoryTitle: category.DisplayTitle(),
		Items:         summaries,
	}, nil
}
