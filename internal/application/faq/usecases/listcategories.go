package usecases

import (
	"context"

	"unibot/internal/domain/faq"
	"unibot/internal/shared/logger"
)

type CategorySummary struct {
	ID          uint
	Name        string
	Slug        string
	Description string
	Title       string
}

type ListCategoriesResult struct {
	Categories []CategorySummary
}

type ListCategoriesUseCase struct {
	categoryRepo faq.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo faq.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesResult, error) {
	categories, err := uc.categoryRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list faq categories", "error", err)
		return nil, err
	}

	summaries := make([]CategorySummary, 0, len(categories))
	for _, c := range categories {
		summaries = append(summaries, CategorySummary{
			ID:          c.ID(),
			Name:        c.Name(),
			Slug:        c.Slug(),
			Description: c.Description(),
			Title:       c.DisplayTitle(),
		})
	}

	return &ListCategoriesResult{Categories: summaries}, nil
}
