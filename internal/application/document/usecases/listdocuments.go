package usecases

import (
	"context"

	"unibot/internal/domain/document"
	"unibot/internal/shared/logger"
)

type ListDocumentsQuery struct {
	Category string
}

type DocumentSummary struct {
	ID       uint
	Name     string
	Category string
	FileType string
}

type ListDocumentsResult struct {
	Documents []DocumentSummary
}

type ListCategoriesResult struct {
	Categories []string
}

type ListDocumentsUseCase struct {
	documentRepo document.Repository
	logger       logger.Interface
}

func NewListDocumentsUseCase(documentRepo document.Repository, logger logger.Interface) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{
		documentRepo: documentRepo,
		logger:       logger,
	}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, query ListDocumentsQuery) (*ListDocumentsResult, error) {
	var (
		documents []*document.Document
		err       error
	)
	if query.Category != "" {
		documents, err = uc.documentRepo.ListByCategory(ctx, query.Category)
	} else {
		documents, err = uc.documentRepo.ListActive(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list documents", "error", err, "category", query.Category)
		return nil, err
	}

	summaries := make([]DocumentSummary, 0, len(documents))
	for _, d := range documents {
		summaries = append(summaries, DocumentSummary{
			ID:       d.ID(),
			Name:     d.Name(),
			Category: d.Category(),
			FileType: d.FileType(),
		})
	}

	return &ListDocumentsResult{Documents: summaries}, nil
}

type ListCategoriesUseCase struct {
	documentRepo document.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(documentRepo document.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		documentRepo: documentRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesResult, error) {
	categories, err := uc.documentRepo.ListCategories(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list document categories", "error", err)
		return nil, err
	}
	return &ListCategoriesResult{Categories: categories}, nil
}
