package usecases

import (
	"context"

	"unibot/internal/domain/document"
	"unibot/internal/shared/config"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
	"unibot/internal/shared/search"
)

type SearchDocumentsQuery struct {
	Query string
	Limit int
}

type DocumentHit struct {
	DocumentID uint
	Name       string
	Category   string
	Score      int
}

type SearchDocumentsResult struct {
	Hits []DocumentHit
}

type SearchDocumentsUseCase struct {
	documentRepo document.Repository
	cfg          config.SearchConfig
	logger       logger.Interface
}

func NewSearchDocumentsUseCase(documentRepo document.Repository, cfg config.SearchConfig, logger logger.Interface) *SearchDocumentsUseCase {
	return &SearchDocumentsUseCase{
		documentRepo: documentRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

func (uc *SearchDocumentsUseCase) Execute(ctx context.Context, query SearchDocumentsQuery) (*SearchDocumentsResult, error) {
	if search.QueryTooShort(query.Query, uc.cfg.MinQueryLen) {
		return nil, errors.NewValidationError("search query is too short")
	}

	documents, err := uc.documentRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load documents for search", "error", err)
		return nil, err
	}

	byID := make(map[uint]*document.Document, len(documents))
	candidates := make([]search.Candidate, 0, len(documents))
	for _, d := range documents {
		byID[d.ID()] = d
		candidates = append(candidates, search.Candidate{
			ID:   d.ID(),
			Text: d.SearchText(),
		})
	}

	limit := query.Limit
	if limit <= 0 {
		limit = uc.cfg.Limit
	}
	matches := search.Rank(query.Query, candidates, limit, uc.cfg.Threshold)

	hits := make([]DocumentHit, 0, len(matches))
	for _, m := range matches {
		d := byID[m.ID]
		hits = append(hits, DocumentHit{
			DocumentID: d.ID(),
			Name:       d.Name(),
			Category:   d.Category(),
			Score:      m.Score,
		})
	}

	return &SearchDocumentsResult{Hits: hits}, nil
}
