package usecases

import (
	"context"

	"unibot/internal/domain/faq"
	"unibot/internal/shared/config"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
	"unibot/internal/shared/search"
)

type SearchFAQQuery struct {
	Query string
	Limit int
	// Auto marks an implicit search triggered by a plain text message; it
	// raises the score threshold so casual chatter does not match.
	Auto bool
}

type SearchHit struct {
	ItemID     uint
	CategoryID uint
	Question   string
	Score      int
}

type SearchFAQResult struct {
	Hits []SearchHit
}

type SearchFAQUseCase struct {
	itemRepo faq.ItemRepository
	cfg      config.SearchConfig
	logger   logger.Interface
}

func NewSearchFAQUseCase(itemRepo faq.ItemRepository, cfg config.SearchConfig, logger logger.Interface) *SearchFAQUseCase {
	return &SearchFAQUseCase{
		itemRepo: itemRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

func (uc *SearchFAQUseCase) Execute(ctx context.Context, query SearchFAQQuery) (*SearchFAQResult, error) {
	if search.QueryTooShort(query.Query, uc.cfg.MinQueryLen) {
		return nil, errors.NewValidationError("search query is too short")
	}

	items, err := uc.itemRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load faq items for search", "error", err)
		return nil, err
	}

	byID := make(map[uint]*faq.Item, len(items))
	candidates := make([]search.Candidate, 0, len(items))
	for _, item := range items {
		byID[item.ID()] = item
		candidates = append(candidates, search.Candidate{
			ID:   item.ID(),
			Text: item.SearchText(),
		})
	}

	threshold := uc.cfg.Threshold
	if query.Auto {
		threshold = uc.cfg.AutoThreshold
		if threshold <= 0 {
			threshold = search.AutoThreshold
		}
	}

	limit := query.Limit
	if limit <= 0 {
		limit = uc.cfg.Limit
	}
	matches := search.Rank(query.Query, candidates, limit, threshold)

	hits := make([]SearchHit, 0, len(matches))
	for _, m := range matches {
		item := byID[m.ID]
		hits = append(hits, SearchHit{
			ItemID:     item.ID(),
			CategoryID: item.CategoryID(),
			Question:   item.Question(),
			Score:      m.Score,
		})
	}

	return &SearchFAQResult{Hits: hits}, nil
}
