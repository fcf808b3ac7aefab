package usecases

import (
	"context"

	"unibot/internal/domain/faq"
	"unibot/internal/shared/logger"
	"unibot/internal/shared/markdown"
)

type GetItemQuery struct {
	ItemID uint
	// UserID, when non-zero, resolves the favorite flag for that user.
	UserID uint
}

type ItemView struct {
	ID              uint
	CategoryID      uint
	Question        string
	AnswerHTML      string
	Links           []faq.Link
	ViewCount       int64
	HelpfulCount    int64
	NotHelpfulCount int64
	IsFavorite      bool
}

type GetItemResult struct {
	Item ItemView
}

type GetItemUseCase struct {
	itemRepo     faq.ItemRepository
	favoriteRepo faq.FavoriteRepository
	renderer     markdown.Service
	logger       logger.Interface
}

func NewGetItemUseCase(
	itemRepo faq.ItemRepository,
	favoriteRepo faq.FavoriteRepository,
	renderer markdown.Service,
	logger logger.Interface,
) *GetItemUseCase {
	return &GetItemUseCase{
		itemRepo:     itemRepo,
		favoriteRepo: favoriteRepo,
		renderer:     renderer,
		logger:       logger,
	}
}

func (uc *GetItemUseCase) Execute(ctx context.Context, query GetItemQuery) (*GetItemResult, error) {
	item, err := uc.itemRepo.GetByID(ctx, query.ItemID)
	if err != nil {
		return nil, err
	}

	// View counting is a fire-and-forget counter bump, a failure only logs.
	if err := uc.itemRepo.IncrementViewCount(ctx, item.ID()); err != nil {
		uc.logger.Warnw("failed to bump faq view count", "error", err, "item_id", item.ID())
	}

	answerHTML, err := uc.renderer.ToHTMLSanitized(item.Answer())
	if err != nil {
		uc.logger.Errorw("failed to render faq answer", "error", err, "item_id", item.ID())
		answerHTML = item.Answer()
	}

	isFavorite := false
	if query.UserID != 0 {
		isFavorite, err = uc.favoriteRepo.Exists(ctx, query.UserID, item.ID())
		if err != nil {
			uc.logger.Warnw("failed to resolve favorite flag", "error", err)
			isFavorite = false
		}
	}

	return &GetItemResult{
		Item: ItemView{
			ID:              item.ID(),
			CategoryID:      item.CategoryID(),
			Question:        item.Question(),
			AnswerHTML:      answerHTML,
			Links:           item.Links(),
			ViewCount:       item.ViewCount() + 1,
			HelpfulCount:    item.HelpfulCount(),
			NotHelpfulCount: item.NotHelpfulCount(),
			IsFavorite:      isFavorite,
		},
	}, nil
}
