package usecases

import (
	"context"

	"unibot/internal/domain/faq"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type FavoriteCommand struct {
	UserID uint
	ItemID uint
}

type ListFavoritesQuery struct {
	UserID uint
}

type ListFavoritesResult struct {
	Items []ItemSummary
}

type AddFavoriteUseCase struct {
	itemRepo     faq.ItemRepository
	favoriteRepo faq.FavoriteRepository
	logger       logger.Interface
}

func NewAddFavoriteUseCase(
	itemRepo faq.ItemRepository,
	favoriteRepo faq.FavoriteRepository,
	logger logger.Interface,
) *AddFavoriteUseCase {
	return &AddFavoriteUseCase{
		itemRepo:     itemRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (uc *AddFavoriteUseCase) Execute(ctx context.Context, cmd FavoriteCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	// The item must exist; favorites never point at deleted entries.
	if _, err := uc.itemRepo.GetByID(ctx, cmd.ItemID); err != nil {
		return err
	}

	if err := uc.favoriteRepo.Add(ctx, cmd.UserID, cmd.ItemID); err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to add favorite", "error", err, "item_id", cmd.ItemID)
		}
		return err
	}
	return nil
}

type RemoveFavoriteUseCase struct {
	favoriteRepo faq.FavoriteRepository
	logger       logger.Interface
}

func NewRemoveFavoriteUseCase(favoriteRepo faq.FavoriteRepository, logger logger.Interface) *RemoveFavoriteUseCase {
	return &RemoveFavoriteUseCase{
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (uc *RemoveFavoriteUseCase) Execute(ctx context.Context, cmd FavoriteCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.favoriteRepo.Remove(ctx, cmd.UserID, cmd.ItemID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to remove favorite", "error", err, "item_id", cmd.ItemID)
		}
		return err
	}
	return nil
}

type ListFavoritesUseCase struct {
	favoriteRepo faq.FavoriteRepository
	logger       logger.Interface
}

func NewListFavoritesUseCase(favoriteRepo faq.FavoriteRepository, logger logger.Interface) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (uc *ListFavoritesUseCase) Execute(ctx context.Context, query ListFavoritesQuery) (*ListFavoritesResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	items, err := uc.favoriteRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list favorites", "error", err, "user_id", query.UserID)
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

	return &ListFavoritesResult{Items: summaries}, nil
}
