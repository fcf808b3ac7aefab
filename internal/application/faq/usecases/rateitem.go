package usecases

import (
	"context"

	"unibot/internal/domain/faq"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type RateItemCommand struct {
	ItemID  uint
	UserID  uint
	Helpful bool
}

type RateItemResult struct {
	HelpfulCount    int64
	NotHelpfulCount int64
	Changed         bool
}

type RateItemUseCase struct {
	itemRepo   faq.ItemRepository
	ratingRepo faq.RatingRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewRateItemUseCase(
	itemRepo faq.ItemRepository,
	ratingRepo faq.RatingRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *RateItemUseCase {
	return &RateItemUseCase{
		itemRepo:   itemRepo,
		ratingRepo: ratingRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *RateItemUseCase) Execute(ctx context.Context, cmd RateItemCommand) (*RateItemResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	var result *RateItemResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err := uc.itemRepo.GetByID(txCtx, cmd.ItemID)
		if err != nil {
			return err
		}

		previous, err := uc.ratingRepo.Upsert(txCtx, faq.Rating{
			UserID:  cmd.UserID,
			ItemID:  cmd.ItemID,
			Helpful: cmd.Helpful,
		})
		if err != nil {
			return err
		}

		// Repeating the same vote changes nothing.
		if previous != nil && previous.Helpful == cmd.Helpful {
			result = &RateItemResult{
				HelpfulCount:    item.HelpfulCount(),
				NotHelpfulCount: item.NotHelpfulCount(),
				Changed:         false,
			}
			return nil
		}

		hadOpposite := previous != nil
		item.Rate(cmd.Helpful, hadOpposite)
		if err := uc.itemRepo.Update(txCtx, item); err != nil {
			return err
		}

		result = &RateItemResult{
			HelpfulCount:    item.HelpfulCount(),
			NotHelpfulCount: item.NotHelpfulCount(),
			Changed:         true,
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to rate faq item", "error", err, "item_id", cmd.ItemID)
		return nil, err
	}

	return result, nil
}
