package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"unibot/internal/domain/faq"
	"unibot/internal/infrastructure/persistence/models"
	"unibot/internal/shared/db"
)

type FAQRatingRepository struct {
	db *gorm.DB
}

func NewFAQRatingRepository(gdb *gorm.DB) *FAQRatingRepository {
	return &FAQRatingRepository{db: gdb}
}

func (r *FAQRatingRepository) Upsert(ctx context.Context, rating faq.Rating) (*faq.Rating, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var existing models.FAQRatingModel
	err := tx.
		Where("user_id = ? AND item_id = ?", rating.UserID, rating.ItemID).
		First(&existing).Error

	switch {
	case err == nil:
		previous := &faq.Rating{
			UserID:  existing.UserID,
			ItemID:  existing.ItemID,
			Helpful: existing.Helpful,
		}
		if err := tx.Model(&models.FAQRatingModel{}).
			Where("id = ?", existing.ID).
			Update("helpful", rating.Helpful).Error; err != nil {
			return nil, fmt.Errorf("failed to update rating: %w", err)
		}
		return previous, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		model := &models.FAQRatingModel{
			UserID:  rating.UserID,
			ItemID:  rating.ItemID,
			Helpful: rating.Helpful,
		}
		if err := tx.Create(model).Error; err != nil {
			return nil, fmt.Errorf("failed to save rating: %w", err)
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("failed to look up rating: %w", err)
	}
}

func (r *FAQRatingRepository) Get(ctx context.Context, userID, itemID uint) (*faq.Rating, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.FAQRatingModel
	if err := tx.
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}

	return &faq.Rating{
		UserID:  model.UserID,
		ItemID:  model.ItemID,
		Helpful: model.Helpful,
	}, nil
}
