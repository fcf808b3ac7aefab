package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"unibot/internal/domain/faq"
	"unibot/internal/infrastructure/persistence/mappers"
	"unibot/internal/infrastructure/persistence/models"
	"unibot/internal/shared/constants"
	"unibot/internal/shared/db"
	apperrors "unibot/internal/shared/errors"
)

type FavoriteRepository struct {
	db     *gorm.DB
	mapper mappers.FAQMapper
}

func NewFavoriteRepository(gdb *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{
		db:     gdb,
		mapper: mappers.NewFAQMapper(),
	}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, itemID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := &models.UserFavoriteModel{UserID: userID, ItemID: itemID}
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("item is already in favorites")
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, itemID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&models.UserFavoriteModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("item is not in favorites")
	}

	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]*faq.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var itemModels []*models.FAQItemModel
	if err := tx.
		Joins(fmt.Sprintf("JOIN %s ON %s.item_id = %s.id",
			constants.TableUserFavorites, constants.TableUserFavorites, constants.TableFAQItems)).
		Where(constants.TableUserFavorites+".user_id = ?", userID).
		Where(constants.TableFAQItems+".is_active = ?", true).
		Order(constants.TableUserFavorites + ".created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	return r.mapper.ItemsToEntities(itemModels)
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, itemID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.UserFavoriteModel{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return count > 0, nil
}
