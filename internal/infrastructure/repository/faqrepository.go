package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"unibot/internal/domain/faq"
	"unibot/internal/infrastructure/persistence/mappers"
	"unibot/internal/infrastructure/persistence/models"
	"unibot/internal/shared/db"
	apperrors "unibot/internal/shared/errors"
)

type FAQCategoryRepository struct {
	db     *gorm.DB
	mapper mappers.FAQMapper
}

func NewFAQCategoryRepository(gdb *gorm.DB) *FAQCategoryRepository {
	return &FAQCategoryRepository{
		db:     gdb,
		mapper: mappers.NewFAQMapper(),
	}
}

func (r *FAQCategoryRepository) Save(ctx context.Context, c *faq.Category) error {
	model := r.mapper.CategoryToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("category slug already exists")
		}
		return fmt.Errorf("failed to save category: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *FAQCategoryRepository) Update(ctx context.Context, c *faq.Category) error {
	model := r.mapper.CategoryToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FAQCategoryModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}

	return nil
}

func (r *FAQCategoryRepository) GetByID(ctx context.Context, id uint) (*faq.Category, error) {
	var model models.FAQCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.CategoryToEntity(&model)
}

func (r *FAQCategoryRepository) ListActive(ctx context.Context) ([]*faq.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var categoryModels []*models.FAQCategoryModel
	if err := tx.
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*faq.Category, 0, len(categoryModels))
	for _, model := range categoryModels {
		c, err := r.mapper.CategoryToEntity(model)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}

type FAQItemRepository struct {
	db     *gorm.DB
	mapper mappers.FAQMapper
}

func NewFAQItemRepository(gdb *gorm.DB) *FAQItemRepository {
	return &FAQItemRepository{
		db:     gdb,
		mapper: mappers.NewFAQMapper(),
	}
}

func (r *FAQItemRepository) Save(ctx context.Context, i *faq.Item) error {
	model, err := r.mapper.ItemToModel(i)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}

	return i.SetID(model.ID)
}

func (r *FAQItemRepository) Update(ctx context.Context, i *faq.Item) error {
	model, err := r.mapper.ItemToModel(i)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FAQItemModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}

	return nil
}

func (r *FAQItemRepository) GetByID(ctx context.Context, id uint) (*faq.Item, error) {
	var model models.FAQItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("FAQ item not found")
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	return r.mapper.ItemToEntity(&model)
}

func (r *FAQItemRepository) ListActive(ctx context.Context) ([]*faq.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var itemModels []*models.FAQItemModel
	if err := tx.
		Where("is_active = ?", true).
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return r.mapper.ItemsToEntities(itemModels)
}

func (r *FAQItemRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*faq.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var itemModels []*models.FAQItemModel
	if err := tx.
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("is_pinned DESC, sort_order ASC, id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list items by category: %w", err)
	}

	return r.mapper.ItemsToEntities(itemModels)
}

func (r *FAQItemRepository) ListPopular(ctx context.Context, limit int) ([]*faq.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var itemModels []*models.FAQItemModel
	if err := tx.
		Where("is_active = ?", true).
		Order("view_count DESC").
		Limit(limit).
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list popular items: %w", err)
	}

	return r.mapper.ItemsToEntities(itemModels)
}

func (r *FAQItemRepository) IncrementViewCount(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.FAQItemModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment view count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("FAQ item not found")
	}

	return nil
}
