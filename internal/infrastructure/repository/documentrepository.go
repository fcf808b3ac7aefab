package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"unibot/internal/domain/document"
	"unibot/internal/infrastructure/persistence/mappers"
	"unibot/internal/infrastructure/persistence/models"
	"unibot/internal/shared/db"
	apperrors "unibot/internal/shared/errors"
)

type DocumentRepository struct {
	db     *gorm.DB
	mapper mappers.DocumentMapper
}

func NewDocumentRepository(gdb *gorm.DB) *DocumentRepository {
	return &DocumentRepository{
		db:     gdb,
		mapper: mappers.NewDocumentMapper(),
	}
}

func (r *DocumentRepository) Save(ctx context.Context, d *document.Document) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *DocumentRepository) Update(ctx context.Context, d *document.Document) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.DocumentModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update document: %w", result.Error)
	}

	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uint) (*document.Document, error) {
	var model models.DocumentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("document not found")
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DocumentRepository) ListActive(ctx context.Context) ([]*document.Document, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var documentModels []*models.DocumentModel
	if err := tx.
		Where("is_active = ?", true).
		Find(&documentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return r.mapper.ToEntities(documentModels)
}

func (r *DocumentRepository) ListByCategory(ctx context.Context, category string) ([]*document.Document, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var documentModels []*models.DocumentModel
	if err := tx.
		Where("category = ? AND is_active = ?", category, true).
		Order("name ASC").
		Find(&documentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents by category: %w", err)
	}

	return r.mapper.ToEntities(documentModels)
}

func (r *DocumentRepository) ListCategories(ctx context.Context) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var categories []string
	if err := tx.Model(&models.DocumentModel{}).
		Where("is_active = ?", true).
		Where("category <> ''").
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list document categories: %w", err)
	}

	return categories, nil
}

func (r *DocumentRepository) IncrementDownloadCount(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.DocumentModel{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment download count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("document not found")
	}

	return nil
}
