package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"unibot/internal/domain/feedback"
	"unibot/internal/infrastructure/persistence/mappers"
	"unibot/internal/infrastructure/persistence/models"
	"unibot/internal/shared/db"
	apperrors "unibot/internal/shared/errors"
)

type FeedbackRepository struct {
	db     *gorm.DB
	mapper mappers.FeedbackMapper
}

func NewFeedbackRepository(gdb *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db:     gdb,
		mapper: mappers.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *FeedbackRepository) Update(ctx context.Context, f *feedback.Feedback) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FeedbackModel{}).
		Where("id = ?", model.ID).
		Update("is_processed", model.IsProcessed)

	if result.Error != nil {
		return fmt.Errorf("failed to update feedback: %w", result.Error)
	}

	return nil
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	var model models.FeedbackModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("feedback not found")
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *FeedbackRepository) ListUnprocessed(ctx context.Context, limit int) ([]*feedback.Feedback, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("is_processed = ?", false).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var feedbackModels []models.FeedbackModel
	if err := query.Find(&feedbackModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list unprocessed feedback: %w", err)
	}

	entries := make([]*feedback.Feedback, len(feedbackModels))
	for i := range feedbackModels {
		f, err := r.mapper.ToEntity(&feedbackModels[i])
		if err != nil {
			return nil, err
		}
		entries[i] = f
	}

	return entries, nil
}

func (r *FeedbackRepository) GetStats(ctx context.Context) (*feedback.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	stats := &feedback.Stats{RatingDistribution: make(map[int]int64)}

	var avg *float64
	if err := tx.Model(&models.FeedbackModel{}).
		Where("type = ?", feedback.TypeRating.String()).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		return nil, fmt.Errorf("failed to average ratings: %w", err)
	}
	if avg != nil {
		stats.AvgRating = *avg
	}

	type ratingCount struct {
		Rating int
		Count  int64
	}
	var rows []ratingCount
	if err := tx.Model(&models.FeedbackModel{}).
		Where("type = ?", feedback.TypeRating.String()).
		Select("rating, COUNT(*) AS count").
		Group("rating").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count ratings: %w", err)
	}
	for _, row := range rows {
		stats.RatingDistribution[row.Rating] = row.Count
	}

	if err := tx.Model(&models.FeedbackModel{}).
		Where("type = ?", feedback.TypeSuggestion.String()).
		Count(&stats.SuggestionCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count suggestions: %w", err)
	}
	if err := tx.Model(&models.FeedbackModel{}).
		Where("type = ?", feedback.TypeComplaint.String()).
		Count(&stats.ComplaintCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count complaints: %w", err)
	}
	if err := tx.Model(&models.FeedbackModel{}).
		Where("is_processed = ?", false).
		Count(&stats.Unprocessed).Error; err != nil {
		return nil, fmt.Errorf("failed to count unprocessed feedback: %w", err)
	}

	return stats, nil
}
