package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"unibot/internal/domain/schedule"
	"unibot/internal/infrastructure/persistence/mappers"
	"unibot/internal/infrastructure/persistence/models"
	"unibot/internal/shared/biztime"
	"unibot/internal/shared/db"
	apperrors "unibot/internal/shared/errors"
)

type ScheduleRepository struct {
	db     *gorm.DB
	mapper mappers.ScheduleMapper
}

func NewScheduleRepository(gdb *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{
		db:     gdb,
		mapper: mappers.NewScheduleMapper(),
	}
}

func (r *ScheduleRepository) Save(ctx context.Context, e *schedule.Event) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save schedule event: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *ScheduleRepository) Update(ctx context.Context, e *schedule.Event) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ScheduleEventModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update schedule event: %w", result.Error)
	}

	return nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id uint) (*schedule.Event, error) {
	var model models.ScheduleEventModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("schedule event not found")
		}
		return nil, fmt.Errorf("failed to find schedule event: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ScheduleRepository) List(ctx context.Context, filter schedule.Filter) ([]*schedule.Event, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.ScheduleEventModel{}), filter)

	if !filter.From.IsZero() {
		query = query.Where("starts_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("starts_at < ?", filter.To)
	}

	var eventModels []*models.ScheduleEventModel
	if err := query.Order("starts_at ASC").Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list schedule events: %w", err)
	}

	return r.mapper.ToEntities(eventModels)
}

func (r *ScheduleRepository) ListUpcoming(ctx context.Context, filter schedule.Filter, limit int) ([]*schedule.Event, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.ScheduleEventModel{}), filter).
		Where("starts_at >= ?", biztime.NowUTC()).
		Order("starts_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var eventModels []*models.ScheduleEventModel
	if err := query.Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	return r.mapper.ToEntities(eventModels)
}

// applyFilter applies scope and type conditions. Scope fields match events
// with an equal value or an empty (everyone) value.
func (r *ScheduleRepository) applyFilter(query *gorm.DB, filter schedule.Filter) *gorm.DB {
	query = query.Where("is_cancelled = ?", false)

	if filter.Type != nil {
		query = query.Where("event_type = ?", filter.Type.String())
	}
	if filter.GroupName != "" {
		query = query.Where("group_name = ? OR group_name = ''", filter.GroupName)
	}
	if filter.Faculty != "" {
		query = query.Where("faculty = ? OR faculty = ''", filter.Faculty)
	}
	if filter.Course != 0 {
		query = query.Where("course = ? OR course = 0", filter.Course)
	}

	return query
}
