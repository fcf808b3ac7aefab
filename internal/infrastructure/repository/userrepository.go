package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"unibot/internal/domain/user"
	"unibot/internal/infrastructure/persistence/mappers"
	"unibot/internal/infrastructure/persistence/models"
	"unibot/internal/shared/biztime"
	"unibot/internal/shared/db"
	apperrors "unibot/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("user already exists")
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "telegram_id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("telegram_id = ?", telegramID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) Search(ctx context.Context, query string, limit int) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	like := "%" + query + "%"

	var userModels []*models.UserModel
	q := tx.
		Where("username LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR full_name LIKE ? OR student_id LIKE ?",
			like, like, like, like, like).
		Order("last_activity DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return r.mapper.ToEntities(userModels)
}

func (r *UserRepository) ListByFilter(ctx context.Context, filter user.Filter) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{})

	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.GroupName != nil {
		query = query.Where("group_name = ?", *filter.GroupName)
	}
	if filter.Course != nil {
		query = query.Where("course = ?", *filter.Course)
	}
	if filter.Faculty != nil {
		query = query.Where("faculty = ?", *filter.Faculty)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.NotificationsOnly {
		query = query.Where("notifications_enabled = ?", true)
	}

	var userModels []*models.UserModel
	if err := query.Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.mapper.ToEntities(userModels)
}

func (r *UserRepository) ListStaff(ctx context.Context) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var userModels []*models.UserModel
	if err := tx.
		Where("role IN ?", []string{user.RoleModerator.String(), user.RoleAdmin.String()}).
		Where("is_active = ?", true).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	return r.mapper.ToEntities(userModels)
}

func (r *UserRepository) GetStats(ctx context.Context) (*user.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	stats := &user.Stats{ByRole: make(map[user.Role]int64)}

	if err := tx.Model(&models.UserModel{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := tx.Model(&models.UserModel{}).
		Where("is_active = ?", true).
		Count(&stats.Active).Error; err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	if err := tx.Model(&models.UserModel{}).
		Where("is_verified = ?", true).
		Count(&stats.Verified).Error; err != nil {
		return nil, fmt.Errorf("failed to count verified users: %w", err)
	}
	if err := tx.Model(&models.UserModel{}).
		Where("created_at >= ?", biztime.StartOfDayUTC(biztime.NowUTC())).
		Count(&stats.NewToday).Error; err != nil {
		return nil, fmt.Errorf("failed to count new users: %w", err)
	}

	type roleCount struct {
		Role  string
		Count int64
	}
	var rows []roleCount
	if err := tx.Model(&models.UserModel{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count users by role: %w", err)
	}
	for _, row := range rows {
		stats.ByRole[user.Role(row.Role)] = row.Count
	}

	return stats, nil
}

func (r *UserRepository) CountActiveSince(ctx context.Context, days int) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	since := biztime.NowUTC().AddDate(0, 0, -days)

	var count int64
	if err := tx.Model(&models.UserModel{}).
		Where("last_activity >= ?", since).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}

func (r *UserRepository) CountNewSince(ctx context.Context, days int) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	since := biztime.NowUTC().AddDate(0, 0, -days)

	var count int64
	if err := tx.Model(&models.UserModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count new users: %w", err)
	}
	return count, nil
}
