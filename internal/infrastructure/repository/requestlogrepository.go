package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"unibot/internal/domain/analytics"
	"unibot/internal/infrastructure/persistence/mappers"
	"unibot/internal/infrastructure/persistence/models"
	"unibot/internal/shared/db"
)

type RequestLogRepository struct {
	db     *gorm.DB
	mapper mappers.RequestLogMapper
}

func NewRequestLogRepository(gdb *gorm.DB) *RequestLogRepository {
	return &RequestLogRepository{
		db:     gdb,
		mapper: mappers.NewRequestLogMapper(),
	}
}

func (r *RequestLogRepository) Save(ctx context.Context, entry *analytics.RequestLog) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request log: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *RequestLogRepository) GetStats(ctx context.Context, from, to time.Time) (*analytics.RequestStats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	window := tx.Model(&models.RequestLogModel{}).
		Where("created_at >= ? AND created_at < ?", from, to)

	stats := &analytics.RequestStats{ByType: make(map[analytics.RequestType]int64)}

	if err := window.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count request logs: %w", err)
	}

	type typeCount struct {
		RequestType string
		Count       int64
	}
	var typeRows []typeCount
	if err := window.Session(&gorm.Session{}).
		Select("request_type, COUNT(*) AS count").
		Group("request_type").
		Scan(&typeRows).Error; err != nil {
		return nil, fmt.Errorf("failed to count request logs by type: %w", err)
	}
	for _, row := range typeRows {
		stats.ByType[analytics.RequestType(row.RequestType)] = row.Count
	}

	type categoryCount struct {
		Category string
		Count    int64
	}
	var categoryRows []categoryCount
	if err := window.Session(&gorm.Session{}).
		Select("category, COUNT(*) AS count").
		Where("category <> ''").
		Group("category").
		Order("count DESC").
		Limit(10).
		Scan(&categoryRows).Error; err != nil {
		return nil, fmt.Errorf("failed to count request logs by category: %w", err)
	}
	for _, row := range categoryRows {
		stats.TopCategories = append(stats.TopCategories, analytics.CategoryCount{
			Category: row.Category,
			Count:    row.Count,
		})
	}

	var avg *float64
	if err := window.Session(&gorm.Session{}).
		Select("AVG(response_time_ms)").
		Scan(&avg).Error; err != nil {
		return nil, fmt.Errorf("failed to average response time: %w", err)
	}
	if avg != nil {
		stats.AvgResponseMs = *avg
	}

	// Per-day bucketing in Go keeps the date arithmetic portable between
	// sqlite and mysql.
	var created []time.Time
	if err := window.Session(&gorm.Session{}).
		Pluck("created_at", &created).Error; err != nil {
		return nil, fmt.Errorf("failed to load request log timestamps: %w", err)
	}
	byDay := make(map[time.Time]int64)
	for _, ts := range created {
		day := time.Date(ts.UTC().Year(), ts.UTC().Month(), ts.UTC().Day(), 0, 0, 0, 0, time.UTC)
		byDay[day]++
	}
	for day, count := range byDay {
		stats.PerDay = append(stats.PerDay, analytics.DayCount{Date: day, Count: count})
	}
	sort.Slice(stats.PerDay, func(i, j int) bool {
		return stats.PerDay[i].Date.Before(stats.PerDay[j].Date)
	})

	return stats, nil
}

func (r *RequestLogRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.RequestLogModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count request logs: %w", err)
	}

	return count, nil
}
