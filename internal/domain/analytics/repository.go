package analytics

import (
	"context"
	"time"
)

// CategoryCount is one row of a grouped count.
type CategoryCount struct {
	Category string
	Count    int64
}

// DayCount is a per-day request count keyed by UTC date.
type DayCount struct {
	Date  time.Time
	Count int64
}

// RequestStats aggregates request logs over a window.
type RequestStats struct {
	Total         int64
	ByType        map[RequestType]int64
	TopCategories []CategoryCount
	AvgResponseMs float64
	PerDay        []DayCount
}

type Repository interface {
	Save(ctx context.Context, r *RequestLog) error
	GetStats(ctx context.Context, from, to time.Time) (*RequestStats, error)
	// CountBetween counts logs created inside [from, to).
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
}
