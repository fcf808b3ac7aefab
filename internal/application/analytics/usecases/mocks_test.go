package usecases

import (
	"context"
	"time"

	"unibot/internal/domain/analytics"
	"unibot/internal/domain/user"
	"unibot/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc         func(ctx context.Context, r *analytics.RequestLog) error
	GetStatsFunc     func(ctx context.Context, from, to time.Time) (*analytics.RequestStats, error)
	CountBetweenFunc func(ctx context.Context, from, to time.Time) (int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, r *analytics.RequestLog) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) GetStats(ctx context.Context, from, to time.Time) (*analytics.RequestStats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockRequestRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.CountBetweenFunc != nil {
		return m.CountBetweenFunc(ctx, from, to)
	}
	return 0, nil
}

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	UpdateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByTelegramIDFunc  func(ctx context.Context, telegramID int64) (*user.User, error)
	SearchFunc           func(ctx context.Context, query string, limit int) ([]*user.User, error)
	ListByFilterFunc     func(ctx context.Context, filter user.Filter) ([]*user.User, error)
	ListStaffFunc        func(ctx context.Context) ([]*user.User, error)
	GetStatsFunc         func(ctx context.Context) (*user.Stats, error)
	CountActiveSinceFunc func(ctx context.Context, days int) (int64, error)
	CountNewSinceFunc    func(ctx context.Context, days int) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*user.User, error) {
	if m.GetByTelegramIDFunc != nil {
		return m.GetByTelegramIDFunc(ctx, telegramID)
	}
	return nil, nil
}

func (m *mockUserRepository) Search(ctx context.Context, query string, limit int) ([]*user.User, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByFilter(ctx context.Context, filter user.Filter) ([]*user.User, error) {
	if m.ListByFilterFunc != nil {
		return m.ListByFilterFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockUserRepository) ListStaff(ctx context.Context) ([]*user.User, error) {
	if m.ListStaffFunc != nil {
		return m.ListStaffFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) GetStats(ctx context.Context) (*user.Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) CountActiveSince(ctx context.Context, days int) (int64, error) {
	if m.CountActiveSinceFunc != nil {
		return m.CountActiveSinceFunc(ctx, days)
	}
	return 0, nil
}

func (m *mockUserRepository) CountNewSince(ctx context.Context, days int) (int64, error) {
	if m.CountNewSinceFunc != nil {
		return m.CountNewSinceFunc(ctx, days)
	}
	return 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
