package usecases

import (
	"context"

	"unibot/internal/domain/schedule"
	"unibot/internal/shared/logger"
)

type mockEventRepository struct {
	SaveFunc         func(ctx context.Context, e *schedule.Event) error
	UpdateFunc       func(ctx context.Context, e *schedule.Event) error
	GetByIDFunc      func(ctx context.Context, id uint) (*schedule.Event, error)
	ListFunc         func(ctx context.Context, filter schedule.Filter) ([]*schedule.Event, error)
	ListUpcomingFunc func(ctx context.Context, filter schedule.Filter, limit int) ([]*schedule.Event, error)
}

func (m *mockEventRepository) Save(ctx context.Context, e *schedule.Event) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEventRepository) Update(ctx context.Context, e *schedule.Event) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id uint) (*schedule.Event, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEventRepository) List(ctx context.Context, filter schedule.Filter) ([]*schedule.Event, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockEventRepository) ListUpcoming(ctx context.Context, filter schedule.Filter, limit int) ([]*schedule.Event, error) {
	if m.ListUpcomingFunc != nil {
		return m.ListUpcomingFunc(ctx, filter, limit)
	}
	return nil, nil
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
