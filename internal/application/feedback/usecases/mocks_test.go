package usecases

import (
	"context"

	"unibot/internal/domain/feedback"
	"unibot/internal/shared/logger"
)

type mockFeedbackRepository struct {
	SaveFunc            func(ctx context.Context, f *feedback.Feedback) error
	UpdateFunc          func(ctx context.Context, f *feedback.Feedback) error
	GetByIDFunc         func(ctx context.Context, id uint) (*feedback.Feedback, error)
	ListUnprocessedFunc func(ctx context.Context, limit int) ([]*feedback.Feedback, error)
	GetStatsFunc        func(ctx context.Context) (*feedback.Stats, error)
}

func (m *mockFeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockFeedbackRepository) Update(ctx context.Context, f *feedback.Feedback) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockFeedbackRepository) GetByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) ListUnprocessed(ctx context.Context, limit int) ([]*feedback.Feedback, error) {
	if m.ListUnprocessedFunc != nil {
		return m.ListUnprocessedFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) GetStats(ctx context.Context) (*feedback.Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
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
