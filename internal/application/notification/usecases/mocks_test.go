package usecases

import (
	"context"
	"time"

	"unibot/internal/domain/notification"
	"unibot/internal/domain/user"
	"unibot/internal/shared/logger"
)

type mockNotificationRepository struct {
	SaveFunc    func(ctx context.Context, n *notification.Notification) error
	UpdateFunc  func(ctx context.Context, n *notification.Notification) error
	GetByIDFunc func(ctx context.Context, id uint) (*notification.Notification, error)
	ListDueFunc func(ctx context.Context, now time.Time) ([]*notification.Notification, error)
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return n.SetID(1)
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListDue(ctx context.Context, now time.Time) ([]*notification.Notification, error) {
	if m.ListDueFunc != nil {
		return m.ListDueFunc(ctx, now)
	}
	return nil, nil
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

// mockSender records sent messages and fails delivery for chat IDs listed
// in rejects.
type mockSender struct {
	Sent    []sentMessage
	rejects map[int64]error
}

type sentMessage struct {
	ChatID int64
	Text   string
}

func (m *mockSender) SendMessage(chatID int64, text string) error {
	if err, ok := m.rejects[chatID]; ok {
		return err
	}
	m.Sent = append(m.Sent, sentMessage{ChatID: chatID, Text: text})
	return nil
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
