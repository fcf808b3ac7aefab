package usecases

import (
	"context"

	"unibot/internal/domain/faq"
	"unibot/internal/shared/logger"
)

type mockCategoryRepository struct {
	SaveFunc       func(ctx context.Context, c *faq.Category) error
	UpdateFunc     func(ctx context.Context, c *faq.Category) error
	GetByIDFunc    func(ctx context.Context, id uint) (*faq.Category, error)
	ListActiveFunc func(ctx context.Context) ([]*faq.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *faq.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *faq.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*faq.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListActive(ctx context.Context) ([]*faq.Category, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockItemRepository struct {
	SaveFunc               func(ctx context.Context, i *faq.Item) error
	UpdateFunc             func(ctx context.Context, i *faq.Item) error
	GetByIDFunc            func(ctx context.Context, id uint) (*faq.Item, error)
	ListActiveFunc         func(ctx context.Context) ([]*faq.Item, error)
	ListByCategoryFunc     func(ctx context.Context, categoryID uint) ([]*faq.Item, error)
	ListPopularFunc        func(ctx context.Context, limit int) ([]*faq.Item, error)
	IncrementViewCountFunc func(ctx context.Context, id uint) error
}

func (m *mockItemRepository) Save(ctx context.Context, i *faq.Item) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return nil
}

func (m *mockItemRepository) Update(ctx context.Context, i *faq.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, id uint) (*faq.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockItemRepository) ListActive(ctx context.Context) ([]*faq.Item, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockItemRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*faq.Item, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockItemRepository) ListPopular(ctx context.Context, limit int) ([]*faq.Item, error) {
	if m.ListPopularFunc != nil {
		return m.ListPopularFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockItemRepository) IncrementViewCount(ctx context.Context, id uint) error {
	if m.IncrementViewCountFunc != nil {
		return m.IncrementViewCountFunc(ctx, id)
	}
	return nil
}

type mockRatingRepository struct {
	UpsertFunc func(ctx context.Context, r faq.Rating) (*faq.Rating, error)
	GetFunc    func(ctx context.Context, userID, itemID uint) (*faq.Rating, error)
}

func (m *mockRatingRepository) Upsert(ctx context.Context, r faq.Rating) (*faq.Rating, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, r)
	}
	return nil, nil
}

func (m *mockRatingRepository) Get(ctx context.Context, userID, itemID uint) (*faq.Rating, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, itemID)
	}
	return nil, nil
}

type mockFavoriteRepository struct {
	AddFunc        func(ctx context.Context, userID, itemID uint) error
	RemoveFunc     func(ctx context.Context, userID, itemID uint) error
	ListByUserFunc func(ctx context.Context, userID uint) ([]*faq.Item, error)
	ExistsFunc     func(ctx context.Context, userID, itemID uint) (bool, error)
}

func (m *mockFavoriteRepository) Add(ctx context.Context, userID, itemID uint) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, itemID)
	}
	return nil
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, userID, itemID uint) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, itemID)
	}
	return nil
}

func (m *mockFavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]*faq.Item, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockFavoriteRepository) Exists(ctx context.Context, userID, itemID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID, itemID)
	}
	return false, nil
}

type mockTransactionManager struct{}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
