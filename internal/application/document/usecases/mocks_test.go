package usecases

import (
	"context"

	"unibot/internal/domain/document"
	"unibot/internal/shared/logger"
)

type mockDocumentRepository struct {
	SaveFunc                   func(ctx context.Context, d *document.Document) error
	UpdateFunc                 func(ctx context.Context, d *document.Document) error
	GetByIDFunc                func(ctx context.Context, id uint) (*document.Document, error)
	ListActiveFunc             func(ctx context.Context) ([]*document.Document, error)
	ListByCategoryFunc         func(ctx context.Context, category string) ([]*document.Document, error)
	ListCategoriesFunc         func(ctx context.Context) ([]string, error)
	IncrementDownloadCountFunc func(ctx context.Context, id uint) error
}

func (m *mockDocumentRepository) Save(ctx context.Context, d *document.Document) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return nil
}

func (m *mockDocumentRepository) Update(ctx context.Context, d *document.Document) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDocumentRepository) GetByID(ctx context.Context, id uint) (*document.Document, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDocumentRepository) ListActive(ctx context.Context) ([]*document.Document, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockDocumentRepository) ListByCategory(ctx context.Context, category string) ([]*document.Document, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockDocumentRepository) ListCategories(ctx context.Context) ([]string, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockDocumentRepository) IncrementDownloadCount(ctx context.Context, id uint) error {
	if m.IncrementDownloadCountFunc != nil {
		return m.IncrementDownloadCountFunc(ctx, id)
	}
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
