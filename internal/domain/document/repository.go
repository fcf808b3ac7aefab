package document

import "context"

type Repository interface {
	Save(ctx context.Context, d *Document) error
	Update(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id uint) (*Document, error)
	// ListActive returns all active documents for in-memory fuzzy ranking.
	ListActive(ctx context.Context) ([]*Document, error)
	ListByCategory(ctx context.Context, category string) ([]*Document, error)
	ListCategories(ctx context.Context) ([]string, error)
	IncrementDownloadCount(ctx context.Context, id uint) error
}
