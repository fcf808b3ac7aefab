package usecases

import "context"

// TransactionManager runs a function inside one database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SearchFAQExecutor interface {
	Execute(ctx context.Context, query SearchFAQQuery) (*SearchFAQResult, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) (*ListCategoriesResult, error)
}

type ListItemsExecutor interface {
	Execute(ctx context.Context, query ListItemsQuery) (*ListItemsResult, error)
}

type GetItemExecutor interface {
	Execute(ctx context.Context, query GetItemQuery) (*GetItemResult, error)
}

type RateItemExecutor interface {
	Execute(ctx context.Context, cmd RateItemCommand) (*RateItemResult, error)
}

type AddFavoriteExecutor interface {
	Execute(ctx context.Context, cmd FavoriteCommand) error
}

type RemoveFavoriteExecutor interface {
	Execute(ctx context.Context, cmd FavoriteCommand) error
}

type ListFavoritesExecutor interface {
	Execute(ctx context.Context, query ListFavoritesQuery) (*ListFavoritesResult, error)
}

type ListPopularExecutor interface {
	Execute(ctx context.Context, query ListPopularQuery) (*ListPopularResult, error)
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error)
}

type CreateItemExecutor interface {
	Execute(ctx context.Context, cmd CreateItemCommand) (*CreateItemResult, error)
}
