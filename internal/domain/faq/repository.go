package faq

import "context"

// Rating is a per-user helpfulness vote on an item.
type Rating struct {
	UserID  uint
	ItemID  uint
	Helpful bool
}

type CategoryRepository interface {
	Save(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	// ListActive returns active categories ordered by sort order.
	ListActive(ctx context.Context) ([]*Category, error)
}

type ItemRepository interface {
	Save(ctx context.Context, i *Item) error
	Update(ctx context.Context, i *Item) error
	GetByID(ctx context.Context, id uint) (*Item, error)
	// ListActive returns all active items across categories for in-memory
	// fuzzy ranking.
	ListActive(ctx context.Context) ([]*Item, error)
	// ListByCategory returns active items of one category, pinned first.
	ListByCategory(ctx context.Context, categoryID uint) ([]*Item, error)
	ListPopular(ctx context.Context, limit int) ([]*Item, error)
	IncrementViewCount(ctx context.Context, id uint) error
}

type RatingRepository interface {
	// Upsert stores the vote, replacing any previous vote by the same user
	// on the same item. It reports whether a previous vote existed and what
	// it was.
	Upsert(ctx context.Context, r Rating) (previous *Rating, err error)
	Get(ctx context.Context, userID, itemID uint) (*Rating, error)
}

type FavoriteRepository interface {
	// Add stores the favorite; adding an existing favorite is a conflict.
	Add(ctx context.Context, userID, itemID uint) error
	// Remove deletes the favorite; removing a missing one is not found.
	Remove(ctx context.Context, userID, itemID uint) error
	ListByUser(ctx context.Context, userID uint) ([]*Item, error)
	Exists(ctx context.Context, userID, itemID uint) (bool, error)
}
