package user

import "context"

// Filter narrows user lookups for broadcast targeting. All fields are
// optional and ANDed together.
type Filter struct {
	Role              *Role
	GroupName         *string
	Course            *int
	Faculty           *string
	ActiveOnly        bool
	NotificationsOnly bool
}

// Stats is the grouped user count summary.
type Stats struct {
	Total    int64
	Active   int64
	Verified int64
	NewToday int64
	ByRole   map[Role]int64
}

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*User, error)
	Search(ctx context.Context, query string, limit int) ([]*User, error)
	ListByFilter(ctx context.Context, filter Filter) ([]*User, error)
	ListStaff(ctx context.Context) ([]*User, error)
	GetStats(ctx context.Context) (*Stats, error)
	CountActiveSince(ctx context.Context, days int) (int64, error)
	CountNewSince(ctx context.Context, days int) (int64, error)
}
