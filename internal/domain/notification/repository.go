package notification

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, n *Notification) error
	Update(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	// ListDue returns active unsent notifications whose scheduled time is
	// nil or not after now.
	ListDue(ctx context.Context, now time.Time) ([]*Notification, error)
}
