package schedule

import (
	"context"
	"time"
)

// Filter narrows event listings. Scope fields are matched the same way as
// Event.AppliesTo: an event with an empty scope field matches any filter
// value for that field.
type Filter struct {
	From      time.Time
	To        time.Time
	Type      *EventType
	GroupName string
	Faculty   string
	Course    int
}

type Repository interface {
	Save(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	// List returns non-cancelled events in the window ordered by start time.
	List(ctx context.Context, filter Filter) ([]*Event, error)
	// ListUpcoming returns the next events for the scope starting now.
	ListUpcoming(ctx context.Context, filter Filter, limit int) ([]*Event, error)
}
