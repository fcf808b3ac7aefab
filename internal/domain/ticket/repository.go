package ticket

import (
	"context"

	vo "unibot/internal/domain/ticket/valueobjects"
)

// Filter narrows ticket listings.
type Filter struct {
	OwnerID        *uint
	AssigneeID     *uint
	UnassignedOnly bool
	Status         *vo.TicketStatus
	ActiveOnly     bool
	Limit          int
}

// Stats is the grouped ticket count summary.
type Stats struct {
	Total             int64
	ByStatus          map[vo.TicketStatus]int64
	Unassigned        int64
	AvgResolutionDays float64
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
	GetStats(ctx context.Context) (*Stats, error)
}

type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	ListByTicketID(ctx context.Context, ticketID uint, includeInternal bool) ([]*Message, error)
}
