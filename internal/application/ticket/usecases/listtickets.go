package usecases

import (
	"context"
	"time"

	"unibot/internal/domain/ticket"
	vo "unibot/internal/domain/ticket/valueobjects"
	"unibot/internal/domain/user"
	"unibot/internal/shared/authorization"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

const defaultListLimit = 20

type ListTicketsQuery struct {
	RequesterID uint
	Role        user.Role

	// OwnerID restricts the listing to one requester's tickets. Non-staff
	// callers may only list their own.
	OwnerID        *uint
	AssigneeID     *uint
	Status         string
	ActiveOnly     bool
	UnassignedOnly bool
	Limit          int
}

type TicketSummary struct {
	ID         uint
	Number     string
	OwnerID    uint
	AssigneeID *uint
	Subject    string
	Status     string
	Priority   int
	Category   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ListTicketsResult struct {
	Tickets []TicketSummary
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	summaries := make([]TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		summaries = append(summaries, TicketSummary{
			ID:         t.ID(),
			Number:     t.Number(),
			OwnerID:    t.OwnerID(),
			AssigneeID: t.AssigneeID(),
			Subject:    t.Subject(),
			Status:     t.Status().String(),
			Priority:   t.Priority().Int(),
			Category:   t.Category(),
			CreatedAt:  t.CreatedAt(),
			UpdatedAt:  t.UpdatedAt(),
		})
	}

	return &ListTicketsResult{Tickets: summaries}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	filter := ticket.Filter{
		ActiveOnly: query.ActiveOnly,
		Limit:      query.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	if !query.Role.IsStaff() {
		// Non-staff listings are always scoped to the requester's own tickets.
		ownerID := query.RequesterID
		filter.OwnerID = &ownerID
	} else {
		filter.OwnerID = query.OwnerID
	}

	if query.AssigneeID != nil {
		if err := authorization.RequireStaff(query.Role); err != nil {
			return ticket.Filter{}, err
		}
		filter.AssigneeID = query.AssigneeID
	}
	if query.UnassignedOnly {
		if err := authorization.RequireStaff(query.Role); err != nil {
			return ticket.Filter{}, err
		}
		filter.UnassignedOnly = true
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	return filter, nil
}
