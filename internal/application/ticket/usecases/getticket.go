package usecases

import (
	"context"
	"time"

	"unibot/internal/domain/ticket"
	"unibot/internal/domain/user"
	"unibot/internal/shared/authorization"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID    uint
	RequesterID uint
	Role        user.Role
}

type MessageView struct {
	ID          uint
	AuthorID    uint
	Body        string
	IsFromStaff bool
	IsInternal  bool
	CreatedAt   time.Time
}

type TicketView struct {
	ID          uint
	Number      string
	OwnerID     uint
	AssigneeID  *uint
	Subject     string
	Status      string
	Priority    int
	Category    string
	IsAnonymous bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
	Messages    []MessageView
}

type GetTicketResult struct {
	Ticket TicketView
}

type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanViewTicket(query.RequesterID, query.Role, t.OwnerID()) {
		return nil, errors.NewForbiddenError("no access to this ticket")
	}

	// Internal notes are staff-only; the requester gets the public thread.
	includeInternal := query.Role.IsStaff()
	messages, err := uc.messageRepo.ListByTicketID(ctx, t.ID(), includeInternal)
	if err != nil {
		uc.logger.Errorw("failed to load ticket thread", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	views := make([]MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, MessageView{
			ID:          m.ID(),
			AuthorID:    m.AuthorID(),
			Body:        m.Body(),
			IsFromStaff: m.IsFromStaff(),
			IsInternal:  m.IsInternal(),
			CreatedAt:   m.CreatedAt(),
		})
	}

	return &GetTicketResult{
		Ticket: TicketView{
			ID:          t.ID(),
			Number:      t.Number(),
			OwnerID:     t.OwnerID(),
			AssigneeID:  t.AssigneeID(),
			Subject:     t.Subject(),
			Status:      t.Status().String(),
			Priority:    t.Priority().Int(),
			Category:    t.Category(),
			IsAnonymous: t.IsAnonymous(),
			CreatedAt:   t.CreatedAt(),
			UpdatedAt:   t.UpdatedAt(),
			ResolvedAt:  t.ResolvedAt(),
			Messages:    views,
		},
	}, nil
}
