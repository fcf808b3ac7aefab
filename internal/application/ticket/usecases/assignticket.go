package usecases

import (
	"context"

	"unibot/internal/domain/ticket"
	"unibot/internal/domain/user"
	"unibot/internal/shared/authorization"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	ActorRole  user.Role
	AssigneeID uint
}

type AssignTicketResult struct {
	AssigneeID uint
	Status     string
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID,
		"assignee_id", cmd.AssigneeID,
	)

	if err := authorization.RequireStaff(cmd.ActorRole); err != nil {
		return nil, err
	}

	var result *AssignTicketResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		assignee, err := uc.userRepo.GetByID(txCtx, cmd.AssigneeID)
		if err != nil {
			return err
		}
		if !assignee.Role().IsStaff() {
			return errors.NewValidationError("assignee must be a staff member")
		}

		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := t.AssignTo(cmd.AssigneeID); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		result = &AssignTicketResult{
			AssigneeID: cmd.AssigneeID,
			Status:     t.Status().String(),
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to assign ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	return result, nil
}
