package usecases

import (
	"context"

	"unibot/internal/domain/ticket"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type ReopenTicketCommand struct {
	TicketID    uint
	RequesterID uint
}

type ReopenTicketResult struct {
	Status string
}

type ReopenTicketUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewReopenTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ReopenTicketUseCase {
	return &ReopenTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *ReopenTicketUseCase) Execute(ctx context.Context, cmd ReopenTicketCommand) (*ReopenTicketResult, error) {
	uc.logger.Infow("executing reopen ticket use case", "ticket_id", cmd.TicketID)

	var result *ReopenTicketResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		// Reopening is reserved for the requester; staff use set-status.
		if t.OwnerID() != cmd.RequesterID {
			return errors.NewForbiddenError("only the requester can reopen a ticket")
		}

		oldStatus := t.Status()
		if err := t.Reopen(); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		body := "Статус изменён: " + oldStatus.String() + " → " + t.Status().String()
		systemMessage, err := ticket.NewMessage(t.ID(), cmd.RequesterID, body, false, false)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		if err := uc.messageRepo.Save(txCtx, systemMessage); err != nil {
			return err
		}

		result = &ReopenTicketResult{Status: t.Status().String()}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to reopen ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	return result, nil
}
