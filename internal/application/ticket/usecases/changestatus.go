package usecases

import (
	"context"
	"fmt"

	"unibot/internal/domain/ticket"
	vo "unibot/internal/domain/ticket/valueobjects"
	"unibot/internal/domain/user"
	"unibot/internal/shared/authorization"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole user.Role
	NewStatus string
	Comment   string
}

type ChangeStatusResult struct {
	OldStatus string
	NewStatus string
}

type ChangeStatusUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID,
		"new_status", cmd.NewStatus,
	)

	if err := authorization.RequireStaff(cmd.ActorRole); err != nil {
		return nil, err
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result *ChangeStatusResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		oldStatus := t.Status()
		if err := t.ChangeStatus(newStatus); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		// Every explicit transition leaves one system message in the thread.
		body := fmt.Sprintf("Статус изменён: %s → %s", oldStatus, newStatus)
		if cmd.Comment != "" {
			body += "\n" + cmd.Comment
		}
		systemMessage, err := ticket.NewMessage(t.ID(), cmd.ActorID, body, true, false)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		if err := uc.messageRepo.Save(txCtx, systemMessage); err != nil {
			return err
		}

		result = &ChangeStatusResult{
			OldStatus: oldStatus.String(),
			NewStatus: newStatus.String(),
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to change ticket status", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	return result, nil
}
