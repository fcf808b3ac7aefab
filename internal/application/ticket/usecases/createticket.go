package usecases

import (
	"context"
	"time"

	"unibot/internal/domain/ticket"
	vo "unibot/internal/domain/ticket/valueobjects"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
	"unibot/internal/shared/validation"
)

// numberAttempts bounds regeneration when a generated ticket number collides
// with the unique index.
const numberAttempts = 3

type CreateTicketCommand struct {
	OwnerID     uint
	Subject     string
	Description string
	Category    string
	Priority    int
	IsAnonymous bool
}

type CreateTicketResult struct {
	TicketID  uint
	Number    string
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	numberGen   ticket.NumberGenerator
	txManager   TransactionManager
	notifier    Notifier
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	numberGen ticket.NumberGenerator,
	txManager TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		numberGen:   numberGen,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "owner_id", cmd.OwnerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := uc.persist(ctx, cmd, priority)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "number", newTicket.Number())

	uc.notifier.NotifyStaffNewTicket(ctx, newTicket.Number(), newTicket.Subject())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Number:    newTicket.Number(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

// persist saves the ticket and its first message in one transaction. Number
// uniqueness is enforced by the database; on a duplicate-key error a fresh
// entity with a new number is built and the save retried.
func (uc *CreateTicketUseCase) persist(ctx context.Context, cmd CreateTicketCommand, priority vo.Priority) (*ticket.Ticket, error) {
	var lastErr error
	for attempt := 0; attempt < numberAttempts; attempt++ {
		newTicket, err := ticket.NewTicket(
			cmd.OwnerID,
			cmd.Subject,
			cmd.Description,
			cmd.Category,
			priority,
			cmd.IsAnonymous,
		)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		number, err := uc.numberGen.Generate(ctx)
		if err != nil {
			return nil, errors.NewInternalError("failed to generate ticket number", err.Error())
		}
		if err := newTicket.SetNumber(number); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}

		lastErr = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
				return err
			}

			// The description doubles as the opening message, always
			// authored by the requester.
			firstMessage, err := ticket.NewMessage(newTicket.ID(), cmd.OwnerID, cmd.Description, false, false)
			if err != nil {
				return errors.NewInternalError(err.Error())
			}
			return uc.messageRepo.Save(txCtx, firstMessage)
		})
		if lastErr == nil {
			return newTicket, nil
		}
		if !errors.IsDuplicateError(lastErr) {
			uc.logger.Errorw("failed to save ticket", "error", lastErr)
			return nil, lastErr
		}

		uc.logger.Warnw("ticket number collision, regenerating",
			"number", number,
			"attempt", attempt+1,
		)
	}

	uc.logger.Errorw("ticket number generation exhausted", "error", lastErr)
	return nil, errors.NewInternalError("failed to allocate a unique ticket number")
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}
	if err := validation.TicketSubject(cmd.Subject); err != nil {
		return err
	}
	return validation.TicketDescription(cmd.Description)
}
