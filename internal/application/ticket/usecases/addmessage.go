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

// replyPreviewLimit caps the reply preview included in owner alerts.
const replyPreviewLimit = 200

type AddMessageCommand struct {
	TicketID   uint
	AuthorID   uint
	AuthorRole user.Role
	Body       string
	IsInternal bool
}

type AddMessageResult struct {
	MessageID     uint
	TicketStatus  string
	StatusChanged bool
	CreatedAt     time.Time
}

type AddMessageUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      logger.Interface
}

func NewAddMessageUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error) {
	uc.logger.Infow("executing add message use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	if cmd.Body == "" {
		return nil, errors.NewValidationError("message body is required")
	}

	isFromStaff := cmd.AuthorRole.IsStaff()
	if cmd.IsInternal && !isFromStaff {
		return nil, errors.NewForbiddenError("only staff can add internal notes")
	}

	var (
		message       *ticket.Message
		statusChanged bool
		status        string
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if !authorization.CanViewTicket(cmd.AuthorID, cmd.AuthorRole, t.OwnerID()) {
			return errors.NewForbiddenError("no access to this ticket")
		}
		if !t.Status().IsActive() && !isFromStaff {
			return errors.NewValidationError("ticket is closed for new messages")
		}

		message, err = ticket.NewMessage(t.ID(), cmd.AuthorID, cmd.Body, isFromStaff, cmd.IsInternal)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.messageRepo.Save(txCtx, message); err != nil {
			return err
		}

		// Internal notes never advance the workflow.
		if !cmd.IsInternal {
			statusChanged = t.RegisterMessage(isFromStaff)
		}
		status = t.Status().String()
		if statusChanged {
			return uc.ticketRepo.Update(txCtx, t)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to add ticket message", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if isFromStaff && !cmd.IsInternal {
		uc.notifyOwner(ctx, cmd)
	}

	return &AddMessageResult{
		MessageID:     message.ID(),
		TicketStatus:  status,
		StatusChanged: statusChanged,
		CreatedAt:     message.CreatedAt(),
	}, nil
}

func (uc *AddMessageUseCase) notifyOwner(ctx context.Context, cmd AddMessageCommand) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to reload ticket for owner alert", "error", err)
		return
	}
	// Staff replying to their own ticket needs no alert.
	if t.OwnerID() == cmd.AuthorID {
		return
	}

	preview := []rune(cmd.Body)
	if len(preview) > replyPreviewLimit {
		preview = preview[:replyPreviewLimit]
	}
	uc.notifier.NotifyOwnerReply(ctx, t.OwnerID(), t.Number(), string(preview))
}
