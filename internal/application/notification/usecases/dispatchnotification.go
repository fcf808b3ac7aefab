package usecases

import (
	"context"
	"fmt"
	"time"

	"unibot/internal/domain/notification"
	"unibot/internal/domain/user"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type DispatchNotificationCommand struct {
	NotificationID uint
}

type DispatchNotificationResult struct {
	Sent   int
	Failed int
}

// DispatchNotificationUseCase fans a notification out to its audience one
// recipient at a time, pausing between sends to stay under the Telegram
// rate limit. A failed send never aborts the fan-out; recipients that
// rejected delivery permanently (blocked the bot, deleted the chat) are
// deactivated so later broadcasts skip them. When Telegram answers with
// a flood wait, retryDelay reports how long to back off before the next
// recipient.
type DispatchNotificationUseCase struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	sender           MessageSender
	isPermanent      func(error) bool
	retryDelay       func(error) time.Duration
	sendDelay        time.Duration
	logger           logger.Interface
}

func NewDispatchNotificationUseCase(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	sender MessageSender,
	isPermanent func(error) bool,
	retryDelay func(error) time.Duration,
	sendDelay time.Duration,
	logger logger.Interface,
) *DispatchNotificationUseCase {
	return &DispatchNotificationUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		sender:           sender,
		isPermanent:      isPermanent,
		retryDelay:       retryDelay,
		sendDelay:        sendDelay,
		logger:           logger,
	}
}

func (uc *DispatchNotificationUseCase) Execute(ctx context.Context, cmd DispatchNotificationCommand) (*DispatchNotificationResult, error) {
	if uc.sender == nil {
		return nil, errors.NewInternalError("notification transport is not configured")
	}

	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return nil, err
	}
	if n.IsSent() {
		return nil, errors.NewConflictError("notification is already sent")
	}
	if !n.IsActive() {
		return nil, errors.NewValidationError("notification is deactivated")
	}

	recipients, err := uc.userRepo.ListByFilter(ctx, n.Target().ToUserFilter())
	if err != nil {
		uc.logger.Errorw("failed to resolve broadcast audience", "error", err, "notification_id", n.ID())
		return nil, err
	}

	text := fmt.Sprintf("📢 <b>%s</b>\n\n%s", n.Title(), n.Message())

	sent, failed := 0, 0
	for i, recipient := range recipients {
		if i > 0 && uc.sendDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(uc.sendDelay):
			}
		}

		if err := uc.sender.SendMessage(recipient.TelegramID(), text); err != nil {
			failed++
			uc.logger.Warnw("broadcast delivery failed",
				"error", err,
				"notification_id", n.ID(),
				"user_id", recipient.ID(),
			)
			if uc.isPermanent != nil && uc.isPermanent(err) {
				uc.deactivateRecipient(ctx, recipient)
			}
			if uc.retryDelay != nil {
				if wait := uc.retryDelay(err); wait > 0 {
					uc.logger.Warnw("telegram flood wait, pausing broadcast",
						"notification_id", n.ID(),
						"wait", wait,
					)
					select {
					case <-ctx.Done():
						return nil, ctx.Err()
					case <-time.After(wait):
					}
				}
			}
			continue
		}
		sent++
	}

	if err := n.MarkSent(sent); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to record broadcast result", "error", err, "notification_id", n.ID())
		return nil, err
	}

	uc.logger.Infow("notification dispatched",
		"notification_id", n.ID(),
		"sent", sent,
		"failed", failed,
		"audience", len(recipients),
	)

	return &DispatchNotificationResult{Sent: sent, Failed: failed}, nil
}

func (uc *DispatchNotificationUseCase) deactivateRecipient(ctx context.Context, recipient *user.User) {
	recipient.Deactivate()
	if err := uc.userRepo.Update(ctx, recipient); err != nil {
		uc.logger.Warnw("failed to deactivate unreachable user",
			"error", err,
			"user_id", recipient.ID(),
		)
		return
	}
	uc.logger.Infow("deactivated unreachable user", "user_id", recipient.ID())
}
