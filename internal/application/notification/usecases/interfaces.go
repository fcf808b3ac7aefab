package usecases

import "context"

// MessageSender delivers a text message to a Telegram chat. Satisfied by
// the telegram bot service.
type MessageSender interface {
	SendMessage(chatID int64, text string) error
}

type CreateNotificationExecutor interface {
	Execute(ctx context.Context, cmd CreateNotificationCommand) (*CreateNotificationResult, error)
}

type DispatchNotificationExecutor interface {
	Execute(ctx context.Context, cmd DispatchNotificationCommand) (*DispatchNotificationResult, error)
}
