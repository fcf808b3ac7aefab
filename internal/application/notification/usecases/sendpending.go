package usecases

import (
	"context"

	"unibot/internal/domain/notification"
	"unibot/internal/shared/biztime"
	"unibot/internal/shared/logger"
)

// SendPendingJob dispatches every due notification. It is registered with
// the scheduler as the broadcast batch job; Execute returns the number of
// notifications dispatched in this run.
type SendPendingJob struct {
	notificationRepo notification.Repository
	dispatch         DispatchNotificationExecutor
	logger           logger.Interface
}

func NewSendPendingJob(
	notificationRepo notification.Repository,
	dispatch DispatchNotificationExecutor,
	logger logger.Interface,
) *SendPendingJob {
	return &SendPendingJob{
		notificationRepo: notificationRepo,
		dispatch:         dispatch,
		logger:           logger,
	}
}

func (j *SendPendingJob) Execute(ctx context.Context) (int, error) {
	due, err := j.notificationRepo.ListDue(ctx, biztime.NowUTC())
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, n := range due {
		if _, err := j.dispatch.Execute(ctx, DispatchNotificationCommand{NotificationID: n.ID()}); err != nil {
			if ctx.Err() != nil {
				return processed, ctx.Err()
			}
			j.logger.Errorw("failed to dispatch due notification",
				"error", err,
				"notification_id", n.ID(),
			)
			continue
		}
		processed++
	}

	return processed, nil
}
