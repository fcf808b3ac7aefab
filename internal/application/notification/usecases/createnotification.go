package usecases

import (
	"context"
	"time"

	"unibot/internal/domain/notification"
	"unibot/internal/domain/user"
	"unibot/internal/shared/authorization"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type CreateNotificationCommand struct {
	ActorRole   user.Role
	Title       string
	Message     string
	TargetRole  *string
	GroupName   *string
	Course      *int
	Faculty     *string
	ScheduledAt *time.Time
}

type CreateNotificationResult struct {
	NotificationID uint
	IsScheduled    bool
}

type CreateNotificationUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewCreateNotificationUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *CreateNotificationUseCase) Execute(ctx context.Context, cmd CreateNotificationCommand) (*CreateNotificationResult, error) {
	if err := authorization.RequireAdmin(cmd.ActorRole); err != nil {
		return nil, err
	}

	target, err := buildTarget(cmd)
	if err != nil {
		return nil, err
	}

	n, err := notification.NewNotification(cmd.Title, cmd.Message, target, cmd.ScheduledAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.notificationRepo.Save(ctx, n); err != nil {
		uc.logger.Errorw("failed to save notification", "error", err)
		return nil, err
	}

	uc.logger.Infow("notification created",
		"notification_id", n.ID(),
		"scheduled", n.ScheduledAt() != nil,
	)

	return &CreateNotificationResult{
		NotificationID: n.ID(),
		IsScheduled:    n.ScheduledAt() != nil,
	}, nil
}

func buildTarget(cmd CreateNotificationCommand) (notification.TargetFilter, error) {
	target := notification.TargetFilter{
		GroupName: cmd.GroupName,
		Course:    cmd.Course,
		Faculty:   cmd.Faculty,
	}

	if cmd.TargetRole != nil {
		role := user.Role(*cmd.TargetRole)
		if !role.IsValid() {
			return notification.TargetFilter{}, errors.NewValidationError("invalid target role", *cmd.TargetRole)
		}
		target.Role = &role
	}
	if cmd.Course != nil && (*cmd.Course < 1 || *cmd.Course > 6) {
		return notification.TargetFilter{}, errors.NewValidationError("course must be between 1 and 6")
	}

	return target, nil
}
