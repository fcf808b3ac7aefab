package mappers

import (
	"fmt"

	"unibot/internal/domain/notification"
	"unibot/internal/domain/user"
	"unibot/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) *models.NotificationModel
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	target := notification.TargetFilter{
		GroupName: model.TargetGroup,
		Course:    model.TargetCourse,
		Faculty:   model.TargetFaculty,
	}
	if model.TargetRole != nil {
		role, err := user.NewRole(*model.TargetRole)
		if err != nil {
			return nil, fmt.Errorf("failed to create target role: %w", err)
		}
		target.Role = &role
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.Title,
		model.Message,
		target,
		model.IsActive,
		model.IsSent,
		model.ScheduledAt,
		model.SentAt,
		model.SentCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) *models.NotificationModel {
	if entity == nil {
		return nil
	}

	target := entity.Target()
	model := &models.NotificationModel{
		ID:            entity.ID(),
		Title:         entity.Title(),
		Message:       entity.Message(),
		TargetGroup:   target.GroupName,
		TargetCourse:  target.Course,
		TargetFaculty: target.Faculty,
		IsActive:      entity.IsActive(),
		IsSent:        entity.IsSent(),
		ScheduledAt:   entity.ScheduledAt(),
		SentAt:        entity.SentAt(),
		SentCount:     entity.SentCount(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
	if target.Role != nil {
		role := target.Role.String()
		model.TargetRole = &role
	}

	return model
}

func (m *NotificationMapperImpl) ToEntities(notificationModels []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, 0, len(notificationModels))
	for _, model := range notificationModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
