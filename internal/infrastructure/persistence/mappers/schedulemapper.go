package mappers

import (
	"fmt"

	"unibot/internal/domain/schedule"
	"unibot/internal/infrastructure/persistence/models"
)

type ScheduleMapper interface {
	ToEntity(model *models.ScheduleEventModel) (*schedule.Event, error)
	ToModel(entity *schedule.Event) *models.ScheduleEventModel
	ToEntities(models []*models.ScheduleEventModel) ([]*schedule.Event, error)
}

type ScheduleMapperImpl struct{}

func NewScheduleMapper() ScheduleMapper {
	return &ScheduleMapperImpl{}
}

func (m *ScheduleMapperImpl) ToEntity(model *models.ScheduleEventModel) (*schedule.Event, error) {
	if model == nil {
		return nil, nil
	}

	eventType, err := schedule.NewEventType(model.EventType)
	if err != nil {
		return nil, fmt.Errorf("failed to create event type: %w", err)
	}

	entity, err := schedule.ReconstructEvent(
		model.ID,
		model.Title,
		model.Description,
		eventType,
		model.GroupName,
		model.Faculty,
		model.Course,
		model.Location,
		model.Instructor,
		model.StartsAt,
		model.EndsAt,
		model.IsCancelled,
		model.IsRescheduled,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct schedule event entity: %w", err)
	}

	return entity, nil
}

func (m *ScheduleMapperImpl) ToModel(entity *schedule.Event) *models.ScheduleEventModel {
	if entity == nil {
		return nil
	}

	return &models.ScheduleEventModel{
		ID:            entity.ID(),
		Title:         entity.Title(),
		Description:   entity.Description(),
		EventType:     entity.Type().String(),
		GroupName:     entity.GroupName(),
		Faculty:       entity.Faculty(),
		Course:        entity.Course(),
		Location:      entity.Location(),
		Instructor:    entity.Instructor(),
		StartsAt:      entity.StartsAt(),
		EndsAt:        entity.EndsAt(),
		IsCancelled:   entity.IsCancelled(),
		IsRescheduled: entity.IsRescheduled(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *ScheduleMapperImpl) ToEntities(eventModels []*models.ScheduleEventModel) ([]*schedule.Event, error) {
	entities := make([]*schedule.Event, 0, len(eventModels))
	for _, model := range eventModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
