package mappers

import (
	"fmt"

	"unibot/internal/domain/user"
	"unibot/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	role, err := user.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.TelegramID,
		model.Username, model.FirstName, model.LastName, model.FullName,
		model.Course,
		model.GroupName, model.StudentID, model.Faculty,
		role,
		model.IsActive, model.IsVerified, model.NotificationsEnabled, model.IsOnboarded, model.TipsEnabled,
		model.Language,
		model.CreatedAt, model.UpdatedAt,
		model.LastActivity,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:                   entity.ID(),
		TelegramID:           entity.TelegramID(),
		Username:             entity.Username(),
		FirstName:            entity.FirstName(),
		LastName:             entity.LastName(),
		FullName:             entity.FullName(),
		Course:               entity.Course(),
		GroupName:            entity.GroupName(),
		StudentID:            entity.StudentID(),
		Faculty:              entity.Faculty(),
		Role:                 entity.Role().String(),
		IsActive:             entity.IsActive(),
		IsVerified:           entity.IsVerified(),
		NotificationsEnabled: entity.NotificationsEnabled(),
		IsOnboarded:          entity.IsOnboarded(),
		TipsEnabled:          entity.TipsEnabled(),
		Language:             entity.Language(),
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
		LastActivity:         entity.LastActivity(),
	}
}

func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
