package mappers

import (
	"fmt"

	"unibot/internal/domain/feedback"
	"unibot/internal/infrastructure/persistence/models"
)

type FeedbackMapper interface {
	ToEntity(model *models.FeedbackModel) (*feedback.Feedback, error)
	ToModel(entity *feedback.Feedback) *models.FeedbackModel
}

type FeedbackMapperImpl struct{}

func NewFeedbackMapper() FeedbackMapper {
	return &FeedbackMapperImpl{}
}

func (m *FeedbackMapperImpl) ToEntity(model *models.FeedbackModel) (*feedback.Feedback, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := feedback.ReconstructFeedback(
		model.ID,
		model.UserID,
		feedback.Type(model.Type),
		model.Rating,
		model.Text,
		model.IsProcessed,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct feedback entity: %w", err)
	}

	return entity, nil
}

func (m *FeedbackMapperImpl) ToModel(entity *feedback.Feedback) *models.FeedbackModel {
	if entity == nil {
		return nil
	}

	return &models.FeedbackModel{
		ID:          entity.ID(),
		UserID:      entity.UserID(),
		Type:        entity.Type().String(),
		Rating:      entity.Rating(),
		Text:        entity.Text(),
		IsProcessed: entity.IsProcessed(),
		CreatedAt:   entity.CreatedAt(),
	}
}
