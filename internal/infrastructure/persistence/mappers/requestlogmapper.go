package mappers

import (
	"fmt"

	"unibot/internal/domain/analytics"
	"unibot/internal/infrastructure/persistence/models"
)

type RequestLogMapper interface {
	ToEntity(model *models.RequestLogModel) (*analytics.RequestLog, error)
	ToModel(entity *analytics.RequestLog) *models.RequestLogModel
}

type RequestLogMapperImpl struct{}

func NewRequestLogMapper() RequestLogMapper {
	return &RequestLogMapperImpl{}
}

func (m *RequestLogMapperImpl) ToEntity(model *models.RequestLogModel) (*analytics.RequestLog, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := analytics.ReconstructRequestLog(
		model.ID,
		model.UserID,
		analytics.RequestType(model.RequestType),
		model.Text,
		model.Category,
		analytics.ResponseType(model.ResponseType),
		model.ResponseTimeMs,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct request log entity: %w", err)
	}

	return entity, nil
}

func (m *RequestLogMapperImpl) ToModel(entity *analytics.RequestLog) *models.RequestLogModel {
	if entity == nil {
		return nil
	}

	return &models.RequestLogModel{
		ID:             entity.ID(),
		UserID:         entity.UserID(),
		RequestType:    entity.RequestType().String(),
		Text:           entity.Text(),
		Category:       entity.Category(),
		ResponseType:   entity.ResponseType().String(),
		ResponseTimeMs: entity.ResponseTimeMs(),
		CreatedAt:      entity.CreatedAt(),
	}
}
