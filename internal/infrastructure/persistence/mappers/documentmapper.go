package mappers

import (
	"fmt"

	"unibot/internal/domain/document"
	"unibot/internal/infrastructure/persistence/models"
)

type DocumentMapper interface {
	ToEntity(model *models.DocumentModel) (*document.Document, error)
	ToModel(entity *document.Document) *models.DocumentModel
	ToEntities(models []*models.DocumentModel) ([]*document.Document, error)
}

type DocumentMapperImpl struct{}

func NewDocumentMapper() DocumentMapper {
	return &DocumentMapperImpl{}
}

func (m *DocumentMapperImpl) ToEntity(model *models.DocumentModel) (*document.Document, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := document.ReconstructDocument(
		model.ID,
		model.Name,
		model.Category,
		model.Description,
		model.FileID,
		model.URL,
		model.FileType,
		model.Keywords,
		model.IsActive,
		model.DownloadCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct document entity: %w", err)
	}

	return entity, nil
}

func (m *DocumentMapperImpl) ToModel(entity *document.Document) *models.DocumentModel {
	if entity == nil {
		return nil
	}

	return &models.DocumentModel{
		ID:            entity.ID(),
		Name:          entity.Name(),
		Category:      entity.Category(),
		Description:   entity.Description(),
		FileID:        entity.FileID(),
		URL:           entity.URL(),
		FileType:      entity.FileType(),
		Keywords:      entity.Keywords(),
		IsActive:      entity.IsActive(),
		DownloadCount: entity.DownloadCount(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *DocumentMapperImpl) ToEntities(documentModels []*models.DocumentModel) ([]*document.Document, error) {
	entities := make([]*document.Document, 0, len(documentModels))
	for _, model := range documentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
