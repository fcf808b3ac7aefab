package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"unibot/internal/domain/faq"
	"unibot/internal/infrastructure/persistence/models"
)

type FAQMapper interface {
	CategoryToEntity(model *models.FAQCategoryModel) (*faq.Category, error)
	CategoryToModel(entity *faq.Category) *models.FAQCategoryModel
	ItemToEntity(model *models.FAQItemModel) (*faq.Item, error)
	ItemToModel(entity *faq.Item) (*models.FAQItemModel, error)
	ItemsToEntities(models []*models.FAQItemModel) ([]*faq.Item, error)
}

type FAQMapperImpl struct{}

func NewFAQMapper() FAQMapper {
	return &FAQMapperImpl{}
}

func (m *FAQMapperImpl) CategoryToEntity(model *models.FAQCategoryModel) (*faq.Category, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := faq.ReconstructCategory(
		model.ID,
		model.Name,
		model.Slug,
		model.Description,
		model.Icon,
		model.SortOrder,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct category entity: %w", err)
	}

	return entity, nil
}

func (m *FAQMapperImpl) CategoryToModel(entity *faq.Category) *models.FAQCategoryModel {
	if entity == nil {
		return nil
	}

	return &models.FAQCategoryModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Slug:        entity.Slug(),
		Description: entity.Description(),
		Icon:        entity.Icon(),
		SortOrder:   entity.SortOrder(),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *FAQMapperImpl) ItemToEntity(model *models.FAQItemModel) (*faq.Item, error) {
	if model == nil {
		return nil, nil
	}

	var links []faq.Link
	if len(model.Links) > 0 {
		if err := json.Unmarshal(model.Links, &links); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item links: %w", err)
		}
	}

	entity, err := faq.ReconstructItem(
		model.ID,
		model.CategoryID,
		model.Question,
		model.Answer,
		model.Keywords,
		links,
		model.SortOrder,
		model.IsPinned,
		model.IsActive,
		model.ViewCount,
		model.HelpfulCount,
		model.NotHelpfulCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct item entity: %w", err)
	}

	return entity, nil
}

func (m *FAQMapperImpl) ItemToModel(entity *faq.Item) (*models.FAQItemModel, error) {
	if entity == nil {
		return nil, nil
	}

	var links datatypes.JSON
	if len(entity.Links()) > 0 {
		raw, err := json.Marshal(entity.Links())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal item links: %w", err)
		}
		links = datatypes.JSON(raw)
	}

	return &models.FAQItemModel{
		ID:              entity.ID(),
		CategoryID:      entity.CategoryID(),
		Question:        entity.Question(),
		Answer:          entity.Answer(),
		Keywords:        entity.Keywords(),
		Links:           links,
		SortOrder:       entity.SortOrder(),
		IsPinned:        entity.IsPinned(),
		IsActive:        entity.IsActive(),
		ViewCount:       entity.ViewCount(),
		HelpfulCount:    entity.HelpfulCount(),
		NotHelpfulCount: entity.NotHelpfulCount(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

func (m *FAQMapperImpl) ItemsToEntities(itemModels []*models.FAQItemModel) ([]*faq.Item, error) {
	entities := make([]*faq.Item, 0, len(itemModels))
	for _, model := range itemModels {
		entity, err := m.ItemToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
