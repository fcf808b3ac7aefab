package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"unibot/internal/domain/faq"
	"unibot/internal/infrastructure/persistence/models"
)

func TestFAQMapper_ItemLinksColumn(t *testing.T) {
	mapper := NewFAQMapper()
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	entity, err := faq.ReconstructItem(
		12, 3,
		"Как восстановить пропуск?",
		"Обратитесь в бюро пропусков, корпус А.",
		"пропуск,восстановление",
		[]faq.Link{{Label: "Форма заявления", URL: "https://example.edu/forms/propusk.pdf"}},
		0, false, true, 0, 0, 0, now, now,
	)
	require.NoError(t, err)

	model, err := mapper.ItemToModel(entity)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"label":"Форма заявления","url":"https://example.edu/forms/propusk.pdf"}]`,
		string(model.Links),
	)

	restored, err := mapper.ItemToEntity(model)
	require.NoError(t, err)
	require.Len(t, restored.Links(), 1)
	assert.Equal(t, "Форма заявления", restored.Links()[0].Label)
	assert.Equal(t, "https://example.edu/forms/propusk.pdf", restored.Links()[0].URL)
}

func TestFAQMapper_ItemWithoutLinks(t *testing.T) {
	mapper := NewFAQMapper()
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	entity, err := faq.ReconstructItem(
		13, 3, "Вопрос?", "Ответ.", "",
		nil, 0, false, true, 0, 0, 0, now, now,
	)
	require.NoError(t, err)

	model, err := mapper.ItemToModel(entity)
	require.NoError(t, err)
	assert.Empty(t, model.Links)

	restored, err := mapper.ItemToEntity(model)
	require.NoError(t, err)
	assert.Empty(t, restored.Links())
}

func TestFAQMapper_MalformedLinksRejected(t *testing.T) {
	mapper := NewFAQMapper()
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	_, err := mapper.ItemToEntity(&models.FAQItemModel{
		ID:         14,
		CategoryID: 3,
		Question:   "Вопрос?",
		Answer:     "Ответ.",
		Links:      datatypes.JSON(`{not json`),
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})

	assert.Error(t, err)
}
