package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unibot/internal/domain/faq"
	"unibot/internal/shared/markdown"
)

func TestGetItem_BumpsViewAndRendersAnswer(t *testing.T) {
	item := reconstructItem(t, 1, "How do I get a scholarship?", "")

	var bumpedID uint
	itemRepo := &mockItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*faq.Item, error) {
			return item, nil
		},
		IncrementViewCountFunc: func(ctx context.Context, id uint) error {
			bumpedID = id
			return nil
		},
	}
	favRepo := &mockFavoriteRepository{
		ExistsFunc: func(ctx context.Context, userID, itemID uint) (bool, error) {
			return true, nil
		},
	}

	uc := NewGetItemUseCase(itemRepo, favRepo, markdown.NewService(), &mockLogger{})

	result, err := uc.Execute(context.Background(), GetItemQuery{ItemID: 1, UserID: 7})

	require.NoError(t, err)
	assert.Equal(t, uint(1), bumpedID)
	assert.Equal(t, int64(1), result.Item.ViewCount)
	assert.True(t, result.Item.IsFavorite)
	assert.Contains(t, result.Item.AnswerHTML, "Some answer text.")
}

func TestGetItem_AnonymousSkipsFavoriteLookup(t *testing.T) {
	item := reconstructItem(t, 1, "How do I get a scholarship?", "")

	var favoriteChecked bool
	itemRepo := &mockItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*faq.Item, error) {
			return item, nil
		},
	}
	favRepo := &mockFavoriteRepository{
		ExistsFunc: func(ctx context.Context, userID, itemID uint) (bool, error) {
			favoriteChecked = true
			return false, nil
		},
	}

	uc := NewGetItemUseCase(itemRepo, favRepo, markdown.NewService(), &mockLogger{})

	result, err := uc.Execute(context.Background(), GetItemQuery{ItemID: 1})

	require.NoError(t, err)
	assert.False(t, favoriteChecked)
	assert.False(t, result.Item.IsFavorite)
}
