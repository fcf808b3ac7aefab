package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unibot/internal/domain/faq"
)

func TestRateItem_FirstVote(t *testing.T) {
	item := reconstructItem(t, 1, "How do I get a scholarship?", "")
	itemRepo := &mockItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*faq.Item, error) {
			return item, nil
		},
	}
	ratingRepo := &mockRatingRepository{
		UpsertFunc: func(ctx context.Context, r faq.Rating) (*faq.Rating, error) {
			return nil, nil
		},
	}

	uc := NewRateItemUseCase(itemRepo, ratingRepo, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RateItemCommand{ItemID: 1, UserID: 7, Helpful: true})

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, int64(1), result.HelpfulCount)
	assert.Equal(t, int64(0), result.NotHelpfulCount)
}

func TestRateItem_ChangedVoteReversesOpposite(t *testing.T) {
	item := itemWithHelpfulVote(t)
	itemRepo := &mockItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*faq.Item, error) {
			return item, nil
		},
	}
	previous := &faq.Rating{UserID: 7, ItemID: 1, Helpful: true}
	ratingRepo := &mockRatingRepository{
		UpsertFunc: func(ctx context.Context, r faq.Rating) (*faq.Rating, error) {
			return previous, nil
		},
	}

	uc := NewRateItemUseCase(itemRepo, ratingRepo, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RateItemCommand{ItemID: 1, UserID: 7, Helpful: false})

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, int64(0), result.HelpfulCount)
	assert.Equal(t, int64(1), result.NotHelpfulCount)
}

// itemWithHelpfulVote is an item carrying one existing helpful vote.
func itemWithHelpfulVote(t *testing.T) *faq.Item {
	t.Helper()
	item := reconstructItem(t, 1, "How do I get a scholarship?", "")
	item.Rate(true, false)
	return item
}

func TestRateItem_RepeatedVoteIsNoop(t *testing.T) {
	item := itemWithHelpfulVote(t)
	var updated bool
	itemRepo := &mockItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*faq.Item, error) {
			return item, nil
		},
		UpdateFunc: func(ctx context.Context, i *faq.Item) error {
			updated = true
			return nil
		},
	}
	ratingRepo := &mockRatingRepository{
		UpsertFunc: func(ctx context.Context, r faq.Rating) (*faq.Rating, error) {
			return &faq.Rating{UserID: 7, ItemID: 1, Helpful: true}, nil
		},
	}

	uc := NewRateItemUseCase(itemRepo, ratingRepo, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RateItemCommand{ItemID: 1, UserID: 7, Helpful: true})

	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.False(t, updated)
	assert.Equal(t, int64(1), result.HelpfulCount)
}
