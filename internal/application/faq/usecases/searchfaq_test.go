package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unibot/internal/domain/faq"
	"unibot/internal/shared/config"
	"unibot/internal/shared/errors"
)

func reconstructItem(t *testing.T, id uint, question, keywords string) *faq.Item {
	t.Helper()
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	item, err := faq.ReconstructItem(
		id, 1, question, "Some answer text.", keywords, nil,
		0, false, true, 0, 0, 0, now, now,
	)
	require.NoError(t, err)
	return item
}

func scholarshipPool(t *testing.T) []*faq.Item {
	t.Helper()
	return []*faq.Item{
		reconstructItem(t, 1, "How do I get a scholarship?", "scholarship,stipend,payment"),
		reconstructItem(t, 2, "Where is the dean's office located?", ""),
		reconstructItem(t, 3, "How do I order a transcript?", "transcript,certificate"),
	}
}

func TestSearchFAQ_VerbatimQuestionRanksFirst(t *testing.T) {
	itemRepo := &mockItemRepository{
		ListActiveFunc: func(ctx context.Context) ([]*faq.Item, error) {
			return scholarshipPool(t), nil
		},
	}

	uc := NewSearchFAQUseCase(itemRepo, config.SearchConfig{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), SearchFAQQuery{Query: "How do I get a scholarship?"})

	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, uint(1), result.Hits[0].ItemID)
	assert.GreaterOrEqual(t, result.Hits[0].Score, 90)
}

func TestSearchFAQ_KeywordsWidenMatching(t *testing.T) {
	itemRepo := &mockItemRepository{
		ListActiveFunc: func(ctx context.Context) ([]*faq.Item, error) {
			return scholarshipPool(t), nil
		},
	}

	uc := NewSearchFAQUseCase(itemRepo, config.SearchConfig{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), SearchFAQQuery{Query: "scholarship payment"})

	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, uint(1), result.Hits[0].ItemID)
	assert.GreaterOrEqual(t, result.Hits[0].Score, 80)
}

func TestSearchFAQ_UnrelatedQueryEmpty(t *testing.T) {
	itemRepo := &mockItemRepository{
		ListActiveFunc: func(ctx context.Context) ([]*faq.Item, error) {
			return scholarshipPool(t), nil
		},
	}

	uc := NewSearchFAQUseCase(itemRepo, config.SearchConfig{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), SearchFAQQuery{Query: "квантовая физика экзамен билет"})

	require.NoError(t, err)
	assert.Empty(t, result.Hits)
}

func TestSearchFAQ_MinQueryLength(t *testing.T) {
	var listed bool
	itemRepo := &mockItemRepository{
		ListActiveFunc: func(ctx context.Context) ([]*faq.Item, error) {
			listed = true
			return scholarshipPool(t), nil
		},
	}

	uc := NewSearchFAQUseCase(itemRepo, config.SearchConfig{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), SearchFAQQuery{Query: "a"})
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, listed)

	_, err = uc.Execute(context.Background(), SearchFAQQuery{Query: "ab"})
	assert.NoError(t, err)
	assert.True(t, listed)
}

func TestSearchFAQ_EmptyPool(t *testing.T) {
	itemRepo := &mockItemRepository{
		ListActiveFunc: func(ctx context.Context) ([]*faq.Item, error) {
			return nil, nil
		},
	}

	uc := NewSearchFAQUseCase(itemRepo, config.SearchConfig{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), SearchFAQQuery{Query: "anything at all"})

	require.NoError(t, err)
	assert.Empty(t, result.Hits)
}
